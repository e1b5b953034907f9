package main

import (
	"context"
	"log"
	"os"
	"time"

	"ferapp_backend/internal/cache"
	"ferapp_backend/internal/db"
	"ferapp_backend/internal/domain"
	"ferapp_backend/internal/reconcile"
	"ferapp_backend/internal/repository"
	"ferapp_backend/internal/service"
	"ferapp_backend/internal/store"

	"github.com/joho/godotenv"
)

// Seeds one demo owner with a few reference entries, tasks, reminders
// and linked actions, then prints a JWT for manual API poking.
func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	tz := os.Getenv("APP_TIMEZONE")
	if tz == "" {
		tz = "America/Argentina/Buenos_Aires"
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		log.Fatalf("load location: %v", err)
	}

	pool := db.Connect(dsn)
	defer pool.Close()

	ctx := context.Background()
	owners := repository.NewOwnerRepository(pool)

	const demoSub = "seed-demo-owner"
	owner, err := owners.GetByGoogleSub(ctx, demoSub)
	if err != nil {
		owner = &domain.Owner{GoogleSub: demoSub, Email: "demo@example.com", Name: "Demo"}
		if err := owners.Create(ctx, owner); err != nil {
			log.Fatalf("create owner: %v", err)
		}
		log.Printf("owner created id=%d", owner.ID)
	} else {
		log.Printf("owner already exists id=%d", owner.ID)
	}

	docs := repository.NewDocuments(store.New(pool), cache.NewSnapshotCache(nil, 0))
	providers := repository.NewProviderRepository(docs)
	employees := repository.NewEmployeeRepository(docs)
	tasks := repository.NewTaskRepository(docs)
	reminders := repository.NewReminderRepository(docs)
	actions := repository.NewActionRepository(docs)

	today := reconcile.Today(loc)
	tomorrow := time.Now().In(loc).AddDate(0, 0, 1).Format(reconcile.DateLayout)

	providerID := service.NewDocID()
	must("provider", providers.Put(ctx, owner.ID, domain.Provider{
		ID: providerID, Name: "DISTRIBUIDORA NORTE", Phone: "+54 11 4000 0001", Address: "AV. CORRIENTES 1234",
	}))

	employeeID := service.NewDocID() + 1
	must("employee", employees.Put(ctx, owner.ID, domain.Employee{
		ID: employeeID, Name: "ANA", Role: "ENCARGADA", Phone: "+54 11 4000 0002",
	}))

	taskID := service.NewDocID() + 2
	must("task", tasks.Put(ctx, owner.ID, domain.Task{
		ID: taskID, Text: "PEDIR MERCADERIA", Date: today,
	}))

	must("reminder", reminders.Put(ctx, owner.ID, domain.Reminder{
		ID: service.NewDocID() + 3, Date: tomorrow, Text: "LLAMAR AL CONTADOR",
	}))

	must("order", actions.Put(ctx, owner.ID, domain.Action{
		Type: domain.ActionOrder,
		Order: &domain.Order{
			ID:           service.NewDocID() + 4,
			ProviderID:   providerID,
			OrderDate:    today,
			DeliveryDate: tomorrow,
			OrderDetails: "10 CAJONES DE VERDURA",
			TaskID:       taskID,
		},
	}))

	must("call", actions.Put(ctx, owner.ID, domain.Action{
		Type: domain.ActionCall,
		Call: &domain.Call{
			ID:         service.NewDocID() + 5,
			EmployeeID: employeeID,
			CallDate:   today,
			Reason:     "CAMBIO DE TURNO",
		},
	}))

	service.InitJWT()
	token, err := service.GenerateJWT(owner.ID)
	if err != nil {
		log.Fatalf("generate token: %v", err)
	}
	log.Printf("seeded owner %d, today=%s", owner.ID, today)
	log.Printf("token=%s", token)
}

func must(what string, err error) {
	if err != nil {
		log.Fatalf("seed %s: %v", what, err)
	}
}
