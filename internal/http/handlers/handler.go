package handlers

import (
	"time"

	"ferapp_backend/internal/repository"
	"ferapp_backend/internal/service"
	"ferapp_backend/internal/ws"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Handler struct {
	DB             *pgxpool.Pool
	GoogleClientID string
	Loc            *time.Location

	Owners    *repository.OwnerRepository
	Docs      *repository.Documents
	Tasks     *repository.TaskRepository
	Reminders *repository.ReminderRepository
	Providers *repository.ProviderRepository
	Services  *repository.ServiceRepository
	Employees *repository.EmployeeRepository
	Actions   *repository.ActionRepository

	SyncService   *service.SyncService
	ActionService *service.ActionService
	Hub           *ws.Hub
}

func NewHandler(db *pgxpool.Pool, docs *repository.Documents, googleClientID string, loc *time.Location) *Handler {
	tasks := repository.NewTaskRepository(docs)
	reminders := repository.NewReminderRepository(docs)
	actions := repository.NewActionRepository(docs)

	return &Handler{
		DB:             db,
		GoogleClientID: googleClientID,
		Loc:            loc,
		Owners:         repository.NewOwnerRepository(db),
		Docs:           docs,
		Tasks:          tasks,
		Reminders:      reminders,
		Providers:      repository.NewProviderRepository(docs),
		Services:       repository.NewServiceRepository(docs),
		Employees:      repository.NewEmployeeRepository(docs),
		Actions:        actions,
		SyncService:    service.NewSyncService(reminders, tasks, loc),
		ActionService:  service.NewActionService(actions, tasks),
	}
}

// getOwnerID reads the owner id the JWT middleware stored in the
// context.
func getOwnerID(c interface{ Get(string) (any, bool) }) (int64, bool) {
	val, ok := c.Get("owner_id")
	if !ok {
		return 0, false
	}
	switch v := val.(type) {
	case int64:
		return v, true
	case float64:
		return int64(v), true
	default:
		return 0, false
	}
}
