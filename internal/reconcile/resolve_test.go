package reconcile

import (
	"testing"

	"ferapp_backend/internal/domain"
)

func TestResolveDay_CallWithEmployee(t *testing.T) {
	day := "2024-06-01"
	calls := []domain.Call{{ID: 1, EmployeeID: 7, CallDate: day, Reason: "TURNO"}}
	employees := []domain.Employee{{ID: 7, Name: "ANA"}}

	res := ResolveDay(day, nil, nil, calls, nil, nil, employees)
	if len(res) != 1 {
		t.Fatalf("expected 1 resolved action, got %d", len(res))
	}
	if res[0].Category != CategoryCall {
		t.Fatalf("expected CALL, got %s", res[0].Category)
	}
	if res[0].PersonName != "ANA" {
		t.Fatalf("expected person ANA, got %q", res[0].PersonName)
	}
}

func TestResolveDay_MissingPersonIsNA(t *testing.T) {
	day := "2024-06-01"
	calls := []domain.Call{{ID: 1, EmployeeID: 7, CallDate: day}}

	res := ResolveDay(day, nil, nil, calls, nil, nil, nil)
	if len(res) != 1 {
		t.Fatalf("expected 1 resolved action, got %d", len(res))
	}
	if res[0].PersonName != PersonUnknown {
		t.Fatalf("expected %q for missing employee, got %q", PersonUnknown, res[0].PersonName)
	}
}

func TestResolveDay_OrderRoles(t *testing.T) {
	orders := []domain.Order{{ID: 1, ProviderID: 3, OrderDate: "2024-06-01", DeliveryDate: "2024-06-05"}}
	providers := []domain.Provider{{ID: 3, Name: "PINTURERIA CENTRAL"}}

	res := ResolveDay("2024-06-01", orders, nil, nil, providers, nil, nil)
	if len(res) != 1 || res[0].Category != CategoryOrder {
		t.Fatalf("order date should resolve as ORDER, got %+v", res)
	}

	res = ResolveDay("2024-06-05", orders, nil, nil, providers, nil, nil)
	if len(res) != 1 || res[0].Category != CategoryDelivery {
		t.Fatalf("delivery date should resolve as DELIVERY, got %+v", res)
	}
	if res[0].PersonName != "PINTURERIA CENTRAL" {
		t.Fatalf("provider name not resolved: %q", res[0].PersonName)
	}
}

// An order placed and delivered the same day matches both role passes
// and appears twice; the passes are independent and never deduplicated.
func TestResolveDay_SameDayOrderAppearsPerRole(t *testing.T) {
	day := "2024-06-01"
	orders := []domain.Order{{ID: 1, ProviderID: 3, OrderDate: day, DeliveryDate: day}}

	res := ResolveDay(day, orders, nil, nil, nil, nil, nil)
	if len(res) != 2 {
		t.Fatalf("expected one entry per role, got %d", len(res))
	}
	if res[0].Category != CategoryOrder || res[1].Category != CategoryDelivery {
		t.Fatalf("expected ORDER then DELIVERY, got %s, %s", res[0].Category, res[1].Category)
	}
	if res[0].Action.ID() != res[1].Action.ID() {
		t.Fatal("both entries must reference the same record")
	}
}

func TestResolveDay_ServiceRoles(t *testing.T) {
	requests := []domain.ServiceRequest{{ID: 9, ServiceID: 2, RequestDate: "2024-06-01", ExecutionDate: "2024-06-02"}}
	services := []domain.Service{{ID: 2, Name: "MANTENIMIENTO AIRES"}}

	res := ResolveDay("2024-06-02", nil, requests, nil, nil, services, nil)
	if len(res) != 1 || res[0].Category != CategoryServiceExecution {
		t.Fatalf("execution date should resolve as SERVICE_EXECUTION, got %+v", res)
	}
}

func TestResolveDay_MixedOrdering(t *testing.T) {
	day := "2024-06-01"
	orders := []domain.Order{{ID: 1, ProviderID: 1, OrderDate: day}}
	requests := []domain.ServiceRequest{{ID: 2, ServiceID: 1, RequestDate: day}}
	calls := []domain.Call{{ID: 3, EmployeeID: 1, CallDate: day}}

	res := ResolveDay(day, orders, requests, calls, nil, nil, nil)
	want := []Category{CategoryOrder, CategoryServiceRequest, CategoryCall}
	if len(res) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(res))
	}
	for i, c := range want {
		if res[i].Category != c {
			t.Fatalf("entry %d: got %s, want %s", i, res[i].Category, c)
		}
	}
}
