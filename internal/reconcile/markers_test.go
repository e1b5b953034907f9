package reconcile

import (
	"testing"

	"ferapp_backend/internal/domain"
)

func TestMarkersFor_OrderDates(t *testing.T) {
	orders := []domain.Order{{ID: 1, OrderDate: "2024-06-01", DeliveryDate: "2024-06-05"}}

	cases := []struct {
		day  string
		want bool
	}{
		{"2024-06-01", true},  // order date
		{"2024-06-05", true},  // delivery date
		{"2024-06-02", false}, // neither
	}

	for _, tc := range cases {
		m := MarkersFor(tc.day, orders, nil, nil, nil)
		if m.HasOrderActivity != tc.want {
			t.Fatalf("day %s: hasOrderActivity = %v; want %v", tc.day, m.HasOrderActivity, tc.want)
		}
	}
}

func TestMarkersFor_IndependentFlags(t *testing.T) {
	day := "2024-06-01"
	orders := []domain.Order{{ID: 1, OrderDate: day}}
	requests := []domain.ServiceRequest{{ID: 2, RequestDate: day}}
	calls := []domain.Call{{ID: 3, CallDate: day}}
	reminders := []domain.Reminder{{ID: 4, Date: day}}

	m := MarkersFor(day, orders, requests, calls, reminders)
	if !m.HasOrderActivity || !m.HasServiceActivity || !m.HasCallActivity || !m.HasReminder {
		t.Fatalf("all four flags should be set, got %+v", m)
	}

	// a day with only a reminder sets just that flag
	m = MarkersFor("2024-06-02", orders, requests, calls, []domain.Reminder{{ID: 5, Date: "2024-06-02"}})
	if m.HasOrderActivity || m.HasServiceActivity || m.HasCallActivity {
		t.Fatalf("unrelated flags leaked: %+v", m)
	}
	if !m.HasReminder {
		t.Fatal("reminder flag missing")
	}
}

func TestMarkersFor_ServiceExecutionDate(t *testing.T) {
	requests := []domain.ServiceRequest{{ID: 1, RequestDate: "2024-06-01", ExecutionDate: "2024-06-03"}}

	if m := MarkersFor("2024-06-03", nil, requests, nil, nil); !m.HasServiceActivity {
		t.Fatal("execution date must mark service activity")
	}
	if m := MarkersFor("2024-06-04", nil, requests, nil, nil); m.HasServiceActivity {
		t.Fatal("unmatched day must not mark service activity")
	}
}
