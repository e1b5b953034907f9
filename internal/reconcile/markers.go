package reconcile

import "ferapp_backend/internal/domain"

// DayMarkers are the four independent presence flags a calendar day
// shows. None implies another; all four can be true at once.
type DayMarkers struct {
	HasOrderActivity   bool `json:"hasOrderActivity"`
	HasServiceActivity bool `json:"hasServiceActivity"`
	HasCallActivity    bool `json:"hasCallActivity"`
	HasReminder        bool `json:"hasReminder"`
}

// MarkersFor computes the flags for one civil date from the current
// snapshots. No denormalized state: callers recompute on every change.
func MarkersFor(day string, orders []domain.Order, requests []domain.ServiceRequest, calls []domain.Call, reminders []domain.Reminder) DayMarkers {
	var m DayMarkers
	for _, o := range orders {
		if o.OrderDate == day || o.DeliveryDate == day {
			m.HasOrderActivity = true
			break
		}
	}
	for _, sr := range requests {
		if sr.RequestDate == day || sr.ExecutionDate == day {
			m.HasServiceActivity = true
			break
		}
	}
	for _, c := range calls {
		if c.CallDate == day {
			m.HasCallActivity = true
			break
		}
	}
	for _, r := range reminders {
		if r.Date == day {
			m.HasReminder = true
			break
		}
	}
	return m
}
