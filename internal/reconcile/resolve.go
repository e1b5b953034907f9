package reconcile

import "ferapp_backend/internal/domain"

// Category is the display role an action plays on a given day. Orders
// and service requests carry two dates, so one record can resolve under
// two categories.
type Category string

const (
	CategoryOrder            Category = "ORDER"
	CategoryDelivery         Category = "DELIVERY"
	CategoryServiceRequest   Category = "SERVICE_REQUEST"
	CategoryServiceExecution Category = "SERVICE_EXECUTION"
	CategoryCall             Category = "CALL"
)

// PersonUnknown is reported when an action's foreign key no longer
// resolves to a reference entity.
const PersonUnknown = "N/A"

// ResolvedAction is one day-detail entry: the action, the date role it
// matched, and the display name of the referenced person.
type ResolvedAction struct {
	Category   Category
	PersonName string
	Action     domain.Action
}

// ResolveDay lists the actions occurring on day, one entry per date role
// matched. A record whose two dates both equal day appears twice, once
// per role; roles are filtered independently and never deduplicated.
// The list is the same for past, present and future days.
func ResolveDay(day string,
	orders []domain.Order,
	requests []domain.ServiceRequest,
	calls []domain.Call,
	providers []domain.Provider,
	services []domain.Service,
	employees []domain.Employee,
) []ResolvedAction {
	providerNames := make(map[int64]string, len(providers))
	for _, p := range providers {
		providerNames[p.ID] = p.Name
	}
	serviceNames := make(map[int64]string, len(services))
	for _, s := range services {
		serviceNames[s.ID] = s.Name
	}
	employeeNames := make(map[int64]string, len(employees))
	for _, e := range employees {
		employeeNames[e.ID] = e.Name
	}

	lookup := func(names map[int64]string, id int64) string {
		if name, ok := names[id]; ok {
			return name
		}
		return PersonUnknown
	}

	var res []ResolvedAction
	for i := range orders {
		o := orders[i]
		if o.OrderDate == day {
			res = append(res, ResolvedAction{
				Category:   CategoryOrder,
				PersonName: lookup(providerNames, o.ProviderID),
				Action:     domain.Action{Type: domain.ActionOrder, Order: &o},
			})
		}
	}
	for i := range orders {
		o := orders[i]
		if o.DeliveryDate == day {
			res = append(res, ResolvedAction{
				Category:   CategoryDelivery,
				PersonName: lookup(providerNames, o.ProviderID),
				Action:     domain.Action{Type: domain.ActionOrder, Order: &o},
			})
		}
	}
	for i := range requests {
		sr := requests[i]
		if sr.RequestDate == day {
			res = append(res, ResolvedAction{
				Category:   CategoryServiceRequest,
				PersonName: lookup(serviceNames, sr.ServiceID),
				Action:     domain.Action{Type: domain.ActionService, ServiceRequest: &sr},
			})
		}
	}
	for i := range requests {
		sr := requests[i]
		if sr.ExecutionDate == day {
			res = append(res, ResolvedAction{
				Category:   CategoryServiceExecution,
				PersonName: lookup(serviceNames, sr.ServiceID),
				Action:     domain.Action{Type: domain.ActionService, ServiceRequest: &sr},
			})
		}
	}
	for i := range calls {
		c := calls[i]
		if c.CallDate == day {
			res = append(res, ResolvedAction{
				Category:   CategoryCall,
				PersonName: lookup(employeeNames, c.EmployeeID),
				Action:     domain.Action{Type: domain.ActionCall, Call: &c},
			})
		}
	}
	return res
}
