package domain

// ActionType discriminates the three kinds of dated business records.
// The value is stored in the document itself as the "type" field.
type ActionType string

const (
	ActionOrder   ActionType = "order"
	ActionService ActionType = "service"
	ActionCall    ActionType = "call"
)

// Order is a purchase placed with a provider. TaskID optionally points
// at a pending task that gets auto-completed when the order is saved.
type Order struct {
	ID           int64      `json:"id"`
	ProviderID   int64      `json:"providerId"`
	OrderDate    string     `json:"orderDate"`
	DeliveryDate string     `json:"deliveryDate"`
	OrderDetails string     `json:"orderDetails"`
	Observations string     `json:"observations"`
	TaskID       int64      `json:"taskId"`
	Type         ActionType `json:"type"`
}

// ServiceRequest is work requested from a service provider.
type ServiceRequest struct {
	ID            int64      `json:"id"`
	ServiceID     int64      `json:"serviceId"`
	RequestDate   string     `json:"requestDate"`
	ExecutionDate string     `json:"executionDate"`
	Details       string     `json:"details"`
	Observations  string     `json:"observations"`
	TaskID        int64      `json:"taskId"`
	Type          ActionType `json:"type"`
}

// Call is a phone call to an employee on a given date.
type Call struct {
	ID           int64      `json:"id"`
	EmployeeID   int64      `json:"employeeId"`
	CallDate     string     `json:"callDate"`
	Reason       string     `json:"reason"`
	Observations string     `json:"observations"`
	TaskID       int64      `json:"taskId"`
	Type         ActionType `json:"type"`
}

// Action is the tagged union over Order, ServiceRequest and Call.
// Exactly one of the three pointers is non-nil, matching Type.
type Action struct {
	Type           ActionType
	Order          *Order
	ServiceRequest *ServiceRequest
	Call           *Call
}

// ID returns the record id of the active variant.
func (a Action) ID() int64 {
	switch a.Type {
	case ActionOrder:
		return a.Order.ID
	case ActionService:
		return a.ServiceRequest.ID
	case ActionCall:
		return a.Call.ID
	}
	return 0
}

// SetID assigns a record id to the active variant.
func (a Action) SetID(id int64) {
	switch a.Type {
	case ActionOrder:
		a.Order.ID = id
	case ActionService:
		a.ServiceRequest.ID = id
	case ActionCall:
		a.Call.ID = id
	}
}

// TaskID returns the back-reference to the task this action completes,
// or 0 when the action is unlinked.
func (a Action) TaskID() int64 {
	switch a.Type {
	case ActionOrder:
		return a.Order.TaskID
	case ActionService:
		return a.ServiceRequest.TaskID
	case ActionCall:
		return a.Call.TaskID
	}
	return 0
}

// Collection returns the store collection the variant lives in.
func (a Action) Collection() string {
	switch a.Type {
	case ActionOrder:
		return "orders"
	case ActionService:
		return "service_requests"
	case ActionCall:
		return "calls"
	}
	return ""
}
