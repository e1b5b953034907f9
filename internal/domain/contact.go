package domain

// Provider is a goods supplier the business orders from.
type Provider struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	Observations string `json:"observations"`
}

// Service is an external service provider (plumber, electrician, ...).
type Service struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	Observations string `json:"observations"`
}

// Employee is a staff member reachable by phone.
type Employee struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Role         string `json:"role"`
	Phone        string `json:"phone"`
	Observations string `json:"observations"`
}
