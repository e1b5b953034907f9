package reconcile

import (
	"errors"
	"fmt"
	"strings"

	"ferapp_backend/internal/domain"
)

// ErrValidation marks a request that must not reach the store. Checked
// before any write is attempted, so a failed validation leaves no
// partial state behind.
var ErrValidation = errors.New("validation failed")

func invalid(field string) error {
	return fmt.Errorf("%w: %s required", ErrValidation, field)
}

// ValidateAction checks the active variant's foreign key and primary
// text field, the same two conditions every action form enforces.
func ValidateAction(a domain.Action) error {
	switch a.Type {
	case domain.ActionOrder:
		if a.Order == nil || a.Order.ProviderID == 0 {
			return invalid("providerId")
		}
		if strings.TrimSpace(a.Order.OrderDetails) == "" {
			return invalid("orderDetails")
		}
	case domain.ActionService:
		if a.ServiceRequest == nil || a.ServiceRequest.ServiceID == 0 {
			return invalid("serviceId")
		}
		if strings.TrimSpace(a.ServiceRequest.Details) == "" {
			return invalid("details")
		}
	case domain.ActionCall:
		if a.Call == nil || a.Call.EmployeeID == 0 {
			return invalid("employeeId")
		}
		if strings.TrimSpace(a.Call.Reason) == "" {
			return invalid("reason")
		}
	default:
		return fmt.Errorf("%w: unknown action type %q", ErrValidation, a.Type)
	}
	return nil
}
