package reconcile

import (
	"errors"
	"testing"

	"ferapp_backend/internal/domain"
)

func TestValidateAction(t *testing.T) {
	cases := []struct {
		name   string
		action domain.Action
		ok     bool
	}{
		{
			name: "valid order",
			action: domain.Action{Type: domain.ActionOrder, Order: &domain.Order{
				ProviderID: 3, OrderDetails: "50 LATAS", OrderDate: "2024-06-01",
			}},
			ok: true,
		},
		{
			name: "order without provider",
			action: domain.Action{Type: domain.ActionOrder, Order: &domain.Order{
				ProviderID: 0, OrderDetails: "50 LATAS",
			}},
		},
		{
			name: "order with blank details",
			action: domain.Action{Type: domain.ActionOrder, Order: &domain.Order{
				ProviderID: 3, OrderDetails: "   ",
			}},
		},
		{
			name: "valid service request",
			action: domain.Action{Type: domain.ActionService, ServiceRequest: &domain.ServiceRequest{
				ServiceID: 2, Details: "REVISAR AIRE",
			}},
			ok: true,
		},
		{
			name: "service request without service",
			action: domain.Action{Type: domain.ActionService, ServiceRequest: &domain.ServiceRequest{
				Details: "REVISAR AIRE",
			}},
		},
		{
			name: "valid call",
			action: domain.Action{Type: domain.ActionCall, Call: &domain.Call{
				EmployeeID: 7, Reason: "CAMBIO DE TURNO",
			}},
			ok: true,
		},
		{
			name: "call without reason",
			action: domain.Action{Type: domain.ActionCall, Call: &domain.Call{
				EmployeeID: 7,
			}},
		},
		{
			name:   "unknown type",
			action: domain.Action{Type: "payment"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateAction(tc.action)
			if tc.ok && err != nil {
				t.Fatalf("expected valid, got %v", err)
			}
			if !tc.ok {
				if err == nil {
					t.Fatal("expected validation error")
				}
				if !errors.Is(err, ErrValidation) {
					t.Fatalf("error %v is not ErrValidation", err)
				}
			}
		})
	}
}
