package handlers

import (
	"testing"

	"ferapp_backend/internal/domain"
)

func TestDecodeActionOrder(t *testing.T) {
	body := []byte(`{
		"type": "order",
		"providerId": 12,
		"orderDate": "2026-06-01",
		"deliveryDate": "2026-06-05",
		"orderDetails": "10 cajones",
		"taskId": 99
	}`)

	a, err := decodeAction(body)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if a.Type != domain.ActionOrder || a.Order == nil {
		t.Fatalf("wrong variant: %+v", a)
	}
	if a.Order.OrderDetails != "10 CAJONES" {
		t.Fatalf("details not upper-cased: %q", a.Order.OrderDetails)
	}
	if a.TaskID() != 99 {
		t.Fatalf("task link lost: %d", a.TaskID())
	}
}

func TestDecodeActionCallNoSecondaryDate(t *testing.T) {
	body := []byte(`{"type":"call","employeeId":7,"callDate":"2026-06-02","reason":"turno"}`)

	a, err := decodeAction(body)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if a.Type != domain.ActionCall || a.Call == nil {
		t.Fatalf("wrong variant: %+v", a)
	}
	if a.Call.Reason != "TURNO" {
		t.Fatalf("reason not upper-cased: %q", a.Call.Reason)
	}
}

func TestDecodeActionRejects(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"unknown type", `{"type":"meeting"}`},
		{"missing type", `{"providerId":1}`},
		{"bad primary date", `{"type":"call","employeeId":1,"callDate":"02/06/2026","reason":"x"}`},
		{"bad secondary date", `{"type":"order","providerId":1,"orderDate":"2026-06-01","deliveryDate":"soon","orderDetails":"x"}`},
		{"not json", `nope`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := decodeAction([]byte(tc.body)); err == nil {
				t.Fatalf("expected error for %s", tc.body)
			}
		})
	}
}

func TestDecodeActionServiceEmptyExecutionDate(t *testing.T) {
	body := []byte(`{"type":"service","serviceId":3,"requestDate":"2026-06-01","details":"arreglo"}`)

	a, err := decodeAction(body)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if a.ServiceRequest.ExecutionDate != "" {
		t.Fatalf("unexpected execution date: %q", a.ServiceRequest.ExecutionDate)
	}
}
