package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"ferapp_backend/internal/domain"
	"ferapp_backend/internal/store"
)

// ActionRepository covers the three linked-action collections. Writes go
// through the tagged union so the "type" discriminator is always stored.
type ActionRepository struct {
	docs *Documents
}

func NewActionRepository(docs *Documents) *ActionRepository {
	return &ActionRepository{docs: docs}
}

func (r *ActionRepository) Orders(ctx context.Context, ownerID int64) ([]domain.Order, error) {
	raw, err := r.docs.List(ctx, ownerID, store.ColOrders)
	if err != nil {
		return nil, err
	}
	var res []domain.Order
	for _, doc := range raw {
		var o domain.Order
		if err := json.Unmarshal(doc.Data, &o); err != nil {
			return nil, err
		}
		decodeID(&o.ID, doc.ID)
		o.Type = domain.ActionOrder
		res = append(res, o)
	}
	return res, nil
}

func (r *ActionRepository) ServiceRequests(ctx context.Context, ownerID int64) ([]domain.ServiceRequest, error) {
	raw, err := r.docs.List(ctx, ownerID, store.ColServiceRequests)
	if err != nil {
		return nil, err
	}
	var res []domain.ServiceRequest
	for _, doc := range raw {
		var sr domain.ServiceRequest
		if err := json.Unmarshal(doc.Data, &sr); err != nil {
			return nil, err
		}
		decodeID(&sr.ID, doc.ID)
		sr.Type = domain.ActionService
		res = append(res, sr)
	}
	return res, nil
}

func (r *ActionRepository) Calls(ctx context.Context, ownerID int64) ([]domain.Call, error) {
	raw, err := r.docs.List(ctx, ownerID, store.ColCalls)
	if err != nil {
		return nil, err
	}
	var res []domain.Call
	for _, doc := range raw {
		var c domain.Call
		if err := json.Unmarshal(doc.Data, &c); err != nil {
			return nil, err
		}
		decodeID(&c.ID, doc.ID)
		c.Type = domain.ActionCall
		res = append(res, c)
	}
	return res, nil
}

// Put upserts the active variant under its own id.
func (r *ActionRepository) Put(ctx context.Context, ownerID int64, a domain.Action) error {
	switch a.Type {
	case domain.ActionOrder:
		return r.docs.Store().Put(ctx, ownerID, store.ColOrders, a.Order.ID, a.Order)
	case domain.ActionService:
		return r.docs.Store().Put(ctx, ownerID, store.ColServiceRequests, a.ServiceRequest.ID, a.ServiceRequest)
	case domain.ActionCall:
		return r.docs.Store().Put(ctx, ownerID, store.ColCalls, a.Call.ID, a.Call)
	}
	return fmt.Errorf("unknown action type %q", a.Type)
}

// Delete removes an action by discriminator and id, mirroring how the
// stored "type" field routes deletion to its collection.
func (r *ActionRepository) Delete(ctx context.Context, ownerID int64, typ domain.ActionType, id int64) error {
	var collection string
	switch typ {
	case domain.ActionOrder:
		collection = store.ColOrders
	case domain.ActionService:
		collection = store.ColServiceRequests
	case domain.ActionCall:
		collection = store.ColCalls
	default:
		return fmt.Errorf("unknown action type %q", typ)
	}
	return r.docs.Store().Delete(ctx, ownerID, collection, id)
}
