package repository

import (
	"context"
	"encoding/json"

	"ferapp_backend/internal/domain"
	"ferapp_backend/internal/store"
)

// Reference-entity repositories: providers, service providers, employees.
// Plain CRUD, no behavior beyond lookup by id from the linked actions.

type ProviderRepository struct {
	docs *Documents
}

func NewProviderRepository(docs *Documents) *ProviderRepository {
	return &ProviderRepository{docs: docs}
}

func (r *ProviderRepository) List(ctx context.Context, ownerID int64) ([]domain.Provider, error) {
	raw, err := r.docs.List(ctx, ownerID, store.ColProviders)
	if err != nil {
		return nil, err
	}
	var res []domain.Provider
	for _, doc := range raw {
		var p domain.Provider
		if err := json.Unmarshal(doc.Data, &p); err != nil {
			return nil, err
		}
		decodeID(&p.ID, doc.ID)
		res = append(res, p)
	}
	return res, nil
}

func (r *ProviderRepository) Put(ctx context.Context, ownerID int64, p domain.Provider) error {
	return r.docs.Store().Put(ctx, ownerID, store.ColProviders, p.ID, p)
}

func (r *ProviderRepository) Delete(ctx context.Context, ownerID, id int64) error {
	return r.docs.Store().Delete(ctx, ownerID, store.ColProviders, id)
}

type ServiceRepository struct {
	docs *Documents
}

func NewServiceRepository(docs *Documents) *ServiceRepository {
	return &ServiceRepository{docs: docs}
}

func (r *ServiceRepository) List(ctx context.Context, ownerID int64) ([]domain.Service, error) {
	raw, err := r.docs.List(ctx, ownerID, store.ColServices)
	if err != nil {
		return nil, err
	}
	var res []domain.Service
	for _, doc := range raw {
		var s domain.Service
		if err := json.Unmarshal(doc.Data, &s); err != nil {
			return nil, err
		}
		decodeID(&s.ID, doc.ID)
		res = append(res, s)
	}
	return res, nil
}

func (r *ServiceRepository) Put(ctx context.Context, ownerID int64, s domain.Service) error {
	return r.docs.Store().Put(ctx, ownerID, store.ColServices, s.ID, s)
}

func (r *ServiceRepository) Delete(ctx context.Context, ownerID, id int64) error {
	return r.docs.Store().Delete(ctx, ownerID, store.ColServices, id)
}

type EmployeeRepository struct {
	docs *Documents
}

func NewEmployeeRepository(docs *Documents) *EmployeeRepository {
	return &EmployeeRepository{docs: docs}
}

func (r *EmployeeRepository) List(ctx context.Context, ownerID int64) ([]domain.Employee, error) {
	raw, err := r.docs.List(ctx, ownerID, store.ColEmployees)
	if err != nil {
		return nil, err
	}
	var res []domain.Employee
	for _, doc := range raw {
		var e domain.Employee
		if err := json.Unmarshal(doc.Data, &e); err != nil {
			return nil, err
		}
		decodeID(&e.ID, doc.ID)
		res = append(res, e)
	}
	return res, nil
}

func (r *EmployeeRepository) Put(ctx context.Context, ownerID int64, e domain.Employee) error {
	return r.docs.Store().Put(ctx, ownerID, store.ColEmployees, e.ID, e)
}

func (r *EmployeeRepository) Delete(ctx context.Context, ownerID, id int64) error {
	return r.docs.Store().Delete(ctx, ownerID, store.ColEmployees, id)
}
