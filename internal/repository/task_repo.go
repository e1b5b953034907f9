package repository

import (
	"context"
	"encoding/json"

	"ferapp_backend/internal/domain"
	"ferapp_backend/internal/store"
)

type TaskRepository struct {
	docs *Documents
}

func NewTaskRepository(docs *Documents) *TaskRepository {
	return &TaskRepository{docs: docs}
}

func (r *TaskRepository) List(ctx context.Context, ownerID int64) ([]domain.Task, error) {
	raw, err := r.docs.List(ctx, ownerID, store.ColTasks)
	if err != nil {
		return nil, err
	}
	var res []domain.Task
	for _, doc := range raw {
		var t domain.Task
		if err := json.Unmarshal(doc.Data, &t); err != nil {
			return nil, err
		}
		decodeID(&t.ID, doc.ID)
		res = append(res, t)
	}
	return res, nil
}

func (r *TaskRepository) Put(ctx context.Context, ownerID int64, t domain.Task) error {
	return r.docs.Store().Put(ctx, ownerID, store.ColTasks, t.ID, t)
}

// UpdateText edits the task text in place; the date is untouched.
func (r *TaskRepository) UpdateText(ctx context.Context, ownerID, id int64, text string) error {
	return r.docs.Store().Patch(ctx, ownerID, store.ColTasks, id, map[string]any{"text": text})
}

func (r *TaskRepository) SetCompleted(ctx context.Context, ownerID, id int64, completed bool) error {
	return r.docs.Store().Patch(ctx, ownerID, store.ColTasks, id, map[string]any{"completed": completed})
}

func (r *TaskRepository) Delete(ctx context.Context, ownerID, id int64) error {
	return r.docs.Store().Delete(ctx, ownerID, store.ColTasks, id)
}
