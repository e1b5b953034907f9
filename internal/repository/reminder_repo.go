package repository

import (
	"context"
	"encoding/json"

	"ferapp_backend/internal/domain"
	"ferapp_backend/internal/store"
)

type ReminderRepository struct {
	docs *Documents
}

func NewReminderRepository(docs *Documents) *ReminderRepository {
	return &ReminderRepository{docs: docs}
}

func (r *ReminderRepository) List(ctx context.Context, ownerID int64) ([]domain.Reminder, error) {
	raw, err := r.docs.List(ctx, ownerID, store.ColReminders)
	if err != nil {
		return nil, err
	}
	var res []domain.Reminder
	for _, doc := range raw {
		var rem domain.Reminder
		if err := json.Unmarshal(doc.Data, &rem); err != nil {
			return nil, err
		}
		decodeID(&rem.ID, doc.ID)
		res = append(res, rem)
	}
	return res, nil
}

func (r *ReminderRepository) Put(ctx context.Context, ownerID int64, rem domain.Reminder) error {
	return r.docs.Store().Put(ctx, ownerID, store.ColReminders, rem.ID, rem)
}

func (r *ReminderRepository) UpdateText(ctx context.Context, ownerID, id int64, text string) error {
	return r.docs.Store().Patch(ctx, ownerID, store.ColReminders, id, map[string]any{"text": text})
}

func (r *ReminderRepository) Delete(ctx context.Context, ownerID, id int64) error {
	return r.docs.Store().Delete(ctx, ownerID, store.ColReminders, id)
}
