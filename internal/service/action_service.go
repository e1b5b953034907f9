package service

import (
	"context"

	"ferapp_backend/internal/domain"
	"ferapp_backend/internal/logger"
	"ferapp_backend/internal/reconcile"
)

// ActionSink persists linked actions.
type ActionSink interface {
	Put(ctx context.Context, ownerID int64, a domain.Action) error
}

// TaskCompleter flips a task's completed flag.
type TaskCompleter interface {
	SetCompleted(ctx context.Context, ownerID, id int64, completed bool) error
}

// ActionService creates and edits linked actions (orders, service
// requests, calls) and applies the task-completion side effect.
type ActionService struct {
	actions ActionSink
	tasks   TaskCompleter
}

func NewActionService(actions ActionSink, tasks TaskCompleter) *ActionService {
	return &ActionService{actions: actions, tasks: tasks}
}

// CreateLinkedAction validates, persists (id 0 means a fresh id;
// a nonzero id re-saves in place), then best-effort completes the linked
// task. The two steps are not a transaction: if completion fails the
// action stays persisted and the task untouched. Returns the stored id.
func (s *ActionService) CreateLinkedAction(ctx context.Context, ownerID int64, a domain.Action) (int64, error) {
	if err := reconcile.ValidateAction(a); err != nil {
		return 0, err
	}

	if a.ID() == 0 {
		a.SetID(NewDocID())
	}

	if err := s.actions.Put(ctx, ownerID, a); err != nil {
		return 0, err
	}

	if taskID := a.TaskID(); taskID != 0 {
		if err := s.tasks.SetCompleted(ctx, ownerID, taskID, true); err != nil {
			logger.Warn("task completion after action save failed",
				"owner", ownerID, "task", taskID, "action", a.ID(), "error", err)
		}
	}

	return a.ID(), nil
}
