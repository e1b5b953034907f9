package service

import (
	"context"
	"sync"
	"time"

	"ferapp_backend/internal/domain"
	"ferapp_backend/internal/logger"
	"ferapp_backend/internal/reconcile"
	"ferapp_backend/internal/store"
)

// ReminderSource is the slice of the reminder repository promotion needs.
type ReminderSource interface {
	List(ctx context.Context, ownerID int64) ([]domain.Reminder, error)
	Delete(ctx context.Context, ownerID, id int64) error
}

// TaskSink receives the tasks that due reminders convert into.
type TaskSink interface {
	Put(ctx context.Context, ownerID int64, t domain.Task) error
}

// SyncService evaluates the reminder-to-task promotion rule. It runs on
// demand and on every observed change to an owner's reminder collection;
// a per-owner lock keeps concurrent evaluations from promoting the same
// reminder twice while a batch is in flight.
type SyncService struct {
	reminders ReminderSource
	tasks     TaskSink
	loc       *time.Location

	mu     sync.Mutex
	owners map[int64]*sync.Mutex
}

func NewSyncService(reminders ReminderSource, tasks TaskSink, loc *time.Location) *SyncService {
	return &SyncService{
		reminders: reminders,
		tasks:     tasks,
		loc:       loc,
		owners:    make(map[int64]*sync.Mutex),
	}
}

func (s *SyncService) ownerLock(ownerID int64) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.owners[ownerID]
	if !ok {
		l = &sync.Mutex{}
		s.owners[ownerID] = l
	}
	return l
}

// PromoteDue converts every reminder dated today into a pending task and
// removes it from the reminder set. Returns how many were promoted.
// Safe to call repeatedly: promoted reminders are gone, so a second run
// finds nothing due. Each conversion writes the task first and then
// deletes the reminder; a failure stops the batch and is surfaced.
func (s *SyncService) PromoteDue(ctx context.Context, ownerID int64) (int, error) {
	l := s.ownerLock(ownerID)
	l.Lock()
	defer l.Unlock()

	today := reconcile.Today(s.loc)
	reminders, err := s.reminders.List(ctx, ownerID)
	if err != nil {
		return 0, err
	}

	due := reconcile.DueReminders(reminders, today)
	if len(due) == 0 {
		return 0, nil
	}

	base := NewDocID()
	for i, r := range due {
		task := reconcile.PromoteReminder(r, today, base+int64(i))
		if err := s.tasks.Put(ctx, ownerID, task); err != nil {
			return i, err
		}
		if err := s.reminders.Delete(ctx, ownerID, r.ID); err != nil {
			return i, err
		}
	}

	logger.Info("promoted reminders", "owner", ownerID, "count", len(due), "date", today)
	return len(due), nil
}

// Notify implements store.Notifier: any change to an owner's reminder
// collection re-evaluates the rule. The promotion's own deletes notify
// again; that second pass sees an empty due set and stops, so the loop
// always terminates.
func (s *SyncService) Notify(ownerID int64, collection string) {
	if collection != store.ColReminders {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if _, err := s.PromoteDue(ctx, ownerID); err != nil {
			logger.Error("reminder promotion failed", "owner", ownerID, "error", err)
		}
	}()
}
