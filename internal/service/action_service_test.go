package service

import (
	"context"
	"errors"
	"testing"

	"ferapp_backend/internal/domain"
	"ferapp_backend/internal/reconcile"
)

type fakeActionSink struct {
	puts []domain.Action
	err  error
}

func (f *fakeActionSink) Put(ctx context.Context, ownerID int64, a domain.Action) error {
	if f.err != nil {
		return f.err
	}
	f.puts = append(f.puts, a)
	return nil
}

type fakeCompleter struct {
	completed []int64
	err       error
}

func (f *fakeCompleter) SetCompleted(ctx context.Context, ownerID, id int64, completed bool) error {
	if f.err != nil {
		return f.err
	}
	if completed {
		f.completed = append(f.completed, id)
	}
	return nil
}

func orderAction(id, providerID, taskID int64) domain.Action {
	return domain.Action{Type: domain.ActionOrder, Order: &domain.Order{
		ID:           id,
		ProviderID:   providerID,
		OrderDate:    "2024-06-01",
		OrderDetails: "50 LATAS BLANCO",
		TaskID:       taskID,
		Type:         domain.ActionOrder,
	}}
}

func TestCreateLinkedAction_CompletesTask(t *testing.T) {
	sink := &fakeActionSink{}
	tasks := &fakeCompleter{}
	svc := NewActionService(sink, tasks)

	id, err := svc.CreateLinkedAction(context.Background(), 10, orderAction(0, 3, 42))
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if id == 0 {
		t.Fatal("expected a fresh id")
	}
	if len(sink.puts) != 1 {
		t.Fatalf("expected 1 write, got %d", len(sink.puts))
	}
	if len(tasks.completed) != 1 || tasks.completed[0] != 42 {
		t.Fatalf("task 42 not completed: %v", tasks.completed)
	}
}

func TestCreateLinkedAction_UnlinkedLeavesTasks(t *testing.T) {
	sink := &fakeActionSink{}
	tasks := &fakeCompleter{}
	svc := NewActionService(sink, tasks)

	if _, err := svc.CreateLinkedAction(context.Background(), 10, orderAction(0, 3, 0)); err != nil {
		t.Fatalf("create: %v", err)
	}
	if len(tasks.completed) != 0 {
		t.Fatalf("no task should be touched, got %v", tasks.completed)
	}
}

func TestCreateLinkedAction_ValidationBlocksWrite(t *testing.T) {
	sink := &fakeActionSink{}
	svc := NewActionService(sink, &fakeCompleter{})

	_, err := svc.CreateLinkedAction(context.Background(), 10, orderAction(0, 0, 42))
	if !errors.Is(err, reconcile.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if len(sink.puts) != 0 {
		t.Fatal("no store write may happen on validation failure")
	}
}

func TestCreateLinkedAction_EditKeepsID(t *testing.T) {
	sink := &fakeActionSink{}
	svc := NewActionService(sink, &fakeCompleter{})

	id, err := svc.CreateLinkedAction(context.Background(), 10, orderAction(777, 3, 0))
	if err != nil {
		t.Fatalf("edit: %v", err)
	}
	if id != 777 {
		t.Fatalf("edit must reuse the id, got %d", id)
	}
}

// Completion is a convenience side effect: its failure must not undo or
// fail the already-persisted action.
func TestCreateLinkedAction_CompletionFailureIsBestEffort(t *testing.T) {
	sink := &fakeActionSink{}
	tasks := &fakeCompleter{err: errors.New("task store down")}
	svc := NewActionService(sink, tasks)

	id, err := svc.CreateLinkedAction(context.Background(), 10, orderAction(0, 3, 42))
	if err != nil {
		t.Fatalf("action save should succeed, got %v", err)
	}
	if id == 0 || len(sink.puts) != 1 {
		t.Fatal("action must remain persisted")
	}
}
