package reconcile

import (
	"testing"

	"ferapp_backend/internal/domain"
)

func TestDueReminders_ExactDateOnly(t *testing.T) {
	today := "2024-06-10"
	reminders := []domain.Reminder{
		{ID: 1, Date: "2024-06-09", Text: "yesterday"}, // overdue, stays for manual review
		{ID: 2, Date: "2024-06-10", Text: "due"},
		{ID: 3, Date: "2024-06-11", Text: "tomorrow"},
		{ID: 4, Date: "2024-06-10", Text: "also due"},
	}

	due := DueReminders(reminders, today)
	if len(due) != 2 {
		t.Fatalf("expected 2 due reminders, got %d", len(due))
	}
	if due[0].ID != 2 || due[1].ID != 4 {
		t.Fatalf("unexpected due set: %+v", due)
	}
}

func TestDueReminders_Empty(t *testing.T) {
	if due := DueReminders(nil, "2024-06-10"); due != nil {
		t.Fatalf("expected no due reminders, got %+v", due)
	}
}

func TestPromoteReminder(t *testing.T) {
	r := domain.Reminder{ID: 7, Date: "2024-06-10", Text: "pagar alquiler"}

	task := PromoteReminder(r, "2024-06-10", 1001)

	if task.ID != 1001 {
		t.Fatalf("expected fresh id 1001, got %d", task.ID)
	}
	if task.Text != "PAGAR ALQUILER" {
		t.Fatalf("expected upper-cased text, got %q", task.Text)
	}
	if task.Completed {
		t.Fatal("promoted task must start pending")
	}
	if task.Date != "2024-06-10" {
		t.Fatalf("expected task dated today, got %q", task.Date)
	}
}

// Promotion is idempotent per day because the promoted reminders leave
// the set: a second evaluation over the remaining reminders finds
// nothing due.
func TestPromotion_IdempotentPerDay(t *testing.T) {
	today := "2024-06-10"
	reminders := []domain.Reminder{
		{ID: 1, Date: today, Text: "due"},
		{ID: 2, Date: "2024-06-20", Text: "later"},
	}

	due := DueReminders(reminders, today)
	if len(due) != 1 {
		t.Fatalf("expected 1 due reminder, got %d", len(due))
	}

	// simulate deletion of the promoted reminders
	var remaining []domain.Reminder
	for _, r := range reminders {
		if r.Date != today {
			remaining = append(remaining, r)
		}
	}

	if again := DueReminders(remaining, today); len(again) != 0 {
		t.Fatalf("second evaluation promoted %d reminders again", len(again))
	}
	if len(remaining) != 1 || remaining[0].ID != 2 {
		t.Fatalf("non-due reminder must survive, got %+v", remaining)
	}
}
