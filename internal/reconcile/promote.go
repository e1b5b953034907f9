// Package reconcile holds the pure rules tying tasks, reminders and
// dated business actions to calendar dates. Everything here works on
// immutable snapshots; persistence is the caller's job.
package reconcile

import (
	"strings"
	"time"

	"ferapp_backend/internal/domain"
)

// DateLayout is the civil date format used by every dated document.
const DateLayout = "2006-01-02"

// Today returns the current civil date in the owner's timezone.
func Today(loc *time.Location) string {
	return time.Now().In(loc).Format(DateLayout)
}

// DueReminders returns the reminders whose date equals today exactly.
// Past-dated reminders are deliberately skipped: a missed reminder stays
// in the list for manual review instead of silently becoming a task.
func DueReminders(reminders []domain.Reminder, today string) []domain.Reminder {
	var due []domain.Reminder
	for _, r := range reminders {
		if r.Date == today {
			due = append(due, r)
		}
	}
	return due
}

// PromoteReminder builds the task a due reminder converts into: fresh id,
// upper-cased text, pending, dated today. Removing the reminder is what
// makes the promotion idempotent per day; no extra flag is kept.
func PromoteReminder(r domain.Reminder, today string, id int64) domain.Task {
	return domain.Task{
		ID:        id,
		Text:      strings.ToUpper(r.Text),
		Completed: false,
		Date:      today,
	}
}
