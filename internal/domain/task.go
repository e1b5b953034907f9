package domain

// Task is a dashboard to-do item. Pending and completed tasks are one
// logical set split by the Completed flag; the date never changes after
// creation (text edits keep it).
type Task struct {
	ID        int64  `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
	Date      string `json:"date"` // civil date, YYYY-MM-DD
}

// Reminder is a note scheduled for a calendar date. The day its date
// arrives it is promoted into a Task and removed from the reminder set.
type Reminder struct {
	ID   int64  `json:"id"`
	Date string `json:"date"`
	Text string `json:"text"`
}
