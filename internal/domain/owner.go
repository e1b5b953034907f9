package domain

import "time"

// Owner is the authenticated identity whose document collections are
// being read and written. Every document is scoped to exactly one owner.
type Owner struct {
	ID        int64     `db:"id"`
	GoogleSub string    `db:"google_sub"`
	Email     string    `db:"email"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}
