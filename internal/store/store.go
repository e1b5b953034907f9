package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"ferapp_backend/internal/logger"

	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	// ErrNotAuthenticated is returned by every mutating operation when no
	// owner is established. Writes fail closed.
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrNotFound is returned by Patch when the target document is missing.
	ErrNotFound = errors.New("document not found")
	// ErrUnknownCollection rejects collection names outside the fixed set.
	ErrUnknownCollection = errors.New("unknown collection")
)

// Collection names of the per-owner document sets.
const (
	ColTasks           = "tasks"
	ColProviders       = "providers"
	ColServices        = "service_providers"
	ColEmployees       = "employees"
	ColOrders          = "orders"
	ColServiceRequests = "service_requests"
	ColCalls           = "calls"
	ColReminders       = "reminders"
)

var collections = map[string]bool{
	ColTasks:           true,
	ColProviders:       true,
	ColServices:        true,
	ColEmployees:       true,
	ColOrders:          true,
	ColServiceRequests: true,
	ColCalls:           true,
	ColReminders:       true,
}

// Known reports whether name is one of the fixed owner collections.
func Known(name string) bool { return collections[name] }

// Document is one raw record as stored: the storage key plus the JSON body.
type Document struct {
	ID   int64
	Data json.RawMessage
}

// Notifier receives a signal after every committed write to a collection.
// The store never calls it for failed writes.
type Notifier interface {
	Notify(ownerID int64, collection string)
}

// Store keeps every owner's documents in one jsonb-backed table and pushes
// a change signal to the registered notifiers after each write.
type Store struct {
	db        *pgxpool.Pool
	notifiers []Notifier
}

func New(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// AddNotifier registers n for change signals. Not safe to call after the
// server starts serving; registration happens during wiring only.
func (s *Store) AddNotifier(n Notifier) {
	s.notifiers = append(s.notifiers, n)
}

func (s *Store) check(ownerID int64, collection string) error {
	if ownerID == 0 {
		return ErrNotAuthenticated
	}
	if !Known(collection) {
		return fmt.Errorf("%w: %s", ErrUnknownCollection, collection)
	}
	return nil
}

// Put creates or fully overwrites the document at id.
func (s *Store) Put(ctx context.Context, ownerID int64, collection string, id int64, doc any) error {
	if err := s.check(ownerID, collection); err != nil {
		return err
	}
	body, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(ctx, `
		INSERT INTO documents (owner_id, collection, doc_id, doc)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (owner_id, collection, doc_id)
		DO UPDATE SET doc = EXCLUDED.doc, updated_at = now()`,
		ownerID, collection, id, body)
	if err != nil {
		return err
	}
	s.notify(ownerID, collection)
	return nil
}

// Patch merges fields into an existing document.
func (s *Store) Patch(ctx context.Context, ownerID int64, collection string, id int64, fields map[string]any) error {
	if err := s.check(ownerID, collection); err != nil {
		return err
	}
	body, err := json.Marshal(fields)
	if err != nil {
		return err
	}
	tag, err := s.db.Exec(ctx, `
		UPDATE documents SET doc = doc || $4::jsonb, updated_at = now()
		WHERE owner_id = $1 AND collection = $2 AND doc_id = $3`,
		ownerID, collection, id, body)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	s.notify(ownerID, collection)
	return nil
}

// Delete removes the document at id. Deleting a missing document is not
// an error; the collection still gets a change signal only on real removal.
func (s *Store) Delete(ctx context.Context, ownerID int64, collection string, id int64) error {
	if err := s.check(ownerID, collection); err != nil {
		return err
	}
	tag, err := s.db.Exec(ctx, `
		DELETE FROM documents
		WHERE owner_id = $1 AND collection = $2 AND doc_id = $3`,
		ownerID, collection, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() > 0 {
		s.notify(ownerID, collection)
	}
	return nil
}

// List returns the full current document set of one collection.
func (s *Store) List(ctx context.Context, ownerID int64, collection string) ([]Document, error) {
	if err := s.check(ownerID, collection); err != nil {
		return nil, err
	}
	rows, err := s.db.Query(ctx, `
		SELECT doc_id, doc FROM documents
		WHERE owner_id = $1 AND collection = $2
		ORDER BY doc_id`,
		ownerID, collection)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []Document
	for rows.Next() {
		var d Document
		if err := rows.Scan(&d.ID, &d.Data); err != nil {
			return nil, err
		}
		res = append(res, d)
	}
	return res, rows.Err()
}

func (s *Store) notify(ownerID int64, collection string) {
	for _, n := range s.notifiers {
		n.Notify(ownerID, collection)
	}
	logger.Debug("store change", "owner", ownerID, "collection", collection)
}
