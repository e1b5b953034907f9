package repository

import (
	"context"
	"encoding/json"

	"ferapp_backend/internal/cache"
	"ferapp_backend/internal/store"
)

// Documents is the shared read path of all document repositories:
// cache-aside snapshot listing plus the id normalization rule. A document
// whose body carries no numeric "id" takes its storage key as the id.
type Documents struct {
	store *store.Store
	cache *cache.SnapshotCache
}

func NewDocuments(st *store.Store, c *cache.SnapshotCache) *Documents {
	return &Documents{store: st, cache: c}
}

// Store exposes the underlying store for writes.
func (d *Documents) Store() *store.Store { return d.store }

// List returns the collection snapshot, serving from cache when possible.
// Cache errors fall through to the store.
func (d *Documents) List(ctx context.Context, ownerID int64, collection string) ([]store.Document, error) {
	if docs, err := d.cache.Get(ctx, ownerID, collection); err == nil && docs != nil {
		return docs, nil
	}
	docs, err := d.store.List(ctx, ownerID, collection)
	if err != nil {
		return nil, err
	}
	_ = d.cache.Set(ctx, ownerID, collection, docs)
	return docs, nil
}

// Snapshot returns the collection as raw JSON documents with the id
// fallback applied, ready to hand to subscribers unchanged.
func (d *Documents) Snapshot(ctx context.Context, ownerID int64, collection string) ([]json.RawMessage, error) {
	docs, err := d.List(ctx, ownerID, collection)
	if err != nil {
		return nil, err
	}
	out := make([]json.RawMessage, 0, len(docs))
	for _, doc := range docs {
		out = append(out, NormalizeID(doc))
	}
	return out, nil
}

// NormalizeID returns the document body with the storage key injected as
// "id" when the body itself has none (or has it as zero).
func NormalizeID(doc store.Document) json.RawMessage {
	var fields map[string]any
	if err := json.Unmarshal(doc.Data, &fields); err != nil {
		return doc.Data
	}
	if id, ok := fields["id"].(float64); ok && id != 0 {
		return doc.Data
	}
	fields["id"] = doc.ID
	b, err := json.Marshal(fields)
	if err != nil {
		return doc.Data
	}
	return b
}

// decodeID applies the id fallback to an already-decoded record.
func decodeID(recID *int64, key int64) {
	if *recID == 0 {
		*recID = key
	}
}
