package ws

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"ferapp_backend/internal/logger"
)

// Snapshots provides the full current document set of one collection,
// id-normalized and ready to push to subscribers.
type Snapshots interface {
	Snapshot(ctx context.Context, ownerID int64, collection string) ([]json.RawMessage, error)
}

// Hub tracks every live subscription. Each client belongs to one owner
// and holds its own set of subscribed collections; a store change for
// (owner, collection) pushes a fresh full snapshot to the matching
// clients, mirroring the store's subscribe contract.
type Hub struct {
	mu        sync.RWMutex
	clients   map[int64]map[*Client]bool
	snapshots Snapshots
}

func NewHub(snapshots Snapshots) *Hub {
	return &Hub{
		clients:   make(map[int64]map[*Client]bool),
		snapshots: snapshots,
	}
}

func (h *Hub) register(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	set, ok := h.clients[c.OwnerID]
	if !ok {
		set = make(map[*Client]bool)
		h.clients[c.OwnerID] = set
	}
	set[c] = true
	logger.Debug("ws client registered", "owner", c.OwnerID, "clients", len(set))
}

func (h *Hub) unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if set, ok := h.clients[c.OwnerID]; ok {
		delete(set, c)
		if len(set) == 0 {
			delete(h.clients, c.OwnerID)
		}
	}
}

// subscribers returns the owner's clients currently subscribed to the
// collection.
func (h *Hub) subscribers(ownerID int64, collection string) []*Client {
	h.mu.RLock()
	defer h.mu.RUnlock()
	var res []*Client
	for c := range h.clients[ownerID] {
		if c.subscribed(collection) {
			res = append(res, c)
		}
	}
	return res
}

// Notify implements store.Notifier: push the fresh snapshot of the
// changed collection to every subscribed client of the owner. Errors are
// reported to the client once; the subscription itself stays.
func (h *Hub) Notify(ownerID int64, collection string) {
	targets := h.subscribers(ownerID, collection)
	if len(targets) == 0 {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	docs, err := h.snapshots.Snapshot(ctx, ownerID, collection)
	if err != nil {
		logger.Error("snapshot for push failed", "owner", ownerID, "collection", collection, "error", err)
		msg, _ := json.Marshal(ErrorPayload{Type: MsgError, Collection: collection, Message: "snapshot failed"})
		for _, c := range targets {
			c.enqueue(msg)
		}
		return
	}

	msg, err := json.Marshal(SnapshotPayload{Type: MsgSnapshot, Collection: collection, Documents: docs})
	if err != nil {
		return
	}
	for _, c := range targets {
		c.enqueue(msg)
	}
}

// sendSnapshot delivers the current set of one collection to a single
// client, used right after it subscribes.
func (h *Hub) sendSnapshot(ctx context.Context, c *Client, collection string) {
	docs, err := h.snapshots.Snapshot(ctx, c.OwnerID, collection)
	if err != nil {
		msg, _ := json.Marshal(ErrorPayload{Type: MsgError, Collection: collection, Message: "snapshot failed"})
		c.enqueue(msg)
		return
	}
	msg, err := json.Marshal(SnapshotPayload{Type: MsgSnapshot, Collection: collection, Documents: docs})
	if err != nil {
		return
	}
	c.enqueue(msg)
}

// DropOwner releases every subscription of the owner and closes the
// sockets. Called on sign-out so no listener outlives the session.
func (h *Hub) DropOwner(ownerID int64) {
	h.mu.Lock()
	set := h.clients[ownerID]
	delete(h.clients, ownerID)
	h.mu.Unlock()

	for c := range set {
		c.close()
	}
	if len(set) > 0 {
		logger.Info("dropped owner subscriptions", "owner", ownerID, "clients", len(set))
	}
}
