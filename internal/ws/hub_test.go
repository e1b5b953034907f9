package ws

import (
	"context"
	"encoding/json"
	"testing"
)

type fakeSnapshots struct {
	docs map[string][]json.RawMessage
}

func (f *fakeSnapshots) Snapshot(ctx context.Context, ownerID int64, collection string) ([]json.RawMessage, error) {
	return f.docs[collection], nil
}

func testClient(hub *Hub, ownerID int64) *Client {
	c := NewClient(ownerID, nil, hub)
	hub.register(c)
	return c
}

func drain(t *testing.T, c *Client) *SnapshotPayload {
	t.Helper()
	select {
	case msg := <-c.Send:
		var p SnapshotPayload
		if err := json.Unmarshal(msg, &p); err != nil {
			t.Fatalf("bad payload: %v", err)
		}
		return &p
	default:
		return nil
	}
}

func TestHub_NotifyPushesToSubscribers(t *testing.T) {
	snaps := &fakeSnapshots{docs: map[string][]json.RawMessage{
		"tasks": {json.RawMessage(`{"id":1,"text":"A","completed":false,"date":"2024-06-01"}`)},
	}}
	hub := NewHub(snaps)

	c := testClient(hub, 10)
	c.subsMu.Lock()
	c.subs["tasks"] = true
	c.subsMu.Unlock()

	hub.Notify(10, "tasks")

	p := drain(t, c)
	if p == nil {
		t.Fatal("expected a snapshot push")
	}
	if p.Type != MsgSnapshot || p.Collection != "tasks" || len(p.Documents) != 1 {
		t.Fatalf("unexpected payload: %+v", p)
	}
}

func TestHub_NotifySkipsUnsubscribed(t *testing.T) {
	hub := NewHub(&fakeSnapshots{docs: map[string][]json.RawMessage{}})

	c := testClient(hub, 10)
	c.subsMu.Lock()
	c.subs["reminders"] = true
	c.subsMu.Unlock()

	hub.Notify(10, "tasks")
	if p := drain(t, c); p != nil {
		t.Fatalf("unsubscribed client got a push: %+v", p)
	}

	// other owners never see the change either
	other := testClient(hub, 11)
	other.subsMu.Lock()
	other.subs["tasks"] = true
	other.subsMu.Unlock()

	hub.Notify(10, "tasks")
	if p := drain(t, other); p != nil {
		t.Fatalf("foreign owner got a push: %+v", p)
	}
}

func TestHub_UnregisterStopsPushes(t *testing.T) {
	hub := NewHub(&fakeSnapshots{docs: map[string][]json.RawMessage{"tasks": {}}})

	c := testClient(hub, 10)
	c.subsMu.Lock()
	c.subs["tasks"] = true
	c.subsMu.Unlock()

	hub.unregister(c)
	hub.Notify(10, "tasks")
	if p := drain(t, c); p != nil {
		t.Fatalf("unregistered client got a push: %+v", p)
	}
}

func TestHub_DropOwnerReleasesEverySubscription(t *testing.T) {
	hub := NewHub(&fakeSnapshots{docs: map[string][]json.RawMessage{"tasks": {}}})

	a := testClient(hub, 10)
	b := testClient(hub, 10)
	for _, c := range []*Client{a, b} {
		c.subsMu.Lock()
		c.subs["tasks"] = true
		c.subsMu.Unlock()
	}

	if got := len(hub.subscribers(10, "tasks")); got != 2 {
		t.Fatalf("expected 2 subscribers, got %d", got)
	}

	// sign-out: every listener of the owner goes away at once
	hub.DropOwner(10)

	if got := len(hub.subscribers(10, "tasks")); got != 0 {
		t.Fatalf("subscriptions survived sign-out: %d", got)
	}
}
