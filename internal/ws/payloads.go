package ws

import "encoding/json"

const (
	// client -> server
	MsgSubscribe   = "subscribe"
	MsgUnsubscribe = "unsubscribe"

	// server -> client
	MsgReady    = "ready"
	MsgSnapshot = "snapshot"
	MsgError    = "error"
)

// client -> server
type SubscribePayload struct {
	Type        string   `json:"type"`
	Collections []string `json:"collections"`
}

// server -> client
type SnapshotPayload struct {
	Type       string            `json:"type"`
	Collection string            `json:"collection"`
	Documents  []json.RawMessage `json:"documents"`
}

type ErrorPayload struct {
	Type       string `json:"type"`
	Collection string `json:"collection,omitempty"`
	Message    string `json:"message"`
}
