package service

import "time"

// NewDocID returns a fresh owner-local document id. Millisecond
// timestamps keep ids unique enough for a single-writer dashboard and
// readable in the store.
func NewDocID() int64 {
	return time.Now().UnixMilli()
}
