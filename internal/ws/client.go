package ws

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"ferapp_backend/internal/logger"
	"ferapp_backend/internal/store"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 30 * time.Second
	pingPeriod = 25 * time.Second
)

type Client struct {
	OwnerID int64
	Conn    *websocket.Conn
	Send    chan []byte

	hub  *Hub
	Done chan struct{}

	subsMu sync.RWMutex
	subs   map[string]bool

	closeOnce sync.Once
}

func NewClient(ownerID int64, conn *websocket.Conn, hub *Hub) *Client {
	return &Client{
		OwnerID: ownerID,
		Conn:    conn,
		Send:    make(chan []byte, 256),
		hub:     hub,
		Done:    make(chan struct{}),
		subs:    make(map[string]bool),
	}
}

func (c *Client) subscribed(collection string) bool {
	c.subsMu.RLock()
	defer c.subsMu.RUnlock()
	return c.subs[collection]
}

// enqueue queues a message without blocking; a client that cannot keep
// up drops messages rather than stalling the hub.
func (c *Client) enqueue(msg []byte) {
	select {
	case c.Send <- msg:
	default:
		logger.Warn("ws send buffer full, dropping message", "owner", c.OwnerID)
	}
}

func (c *Client) close() {
	c.closeOnce.Do(func() {
		if c.Conn != nil {
			_ = c.Conn.Close()
		}
	})
}

func (c *Client) Run() {
	go c.writePump()

	c.hub.register(c)

	readyMsg, _ := json.Marshal(map[string]string{"type": MsgReady})
	c.enqueue(readyMsg)

	c.readPump()
}

func (c *Client) readPump() {
	defer func() {
		c.hub.unregister(c)
		c.close()
		close(c.Done)
	}()

	c.Conn.SetReadLimit(4096)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, msg, err := c.Conn.ReadMessage()
		if err != nil {
			return
		}
		c.handleMessage(msg)
	}
}

func (c *Client) handleMessage(msg []byte) {
	var req SubscribePayload
	if err := json.Unmarshal(msg, &req); err != nil {
		out, _ := json.Marshal(ErrorPayload{Type: MsgError, Message: "bad message"})
		c.enqueue(out)
		return
	}

	switch req.Type {
	case MsgSubscribe:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		for _, col := range req.Collections {
			if !store.Known(col) {
				out, _ := json.Marshal(ErrorPayload{Type: MsgError, Collection: col, Message: "unknown collection"})
				c.enqueue(out)
				continue
			}
			c.subsMu.Lock()
			c.subs[col] = true
			c.subsMu.Unlock()
			c.hub.sendSnapshot(ctx, c, col)
		}
	case MsgUnsubscribe:
		c.subsMu.Lock()
		for _, col := range req.Collections {
			delete(c.subs, col)
		}
		c.subsMu.Unlock()
	default:
		out, _ := json.Marshal(ErrorPayload{Type: MsgError, Message: "unknown message type"})
		c.enqueue(out)
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.close()
	}()

	for {
		select {
		case msg, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.Conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
