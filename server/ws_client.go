package server

import (
	"log/slog"
	"sync"

	"github.com/gofiber/contrib/websocket"
)

type messageConn interface {
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// WatchClient is one websocket watcher of received scripts.
type WatchClient struct {
	conn messageConn
	send chan []byte
	hub  *WatchHub
	once sync.Once

	mu     sync.Mutex
	closed bool
}

func NewWatchClient(conn messageConn, hub *WatchHub) *WatchClient {
	c := &WatchClient{
		conn: conn,
		send: make(chan []byte, 64),
		hub:  hub,
	}
	go c.writePump()
	return c
}

func (c *WatchClient) writePump() {
	for msg := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			slog.Error("watcher write error", "err", err)
			c.Close()
			return
		}
	}
}

// enqueue reports false when the watcher is closed or too slow to keep up.
func (c *WatchClient) enqueue(msg []byte) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return false
	}
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

func (c *WatchClient) Close() {
	c.once.Do(func() {
		c.hub.RemoveClient(c)
		c.mu.Lock()
		c.closed = true
		close(c.send)
		c.mu.Unlock()
		c.conn.Close()
	})
}
