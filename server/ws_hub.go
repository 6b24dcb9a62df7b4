package server

import (
	"log/slog"
	"sync"

	"github.com/bytedance/sonic"
)

// WatchHub fans received scripts out to every connected watcher.
type WatchHub struct {
	mu      sync.Mutex
	clients map[*WatchClient]struct{}
}

func NewWatchHub() *WatchHub {
	return &WatchHub{clients: make(map[*WatchClient]struct{})}
}

func (h *WatchHub) AddClient(conn messageConn) *WatchClient {
	h.mu.Lock()
	defer h.mu.Unlock()
	cl := NewWatchClient(conn, h)
	h.clients[cl] = struct{}{}
	return cl
}

func (h *WatchHub) RemoveClient(c *WatchClient) {
	h.mu.Lock()
	delete(h.clients, c)
	h.mu.Unlock()
}

func (h *WatchHub) Broadcast(rec ScriptRecord) {
	msg, err := sonic.Marshal(rec)
	if err != nil {
		slog.Error("failed to marshal script record", "id", rec.ID, "err", err)
		return
	}
	h.mu.Lock()
	clients := make([]*WatchClient, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.Unlock()

	for _, c := range clients {
		if !c.enqueue(msg) {
			slog.Warn("watcher send channel full, removing watcher")
			c.Close()
		}
	}
}

func (h *WatchHub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// CloseAll disconnects every watcher.
func (h *WatchHub) CloseAll() {
	h.mu.Lock()
	clients := make([]*WatchClient, 0, len(h.clients))
	for c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.Unlock()
	for _, c := range clients {
		c.Close()
	}
}
