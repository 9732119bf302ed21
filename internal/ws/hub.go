package ws

import (
	"context"
	"log"
	"sync"
)

// Hub tracks live connections per user and fans events out to them.
type Hub struct {
	clients    map[int64]map[*Client]bool
	register   chan *Client
	unregister chan *Client
	mutex      sync.RWMutex
	logger     *log.Logger
}

func NewHub(logger *log.Logger) *Hub {
	return &Hub{
		clients:    make(map[int64]map[*Client]bool),
		register:   make(chan *Client, 128),
		unregister: make(chan *Client, 128),
		logger:     logger,
	}
}

// Run serves register and unregister requests until ctx is done, then
// closes every remaining client.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return

		case client := <-h.register:
			if client == nil {
				continue
			}
			h.mutex.Lock()
			set, ok := h.clients[client.userID]
			if !ok {
				set = make(map[*Client]bool)
				h.clients[client.userID] = set
			}
			set[client] = true
			total := h.countLocked()
			h.mutex.Unlock()
			h.logf("WS connected | client_id=%s user_id=%d total_clients=%d", client.id, client.userID, total)

		case client := <-h.unregister:
			if client == nil {
				continue
			}
			h.mutex.Lock()
			removed := h.removeLocked(client)
			total := h.countLocked()
			h.mutex.Unlock()
			if removed {
				h.logf("WS disconnected | client_id=%s user_id=%d total_clients=%d", client.id, client.userID, total)
			}
		}
	}
}

func (h *Hub) Register(client *Client) {
	if h == nil {
		return
	}
	h.register <- client
}

func (h *Hub) Unregister(client *Client) {
	if h == nil {
		return
	}
	h.unregister <- client
}

// SendToUser queues message on every connection of userID. A connection
// whose buffer is full is dropped rather than blocking the sender.
func (h *Hub) SendToUser(userID int64, message []byte) int {
	if h == nil {
		return 0
	}

	h.mutex.Lock()
	defer h.mutex.Unlock()

	delivered := 0
	for client := range h.clients[userID] {
		select {
		case client.send <- message:
			delivered++
		default:
			h.removeLocked(client)
			h.logf("WS slow client dropped | client_id=%s user_id=%d", client.id, userID)
		}
	}
	return delivered
}

func (h *Hub) ClientCount() int {
	if h == nil {
		return 0
	}
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return h.countLocked()
}

func (h *Hub) UserClientCount(userID int64) int {
	if h == nil {
		return 0
	}
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients[userID])
}

func (h *Hub) removeLocked(client *Client) bool {
	set, ok := h.clients[client.userID]
	if !ok || !set[client] {
		return false
	}
	delete(set, client)
	if len(set) == 0 {
		delete(h.clients, client.userID)
	}
	close(client.send)
	return true
}

func (h *Hub) countLocked() int {
	total := 0
	for _, set := range h.clients {
		total += len(set)
	}
	return total
}

func (h *Hub) closeAll() {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	for _, set := range h.clients {
		for client := range set {
			h.removeLocked(client)
		}
	}
}

func (h *Hub) logf(format string, args ...any) {
	if h.logger != nil {
		h.logger.Printf(format, args...)
	}
}
