package ws

import (
	"encoding/json"
	"time"
)

type Event struct {
	Type      string `json:"type"`
	UserID    int64  `json:"user_id"`
	Payload   any    `json:"payload"`
	Timestamp string `json:"timestamp"`
}

// NotifyUser pushes an event to every live connection of userID. Users
// without a connection simply miss it; nothing is queued.
func (h *Hub) NotifyUser(userID int64, eventType string, payload any) {
	if h == nil {
		return
	}

	b, err := json.Marshal(Event{
		Type:      eventType,
		UserID:    userID,
		Payload:   payload,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		h.logf("WS event encode failed | type=%s error=%v", eventType, err)
		return
	}

	h.SendToUser(userID, b)
}
