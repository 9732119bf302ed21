package message

import "time"

type Message struct {
	ID               int64
	SenderID         int64
	ReceiverID       int64
	Subject          string
	Body             string
	SentAt           time.Time
	SenderUsername   string
	ReceiverUsername string
}

// Conversation is derived from messages grouped by counterpart; it is not stored.
type Conversation struct {
	PartnerID     int64
	PartnerName   string
	LastMessage   string
	LastTimestamp time.Time
}

// GroupConversations expects msgs ordered newest first and keeps the first
// message seen per counterpart of userID.
func GroupConversations(userID int64, msgs []Message) []Conversation {
	seen := make(map[int64]struct{}, len(msgs))
	out := make([]Conversation, 0)
	for _, m := range msgs {
		partnerID := m.SenderID
		partnerName := m.SenderUsername
		if m.SenderID == userID {
			partnerID = m.ReceiverID
			partnerName = m.ReceiverUsername
		}
		if _, ok := seen[partnerID]; ok {
			continue
		}
		seen[partnerID] = struct{}{}
		out = append(out, Conversation{
			PartnerID:     partnerID,
			PartnerName:   partnerName,
			LastMessage:   m.Body,
			LastTimestamp: m.SentAt,
		})
	}
	return out
}
