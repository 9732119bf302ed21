package dto

import (
	"time"

	"job-bridge/internal/domain/message"
)

type MessageRequest struct {
	ReceiverID int64  `json:"receiver_id"`
	Subject    string `json:"subject"`
	Message    string `json:"message"`
}

type ConversationResponse struct {
	PartnerID     int64     `json:"partner_id"`
	PartnerName   string    `json:"partner_name"`
	LastMessage   string    `json:"last_message"`
	LastTimestamp time.Time `json:"last_timestamp"`
}

type MessageResponse struct {
	ID         int64     `json:"id"`
	SenderID   int64     `json:"sender_id"`
	SenderName string    `json:"sender_name"`
	ReceiverID int64     `json:"receiver_id"`
	Subject    string    `json:"subject"`
	Text       string    `json:"text"`
	Timestamp  time.Time `json:"timestamp"`
}

func FromConversations(items []message.Conversation) []ConversationResponse {
	out := make([]ConversationResponse, 0, len(items))
	for _, c := range items {
		out = append(out, ConversationResponse{
			PartnerID:     c.PartnerID,
			PartnerName:   c.PartnerName,
			LastMessage:   c.LastMessage,
			LastTimestamp: c.LastTimestamp,
		})
	}
	return out
}

func FromMessages(items []message.Message) []MessageResponse {
	out := make([]MessageResponse, 0, len(items))
	for _, m := range items {
		out = append(out, MessageResponse{
			ID:         m.ID,
			SenderID:   m.SenderID,
			SenderName: m.SenderUsername,
			ReceiverID: m.ReceiverID,
			Subject:    m.Subject,
			Text:       m.Body,
			Timestamp:  m.SentAt,
		})
	}
	return out
}
