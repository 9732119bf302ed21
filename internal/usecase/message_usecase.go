package usecase

import (
	"context"
	"errors"
	"strings"

	"job-bridge/internal/domain/message"
	"job-bridge/internal/domain/user"
	"job-bridge/internal/repository"
)

type SendMessageInput struct {
	ReceiverID int64
	Subject    string
	Body       string
}

type MessageUsecase interface {
	Send(ctx context.Context, sender user.Identity, in SendMessageInput) (message.Message, error)
	Inbox(ctx context.Context, userID int64) ([]message.Conversation, error)
	Conversation(ctx context.Context, userID, partnerID int64) ([]message.Message, error)
}

type Message struct {
	messages repository.MessageRepository
	users    user.Repository
	notifier Notifier
}

func NewMessageUsecase(messages repository.MessageRepository, users user.Repository, notifier Notifier) *Message {
	return &Message{messages: messages, users: users, notifier: notifierOrNoop(notifier)}
}

func (u *Message) Send(ctx context.Context, sender user.Identity, in SendMessageInput) (message.Message, error) {
	body := strings.TrimSpace(in.Body)
	if in.ReceiverID <= 0 || body == "" {
		return message.Message{}, invalid("receiver_id and message are required")
	}

	receiver, err := u.users.GetUserByID(ctx, in.ReceiverID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return message.Message{}, ErrNotFound
		}
		return message.Message{}, internalErr(err)
	}

	m, err := u.messages.Create(ctx, message.Message{
		SenderID:   sender.ID,
		ReceiverID: receiver.ID,
		Subject:    strings.TrimSpace(in.Subject),
		Body:       body,
	})
	if err != nil {
		return message.Message{}, mapRepoNotFound(err)
	}
	m.SenderUsername = sender.Username
	m.ReceiverUsername = receiver.Username

	u.notifier.NotifyUser(receiver.ID, EventMessageReceived, map[string]any{
		"id":          m.ID,
		"sender_id":   m.SenderID,
		"sender_name": m.SenderUsername,
		"subject":     m.Subject,
		"message":     m.Body,
		"sent_at":     m.SentAt,
	})
	return m, nil
}

func (u *Message) Inbox(ctx context.Context, userID int64) ([]message.Conversation, error) {
	msgs, err := u.messages.ListForUser(ctx, userID)
	if err != nil {
		return nil, internalErr(err)
	}
	return message.GroupConversations(userID, msgs), nil
}

func (u *Message) Conversation(ctx context.Context, userID, partnerID int64) ([]message.Message, error) {
	if partnerID <= 0 {
		return nil, invalid("user id must be a positive integer")
	}
	msgs, err := u.messages.ListConversation(ctx, userID, partnerID)
	if err != nil {
		return nil, internalErr(err)
	}
	return msgs, nil
}
