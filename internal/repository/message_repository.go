package repository

import (
	"context"

	"job-bridge/internal/database"
	"job-bridge/internal/database/postgres"
	"job-bridge/internal/domain/message"
)

type MessageRepository interface {
	// Create returns ErrNotFound when the receiver does not exist.
	Create(ctx context.Context, m message.Message) (message.Message, error)
	// ListForUser returns every message sent or received by userID, newest first.
	ListForUser(ctx context.Context, userID int64) ([]message.Message, error)
	// ListConversation returns messages between the two users, oldest first.
	ListConversation(ctx context.Context, userID, partnerID int64) ([]message.Message, error)
}

type PostgresMessageRepository struct {
	db database.DB
}

func NewPostgresMessageRepository(db database.DB) *PostgresMessageRepository {
	return &PostgresMessageRepository{db: db}
}

const messageSelect = `
SELECT m.id, m.sender_id, m.receiver_id, m.subject, m.message, m.sent_at, su.username, ru.username
FROM messages m
JOIN users su ON su.id = m.sender_id
JOIN users ru ON ru.id = m.receiver_id`

func (r *PostgresMessageRepository) Create(ctx context.Context, m message.Message) (message.Message, error) {
	err := r.db.QueryRow(ctx,
		`INSERT INTO messages (sender_id, receiver_id, subject, message)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, sent_at`,
		m.SenderID,
		m.ReceiverID,
		m.Subject,
		m.Body,
	).Scan(&m.ID, &m.SentAt)
	if err != nil {
		if postgres.IsForeignKeyViolation(err) {
			return message.Message{}, ErrNotFound
		}
		return message.Message{}, err
	}
	return m, nil
}

func (r *PostgresMessageRepository) ListForUser(ctx context.Context, userID int64) ([]message.Message, error) {
	return r.list(ctx,
		messageSelect+` WHERE m.sender_id = $1 OR m.receiver_id = $1 ORDER BY m.sent_at DESC, m.id DESC`,
		userID,
	)
}

func (r *PostgresMessageRepository) ListConversation(ctx context.Context, userID, partnerID int64) ([]message.Message, error) {
	return r.list(ctx,
		messageSelect+`
		 WHERE (m.sender_id = $1 AND m.receiver_id = $2) OR (m.sender_id = $2 AND m.receiver_id = $1)
		 ORDER BY m.sent_at ASC, m.id ASC`,
		userID,
		partnerID,
	)
}

func (r *PostgresMessageRepository) list(ctx context.Context, query string, args ...any) ([]message.Message, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]message.Message, 0)
	for rows.Next() {
		var m message.Message
		if err := rows.Scan(&m.ID, &m.SenderID, &m.ReceiverID, &m.Subject, &m.Body, &m.SentAt, &m.SenderUsername, &m.ReceiverUsername); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
