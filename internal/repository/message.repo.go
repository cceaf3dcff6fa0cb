package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/SYK3S999/tamweeli-sub001/internal/domain"
	"github.com/SYK3S999/tamweeli-sub001/pkg/xerrors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type MessageRepository struct {
	db *pgxpool.Pool
}

func NewMessageRepository(db *pgxpool.Pool) *MessageRepository {
	return &MessageRepository{db: db}
}

func (r *MessageRepository) CreateConversation(ctx context.Context, c *domain.Conversation) error {
	query := `INSERT INTO conversations (id, participant_a, participant_b, last_message_at, created_at)
	VALUES ($1, $2, $3, $4, $5)`
	_, err := r.db.Exec(ctx, query, c.ID, c.ParticipantA, c.ParticipantB, c.LastMessageAt, c.CreatedAt)
	if err != nil {
		return fmt.Errorf("create conversation: %w", err)
	}
	return nil
}

func (r *MessageRepository) GetConversation(ctx context.Context, id string) (*domain.Conversation, error) {
	var c domain.Conversation
	err := r.db.QueryRow(ctx,
		`SELECT id, participant_a, participant_b, last_message_at, created_at
		 FROM conversations WHERE id = $1`, id).
		Scan(&c.ID, &c.ParticipantA, &c.ParticipantB, &c.LastMessageAt, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrConversationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get conversation: %w", err)
	}
	return &c, nil
}

// FindByParticipants looks up the conversation for an ordered participant
// pair. Callers normalize the order first.
func (r *MessageRepository) FindByParticipants(ctx context.Context, a, b string) (*domain.Conversation, error) {
	var c domain.Conversation
	err := r.db.QueryRow(ctx,
		`SELECT id, participant_a, participant_b, last_message_at, created_at
		 FROM conversations WHERE participant_a = $1 AND participant_b = $2`, a, b).
		Scan(&c.ID, &c.ParticipantA, &c.ParticipantB, &c.LastMessageAt, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrConversationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find conversation: %w", err)
	}
	return &c, nil
}

func (r *MessageRepository) ListConversations(ctx context.Context, userID string) ([]*domain.Conversation, error) {
	query := `SELECT id, participant_a, participant_b, last_message_at, created_at
	          FROM conversations WHERE participant_a = $1 OR participant_b = $1
	          ORDER BY last_message_at DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list conversations: %w", err)
	}
	defer rows.Close()

	var conversations []*domain.Conversation
	for rows.Next() {
		var c domain.Conversation
		if err := rows.Scan(&c.ID, &c.ParticipantA, &c.ParticipantB,
			&c.LastMessageAt, &c.CreatedAt); err != nil {
			return nil, err
		}
		conversations = append(conversations, &c)
	}
	return conversations, rows.Err()
}

// CreateMessage appends a message and bumps the conversation's
// last_message_at in one database transaction.
func (r *MessageRepository) CreateMessage(ctx context.Context, m *domain.Message) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin send message: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `INSERT INTO messages
		(id, conversation_id, sender_id, receiver_id, content, is_read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		m.ID, m.ConversationID, m.SenderID, m.ReceiverID, m.Content, m.IsRead,
		m.CreatedAt); err != nil {
		return fmt.Errorf("insert message: %w", err)
	}
	if _, err := tx.Exec(ctx,
		`UPDATE conversations SET last_message_at = $2 WHERE id = $1`,
		m.ConversationID, m.CreatedAt); err != nil {
		return fmt.Errorf("touch conversation: %w", err)
	}
	return tx.Commit(ctx)
}

func (r *MessageRepository) ListMessages(ctx context.Context, conversationID string) ([]*domain.Message, error) {
	query := `SELECT id, conversation_id, sender_id, receiver_id, content, is_read, created_at
	          FROM messages WHERE conversation_id = $1 ORDER BY created_at ASC`
	rows, err := r.db.Query(ctx, query, conversationID)
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}
	defer rows.Close()

	var messages []*domain.Message
	for rows.Next() {
		var m domain.Message
		if err := rows.Scan(&m.ID, &m.ConversationID, &m.SenderID, &m.ReceiverID,
			&m.Content, &m.IsRead, &m.CreatedAt); err != nil {
			return nil, err
		}
		messages = append(messages, &m)
	}
	return messages, rows.Err()
}

// MarkConversationRead flags every message addressed to userID as read.
func (r *MessageRepository) MarkConversationRead(ctx context.Context, conversationID, userID string) error {
	_, err := r.db.Exec(ctx,
		`UPDATE messages SET is_read = TRUE
		 WHERE conversation_id = $1 AND receiver_id = $2 AND is_read = FALSE`,
		conversationID, userID)
	if err != nil {
		return fmt.Errorf("mark conversation read: %w", err)
	}
	return nil
}
