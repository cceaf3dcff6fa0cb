package messaging

import (
	"context"
	"errors"
	"time"

	"github.com/SYK3S999/tamweeli-sub001/internal/domain"
	"github.com/SYK3S999/tamweeli-sub001/pkg/id"
	"github.com/SYK3S999/tamweeli-sub001/pkg/xerrors"
)

type Store interface {
	CreateConversation(ctx context.Context, c *domain.Conversation) error
	GetConversation(ctx context.Context, id string) (*domain.Conversation, error)
	FindByParticipants(ctx context.Context, a, b string) (*domain.Conversation, error)
	ListConversations(ctx context.Context, userID string) ([]*domain.Conversation, error)
	CreateMessage(ctx context.Context, m *domain.Message) error
	ListMessages(ctx context.Context, conversationID string) ([]*domain.Message, error)
	MarkConversationRead(ctx context.Context, conversationID, userID string) error
}

type Notifier interface {
	Notify(ctx context.Context, userID, title, body string, typ domain.NotificationType)
}

type Service struct {
	store    Store
	notifier Notifier
}

func New(store Store, notifier Notifier) *Service {
	return &Service{store: store, notifier: notifier}
}

// normalize orders a participant pair so (a,b) and (b,a) name the same
// conversation.
func normalize(a, b string) (string, string) {
	if b < a {
		return b, a
	}
	return a, b
}

// FindOrCreateConversation returns the existing thread between two users,
// creating it on first contact.
func (s *Service) FindOrCreateConversation(ctx context.Context, userID, peerID string) (*domain.Conversation, error) {
	if userID == peerID {
		return nil, xerrors.ErrSelfConversation
	}

	a, b := normalize(userID, peerID)
	c, err := s.store.FindByParticipants(ctx, a, b)
	if err == nil {
		return c, nil
	}
	if !errors.Is(err, xerrors.ErrConversationNotFound) {
		return nil, err
	}

	now := time.Now()
	c = &domain.Conversation{
		ID:            id.New(id.Conversation),
		ParticipantA:  a,
		ParticipantB:  b,
		LastMessageAt: now,
		CreatedAt:     now,
	}
	if err := s.store.CreateConversation(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *Service) Send(ctx context.Context, senderID, conversationID, content string) (*domain.Message, error) {
	if content == "" {
		return nil, xerrors.ErrEmptyMessage
	}

	c, err := s.store.GetConversation(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	receiverID := c.OtherParticipant(senderID)
	if receiverID == "" {
		return nil, xerrors.ErrNotParticipant
	}

	m := &domain.Message{
		ID:             id.New(id.Message),
		ConversationID: conversationID,
		SenderID:       senderID,
		ReceiverID:     receiverID,
		Content:        content,
		CreatedAt:      time.Now(),
	}
	if err := s.store.CreateMessage(ctx, m); err != nil {
		return nil, err
	}

	s.notifier.Notify(ctx, receiverID, "New message", content, domain.NotifyInfo)
	return m, nil
}

func (s *Service) ListConversations(ctx context.Context, userID string) ([]*domain.Conversation, error) {
	return s.store.ListConversations(ctx, userID)
}

func (s *Service) ListMessages(ctx context.Context, userID, conversationID string) ([]*domain.Message, error) {
	c, err := s.store.GetConversation(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if !c.HasParticipant(userID) {
		return nil, xerrors.ErrNotParticipant
	}
	return s.store.ListMessages(ctx, conversationID)
}

func (s *Service) MarkRead(ctx context.Context, userID, conversationID string) error {
	c, err := s.store.GetConversation(ctx, conversationID)
	if err != nil {
		return err
	}
	if !c.HasParticipant(userID) {
		return xerrors.ErrNotParticipant
	}
	return s.store.MarkConversationRead(ctx, conversationID, userID)
}
