package notification

import (
	"context"
	"time"

	"github.com/SYK3S999/tamweeli-sub001/internal/domain"
	"github.com/SYK3S999/tamweeli-sub001/pkg/id"

	"go.uber.org/zap"
)

type Store interface {
	Create(ctx context.Context, n *domain.Notification) error
	ListByUser(ctx context.Context, userID string) ([]*domain.Notification, error)
	MarkRead(ctx context.Context, id, userID string) error
	MarkAllRead(ctx context.Context, userID string) error
	UnreadCount(ctx context.Context, userID string) (int, error)
}

type Service struct {
	store  Store
	hub    *Hub
	logger *zap.Logger
}

func New(store Store, hub *Hub, logger *zap.Logger) *Service {
	return &Service{store: store, hub: hub, logger: logger}
}

// Notify persists a notification and pushes it to the user's live
// connections. Delivery failures are logged, never propagated: a missed
// push must not fail the operation that triggered it.
func (s *Service) Notify(ctx context.Context, userID, title, body string, typ domain.NotificationType) {
	n := &domain.Notification{
		ID:        id.New(id.Notification),
		UserID:    userID,
		Title:     title,
		Body:      body,
		Type:      typ,
		CreatedAt: time.Now(),
	}
	if err := s.store.Create(ctx, n); err != nil {
		s.logger.Error("persist notification failed",
			zap.String("user_id", userID), zap.Error(err))
		return
	}
	s.hub.Push(userID, n)
}

func (s *Service) List(ctx context.Context, userID string) ([]*domain.Notification, error) {
	return s.store.ListByUser(ctx, userID)
}

func (s *Service) MarkRead(ctx context.Context, notificationID, userID string) error {
	return s.store.MarkRead(ctx, notificationID, userID)
}

func (s *Service) MarkAllRead(ctx context.Context, userID string) error {
	return s.store.MarkAllRead(ctx, userID)
}

func (s *Service) UnreadCount(ctx context.Context, userID string) (int, error) {
	return s.store.UnreadCount(ctx, userID)
}

func (s *Service) Hub() *Hub {
	return s.hub
}
