package notification

import (
	"context"
	"errors"
	"testing"

	"github.com/SYK3S999/tamweeli-sub001/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeStore struct {
	notifications []*domain.Notification
	createErr     error
}

func (f *fakeStore) Create(_ context.Context, n *domain.Notification) error {
	if f.createErr != nil {
		return f.createErr
	}
	cp := *n
	f.notifications = append(f.notifications, &cp)
	return nil
}

func (f *fakeStore) ListByUser(_ context.Context, userID string) ([]*domain.Notification, error) {
	var out []*domain.Notification
	for _, n := range f.notifications {
		if n.UserID == userID {
			cp := *n
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeStore) MarkRead(_ context.Context, id, userID string) error {
	for _, n := range f.notifications {
		if n.ID == id && n.UserID == userID {
			n.IsRead = true
		}
	}
	return nil
}

func (f *fakeStore) MarkAllRead(_ context.Context, userID string) error {
	for _, n := range f.notifications {
		if n.UserID == userID {
			n.IsRead = true
		}
	}
	return nil
}

func (f *fakeStore) UnreadCount(_ context.Context, userID string) (int, error) {
	count := 0
	for _, n := range f.notifications {
		if n.UserID == userID && !n.IsRead {
			count++
		}
	}
	return count, nil
}

func newTestService(store *fakeStore) *Service {
	return New(store, NewHub(), zap.NewNop())
}

func TestNotifyPersists(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store)
	ctx := context.Background()

	svc.Notify(ctx, "usr_1", "Project approved", "Olive Press", domain.NotifySuccess)

	list, err := svc.List(ctx, "usr_1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Project approved", list[0].Title)
	assert.False(t, list[0].IsRead)

	count, err := svc.UnreadCount(ctx, "usr_1")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestNotifySwallowsStoreErrors(t *testing.T) {
	store := &fakeStore{createErr: errors.New("db down")}
	svc := newTestService(store)

	// Must not panic or surface the failure to the caller.
	svc.Notify(context.Background(), "usr_1", "t", "b", domain.NotifyInfo)
	assert.Empty(t, store.notifications)
}

func TestMarkReadScopedToUser(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store)
	ctx := context.Background()

	svc.Notify(ctx, "usr_1", "a", "", domain.NotifyInfo)
	svc.Notify(ctx, "usr_2", "b", "", domain.NotifyInfo)
	target := store.notifications[0]

	// Another user cannot mark someone else's notification.
	require.NoError(t, svc.MarkRead(ctx, target.ID, "usr_2"))
	assert.False(t, target.IsRead)

	require.NoError(t, svc.MarkRead(ctx, target.ID, "usr_1"))
	assert.True(t, target.IsRead)

	// Marking a missing id is a no-op, not an error.
	require.NoError(t, svc.MarkRead(ctx, "ntf_missing", "usr_1"))
}

func TestMarkAllRead(t *testing.T) {
	store := &fakeStore{}
	svc := newTestService(store)
	ctx := context.Background()

	svc.Notify(ctx, "usr_1", "a", "", domain.NotifyInfo)
	svc.Notify(ctx, "usr_1", "b", "", domain.NotifyInfo)
	svc.Notify(ctx, "usr_2", "c", "", domain.NotifyInfo)

	require.NoError(t, svc.MarkAllRead(ctx, "usr_1"))

	count, err := svc.UnreadCount(ctx, "usr_1")
	require.NoError(t, err)
	assert.Zero(t, count)

	count, err = svc.UnreadCount(ctx, "usr_2")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
