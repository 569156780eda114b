package notification

import (
	"context"
	"testing"
	"time"

	"mentorhub/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockNotificationRepo struct {
	created []*domain.Notification
}

func (m *mockNotificationRepo) Create(_ context.Context, n *domain.Notification) error {
	n.ID = int64(len(m.created) + 1)
	m.created = append(m.created, n)
	return nil
}

func (m *mockNotificationRepo) ListByUser(_ context.Context, _ int64, _ int) ([]domain.Notification, error) {
	return nil, nil
}

func (m *mockNotificationRepo) CountUnread(_ context.Context, _ int64) (int64, error) {
	return 0, nil
}

func (m *mockNotificationRepo) MarkAsRead(_ context.Context, _, _ int64) error { return nil }

func (m *mockNotificationRepo) MarkAllAsRead(_ context.Context, _ int64) error { return nil }

func TestNotifyBookingCreated(t *testing.T) {
	repo := &mockNotificationRepo{}
	svc := NewService(repo)

	start := time.Date(2026, 9, 14, 9, 30, 0, 0, time.UTC)
	require.NoError(t, svc.NotifyBookingCreated(context.Background(), 55, 10, start))

	require.Len(t, repo.created, 1)
	n := repo.created[0]
	assert.Equal(t, int64(55), n.UserID)
	assert.Equal(t, domain.NotifBookingCreated, n.Type)
	assert.Contains(t, n.Message, "Sep 14, 2026 at 09:30")
	assert.Equal(t, map[string]any{"session_id": int64(10)}, n.Data)
}

func TestNotifySessionCancelled(t *testing.T) {
	repo := &mockNotificationRepo{}
	svc := NewService(repo)

	require.NoError(t, svc.NotifySessionCancelled(context.Background(), 20, 10, "mentor unavailable"))

	require.Len(t, repo.created, 1)
	n := repo.created[0]
	assert.Equal(t, domain.NotifSessionCancelled, n.Type)
	assert.Contains(t, n.Message, "mentor unavailable")
}

func TestNotifyReviewReceived(t *testing.T) {
	repo := &mockNotificationRepo{}
	svc := NewService(repo)

	require.NoError(t, svc.NotifyReviewReceived(context.Background(), 55, 3, 4))

	require.Len(t, repo.created, 1)
	n := repo.created[0]
	assert.Equal(t, domain.NotifReviewReceived, n.Type)
	assert.Contains(t, n.Message, "4-star")
	assert.Equal(t, map[string]any{"review_id": int64(3)}, n.Data)
}

func TestNotifyNewMessage(t *testing.T) {
	repo := &mockNotificationRepo{}
	svc := NewService(repo)

	require.NoError(t, svc.NotifyNewMessage(context.Background(), 20, 7, "Dana"))

	require.Len(t, repo.created, 1)
	n := repo.created[0]
	assert.Equal(t, domain.NotifNewMessage, n.Type)
	assert.Contains(t, n.Message, "Dana")
}
