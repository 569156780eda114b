package session

import (
	"context"
	"strings"
	"testing"
	"time"

	"mentorhub/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Create(ctx context.Context, s *domain.MentoringSession) error {
	args := m.Called(ctx, s)
	if args.Error(0) == nil {
		s.ID = 55
	}
	return args.Error(0)
}

func (m *MockSessionRepository) GetByID(ctx context.Context, id int64) (*domain.MentoringSession, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MentoringSession), args.Error(1)
}

func (m *MockSessionRepository) ListByMentor(ctx context.Context, mentorID int64) ([]domain.MentoringSession, error) {
	args := m.Called(ctx, mentorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MentoringSession), args.Error(1)
}

func (m *MockSessionRepository) ListByMentee(ctx context.Context, menteeID int64) ([]domain.MentoringSession, error) {
	args := m.Called(ctx, menteeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MentoringSession), args.Error(1)
}

func (m *MockSessionRepository) UpdateStatus(ctx context.Context, id int64, status domain.SessionStatus, reason string) error {
	args := m.Called(ctx, id, status, reason)
	return args.Error(0)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) NotifySessionCancelled(ctx context.Context, userID, sessionID int64, reason string) error {
	args := m.Called(ctx, userID, sessionID, reason)
	return args.Error(0)
}

type MockAwarder struct {
	mock.Mock
}

func (m *MockAwarder) SessionCompleted(ctx context.Context, menteeID int64) error {
	args := m.Called(ctx, menteeID)
	return args.Error(0)
}

func TestList_RequiresExactlyOneFilter(t *testing.T) {
	svc := NewService(new(MockSessionRepository), nil, nil)

	_, err := svc.List(context.Background(), 0, 0)
	assert.ErrorIs(t, err, ErrFilterRequired)

	_, err = svc.List(context.Background(), 1, 2)
	assert.ErrorIs(t, err, ErrFilterRequired)
}

func TestList_ByMentor(t *testing.T) {
	repo := new(MockSessionRepository)
	svc := NewService(repo, nil, nil)

	want := []domain.MentoringSession{{ID: 1, MentorID: 3}}
	repo.On("ListByMentor", mock.Anything, int64(3)).Return(want, nil)

	got, err := svc.List(context.Background(), 3, 0)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	repo.AssertNotCalled(t, "ListByMentee", mock.Anything, mock.Anything)
}

func TestList_ByMentee(t *testing.T) {
	repo := new(MockSessionRepository)
	svc := NewService(repo, nil, nil)

	want := []domain.MentoringSession{{ID: 2, MenteeID: 9}}
	repo.On("ListByMentee", mock.Anything, int64(9)).Return(want, nil)

	got, err := svc.List(context.Background(), 0, 9)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestStart_OnlyFromUpcoming(t *testing.T) {
	repo := new(MockSessionRepository)
	svc := NewService(repo, nil, nil)

	repo.On("GetByID", mock.Anything, int64(5)).Return(&domain.MentoringSession{
		ID: 5, Status: domain.SessionCompleted,
	}, nil)

	_, err := svc.Start(context.Background(), 5)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestComplete_AwardsMilestone(t *testing.T) {
	repo := new(MockSessionRepository)
	awards := new(MockAwarder)
	svc := NewService(repo, nil, awards)

	active := &domain.MentoringSession{ID: 5, MenteeID: 21, Status: domain.SessionActive}
	completed := &domain.MentoringSession{ID: 5, MenteeID: 21, Status: domain.SessionCompleted}

	repo.On("GetByID", mock.Anything, int64(5)).Return(active, nil).Once()
	repo.On("UpdateStatus", mock.Anything, int64(5), domain.SessionCompleted, "").Return(nil)
	repo.On("GetByID", mock.Anything, int64(5)).Return(completed, nil)
	awards.On("SessionCompleted", mock.Anything, int64(21)).Return(nil)

	got, err := svc.Complete(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, domain.SessionCompleted, got.Status)
	awards.AssertExpectations(t)
}

func TestCancel_RequiresReason(t *testing.T) {
	svc := NewService(new(MockSessionRepository), nil, nil)

	_, err := svc.Cancel(context.Background(), 5, 1, "   ")
	assert.ErrorIs(t, err, ErrReasonRequired)
}

func TestCancel_NotifiesMentee(t *testing.T) {
	repo := new(MockSessionRepository)
	notifs := new(MockNotifier)
	svc := NewService(repo, notifs, nil)

	upcoming := &domain.MentoringSession{ID: 5, MenteeID: 21, Status: domain.SessionUpcoming}
	cancelled := &domain.MentoringSession{ID: 5, MenteeID: 21, Status: domain.SessionCancelled, CancellationReason: "sick"}

	repo.On("GetByID", mock.Anything, int64(5)).Return(upcoming, nil).Once()
	repo.On("UpdateStatus", mock.Anything, int64(5), domain.SessionCancelled, "sick").Return(nil)
	repo.On("GetByID", mock.Anything, int64(5)).Return(cancelled, nil)
	notifs.On("NotifySessionCancelled", mock.Anything, int64(21), int64(5), "sick").Return(nil)

	got, err := svc.Cancel(context.Background(), 5, 1, "sick")
	require.NoError(t, err)
	assert.Equal(t, domain.SessionCancelled, got.Status)
	notifs.AssertExpectations(t)
}

func TestCancel_TerminalStateRejected(t *testing.T) {
	repo := new(MockSessionRepository)
	svc := NewService(repo, nil, nil)

	repo.On("GetByID", mock.Anything, int64(5)).Return(&domain.MentoringSession{
		ID: 5, Status: domain.SessionCancelled,
	}, nil)

	_, err := svc.Cancel(context.Background(), 5, 1, "anything")
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestCalendarFile(t *testing.T) {
	repo := new(MockSessionRepository)
	svc := NewService(repo, nil, nil)

	repo.On("GetByID", mock.Anything, int64(7)).Return(&domain.MentoringSession{
		ID:          7,
		Title:       "Career chat",
		MeetingLink: "mentor-session-42",
		StartTime:   time.Date(2026, 9, 14, 9, 30, 0, 0, time.UTC),
		EndTime:     time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC),
		Status:      domain.SessionUpcoming,
	}, nil)

	body, err := svc.CalendarFile(context.Background(), 7)
	require.NoError(t, err)

	assert.True(t, strings.Contains(body, "BEGIN:VEVENT"))
	assert.True(t, strings.Contains(body, "DTSTART:20260914T093000Z"))
	assert.True(t, strings.Contains(body, "DTEND:20260914T100000Z"))
	assert.True(t, strings.Contains(body, "SUMMARY:Career chat"))
	assert.True(t, strings.Contains(body, "UID:session-7@mentorhub"))
}
