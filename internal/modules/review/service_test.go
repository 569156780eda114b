package review

import (
	"context"
	"errors"
	"testing"
	"time"

	"mentorhub/internal/domain"
	"mentorhub/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type mockReviews struct {
	createErr error
	created   *domain.Review
	avg       float64
	cnt       int64
	aggErr    error
}

func (m *mockReviews) Create(_ context.Context, rv *domain.Review) error {
	if m.createErr != nil {
		return m.createErr
	}
	rv.ID = 1
	rv.CreatedAt = time.Now()
	m.created = rv
	return nil
}

func (m *mockReviews) ListByMentor(_ context.Context, _ int64, _, _ int) ([]domain.Review, error) {
	return nil, nil
}

func (m *mockReviews) Aggregate(_ context.Context, _ int64) (float64, int64, error) {
	return m.avg, m.cnt, m.aggErr
}

type mockSessions struct {
	session *domain.MentoringSession
}

func (m *mockSessions) GetByID(_ context.Context, id int64) (*domain.MentoringSession, error) {
	if m.session == nil || m.session.ID != id {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *m.session
	return &cp, nil
}

type mockMentors struct {
	profile    *domain.MentorProfile
	ratedID    int64
	ratedAvg   float64
	ratedCount int64
	updateErr  error
}

func (m *mockMentors) GetByID(_ context.Context, id int64) (*domain.MentorProfile, error) {
	if m.profile == nil || m.profile.ID != id {
		return nil, gorm.ErrRecordNotFound
	}
	return m.profile, nil
}

func (m *mockMentors) UpdateRating(_ context.Context, mentorID int64, rating float64, count int64) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.ratedID = mentorID
	m.ratedAvg = rating
	m.ratedCount = count
	return nil
}

type mockNotifier struct {
	err          error
	mentorUserID int64
	rating       int
}

func (m *mockNotifier) NotifyReviewReceived(_ context.Context, mentorUserID, _ int64, rating int) error {
	if m.err != nil {
		return m.err
	}
	m.mentorUserID = mentorUserID
	m.rating = rating
	return nil
}

type mockAwarder struct {
	err      error
	menteeID int64
}

func (m *mockAwarder) FirstReview(_ context.Context, menteeID int64) error {
	if m.err != nil {
		return m.err
	}
	m.menteeID = menteeID
	return nil
}

type fixture struct {
	svc      *Service
	reviews  *mockReviews
	mentors  *mockMentors
	notifier *mockNotifier
	awarder  *mockAwarder
}

func newFixture(status domain.SessionStatus) *fixture {
	reviews := &mockReviews{avg: 4.5, cnt: 2}
	sessions := &mockSessions{session: &domain.MentoringSession{
		ID:       10,
		MentorID: 5,
		MenteeID: 20,
		Status:   status,
	}}
	mentors := &mockMentors{profile: &domain.MentorProfile{ID: 5, UserID: 55}}
	notifier := &mockNotifier{}
	awarder := &mockAwarder{}
	return &fixture{
		svc:      NewService(reviews, sessions, mentors, notifier, awarder),
		reviews:  reviews,
		mentors:  mentors,
		notifier: notifier,
		awarder:  awarder,
	}
}

func TestCreateReview(t *testing.T) {
	f := newFixture(domain.SessionCompleted)

	result, err := f.svc.Create(context.Background(), 20, CreateReviewRequest{
		SessionID: 10,
		Rating:    5,
		Comment:   "great session",
	})
	require.NoError(t, err)
	assert.Empty(t, result.Warnings)

	require.NotNil(t, f.reviews.created)
	assert.Equal(t, int64(5), f.reviews.created.MentorID)
	assert.Equal(t, int64(20), f.reviews.created.MenteeID)

	// aggregates recomputed and pushed to the directory
	assert.Equal(t, int64(5), f.mentors.ratedID)
	assert.Equal(t, 4.5, f.mentors.ratedAvg)
	assert.Equal(t, int64(2), f.mentors.ratedCount)

	// notification goes to the mentor's user account, not the profile id
	assert.Equal(t, int64(55), f.notifier.mentorUserID)
	assert.Equal(t, 5, f.notifier.rating)

	assert.Equal(t, int64(20), f.awarder.menteeID)
}

func TestCreateReviewGates(t *testing.T) {
	tests := []struct {
		name     string
		status   domain.SessionStatus
		menteeID int64
		req      CreateReviewRequest
		wantErr  error
	}{
		{
			name:     "unknown session",
			status:   domain.SessionCompleted,
			menteeID: 20,
			req:      CreateReviewRequest{SessionID: 999, Rating: 5},
			wantErr:  ErrSessionNotFound,
		},
		{
			name:     "someone else's session",
			status:   domain.SessionCompleted,
			menteeID: 21,
			req:      CreateReviewRequest{SessionID: 10, Rating: 5},
			wantErr:  ErrNotYourSession,
		},
		{
			name:     "session still upcoming",
			status:   domain.SessionUpcoming,
			menteeID: 20,
			req:      CreateReviewRequest{SessionID: 10, Rating: 5},
			wantErr:  ErrSessionNotCompleted,
		},
		{
			name:     "rating out of range",
			status:   domain.SessionCompleted,
			menteeID: 20,
			req:      CreateReviewRequest{SessionID: 10, Rating: 6},
			wantErr:  ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(tt.status)
			_, err := f.svc.Create(context.Background(), tt.menteeID, tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, f.reviews.created)
		})
	}
}

func TestCreateReviewDuplicate(t *testing.T) {
	f := newFixture(domain.SessionCompleted)
	f.reviews.createErr = repository.ErrDuplicateReview

	_, err := f.svc.Create(context.Background(), 20, CreateReviewRequest{SessionID: 10, Rating: 4})
	assert.ErrorIs(t, err, ErrAlreadyReviewed)
}

func TestCreateReviewSideEffectFailuresBecomeWarnings(t *testing.T) {
	f := newFixture(domain.SessionCompleted)
	f.reviews.aggErr = errors.New("db down")
	f.notifier.err = errors.New("notify down")
	f.awarder.err = errors.New("awards down")

	result, err := f.svc.Create(context.Background(), 20, CreateReviewRequest{SessionID: 10, Rating: 3})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"rating aggregate update failed",
		"in-app notification failed",
		"achievement check failed",
	}, result.Warnings)
}
