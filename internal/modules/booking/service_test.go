package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"mentorhub/internal/domain"
	"mentorhub/internal/modules/video"
	"mentorhub/internal/pkg/email"
	"mentorhub/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type MockSlotReader struct {
	mock.Mock
}

func (m *MockSlotReader) GetByID(ctx context.Context, id int64) (*domain.AvailabilityPeriod, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AvailabilityPeriod), args.Error(1)
}

type MockBookingStore struct {
	mock.Mock

	gotSession      *domain.MentoringSession
	gotReplacements []domain.AvailabilityPeriod
}

func (m *MockBookingStore) CreateBookedSession(ctx context.Context, slotID int64, session *domain.MentoringSession, replacements []domain.AvailabilityPeriod) error {
	args := m.Called(ctx, slotID, session, replacements)
	m.gotSession = session
	m.gotReplacements = replacements
	if args.Error(0) == nil {
		session.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

type MockMentorDirectory struct {
	mock.Mock
}

func (m *MockMentorDirectory) GetByID(ctx context.Context, id int64) (*domain.MentorProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MentorProfile), args.Error(1)
}

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(ctx context.Context, msg email.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) NotifyBookingCreated(ctx context.Context, mentorUserID, sessionID int64, start time.Time) error {
	args := m.Called(ctx, mentorUserID, sessionID, start)
	return args.Error(0)
}

type MockAwarder struct {
	mock.Mock
}

func (m *MockAwarder) FirstBooking(ctx context.Context, menteeID int64) error {
	args := m.Called(ctx, menteeID)
	return args.Error(0)
}

type fixture struct {
	slots   *MockSlotReader
	store   *MockBookingStore
	mentors *MockMentorDirectory
	mailer  *MockMailer
	notifs  *MockNotifier
	awards  *MockAwarder
	svc     *Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	issuer, err := video.NewIssuer("test-app", "test-cert")
	require.NoError(t, err)

	f := &fixture{
		slots:   new(MockSlotReader),
		store:   new(MockBookingStore),
		mentors: new(MockMentorDirectory),
		mailer:  new(MockMailer),
		notifs:  new(MockNotifier),
		awards:  new(MockAwarder),
	}
	f.svc = NewService(f.slots, f.store, f.mentors, issuer, f.mailer, f.notifs, f.awards)
	return f
}

func validRequest() CreateBookingRequest {
	return CreateBookingRequest{
		MentorID:    7,
		UserID:      21,
		Date:        "2026-09-14",
		Time:        "09:30",
		SessionType: "career",
		SlotID:      42,
	}
}

func openPeriod(start, end time.Time) *domain.AvailabilityPeriod {
	return &domain.AvailabilityPeriod{
		ID:        42,
		MentorID:  7,
		StartTime: start,
		EndTime:   end,
		Status:    domain.PeriodAvailable,
	}
}

func (f *fixture) expectHappySideEffects() {
	f.mentors.On("GetByID", mock.Anything, int64(7)).Return(&domain.MentorProfile{
		ID: 7, UserID: 70, Name: "Dana", Email: "dana@example.com",
	}, nil)
	f.mailer.On("Send", mock.Anything, mock.Anything).Return(nil)
	f.notifs.On("NotifyBookingCreated", mock.Anything, int64(70), mock.Anything, mock.Anything).Return(nil)
	f.awards.On("FirstBooking", mock.Anything, int64(21)).Return(nil)
}

func TestCreateBooking_SplitsPeriodIntoThreeSegments(t *testing.T) {
	f := newFixture(t)

	periodStart := time.Date(2026, 9, 14, 9, 0, 0, 0, time.UTC)
	periodEnd := time.Date(2026, 9, 14, 11, 0, 0, 0, time.UTC)
	f.slots.On("GetByID", mock.Anything, int64(42)).Return(openPeriod(periodStart, periodEnd), nil)
	f.store.On("CreateBookedSession", mock.Anything, int64(42), mock.Anything, mock.Anything).Return(nil)
	f.expectHappySideEffects()

	result, err := f.svc.CreateBooking(context.Background(), validRequest())
	require.NoError(t, err)
	require.NotNil(t, result)

	segs := f.store.gotReplacements
	require.Len(t, segs, 3)

	slotStart := time.Date(2026, 9, 14, 9, 30, 0, 0, time.UTC)
	slotEnd := slotStart.Add(30 * time.Minute)

	assert.Equal(t, periodStart, segs[0].StartTime)
	assert.Equal(t, slotStart, segs[0].EndTime)
	assert.Equal(t, domain.PeriodAvailable, segs[0].Status)

	assert.Equal(t, slotStart, segs[1].StartTime)
	assert.Equal(t, slotEnd, segs[1].EndTime)
	assert.Equal(t, domain.PeriodBooked, segs[1].Status)

	assert.Equal(t, slotEnd, segs[2].StartTime)
	assert.Equal(t, periodEnd, segs[2].EndTime)
	assert.Equal(t, domain.PeriodAvailable, segs[2].Status)

	for _, seg := range segs {
		assert.Equal(t, int64(7), seg.MentorID)
	}
}

func TestCreateBooking_NoPreSegmentWhenBookingStartsAtPeriodStart(t *testing.T) {
	f := newFixture(t)

	periodStart := time.Date(2026, 9, 14, 9, 30, 0, 0, time.UTC)
	periodEnd := time.Date(2026, 9, 14, 11, 0, 0, 0, time.UTC)
	f.slots.On("GetByID", mock.Anything, int64(42)).Return(openPeriod(periodStart, periodEnd), nil)
	f.store.On("CreateBookedSession", mock.Anything, int64(42), mock.Anything, mock.Anything).Return(nil)
	f.expectHappySideEffects()

	_, err := f.svc.CreateBooking(context.Background(), validRequest())
	require.NoError(t, err)

	segs := f.store.gotReplacements
	require.Len(t, segs, 2)
	assert.Equal(t, domain.PeriodBooked, segs[0].Status)
	assert.Equal(t, domain.PeriodAvailable, segs[1].Status)
}

func TestCreateBooking_NoPostSegmentWhenBookingEndsAtPeriodEnd(t *testing.T) {
	f := newFixture(t)

	periodStart := time.Date(2026, 9, 14, 9, 0, 0, 0, time.UTC)
	periodEnd := time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC)
	f.slots.On("GetByID", mock.Anything, int64(42)).Return(openPeriod(periodStart, periodEnd), nil)
	f.store.On("CreateBookedSession", mock.Anything, int64(42), mock.Anything, mock.Anything).Return(nil)
	f.expectHappySideEffects()

	_, err := f.svc.CreateBooking(context.Background(), validRequest())
	require.NoError(t, err)

	segs := f.store.gotReplacements
	require.Len(t, segs, 2)
	assert.Equal(t, domain.PeriodAvailable, segs[0].Status)
	assert.Equal(t, domain.PeriodBooked, segs[1].Status)
}

func TestCreateBooking_RejectsBookedSlot(t *testing.T) {
	f := newFixture(t)

	period := openPeriod(
		time.Date(2026, 9, 14, 9, 0, 0, 0, time.UTC),
		time.Date(2026, 9, 14, 11, 0, 0, 0, time.UTC),
	)
	period.Status = "  BoOkEd  " // case-insensitive, trimmed
	f.slots.On("GetByID", mock.Anything, int64(42)).Return(period, nil)

	_, err := f.svc.CreateBooking(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotTaken)

	f.store.AssertNotCalled(t, "CreateBookedSession", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateBooking_UnknownStatusIsBookable(t *testing.T) {
	f := newFixture(t)

	period := openPeriod(
		time.Date(2026, 9, 14, 9, 0, 0, 0, time.UTC),
		time.Date(2026, 9, 14, 11, 0, 0, 0, time.UTC),
	)
	period.Status = "tentative" // not a recognized status, treated as open
	f.slots.On("GetByID", mock.Anything, int64(42)).Return(period, nil)
	f.store.On("CreateBookedSession", mock.Anything, int64(42), mock.Anything, mock.Anything).Return(nil)
	f.expectHappySideEffects()

	_, err := f.svc.CreateBooking(context.Background(), validRequest())
	assert.NoError(t, err)
}

func TestCreateBooking_ConcurrentClaimLossIsConflict(t *testing.T) {
	f := newFixture(t)

	f.slots.On("GetByID", mock.Anything, int64(42)).Return(openPeriod(
		time.Date(2026, 9, 14, 9, 0, 0, 0, time.UTC),
		time.Date(2026, 9, 14, 11, 0, 0, 0, time.UTC),
	), nil)
	f.store.On("CreateBookedSession", mock.Anything, int64(42), mock.Anything, mock.Anything).
		Return(repository.ErrSlotUnavailable)

	_, err := f.svc.CreateBooking(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestCreateBooking_MissingFieldsNameTheField(t *testing.T) {
	cases := []struct {
		field  string
		mutate func(*CreateBookingRequest)
	}{
		{"mentor_id", func(r *CreateBookingRequest) { r.MentorID = 0 }},
		{"user_id", func(r *CreateBookingRequest) { r.UserID = 0 }},
		{"date", func(r *CreateBookingRequest) { r.Date = "" }},
		{"time", func(r *CreateBookingRequest) { r.Time = "" }},
		{"session_type", func(r *CreateBookingRequest) { r.SessionType = "" }},
		{"slot_id", func(r *CreateBookingRequest) { r.SlotID = 0 }},
	}

	for _, tc := range cases {
		t.Run(tc.field, func(t *testing.T) {
			f := newFixture(t)

			req := validRequest()
			tc.mutate(&req)

			_, err := f.svc.CreateBooking(context.Background(), req)
			var missing *MissingFieldError
			require.ErrorAs(t, err, &missing)
			assert.Equal(t, tc.field, missing.Field)

			// no side effects at all
			f.slots.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
			f.store.AssertNotCalled(t, "CreateBookedSession", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestCreateBooking_FixedThirtyMinuteDuration(t *testing.T) {
	for _, sessionType := range []string{"career", "code-review", "mock-interview"} {
		t.Run(sessionType, func(t *testing.T) {
			f := newFixture(t)

			f.slots.On("GetByID", mock.Anything, int64(42)).Return(openPeriod(
				time.Date(2026, 9, 14, 9, 0, 0, 0, time.UTC),
				time.Date(2026, 9, 14, 11, 0, 0, 0, time.UTC),
			), nil)
			f.store.On("CreateBookedSession", mock.Anything, int64(42), mock.Anything, mock.Anything).Return(nil)
			f.expectHappySideEffects()

			req := validRequest()
			req.SessionType = sessionType

			result, err := f.svc.CreateBooking(context.Background(), req)
			require.NoError(t, err)

			assert.Equal(t, 30*time.Minute, result.Session.EndTime.Sub(result.Session.StartTime))
			assert.Equal(t, 30*time.Minute, result.Meeting.EndTime.Sub(result.Meeting.StartTime))
		})
	}
}

func TestCreateBooking_SessionRow(t *testing.T) {
	f := newFixture(t)

	f.slots.On("GetByID", mock.Anything, int64(42)).Return(openPeriod(
		time.Date(2026, 9, 14, 9, 0, 0, 0, time.UTC),
		time.Date(2026, 9, 14, 11, 0, 0, 0, time.UTC),
	), nil)
	f.store.On("CreateBookedSession", mock.Anything, int64(42), mock.Anything, mock.Anything).Return(nil)
	f.expectHappySideEffects()

	result, err := f.svc.CreateBooking(context.Background(), validRequest())
	require.NoError(t, err)

	s := result.Session
	assert.Equal(t, domain.SessionUpcoming, s.Status)
	assert.Equal(t, int64(7), s.MentorID)
	assert.Equal(t, int64(21), s.MenteeID)
	assert.Equal(t, "mentor-session-42", s.MeetingLink)
	assert.Equal(t, result.Meeting.Channel, s.MeetingLink)
	assert.Equal(t, "test-app", result.Meeting.AppID)
	assert.NotEmpty(t, result.Meeting.Token)
}

func TestCreateBooking_EmailFailureIsAWarning(t *testing.T) {
	f := newFixture(t)

	f.slots.On("GetByID", mock.Anything, int64(42)).Return(openPeriod(
		time.Date(2026, 9, 14, 9, 0, 0, 0, time.UTC),
		time.Date(2026, 9, 14, 11, 0, 0, 0, time.UTC),
	), nil)
	f.store.On("CreateBookedSession", mock.Anything, int64(42), mock.Anything, mock.Anything).Return(nil)

	f.mentors.On("GetByID", mock.Anything, int64(7)).Return(&domain.MentorProfile{
		ID: 7, UserID: 70, Name: "Dana", Email: "dana@example.com",
	}, nil)
	f.mailer.On("Send", mock.Anything, mock.Anything).Return(errors.New("smtp down"))
	f.notifs.On("NotifyBookingCreated", mock.Anything, int64(70), mock.Anything, mock.Anything).Return(nil)
	f.awards.On("FirstBooking", mock.Anything, int64(21)).Return(nil)

	result, err := f.svc.CreateBooking(context.Background(), validRequest())
	require.NoError(t, err, "booking must succeed even when the email fails")
	assert.Contains(t, result.Warnings, "notification email failed")
}

func TestCreateBooking_SlotNotFound(t *testing.T) {
	f := newFixture(t)

	f.slots.On("GetByID", mock.Anything, int64(42)).Return(nil, gorm.ErrRecordNotFound)

	_, err := f.svc.CreateBooking(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestCreateBooking_BadDate(t *testing.T) {
	f := newFixture(t)

	req := validRequest()
	req.Date = "14-09-2026"

	_, err := f.svc.CreateBooking(context.Background(), req)
	assert.ErrorIs(t, err, ErrValidation)
}
