package repository

import (
	"context"
	"time"

	"mentorhub/internal/domain"

	"gorm.io/gorm"
)

type SessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

type sessionModel struct {
	ID                 int64      `gorm:"column:id;primaryKey"`
	MentorID           int64      `gorm:"column:mentor_id;index"`
	MenteeID           int64      `gorm:"column:mentee_id;index"`
	Status             string     `gorm:"column:status"`
	StartTime          time.Time  `gorm:"column:start_time"`
	EndTime            time.Time  `gorm:"column:end_time"`
	Title              string     `gorm:"column:title"`
	Description        *string    `gorm:"column:description"`
	SessionType        *string    `gorm:"column:session_type"`
	MeetingLink        *string    `gorm:"column:meeting_link"`
	CancelledAt        *time.Time `gorm:"column:cancelled_at"`
	CancellationReason *string    `gorm:"column:cancellation_reason"`
	CreatedAt          time.Time  `gorm:"column:created_at"`
	UpdatedAt          time.Time  `gorm:"column:updated_at"`
}

func (sessionModel) TableName() string { return "mentoring_sessions" }

func toDomainSession(m sessionModel) *domain.MentoringSession {
	s := &domain.MentoringSession{
		ID:          m.ID,
		MentorID:    m.MentorID,
		MenteeID:    m.MenteeID,
		Status:      domain.SessionStatus(m.Status),
		StartTime:   m.StartTime,
		EndTime:     m.EndTime,
		Title:       m.Title,
		CancelledAt: m.CancelledAt,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if m.Description != nil {
		s.Description = *m.Description
	}
	if m.SessionType != nil {
		s.SessionType = *m.SessionType
	}
	if m.MeetingLink != nil {
		s.MeetingLink = *m.MeetingLink
	}
	if m.CancellationReason != nil {
		s.CancellationReason = *m.CancellationReason
	}
	return s
}

func toSessionModel(s *domain.MentoringSession) sessionModel {
	m := sessionModel{
		ID:          s.ID,
		MentorID:    s.MentorID,
		MenteeID:    s.MenteeID,
		Status:      string(s.Status),
		StartTime:   s.StartTime,
		EndTime:     s.EndTime,
		Title:       s.Title,
		CancelledAt: s.CancelledAt,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
	if s.Description != "" {
		v := s.Description
		m.Description = &v
	}
	if s.SessionType != "" {
		v := s.SessionType
		m.SessionType = &v
	}
	if s.MeetingLink != "" {
		v := s.MeetingLink
		m.MeetingLink = &v
	}
	if s.CancellationReason != "" {
		v := s.CancellationReason
		m.CancellationReason = &v
	}
	return m
}

func (r *SessionRepository) Create(ctx context.Context, s *domain.MentoringSession) error {
	m := toSessionModel(s)
	if tx := r.db.WithContext(ctx).Create(&m); tx.Error != nil {
		return tx.Error
	}
	*s = *toDomainSession(m)
	return nil
}

func (r *SessionRepository) GetByID(ctx context.Context, id int64) (*domain.MentoringSession, error) {
	var m sessionModel
	if tx := r.db.WithContext(ctx).First(&m, id); tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainSession(m), nil
}

type sessionWithPeerRow struct {
	sessionModel `gorm:"embedded"`
	PeerName    *string `gorm:"column:peer_name"`
	PeerRole    *string `gorm:"column:peer_role"`
	PeerCompany *string `gorm:"column:peer_company"`
	PeerImage   *string `gorm:"column:peer_image"`
}

// ListByMentor returns the mentor's sessions ordered by start time,
// each joined with the mentee's public snapshot.
func (r *SessionRepository) ListByMentor(ctx context.Context, mentorID int64) ([]domain.MentoringSession, error) {
	q := `
SELECT s.*,
       u.name       AS peer_name,
       u.role       AS peer_role,
       NULL         AS peer_company,
       u.avatar_url AS peer_image
FROM mentoring_sessions s
LEFT JOIN users u ON u.id = s.mentee_id
WHERE s.mentor_id = ?
ORDER BY s.start_time ASC
`
	return r.listWithPeer(ctx, q, mentorID)
}

// ListByMentee returns the mentee's sessions ordered by start time,
// each joined with the mentor's public snapshot.
func (r *SessionRepository) ListByMentee(ctx context.Context, menteeID int64) ([]domain.MentoringSession, error) {
	q := `
SELECT s.*,
       mp.name      AS peer_name,
       mp.title     AS peer_role,
       mp.company   AS peer_company,
       mp.image_url AS peer_image
FROM mentoring_sessions s
LEFT JOIN mentor_profiles mp ON mp.id = s.mentor_id
WHERE s.mentee_id = ?
ORDER BY s.start_time ASC
`
	return r.listWithPeer(ctx, q, menteeID)
}

func (r *SessionRepository) listWithPeer(ctx context.Context, query string, id int64) ([]domain.MentoringSession, error) {
	var rows []sessionWithPeerRow
	if tx := r.db.WithContext(ctx).Raw(query, id).Scan(&rows); tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.MentoringSession, 0, len(rows))
	for _, row := range rows {
		s := toDomainSession(row.sessionModel)
		snap := &domain.ProfileSnapshot{}
		if row.PeerName != nil {
			snap.Name = *row.PeerName
		}
		if row.PeerRole != nil {
			snap.Role = *row.PeerRole
		}
		if row.PeerCompany != nil {
			snap.Company = *row.PeerCompany
		}
		if row.PeerImage != nil {
			snap.ImageURL = *row.PeerImage
		}
		s.With = snap
		out = append(out, *s)
	}
	return out, nil
}

// UpdateStatus moves a session to a new lifecycle state. Cancellation
// also records the timestamp and reason.
func (r *SessionRepository) UpdateStatus(ctx context.Context, id int64, status domain.SessionStatus, reason string) error {
	updates := map[string]any{"status": string(status), "updated_at": time.Now()}
	if status == domain.SessionCancelled {
		updates["cancelled_at"] = time.Now()
		updates["cancellation_reason"] = reason
	}

	tx := r.db.WithContext(ctx).Model(&sessionModel{}).Where("id = ?", id).Updates(updates)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *SessionRepository) CountCompletedForMentee(ctx context.Context, menteeID int64) (int64, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&sessionModel{}).
		Where("mentee_id = ? AND status = ?", menteeID, string(domain.SessionCompleted)).
		Count(&cnt)
	return cnt, tx.Error
}

func (r *SessionRepository) HasCompletedSession(ctx context.Context, menteeID, sessionID int64) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).Model(&sessionModel{}).
		Where("id = ? AND mentee_id = ? AND status = ?", sessionID, menteeID, string(domain.SessionCompleted)).
		Count(&cnt)
	return cnt > 0, tx.Error
}
