package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"mentorhub/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrDuplicateReview is returned when a second review targets a
// session that already has one.
var ErrDuplicateReview = errors.New("session already has a review")

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

type reviewModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	MentorID  int64     `gorm:"column:mentor_id;index"`
	MenteeID  int64     `gorm:"column:mentee_id"`
	SessionID int64     `gorm:"column:session_id;uniqueIndex"`
	Rating    int       `gorm:"column:rating"`
	Comment   *string   `gorm:"column:comment"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (reviewModel) TableName() string { return "reviews" }

func toDomainReview(m reviewModel) domain.Review {
	var comment string
	if m.Comment != nil {
		comment = *m.Comment
	}
	return domain.Review{
		ID:        m.ID,
		MentorID:  m.MentorID,
		MenteeID:  m.MenteeID,
		SessionID: m.SessionID,
		Rating:    m.Rating,
		Comment:   comment,
		CreatedAt: m.CreatedAt,
	}
}

func (r *ReviewRepository) Create(ctx context.Context, rv *domain.Review) error {
	m := reviewModel{
		MentorID:  rv.MentorID,
		MenteeID:  rv.MenteeID,
		SessionID: rv.SessionID,
		Rating:    rv.Rating,
	}
	if rv.Comment != "" {
		v := rv.Comment
		m.Comment = &v
	}

	if tx := r.db.WithContext(ctx).Create(&m); tx.Error != nil {
		if isUniqueViolation(tx.Error) {
			return ErrDuplicateReview
		}
		return tx.Error
	}
	*rv = toDomainReview(m)
	return nil
}

// isUniqueViolation recognizes the constraint error on both backends:
// postgres in production, sqlite in tests.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func (r *ReviewRepository) ListByMentor(ctx context.Context, mentorID int64, limit, offset int) ([]domain.Review, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	var rows []reviewModel
	tx := r.db.WithContext(ctx).
		Where("mentor_id = ?", mentorID).
		Order("created_at DESC").
		Limit(limit).Offset(offset).
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Review, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainReview(m))
	}
	return out, nil
}

// Aggregate returns the average rating and count for a mentor.
func (r *ReviewRepository) Aggregate(ctx context.Context, mentorID int64) (float64, int64, error) {
	var res struct {
		Avg float64
		Cnt int64
	}
	tx := r.db.WithContext(ctx).Model(&reviewModel{}).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(1) AS cnt").
		Where("mentor_id = ?", mentorID).
		Scan(&res)
	if tx.Error != nil {
		return 0, 0, tx.Error
	}
	return res.Avg, res.Cnt, nil
}
