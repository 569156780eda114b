package repository

import (
	"context"
	"time"

	"mentorhub/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AchievementRepository struct {
	db *gorm.DB
}

func NewAchievementRepository(db *gorm.DB) *AchievementRepository {
	return &AchievementRepository{db: db}
}

type achievementModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	MenteeID  int64     `gorm:"column:mentee_id;uniqueIndex:idx_mentee_code"`
	Code      string    `gorm:"column:code;uniqueIndex:idx_mentee_code"`
	Title     string    `gorm:"column:title"`
	AwardedAt time.Time `gorm:"column:awarded_at"`
}

func (achievementModel) TableName() string { return "achievements" }

// Award inserts the milestone, silently doing nothing when the mentee
// already holds it.
func (r *AchievementRepository) Award(ctx context.Context, menteeID int64, code, title string) error {
	m := achievementModel{
		MenteeID:  menteeID,
		Code:      code,
		Title:     title,
		AwardedAt: time.Now(),
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&m).Error
}

func (r *AchievementRepository) ListByMentee(ctx context.Context, menteeID int64) ([]domain.Achievement, error) {
	var rows []achievementModel
	tx := r.db.WithContext(ctx).
		Where("mentee_id = ?", menteeID).
		Order("awarded_at ASC").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Achievement, 0, len(rows))
	for _, m := range rows {
		out = append(out, domain.Achievement{
			ID:        m.ID,
			MenteeID:  m.MenteeID,
			Code:      m.Code,
			Title:     m.Title,
			AwardedAt: m.AwardedAt,
		})
	}
	return out, nil
}
