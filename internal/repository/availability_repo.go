package repository

import (
	"context"
	"time"

	"mentorhub/internal/domain"

	"gorm.io/gorm"
)

type AvailabilityRepository struct {
	db *gorm.DB
}

func NewAvailabilityRepository(db *gorm.DB) *AvailabilityRepository {
	return &AvailabilityRepository{db: db}
}

type availabilityPeriodModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	MentorID  int64     `gorm:"column:mentor_id;index"`
	StartTime time.Time `gorm:"column:start_time"`
	EndTime   time.Time `gorm:"column:end_time"`
	Status    string    `gorm:"column:status"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (availabilityPeriodModel) TableName() string { return "availability_periods" }

func toDomainPeriod(m availabilityPeriodModel) domain.AvailabilityPeriod {
	return domain.AvailabilityPeriod{
		ID:        m.ID,
		MentorID:  m.MentorID,
		StartTime: m.StartTime,
		EndTime:   m.EndTime,
		Status:    m.Status,
		CreatedAt: m.CreatedAt,
	}
}

func toPeriodModel(p domain.AvailabilityPeriod) availabilityPeriodModel {
	return availabilityPeriodModel{
		ID:        p.ID,
		MentorID:  p.MentorID,
		StartTime: p.StartTime,
		EndTime:   p.EndTime,
		Status:    p.Status,
		CreatedAt: p.CreatedAt,
	}
}

func (r *AvailabilityRepository) Create(ctx context.Context, p *domain.AvailabilityPeriod) error {
	m := toPeriodModel(*p)
	if tx := r.db.WithContext(ctx).Create(&m); tx.Error != nil {
		return tx.Error
	}
	*p = toDomainPeriod(m)
	return nil
}

func (r *AvailabilityRepository) GetByID(ctx context.Context, id int64) (*domain.AvailabilityPeriod, error) {
	var m availabilityPeriodModel
	if tx := r.db.WithContext(ctx).First(&m, id); tx.Error != nil {
		return nil, tx.Error
	}
	p := toDomainPeriod(m)
	return &p, nil
}

// ListOpenForMentor returns periods whose status contains "available"
// and whose end lies in the future, ordered by start time. The LIKE
// keeps the same permissive status matching the rest of the booking
// flow uses.
func (r *AvailabilityRepository) ListOpenForMentor(ctx context.Context, mentorID int64, now time.Time) ([]domain.AvailabilityPeriod, error) {
	var rows []availabilityPeriodModel
	tx := r.db.WithContext(ctx).
		Where("mentor_id = ? AND lower(status) LIKE ? AND end_time > ?", mentorID, "%available%", now).
		Order("start_time ASC").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.AvailabilityPeriod, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainPeriod(m))
	}
	return out, nil
}

// Delete removes an unbooked period owned by the mentor.
func (r *AvailabilityRepository) Delete(ctx context.Context, id, mentorID int64) error {
	tx := r.db.WithContext(ctx).
		Where("id = ? AND mentor_id = ? AND lower(trim(status)) <> ?", id, mentorID, domain.PeriodBooked).
		Delete(&availabilityPeriodModel{})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
