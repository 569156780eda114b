package repository

import (
	"context"
	"strings"
	"time"

	"mentorhub/internal/domain"

	"gorm.io/gorm"
)

type MentorRepository struct {
	db *gorm.DB
}

func NewMentorRepository(db *gorm.DB) *MentorRepository {
	return &MentorRepository{db: db}
}

type mentorProfileModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	UserID      int64     `gorm:"column:user_id;uniqueIndex"`
	Name        string    `gorm:"column:name"`
	Title       string    `gorm:"column:title"`
	Company     *string   `gorm:"column:company"`
	Bio         *string   `gorm:"column:bio"`
	Expertise   *string   `gorm:"column:expertise"` // comma-separated
	ImageURL    *string   `gorm:"column:image_url"`
	Email       string    `gorm:"column:email"`
	Rating      float64   `gorm:"column:rating"`
	ReviewCount int64     `gorm:"column:review_count"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (mentorProfileModel) TableName() string { return "mentor_profiles" }

func toDomainMentor(m mentorProfileModel) *domain.MentorProfile {
	var company, bio, image string
	if m.Company != nil {
		company = *m.Company
	}
	if m.Bio != nil {
		bio = *m.Bio
	}
	if m.ImageURL != nil {
		image = *m.ImageURL
	}

	var expertise []string
	if m.Expertise != nil && *m.Expertise != "" {
		for _, e := range strings.Split(*m.Expertise, ",") {
			if e = strings.TrimSpace(e); e != "" {
				expertise = append(expertise, e)
			}
		}
	}

	return &domain.MentorProfile{
		ID:          m.ID,
		UserID:      m.UserID,
		Name:        m.Name,
		Title:       m.Title,
		Company:     company,
		Bio:         bio,
		Expertise:   expertise,
		ImageURL:    image,
		Email:       m.Email,
		Rating:      m.Rating,
		ReviewCount: m.ReviewCount,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toMentorModel(p *domain.MentorProfile) mentorProfileModel {
	var company, bio, image, expertise *string
	if p.Company != "" {
		v := p.Company
		company = &v
	}
	if p.Bio != "" {
		v := p.Bio
		bio = &v
	}
	if p.ImageURL != "" {
		v := p.ImageURL
		image = &v
	}
	if len(p.Expertise) > 0 {
		v := strings.Join(p.Expertise, ",")
		expertise = &v
	}

	return mentorProfileModel{
		ID:          p.ID,
		UserID:      p.UserID,
		Name:        p.Name,
		Title:       p.Title,
		Company:     company,
		Bio:         bio,
		Expertise:   expertise,
		ImageURL:    image,
		Email:       p.Email,
		Rating:      p.Rating,
		ReviewCount: p.ReviewCount,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (r *MentorRepository) Create(ctx context.Context, p *domain.MentorProfile) error {
	m := toMentorModel(p)
	if tx := r.db.WithContext(ctx).Create(&m); tx.Error != nil {
		return tx.Error
	}
	*p = *toDomainMentor(m)
	return nil
}

func (r *MentorRepository) GetByID(ctx context.Context, id int64) (*domain.MentorProfile, error) {
	var m mentorProfileModel
	if tx := r.db.WithContext(ctx).First(&m, id); tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainMentor(m), nil
}

func (r *MentorRepository) GetByUserID(ctx context.Context, userID int64) (*domain.MentorProfile, error) {
	var m mentorProfileModel
	tx := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainMentor(m), nil
}

type MentorFilter struct {
	Expertise string
	Company   string
}

// List returns the directory ordered by rating. Filters match
// substrings case-insensitively, which is what the search box needs.
func (r *MentorRepository) List(ctx context.Context, f MentorFilter) ([]domain.MentorProfile, error) {
	q := r.db.WithContext(ctx).Model(&mentorProfileModel{})
	if f.Expertise != "" {
		q = q.Where("lower(expertise) LIKE ?", "%"+strings.ToLower(f.Expertise)+"%")
	}
	if f.Company != "" {
		q = q.Where("lower(company) LIKE ?", "%"+strings.ToLower(f.Company)+"%")
	}

	var rows []mentorProfileModel
	if tx := q.Order("rating DESC, review_count DESC").Find(&rows); tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.MentorProfile, 0, len(rows))
	for _, m := range rows {
		out = append(out, *toDomainMentor(m))
	}
	return out, nil
}

func (r *MentorRepository) Update(ctx context.Context, p *domain.MentorProfile) error {
	m := toMentorModel(p)
	tx := r.db.WithContext(ctx).Model(&mentorProfileModel{}).
		Where("id = ?", p.ID).
		Updates(map[string]any{
			"name":      m.Name,
			"title":     m.Title,
			"company":   m.Company,
			"bio":       m.Bio,
			"expertise": m.Expertise,
			"image_url": m.ImageURL,
			"email":     m.Email,
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// UpdateRating stores the recomputed review aggregates.
func (r *MentorRepository) UpdateRating(ctx context.Context, mentorID int64, rating float64, count int64) error {
	return r.db.WithContext(ctx).Model(&mentorProfileModel{}).
		Where("id = ?", mentorID).
		Updates(map[string]any{"rating": rating, "review_count": count}).Error
}
