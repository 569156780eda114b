package domain

import "time"

// MentorProfile is the public face of a mentor in the directory.
// Rating and ReviewCount are denormalized aggregates maintained by the
// review module on every write.
type MentorProfile struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Name        string    `json:"name"`
	Title       string    `json:"title"`
	Company     string    `json:"company,omitempty"`
	Bio         string    `json:"bio,omitempty"`
	Expertise   []string  `json:"expertise,omitempty"`
	ImageURL    string    `json:"image_url,omitempty"`
	Email       string    `json:"-"`
	Rating      float64   `json:"rating"`
	ReviewCount int64     `json:"review_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProfileSnapshot is the denormalized counterpart view attached to a
// session listing (who you are meeting, not the full profile).
type ProfileSnapshot struct {
	Name     string `json:"name"`
	Role     string `json:"role"`
	Company  string `json:"company,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
}
