package review

import "mentorhub/internal/domain"

type CreateReviewRequest struct {
	SessionID int64  `json:"session_id" binding:"required"`
	Rating    int    `json:"rating" binding:"required"`
	Comment   string `json:"comment"`
}

type ListReviewsQuery struct {
	Limit  int `form:"limit"`
	Offset int `form:"offset"`
}

type ReviewResult struct {
	Review   *domain.Review `json:"review"`
	Warnings []string       `json:"-"`
}
