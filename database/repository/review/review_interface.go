package reviewRepo

import "mentorhub/models"

// ListCriteria holds paging and ordering for review listings.
type ListCriteria struct {
	SortBy    string // createdAt or rating
	SortOrder int    // 1 ascending, -1 descending
	Skip      int
	Limit     int
}

// ReviewRepository defines methods for review data access.
type ReviewRepository interface {
	// ListByMentor returns one page of a mentor's reviews.
	ListByMentor(mentorID string, criteria ListCriteria) ([]models.Review, error)
	// ListAllByMentor returns every review for a mentor, for stats computation.
	ListAllByMentor(mentorID string) ([]models.Review, error)
	// ListRecentByMentor returns the mentor's newest reviews, capped at limit.
	ListRecentByMentor(mentorID string, limit int) ([]models.Review, error)
}
