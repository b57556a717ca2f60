package review

import "mentorhub/models"

// ListQuery holds the review listing parameters after handler parsing.
type ListQuery struct {
	SortBy    string // "createdAt" or "rating"
	SortOrder string // "asc" or "desc"
	Page      int
	Limit     int
}

// ReviewService defines read operations over mentor reviews.
type ReviewService interface {
	// ListMentorReviews returns one page of an approved mentor's reviews,
	// joined with student summaries and aggregated stats.
	ListMentorReviews(mentorID string, query ListQuery) (*models.ReviewListing, error)
}
