package mentor

import "mentorhub/models"

// ListQuery holds the marketplace listing parameters after handler parsing.
type ListQuery struct {
	SpecialtyID string
	SortBy      string
	SortOrder   string // "asc" or "desc"
	Page        int
	Limit       int
}

// Listing is one page of mentor cards.
type Listing struct {
	Items      []models.MentorCard `json:"items"`
	Pagination models.Pagination   `json:"pagination"`
}

// MentorService defines marketplace and profile operations for mentors.
type MentorService interface {
	// List returns one page of approved, active mentors joined with user and
	// specialty summaries.
	List(query ListQuery) (*Listing, error)
	// Featured returns top-rated mentors for the landing page.
	Featured() ([]models.MentorCard, error)
	// GetDetail returns the full public profile of an approved mentor,
	// including weekly availability and recent reviews.
	GetDetail(mentorID string) (*models.MentorDetail, error)
	// GetOwnProfile returns the mentor profile owned by a user.
	GetOwnProfile(userID string) (*models.MentorCard, error)
	// UpdateOwnProfile updates the mentor profile owned by a user.
	UpdateOwnProfile(userID string, req models.MentorProfileRequest) (*models.Mentor, error)
}
