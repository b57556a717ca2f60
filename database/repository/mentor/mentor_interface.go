package mentorRepo

import "mentorhub/models"

// Sort fields accepted by marketplace listings.
var AllowedSortFields = map[string]bool{
	"rating":        true,
	"totalSessions": true,
	"hourlyRate":    true,
	"createdAt":     true,
}

// ListCriteria holds filters and paging for marketplace listings. Only
// approved, active mentors are ever listed.
type ListCriteria struct {
	SpecialtyID string
	SortBy      string // one of AllowedSortFields
	SortOrder   int    // 1 ascending, -1 descending
	Skip        int
	Limit       int
}

// MentorRepository defines methods for mentor profile data access.
type MentorRepository interface {
	// GetByID retrieves a mentor by its unique ID. Returns nil when not found.
	GetByID(id string) (*models.Mentor, error)
	// GetApprovedByID retrieves an approved, active mentor. Returns nil when
	// not found or not publicly visible.
	GetApprovedByID(id string) (*models.Mentor, error)
	// GetByUserID retrieves the mentor profile owned by a user. Returns nil
	// when the user has none.
	GetByUserID(userID string) (*models.Mentor, error)
	// List returns approved, active mentors matching the criteria.
	List(criteria ListCriteria) ([]models.Mentor, error)
	// Count counts approved, active mentors matching the criteria filters.
	Count(criteria ListCriteria) (int64, error)
	// ListFeatured returns top-rated mentors (rating >= 4, at least one
	// session), best first.
	ListFeatured(limit int) ([]models.Mentor, error)
	// ListPending returns mentors awaiting approval.
	ListPending() ([]models.Mentor, error)
	// CountBySpecialty counts approved, active mentors offering a specialty.
	CountBySpecialty(specialtyID string) (int64, error)
	// Create inserts a new mentor profile.
	Create(mentor *models.Mentor) error
	// Update modifies an existing mentor profile.
	Update(mentor *models.Mentor) error
	// SetApproved flips the approval flag on a mentor profile.
	SetApproved(id string, approved bool) error
}
