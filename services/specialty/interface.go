package specialty

import "mentorhub/models"

// AdminListQuery holds the admin listing parameters after handler parsing.
type AdminListQuery struct {
	Search   string
	IsActive *bool
	Page     int
	Limit    int
}

// AdminListing is one page of specialties for the admin view.
type AdminListing struct {
	Items      []models.Specialty `json:"items"`
	Pagination models.Pagination  `json:"pagination"`
}

// SpecialtyService defines taxonomy operations.
type SpecialtyService interface {
	// List returns active specialties, optionally filtered by category and
	// optionally annotated with mentor counts.
	List(category string, includeCounts bool) ([]models.SpecialtyWithCount, error)
	// Categories returns active specialties grouped by category.
	Categories() ([]models.SpecialtyCategory, error)
	// Get returns one active specialty with its mentor count.
	Get(id string) (*models.SpecialtyWithCount, error)

	// AdminList returns specialties for the admin view, inactive included.
	AdminList(query AdminListQuery) (*AdminListing, error)
	// Create inserts a new specialty. Names are unique.
	Create(req models.CreateSpecialtyRequest) (*models.Specialty, error)
	// Update applies a partial update to a specialty.
	Update(id string, req models.UpdateSpecialtyRequest) (*models.Specialty, error)
	// Delete removes a specialty. A specialty still referenced by mentors is
	// deactivated instead of removed.
	Delete(id string) (deactivated bool, err error)
}
