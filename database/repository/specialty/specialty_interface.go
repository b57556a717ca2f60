package specialtyRepo

import "mentorhub/models"

// AdminListCriteria holds filters and paging for the admin specialty listing,
// which also sees inactive entries.
type AdminListCriteria struct {
	Search   string // case-insensitive match on name or category
	IsActive *bool  // nil means both
	Skip     int
	Limit    int
}

// SpecialtyRepository defines methods for specialty taxonomy data access.
type SpecialtyRepository interface {
	// GetActiveByID retrieves an active specialty by ID. Returns nil when not
	// found or inactive.
	GetActiveByID(id string) (*models.Specialty, error)
	// GetByID retrieves a specialty regardless of active state. Returns nil
	// when not found.
	GetByID(id string) (*models.Specialty, error)
	// GetByName retrieves a specialty by exact name. Returns nil when not found.
	GetByName(name string) (*models.Specialty, error)
	// ListActive returns active specialties sorted by (category, name), with
	// an optional case-insensitive category filter.
	ListActive(category string) ([]models.Specialty, error)
	// ListActiveByIDs returns the active specialties matching the given IDs.
	ListActiveByIDs(ids []string) ([]models.Specialty, error)
	// ListAll returns specialties for the admin view.
	ListAll(criteria AdminListCriteria) ([]models.Specialty, error)
	// CountAll counts specialties matching the admin criteria filters.
	CountAll(criteria AdminListCriteria) (int64, error)
	// Create inserts a new specialty.
	Create(specialty *models.Specialty) error
	// Update modifies an existing specialty.
	Update(specialty *models.Specialty) error
	// Delete removes a specialty permanently.
	Delete(id string) error
}
