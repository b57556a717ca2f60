package studentRepo

import "mentorhub/models"

// StudentRepository defines methods for student profile data access.
type StudentRepository interface {
	// GetByID retrieves a student profile by its unique ID. Returns nil when
	// not found.
	GetByID(id string) (*models.Student, error)
	// GetByUserID retrieves the student profile owned by a user. Returns nil
	// when the user has none.
	GetByUserID(userID string) (*models.Student, error)
	// Create inserts a new student profile.
	Create(student *models.Student) error
	// Update modifies an existing student profile.
	Update(student *models.Student) error
}
