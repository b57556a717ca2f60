package student

import "mentorhub/models"

// StudentService defines profile operations for students.
type StudentService interface {
	// GetProfile returns the student profile owned by a user, joined with user
	// and interest summaries. A missing profile is created empty.
	GetProfile(userID string) (*models.StudentProfile, error)
	// GetStudent returns a student's profile by profile ID, for public viewing.
	GetStudent(id string) (*models.StudentProfile, error)
	// UpdateProfile applies a partial update to the student profile owned by a
	// user. An avatar value is stored on the user account.
	UpdateProfile(userID string, req models.StudentProfileRequest) (*models.StudentProfile, error)
}
