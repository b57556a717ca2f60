package admin

import "mentorhub/models"

// PlatformStats is the admin dashboard summary.
type PlatformStats struct {
	TotalUsers        int64 `json:"totalUsers"`
	ApprovedMentors   int64 `json:"approvedMentors"`
	PendingMentors    int64 `json:"pendingMentors"`
	ActiveSpecialties int64 `json:"activeSpecialties"`
}

// AdminService defines moderation and platform management operations.
type AdminService interface {
	// ListPendingMentors returns mentors awaiting approval, joined with user
	// and specialty summaries.
	ListPendingMentors() ([]models.MentorCard, error)
	// SetMentorApproval approves or rejects a mentor profile.
	SetMentorApproval(mentorID string, approved bool) (*models.Mentor, error)
	// ListUsers returns all accounts without credential fields.
	ListUsers() ([]models.User, error)
	// SetUserActive activates or deactivates an account.
	SetUserActive(userID string, active bool) error
	// DeleteUser permanently removes an account.
	DeleteUser(userID string) error
	// Stats returns platform-wide counts for the dashboard.
	Stats() (*PlatformStats, error)
}
