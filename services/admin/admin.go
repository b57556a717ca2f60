package admin

import (
	"errors"
	"fmt"
	"time"

	mentorRepo "mentorhub/database/repository/mentor"
	specialtyRepo "mentorhub/database/repository/specialty"
	userRepo "mentorhub/database/repository/user"
	"mentorhub/models"
	mentorsvc "mentorhub/services/mentor"

	"go.mongodb.org/mongo-driver/bson"
)

var (
	// ErrMentorNotFound signals a mentor ID with no matching profile.
	ErrMentorNotFound = errors.New("mentor not found")
	// ErrUserNotFound signals a user ID with no matching account.
	ErrUserNotFound = errors.New("user not found")
)

// DefaultAdminService is a concrete implementation of AdminService.
type DefaultAdminService struct {
	Users       userRepo.UserRepository
	Mentors     mentorRepo.MentorRepository
	Specialties specialtyRepo.SpecialtyRepository
}

// ListPendingMentors returns mentors awaiting approval.
func (s *DefaultAdminService) ListPendingMentors() ([]models.MentorCard, error) {
	mentors, err := s.Mentors.ListPending()
	if err != nil {
		return nil, fmt.Errorf("failed to list pending mentors: %w", err)
	}
	return mentorsvc.BuildCards(mentors, s.Users, s.Specialties)
}

// SetMentorApproval approves or rejects a mentor profile.
func (s *DefaultAdminService) SetMentorApproval(mentorID string, approved bool) (*models.Mentor, error) {
	mentor, err := s.Mentors.GetByID(mentorID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch mentor %s: %w", mentorID, err)
	}
	if mentor == nil {
		return nil, ErrMentorNotFound
	}

	if err := s.Mentors.SetApproved(mentorID, approved); err != nil {
		return nil, fmt.Errorf("failed to set approval for mentor %s: %w", mentorID, err)
	}
	mentor.IsApproved = approved
	mentor.UpdatedAt = time.Now()
	return mentor, nil
}

// ListUsers returns all accounts without credential fields.
func (s *DefaultAdminService) ListUsers() ([]models.User, error) {
	users, err := s.Users.GetAll(bson.M{"passwordHash": 0})
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// SetUserActive activates or deactivates an account.
func (s *DefaultAdminService) SetUserActive(userID string, active bool) error {
	user, err := s.Users.GetByID(userID)
	if err != nil {
		return fmt.Errorf("failed to fetch user %s: %w", userID, err)
	}
	if user == nil {
		return ErrUserNotFound
	}
	fields := bson.M{"isActive": active, "updatedAt": time.Now()}
	if err := s.Users.UpdateFields(userID, fields); err != nil {
		return fmt.Errorf("failed to update user %s: %w", userID, err)
	}
	return nil
}

// DeleteUser permanently removes an account. Role profiles stay behind as
// orphans; they are invisible once the account is gone.
func (s *DefaultAdminService) DeleteUser(userID string) error {
	user, err := s.Users.GetByID(userID)
	if err != nil {
		return fmt.Errorf("failed to fetch user %s: %w", userID, err)
	}
	if user == nil {
		return ErrUserNotFound
	}
	if err := s.Users.Delete(userID); err != nil {
		return fmt.Errorf("failed to delete user %s: %w", userID, err)
	}
	return nil
}

// Stats returns platform-wide counts for the dashboard.
func (s *DefaultAdminService) Stats() (*PlatformStats, error) {
	users, err := s.Users.GetAll(bson.M{"passwordHash": 0})
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	approved, err := s.Mentors.Count(mentorRepo.ListCriteria{})
	if err != nil {
		return nil, fmt.Errorf("failed to count mentors: %w", err)
	}
	pending, err := s.Mentors.ListPending()
	if err != nil {
		return nil, fmt.Errorf("failed to count pending mentors: %w", err)
	}
	active := true
	specialties, err := s.Specialties.CountAll(specialtyRepo.AdminListCriteria{IsActive: &active})
	if err != nil {
		return nil, fmt.Errorf("failed to count specialties: %w", err)
	}

	return &PlatformStats{
		TotalUsers:        int64(len(users)),
		ApprovedMentors:   approved,
		PendingMentors:    int64(len(pending)),
		ActiveSpecialties: specialties,
	}, nil
}
