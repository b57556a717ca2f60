package student

import (
	"errors"
	"fmt"
	"time"

	specialtyRepo "mentorhub/database/repository/specialty"
	studentRepo "mentorhub/database/repository/student"
	userRepo "mentorhub/database/repository/user"
	"mentorhub/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

var (
	// ErrProfileNotFound signals a user with no student profile.
	ErrProfileNotFound = errors.New("student profile not found")
	// ErrUnknownInterest signals an update referencing a specialty that does
	// not exist or is inactive.
	ErrUnknownInterest = errors.New("one or more interests do not exist")
)

// DefaultStudentService is a concrete implementation of StudentService.
type DefaultStudentService struct {
	Students    studentRepo.StudentRepository
	Users       userRepo.UserRepository
	Specialties specialtyRepo.SpecialtyRepository
}

// buildProfile joins a student with its user account and interest summaries.
func (s *DefaultStudentService) buildProfile(student *models.Student) (*models.StudentProfile, error) {
	profile := &models.StudentProfile{
		Student:   *student,
		Interests: []models.SpecialtySummary{},
	}

	user, err := s.Users.GetByID(student.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user %s: %w", student.UserID, err)
	}
	if user != nil {
		profile.User = user.Summary()
	}

	if len(student.InterestIDs) > 0 {
		specialties, err := s.Specialties.ListActiveByIDs(student.InterestIDs)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch interests: %w", err)
		}
		for _, sp := range specialties {
			profile.Interests = append(profile.Interests, sp.Summary())
		}
	}
	return profile, nil
}

// GetProfile returns the student profile owned by a user. A student account
// that somehow lacks a profile gets an empty one created on first read.
func (s *DefaultStudentService) GetProfile(userID string) (*models.StudentProfile, error) {
	student, err := s.Students.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch student profile for user %s: %w", userID, err)
	}
	if student == nil {
		student = &models.Student{
			ID:          uuid.New().String(),
			UserID:      userID,
			InterestIDs: []string{},
			IsActive:    true,
		}
		if err := s.Students.Create(student); err != nil {
			return nil, fmt.Errorf("failed to create student profile for user %s: %w", userID, err)
		}
	}
	return s.buildProfile(student)
}

// GetStudent returns a student's profile by profile ID, for public viewing.
func (s *DefaultStudentService) GetStudent(id string) (*models.StudentProfile, error) {
	student, err := s.Students.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch student %s: %w", id, err)
	}
	if student == nil || !student.IsActive {
		return nil, ErrProfileNotFound
	}
	return s.buildProfile(student)
}

// UpdateProfile applies a partial update to the student profile owned by a user.
func (s *DefaultStudentService) UpdateProfile(userID string, req models.StudentProfileRequest) (*models.StudentProfile, error) {
	student, err := s.Students.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch student profile for user %s: %w", userID, err)
	}
	if student == nil {
		return nil, ErrProfileNotFound
	}

	if req.InterestIDs != nil {
		interests := *req.InterestIDs
		if len(interests) > 0 {
			found, err := s.Specialties.ListActiveByIDs(interests)
			if err != nil {
				return nil, fmt.Errorf("failed to validate interests: %w", err)
			}
			if len(found) != len(interests) {
				return nil, ErrUnknownInterest
			}
		}
		student.InterestIDs = interests
	}

	if req.Bio != nil {
		student.Bio = *req.Bio
	}
	if req.Institution != nil {
		student.Institution = *req.Institution
	}
	if req.Career != nil {
		student.Career = *req.Career
	}
	if req.Semester != nil {
		student.Semester = *req.Semester
	}
	student.UpdatedAt = time.Now()

	if err := s.Students.Update(student); err != nil {
		return nil, fmt.Errorf("failed to update student profile: %w", err)
	}

	if req.Avatar != nil {
		fields := bson.M{"avatar": *req.Avatar, "updatedAt": time.Now()}
		if err := s.Users.UpdateFields(userID, fields); err != nil {
			return nil, fmt.Errorf("failed to update avatar for user %s: %w", userID, err)
		}
	}

	return s.buildProfile(student)
}
