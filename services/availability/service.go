package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	availabilityRepo "mentorhub/database/repository/availability"
	mentorRepo "mentorhub/database/repository/mentor"
	"mentorhub/models"
)

var (
	// ErrMentorNotFound signals an unknown mentor ID.
	ErrMentorNotFound = errors.New("mentor not found")
	// ErrNotOwner signals a caller that does not own the mentor profile.
	ErrNotOwner = errors.New("not authorized to update this mentor's availability")
)

// DefaultAvailabilityService is a concrete implementation backed by a
// WeeklySlotStore. Validation and projection themselves stay pure; this
// service supplies identity checks, persistence, and the clock.
type DefaultAvailabilityService struct {
	Slots   availabilityRepo.WeeklySlotStore
	Mentors mentorRepo.MentorRepository
	// MaxWeeks caps the preview window. Zero means no cap.
	MaxWeeks int
	// Now supplies the projection anchor date; defaults to time.Now.
	Now func() time.Time
}

func (s *DefaultAvailabilityService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// SetAvailability replaces the mentor's full weekly snapshot after the whole
// batch validates. A failed validation leaves previously stored availability
// untouched.
func (s *DefaultAvailabilityService) SetAvailability(ctx context.Context, mentorID, userID string, req models.SetAvailabilityRequest) ([]models.WeeklySlot, error) {
	mentor, err := s.Mentors.GetByID(mentorID)
	if err != nil {
		return nil, fmt.Errorf("failed to load mentor %s: %w", mentorID, err)
	}
	if mentor == nil {
		return nil, ErrMentorNotFound
	}
	if mentor.UserID != userID {
		return nil, ErrNotOwner
	}

	canonical, err := Validate(req.Slots, req.Duration)
	if err != nil {
		return nil, err
	}

	stored, err := s.Slots.ReplaceAll(ctx, mentorID, canonical)
	if err != nil {
		return nil, fmt.Errorf("failed to replace availability for mentor %s: %w", mentorID, err)
	}
	return stored, nil
}

// GetAvailability returns the mentor's active canonical slots.
func (s *DefaultAvailabilityService) GetAvailability(ctx context.Context, mentorID string) ([]models.WeeklySlot, error) {
	return s.Slots.FindByMentor(ctx, mentorID, true)
}

// PreviewAvailability projects the mentor's active slots over the requested
// number of weeks, starting today. A mentor with no active slots yields an
// empty list.
func (s *DefaultAvailabilityService) PreviewAvailability(ctx context.Context, mentorID string, weeks int) ([]models.ProjectedSlot, error) {
	if weeks < 1 {
		weeks = 1
	}
	if s.MaxWeeks > 0 && weeks > s.MaxWeeks {
		weeks = s.MaxWeeks
	}

	slots, err := s.Slots.FindByMentor(ctx, mentorID, true)
	if err != nil {
		return nil, err
	}
	return Project(slots, weeks, s.now()), nil
}
