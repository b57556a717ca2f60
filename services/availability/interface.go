package availability

import (
	"context"

	"mentorhub/models"
)

// AvailabilityService defines operations on a mentor's weekly availability.
type AvailabilityService interface {
	// SetAvailability validates the submitted batch and, only if the whole
	// batch passes, replaces the mentor's persisted snapshot. The caller's
	// user ID must own the mentor profile.
	SetAvailability(ctx context.Context, mentorID, userID string, req models.SetAvailabilityRequest) ([]models.WeeklySlot, error)
	// GetAvailability returns the mentor's active canonical slots, sorted by
	// (dayOfWeek, startTime).
	GetAvailability(ctx context.Context, mentorID string) ([]models.WeeklySlot, error)
	// PreviewAvailability expands the mentor's active slots into dated slots
	// for the next weeks, starting today.
	PreviewAvailability(ctx context.Context, mentorID string, weeks int) ([]models.ProjectedSlot, error)
}
