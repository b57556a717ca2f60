// File: database/repository/availability/interface.go
package availabilityRepo

import (
	"context"

	"mentorhub/models"
)

// WeeklySlotStore defines access to a mentor's persisted weekly availability.
// A mentor's slot set is only ever replaced wholesale; there are no partial
// writes.
type WeeklySlotStore interface {
	// FindByMentor returns the mentor's weekly slots sorted by
	// (dayOfWeek, startTime). With activeOnly set, soft-disabled slots are
	// excluded.
	FindByMentor(ctx context.Context, mentorID string, activeOnly bool) ([]models.WeeklySlot, error)
	// ReplaceAll atomically swaps the mentor's entire slot set for the given
	// one. A concurrent reader never observes the delete and insert
	// half-applied.
	ReplaceAll(ctx context.Context, mentorID string, slots []models.WeeklySlot) ([]models.WeeklySlot, error)
}
