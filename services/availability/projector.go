package availability

import (
	"time"

	"mentorhub/models"
)

// WeekdayNumber maps a calendar date to the stored dayOfWeek numbering,
// 0 = Sunday through 6 = Saturday. Kept as an explicit function so the slot
// convention and the time package convention are tied together in one place.
func WeekdayNumber(t time.Time) int {
	return int(t.Weekday())
}

// Project expands a mentor's weekly slots into concrete dated slots over a
// window of weeks*7 consecutive days starting at today itself. Only active
// slots are considered. The result is date-major, preserving the given slot
// order within each date.
//
// Input is trusted to be previously validated canonical data; Project has no
// failure path.
func Project(slots []models.WeeklySlot, weeks int, today time.Time) []models.ProjectedSlot {
	projected := []models.ProjectedSlot{}
	if weeks <= 0 || len(slots) == 0 {
		return projected
	}

	for i := 0; i < weeks*7; i++ {
		date := today.AddDate(0, 0, i)
		dayOfWeek := WeekdayNumber(date)

		for _, slot := range slots {
			if !slot.IsActive || slot.DayOfWeek != dayOfWeek {
				continue
			}
			projected = append(projected, models.ProjectedSlot{
				Date:      date.Format("2006-01-02"),
				DayOfWeek: dayOfWeek,
				StartTime: slot.StartTime,
				EndTime:   slot.EndTime,
				Duration:  slot.Duration,
			})
		}
	}

	return projected
}
