package availability

import (
	"fmt"
	"sort"

	"mentorhub/models"
)

// workingSlot is a raw slot with its start pre-parsed for sorting and arithmetic.
type workingSlot struct {
	dayOfWeek    int
	startTime    string
	startMinutes int
}

// Validate normalizes and validates a batch of raw weekly slots against the
// given session duration. On success it returns one canonical slot per input
// entry, sorted by (dayOfWeek, startTime), each with a derived zero-padded end
// time, the duration, and IsActive set. The caller stamps mentor identity.
//
// Any single invalid or overlapping slot rejects the entire batch with a
// *ValidationError; no partial acceptance.
func Validate(raw []models.SlotInput, duration int) ([]models.WeeklySlot, error) {
	if len(raw) == 0 {
		return nil, &ValidationError{Kind: ErrorKindInput, Detail: "slots array is required"}
	}
	if duration != models.SlotDurationShort && duration != models.SlotDurationLong {
		return nil, &ValidationError{Kind: ErrorKindInput, Detail: "duration must be 45 or 60 minutes"}
	}

	working := make([]workingSlot, 0, len(raw))
	for _, slot := range raw {
		startMinutes, err := clockToMinutes(slot.StartTime)
		if err != nil {
			return nil, &ValidationError{
				Kind:   ErrorKindSlot,
				Detail: fmt.Sprintf("invalid start time %q on day %d, expected HH:MM", slot.StartTime, slot.DayOfWeek),
			}
		}
		working = append(working, workingSlot{
			dayOfWeek:    slot.DayOfWeek,
			startTime:    slot.StartTime,
			startMinutes: startMinutes,
		})
	}

	// Sort by day then start so overlapping same-day intervals land adjacently;
	// a single pass comparing each slot to its successor then catches every
	// pairwise overlap.
	sort.SliceStable(working, func(i, j int) bool {
		if working[i].dayOfWeek != working[j].dayOfWeek {
			return working[i].dayOfWeek < working[j].dayOfWeek
		}
		return working[i].startMinutes < working[j].startMinutes
	})

	canonical := make([]models.WeeklySlot, 0, len(working))
	for i, slot := range working {
		if slot.dayOfWeek < 0 || slot.dayOfWeek > 6 {
			return nil, &ValidationError{
				Kind:   ErrorKindSlot,
				Detail: fmt.Sprintf("invalid day of week: %d", slot.dayOfWeek),
			}
		}

		endMinutes := slot.startMinutes + duration
		// Slots may not cross midnight: a start of 23:30 with a 45 minute
		// session has no same-day end time and is rejected outright.
		if endMinutes > minutesPerDay {
			return nil, &ValidationError{
				Kind:   ErrorKindSlot,
				Detail: fmt.Sprintf("slot on day %d at %s extends past midnight", slot.dayOfWeek, slot.startTime),
			}
		}

		if i < len(working)-1 {
			next := working[i+1]
			if next.dayOfWeek == slot.dayOfWeek && next.startMinutes < endMinutes {
				return nil, &ValidationError{
					Kind:   ErrorKindOverlap,
					Detail: fmt.Sprintf("overlapping slots detected on day %d at %s", next.dayOfWeek, next.startTime),
				}
			}
		}

		canonical = append(canonical, models.WeeklySlot{
			DayOfWeek: slot.dayOfWeek,
			StartTime: minutesToClock(slot.startMinutes),
			EndTime:   minutesToClock(endMinutes),
			Duration:  duration,
			IsActive:  true,
		})
	}

	return canonical, nil
}
