package availability

import (
	"fmt"
	"regexp"
)

// minutesPerDay is the number of minutes in a calendar day.
const minutesPerDay = 24 * 60

// clockPattern matches a 24-hour "HH:MM" wall-clock time.
var clockPattern = regexp.MustCompile(`^([0-1]?[0-9]|2[0-3]):[0-5][0-9]$`)

// clockToMinutes converts a "HH:MM" wall-clock time to minutes since midnight.
func clockToMinutes(clock string) (int, error) {
	if !clockPattern.MatchString(clock) {
		return 0, fmt.Errorf("invalid time format %q, expected HH:MM", clock)
	}
	var h, m int
	if _, err := fmt.Sscanf(clock, "%d:%d", &h, &m); err != nil {
		return 0, fmt.Errorf("invalid time format %q, expected HH:MM", clock)
	}
	return h*60 + m, nil
}

// minutesToClock converts minutes since midnight back to a zero-padded "HH:MM".
func minutesToClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
