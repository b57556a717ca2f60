package availability

import (
	"testing"
	"time"

	"mentorhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2025-01-01 is a Wednesday, dayOfWeek 3.
var anchorWednesday = time.Date(2025, time.January, 1, 10, 0, 0, 0, time.UTC)

func weeklySlot(day int, start, end string) models.WeeklySlot {
	return models.WeeklySlot{
		DayOfWeek: day,
		StartTime: start,
		EndTime:   end,
		Duration:  60,
		IsActive:  true,
	}
}

func TestProjectExpandsOverWeeks(t *testing.T) {
	slots := []models.WeeklySlot{weeklySlot(3, "09:00", "10:00")}

	projected := Project(slots, 2, anchorWednesday)
	require.Len(t, projected, 2, "one weekly slot over two weeks yields two dated slots")

	assert.Equal(t, "2025-01-01", projected[0].Date)
	assert.Equal(t, "2025-01-08", projected[1].Date)
	for _, p := range projected {
		assert.Equal(t, 3, p.DayOfWeek)
		assert.Equal(t, "09:00", p.StartTime)
		assert.Equal(t, "10:00", p.EndTime)
		assert.Equal(t, 60, p.Duration)
	}
}

func TestProjectFromSundayAnchor(t *testing.T) {
	// 2025-01-05 is a Sunday; the two Wednesdays inside the 14-day window are
	// the 8th and the 15th.
	sunday := time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC)
	slots := []models.WeeklySlot{weeklySlot(3, "14:00", "15:00")}

	projected := Project(slots, 2, sunday)
	require.Len(t, projected, 2)
	assert.Equal(t, "2025-01-08", projected[0].Date)
	assert.Equal(t, "2025-01-15", projected[1].Date)
}

func TestProjectWindowStartsToday(t *testing.T) {
	// The window is weeks*7 consecutive days starting at the anchor itself, so
	// a slot on the anchor's own weekday appears on day one.
	slots := []models.WeeklySlot{weeklySlot(3, "09:00", "10:00")}

	projected := Project(slots, 1, anchorWednesday)
	require.Len(t, projected, 1)
	assert.Equal(t, "2025-01-01", projected[0].Date)
}

func TestProjectIsDateMajor(t *testing.T) {
	slots := []models.WeeklySlot{
		weeklySlot(3, "09:00", "10:00"),
		weeklySlot(3, "15:00", "16:00"),
		weeklySlot(5, "11:00", "12:00"),
	}

	projected := Project(slots, 1, anchorWednesday)
	require.Len(t, projected, 3)

	// Wednesday's two slots in stored order, then Friday's.
	assert.Equal(t, "2025-01-01", projected[0].Date)
	assert.Equal(t, "09:00", projected[0].StartTime)
	assert.Equal(t, "2025-01-01", projected[1].Date)
	assert.Equal(t, "15:00", projected[1].StartTime)
	assert.Equal(t, "2025-01-03", projected[2].Date)
	assert.Equal(t, "11:00", projected[2].StartTime)
}

func TestProjectSkipsInactiveSlots(t *testing.T) {
	inactive := weeklySlot(3, "09:00", "10:00")
	inactive.IsActive = false
	slots := []models.WeeklySlot{inactive, weeklySlot(4, "10:00", "11:00")}

	projected := Project(slots, 1, anchorWednesday)
	require.Len(t, projected, 1)
	assert.Equal(t, 4, projected[0].DayOfWeek)
}

func TestProjectEmptyResults(t *testing.T) {
	t.Run("no slots", func(t *testing.T) {
		projected := Project(nil, 4, anchorWednesday)
		assert.NotNil(t, projected)
		assert.Empty(t, projected)
	})

	t.Run("zero weeks", func(t *testing.T) {
		projected := Project([]models.WeeklySlot{weeklySlot(3, "09:00", "10:00")}, 0, anchorWednesday)
		assert.NotNil(t, projected)
		assert.Empty(t, projected)
	})
}

func TestWeekdayNumber(t *testing.T) {
	// 2025-01-05 is a Sunday.
	sunday := time.Date(2025, time.January, 5, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 0, WeekdayNumber(sunday))
	assert.Equal(t, 3, WeekdayNumber(anchorWednesday))
	assert.Equal(t, 6, WeekdayNumber(sunday.AddDate(0, 0, -1)))
}
