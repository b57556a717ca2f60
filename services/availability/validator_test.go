package availability

import (
	"testing"

	"mentorhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRejectsBadInput(t *testing.T) {
	tests := []struct {
		name     string
		slots    []models.SlotInput
		duration int
		kind     ErrorKind
		detail   string
	}{
		{
			name:     "empty batch",
			slots:    nil,
			duration: 60,
			kind:     ErrorKindInput,
			detail:   "slots array is required",
		},
		{
			name:     "unsupported duration",
			slots:    []models.SlotInput{{DayOfWeek: 1, StartTime: "09:00"}},
			duration: 30,
			kind:     ErrorKindInput,
			detail:   "duration must be 45 or 60 minutes",
		},
		{
			name:     "malformed time",
			slots:    []models.SlotInput{{DayOfWeek: 1, StartTime: "0900"}},
			duration: 60,
			kind:     ErrorKindSlot,
		},
		{
			name:     "minutes out of range",
			slots:    []models.SlotInput{{DayOfWeek: 1, StartTime: "09:65"}},
			duration: 60,
			kind:     ErrorKindSlot,
		},
		{
			name:     "hour out of range",
			slots:    []models.SlotInput{{DayOfWeek: 1, StartTime: "24:00"}},
			duration: 60,
			kind:     ErrorKindSlot,
		},
		{
			name:     "day below range",
			slots:    []models.SlotInput{{DayOfWeek: -1, StartTime: "09:00"}},
			duration: 60,
			kind:     ErrorKindSlot,
			detail:   "invalid day of week: -1",
		},
		{
			name:     "day above range",
			slots:    []models.SlotInput{{DayOfWeek: 7, StartTime: "09:00"}},
			duration: 60,
			kind:     ErrorKindSlot,
			detail:   "invalid day of week: 7",
		},
		{
			name:     "extends past midnight",
			slots:    []models.SlotInput{{DayOfWeek: 2, StartTime: "23:30"}},
			duration: 45,
			kind:     ErrorKindSlot,
			detail:   "slot on day 2 at 23:30 extends past midnight",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			canonical, err := Validate(tt.slots, tt.duration)
			require.Error(t, err)
			assert.Nil(t, canonical)

			verr, ok := AsValidationError(err)
			require.True(t, ok)
			assert.Equal(t, tt.kind, verr.Kind)
			if tt.detail != "" {
				assert.Equal(t, tt.detail, verr.Detail)
			}
		})
	}
}

func TestValidateRejectsWholeBatchOnSingleBadSlot(t *testing.T) {
	slots := []models.SlotInput{
		{DayOfWeek: 1, StartTime: "09:00"},
		{DayOfWeek: 2, StartTime: "10:00"},
		{DayOfWeek: 9, StartTime: "11:00"},
	}

	canonical, err := Validate(slots, 60)
	require.Error(t, err)
	assert.Nil(t, canonical, "valid slots must not survive a failed batch")
}

func TestValidateOverlapDetection(t *testing.T) {
	t.Run("overlap on the same day is rejected", func(t *testing.T) {
		slots := []models.SlotInput{
			{DayOfWeek: 1, StartTime: "09:00"},
			{DayOfWeek: 1, StartTime: "09:30"},
		}

		_, err := Validate(slots, 60)
		require.Error(t, err)
		verr, ok := AsValidationError(err)
		require.True(t, ok)
		assert.Equal(t, ErrorKindOverlap, verr.Kind)
		assert.Equal(t, "overlapping slots detected on day 1 at 09:30", verr.Detail)
	})

	t.Run("overlap is found regardless of submission order", func(t *testing.T) {
		slots := []models.SlotInput{
			{DayOfWeek: 1, StartTime: "09:30"},
			{DayOfWeek: 1, StartTime: "09:00"},
		}

		_, err := Validate(slots, 60)
		require.Error(t, err)
		verr, ok := AsValidationError(err)
		require.True(t, ok)
		assert.Equal(t, ErrorKindOverlap, verr.Kind)
	})

	t.Run("identical start times on the same day are an overlap", func(t *testing.T) {
		slots := []models.SlotInput{
			{DayOfWeek: 5, StartTime: "10:00"},
			{DayOfWeek: 5, StartTime: "10:00"},
		}

		_, err := Validate(slots, 45)
		require.Error(t, err)
		verr, ok := AsValidationError(err)
		require.True(t, ok)
		assert.Equal(t, ErrorKindOverlap, verr.Kind)
	})

	t.Run("back to back slots are legal", func(t *testing.T) {
		slots := []models.SlotInput{
			{DayOfWeek: 1, StartTime: "09:00"},
			{DayOfWeek: 1, StartTime: "09:45"},
			{DayOfWeek: 1, StartTime: "10:30"},
		}

		canonical, err := Validate(slots, 45)
		require.NoError(t, err)
		assert.Len(t, canonical, 3)
	})

	t.Run("identical times on different days do not overlap", func(t *testing.T) {
		slots := []models.SlotInput{
			{DayOfWeek: 1, StartTime: "09:00"},
			{DayOfWeek: 2, StartTime: "09:00"},
			{DayOfWeek: 3, StartTime: "09:00"},
		}

		canonical, err := Validate(slots, 60)
		require.NoError(t, err)
		assert.Len(t, canonical, 3)
	})
}

func TestValidateCanonicalOutput(t *testing.T) {
	slots := []models.SlotInput{
		{DayOfWeek: 3, StartTime: "14:00"},
		{DayOfWeek: 1, StartTime: "9:00"},
		{DayOfWeek: 1, StartTime: "16:15"},
	}

	canonical, err := Validate(slots, 45)
	require.NoError(t, err)
	require.Len(t, canonical, 3)

	// Sorted by day then start, zero-padded, end times derived.
	assert.Equal(t, 1, canonical[0].DayOfWeek)
	assert.Equal(t, "09:00", canonical[0].StartTime)
	assert.Equal(t, "09:45", canonical[0].EndTime)

	assert.Equal(t, 1, canonical[1].DayOfWeek)
	assert.Equal(t, "16:15", canonical[1].StartTime)
	assert.Equal(t, "17:00", canonical[1].EndTime)

	assert.Equal(t, 3, canonical[2].DayOfWeek)
	assert.Equal(t, "14:00", canonical[2].StartTime)
	assert.Equal(t, "14:45", canonical[2].EndTime)

	for _, slot := range canonical {
		assert.Equal(t, 45, slot.Duration)
		assert.True(t, slot.IsActive)
	}
}

func TestValidateIsIdempotentOnItsOwnOutput(t *testing.T) {
	first, err := Validate([]models.SlotInput{
		{DayOfWeek: 5, StartTime: "08:00"},
		{DayOfWeek: 0, StartTime: "23:00"},
	}, 60)
	require.NoError(t, err)

	resubmitted := make([]models.SlotInput, len(first))
	for i, slot := range first {
		resubmitted[i] = models.SlotInput{DayOfWeek: slot.DayOfWeek, StartTime: slot.StartTime}
	}

	second, err := Validate(resubmitted, 60)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestValidateLastSlotOfDay(t *testing.T) {
	t.Run("slot ending exactly at midnight is legal", func(t *testing.T) {
		canonical, err := Validate([]models.SlotInput{{DayOfWeek: 4, StartTime: "23:00"}}, 60)
		require.NoError(t, err)
		require.Len(t, canonical, 1)
		assert.Equal(t, "24:00", canonical[0].EndTime)
	})

	t.Run("slot spilling into the next day is rejected", func(t *testing.T) {
		_, err := Validate([]models.SlotInput{{DayOfWeek: 4, StartTime: "23:30"}}, 60)
		require.Error(t, err)
	})
}
