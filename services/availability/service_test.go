package availability

import (
	"context"
	"testing"
	"time"

	mentorRepo "mentorhub/database/repository/mentor"
	"mentorhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSlotStore struct {
	slots        []models.WeeklySlot
	replaced     []models.WeeklySlot
	replaceCalls int
}

func (f *fakeSlotStore) FindByMentor(_ context.Context, _ string, activeOnly bool) ([]models.WeeklySlot, error) {
	if !activeOnly {
		return f.slots, nil
	}
	active := []models.WeeklySlot{}
	for _, s := range f.slots {
		if s.IsActive {
			active = append(active, s)
		}
	}
	return active, nil
}

func (f *fakeSlotStore) ReplaceAll(_ context.Context, mentorID string, slots []models.WeeklySlot) ([]models.WeeklySlot, error) {
	f.replaceCalls++
	stored := make([]models.WeeklySlot, len(slots))
	for i, s := range slots {
		s.MentorID = mentorID
		stored[i] = s
	}
	f.slots = stored
	f.replaced = stored
	return stored, nil
}

// fakeMentorRepo serves GetByID from a single canned mentor; every other
// repository method is unused by the availability service.
type fakeMentorRepo struct {
	mentorRepo.MentorRepository
	mentor *models.Mentor
}

func (f *fakeMentorRepo) GetByID(id string) (*models.Mentor, error) {
	if f.mentor != nil && f.mentor.ID == id {
		return f.mentor, nil
	}
	return nil, nil
}

func newTestService(store *fakeSlotStore, mentor *models.Mentor) *DefaultAvailabilityService {
	return &DefaultAvailabilityService{
		Slots:    store,
		Mentors:  &fakeMentorRepo{mentor: mentor},
		MaxWeeks: 12,
		Now:      func() time.Time { return anchorWednesday },
	}
}

func TestSetAvailability(t *testing.T) {
	ownedMentor := &models.Mentor{ID: "mentor-1", UserID: "user-1"}

	t.Run("unknown mentor", func(t *testing.T) {
		svc := newTestService(&fakeSlotStore{}, ownedMentor)

		_, err := svc.SetAvailability(context.Background(), "missing", "user-1", models.SetAvailabilityRequest{
			Slots:    []models.SlotInput{{DayOfWeek: 1, StartTime: "09:00"}},
			Duration: 60,
		})
		assert.ErrorIs(t, err, ErrMentorNotFound)
	})

	t.Run("caller does not own the profile", func(t *testing.T) {
		svc := newTestService(&fakeSlotStore{}, ownedMentor)

		_, err := svc.SetAvailability(context.Background(), "mentor-1", "intruder", models.SetAvailabilityRequest{
			Slots:    []models.SlotInput{{DayOfWeek: 1, StartTime: "09:00"}},
			Duration: 60,
		})
		assert.ErrorIs(t, err, ErrNotOwner)
	})

	t.Run("invalid batch leaves the store untouched", func(t *testing.T) {
		store := &fakeSlotStore{slots: []models.WeeklySlot{
			{MentorID: "mentor-1", DayOfWeek: 2, StartTime: "10:00", EndTime: "11:00", Duration: 60, IsActive: true},
		}}
		svc := newTestService(store, ownedMentor)

		_, err := svc.SetAvailability(context.Background(), "mentor-1", "user-1", models.SetAvailabilityRequest{
			Slots: []models.SlotInput{
				{DayOfWeek: 1, StartTime: "09:00"},
				{DayOfWeek: 1, StartTime: "09:30"},
			},
			Duration: 60,
		})
		require.Error(t, err)
		_, ok := AsValidationError(err)
		assert.True(t, ok)
		assert.Zero(t, store.replaceCalls)
		assert.Len(t, store.slots, 1, "previous snapshot survives a rejected batch")
	})

	t.Run("valid batch replaces the snapshot", func(t *testing.T) {
		store := &fakeSlotStore{slots: []models.WeeklySlot{
			{MentorID: "mentor-1", DayOfWeek: 6, StartTime: "08:00", EndTime: "09:00", Duration: 60, IsActive: true},
		}}
		svc := newTestService(store, ownedMentor)

		stored, err := svc.SetAvailability(context.Background(), "mentor-1", "user-1", models.SetAvailabilityRequest{
			Slots: []models.SlotInput{
				{DayOfWeek: 2, StartTime: "14:00"},
				{DayOfWeek: 1, StartTime: "09:00"},
			},
			Duration: 45,
		})
		require.NoError(t, err)
		require.Len(t, stored, 2)
		assert.Equal(t, 1, store.replaceCalls)
		assert.Equal(t, "09:00", stored[0].StartTime)
		assert.Equal(t, "09:45", stored[0].EndTime)
		assert.Equal(t, "mentor-1", stored[0].MentorID)
	})
}

func TestPreviewAvailability(t *testing.T) {
	store := &fakeSlotStore{slots: []models.WeeklySlot{
		{MentorID: "mentor-1", DayOfWeek: 3, StartTime: "09:00", EndTime: "10:00", Duration: 60, IsActive: true},
	}}
	mentor := &models.Mentor{ID: "mentor-1", UserID: "user-1"}

	t.Run("weeks below one defaults to one", func(t *testing.T) {
		svc := newTestService(store, mentor)

		projected, err := svc.PreviewAvailability(context.Background(), "mentor-1", 0)
		require.NoError(t, err)
		assert.Len(t, projected, 1)
	})

	t.Run("weeks above the cap is clamped", func(t *testing.T) {
		svc := newTestService(store, mentor)
		svc.MaxWeeks = 2

		projected, err := svc.PreviewAvailability(context.Background(), "mentor-1", 500)
		require.NoError(t, err)
		assert.Len(t, projected, 2)
	})

	t.Run("mentor with no slots previews empty", func(t *testing.T) {
		svc := newTestService(&fakeSlotStore{}, mentor)

		projected, err := svc.PreviewAvailability(context.Background(), "mentor-1", 4)
		require.NoError(t, err)
		assert.NotNil(t, projected)
		assert.Empty(t, projected)
	})
}
