package review

import (
	"testing"

	userRepo "mentorhub/database/repository/user"
	"mentorhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeStats(t *testing.T) {
	t.Run("no reviews", func(t *testing.T) {
		stats := ComputeStats(nil)
		assert.Equal(t, 0, stats.TotalReviews)
		assert.Zero(t, stats.AverageRating)
		assert.Equal(t, map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}, stats.Distribution)
	})

	t.Run("average rounds to one decimal", func(t *testing.T) {
		stats := ComputeStats([]models.Review{
			{Rating: 5}, {Rating: 4}, {Rating: 4},
		})
		assert.Equal(t, 3, stats.TotalReviews)
		assert.Equal(t, 4.3, stats.AverageRating)
		assert.Equal(t, 2, stats.Distribution[4])
		assert.Equal(t, 1, stats.Distribution[5])
		assert.Equal(t, 0, stats.Distribution[1])
	})
}

type fakeUserRepo struct {
	userRepo.UserRepository
	users map[string]models.User
}

func (f *fakeUserRepo) GetByIDs(ids []string) ([]models.User, error) {
	found := []models.User{}
	for _, id := range ids {
		if u, ok := f.users[id]; ok {
			found = append(found, u)
		}
	}
	return found, nil
}

func TestJoinStudents(t *testing.T) {
	users := &fakeUserRepo{users: map[string]models.User{
		"u1": {ID: "u1", FirstName: "Ada", LastName: "Lovelace"},
	}}

	reviews := []models.Review{
		{ID: "r1", StudentID: "u1", Rating: 5},
		{ID: "r2", StudentID: "ghost", Rating: 3},
	}

	items, err := JoinStudents(reviews, users)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "Ada", items[0].Student.FirstName)
	assert.Empty(t, items[1].Student.ID, "missing student leaves an empty summary")
}
