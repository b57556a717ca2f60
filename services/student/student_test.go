package student

import (
	"testing"

	specialtyRepo "mentorhub/database/repository/specialty"
	studentRepo "mentorhub/database/repository/student"
	userRepo "mentorhub/database/repository/user"
	"mentorhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStudentRepo struct {
	studentRepo.StudentRepository
	students map[string]models.Student
}

func (f *fakeStudentRepo) GetByID(id string) (*models.Student, error) {
	if s, ok := f.students[id]; ok {
		return &s, nil
	}
	return nil, nil
}

type fakeUserRepo struct {
	userRepo.UserRepository
	users map[string]models.User
}

func (f *fakeUserRepo) GetByID(id string) (*models.User, error) {
	if u, ok := f.users[id]; ok {
		return &u, nil
	}
	return nil, nil
}

type fakeSpecialtyRepo struct {
	specialtyRepo.SpecialtyRepository
	specialties map[string]models.Specialty
}

func (f *fakeSpecialtyRepo) ListActiveByIDs(ids []string) ([]models.Specialty, error) {
	found := []models.Specialty{}
	for _, id := range ids {
		if sp, ok := f.specialties[id]; ok {
			found = append(found, sp)
		}
	}
	return found, nil
}

func newTestService() *DefaultStudentService {
	return &DefaultStudentService{
		Students: &fakeStudentRepo{students: map[string]models.Student{
			"s1": {ID: "s1", UserID: "u1", InterestIDs: []string{"sp1"}, IsActive: true},
			"s2": {ID: "s2", UserID: "u2", IsActive: false},
		}},
		Users: &fakeUserRepo{users: map[string]models.User{
			"u1": {ID: "u1", FirstName: "Grace", LastName: "Hopper"},
		}},
		Specialties: &fakeSpecialtyRepo{specialties: map[string]models.Specialty{
			"sp1": {ID: "sp1", Name: "Compilers", IsActive: true},
		}},
	}
}

func TestGetStudent(t *testing.T) {
	svc := newTestService()

	t.Run("joins user and interests", func(t *testing.T) {
		profile, err := svc.GetStudent("s1")
		require.NoError(t, err)

		assert.Equal(t, "s1", profile.ID)
		assert.Equal(t, "Grace", profile.User.FirstName)
		require.Len(t, profile.Interests, 1)
		assert.Equal(t, "Compilers", profile.Interests[0].Name)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := svc.GetStudent("missing")
		assert.ErrorIs(t, err, ErrProfileNotFound)
	})

	t.Run("inactive profile is hidden", func(t *testing.T) {
		_, err := svc.GetStudent("s2")
		assert.ErrorIs(t, err, ErrProfileNotFound)
	})
}
