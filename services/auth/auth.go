package auth

import (
	"fmt"

	mentorRepo "mentorhub/database/repository/mentor"
	studentRepo "mentorhub/database/repository/student"
	userRepo "mentorhub/database/repository/user"
	"mentorhub/models"
	"mentorhub/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// DefaultAuthService is a concrete implementation of AuthService.
type DefaultAuthService struct {
	Users    userRepo.UserRepository
	Students studentRepo.StudentRepository
	Mentors  mentorRepo.MentorRepository
}

func accountInfo(user *models.User) AccountInfo {
	return AccountInfo{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Role:      user.Role,
		Avatar:    user.Avatar,
	}
}

// roleProfile loads the student or mentor profile matching the user's role.
// Admin accounts have no profile.
func (s *DefaultAuthService) roleProfile(user *models.User) (interface{}, error) {
	switch user.Role {
	case models.RoleStudent:
		student, err := s.Students.GetByUserID(user.ID)
		if err != nil {
			return nil, err
		}
		if student == nil {
			return nil, nil
		}
		return student, nil
	case models.RoleMentor:
		mentor, err := s.Mentors.GetByUserID(user.ID)
		if err != nil {
			return nil, err
		}
		if mentor == nil {
			return nil, nil
		}
		return mentor, nil
	}
	return nil, nil
}

// Login verifies credentials and returns the account, role profile and token.
func (s *DefaultAuthService) Login(email, password string) (*AuthResponse, error) {
	user, err := s.Users.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("login: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("login failed, please try again")
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrAccountDisabled
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	profile, err := s.roleProfile(user)
	if err != nil {
		utils.GetLogger().Error("login: failed to fetch role profile", zap.Error(err))
		return nil, fmt.Errorf("login failed, please try again")
	}

	token, err := utils.GenerateToken(user.ID, user.Role, tokenDuration())
	if err != nil {
		utils.GetLogger().Error("login: failed to generate auth token", zap.Error(err))
		return nil, fmt.Errorf("login failed, please try again")
	}

	return &AuthResponse{
		User:    accountInfo(user),
		Profile: profile,
		Token:   token,
	}, nil
}

// GetMe returns the account and role profile for an authenticated user.
func (s *DefaultAuthService) GetMe(userID string) (*AuthResponse, error) {
	user, err := s.Users.GetByID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user %s: %w", userID, err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	profile, err := s.roleProfile(user)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile for user %s: %w", userID, err)
	}

	return &AuthResponse{
		User:    accountInfo(user),
		Profile: profile,
	}, nil
}
