package auth

import (
	"fmt"
	"time"

	"mentorhub/config"
	"mentorhub/models"
	"mentorhub/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func tokenDuration() time.Duration {
	return time.Duration(config.AppConfig.JWTExpiryHours) * time.Hour
}

// createAccount hashes the password and persists a new user with the given role.
func (s *DefaultAuthService) createAccount(email, password, firstName, lastName, role string) (*models.User, error) {
	existing, err := s.Users.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("registration: failed to check for existing user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		utils.GetLogger().Error("registration: failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	user := &models.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hashedPassword),
		FirstName:    firstName,
		LastName:     lastName,
		Role:         role,
		IsActive:     true,
	}
	if err := s.Users.Create(user); err != nil {
		utils.GetLogger().Error("registration: failed to create user", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}
	return user, nil
}

// RegisterStudent creates a student account plus profile and returns a token.
func (s *DefaultAuthService) RegisterStudent(req models.StudentRegistrationRequest) (*AuthResponse, error) {
	user, err := s.createAccount(req.Email, req.Password, req.FirstName, req.LastName, models.RoleStudent)
	if err != nil {
		return nil, err
	}

	student := &models.Student{
		ID:          uuid.New().String(),
		UserID:      user.ID,
		Bio:         req.Bio,
		Institution: req.Institution,
		Career:      req.Career,
		Semester:    req.Semester,
		InterestIDs: []string{},
		IsActive:    true,
	}
	if err := s.Students.Create(student); err != nil {
		utils.GetLogger().Error("registration: failed to create student profile", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	token, err := utils.GenerateToken(user.ID, user.Role, tokenDuration())
	if err != nil {
		utils.GetLogger().Error("registration: failed to generate auth token", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	return &AuthResponse{
		User:    accountInfo(user),
		Profile: student,
		Token:   token,
	}, nil
}

// RegisterMentor creates a mentor account plus a pending-approval profile and
// returns a token.
func (s *DefaultAuthService) RegisterMentor(req models.MentorRegistrationRequest) (*AuthResponse, error) {
	user, err := s.createAccount(req.Email, req.Password, req.FirstName, req.LastName, models.RoleMentor)
	if err != nil {
		return nil, err
	}

	specialties := req.SpecialtyIDs
	if specialties == nil {
		specialties = []string{}
	}
	credentials := req.Credentials
	if credentials == nil {
		credentials = []string{}
	}

	mentor := &models.Mentor{
		ID:           uuid.New().String(),
		UserID:       user.ID,
		Bio:          req.Bio,
		Experience:   req.Experience,
		SpecialtyIDs: specialties,
		Credentials:  credentials,
		HourlyRate:   req.HourlyRate,
		IsApproved:   false,
		IsActive:     true,
	}
	if err := s.Mentors.Create(mentor); err != nil {
		utils.GetLogger().Error("registration: failed to create mentor profile", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	token, err := utils.GenerateToken(user.ID, user.Role, tokenDuration())
	if err != nil {
		utils.GetLogger().Error("registration: failed to generate auth token", zap.Error(err))
		return nil, fmt.Errorf("registration failed, please try again")
	}

	return &AuthResponse{
		User:    accountInfo(user),
		Profile: mentor,
		Token:   token,
	}, nil
}
