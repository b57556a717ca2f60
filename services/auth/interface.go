package auth

import "mentorhub/models"

// AccountInfo is the account slice returned alongside tokens and profiles.
type AccountInfo struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
	Avatar    string `json:"avatar,omitempty"`
}

// AuthResponse carries the authenticated account, its role profile and a
// signed bearer token.
type AuthResponse struct {
	User    AccountInfo `json:"user"`
	Profile interface{} `json:"profile,omitempty"`
	Token   string      `json:"token,omitempty"`
}

// AuthService defines registration and authentication operations.
type AuthService interface {
	// RegisterStudent creates a student account plus profile and returns a token.
	RegisterStudent(req models.StudentRegistrationRequest) (*AuthResponse, error)
	// RegisterMentor creates a mentor account plus a pending-approval profile
	// and returns a token.
	RegisterMentor(req models.MentorRegistrationRequest) (*AuthResponse, error)
	// Login verifies credentials and returns the account, role profile and token.
	Login(email, password string) (*AuthResponse, error)
	// GetMe returns the account and role profile for an authenticated user.
	GetMe(userID string) (*AuthResponse, error)
}
