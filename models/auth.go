package models

// StudentRegistrationRequest is the payload for registering a student account.
type StudentRegistrationRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	FirstName   string `json:"firstName" binding:"required"`
	LastName    string `json:"lastName" binding:"required"`
	Bio         string `json:"bio" binding:"omitempty,max=500"`
	Institution string `json:"institution"`
	Career      string `json:"career"`
	Semester    int    `json:"semester" binding:"omitempty,gte=1,lte=12"`
}

// MentorRegistrationRequest is the payload for registering a mentor account.
// The mentor profile starts unapproved.
type MentorRegistrationRequest struct {
	Email        string   `json:"email" binding:"required,email"`
	Password     string   `json:"password" binding:"required,min=6"`
	FirstName    string   `json:"firstName" binding:"required"`
	LastName     string   `json:"lastName" binding:"required"`
	Bio          string   `json:"bio" binding:"required,max=1000"`
	Experience   string   `json:"experience" binding:"required"`
	SpecialtyIDs []string `json:"specialties"`
	Credentials  []string `json:"credentials"`
	HourlyRate   float64  `json:"hourlyRate" binding:"omitempty,gte=0"`
}

// LoginRequest is the payload for authenticating an account.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
