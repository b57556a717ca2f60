package models

import "time"

// Mentor is a mentor profile owned by a single user account.
type Mentor struct {
	ID            string    `bson:"id" json:"id"`
	UserID        string    `bson:"userId" json:"userId"`
	Bio           string    `bson:"bio" json:"bio"`
	Experience    string    `bson:"experience" json:"experience"`
	SpecialtyIDs  []string  `bson:"specialties" json:"specialties"`
	Credentials   []string  `bson:"credentials" json:"credentials"`
	Rating        float64   `bson:"rating" json:"rating"`
	TotalSessions int       `bson:"totalSessions" json:"totalSessions"`
	HourlyRate    float64   `bson:"hourlyRate,omitempty" json:"hourlyRate,omitempty"`
	IsApproved    bool      `bson:"isApproved" json:"isApproved"`
	IsActive      bool      `bson:"isActive" json:"isActive"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt" json:"updatedAt"`
}

// MentorProfileRequest is the payload for creating or updating a mentor profile.
type MentorProfileRequest struct {
	Bio          string   `json:"bio" binding:"required,max=1000"`
	Experience   string   `json:"experience" binding:"required"`
	SpecialtyIDs []string `json:"specialties"`
	Credentials  []string `json:"credentials"`
	HourlyRate   float64  `json:"hourlyRate" binding:"omitempty,gte=0"`
}

// MentorCard is a mentor joined with its user and specialty summaries, as shown
// in marketplace listings.
type MentorCard struct {
	Mentor
	User        UserSummary        `json:"user"`
	Specialties []SpecialtySummary `json:"specialtyDetails"`
}

// MentorDetail is the full profile view: card plus availability and recent reviews.
type MentorDetail struct {
	MentorCard
	Availability []WeeklySlot  `json:"availability"`
	Reviews      ReviewListing `json:"reviews"`
}
