package models

import "time"

// Student is a student profile owned by a single user account.
type Student struct {
	ID            string    `bson:"id" json:"id"`
	UserID        string    `bson:"userId" json:"userId"`
	Bio           string    `bson:"bio,omitempty" json:"bio,omitempty"`
	Institution   string    `bson:"institution,omitempty" json:"institution,omitempty"`
	Career        string    `bson:"career,omitempty" json:"career,omitempty"`
	Semester      int       `bson:"semester,omitempty" json:"semester,omitempty"`
	InterestIDs   []string  `bson:"interests" json:"interests"`
	TotalSessions int       `bson:"totalSessions" json:"totalSessions"`
	IsActive      bool      `bson:"isActive" json:"isActive"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt" json:"updatedAt"`
}

// StudentProfileRequest is the payload for a partial student profile update.
// Pointer fields distinguish "absent" from "set to zero value".
type StudentProfileRequest struct {
	Bio         *string   `json:"bio" binding:"omitempty,max=500"`
	Institution *string   `json:"institution"`
	Career      *string   `json:"career"`
	Semester    *int      `json:"semester" binding:"omitempty,gte=1,lte=12"`
	InterestIDs *[]string `json:"interests"`
	Avatar      *string   `json:"avatar"`
}

// StudentProfile is a student joined with its user and interest summaries.
type StudentProfile struct {
	Student
	User      UserSummary        `json:"user"`
	Interests []SpecialtySummary `json:"interestDetails"`
}
