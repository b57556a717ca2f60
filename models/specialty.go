package models

import "time"

// Specialty is one entry of the mentoring taxonomy.
type Specialty struct {
	ID          string    `bson:"id" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description" json:"description"`
	Category    string    `bson:"category" json:"category"`
	Icon        string    `bson:"icon,omitempty" json:"icon,omitempty"`
	IsActive    bool      `bson:"isActive" json:"isActive"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

// SpecialtySummary is the slice of a specialty embedded in joined responses.
type SpecialtySummary struct {
	ID       string `bson:"id" json:"id"`
	Name     string `bson:"name" json:"name"`
	Category string `bson:"category" json:"category"`
	Icon     string `bson:"icon,omitempty" json:"icon,omitempty"`
}

// Summary projects the embeddable fields of a specialty.
func (s *Specialty) Summary() SpecialtySummary {
	return SpecialtySummary{
		ID:       s.ID,
		Name:     s.Name,
		Category: s.Category,
		Icon:     s.Icon,
	}
}

// SpecialtyWithCount pairs a specialty with the number of approved active
// mentors offering it.
type SpecialtyWithCount struct {
	Specialty
	MentorCount int64 `json:"mentorCount"`
}

// SpecialtyCategory groups active specialties under one category name.
type SpecialtyCategory struct {
	Category    string             `json:"category"`
	Count       int                `json:"count"`
	Specialties []SpecialtySummary `json:"specialties"`
}

// CreateSpecialtyRequest is the admin payload for creating a specialty.
type CreateSpecialtyRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=100"`
	Category    string `json:"category" binding:"required,min=2,max=50"`
	Description string `json:"description" binding:"omitempty,max=500"`
	Icon        string `json:"icon" binding:"omitempty,max=50"`
}

// UpdateSpecialtyRequest is the admin payload for a partial specialty update.
type UpdateSpecialtyRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=2,max=100"`
	Category    *string `json:"category" binding:"omitempty,min=2,max=50"`
	Description *string `json:"description" binding:"omitempty,max=500"`
	Icon        *string `json:"icon" binding:"omitempty,max=50"`
	IsActive    *bool   `json:"isActive"`
}
