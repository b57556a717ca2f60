package models

import "time"

// Review is a student's rating of a mentor.
type Review struct {
	ID        string    `bson:"id" json:"id"`
	StudentID string    `bson:"studentId" json:"studentId"`
	MentorID  string    `bson:"mentorId" json:"mentorId"`
	Rating    int       `bson:"rating" json:"rating"`
	Comment   string    `bson:"comment" json:"comment"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// ReviewWithStudent is a review joined with the reviewing student's user summary.
type ReviewWithStudent struct {
	Review
	Student UserSummary `json:"student"`
}

// ReviewStats aggregates a mentor's rating figures.
type ReviewStats struct {
	AverageRating float64     `json:"averageRating"`
	TotalReviews  int         `json:"totalReviews"`
	Distribution  map[int]int `json:"ratingDistribution"`
}

// ReviewListing is one page of reviews with stats and pagination.
type ReviewListing struct {
	Items      []ReviewWithStudent `json:"items"`
	Stats      ReviewStats         `json:"stats"`
	Pagination Pagination          `json:"pagination"`
}
