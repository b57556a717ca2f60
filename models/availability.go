package models

import "time"

// Session durations permitted for weekly slots, in minutes.
const (
	SlotDurationShort = 45
	SlotDurationLong  = 60
)

// WeeklySlot is one recurring weekly availability window owned by a mentor.
// The full set for a mentor is replaced wholesale on every update.
type WeeklySlot struct {
	ID        string    `bson:"id" json:"id"`
	MentorID  string    `bson:"mentorId" json:"mentorId"`
	DayOfWeek int       `bson:"dayOfWeek" json:"dayOfWeek"` // 0 = Sunday .. 6 = Saturday
	StartTime string    `bson:"startTime" json:"startTime"` // "HH:MM", 24-hour, zero-padded
	EndTime   string    `bson:"endTime" json:"endTime"`     // derived: startTime + duration
	Duration  int       `bson:"duration" json:"duration"`   // 45 or 60
	IsActive  bool      `bson:"isActive" json:"isActive"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}

// ProjectedSlot is a concrete, dated instance of a WeeklySlot generated for a
// calendar preview. Never persisted.
type ProjectedSlot struct {
	Date      string `json:"date"` // "YYYY-MM-DD"
	DayOfWeek int    `json:"dayOfWeek"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Duration  int    `json:"duration"`
}

// SlotInput is one caller-supplied weekly slot; the end time is derived from
// the batch duration during validation.
type SlotInput struct {
	DayOfWeek int    `json:"dayOfWeek"`
	StartTime string `json:"startTime"`
}

// SetAvailabilityRequest is the payload for replacing a mentor's weekly
// availability snapshot.
type SetAvailabilityRequest struct {
	Slots    []SlotInput `json:"slots"`
	Duration int         `json:"duration"`
}
