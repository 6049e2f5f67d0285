package model

import "time"

// Meeting is a scheduled meeting owned by a user.
// This is a pure domain model with no database-specific dependencies or tags.
type Meeting struct {
	ID          int64
	Name        string
	Description string
	StartDate   time.Time
	EndDate     time.Time
	UserID      int64
	CreatedAt   time.Time
}

// GetMeetingDto is the transport shape of a meeting.
type GetMeetingDto struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	UserID      int64     `json:"user_id"`
}

// CreateMeetingDto carries the fields a client may set on a new meeting.
type CreateMeetingDto struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	UserID      int64     `json:"user_id"`
}

// UpdateMeetingDto replaces every mutable field of an existing meeting.
type UpdateMeetingDto struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	UserID      int64     `json:"user_id"`
}
