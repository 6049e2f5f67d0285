package model

import "time"

// Notification is a message scheduled for a meeting participant.
// Records are immutable once created; dispatching them is done elsewhere.
type Notification struct {
	ID             int64
	MeetingID      int64
	UserID         int64
	Message        string
	DateOfDispatch time.Time
	CreatedAt      time.Time
}

type GetNotificationDto struct {
	ID             int64     `json:"id"`
	MeetingID      int64     `json:"meeting_id"`
	UserID         int64     `json:"user_id"`
	Message        string    `json:"message"`
	DateOfDispatch time.Time `json:"date_of_dispatch"`
}

type CreateNotificationDto struct {
	MeetingID      int64     `json:"meeting_id"`
	UserID         int64     `json:"user_id"`
	Message        string    `json:"message"`
	DateOfDispatch time.Time `json:"date_of_dispatch"`
}
