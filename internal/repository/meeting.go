package repository

import (
	"context"
	"time"

	"meetapi/internal/model"
)

// MeetingQuery narrows a meeting listing. Zero-valued fields add no predicate.
type MeetingQuery struct {
	Name        string
	Description string
	UserID      int64
	// StartsAfter keeps meetings whose start date is strictly later.
	StartsAfter time.Time
	Page        PageQuery
}

// MeetingRepository defines data access for meetings using SQL queries only.
// No business logic here, only persistence operations.
type MeetingRepository interface {
	// List returns one page of meetings matching q and the count of all matches.
	List(ctx context.Context, q MeetingQuery) (*PageResult[model.Meeting], error)

	// FindByID returns a meeting or ErrNotFound.
	FindByID(ctx context.Context, id int64) (*model.Meeting, error)

	// Exists reports whether a meeting with the given ID is stored.
	Exists(ctx context.Context, id int64) (bool, error)

	// Create inserts a meeting and returns the ID assigned by the database.
	Create(ctx context.Context, m *model.Meeting) (int64, error)

	// Update overwrites the meeting with m.ID and returns the affected row count.
	Update(ctx context.Context, m *model.Meeting) (int64, error)

	// Delete removes the meeting with the given ID and returns the affected row count.
	Delete(ctx context.Context, id int64) (int64, error)
}
