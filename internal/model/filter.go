package model

import (
	"math"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	DefaultPageNumber = 1
	DefaultPageSize   = 10
	MaxPageSize       = 100

	// MaxPageNumber keeps (PageNumber-1)*PageSize inside int.
	MaxPageNumber = math.MaxInt / MaxPageSize
)

// PaginationFilter selects one page of a list query. Pages are 1-based.
type PaginationFilter struct {
	PageNumber int `json:"page_number"`
	PageSize   int `json:"page_size"`
}

// NewPaginationFilter returns the first page with the default size.
func NewPaginationFilter() PaginationFilter {
	return PaginationFilter{PageNumber: DefaultPageNumber, PageSize: DefaultPageSize}
}

// Validate checks the caller contract: 1 <= page <= MaxPageNumber and 1 <= size <= MaxPageSize.
func (f PaginationFilter) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.PageNumber, validation.Required, validation.Min(1), validation.Max(MaxPageNumber)),
		validation.Field(&f.PageSize, validation.Required, validation.Min(1), validation.Max(MaxPageSize)),
	)
}

// Offset is the number of rows skipped before the page window.
func (f PaginationFilter) Offset() int {
	return (f.PageNumber - 1) * f.PageSize
}

// MeetingFilter narrows a meeting list. Zero-valued fields are not applied.
type MeetingFilter struct {
	PaginationFilter
	Name        string `json:"name"`
	Description string `json:"description"`
	UserID      int64  `json:"user_id"`
}

// NotificationFilter narrows a notification list. Zero-valued fields are not applied.
type NotificationFilter struct {
	PaginationFilter
	MeetingID int64 `json:"meeting_id"`
	UserID    int64 `json:"user_id"`
}
