package repository

import (
	"context"

	"meetapi/internal/model"
)

// NotificationQuery narrows a notification listing. Zero-valued fields add no predicate.
type NotificationQuery struct {
	MeetingID int64
	UserID    int64
	Page      PageQuery
}

// NotificationRepository defines data access for notifications.
type NotificationRepository interface {
	List(ctx context.Context, q NotificationQuery) (*PageResult[model.Notification], error)
	FindByID(ctx context.Context, id int64) (*model.Notification, error)
	Create(ctx context.Context, n *model.Notification) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}
