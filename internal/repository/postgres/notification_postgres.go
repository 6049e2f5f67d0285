package postgres

import (
	"context"
	"database/sql"
	"errors"

	"meetapi/internal/model"
	"meetapi/internal/repository"
)

const notificationColumns = `id, meeting_id, user_id, message, date_of_dispatch, created_at`

// NotificationPostgres is a PostgreSQL implementation of repository.NotificationRepository.
type NotificationPostgres struct {
	db *sql.DB
}

func NewNotificationPostgres(db *sql.DB) *NotificationPostgres {
	return &NotificationPostgres{db: db}
}

var _ repository.NotificationRepository = (*NotificationPostgres)(nil)

func scanNotification(s scanner) (model.Notification, error) {
	var n model.Notification
	err := s.Scan(
		&n.ID,
		&n.MeetingID,
		&n.UserID,
		&n.Message,
		&n.DateOfDispatch,
		&n.CreatedAt,
	)
	return n, err
}

// List returns notifications using LIMIT/OFFSET pagination and the filtered total.
func (r *NotificationPostgres) List(ctx context.Context, q repository.NotificationQuery) (*repository.PageResult[model.Notification], error) {
	w := &whereBuilder{}
	w.eqInt("meeting_id", q.MeetingID)
	w.eqInt("user_id", q.UserID)
	return listPage(ctx, r.db, "notifications", notificationColumns, w, q.Page, scanNotification)
}

func (r *NotificationPostgres) FindByID(ctx context.Context, id int64) (*model.Notification, error) {
	const q = `SELECT ` + notificationColumns + ` FROM notifications WHERE id = $1`
	n, err := scanNotification(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &n, nil
}

func (r *NotificationPostgres) Create(ctx context.Context, n *model.Notification) (int64, error) {
	const q = `
		INSERT INTO notifications (meeting_id, user_id, message, date_of_dispatch)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	var id int64
	if err := r.db.QueryRowContext(ctx, q, n.MeetingID, n.UserID, n.Message, n.DateOfDispatch).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *NotificationPostgres) Delete(ctx context.Context, id int64) (int64, error) {
	const q = `DELETE FROM notifications WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
