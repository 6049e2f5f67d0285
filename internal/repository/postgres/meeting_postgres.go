package postgres

import (
	"context"
	"database/sql"
	"errors"

	"meetapi/internal/model"
	"meetapi/internal/repository"
)

const meetingColumns = `id, name, description, start_date, end_date, user_id, created_at`

// MeetingPostgres is a PostgreSQL implementation of repository.MeetingRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type MeetingPostgres struct {
	db *sql.DB
}

// NewMeetingPostgres creates a new MeetingPostgres repository.
func NewMeetingPostgres(db *sql.DB) *MeetingPostgres {
	return &MeetingPostgres{db: db}
}

var _ repository.MeetingRepository = (*MeetingPostgres)(nil)

type scanner interface {
	Scan(dest ...any) error
}

func scanMeeting(s scanner) (model.Meeting, error) {
	var m model.Meeting
	err := s.Scan(
		&m.ID,
		&m.Name,
		&m.Description,
		&m.StartDate,
		&m.EndDate,
		&m.UserID,
		&m.CreatedAt,
	)
	return m, err
}

func meetingWhere(q repository.MeetingQuery) *whereBuilder {
	w := &whereBuilder{}
	w.eqString("name", q.Name)
	w.eqString("description", q.Description)
	w.eqInt("user_id", q.UserID)
	w.after("start_date", q.StartsAfter)
	return w
}

// List returns meetings using LIMIT/OFFSET pagination and the filtered total.
func (r *MeetingPostgres) List(ctx context.Context, q repository.MeetingQuery) (*repository.PageResult[model.Meeting], error) {
	return listPage(ctx, r.db, "meetings", meetingColumns, meetingWhere(q), q.Page, scanMeeting)
}

// FindByID fetches a single meeting by its ID.
func (r *MeetingPostgres) FindByID(ctx context.Context, id int64) (*model.Meeting, error) {
	const q = `SELECT ` + meetingColumns + ` FROM meetings WHERE id = $1`
	m, err := scanMeeting(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

// Exists reports whether a meeting row with the ID is present.
func (r *MeetingPostgres) Exists(ctx context.Context, id int64) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM meetings WHERE id = $1)`
	var ok bool
	if err := r.db.QueryRowContext(ctx, q, id).Scan(&ok); err != nil {
		return false, err
	}
	return ok, nil
}

// Create inserts a new meeting row and returns its generated ID.
func (r *MeetingPostgres) Create(ctx context.Context, m *model.Meeting) (int64, error) {
	const q = `
		INSERT INTO meetings (name, description, start_date, end_date, user_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	var id int64
	if err := r.db.QueryRowContext(ctx, q,
		m.Name,
		m.Description,
		m.StartDate,
		m.EndDate,
		m.UserID,
	).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

// Update overwrites the mutable columns of the row with m.ID.
// The WHERE clause makes it a no-op, reported as zero rows, if the row is gone.
func (r *MeetingPostgres) Update(ctx context.Context, m *model.Meeting) (int64, error) {
	const q = `
		UPDATE meetings
		SET name = $2, description = $3, start_date = $4, end_date = $5, user_id = $6
		WHERE id = $1
	`
	res, err := r.db.ExecContext(ctx, q,
		m.ID,
		m.Name,
		m.Description,
		m.StartDate,
		m.EndDate,
		m.UserID,
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

// Delete removes a meeting by ID and reports how many rows went away.
func (r *MeetingPostgres) Delete(ctx context.Context, id int64) (int64, error) {
	const q = `DELETE FROM meetings WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
