package postgres

import (
	"context"
	"database/sql"

	"meetapi/internal/repository"
)

// snapshotOpts puts COUNT and the page SELECT on one snapshot, so the total
// always covers the rows the page was cut from.
var snapshotOpts = &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}

// listPage runs the filtered count and the windowed select of table inside
// one read-only transaction.
func listPage[T any](
	ctx context.Context,
	db *sql.DB,
	table, columns string,
	w *whereBuilder,
	page repository.PageQuery,
	scan func(scanner) (T, error),
) (*repository.PageResult[T], error) {
	tx, err := db.BeginTx(ctx, snapshotOpts)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	// Count rows matching the filters; the page window is not applied here.
	var total int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM `+table+` `+w.clause(), w.args...).Scan(&total); err != nil {
		return nil, err
	}

	suffix, args := w.page(page.Limit, page.Offset)
	q := `SELECT ` + columns + ` FROM ` + table + ` ` + w.clause() + ` ORDER BY id ` + suffix
	rows, err := tx.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]T, 0)
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	rows.Close()

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return &repository.PageResult[T]{Items: items, Total: total}, nil
}
