package db

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/sqlscan"
)

func (db *DB) CreateEvent(ctx context.Context, name, description, date, location string, hostedBy int64) (int64, error) {
	const fn = "DB:CreateEvent"
	res, err := db.sql.ExecContext(ctx, `
		INSERT INTO events (name, description, date, location, hosted_by)
		VALUES (?, ?, ?, ?, ?)
	`, name, description, date, location, hostedBy)
	if err != nil {
		return 0, fmt.Errorf("%s:%w:%w", fn, ErrInsertFailed, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%s:%w:%w", fn, ErrInsertFailed, err)
	}
	return id, nil
}

func (db *DB) Events(ctx context.Context) ([]Event, error) {
	const fn = "DB:Events"
	var events []Event
	err := sqlscan.Select(ctx, db.sql, &events, `
		SELECT event_id, name, COALESCE(description, '') AS description,
			date, location, hosted_by
		FROM events
	`)
	if err != nil {
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	return events, nil
}

func (db *DB) EventByID(ctx context.Context, id int64) (*Event, error) {
	const fn = "DB:EventByID"
	var event Event
	err := sqlscan.Get(ctx, db.sql, &event, `
		SELECT event_id, name, COALESCE(description, '') AS description,
			date, location, hosted_by
		FROM events WHERE event_id = ?
	`, id)
	if err != nil {
		if sqlscan.NotFound(err) {
			return nil, fmt.Errorf("%s:%w", fn, ErrNotFound)
		}
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	return &event, nil
}

func (db *DB) UpdateEvent(ctx context.Context, id int64, name, description, date, location string) error {
	const fn = "DB:UpdateEvent"
	_, err := db.sql.ExecContext(ctx, `
		UPDATE events SET name = ?, description = ?, date = ?, location = ?
		WHERE event_id = ?
	`, name, description, date, location, id)
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrUpdateFailed, err)
	}
	return nil
}

func (db *DB) DeleteEvent(ctx context.Context, id int64) error {
	const fn = "DB:DeleteEvent"
	_, err := db.sql.ExecContext(ctx, `DELETE FROM events WHERE event_id = ?`, id)
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrDeleteFailed, err)
	}
	return nil
}

func (db *DB) EventsByUser(ctx context.Context, userID int64) ([]Event, error) {
	const fn = "DB:EventsByUser"
	var events []Event
	err := sqlscan.Select(ctx, db.sql, &events, `
		SELECT event_id, name, COALESCE(description, '') AS description,
			date, location, hosted_by
		FROM events WHERE hosted_by = ?
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	return events, nil
}
