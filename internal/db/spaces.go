package db

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/sqlscan"
)

func (db *DB) CreateSpace(ctx context.Context, name, description, location, availability string, createdBy int64) (int64, error) {
	const fn = "DB:CreateSpace"
	res, err := db.sql.ExecContext(ctx, `
		INSERT INTO spaces (name, description, location, availability, created_by)
		VALUES (?, ?, ?, ?, ?)
	`, name, description, location, availability, createdBy)
	if err != nil {
		return 0, fmt.Errorf("%s:%w:%w", fn, ErrInsertFailed, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%s:%w:%w", fn, ErrInsertFailed, err)
	}
	return id, nil
}

func (db *DB) Spaces(ctx context.Context) ([]Space, error) {
	const fn = "DB:Spaces"
	var spaces []Space
	err := sqlscan.Select(ctx, db.sql, &spaces, `
		SELECT space_id, name, COALESCE(description, '') AS description,
			COALESCE(location, '') AS location,
			COALESCE(availability, '') AS availability, created_by
		FROM spaces
	`)
	if err != nil {
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	return spaces, nil
}

func (db *DB) SpaceByID(ctx context.Context, id int64) (*Space, error) {
	const fn = "DB:SpaceByID"
	var space Space
	err := sqlscan.Get(ctx, db.sql, &space, `
		SELECT space_id, name, COALESCE(description, '') AS description,
			COALESCE(location, '') AS location,
			COALESCE(availability, '') AS availability, created_by
		FROM spaces WHERE space_id = ?
	`, id)
	if err != nil {
		if sqlscan.NotFound(err) {
			return nil, fmt.Errorf("%s:%w", fn, ErrNotFound)
		}
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	return &space, nil
}

func (db *DB) UpdateSpace(ctx context.Context, id int64, name, description, location, availability string) error {
	const fn = "DB:UpdateSpace"
	_, err := db.sql.ExecContext(ctx, `
		UPDATE spaces SET name = ?, description = ?, location = ?, availability = ?
		WHERE space_id = ?
	`, name, description, location, availability, id)
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrUpdateFailed, err)
	}
	return nil
}

func (db *DB) DeleteSpace(ctx context.Context, id int64) error {
	const fn = "DB:DeleteSpace"
	_, err := db.sql.ExecContext(ctx, `DELETE FROM spaces WHERE space_id = ?`, id)
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrDeleteFailed, err)
	}
	return nil
}

func (db *DB) SpacesByUser(ctx context.Context, userID int64) ([]Space, error) {
	const fn = "DB:SpacesByUser"
	var spaces []Space
	err := sqlscan.Select(ctx, db.sql, &spaces, `
		SELECT space_id, name, COALESCE(description, '') AS description,
			COALESCE(location, '') AS location,
			COALESCE(availability, '') AS availability, created_by
		FROM spaces WHERE created_by = ?
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	return spaces, nil
}
