package db

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/sqlscan"
)

func (db *DB) CreateResource(ctx context.Context, userID int64, title, description, category, availability string, images *string) (int64, error) {
	const fn = "DB:CreateResource"
	res, err := db.sql.ExecContext(ctx, `
		INSERT INTO resources (user_id, title, description, images, category, availability, date_posted)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, userID, title, description, images, category, availability, nowTimestamp())
	if err != nil {
		return 0, fmt.Errorf("%s:%w:%w", fn, ErrInsertFailed, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%s:%w:%w", fn, ErrInsertFailed, err)
	}
	return id, nil
}

func (db *DB) Resources(ctx context.Context) ([]Resource, error) {
	const fn = "DB:Resources"
	var resources []Resource
	err := sqlscan.Select(ctx, db.sql, &resources, `
		SELECT resource_id, user_id, title, COALESCE(description, '') AS description,
			images, COALESCE(category, '') AS category,
			COALESCE(availability, '') AS availability, date_posted
		FROM resources
	`)
	if err != nil {
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	return resources, nil
}

func (db *DB) RecentResources(ctx context.Context, limit int) ([]Resource, error) {
	const fn = "DB:RecentResources"
	var resources []Resource
	err := sqlscan.Select(ctx, db.sql, &resources, `
		SELECT resource_id, user_id, title, COALESCE(description, '') AS description,
			images, COALESCE(category, '') AS category,
			COALESCE(availability, '') AS availability, date_posted
		FROM resources ORDER BY date_posted DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	return resources, nil
}

func (db *DB) ResourceByID(ctx context.Context, id int64) (*Resource, error) {
	const fn = "DB:ResourceByID"
	var resource Resource
	err := sqlscan.Get(ctx, db.sql, &resource, `
		SELECT resource_id, user_id, title, COALESCE(description, '') AS description,
			images, COALESCE(category, '') AS category,
			COALESCE(availability, '') AS availability, date_posted
		FROM resources WHERE resource_id = ?
	`, id)
	if err != nil {
		if sqlscan.NotFound(err) {
			return nil, fmt.Errorf("%s:%w", fn, ErrNotFound)
		}
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	return &resource, nil
}

func (db *DB) UpdateResource(ctx context.Context, id int64, title, description, category, availability string) error {
	const fn = "DB:UpdateResource"
	_, err := db.sql.ExecContext(ctx, `
		UPDATE resources SET title = ?, description = ?, category = ?, availability = ?
		WHERE resource_id = ?
	`, title, description, category, availability, id)
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrUpdateFailed, err)
	}
	return nil
}

func (db *DB) DeleteResource(ctx context.Context, id int64) error {
	const fn = "DB:DeleteResource"
	_, err := db.sql.ExecContext(ctx, `DELETE FROM resources WHERE resource_id = ?`, id)
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrDeleteFailed, err)
	}
	return nil
}

func (db *DB) ResourcesByUser(ctx context.Context, userID int64) ([]Resource, error) {
	const fn = "DB:ResourcesByUser"
	var resources []Resource
	err := sqlscan.Select(ctx, db.sql, &resources, `
		SELECT resource_id, user_id, title, COALESCE(description, '') AS description,
			images, COALESCE(category, '') AS category,
			COALESCE(availability, '') AS availability, date_posted
		FROM resources WHERE user_id = ?
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	return resources, nil
}
