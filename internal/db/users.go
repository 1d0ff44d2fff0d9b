package db

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/sqlscan"
)

// CreateUser inserts a user and returns the stored row. The password is
// expected to be hashed already. A taken email maps to ErrDuplicateEmail.
func (db *DB) CreateUser(ctx context.Context, name, email, password, location, profileImage string) (*User, error) {
	const fn = "DB:CreateUser"
	_, err := db.sql.ExecContext(ctx, `
		INSERT INTO users (name, email, password, location, profile_image)
		VALUES (?, ?, ?, ?, ?)
	`, name, email, password, location, profileImage)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("%s:%w", fn, ErrDuplicateEmail)
		}
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrInsertFailed, err)
	}
	return db.UserByEmail(ctx, email)
}

func (db *DB) UserByEmail(ctx context.Context, email string) (*User, error) {
	const fn = "DB:UserByEmail"
	var user User
	err := sqlscan.Get(ctx, db.sql, &user, `
		SELECT id, name, email, password, COALESCE(location, '') AS location,
			COALESCE(profile_image, '') AS profile_image, rating
		FROM users WHERE email = ?
	`, email)
	if err != nil {
		if sqlscan.NotFound(err) {
			return nil, fmt.Errorf("%s:%w", fn, ErrNotFound)
		}
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	return &user, nil
}

func (db *DB) UserByID(ctx context.Context, id int64) (*User, error) {
	const fn = "DB:UserByID"
	var user User
	err := sqlscan.Get(ctx, db.sql, &user, `
		SELECT id, name, email, password, COALESCE(location, '') AS location,
			COALESCE(profile_image, '') AS profile_image, rating
		FROM users WHERE id = ?
	`, id)
	if err != nil {
		if sqlscan.NotFound(err) {
			return nil, fmt.Errorf("%s:%w", fn, ErrNotFound)
		}
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	return &user, nil
}

// SearchUsers matches names by substring, capped at limit rows.
func (db *DB) SearchUsers(ctx context.Context, query string, limit int) ([]User, error) {
	const fn = "DB:SearchUsers"
	var users []User
	err := sqlscan.Select(ctx, db.sql, &users, `
		SELECT id, name, email, password, COALESCE(location, '') AS location,
			COALESCE(profile_image, '') AS profile_image, rating
		FROM users WHERE name LIKE ? LIMIT ?
	`, "%"+query+"%", limit)
	if err != nil {
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	return users, nil
}

// TopUsers returns the highest rated users for the home feed.
func (db *DB) TopUsers(ctx context.Context, limit int) ([]User, error) {
	const fn = "DB:TopUsers"
	var users []User
	err := sqlscan.Select(ctx, db.sql, &users, `
		SELECT id, name, email, password, COALESCE(location, '') AS location,
			COALESCE(profile_image, '') AS profile_image, rating
		FROM users
		WHERE rating IS NOT NULL
		ORDER BY rating DESC, id ASC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	return users, nil
}

// UpdateUserRating recomputes a user's rating as the average of their
// reviews.
func (db *DB) UpdateUserRating(ctx context.Context, userID int64) error {
	const fn = "DB:UpdateUserRating"
	_, err := db.sql.ExecContext(ctx, `
		UPDATE users
		SET rating = (SELECT AVG(rating) FROM reviews WHERE user_id = ?)
		WHERE id = ?
	`, userID, userID)
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrUpdateFailed, err)
	}
	return nil
}
