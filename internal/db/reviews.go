package db

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/sqlscan"
)

func (db *DB) CreateReview(ctx context.Context, userID, reviewerID int64, rating int, comment string) error {
	const fn = "DB:CreateReview"
	_, err := db.sql.ExecContext(ctx, `
		INSERT INTO reviews (user_id, reviewer_id, rating, comment, timestamp)
		VALUES (?, ?, ?, ?, ?)
	`, userID, reviewerID, rating, comment, nowTimestamp())
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrInsertFailed, err)
	}
	return nil
}

// TopReviews returns the best-rated reviews for the home feed, annotated
// with the reviewer's name.
func (db *DB) TopReviews(ctx context.Context, limit int) ([]Review, error) {
	const fn = "DB:TopReviews"
	var reviews []Review
	err := sqlscan.Select(ctx, db.sql, &reviews, `
		SELECT r.review_id, r.user_id, r.reviewer_id, r.rating,
			COALESCE(r.comment, '') AS comment, r.timestamp, u.name AS reviewer_name
		FROM reviews r
		JOIN users u ON r.reviewer_id = u.id
		ORDER BY r.rating DESC, r.timestamp DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	return reviews, nil
}
