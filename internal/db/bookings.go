package db

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/sqlscan"
)

// bookOnce inserts a booking row unless the (user, item) pair already has
// one. Check and insert share a transaction so a retry cannot slip a
// duplicate in between.
func (db *DB) bookOnce(ctx context.Context, table, itemColumn string, userID, itemID int64, bookingDate string) (err error) {
	const fn = "DB:bookOnce"
	tx, err := db.sql.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrTransactionStartFailed, err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	var exists int
	row := tx.QueryRowContext(ctx,
		fmt.Sprintf(`SELECT COUNT(1) FROM %s WHERE user_id = ? AND %s = ?`, table, itemColumn),
		userID, itemID)
	if err = row.Scan(&exists); err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	if exists > 0 {
		return fmt.Errorf("%s:%w", fn, ErrDuplicateBooking)
	}

	_, err = tx.ExecContext(ctx,
		fmt.Sprintf(`INSERT INTO %s (user_id, %s, booking_date) VALUES (?, ?, ?)`, table, itemColumn),
		userID, itemID, bookingDate)
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrInsertFailed, err)
	}
	return nil
}

func (db *DB) BookResource(ctx context.Context, userID, resourceID int64, bookingDate string) error {
	return db.bookOnce(ctx, "resource_bookings", "resource_id", userID, resourceID, bookingDate)
}

func (db *DB) BookSpace(ctx context.Context, userID, spaceID int64, bookingDate string) error {
	return db.bookOnce(ctx, "space_bookings", "space_id", userID, spaceID, bookingDate)
}

func (db *DB) BookEvent(ctx context.Context, userID, eventID int64, bookingDate string) error {
	return db.bookOnce(ctx, "event_bookings", "event_id", userID, eventID, bookingDate)
}

func (db *DB) ResourceBookingsByUser(ctx context.Context, userID int64) ([]ResourceBooking, error) {
	const fn = "DB:ResourceBookingsByUser"
	var bookings []ResourceBooking
	err := sqlscan.Select(ctx, db.sql, &bookings, `
		SELECT rb.booking_id, rb.user_id, rb.resource_id, rb.booking_date, r.title
		FROM resource_bookings rb
		JOIN resources r ON rb.resource_id = r.resource_id
		WHERE rb.user_id = ?
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	return bookings, nil
}

func (db *DB) SpaceBookingsByUser(ctx context.Context, userID int64) ([]SpaceBooking, error) {
	const fn = "DB:SpaceBookingsByUser"
	var bookings []SpaceBooking
	err := sqlscan.Select(ctx, db.sql, &bookings, `
		SELECT sb.booking_id, sb.user_id, sb.space_id, sb.booking_date, s.name
		FROM space_bookings sb
		JOIN spaces s ON sb.space_id = s.space_id
		WHERE sb.user_id = ?
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	return bookings, nil
}

func (db *DB) EventBookingsByUser(ctx context.Context, userID int64) ([]EventBooking, error) {
	const fn = "DB:EventBookingsByUser"
	var bookings []EventBooking
	err := sqlscan.Select(ctx, db.sql, &bookings, `
		SELECT eb.booking_id, eb.user_id, eb.event_id, eb.booking_date, e.name, e.date
		FROM event_bookings eb
		JOIN events e ON eb.event_id = e.event_id
		WHERE eb.user_id = ?
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	return bookings, nil
}

// cancelBooking deletes a booking owned by userID. Cancelling someone
// else's booking (or a missing one) reports ErrNotFound.
func (db *DB) cancelBooking(ctx context.Context, table string, bookingID, userID int64) error {
	const fn = "DB:cancelBooking"
	res, err := db.sql.ExecContext(ctx,
		fmt.Sprintf(`DELETE FROM %s WHERE booking_id = ? AND user_id = ?`, table),
		bookingID, userID)
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrDeleteFailed, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrDeleteFailed, err)
	}
	if affected == 0 {
		return fmt.Errorf("%s:%w", fn, ErrNotFound)
	}
	return nil
}

func (db *DB) CancelResourceBooking(ctx context.Context, bookingID, userID int64) error {
	return db.cancelBooking(ctx, "resource_bookings", bookingID, userID)
}

func (db *DB) CancelSpaceBooking(ctx context.Context, bookingID, userID int64) error {
	return db.cancelBooking(ctx, "space_bookings", bookingID, userID)
}

func (db *DB) CancelEventBooking(ctx context.Context, bookingID, userID int64) error {
	return db.cancelBooking(ctx, "event_bookings", bookingID, userID)
}

func (db *DB) HasEventBooking(ctx context.Context, userID, eventID int64) (bool, error) {
	const fn = "DB:HasEventBooking"
	var count int
	row := db.sql.QueryRowContext(ctx,
		`SELECT COUNT(1) FROM event_bookings WHERE user_id = ? AND event_id = ?`,
		userID, eventID)
	if err := row.Scan(&count); err != nil {
		return false, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	return count > 0, nil
}

// Reminder sweep inputs: bookings scheduled for the given date.

func (db *DB) ResourceBookingsOn(ctx context.Context, date string) ([]ResourceBooking, error) {
	const fn = "DB:ResourceBookingsOn"
	var bookings []ResourceBooking
	err := sqlscan.Select(ctx, db.sql, &bookings, `
		SELECT rb.booking_id, rb.user_id, rb.resource_id, rb.booking_date, r.title
		FROM resource_bookings rb
		JOIN resources r ON rb.resource_id = r.resource_id
		WHERE rb.booking_date = ?
	`, date)
	if err != nil {
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	return bookings, nil
}

func (db *DB) SpaceBookingsOn(ctx context.Context, date string) ([]SpaceBooking, error) {
	const fn = "DB:SpaceBookingsOn"
	var bookings []SpaceBooking
	err := sqlscan.Select(ctx, db.sql, &bookings, `
		SELECT sb.booking_id, sb.user_id, sb.space_id, sb.booking_date, s.name
		FROM space_bookings sb
		JOIN spaces s ON sb.space_id = s.space_id
		WHERE sb.booking_date = ?
	`, date)
	if err != nil {
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	return bookings, nil
}

// EventBookingsOn keys on the event date, not the booking date, matching
// how attendees were reminded in the original sweep.
func (db *DB) EventBookingsOn(ctx context.Context, date string) ([]EventBooking, error) {
	const fn = "DB:EventBookingsOn"
	var bookings []EventBooking
	err := sqlscan.Select(ctx, db.sql, &bookings, `
		SELECT eb.booking_id, eb.user_id, eb.event_id, eb.booking_date, e.name, e.date
		FROM event_bookings eb
		JOIN events e ON eb.event_id = e.event_id
		WHERE e.date = ?
	`, date)
	if err != nil {
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	return bookings, nil
}
