package db

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/sqlscan"
)

func (db *DB) SendMessage(ctx context.Context, senderID, receiverID int64, content string) error {
	const fn = "DB:SendMessage"
	_, err := db.sql.ExecContext(ctx, `
		INSERT INTO messages (sender_id, receiver_id, content, timestamp)
		VALUES (?, ?, ?, ?)
	`, senderID, receiverID, content, nowTimestamp())
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrInsertFailed, err)
	}
	return nil
}

// SendSystemMessage stores a senderless reminder for receiverID.
func (db *DB) SendSystemMessage(ctx context.Context, receiverID int64, content string) error {
	const fn = "DB:SendSystemMessage"
	_, err := db.sql.ExecContext(ctx, `
		INSERT INTO messages (sender_id, receiver_id, content, timestamp, is_system_message)
		VALUES (NULL, ?, ?, ?, 1)
	`, receiverID, content, nowTimestamp())
	if err != nil {
		return fmt.Errorf("%s:%w:%w", fn, ErrInsertFailed, err)
	}
	return nil
}

// Inbox lists the users the given user has exchanged messages with, most
// recent conversation first. System messages are excluded; they have no
// partner to converse with.
func (db *DB) Inbox(ctx context.Context, userID int64) ([]ConversationHead, error) {
	const fn = "DB:Inbox"
	var heads []ConversationHead
	err := sqlscan.Select(ctx, db.sql, &heads, `
		SELECT u.id, u.name, MAX(m.timestamp) AS last_message
		FROM messages m
		JOIN users u ON u.id = CASE WHEN m.sender_id = ? THEN m.receiver_id ELSE m.sender_id END
		WHERE (m.sender_id = ? OR m.receiver_id = ?) AND m.is_system_message = 0
		GROUP BY u.id, u.name
		ORDER BY last_message DESC
	`, userID, userID, userID)
	if err != nil {
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	return heads, nil
}

// Conversation returns the messages exchanged between two users in
// chronological order, annotated with the sender's name.
func (db *DB) Conversation(ctx context.Context, userID, partnerID int64) ([]Message, error) {
	const fn = "DB:Conversation"
	var messages []Message
	err := sqlscan.Select(ctx, db.sql, &messages, `
		SELECT m.message_id, m.sender_id, m.receiver_id, m.content, m.timestamp,
			m.is_system_message, u.name AS sender_name
		FROM messages m
		JOIN users u ON m.sender_id = u.id
		WHERE (m.sender_id = ? AND m.receiver_id = ?) OR (m.sender_id = ? AND m.receiver_id = ?)
		ORDER BY m.timestamp, m.message_id
	`, userID, partnerID, partnerID, userID)
	if err != nil {
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	return messages, nil
}

func (db *DB) SystemMessages(ctx context.Context, userID int64) ([]Message, error) {
	const fn = "DB:SystemMessages"
	var messages []Message
	err := sqlscan.Select(ctx, db.sql, &messages, `
		SELECT message_id, sender_id, receiver_id, content, timestamp, is_system_message,
			'' AS sender_name
		FROM messages
		WHERE receiver_id = ? AND is_system_message = 1
		ORDER BY timestamp DESC, message_id DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("%s:%w:%w", fn, ErrSelectFailed, err)
	}
	return messages, nil
}
