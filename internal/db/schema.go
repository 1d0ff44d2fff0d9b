package db

// Row types for the neighborhood database. Column names follow the
// original smart_neighborhood.db schema.

type User struct {
	ID           int64    `db:"id" json:"id"`
	Name         string   `db:"name" json:"name"`
	Email        string   `db:"email" json:"email"`
	Password     string   `db:"password" json:"-"`
	Location     string   `db:"location" json:"location"`
	ProfileImage string   `db:"profile_image" json:"profile_image"`
	Rating       *float64 `db:"rating" json:"rating,omitempty"`
}

type Resource struct {
	ResourceID   int64   `db:"resource_id" json:"resource_id"`
	UserID       int64   `db:"user_id" json:"user_id"`
	Title        string  `db:"title" json:"title"`
	Description  string  `db:"description" json:"description"`
	Images       *string `db:"images" json:"images,omitempty"`
	Category     string  `db:"category" json:"category"`
	Availability string  `db:"availability" json:"availability"`
	DatePosted   string  `db:"date_posted" json:"date_posted"`
}

type Space struct {
	SpaceID      int64  `db:"space_id" json:"space_id"`
	Name         string `db:"name" json:"name"`
	Description  string `db:"description" json:"description"`
	Location     string `db:"location" json:"location"`
	Availability string `db:"availability" json:"availability"`
	CreatedBy    int64  `db:"created_by" json:"created_by"`
}

type Event struct {
	EventID     int64  `db:"event_id" json:"event_id"`
	Name        string `db:"name" json:"name"`
	Description string `db:"description" json:"description"`
	Date        string `db:"date" json:"date"`
	Location    string `db:"location" json:"location"`
	HostedBy    int64  `db:"hosted_by" json:"hosted_by"`
}

// Message.SenderID is nil for system messages.
type Message struct {
	MessageID       int64  `db:"message_id" json:"message_id"`
	SenderID        *int64 `db:"sender_id" json:"sender_id,omitempty"`
	ReceiverID      int64  `db:"receiver_id" json:"receiver_id"`
	Content         string `db:"content" json:"content"`
	Timestamp       string `db:"timestamp" json:"timestamp"`
	IsSystemMessage bool   `db:"is_system_message" json:"is_system_message"`
	SenderName      string `db:"sender_name" json:"sender_name,omitempty"`
}

type Review struct {
	ReviewID     int64  `db:"review_id" json:"review_id"`
	UserID       int64  `db:"user_id" json:"user_id"`
	ReviewerID   int64  `db:"reviewer_id" json:"reviewer_id"`
	Rating       int    `db:"rating" json:"rating"`
	Comment      string `db:"comment" json:"comment"`
	Timestamp    string `db:"timestamp" json:"timestamp"`
	ReviewerName string `db:"reviewer_name" json:"reviewer_name,omitempty"`
}

type ResourceBooking struct {
	BookingID   int64  `db:"booking_id" json:"booking_id"`
	UserID      int64  `db:"user_id" json:"user_id"`
	ResourceID  int64  `db:"resource_id" json:"resource_id"`
	BookingDate string `db:"booking_date" json:"booking_date"`
	Title       string `db:"title" json:"title,omitempty"`
}

type SpaceBooking struct {
	BookingID   int64  `db:"booking_id" json:"booking_id"`
	UserID      int64  `db:"user_id" json:"user_id"`
	SpaceID     int64  `db:"space_id" json:"space_id"`
	BookingDate string `db:"booking_date" json:"booking_date"`
	Name        string `db:"name" json:"name,omitempty"`
}

type EventBooking struct {
	BookingID   int64  `db:"booking_id" json:"booking_id"`
	UserID      int64  `db:"user_id" json:"user_id"`
	EventID     int64  `db:"event_id" json:"event_id"`
	BookingDate string `db:"booking_date" json:"booking_date"`
	Name        string `db:"name" json:"name,omitempty"`
	Date        string `db:"date" json:"date,omitempty"`
}

// ConversationHead is one inbox entry: the partner plus the time of the
// latest message exchanged with them.
type ConversationHead struct {
	ID          int64  `db:"id" json:"id"`
	Name        string `db:"name" json:"name"`
	LastMessage string `db:"last_message" json:"last_message"`
}
