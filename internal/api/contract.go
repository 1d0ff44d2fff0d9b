package api

import "smart-neighborhood-backend/internal/db"

type ErrorResponse struct {
	Error string `json:"error"`
}

type RegisterRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	Location     string `json:"location"`
	ProfileImage string `json:"profile_image"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string  `json:"token"`
	User  db.User `json:"user"`
}

type HomeResponse struct {
	RecentResources []db.Resource `json:"recent_resources"`
	TopReviews      []db.Review   `json:"top_reviews"`
	TopUsers        []db.User     `json:"top_users"`
}

type ProfileResponse struct {
	User             db.User              `json:"user"`
	Resources        []db.Resource        `json:"resources"`
	Events           []db.Event           `json:"events"`
	Spaces           []db.Space           `json:"spaces"`
	ResourceBookings []db.ResourceBooking `json:"resource_bookings"`
	SpaceBookings    []db.SpaceBooking    `json:"space_bookings"`
	EventBookings    []db.EventBooking    `json:"event_bookings"`
}

type UserProfileResponse struct {
	User      db.User       `json:"user"`
	Resources []db.Resource `json:"resources"`
	Events    []db.Event    `json:"events"`
	Spaces    []db.Space    `json:"spaces"`
}

type RateUserRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

type ResourceRequest struct {
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Category     string  `json:"category"`
	Availability string  `json:"availability"`
	Images       *string `json:"images"`
}

type SpaceRequest struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	Location     string `json:"location"`
	Availability string `json:"availability"`
}

type EventRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Location    string `json:"location"`
}

type EventResponse struct {
	Event  db.Event `json:"event"`
	Booked bool     `json:"booked"`
}

type CreatedResponse struct {
	ID int64 `json:"id"`
}

type SendMessageRequest struct {
	Content string `json:"content"`
}

type InboxResponse struct {
	Conversations  []db.ConversationHead `json:"conversations"`
	SystemMessages []db.Message          `json:"system_messages"`
	Recipients     []db.User             `json:"recipients,omitempty"`
}

type ConversationResponse struct {
	Messages []db.Message `json:"messages"`
	Partner  db.User      `json:"partner"`
}
