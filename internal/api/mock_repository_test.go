package api

import (
	"context"

	"smart-neighborhood-backend/internal/db"

	"github.com/stretchr/testify/mock"
)

// mockRepository is a hand-rolled testify mock over the repository
// interface.
type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) CreateUser(ctx context.Context, name, email, password, location, profileImage string) (*db.User, error) {
	args := m.Called(ctx, name, email, password, location, profileImage)
	user, _ := args.Get(0).(*db.User)
	return user, args.Error(1)
}

func (m *mockRepository) UserByEmail(ctx context.Context, email string) (*db.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*db.User)
	return user, args.Error(1)
}

func (m *mockRepository) UserByID(ctx context.Context, id int64) (*db.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*db.User)
	return user, args.Error(1)
}

func (m *mockRepository) SearchUsers(ctx context.Context, query string, limit int) ([]db.User, error) {
	args := m.Called(ctx, query, limit)
	users, _ := args.Get(0).([]db.User)
	return users, args.Error(1)
}

func (m *mockRepository) TopUsers(ctx context.Context, limit int) ([]db.User, error) {
	args := m.Called(ctx, limit)
	users, _ := args.Get(0).([]db.User)
	return users, args.Error(1)
}

func (m *mockRepository) UpdateUserRating(ctx context.Context, userID int64) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *mockRepository) CreateReview(ctx context.Context, userID, reviewerID int64, rating int, comment string) error {
	return m.Called(ctx, userID, reviewerID, rating, comment).Error(0)
}

func (m *mockRepository) TopReviews(ctx context.Context, limit int) ([]db.Review, error) {
	args := m.Called(ctx, limit)
	reviews, _ := args.Get(0).([]db.Review)
	return reviews, args.Error(1)
}

func (m *mockRepository) CreateResource(ctx context.Context, userID int64, title, description, category, availability string, images *string) (int64, error) {
	args := m.Called(ctx, userID, title, description, category, availability, images)
	id, _ := args.Get(0).(int64)
	return id, args.Error(1)
}

func (m *mockRepository) Resources(ctx context.Context) ([]db.Resource, error) {
	args := m.Called(ctx)
	resources, _ := args.Get(0).([]db.Resource)
	return resources, args.Error(1)
}

func (m *mockRepository) RecentResources(ctx context.Context, limit int) ([]db.Resource, error) {
	args := m.Called(ctx, limit)
	resources, _ := args.Get(0).([]db.Resource)
	return resources, args.Error(1)
}

func (m *mockRepository) ResourceByID(ctx context.Context, id int64) (*db.Resource, error) {
	args := m.Called(ctx, id)
	resource, _ := args.Get(0).(*db.Resource)
	return resource, args.Error(1)
}

func (m *mockRepository) UpdateResource(ctx context.Context, id int64, title, description, category, availability string) error {
	return m.Called(ctx, id, title, description, category, availability).Error(0)
}

func (m *mockRepository) DeleteResource(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockRepository) ResourcesByUser(ctx context.Context, userID int64) ([]db.Resource, error) {
	args := m.Called(ctx, userID)
	resources, _ := args.Get(0).([]db.Resource)
	return resources, args.Error(1)
}

func (m *mockRepository) CreateSpace(ctx context.Context, name, description, location, availability string, createdBy int64) (int64, error) {
	args := m.Called(ctx, name, description, location, availability, createdBy)
	id, _ := args.Get(0).(int64)
	return id, args.Error(1)
}

func (m *mockRepository) Spaces(ctx context.Context) ([]db.Space, error) {
	args := m.Called(ctx)
	spaces, _ := args.Get(0).([]db.Space)
	return spaces, args.Error(1)
}

func (m *mockRepository) SpaceByID(ctx context.Context, id int64) (*db.Space, error) {
	args := m.Called(ctx, id)
	space, _ := args.Get(0).(*db.Space)
	return space, args.Error(1)
}

func (m *mockRepository) UpdateSpace(ctx context.Context, id int64, name, description, location, availability string) error {
	return m.Called(ctx, id, name, description, location, availability).Error(0)
}

func (m *mockRepository) DeleteSpace(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockRepository) SpacesByUser(ctx context.Context, userID int64) ([]db.Space, error) {
	args := m.Called(ctx, userID)
	spaces, _ := args.Get(0).([]db.Space)
	return spaces, args.Error(1)
}

func (m *mockRepository) CreateEvent(ctx context.Context, name, description, date, location string, hostedBy int64) (int64, error) {
	args := m.Called(ctx, name, description, date, location, hostedBy)
	id, _ := args.Get(0).(int64)
	return id, args.Error(1)
}

func (m *mockRepository) Events(ctx context.Context) ([]db.Event, error) {
	args := m.Called(ctx)
	events, _ := args.Get(0).([]db.Event)
	return events, args.Error(1)
}

func (m *mockRepository) EventByID(ctx context.Context, id int64) (*db.Event, error) {
	args := m.Called(ctx, id)
	event, _ := args.Get(0).(*db.Event)
	return event, args.Error(1)
}

func (m *mockRepository) UpdateEvent(ctx context.Context, id int64, name, description, date, location string) error {
	return m.Called(ctx, id, name, description, date, location).Error(0)
}

func (m *mockRepository) DeleteEvent(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockRepository) EventsByUser(ctx context.Context, userID int64) ([]db.Event, error) {
	args := m.Called(ctx, userID)
	events, _ := args.Get(0).([]db.Event)
	return events, args.Error(1)
}

func (m *mockRepository) BookResource(ctx context.Context, userID, resourceID int64, bookingDate string) error {
	return m.Called(ctx, userID, resourceID, bookingDate).Error(0)
}

func (m *mockRepository) BookSpace(ctx context.Context, userID, spaceID int64, bookingDate string) error {
	return m.Called(ctx, userID, spaceID, bookingDate).Error(0)
}

func (m *mockRepository) BookEvent(ctx context.Context, userID, eventID int64, bookingDate string) error {
	return m.Called(ctx, userID, eventID, bookingDate).Error(0)
}

func (m *mockRepository) ResourceBookingsByUser(ctx context.Context, userID int64) ([]db.ResourceBooking, error) {
	args := m.Called(ctx, userID)
	bookings, _ := args.Get(0).([]db.ResourceBooking)
	return bookings, args.Error(1)
}

func (m *mockRepository) SpaceBookingsByUser(ctx context.Context, userID int64) ([]db.SpaceBooking, error) {
	args := m.Called(ctx, userID)
	bookings, _ := args.Get(0).([]db.SpaceBooking)
	return bookings, args.Error(1)
}

func (m *mockRepository) EventBookingsByUser(ctx context.Context, userID int64) ([]db.EventBooking, error) {
	args := m.Called(ctx, userID)
	bookings, _ := args.Get(0).([]db.EventBooking)
	return bookings, args.Error(1)
}

func (m *mockRepository) CancelResourceBooking(ctx context.Context, bookingID, userID int64) error {
	return m.Called(ctx, bookingID, userID).Error(0)
}

func (m *mockRepository) CancelSpaceBooking(ctx context.Context, bookingID, userID int64) error {
	return m.Called(ctx, bookingID, userID).Error(0)
}

func (m *mockRepository) CancelEventBooking(ctx context.Context, bookingID, userID int64) error {
	return m.Called(ctx, bookingID, userID).Error(0)
}

func (m *mockRepository) HasEventBooking(ctx context.Context, userID, eventID int64) (bool, error) {
	args := m.Called(ctx, userID, eventID)
	return args.Bool(0), args.Error(1)
}

func (m *mockRepository) SendMessage(ctx context.Context, senderID, receiverID int64, content string) error {
	return m.Called(ctx, senderID, receiverID, content).Error(0)
}

func (m *mockRepository) Inbox(ctx context.Context, userID int64) ([]db.ConversationHead, error) {
	args := m.Called(ctx, userID)
	heads, _ := args.Get(0).([]db.ConversationHead)
	return heads, args.Error(1)
}

func (m *mockRepository) Conversation(ctx context.Context, userID, partnerID int64) ([]db.Message, error) {
	args := m.Called(ctx, userID, partnerID)
	messages, _ := args.Get(0).([]db.Message)
	return messages, args.Error(1)
}

func (m *mockRepository) SystemMessages(ctx context.Context, userID int64) ([]db.Message, error) {
	args := m.Called(ctx, userID)
	messages, _ := args.Get(0).([]db.Message)
	return messages, args.Error(1)
}
