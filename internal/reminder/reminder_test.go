package reminder

import (
	"context"
	"errors"
	"testing"
	"time"

	"smart-neighborhood-backend/internal/db"
	"smart-neighborhood-backend/internal/notify"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockStore struct {
	mock.Mock
}

func (m *mockStore) ResourceBookingsOn(ctx context.Context, date string) ([]db.ResourceBooking, error) {
	args := m.Called(ctx, date)
	bookings, _ := args.Get(0).([]db.ResourceBooking)
	return bookings, args.Error(1)
}

func (m *mockStore) SpaceBookingsOn(ctx context.Context, date string) ([]db.SpaceBooking, error) {
	args := m.Called(ctx, date)
	bookings, _ := args.Get(0).([]db.SpaceBooking)
	return bookings, args.Error(1)
}

func (m *mockStore) EventBookingsOn(ctx context.Context, date string) ([]db.EventBooking, error) {
	args := m.Called(ctx, date)
	bookings, _ := args.Get(0).([]db.EventBooking)
	return bookings, args.Error(1)
}

func (m *mockStore) SendSystemMessage(ctx context.Context, receiverID int64, content string) error {
	return m.Called(ctx, receiverID, content).Error(0)
}

type capturePublisher struct {
	published []notify.Notification
	err       error
}

func (p *capturePublisher) Publish(_ context.Context, n notify.Notification) error {
	if p.err != nil {
		return p.err
	}
	p.published = append(p.published, n)
	return nil
}

func (p *capturePublisher) Close() error { return nil }

// fixedNow pins the sweep to 2026-03-14, so tomorrow is 2026-03-15.
func fixedNow() time.Time {
	return time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
}

func Test_Process(t *testing.T) {
	const tomorrow = "2026-03-15"

	store := &mockStore{}
	store.On("ResourceBookingsOn", mock.Anything, tomorrow).Return([]db.ResourceBooking{
		{BookingID: 1, UserID: 7, ResourceID: 3, BookingDate: tomorrow, Title: "Lawn Mower"},
	}, nil)
	store.On("SpaceBookingsOn", mock.Anything, tomorrow).Return([]db.SpaceBooking{
		{BookingID: 2, UserID: 8, SpaceID: 1, BookingDate: tomorrow, Name: "Community Hall"},
	}, nil)
	store.On("EventBookingsOn", mock.Anything, tomorrow).Return([]db.EventBooking{
		{BookingID: 3, UserID: 9, EventID: 5, Name: "Book Club", Date: tomorrow},
	}, nil)
	store.On("SendSystemMessage", mock.Anything, int64(7),
		"Reminder: Your resource booking 'Lawn Mower' is scheduled for tomorrow.").Return(nil)
	store.On("SendSystemMessage", mock.Anything, int64(8),
		"Reminder: Your space booking 'Community Hall' is scheduled for tomorrow.").Return(nil)
	store.On("SendSystemMessage", mock.Anything, int64(9),
		"Reminder: Your event 'Book Club' is scheduled for tomorrow.").Return(nil)

	publisher := &capturePublisher{}
	r := New(Config{
		Interval:  time.Hour,
		Store:     store,
		Publisher: publisher,
		Now:       fixedNow,
	})

	err := r.Process(context.Background())
	assert.NoError(t, err)
	store.AssertExpectations(t)

	if assert.Len(t, publisher.published, 3) {
		assert.Equal(t, notify.KindResourceReminder, publisher.published[0].Kind)
		assert.Equal(t, int64(7), publisher.published[0].ReceiverID)
		assert.Equal(t, notify.KindSpaceReminder, publisher.published[1].Kind)
		assert.Equal(t, notify.KindEventReminder, publisher.published[2].Kind)
		assert.Equal(t, tomorrow, publisher.published[2].Date)
	}
}

func Test_Process_NoBookings(t *testing.T) {
	store := &mockStore{}
	store.On("ResourceBookingsOn", mock.Anything, mock.Anything).Return(nil, nil)
	store.On("SpaceBookingsOn", mock.Anything, mock.Anything).Return(nil, nil)
	store.On("EventBookingsOn", mock.Anything, mock.Anything).Return(nil, nil)

	publisher := &capturePublisher{}
	r := New(Config{Interval: time.Hour, Store: store, Publisher: publisher, Now: fixedNow})

	assert.NoError(t, r.Process(context.Background()))
	assert.Empty(t, publisher.published)
	store.AssertNotCalled(t, "SendSystemMessage", mock.Anything, mock.Anything, mock.Anything)
}

func Test_Process_PartialFailure(t *testing.T) {
	const tomorrow = "2026-03-15"
	selectErr := errors.New("select failed")

	store := &mockStore{}
	store.On("ResourceBookingsOn", mock.Anything, tomorrow).Return(nil, selectErr)
	store.On("SpaceBookingsOn", mock.Anything, tomorrow).Return(nil, nil)
	store.On("EventBookingsOn", mock.Anything, tomorrow).Return([]db.EventBooking{
		{BookingID: 3, UserID: 9, EventID: 5, Name: "Book Club", Date: tomorrow},
	}, nil)
	store.On("SendSystemMessage", mock.Anything, int64(9), mock.Anything).Return(nil)

	publisher := &capturePublisher{}
	r := New(Config{Interval: time.Hour, Store: store, Publisher: publisher, Now: fixedNow})

	err := r.Process(context.Background())
	assert.ErrorIs(t, err, selectErr)

	// The failing resource sweep must not block the event sweep.
	assert.Len(t, publisher.published, 1)
}

func Test_Process_StoreFailureSkipsPublish(t *testing.T) {
	const tomorrow = "2026-03-15"
	insertErr := errors.New("insert failed")

	store := &mockStore{}
	store.On("ResourceBookingsOn", mock.Anything, tomorrow).Return([]db.ResourceBooking{
		{BookingID: 1, UserID: 7, ResourceID: 3, BookingDate: tomorrow, Title: "Lawn Mower"},
	}, nil)
	store.On("SpaceBookingsOn", mock.Anything, tomorrow).Return(nil, nil)
	store.On("EventBookingsOn", mock.Anything, tomorrow).Return(nil, nil)
	store.On("SendSystemMessage", mock.Anything, int64(7), mock.Anything).Return(insertErr)

	publisher := &capturePublisher{}
	r := New(Config{Interval: time.Hour, Store: store, Publisher: publisher, Now: fixedNow})

	err := r.Process(context.Background())
	assert.ErrorIs(t, err, insertErr)
	assert.Empty(t, publisher.published)
}
