package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"smart-neighborhood-backend/internal/db"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// repository is the db surface the handlers consume; mocked in tests.
type repository interface {
	CreateUser(ctx context.Context, name, email, password, location, profileImage string) (*db.User, error)
	UserByEmail(ctx context.Context, email string) (*db.User, error)
	UserByID(ctx context.Context, id int64) (*db.User, error)
	SearchUsers(ctx context.Context, query string, limit int) ([]db.User, error)
	TopUsers(ctx context.Context, limit int) ([]db.User, error)
	UpdateUserRating(ctx context.Context, userID int64) error

	CreateReview(ctx context.Context, userID, reviewerID int64, rating int, comment string) error
	TopReviews(ctx context.Context, limit int) ([]db.Review, error)

	CreateResource(ctx context.Context, userID int64, title, description, category, availability string, images *string) (int64, error)
	Resources(ctx context.Context) ([]db.Resource, error)
	RecentResources(ctx context.Context, limit int) ([]db.Resource, error)
	ResourceByID(ctx context.Context, id int64) (*db.Resource, error)
	UpdateResource(ctx context.Context, id int64, title, description, category, availability string) error
	DeleteResource(ctx context.Context, id int64) error
	ResourcesByUser(ctx context.Context, userID int64) ([]db.Resource, error)

	CreateSpace(ctx context.Context, name, description, location, availability string, createdBy int64) (int64, error)
	Spaces(ctx context.Context) ([]db.Space, error)
	SpaceByID(ctx context.Context, id int64) (*db.Space, error)
	UpdateSpace(ctx context.Context, id int64, name, description, location, availability string) error
	DeleteSpace(ctx context.Context, id int64) error
	SpacesByUser(ctx context.Context, userID int64) ([]db.Space, error)

	CreateEvent(ctx context.Context, name, description, date, location string, hostedBy int64) (int64, error)
	Events(ctx context.Context) ([]db.Event, error)
	EventByID(ctx context.Context, id int64) (*db.Event, error)
	UpdateEvent(ctx context.Context, id int64, name, description, date, location string) error
	DeleteEvent(ctx context.Context, id int64) error
	EventsByUser(ctx context.Context, userID int64) ([]db.Event, error)

	BookResource(ctx context.Context, userID, resourceID int64, bookingDate string) error
	BookSpace(ctx context.Context, userID, spaceID int64, bookingDate string) error
	BookEvent(ctx context.Context, userID, eventID int64, bookingDate string) error
	ResourceBookingsByUser(ctx context.Context, userID int64) ([]db.ResourceBooking, error)
	SpaceBookingsByUser(ctx context.Context, userID int64) ([]db.SpaceBooking, error)
	EventBookingsByUser(ctx context.Context, userID int64) ([]db.EventBooking, error)
	CancelResourceBooking(ctx context.Context, bookingID, userID int64) error
	CancelSpaceBooking(ctx context.Context, bookingID, userID int64) error
	CancelEventBooking(ctx context.Context, bookingID, userID int64) error
	HasEventBooking(ctx context.Context, userID, eventID int64) (bool, error)

	SendMessage(ctx context.Context, senderID, receiverID int64, content string) error
	Inbox(ctx context.Context, userID int64) ([]db.ConversationHead, error)
	Conversation(ctx context.Context, userID, partnerID int64) ([]db.Message, error)
	SystemMessages(ctx context.Context, userID int64) ([]db.Message, error)
}

// authenticator is the slice of the auth package the handlers need.
type authenticator interface {
	IssueToken(userID int64) (string, error)
	ParseToken(token string) (int64, error)
}

const homeFeedLimit = 5

type API struct {
	repo repository
	auth authenticator
}

type Config struct {
	Repo repository
	Auth authenticator
}

func New(cfg Config) *API {
	return &API{repo: cfg.Repo, auth: cfg.Auth}
}

// Router assembles every route of the service.
func (a *API) Router() *chi.Mux {
	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/health", a.Health)
	r.Get("/", a.Home)
	r.Post("/register", a.Register)
	r.Post("/login", a.Login)
	r.Get("/users/search", a.SearchUsers)
	r.Get("/users/{user_id}", a.UserProfile)

	r.Get("/resources", a.ListResources)
	r.Get("/resources/{resource_id}", a.GetResource)
	r.Get("/spaces", a.ListSpaces)
	r.Get("/spaces/{space_id}", a.GetSpace)
	r.Get("/events", a.ListEvents)

	r.Group(func(r chi.Router) {
		r.Use(a.Authenticate)

		r.Get("/profile", a.Profile)
		r.Post("/users/{user_id}/rating", a.RateUser)

		r.Post("/resources", a.CreateResource)
		r.Put("/resources/{resource_id}", a.UpdateResource)
		r.Delete("/resources/{resource_id}", a.DeleteResource)
		r.Post("/resources/{resource_id}/bookings", a.BookResource)
		r.Delete("/resources/bookings/{booking_id}", a.CancelResourceBooking)

		r.Post("/spaces", a.CreateSpace)
		r.Put("/spaces/{space_id}", a.UpdateSpace)
		r.Delete("/spaces/{space_id}", a.DeleteSpace)
		r.Post("/spaces/{space_id}/bookings", a.BookSpace)
		r.Delete("/spaces/bookings/{booking_id}", a.CancelSpaceBooking)

		r.Get("/events/{event_id}", a.GetEvent)
		r.Post("/events", a.CreateEvent)
		r.Put("/events/{event_id}", a.UpdateEvent)
		r.Delete("/events/{event_id}", a.DeleteEvent)
		r.Post("/events/{event_id}/bookings", a.BookEvent)
		r.Delete("/events/bookings/{booking_id}", a.CancelEventBooking)

		r.Get("/inbox", a.Inbox)
		r.Get("/conversations/{user_id}", a.Conversation)
		r.Post("/messages/{user_id}", a.SendMessage)
	})

	return r
}

func (a *API) Health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}

// Home returns the landing feed: recent resources, top reviews and top
// rated users.
func (a *API) Home(w http.ResponseWriter, r *http.Request) {
	recent, err := a.repo.RecentResources(r.Context(), homeFeedLimit)
	if err != nil {
		writeDBError(w, err)
		return
	}
	reviews, err := a.repo.TopReviews(r.Context(), homeFeedLimit)
	if err != nil {
		writeDBError(w, err)
		return
	}
	users, err := a.repo.TopUsers(r.Context(), homeFeedLimit)
	if err != nil {
		writeDBError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, HomeResponse{
		RecentResources: recent,
		TopReviews:      reviews,
		TopUsers:        users,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// writeDBError maps db sentinel errors onto HTTP statuses.
func writeDBError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, db.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	case errors.Is(err, db.ErrDuplicateEmail):
		writeError(w, http.StatusConflict, "email already registered")
	case errors.Is(err, db.ErrDuplicateBooking):
		writeError(w, http.StatusConflict, "already booked")
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func urlID(r *http.Request, name string) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, name), 10, 64)
}

func validDate(value string) bool {
	_, err := time.Parse(db.DateLayout, value)
	return err == nil
}

func today() string {
	return time.Now().Format(db.DateLayout)
}
