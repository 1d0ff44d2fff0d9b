package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"smart-neighborhood-backend/internal/auth"
	"smart-neighborhood-backend/internal/db"
)

const searchLimit = 10

// Register creates a new account. The password is stored hashed; a taken
// email is a conflict.
func (a *API) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" || req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "name, email, and password are required")
		return
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to hash password")
		return
	}

	user, err := a.repo.CreateUser(r.Context(), req.Name, req.Email, hashed, req.Location, req.ProfileImage)
	if err != nil {
		writeDBError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

// Login checks credentials and returns a bearer token.
func (a *API) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	user, err := a.repo.UserByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			writeError(w, http.StatusUnauthorized, "invalid email or password")
			return
		}
		writeDBError(w, err)
		return
	}
	if err := auth.CheckPassword(user.Password, req.Password); err != nil {
		writeError(w, http.StatusUnauthorized, "invalid email or password")
		return
	}

	token, err := a.auth.IssueToken(user.ID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to issue token")
		return
	}
	writeJSON(w, http.StatusOK, LoginResponse{Token: token, User: *user})
}

// Profile returns the caller's account with everything they own and every
// booking they hold.
func (a *API) Profile(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	user, err := a.repo.UserByID(r.Context(), userID)
	if err != nil {
		writeDBError(w, err)
		return
	}
	resources, err := a.repo.ResourcesByUser(r.Context(), userID)
	if err != nil {
		writeDBError(w, err)
		return
	}
	events, err := a.repo.EventsByUser(r.Context(), userID)
	if err != nil {
		writeDBError(w, err)
		return
	}
	spaces, err := a.repo.SpacesByUser(r.Context(), userID)
	if err != nil {
		writeDBError(w, err)
		return
	}
	resourceBookings, err := a.repo.ResourceBookingsByUser(r.Context(), userID)
	if err != nil {
		writeDBError(w, err)
		return
	}
	spaceBookings, err := a.repo.SpaceBookingsByUser(r.Context(), userID)
	if err != nil {
		writeDBError(w, err)
		return
	}
	eventBookings, err := a.repo.EventBookingsByUser(r.Context(), userID)
	if err != nil {
		writeDBError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, ProfileResponse{
		User:             *user,
		Resources:        resources,
		Events:           events,
		Spaces:           spaces,
		ResourceBookings: resourceBookings,
		SpaceBookings:    spaceBookings,
		EventBookings:    eventBookings,
	})
}

// SearchUsers matches user names by substring. An empty query returns an
// empty list rather than everyone.
func (a *API) SearchUsers(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		writeJSON(w, http.StatusOK, []db.User{})
		return
	}
	users, err := a.repo.SearchUsers(r.Context(), query, searchLimit)
	if err != nil {
		writeDBError(w, err)
		return
	}
	if users == nil {
		users = []db.User{}
	}
	writeJSON(w, http.StatusOK, users)
}

// UserProfile is the public view of another member.
func (a *API) UserProfile(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r, "user_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}
	user, err := a.repo.UserByID(r.Context(), id)
	if err != nil {
		writeDBError(w, err)
		return
	}
	resources, err := a.repo.ResourcesByUser(r.Context(), id)
	if err != nil {
		writeDBError(w, err)
		return
	}
	events, err := a.repo.EventsByUser(r.Context(), id)
	if err != nil {
		writeDBError(w, err)
		return
	}
	spaces, err := a.repo.SpacesByUser(r.Context(), id)
	if err != nil {
		writeDBError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, UserProfileResponse{
		User:      *user,
		Resources: resources,
		Events:    events,
		Spaces:    spaces,
	})
}

// RateUser records a review and refreshes the target's average rating.
func (a *API) RateUser(w http.ResponseWriter, r *http.Request) {
	reviewerID, ok := callerID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	targetID, err := urlID(r, "user_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	var req RateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.Comment = strings.TrimSpace(req.Comment)
	if req.Rating < 1 || req.Rating > 5 || req.Comment == "" {
		writeError(w, http.StatusBadRequest, "rating (1-5) and comment are required")
		return
	}

	if _, err := a.repo.UserByID(r.Context(), targetID); err != nil {
		writeDBError(w, err)
		return
	}
	if err := a.repo.CreateReview(r.Context(), targetID, reviewerID, req.Rating, req.Comment); err != nil {
		writeDBError(w, err)
		return
	}
	if err := a.repo.UpdateUserRating(r.Context(), targetID); err != nil {
		writeDBError(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}
