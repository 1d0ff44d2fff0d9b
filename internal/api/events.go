package api

import (
	"encoding/json"
	"net/http"

	"smart-neighborhood-backend/internal/db"
)

func (a *API) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := a.repo.Events(r.Context())
	if err != nil {
		writeDBError(w, err)
		return
	}
	if events == nil {
		events = []db.Event{}
	}
	writeJSON(w, http.StatusOK, events)
}

// GetEvent includes whether the caller already booked a place.
func (a *API) GetEvent(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	id, err := urlID(r, "event_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid event id")
		return
	}

	event, err := a.repo.EventByID(r.Context(), id)
	if err != nil {
		writeDBError(w, err)
		return
	}
	booked, err := a.repo.HasEventBooking(r.Context(), userID, id)
	if err != nil {
		writeDBError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, EventResponse{Event: *event, Booked: booked})
}

func (a *API) CreateEvent(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req EventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" || req.Date == "" || req.Location == "" {
		writeError(w, http.StatusBadRequest, "name, date, and location are required")
		return
	}
	if !validDate(req.Date) {
		writeError(w, http.StatusBadRequest, "invalid date, use YYYY-MM-DD")
		return
	}

	id, err := a.repo.CreateEvent(r.Context(), req.Name, req.Description, req.Date, req.Location, userID)
	if err != nil {
		writeDBError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, CreatedResponse{ID: id})
}

// UpdateEvent is host-only.
func (a *API) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	id, err := urlID(r, "event_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid event id")
		return
	}

	event, err := a.repo.EventByID(r.Context(), id)
	if err != nil {
		writeDBError(w, err)
		return
	}
	if event.HostedBy != userID {
		writeError(w, http.StatusForbidden, "not the host of this event")
		return
	}

	var req EventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" || req.Date == "" || req.Location == "" {
		writeError(w, http.StatusBadRequest, "name, date, and location are required")
		return
	}

	if err := a.repo.UpdateEvent(r.Context(), id, req.Name, req.Description, req.Date, req.Location); err != nil {
		writeDBError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// DeleteEvent is host-only.
func (a *API) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	id, err := urlID(r, "event_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid event id")
		return
	}

	event, err := a.repo.EventByID(r.Context(), id)
	if err != nil {
		writeDBError(w, err)
		return
	}
	if event.HostedBy != userID {
		writeError(w, http.StatusForbidden, "not the host of this event")
		return
	}

	if err := a.repo.DeleteEvent(r.Context(), id); err != nil {
		writeDBError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) BookEvent(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	id, err := urlID(r, "event_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid event id")
		return
	}

	if _, err := a.repo.EventByID(r.Context(), id); err != nil {
		writeDBError(w, err)
		return
	}
	if err := a.repo.BookEvent(r.Context(), userID, id, today()); err != nil {
		writeDBError(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

func (a *API) CancelEventBooking(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	id, err := urlID(r, "booking_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid booking id")
		return
	}
	if err := a.repo.CancelEventBooking(r.Context(), id, userID); err != nil {
		writeDBError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
