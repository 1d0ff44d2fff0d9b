package api

import (
	"encoding/json"
	"net/http"

	"smart-neighborhood-backend/internal/db"
)

func (a *API) ListSpaces(w http.ResponseWriter, r *http.Request) {
	spaces, err := a.repo.Spaces(r.Context())
	if err != nil {
		writeDBError(w, err)
		return
	}
	if spaces == nil {
		spaces = []db.Space{}
	}
	writeJSON(w, http.StatusOK, spaces)
}

func (a *API) GetSpace(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r, "space_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid space id")
		return
	}
	space, err := a.repo.SpaceByID(r.Context(), id)
	if err != nil {
		writeDBError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, space)
}

func (a *API) CreateSpace(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req SpaceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" || req.Location == "" || req.Availability == "" {
		writeError(w, http.StatusBadRequest, "name, location, and availability are required")
		return
	}
	if !validDate(req.Availability) {
		writeError(w, http.StatusBadRequest, "invalid availability date, use YYYY-MM-DD")
		return
	}

	id, err := a.repo.CreateSpace(r.Context(), req.Name, req.Description, req.Location, req.Availability, userID)
	if err != nil {
		writeDBError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, CreatedResponse{ID: id})
}

// UpdateSpace is creator-only.
func (a *API) UpdateSpace(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	id, err := urlID(r, "space_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid space id")
		return
	}

	space, err := a.repo.SpaceByID(r.Context(), id)
	if err != nil {
		writeDBError(w, err)
		return
	}
	if space.CreatedBy != userID {
		writeError(w, http.StatusForbidden, "not the creator of this space")
		return
	}

	var req SpaceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" || req.Location == "" || req.Availability == "" {
		writeError(w, http.StatusBadRequest, "name, location, and availability are required")
		return
	}

	if err := a.repo.UpdateSpace(r.Context(), id, req.Name, req.Description, req.Location, req.Availability); err != nil {
		writeDBError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// DeleteSpace is creator-only.
func (a *API) DeleteSpace(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	id, err := urlID(r, "space_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid space id")
		return
	}

	space, err := a.repo.SpaceByID(r.Context(), id)
	if err != nil {
		writeDBError(w, err)
		return
	}
	if space.CreatedBy != userID {
		writeError(w, http.StatusForbidden, "not the creator of this space")
		return
	}

	if err := a.repo.DeleteSpace(r.Context(), id); err != nil {
		writeDBError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (a *API) BookSpace(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	id, err := urlID(r, "space_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid space id")
		return
	}

	if _, err := a.repo.SpaceByID(r.Context(), id); err != nil {
		writeDBError(w, err)
		return
	}
	if err := a.repo.BookSpace(r.Context(), userID, id, today()); err != nil {
		writeDBError(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

func (a *API) CancelSpaceBooking(w http.ResponseWriter, r *http.Request) {
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
	if err := a.repo.CancelSpaceBooking(r.Context(), id, userID); err != nil {
		writeDBError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
