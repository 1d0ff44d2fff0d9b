package api

import (
	"encoding/json"
	"net/http"

	"smart-neighborhood-backend/internal/db"
)

func (a *API) ListResources(w http.ResponseWriter, r *http.Request) {
	resources, err := a.repo.Resources(r.Context())
	if err != nil {
		writeDBError(w, err)
		return
	}
	if resources == nil {
		resources = []db.Resource{}
	}
	writeJSON(w, http.StatusOK, resources)
}

func (a *API) GetResource(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r, "resource_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid resource id")
		return
	}
	resource, err := a.repo.ResourceByID(r.Context(), id)
	if err != nil {
		writeDBError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resource)
}

func (a *API) CreateResource(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req ResourceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Title == "" || req.Category == "" || req.Availability == "" {
		writeError(w, http.StatusBadRequest, "title, category, and availability are required")
		return
	}
	if !validDate(req.Availability) {
		writeError(w, http.StatusBadRequest, "invalid availability date, use YYYY-MM-DD")
		return
	}

	id, err := a.repo.CreateResource(r.Context(), userID, req.Title, req.Description, req.Category, req.Availability, req.Images)
	if err != nil {
		writeDBError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, CreatedResponse{ID: id})
}

// UpdateResource is owner-only.
func (a *API) UpdateResource(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	id, err := urlID(r, "resource_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid resource id")
		return
	}

	resource, err := a.repo.ResourceByID(r.Context(), id)
	if err != nil {
		writeDBError(w, err)
		return
	}
	if resource.UserID != userID {
		writeError(w, http.StatusForbidden, "not the owner of this resource")
		return
	}

	var req ResourceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Title == "" || req.Category == "" || req.Availability == "" {
		writeError(w, http.StatusBadRequest, "title, category, and availability are required")
		return
	}

	if err := a.repo.UpdateResource(r.Context(), id, req.Title, req.Description, req.Category, req.Availability); err != nil {
		writeDBError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// DeleteResource is owner-only.
func (a *API) DeleteResource(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	id, err := urlID(r, "resource_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid resource id")
		return
	}

	resource, err := a.repo.ResourceByID(r.Context(), id)
	if err != nil {
		writeDBError(w, err)
		return
	}
	if resource.UserID != userID {
		writeError(w, http.StatusForbidden, "not the owner of this resource")
		return
	}

	if err := a.repo.DeleteResource(r.Context(), id); err != nil {
		writeDBError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// BookResource books the resource for today. Booking twice is a
// conflict.
func (a *API) BookResource(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	id, err := urlID(r, "resource_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid resource id")
		return
	}

	if _, err := a.repo.ResourceByID(r.Context(), id); err != nil {
		writeDBError(w, err)
		return
	}
	if err := a.repo.BookResource(r.Context(), userID, id, today()); err != nil {
		writeDBError(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

func (a *API) CancelResourceBooking(w http.ResponseWriter, r *http.Request) {
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
	if err := a.repo.CancelResourceBooking(r.Context(), id, userID); err != nil {
		writeDBError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
