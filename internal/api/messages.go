package api

import (
	"encoding/json"
	"net/http"
	"strings"
)

// Inbox lists the caller's conversations and system reminders, with an
// optional recipient search.
func (a *API) Inbox(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	conversations, err := a.repo.Inbox(r.Context(), userID)
	if err != nil {
		writeDBError(w, err)
		return
	}
	systemMessages, err := a.repo.SystemMessages(r.Context(), userID)
	if err != nil {
		writeDBError(w, err)
		return
	}

	resp := InboxResponse{
		Conversations:  conversations,
		SystemMessages: systemMessages,
	}
	if query := strings.TrimSpace(r.URL.Query().Get("search_recipient")); query != "" {
		recipients, err := a.repo.SearchUsers(r.Context(), query, searchLimit)
		if err != nil {
			writeDBError(w, err)
			return
		}
		resp.Recipients = recipients
	}
	writeJSON(w, http.StatusOK, resp)
}

// Conversation returns the full exchange between the caller and another
// member.
func (a *API) Conversation(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	partnerID, err := urlID(r, "user_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id")
		return
	}

	partner, err := a.repo.UserByID(r.Context(), partnerID)
	if err != nil {
		writeDBError(w, err)
		return
	}
	messages, err := a.repo.Conversation(r.Context(), userID, partnerID)
	if err != nil {
		writeDBError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ConversationResponse{Messages: messages, Partner: *partner})
}

// SendMessage delivers a direct message to another member.
func (a *API) SendMessage(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}
	receiverID, err := urlID(r, "user_id")
	if err != nil || receiverID <= 0 {
		writeError(w, http.StatusBadRequest, "invalid recipient id")
		return
	}

	var req SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Content) == "" {
		writeError(w, http.StatusBadRequest, "message content cannot be empty")
		return
	}

	if _, err := a.repo.UserByID(r.Context(), receiverID); err != nil {
		writeDBError(w, err)
		return
	}
	if err := a.repo.SendMessage(r.Context(), userID, receiverID, req.Content); err != nil {
		writeDBError(w, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}
