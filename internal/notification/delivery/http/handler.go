package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/aarikaaura/storefront/internal/middleware"
	"github.com/aarikaaura/storefront/internal/notification"
)

// NotificationHandler exposes the active notifications for a session.
type NotificationHandler struct {
	emitter *notification.Emitter
}

func NewNotificationHandler(emitter *notification.Emitter) *NotificationHandler {
	return &NotificationHandler{emitter: emitter}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func (h *NotificationHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/notifications", h.ListActive).Methods("GET")
	router.HandleFunc("/api/notifications/{id}/dismiss", h.Dismiss).Methods("POST")
}

// ListActive handles GET /api/notifications
func (h *NotificationHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	active := h.emitter.Active(middleware.SessionID(r))
	if active == nil {
		active = []notification.Notification{}
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    active,
	})
}

// Dismiss handles POST /api/notifications/{id}/dismiss
func (h *NotificationHandler) Dismiss(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	dismissed := h.emitter.Dismiss(middleware.SessionID(r), vars["id"])

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    map[string]bool{"dismissed": dismissed},
	})
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
