package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/aarikaaura/storefront/internal/contact"
	"github.com/aarikaaura/storefront/internal/contact/domain"
	"github.com/aarikaaura/storefront/pkg/logger"
)

// ContactHandler handles HTTP requests for the contact form
type ContactHandler struct {
	relay *contact.Relay
}

func NewContactHandler(relay *contact.Relay) *ContactHandler {
	return &ContactHandler{relay: relay}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func (h *ContactHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/contact", h.Submit).Methods("POST")
}

// Submit handles POST /api/contact
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var msg domain.Message
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	err := h.relay.Submit(r.Context(), msg)

	var validation *domain.ValidationError
	if errors.As(err, &validation) {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   validation.Error(),
			Data:    map[string]string{"field": validation.Field},
		})
		return
	}

	var dispatch *domain.DispatchError
	if errors.As(err, &dispatch) {
		logger.Error(r.Context()).Err(err).Str("reason", string(dispatch.Reason)).Msg("Contact dispatch failed")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   dispatch.Reason.Message(),
		})
		return
	}
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Contact submission failed")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to send message. Please try again later.",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Message sent successfully! We'll get back to you soon.",
	})
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
