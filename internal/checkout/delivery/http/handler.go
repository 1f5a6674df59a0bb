package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/aarikaaura/storefront/internal/checkout"
	"github.com/aarikaaura/storefront/internal/checkout/domain"
	"github.com/aarikaaura/storefront/internal/middleware"
	"github.com/aarikaaura/storefront/pkg/logger"
)

// CheckoutHandler handles HTTP requests for the checkout flow
type CheckoutHandler struct {
	service *checkout.Service
}

func NewCheckoutHandler(service *checkout.Service) *CheckoutHandler {
	return &CheckoutHandler{service: service}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func (h *CheckoutHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/checkout", h.Status).Methods("GET")
	router.HandleFunc("/api/checkout/shipping", h.UpdateShipping).Methods("PUT")
	router.HandleFunc("/api/checkout/payment", h.UpdatePayment).Methods("PUT")
	router.HandleFunc("/api/checkout/next", h.Advance).Methods("POST")
	router.HandleFunc("/api/checkout/back", h.Back).Methods("POST")
	router.HandleFunc("/api/checkout/order", h.PlaceOrder).Methods("POST")
}

// Status handles GET /api/checkout
func (h *CheckoutHandler) Status(w http.ResponseWriter, r *http.Request) {
	status, err := h.service.Status(r.Context(), middleware.SessionID(r))
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to load checkout status")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to load checkout status",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    status,
	})
}

// UpdateShipping handles PUT /api/checkout/shipping
func (h *CheckoutHandler) UpdateShipping(w http.ResponseWriter, r *http.Request) {
	var draft domain.ShippingDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	if err := h.service.UpdateShipping(r.Context(), middleware.SessionID(r), draft); err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to save shipping draft")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to save shipping details",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Shipping details saved",
	})
}

// UpdatePayment handles PUT /api/checkout/payment
func (h *CheckoutHandler) UpdatePayment(w http.ResponseWriter, r *http.Request) {
	var draft domain.PaymentDraft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	h.service.UpdatePayment(middleware.SessionID(r), draft)

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Payment details updated",
	})
}

// Advance handles POST /api/checkout/next
func (h *CheckoutHandler) Advance(w http.ResponseWriter, r *http.Request) {
	step, err := h.service.Advance(r.Context(), middleware.SessionID(r))

	var missing *domain.MissingFieldsError
	if errors.As(err, &missing) {
		respondJSON(w, http.StatusUnprocessableEntity, Response{
			Success: false,
			Error:   missing.Error(),
			Data: map[string]interface{}{
				"step":           missing.Step,
				"missing_fields": missing.Fields,
			},
		})
		return
	}
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to advance checkout")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to advance checkout",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"step":      step,
			"step_name": step.String(),
		},
	})
}

// Back handles POST /api/checkout/back
func (h *CheckoutHandler) Back(w http.ResponseWriter, r *http.Request) {
	step := h.service.Back(middleware.SessionID(r))

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"step":      step,
			"step_name": step.String(),
		},
	})
}

// PlaceOrder handles POST /api/checkout/order
func (h *CheckoutHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	orderID, err := h.service.PlaceOrder(r.Context(), middleware.SessionID(r))
	if errors.Is(err, domain.ErrOrderCompleted) {
		respondJSON(w, http.StatusConflict, Response{
			Success: false,
			Error:   "Order has already been placed",
		})
		return
	}
	if errors.Is(err, domain.ErrEmptyCart) {
		respondJSON(w, http.StatusUnprocessableEntity, Response{
			Success: false,
			Error:   "Cart is empty",
		})
		return
	}
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to place order")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to place order",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Order placed successfully",
		Data:    map[string]string{"order_id": orderID},
	})
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
