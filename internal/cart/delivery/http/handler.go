package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"

	catalogdomain "github.com/aarikaaura/storefront/internal/catalog/domain"
	"github.com/aarikaaura/storefront/internal/cart/domain"
	"github.com/aarikaaura/storefront/internal/cart/usecase/command"
	"github.com/aarikaaura/storefront/internal/cart/usecase/query"
	"github.com/aarikaaura/storefront/internal/middleware"
	"github.com/aarikaaura/storefront/internal/notification"
	"github.com/aarikaaura/storefront/pkg/logger"
)

// CartHandler handles HTTP requests for the cart using CQRS pattern
type CartHandler struct {
	// Command handlers
	addHandler         *command.AddItemHandler
	removeHandler      *command.RemoveItemHandler
	setQuantityHandler *command.SetQuantityHandler
	clearHandler       *command.ClearCartHandler

	// Query handlers
	getCartHandler *query.GetCartHandler

	notifier *notification.Emitter

	requestCounter *prometheus.CounterVec
	requestLatency *prometheus.HistogramVec
	itemsAdded     prometheus.Counter
}

// NewCartHandler creates a new cart handler
func NewCartHandler(
	addHandler *command.AddItemHandler,
	removeHandler *command.RemoveItemHandler,
	setQuantityHandler *command.SetQuantityHandler,
	clearHandler *command.ClearCartHandler,
	getCartHandler *query.GetCartHandler,
	notifier *notification.Emitter,
) *CartHandler {
	requestCounter := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_service_requests_total",
			Help: "Total number of cart HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	requestLatency := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "cart_service_request_duration_seconds",
			Help:    "Cart HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "endpoint"},
	)

	itemsAdded := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "cart_service_items_added_total",
			Help: "Total number of items added to carts",
		},
	)

	prometheus.MustRegister(requestCounter)
	prometheus.MustRegister(requestLatency)
	prometheus.MustRegister(itemsAdded)

	return &CartHandler{
		addHandler:         addHandler,
		removeHandler:      removeHandler,
		setQuantityHandler: setQuantityHandler,
		clearHandler:       clearHandler,
		getCartHandler:     getCartHandler,
		notifier:           notifier,
		requestCounter:     requestCounter,
		requestLatency:     requestLatency,
		itemsAdded:         itemsAdded,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// responseWriter wraps http.ResponseWriter to capture status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// metricsMiddleware wraps handlers with Prometheus metrics
func (h *CartHandler) metricsMiddleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		h.requestCounter.WithLabelValues(r.Method, endpoint, strconv.Itoa(rw.statusCode)).Inc()
		h.requestLatency.WithLabelValues(r.Method, endpoint).Observe(duration)
	}
}

func (h *CartHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/cart", h.metricsMiddleware("/api/cart", h.GetCart)).Methods("GET")
	router.HandleFunc("/api/cart", h.metricsMiddleware("/api/cart", h.ClearCart)).Methods("DELETE")
	router.HandleFunc("/api/cart/items", h.metricsMiddleware("/api/cart/items", h.AddItem)).Methods("POST")
	router.HandleFunc("/api/cart/items", h.metricsMiddleware("/api/cart/items", h.SetQuantity)).Methods("PATCH")
	router.HandleFunc("/api/cart/items/{id}", h.metricsMiddleware("/api/cart/items/{id}", h.RemoveItem)).Methods("DELETE")
}

// GetCart handles GET /api/cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	view, err := h.getCartHandler.Handle(r.Context(), query.GetCartQuery{
		SessionID: middleware.SessionID(r),
	})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to load cart")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to load cart",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    view,
	})
}

// AddItem handles POST /api/cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID string `json:"product_id"`
		Size      string `json:"size"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	sessionID := middleware.SessionID(r)
	cart, err := h.addHandler.Handle(r.Context(), command.AddItemCommand{
		SessionID: sessionID,
		ProductID: req.ProductID,
		Size:      req.Size,
	})
	if errors.Is(err, catalogdomain.ErrProductNotFound) {
		respondJSON(w, http.StatusNotFound, Response{
			Success: false,
			Error:   "Product not found",
		})
		return
	}
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to add cart item")
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	h.itemsAdded.Inc()
	h.notifier.Emit(sessionID, "Added to cart!", notification.CategoryCart)

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Item added to cart",
		Data:    cart,
	})
}

// SetQuantity handles PATCH /api/cart/items
func (h *CartHandler) SetQuantity(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID string `json:"product_id"`
		Size      string `json:"size"`
		Quantity  int    `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	cart, err := h.setQuantityHandler.Handle(r.Context(), command.SetQuantityCommand{
		SessionID: middleware.SessionID(r),
		ProductID: req.ProductID,
		Size:      req.Size,
		Quantity:  req.Quantity,
	})
	if errors.Is(err, domain.ErrInvalidQuantity) || errors.Is(err, domain.ErrLineNotFound) {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to update cart quantity")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to update quantity",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Quantity updated",
		Data:    cart,
	})
}

// RemoveItem handles DELETE /api/cart/items/{id}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sessionID := middleware.SessionID(r)

	cart, err := h.removeHandler.Handle(r.Context(), command.RemoveItemCommand{
		SessionID: sessionID,
		ProductID: vars["id"],
		Size:      r.URL.Query().Get("size"),
	})
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to remove cart item")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to remove item",
		})
		return
	}

	h.notifier.Emit(sessionID, "Removed from cart", notification.CategoryCart)

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Item removed",
		Data:    cart,
	})
}

// ClearCart handles DELETE /api/cart
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	if err := h.clearHandler.Handle(r.Context(), command.ClearCartCommand{
		SessionID: middleware.SessionID(r),
	}); err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to clear cart")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to clear cart",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Cart cleared",
	})
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
