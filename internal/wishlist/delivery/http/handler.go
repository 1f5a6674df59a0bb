package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	catalogdomain "github.com/aarikaaura/storefront/internal/catalog/domain"
	"github.com/aarikaaura/storefront/internal/middleware"
	"github.com/aarikaaura/storefront/internal/notification"
	"github.com/aarikaaura/storefront/internal/wishlist/domain"
	"github.com/aarikaaura/storefront/pkg/logger"
)

// WishlistHandler handles HTTP requests for the wishlist
type WishlistHandler struct {
	wishlist domain.Repository
	catalog  catalogdomain.Repository
	notifier *notification.Emitter
}

func NewWishlistHandler(wishlist domain.Repository, catalog catalogdomain.Repository, notifier *notification.Emitter) *WishlistHandler {
	return &WishlistHandler{
		wishlist: wishlist,
		catalog:  catalog,
		notifier: notifier,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// WishlistView is the wishlist payload with derived aggregates.
type WishlistView struct {
	Items      []domain.Entry `json:"items"`
	Count      int            `json:"count"`
	TotalValue float64        `json:"totalValue"`
}

func (h *WishlistHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/wishlist", h.GetWishlist).Methods("GET")
	router.HandleFunc("/api/wishlist", h.ClearWishlist).Methods("DELETE")
	router.HandleFunc("/api/wishlist/items", h.AddItem).Methods("POST")
	router.HandleFunc("/api/wishlist/items/{id}", h.Contains).Methods("GET")
	router.HandleFunc("/api/wishlist/items/{id}", h.RemoveItem).Methods("DELETE")
}

// GetWishlist handles GET /api/wishlist
func (h *WishlistHandler) GetWishlist(w http.ResponseWriter, r *http.Request) {
	sessionID := middleware.SessionID(r)
	items := h.wishlist.List(sessionID)
	if items == nil {
		items = []domain.Entry{}
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: WishlistView{
			Items:      items,
			Count:      h.wishlist.Count(sessionID),
			TotalValue: h.wishlist.TotalValue(sessionID),
		},
	})
}

// AddItem handles POST /api/wishlist/items
func (h *WishlistHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID string `json:"product_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ProductID == "" {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	product, err := h.catalog.FindByID(r.Context(), req.ProductID)
	if errors.Is(err, catalogdomain.ErrProductNotFound) {
		respondJSON(w, http.StatusNotFound, Response{
			Success: false,
			Error:   "Product not found",
		})
		return
	}
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to resolve product for wishlist")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to add to wishlist",
		})
		return
	}

	sessionID := middleware.SessionID(r)
	added := h.wishlist.Add(sessionID, *product)
	if added {
		h.notifier.Emit(sessionID, "Added to wishlist!", notification.CategoryWishlist)
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Item added to wishlist",
		Data: map[string]interface{}{
			"added": added,
			"count": h.wishlist.Count(sessionID),
		},
	})
}

// Contains handles GET /api/wishlist/items/{id}
func (h *WishlistHandler) Contains(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	contains := h.wishlist.Contains(middleware.SessionID(r), vars["id"])

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    map[string]bool{"contains": contains},
	})
}

// RemoveItem handles DELETE /api/wishlist/items/{id}
func (h *WishlistHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sessionID := middleware.SessionID(r)

	removed := h.wishlist.Remove(sessionID, vars["id"])
	if removed {
		h.notifier.Emit(sessionID, "Removed from wishlist", notification.CategoryWishlist)
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Item removed",
		Data: map[string]interface{}{
			"removed": removed,
			"count":   h.wishlist.Count(sessionID),
		},
	})
}

// ClearWishlist handles DELETE /api/wishlist
func (h *WishlistHandler) ClearWishlist(w http.ResponseWriter, r *http.Request) {
	h.wishlist.Clear(middleware.SessionID(r))

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Wishlist cleared",
	})
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
