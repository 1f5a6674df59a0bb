package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/aarikaaura/storefront/internal/catalog/domain"
	"github.com/aarikaaura/storefront/internal/catalog/usecase/query"
	"github.com/aarikaaura/storefront/pkg/logger"
)

// CatalogHandler handles HTTP requests for the product catalog
type CatalogHandler struct {
	getHandler     *query.GetProductHandler
	listHandler    *query.ListProductsHandler
	relatedHandler *query.RelatedProductsHandler
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(
	getHandler *query.GetProductHandler,
	listHandler *query.ListProductsHandler,
	relatedHandler *query.RelatedProductsHandler,
) *CatalogHandler {
	return &CatalogHandler{
		getHandler:     getHandler,
		listHandler:    listHandler,
		relatedHandler: relatedHandler,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func (h *CatalogHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/products", h.ListProducts).Methods("GET")
	router.HandleFunc("/api/products/{id}", h.GetProduct).Methods("GET")
	router.HandleFunc("/api/products/{id}/related", h.RelatedProducts).Methods("GET")
}

// ListProducts handles GET /api/products
func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	q := query.ListProductsQuery{
		Category: r.URL.Query().Get("category"),
	}

	products, err := h.listHandler.Handle(r.Context(), q)
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list products")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to list products",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data: map[string]interface{}{
			"products": products,
			"total":    len(products),
		},
	})
}

// GetProduct handles GET /api/products/{id}
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	product, err := h.getHandler.Handle(r.Context(), query.GetProductQuery{ID: vars["id"]})
	if errors.Is(err, domain.ErrProductNotFound) {
		respondJSON(w, http.StatusNotFound, Response{
			Success: false,
			Error:   "Product not found",
		})
		return
	}
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    product,
	})
}

// RelatedProducts handles GET /api/products/{id}/related
func (h *CatalogHandler) RelatedProducts(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit <= 0 {
		limit = 4
	}

	related, err := h.relatedHandler.Handle(r.Context(), query.RelatedProductsQuery{
		ProductID: vars["id"],
		Limit:     limit,
	})
	if errors.Is(err, domain.ErrProductNotFound) {
		respondJSON(w, http.StatusNotFound, Response{
			Success: false,
			Error:   "Product not found",
		})
		return
	}
	if err != nil {
		logger.Error(r.Context()).Err(err).Msg("Failed to list related products")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to list related products",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    related,
	})
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
