package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/yourorg/unihaven/internal/domain"
	"github.com/yourorg/unihaven/internal/service"
	"github.com/yourorg/unihaven/pkg/cache"
)

const publishedCacheKey = "listing:published"

// ListingHandler handles listing and unit endpoints
type ListingHandler struct {
	listingService *service.ListingService
	cache          *cache.Cache
	cacheTTL       time.Duration
	logger         *slog.Logger
}

// NewListingHandler creates a new listing handler
func NewListingHandler(listingService *service.ListingService, c *cache.Cache, cacheTTL time.Duration, logger *slog.Logger) *ListingHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ListingHandler{
		listingService: listingService,
		cache:          c,
		cacheTTL:       cacheTTL,
		logger:         logger,
	}
}

// CreateListingRequest represents the listing creation payload
type CreateListingRequest struct {
	ID          string   `json:"id"`
	OwnerID     string   `json:"ownerId"`
	UnitID      string   `json:"unitId"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	MinStay     int      `json:"minStay"`
	MaxStay     int      `json:"maxStay"`
	Images      []string `json:"images"`
}

// Create handles POST /api/listings
func (h *ListingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateListingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if req.ID == "" || req.OwnerID == "" || req.UnitID == "" {
		writeError(w, http.StatusBadRequest, "id, ownerId, and unitId are required")
		return
	}

	listing, err := h.listingService.Create(req.ID, req.OwnerID, req.UnitID, service.ListingData{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		MinStay:     req.MinStay,
		MaxStay:     req.MaxStay,
		Images:      req.Images,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, listing)
}

// Transition handles POST /api/listings/{id}/{action} for publish and hide
func (h *ListingHandler) Transition(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	action := r.PathValue("action")
	if id == "" {
		writeError(w, http.StatusBadRequest, "listing id required")
		return
	}

	var err error
	switch action {
	case "publish":
		err = h.listingService.Publish(id)
	case "hide":
		err = h.listingService.Hide(id)
	default:
		writeError(w, http.StatusBadRequest, fmt.Sprintf("unknown action %q", action))
		return
	}
	if err != nil {
		writeServiceError(w, err)
		return
	}

	h.cache.Delete(publishedCacheKey)
	writeJSON(w, http.StatusOK, map[string]string{"status": action})
}

// Delete handles DELETE /api/listings/{id}
func (h *ListingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "listing id required")
		return
	}
	if err := h.listingService.Delete(id); err != nil {
		writeServiceError(w, err)
		return
	}
	h.cache.Delete(publishedCacheKey)
	w.WriteHeader(http.StatusNoContent)
}

// EditListingRequest carries a partial edit; absent fields stay untouched
type EditListingRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	MinStay     *int     `json:"minStay"`
	MaxStay     *int     `json:"maxStay"`
	Images      []string `json:"images"`
}

// Edit handles PATCH /api/listings/{id}
func (h *ListingHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "listing id required")
		return
	}

	var req EditListingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}

	listing, err := h.listingService.Edit(id, domain.ListingUpdate{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		MinStay:     req.MinStay,
		MaxStay:     req.MaxStay,
		Images:      req.Images,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	h.cache.Delete(publishedCacheKey)
	writeJSON(w, http.StatusOK, listing)
}

// Get handles GET /api/listings/{id}
func (h *ListingHandler) Get(w http.ResponseWriter, r *http.Request) {
	listing, err := h.listingService.Get(r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listing)
}

// ListAll handles GET /api/listings
func (h *ListingHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	listings, err := h.listingService.FindAll()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, listings)
}

// ListPublished handles GET /api/listings/published. The browse result is
// cached briefly; transitions and edits invalidate it.
func (h *ListingHandler) ListPublished(w http.ResponseWriter, r *http.Request) {
	if cached, ok := h.cache.Get(publishedCacheKey); ok {
		writeJSON(w, http.StatusOK, cached)
		return
	}

	listings, err := h.listingService.FindPublished()
	if err != nil {
		writeServiceError(w, err)
		return
	}
	h.cache.Set(publishedCacheKey, listings, h.cacheTTL)
	writeJSON(w, http.StatusOK, listings)
}

// CreateUnitRequest represents the unit registration payload
type CreateUnitRequest struct {
	ID           string  `json:"id"`
	Address      string  `json:"address"`
	Rooms        int     `json:"rooms"`
	Floor        int     `json:"floor"`
	SquareMeters float64 `json:"squareMeters"`
	Available    bool    `json:"available"`
}

// CreateUnit handles POST /api/units
func (h *ListingHandler) CreateUnit(w http.ResponseWriter, r *http.Request) {
	var req CreateUnitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request")
		return
	}
	if req.ID == "" {
		writeError(w, http.StatusBadRequest, "unit id required")
		return
	}

	unit := &domain.Unit{
		ID:           req.ID,
		Address:      req.Address,
		Rooms:        req.Rooms,
		Floor:        req.Floor,
		SquareMeters: req.SquareMeters,
		Available:    req.Available,
	}
	if err := h.listingService.AddUnit(unit); err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, unit)
}

// GetUnit handles GET /api/units/{id}
func (h *ListingHandler) GetUnit(w http.ResponseWriter, r *http.Request) {
	unit, err := h.listingService.GetUnit(r.PathValue("id"))
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, unit)
}
