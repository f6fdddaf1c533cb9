package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/canteen-backend/internal/domain"
	"github.com/heartmarshall/canteen-backend/internal/service/catalog"
)

type dishService interface {
	CreateDish(ctx context.Context, input catalog.CreateDishInput) (*domain.Dish, error)
	UpdateDish(ctx context.Context, input catalog.UpdateDishInput) (*domain.Dish, error)
	DuplicateDish(ctx context.Context, dishID uuid.UUID) (*domain.Dish, error)
	DeleteDish(ctx context.Context, dishID uuid.UUID) (*catalog.DeleteDishResult, error)
	GetDish(ctx context.Context, dishID uuid.UUID) (*domain.Dish, error)
	ListDishes(ctx context.Context, f domain.DishFilter) ([]domain.Dish, error)
	DishUsage(ctx context.Context, dishID uuid.UUID) (*domain.DishUsage, error)
}

// DishHandler serves the dish catalog endpoints.
type DishHandler struct {
	svc dishService
	log *slog.Logger
}

// NewDishHandler creates a DishHandler.
func NewDishHandler(svc dishService, logger *slog.Logger) *DishHandler {
	return &DishHandler{svc: svc, log: logger.With("handler", "dish")}
}

type dishRequest struct {
	Title       *string  `json:"title"`
	Description *string  `json:"description"`
	ImageRef    *string  `json:"imageRef"`
	Allergens   []string `json:"allergens"`
	Tags        []string `json:"tags"`
}

type deleteDishResponse struct {
	DishID       string `json:"dishId"`
	RemovedItems int    `json:"removedItems"`
	RemovedVotes int    `json:"removedVotes"`
}

// List handles GET /dishes?search=&tag=&limit=&offset=.
func (h *DishHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := domain.DishFilter{Search: q.Get("search"), Tag: q.Get("tag")}
	limit, err := queryInt(r, "limit")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	offset, err := queryInt(r, "offset")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if limit != nil {
		f.Limit = *limit
	}
	if offset != nil {
		f.Offset = *offset
	}

	dishes, err := h.svc.ListDishes(r.Context(), f)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	out := make([]dishResponse, 0, len(dishes))
	for i := range dishes {
		out = append(out, toDishResponse(&dishes[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

// Create handles POST /dishes.
func (h *DishHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dishRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	input := catalog.CreateDishInput{
		Description: req.Description,
		ImageRef:    req.ImageRef,
		Allergens:   req.Allergens,
		Tags:        req.Tags,
	}
	if req.Title != nil {
		input.Title = *req.Title
	}
	dish, err := h.svc.CreateDish(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toDishResponse(dish))
}

// Get handles GET /dishes/{id}.
func (h *DishHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	dish, err := h.svc.GetDish(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toDishResponse(dish))
}

// Update handles PATCH /dishes/{id}. Absent fields are left unchanged.
func (h *DishHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req dishRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	dish, err := h.svc.UpdateDish(r.Context(), catalog.UpdateDishInput{
		DishID:      id,
		Title:       req.Title,
		Description: req.Description,
		ImageRef:    req.ImageRef,
		Allergens:   req.Allergens,
		Tags:        req.Tags,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toDishResponse(dish))
}

// Duplicate handles POST /dishes/{id}/duplicate.
func (h *DishHandler) Duplicate(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	dish, err := h.svc.DuplicateDish(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toDishResponse(dish))
}

// Delete handles DELETE /dishes/{id}.
func (h *DishHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	res, err := h.svc.DeleteDish(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, deleteDishResponse{
		DishID:       res.DishID.String(),
		RemovedItems: res.RemovedItems,
		RemovedVotes: res.RemovedVotes,
	})
}

// Usage handles GET /dishes/{id}/usage, the pre-delete warning.
func (h *DishHandler) Usage(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	u, err := h.svc.DishUsage(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toDishUsageResponse(u))
}
