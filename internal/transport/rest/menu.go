package rest

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/canteen-backend/internal/domain"
	"github.com/heartmarshall/canteen-backend/internal/service/menu"
	"github.com/heartmarshall/canteen-backend/internal/transport/dataloader"
)

type menuService interface {
	CreateWeek(ctx context.Context, input menu.CreateWeekInput) (*domain.WeekMenu, error)
	CopyWeek(ctx context.Context, input menu.CopyWeekInput) (*domain.WeekMenu, error)
	Publish(ctx context.Context, weekID uuid.UUID) (*domain.PublishResult, error)
	Archive(ctx context.Context, weekID uuid.UUID) (*domain.WeekMenu, error)
	Restore(ctx context.Context, weekID uuid.UUID) (*domain.WeekMenu, error)
	SetDayOpen(ctx context.Context, input menu.SetDayOpenInput) (*domain.MenuDay, error)
	AddItem(ctx context.Context, input menu.AddItemInput) (*domain.MenuItem, error)
	UpdateItem(ctx context.Context, input menu.UpdateItemInput) (*domain.MenuItem, error)
	ReorderItems(ctx context.Context, input menu.ReorderItemsInput) ([]domain.MenuItem, error)
	RemoveItem(ctx context.Context, itemID uuid.UUID) (*domain.RemoveItemResult, error)
	GetWeek(ctx context.Context, weekID uuid.UUID) (*domain.WeekMenu, error)
	ListWeeks(ctx context.Context, year *int) ([]domain.WeekMenu, error)
	GetToday(ctx context.Context) (*domain.MenuDay, error)
	GetHistory(ctx context.Context, weekID uuid.UUID) ([]domain.AuditRecord, error)
}

// MenuHandler serves week, day and item endpoints.
type MenuHandler struct {
	svc menuService
	log *slog.Logger
}

// NewMenuHandler creates a MenuHandler.
func NewMenuHandler(svc menuService, logger *slog.Logger) *MenuHandler {
	return &MenuHandler{svc: svc, log: logger.With("handler", "menu")}
}

type weekRequest struct {
	Year    int `json:"year"`
	ISOWeek int `json:"isoWeek"`
}

type dayOpenRequest struct {
	IsOpen *bool   `json:"isOpen"`
	Notes  *string `json:"notes"`
}

type addItemRequest struct {
	MenuDayID uuid.UUID           `json:"menuDayId"`
	DishID    uuid.UUID           `json:"dishId"`
	Price     int                 `json:"price"`
	Category  domain.ItemCategory `json:"category"`
}

type updateItemRequest struct {
	Price     *int                 `json:"price"`
	Category  *domain.ItemCategory `json:"category"`
	Status    *domain.ItemStatus   `json:"status"`
	SortOrder *int                 `json:"sortOrder"`
}

type reorderRequest struct {
	ItemIDs []uuid.UUID `json:"itemIds"`
}

type removeItemResponse struct {
	ItemID       string `json:"itemId"`
	RemovedVotes int    `json:"removedVotes"`
}

// ListWeeks handles GET /weeks?year=.
func (h *MenuHandler) ListWeeks(w http.ResponseWriter, r *http.Request) {
	year, err := queryInt(r, "year")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	weeks, err := h.svc.ListWeeks(r.Context(), year)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	out := make([]weekResponse, 0, len(weeks))
	for i := range weeks {
		out = append(out, toWeekResponse(&weeks[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

// GetWeek handles GET /weeks/{id}: the full tree with dishes, stats and the
// caller's own votes.
func (h *MenuHandler) GetWeek(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	week, err := h.svc.GetWeek(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	resp := toWeekResponse(week)
	var items []*itemResponse
	for d := range resp.Days {
		for i := range resp.Days[d].Items {
			items = append(items, &resp.Days[d].Items[i])
		}
	}
	if err := attachVotes(r.Context(), items); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// Today handles GET /menu/today.
func (h *MenuHandler) Today(w http.ResponseWriter, r *http.Request) {
	day, err := h.svc.GetToday(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	resp := toDayResponse(day)
	items := make([]*itemResponse, 0, len(resp.Items))
	for i := range resp.Items {
		items = append(items, &resp.Items[i])
	}
	if err := attachVotes(r.Context(), items); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// CreateWeek handles POST /weeks.
func (h *MenuHandler) CreateWeek(w http.ResponseWriter, r *http.Request) {
	var req weekRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	week, err := h.svc.CreateWeek(r.Context(), menu.CreateWeekInput{Year: req.Year, ISOWeek: req.ISOWeek})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toWeekResponse(week))
}

// CopyWeek handles POST /weeks/{id}/copy with the target week in the body.
func (h *MenuHandler) CopyWeek(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req weekRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	week, err := h.svc.CopyWeek(r.Context(), menu.CopyWeekInput{
		SourceID:      id,
		TargetYear:    req.Year,
		TargetISOWeek: req.ISOWeek,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toWeekResponse(week))
}

// Publish handles POST /weeks/{id}/publish.
func (h *MenuHandler) Publish(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	res, err := h.svc.Publish(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	resp := toWeekResponse(res.Week)
	resp.Warnings = res.Warnings()
	writeJSON(w, http.StatusOK, resp)
}

// Archive handles POST /weeks/{id}/archive.
func (h *MenuHandler) Archive(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.svc.Archive)
}

// Restore handles POST /weeks/{id}/restore.
func (h *MenuHandler) Restore(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.svc.Restore)
}

func (h *MenuHandler) transition(w http.ResponseWriter, r *http.Request, fn func(context.Context, uuid.UUID) (*domain.WeekMenu, error)) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	week, err := fn(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toWeekResponse(week))
}

// History handles GET /weeks/{id}/history.
func (h *MenuHandler) History(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	records, err := h.svc.GetHistory(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	out := make([]auditResponse, 0, len(records))
	for i := range records {
		out = append(out, toAuditResponse(&records[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

// SetDayOpen handles PATCH /days/{id}.
func (h *MenuHandler) SetDayOpen(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req dayOpenRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if req.IsOpen == nil {
		handleError(h.log, w, r, domain.NewValidationError("isOpen", "required"))
		return
	}
	day, err := h.svc.SetDayOpen(r.Context(), menu.SetDayOpenInput{DayID: id, IsOpen: *req.IsOpen, Notes: req.Notes})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toDayResponse(day))
}

// ReorderItems handles PUT /days/{id}/order.
func (h *MenuHandler) ReorderItems(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req reorderRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	items, err := h.svc.ReorderItems(r.Context(), menu.ReorderItemsInput{DayID: id, ItemIDs: req.ItemIDs})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	out := make([]itemResponse, 0, len(items))
	for i := range items {
		out = append(out, toItemResponse(&items[i]))
	}
	writeJSON(w, http.StatusOK, out)
}

// AddItem handles POST /items.
func (h *MenuHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	item, err := h.svc.AddItem(r.Context(), menu.AddItemInput{
		DayID:    req.MenuDayID,
		DishID:   req.DishID,
		Price:    req.Price,
		Category: req.Category,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toItemResponse(item))
}

// UpdateItem handles PATCH /items/{id}.
func (h *MenuHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req updateItemRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	item, err := h.svc.UpdateItem(r.Context(), menu.UpdateItemInput{
		ItemID:    id,
		Price:     req.Price,
		Category:  req.Category,
		Status:    req.Status,
		SortOrder: req.SortOrder,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toItemResponse(item))
}

// RemoveItem handles DELETE /items/{id}.
func (h *MenuHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	res, err := h.svc.RemoveItem(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, removeItemResponse{ItemID: res.ItemID.String(), RemovedVotes: res.RemovedVotes})
}

// attachVotes fills stats and myVote on every item through the request's
// loaders, so a week view costs two vote queries regardless of size.
func attachVotes(ctx context.Context, items []*itemResponse) error {
	if len(items) == 0 {
		return nil
	}
	ids := make([]uuid.UUID, len(items))
	for i, it := range items {
		id, err := uuid.Parse(it.ID)
		if err != nil {
			return fmt.Errorf("item id: %w", err)
		}
		ids[i] = id
	}

	l := dataloader.FromContext(ctx)
	statsThunk := l.StatsByItemID.LoadMany(ctx, ids)
	votesThunk := l.UserVoteByItemID.LoadMany(ctx, ids)

	stats, errs := statsThunk()
	if err := firstError(errs); err != nil {
		return fmt.Errorf("load stats: %w", err)
	}
	votes, errs := votesThunk()
	if err := firstError(errs); err != nil {
		return fmt.Errorf("load user votes: %w", err)
	}

	for i, it := range items {
		s := toStatsResponse(stats[i])
		s.MenuItemID = it.ID
		it.Stats = &s
		it.MyVote = votes[i]
	}
	return nil
}

func firstError(errs []error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
