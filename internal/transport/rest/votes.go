package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/canteen-backend/internal/domain"
)

type voteService interface {
	CastVote(ctx context.Context, itemID uuid.UUID, value int) (*domain.CastResult, error)
	UpdateVote(ctx context.Context, itemID uuid.UUID, value int) (*domain.CastResult, error)
	GetStats(ctx context.Context, itemID uuid.UUID) (domain.VoteStats, error)
	GetUserVote(ctx context.Context, itemID uuid.UUID) (*int, error)
}

// VoteHandler serves the vote ledger endpoints.
type VoteHandler struct {
	svc voteService
	log *slog.Logger
}

// NewVoteHandler creates a VoteHandler.
func NewVoteHandler(svc voteService, logger *slog.Logger) *VoteHandler {
	return &VoteHandler{svc: svc, log: logger.With("handler", "vote")}
}

type castVoteRequest struct {
	MenuItemID uuid.UUID `json:"menuItemId"`
	Value      *int      `json:"value"`
}

type updateVoteRequest struct {
	Value *int `json:"value"`
}

type userVoteResponse struct {
	MenuItemID string `json:"menuItemId"`
	Value      *int   `json:"value"`
}

// Cast handles POST /votes.
func (h *VoteHandler) Cast(w http.ResponseWriter, r *http.Request) {
	var req castVoteRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if req.Value == nil {
		handleError(h.log, w, r, domain.NewValidationError("value", "required"))
		return
	}
	res, err := h.svc.CastVote(r.Context(), req.MenuItemID, *req.Value)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toVoteResponse(res))
}

// Update handles PATCH /votes/{menuItemId}.
func (h *VoteHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "menuItemId")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	var req updateVoteRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if req.Value == nil {
		handleError(h.log, w, r, domain.NewValidationError("value", "required"))
		return
	}
	res, err := h.svc.UpdateVote(r.Context(), id, *req.Value)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toVoteResponse(res))
}

// Mine handles GET /votes/{menuItemId}. Value is null when the caller has
// not voted.
func (h *VoteHandler) Mine(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "menuItemId")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	v, err := h.svc.GetUserVote(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, userVoteResponse{MenuItemID: id.String(), Value: v})
}

// Stats handles GET /menu-items/{id}/stats.
func (h *VoteHandler) Stats(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	s, err := h.svc.GetStats(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toStatsResponse(s))
}
