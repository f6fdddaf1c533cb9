package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/canteen-backend/internal/domain"
	"github.com/heartmarshall/canteen-backend/internal/service/tenancy"
)

type tenantService interface {
	CreateTenant(ctx context.Context, input tenancy.CreateTenantInput) (*domain.Tenant, error)
	ListTenants(ctx context.Context) ([]domain.Tenant, error)
}

// TenantHandler serves the super-admin tenant endpoints.
type TenantHandler struct {
	svc tenantService
	log *slog.Logger
}

// NewTenantHandler creates a TenantHandler.
func NewTenantHandler(svc tenantService, logger *slog.Logger) *TenantHandler {
	return &TenantHandler{svc: svc, log: logger.With("handler", "tenant")}
}

type createTenantRequest struct {
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	Timezone string `json:"timezone"`
}

// Create handles POST /tenants.
func (h *TenantHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createTenantRequest
	if err := decodeJSON(r, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	t, err := h.svc.CreateTenant(r.Context(), tenancy.CreateTenantInput{
		Name:     req.Name,
		Slug:     req.Slug,
		Timezone: req.Timezone,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toTenantResponse(t))
}

// List handles GET /tenants.
func (h *TenantHandler) List(w http.ResponseWriter, r *http.Request) {
	tenants, err := h.svc.ListTenants(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	out := make([]tenantResponse, 0, len(tenants))
	for i := range tenants {
		out = append(out, toTenantResponse(&tenants[i]))
	}
	writeJSON(w, http.StatusOK, out)
}
