package middleware

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/heartmarshall/canteen-backend/internal/domain"
	"github.com/heartmarshall/canteen-backend/pkg/ctxutil"
)

// Request headers understood by Scope.
const (
	TenantHeader   = "X-Tenant-ID"
	EditModeHeader = "X-Edit-Mode"
)

type tenantResolver interface {
	Resolve(ctx context.Context, p domain.Principal, hint string) (uuid.UUID, error)
}

// Scope resolves the tenant a request operates on and records whether it
// asserts edit mode. A super-admin without a tenant hint continues unscoped;
// tenant-bound operations then fail with ErrMissingScope.
func Scope(resolver tenantResolver) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := ctxutil.WithEditMode(r.Context(), editMode(r))

			p, ok := ctxutil.PrincipalFromCtx(ctx)
			if !ok {
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			hint := r.Header.Get(TenantHeader)
			if hint == "" {
				hint = r.URL.Query().Get("tenantId")
			}

			tenantID, err := resolver.Resolve(ctx, p, hint)
			switch {
			case err == nil:
				ctx = ctxutil.WithTenantID(ctx, tenantID)
			case errors.Is(err, domain.ErrMissingScope):
			case errors.Is(err, domain.ErrValidation):
				writeError(w, http.StatusBadRequest, "VALIDATION", "invalid tenant id")
				return
			case errors.Is(err, domain.ErrNotFound):
				writeError(w, http.StatusNotFound, "NOT_FOUND", "tenant not found")
				return
			case errors.Is(err, domain.ErrUnauthorized):
				writeError(w, http.StatusUnauthorized, "UNAUTHORIZED", "principal has no tenant")
				return
			default:
				writeError(w, http.StatusInternalServerError, "INTERNAL", "internal server error")
				return
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func editMode(r *http.Request) bool {
	v := r.Header.Get(EditModeHeader)
	if v == "" {
		v = r.URL.Query().Get("editMode")
	}
	on, _ := strconv.ParseBool(v)
	return on
}
