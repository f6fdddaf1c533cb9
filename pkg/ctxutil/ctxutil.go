package ctxutil

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/canteen-backend/internal/domain"
)

type ctxKey string

const (
	userIDKey    ctxKey = "user_id"
	principalKey ctxKey = "principal"
	tenantIDKey  ctxKey = "tenant_id"
	editModeKey  ctxKey = "edit_mode"
	requestIDKey ctxKey = "request_id"
)

// WithPrincipal stores the authenticated principal and its user ID in the context.
func WithPrincipal(ctx context.Context, p domain.Principal) context.Context {
	ctx = context.WithValue(ctx, principalKey, p)
	return WithUserID(ctx, p.UserID)
}

// PrincipalFromCtx extracts the principal from the context.
func PrincipalFromCtx(ctx context.Context) (domain.Principal, bool) {
	p, ok := ctx.Value(principalKey).(domain.Principal)
	if !ok || p.UserID == uuid.Nil {
		return domain.Principal{}, false
	}
	return p, true
}

// IsAdminCtx reports whether the request principal has an admin role.
func IsAdminCtx(ctx context.Context) bool {
	p, ok := PrincipalFromCtx(ctx)
	return ok && p.IsAdmin()
}

// WithUserID stores the user ID in the context.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey, id)
}

// UserIDFromCtx extracts the user ID from the context.
// Returns uuid.Nil and false if the value is missing, nil UUID, or wrong type.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// WithTenantID stores the resolved tenant scope in the context.
func WithTenantID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, tenantIDKey, id)
}

// TenantIDFromCtx extracts the resolved tenant scope.
// Returns uuid.Nil and false if the request was never scoped.
func TenantIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(tenantIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// WithEditMode marks the request as asserting edit mode on published menus.
func WithEditMode(ctx context.Context, on bool) context.Context {
	return context.WithValue(ctx, editModeKey, on)
}

// EditModeFromCtx reports whether the request asserted edit mode.
func EditModeFromCtx(ctx context.Context) bool {
	on, _ := ctx.Value(editModeKey).(bool)
	return on
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
