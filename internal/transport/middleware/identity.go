package middleware

import (
	"context"
	"net/http"

	"github.com/heartmarshall/canteen-backend/pkg/ctxutil"
)

type identityKey struct{}

// requestIdentity lets the outer Logger see who a request was for once the
// inner Auth and Scope middleware have run.
type requestIdentity struct {
	userID   string
	tenantID string
}

func withIdentity(ctx context.Context, ids *requestIdentity) context.Context {
	return context.WithValue(ctx, identityKey{}, ids)
}

// Identify copies the principal and tenant scope into the slot created by
// Logger. It must run after Scope.
func Identify(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ids, ok := r.Context().Value(identityKey{}).(*requestIdentity); ok {
			if uid, ok := ctxutil.UserIDFromCtx(r.Context()); ok {
				ids.userID = uid.String()
			}
			if tid, ok := ctxutil.TenantIDFromCtx(r.Context()); ok {
				ids.tenantID = tid.String()
			}
		}
		next.ServeHTTP(w, r)
	})
}
