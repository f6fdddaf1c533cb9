package rest

import (
	"net/http"

	"github.com/heartmarshall/canteen-backend/internal/transport/middleware"
)

// Handlers groups the route handlers served by NewRouter.
type Handlers struct {
	Health  *HealthHandler
	Tenants *TenantHandler
	Dishes  *DishHandler
	Menu    *MenuHandler
	Votes   *VoteHandler
}

// NewRouter registers every route and wraps the mux in mws, outermost first.
// Probe endpoints are public; everything else requires an authenticated
// principal. Role and tenant checks live in the services.
func NewRouter(h Handlers, mws ...middleware.Middleware) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	auth := func(pattern string, fn http.HandlerFunc) {
		mux.Handle(pattern, middleware.RequireAuth(fn))
	}

	auth("POST /tenants", h.Tenants.Create)
	auth("GET /tenants", h.Tenants.List)

	auth("GET /dishes", h.Dishes.List)
	auth("POST /dishes", h.Dishes.Create)
	auth("GET /dishes/{id}", h.Dishes.Get)
	auth("PATCH /dishes/{id}", h.Dishes.Update)
	auth("DELETE /dishes/{id}", h.Dishes.Delete)
	auth("POST /dishes/{id}/duplicate", h.Dishes.Duplicate)
	auth("GET /dishes/{id}/usage", h.Dishes.Usage)

	auth("GET /weeks", h.Menu.ListWeeks)
	auth("POST /weeks", h.Menu.CreateWeek)
	auth("GET /weeks/{id}", h.Menu.GetWeek)
	auth("POST /weeks/{id}/copy", h.Menu.CopyWeek)
	auth("POST /weeks/{id}/publish", h.Menu.Publish)
	auth("POST /weeks/{id}/archive", h.Menu.Archive)
	auth("POST /weeks/{id}/restore", h.Menu.Restore)
	auth("GET /weeks/{id}/history", h.Menu.History)
	auth("GET /menu/today", h.Menu.Today)

	auth("PATCH /days/{id}", h.Menu.SetDayOpen)
	auth("PUT /days/{id}/order", h.Menu.ReorderItems)
	auth("POST /items", h.Menu.AddItem)
	auth("PATCH /items/{id}", h.Menu.UpdateItem)
	auth("DELETE /items/{id}", h.Menu.RemoveItem)

	auth("POST /votes", h.Votes.Cast)
	auth("GET /votes/{menuItemId}", h.Votes.Mine)
	auth("PATCH /votes/{menuItemId}", h.Votes.Update)
	auth("GET /menu-items/{id}/stats", h.Votes.Stats)

	return middleware.Chain(mws...)(mux)
}
