package health

import (
	"context"
	"net/http"

	"github.com/go-chi/render"

	"AgendorBridge/impl/core"
)

type Core interface {
	Health(ctx context.Context) core.Health
}

// Check reports the reachability of the CRM and the database. A database
// failure alone does not fail the check.
func Check(handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h := handler.Health(r.Context())
		if h.Status != core.StatusOk {
			render.Status(r, http.StatusServiceUnavailable)
		}
		render.JSON(w, r, h)
	}
}
