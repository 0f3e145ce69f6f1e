package errors

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"AgendorBridge/internal/lib/api/response"
	"AgendorBridge/internal/lib/sl"
)

func NotFound(log *slog.Logger) http.HandlerFunc {
	logger := log.With(sl.Module("http.handlers.errors"))
	return func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("route not found",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
		)
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, response.Error(fmt.Sprintf("Route %s not found", r.URL.Path)))
	}
}
