package errors

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"AgendorBridge/internal/lib/api/response"
	"AgendorBridge/internal/lib/sl"
)

func NotAllowed(log *slog.Logger) http.HandlerFunc {
	logger := log.With(sl.Module("http.handlers.errors"))
	return func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("method not allowed",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
		)
		render.Status(r, http.StatusMethodNotAllowed)
		render.JSON(w, r, response.Error(fmt.Sprintf("Method %s not allowed on %s", r.Method, r.URL.Path)))
	}
}
