package contact

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"AgendorBridge/internal/http-server/handlers/reply"
	"AgendorBridge/internal/lib/sl"
)

func Find(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.With(
			sl.Module("http.handlers.contact"),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		if handler == nil {
			reply.Fail(logger, w, r, "find contact", fmt.Errorf("contact service not available"))
			return
		}

		phone := chi.URLParam(r, "phone")
		logger = logger.With(slog.String("phone", phone))

		data, err := handler.FindContacts(r.Context(), phone)
		if err != nil {
			reply.Fail(logger, w, r, "find contact", err)
			return
		}

		reply.Data(w, r, data)
	}
}
