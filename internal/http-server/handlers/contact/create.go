package contact

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"AgendorBridge/entity"
	"AgendorBridge/internal/http-server/handlers/reply"
	"AgendorBridge/internal/lib/api/request"
	"AgendorBridge/internal/lib/sl"
)

func Create(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.With(
			sl.Module("http.handlers.contact"),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		if handler == nil {
			reply.Fail(logger, w, r, "create contact", fmt.Errorf("contact service not available"))
			return
		}

		var req entity.Contact
		if err := request.DecodeJSON(r, &req); err != nil {
			reply.Fail(logger, w, r, "decode contact", err)
			return
		}

		data, err := handler.CreateContact(r.Context(), req)
		if err != nil {
			reply.Fail(logger.With(slog.String("responsible", req.Responsible)), w, r, "create contact", err)
			return
		}
		logger.Debug("contact created")

		reply.Data(w, r, data)
	}
}
