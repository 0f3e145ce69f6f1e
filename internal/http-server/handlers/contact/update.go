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

func Update(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.With(
			sl.Module("http.handlers.contact"),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		if handler == nil {
			reply.Fail(logger, w, r, "update contact", fmt.Errorf("contact service not available"))
			return
		}

		var req entity.ContactUpdate
		if err := request.DecodeJSON(r, &req); err != nil {
			reply.Fail(logger, w, r, "decode contact update", err)
			return
		}
		logger = logger.With(slog.Int64("person_id", req.PersonID))

		data, err := handler.UpdateContact(r.Context(), req)
		if err != nil {
			reply.Fail(logger, w, r, "update contact", err)
			return
		}
		logger.Debug("contact updated")

		reply.Data(w, r, data)
	}
}
