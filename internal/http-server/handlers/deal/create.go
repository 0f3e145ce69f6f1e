package deal

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
			sl.Module("http.handlers.deal"),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		if handler == nil {
			reply.Fail(logger, w, r, "create deal", fmt.Errorf("deal service not available"))
			return
		}

		var req entity.Deal
		if err := request.DecodeJSON(r, &req); err != nil {
			reply.Fail(logger, w, r, "decode deal", err)
			return
		}
		logger = logger.With(
			slog.String("entity_type", req.EntityType),
			slog.Int64("entity_id", req.EntityID),
		)

		data, err := handler.CreateDeal(r.Context(), req)
		if err != nil {
			reply.Fail(logger, w, r, "create deal", err)
			return
		}

		reply.Data(w, r, data)
	}
}
