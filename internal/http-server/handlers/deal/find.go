package deal

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"AgendorBridge/entity"
	"AgendorBridge/internal/http-server/handlers/reply"
	"AgendorBridge/internal/lib/sl"
)

func Find(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.With(
			sl.Module("http.handlers.deal"),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		if handler == nil {
			reply.Fail(logger, w, r, "find deals", fmt.Errorf("deal service not available"))
			return
		}

		entityType := chi.URLParam(r, "entityType")
		rawID := chi.URLParam(r, "entityId")
		logger = logger.With(
			slog.String("entity_type", entityType),
			slog.String("entity_id", rawID),
		)

		entityID, err := strconv.ParseInt(rawID, 10, 64)
		if err != nil {
			reply.Fail(logger, w, r, "find deals", &entity.ValidationError{Field: "entityId", Reason: "must be an integer"})
			return
		}

		data, err := handler.FindDeals(r.Context(), entityType, entityID)
		if err != nil {
			reply.Fail(logger, w, r, "find deals", err)
			return
		}

		reply.Data(w, r, data)
	}
}
