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

func Update(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.With(
			sl.Module("http.handlers.deal"),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		if handler == nil {
			reply.Fail(logger, w, r, "update deal", fmt.Errorf("deal service not available"))
			return
		}

		var req entity.DealUpdate
		if err := request.DecodeJSON(r, &req); err != nil {
			reply.Fail(logger, w, r, "decode deal update", err)
			return
		}
		logger = logger.With(slog.Int64("deal_id", req.DealID))

		data, err := handler.UpdateDeal(r.Context(), req)
		if err != nil {
			reply.Fail(logger, w, r, "update deal", err)
			return
		}

		reply.Data(w, r, data)
	}
}
