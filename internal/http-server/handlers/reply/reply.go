package reply

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"AgendorBridge/internal/lib/api/response"
	"AgendorBridge/internal/lib/sl"
)

// Data writes the CRM answer as received.
func Data(w http.ResponseWriter, r *http.Request, data json.RawMessage) {
	if data == nil {
		data = json.RawMessage("null")
	}
	render.Status(r, http.StatusOK)
	render.JSON(w, r, data)
}

// Fail logs err and answers with the status its type maps to.
func Fail(logger *slog.Logger, w http.ResponseWriter, r *http.Request, op string, err error) {
	status := response.StatusFor(err)
	if status >= http.StatusInternalServerError {
		logger.Error(op, sl.Err(err))
	} else {
		logger.Debug(op, sl.Err(err), slog.Int("status", status))
	}
	render.Status(r, status)
	render.JSON(w, r, response.Error(err.Error()))
}
