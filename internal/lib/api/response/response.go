package response

import (
	"errors"
	"net/http"

	"AgendorBridge/entity"
)

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func Ok(data interface{}) Response {
	return Response{
		Success: true,
		Data:    data,
	}
}

func Error(message string) Response {
	return Response{
		Success: false,
		Message: message,
	}
}

// StatusFor maps a core or CRM error to the HTTP status returned to the caller.
func StatusFor(err error) int {
	var validationErr *entity.ValidationError
	var notFoundErr *entity.NotFoundError
	switch {
	case err == nil:
		return http.StatusOK
	case errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.As(err, &notFoundErr):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
