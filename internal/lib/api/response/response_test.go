package response

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"AgendorBridge/entity"
)

func TestStatusFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, http.StatusOK},
		{"validation", &entity.ValidationError{Field: "dealId", Reason: "required"}, http.StatusBadRequest},
		{"wrapped not found", fmt.Errorf("create contact: %w", &entity.NotFoundError{Resource: "user", Key: "Carlos"}), http.StatusNotFound},
		{"remote", &entity.RemoteError{Status: 422, Body: "invalid"}, http.StatusInternalServerError},
		{"transport", &entity.TransportError{Op: "GET /people", Err: errors.New("timeout")}, http.StatusInternalServerError},
		{"plain", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusFor(tt.err))
		})
	}
}
