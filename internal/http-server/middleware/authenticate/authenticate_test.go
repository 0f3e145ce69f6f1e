package authenticate

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type staticAuth string

func (s staticAuth) AuthenticateByToken(token string) error {
	if token != string(s) {
		return errors.New("invalid token")
	}
	return nil
}

func TestAuthenticate(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	tests := []struct {
		name       string
		header     string
		auth       Authenticate
		wantStatus int
		wantCalled bool
	}{
		{"valid token", "secret", staticAuth("secret"), http.StatusOK, true},
		{"bearer prefix", "Bearer secret", staticAuth("secret"), http.StatusOK, true},
		{"missing header", "", staticAuth("secret"), http.StatusBadRequest, false},
		{"wrong token", "other", staticAuth("secret"), http.StatusBadRequest, false},
		{"auth disabled", "secret", nil, http.StatusBadRequest, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				called = true
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/agendor/contact/find/1", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			New(log, tt.auth)(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCalled, called)
		})
	}
}
