package agendor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"AgendorBridge/entity"
	"AgendorBridge/internal/config"
	"AgendorBridge/internal/lib/sl"
)

// AgendorService calls the Agendor v3 REST API. It holds no state besides
// its credentials, so one instance serves all requests.
type AgendorService struct {
	baseURL    string
	token      string
	httpClient *http.Client
	log        *slog.Logger
}

func NewAgendorService(conf *config.Config, log *slog.Logger) *AgendorService {
	if conf.Agendor.ApiKey == "" {
		return nil
	}
	return &AgendorService{
		baseURL: strings.TrimRight(conf.Agendor.BaseURL, "/"),
		token:   conf.Agendor.ApiKey,
		httpClient: &http.Client{
			Timeout: conf.Agendor.Timeout,
		},
		log: log.With(sl.Module("agendor")),
	}
}

type envelope struct {
	Data json.RawMessage `json:"data"`
}

// do sends one request and returns the "data" member of the response.
func (s *AgendorService) do(ctx context.Context, method, path string, query url.Values, body interface{}) (data json.RawMessage, err error) {
	fullURL := s.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}
	op := method + " " + path

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal %s body: %w", op, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Token "+s.token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	log := s.log.With(
		slog.String("call_id", uuid.NewString()),
		slog.String("url", fullURL),
		slog.String("method", method),
	)

	t := time.Now()
	status := 0
	defer func() {
		log = log.With(
			slog.Int("status", status),
			slog.Duration("duration", time.Since(t)),
		)
		if err != nil {
			log.Error("agendor request", sl.Err(err))
		} else {
			log.Debug("agendor request")
		}
	}()

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, &entity.TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()
	status = resp.StatusCode

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &entity.TransportError{Op: op, Err: fmt.Errorf("read response: %w", err)}
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, &entity.NotFoundError{Resource: strings.TrimPrefix(path, "/")}
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, &entity.RemoteError{Status: resp.StatusCode, Body: string(bodyBytes)}
	}

	if len(bytes.TrimSpace(bodyBytes)) == 0 {
		return json.RawMessage("null"), nil
	}

	var env envelope
	if err = json.Unmarshal(bodyBytes, &env); err != nil || env.Data == nil {
		// not an envelope, hand back the body as is
		err = nil
		return json.RawMessage(bodyBytes), nil
	}
	return env.Data, nil
}
