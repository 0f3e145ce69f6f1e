package request

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"AgendorBridge/entity"
)

const maxBodyBytes = 1 << 20

// DecodeJSON reads exactly one JSON object from the request body into v.
// Keys that v does not declare are rejected.
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return &entity.ValidationError{Reason: "request body is empty"}
	}
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return &entity.ValidationError{Reason: "request body is empty"}
		}
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return &entity.ValidationError{Field: typeErr.Field, Reason: fmt.Sprintf("must be %s", typeErr.Type.String())}
		}
		return &entity.ValidationError{Reason: fmt.Sprintf("invalid request body: %v", err)}
	}
	if dec.More() {
		return &entity.ValidationError{Reason: "request body must contain a single JSON object"}
	}
	return nil
}
