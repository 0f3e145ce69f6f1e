package agendor

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

func (s *AgendorService) CreatePerson(ctx context.Context, person PersonPayload) (json.RawMessage, error) {
	data, err := s.do(ctx, http.MethodPost, "/people", nil, person)
	if err != nil {
		return nil, fmt.Errorf("create person: %w", err)
	}
	return data, nil
}

// FindPeopleByPhone lists people whose phone numbers match phone.
func (s *AgendorService) FindPeopleByPhone(ctx context.Context, phone string) (json.RawMessage, error) {
	query := url.Values{}
	query.Set("phone", phone)

	data, err := s.do(ctx, http.MethodGet, "/people", query, nil)
	if err != nil {
		return nil, fmt.Errorf("find people: %w", err)
	}
	return data, nil
}

func (s *AgendorService) UpdatePerson(ctx context.Context, personID int64, person PersonPayload) (json.RawMessage, error) {
	data, err := s.do(ctx, http.MethodPut, fmt.Sprintf("/people/%d", personID), nil, person)
	if err != nil {
		return nil, fmt.Errorf("update person %d: %w", personID, err)
	}
	return data, nil
}
