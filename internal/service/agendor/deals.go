package agendor

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// CreateDeal attaches a new deal to a person or an organization.
func (s *AgendorService) CreateDeal(ctx context.Context, entityType string, entityID int64, deal DealPayload) (json.RawMessage, error) {
	data, err := s.do(ctx, http.MethodPost, fmt.Sprintf("/%s/%d/deals", entityType, entityID), nil, deal)
	if err != nil {
		return nil, fmt.Errorf("create deal for %s %d: %w", entityType, entityID, err)
	}
	return data, nil
}

func (s *AgendorService) FindDeals(ctx context.Context, entityType string, entityID int64) (json.RawMessage, error) {
	data, err := s.do(ctx, http.MethodGet, fmt.Sprintf("/%s/%d/deals", entityType, entityID), nil, nil)
	if err != nil {
		return nil, fmt.Errorf("find deals for %s %d: %w", entityType, entityID, err)
	}
	return data, nil
}

func (s *AgendorService) UpdateDeal(ctx context.Context, dealID int64, deal DealPayload) (json.RawMessage, error) {
	data, err := s.do(ctx, http.MethodPut, fmt.Sprintf("/deals/%d", dealID), nil, deal)
	if err != nil {
		return nil, fmt.Errorf("update deal %d: %w", dealID, err)
	}
	return data, nil
}

func (s *AgendorService) UpdateDealStage(ctx context.Context, dealID int64, stage StagePayload) (json.RawMessage, error) {
	data, err := s.do(ctx, http.MethodPut, fmt.Sprintf("/deals/%d/stage", dealID), nil, stage)
	if err != nil {
		return nil, fmt.Errorf("update deal %d stage: %w", dealID, err)
	}
	return data, nil
}

func (s *AgendorService) UpdateDealStatus(ctx context.Context, dealID int64, status StatusPayload) (json.RawMessage, error) {
	data, err := s.do(ctx, http.MethodPut, fmt.Sprintf("/deals/%d/status", dealID), nil, status)
	if err != nil {
		return nil, fmt.Errorf("update deal %d status: %w", dealID, err)
	}
	return data, nil
}
