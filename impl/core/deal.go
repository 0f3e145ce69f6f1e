package core

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"AgendorBridge/entity"
)

func (c *Core) CreateDeal(ctx context.Context, deal entity.Deal) (json.RawMessage, error) {
	entityType, entityID, payload, err := PrepareDealCreate(deal)
	if err != nil {
		return nil, err
	}
	crm, err := c.client()
	if err != nil {
		return nil, err
	}

	data, err := crm.CreateDeal(ctx, entityType, entityID, payload)
	if err != nil {
		return nil, err
	}

	c.log.With(
		slog.String("entity_type", entityType),
		slog.Int64("entity_id", entityID),
	).Info("deal created")
	return data, nil
}

// FindDeals lists the deals of a person or an organization. An unknown
// entity type is rejected before the CRM is called.
func (c *Core) FindDeals(ctx context.Context, entityType string, entityID int64) (json.RawMessage, error) {
	if err := ValidateEntityType(entityType); err != nil {
		return nil, err
	}
	if entityID <= 0 {
		return nil, &entity.ValidationError{Field: "entityId", Reason: "must be greater than 0"}
	}
	crm, err := c.client()
	if err != nil {
		return nil, err
	}

	data, err := crm.FindDeals(ctx, entityType, entityID)
	if err != nil {
		return nil, err
	}
	if isEmptyResult(data) {
		return nil, &entity.NotFoundError{Resource: "deals", Key: fmt.Sprintf("%s/%d", entityType, entityID)}
	}
	return data, nil
}

func (c *Core) UpdateDeal(ctx context.Context, update entity.DealUpdate) (json.RawMessage, error) {
	dealID, payload, err := PrepareDealUpdate(update)
	if err != nil {
		return nil, err
	}
	crm, err := c.client()
	if err != nil {
		return nil, err
	}
	return crm.UpdateDeal(ctx, dealID, payload)
}

func (c *Core) UpdateDealStage(ctx context.Context, update entity.DealStageUpdate) (json.RawMessage, error) {
	dealID, payload, err := PrepareDealStageUpdate(update)
	if err != nil {
		return nil, err
	}
	crm, err := c.client()
	if err != nil {
		return nil, err
	}

	data, err := crm.UpdateDealStage(ctx, dealID, payload)
	if err != nil {
		return nil, err
	}
	c.log.With(
		slog.Int64("deal_id", dealID),
		slog.Int64("deal_stage", payload.DealStage),
	).Info("deal stage updated")
	return data, nil
}

func (c *Core) UpdateDealStatus(ctx context.Context, update entity.DealStatusUpdate) (json.RawMessage, error) {
	dealID, payload, err := PrepareDealStatusUpdate(update)
	if err != nil {
		return nil, err
	}
	crm, err := c.client()
	if err != nil {
		return nil, err
	}

	data, err := crm.UpdateDealStatus(ctx, dealID, payload)
	if err != nil {
		return nil, err
	}
	c.log.With(
		slog.Int64("deal_id", dealID),
		slog.String("status", payload.DealStatusText),
	).Info("deal status updated")
	return data, nil
}
