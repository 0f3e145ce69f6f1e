package deal

import (
	"context"
	"encoding/json"

	"AgendorBridge/entity"
)

type Core interface {
	CreateDeal(ctx context.Context, deal entity.Deal) (json.RawMessage, error)
	FindDeals(ctx context.Context, entityType string, entityID int64) (json.RawMessage, error)
	UpdateDeal(ctx context.Context, update entity.DealUpdate) (json.RawMessage, error)
	UpdateDealStage(ctx context.Context, update entity.DealStageUpdate) (json.RawMessage, error)
	UpdateDealStatus(ctx context.Context, update entity.DealStatusUpdate) (json.RawMessage, error)
}
