package core

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"fmt"
	"log/slog"

	"AgendorBridge/internal/lib/sl"
	"AgendorBridge/internal/service/agendor"
)

// CRM is the subset of the Agendor client the core forwards to.
type CRM interface {
	ResponsibleResolver

	CreatePerson(ctx context.Context, person agendor.PersonPayload) (json.RawMessage, error)
	FindPeopleByPhone(ctx context.Context, phone string) (json.RawMessage, error)
	UpdatePerson(ctx context.Context, personID int64, person agendor.PersonPayload) (json.RawMessage, error)

	CreateDeal(ctx context.Context, entityType string, entityID int64, deal agendor.DealPayload) (json.RawMessage, error)
	FindDeals(ctx context.Context, entityType string, entityID int64) (json.RawMessage, error)
	UpdateDeal(ctx context.Context, dealID int64, deal agendor.DealPayload) (json.RawMessage, error)
	UpdateDealStage(ctx context.Context, dealID int64, stage agendor.StagePayload) (json.RawMessage, error)
	UpdateDealStatus(ctx context.Context, dealID int64, status agendor.StatusPayload) (json.RawMessage, error)

	Ping(ctx context.Context) error
}

// Repository is only probed for connectivity; nothing is stored.
type Repository interface {
	Ping(ctx context.Context) error
}

type Core struct {
	crm     CRM
	repo    Repository
	authKey string
	log     *slog.Logger
}

func New(log *slog.Logger) *Core {
	return &Core{
		log: log.With(sl.Module("core")),
	}
}

func (c *Core) SetCRM(crm CRM) {
	c.crm = crm
}

func (c *Core) SetRepository(repo Repository) {
	c.repo = repo
}

func (c *Core) SetAuthKey(key string) {
	c.authKey = key
}

// AuthenticateByToken compares token with the configured service token.
func (c *Core) AuthenticateByToken(token string) error {
	if c.authKey == "" {
		return fmt.Errorf("service token not configured")
	}
	if subtle.ConstantTimeCompare([]byte(token), []byte(c.authKey)) != 1 {
		return fmt.Errorf("invalid token")
	}
	return nil
}

func (c *Core) client() (CRM, error) {
	if c.crm == nil {
		return nil, fmt.Errorf("agendor service not available")
	}
	return c.crm, nil
}
