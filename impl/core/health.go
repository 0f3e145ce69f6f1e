package core

import (
	"context"
	"log/slog"

	"AgendorBridge/internal/lib/sl"
)

const (
	StatusOk       = "ok"
	StatusFailed   = "failed"
	StatusDisabled = "disabled"
)

type Health struct {
	Status   string `json:"status"`
	CRM      string `json:"crm"`
	Database string `json:"database"`
}

// Health probes the CRM token and, when configured, the database.
func (c *Core) Health(ctx context.Context) Health {
	h := Health{Status: StatusOk, CRM: StatusDisabled, Database: StatusDisabled}

	if c.crm != nil {
		h.CRM = StatusOk
		if err := c.crm.Ping(ctx); err != nil {
			c.log.Warn("crm health", sl.Err(err))
			h.CRM = StatusFailed
			h.Status = StatusFailed
		}
	}

	if c.repo != nil {
		h.Database = StatusOk
		if err := c.repo.Ping(ctx); err != nil {
			c.log.Warn("database health", sl.Err(err))
			h.Database = StatusFailed
		}
	}

	c.log.With(
		slog.String("crm", h.CRM),
		slog.String("database", h.Database),
	).Debug("health check")
	return h
}
