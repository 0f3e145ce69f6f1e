package contact

import (
	"context"
	"encoding/json"

	"AgendorBridge/entity"
)

type Core interface {
	CreateContact(ctx context.Context, contact entity.Contact) (json.RawMessage, error)
	FindContacts(ctx context.Context, phone string) (json.RawMessage, error)
	UpdateContact(ctx context.Context, update entity.ContactUpdate) (json.RawMessage, error)
}
