package core

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"

	"AgendorBridge/entity"
	"AgendorBridge/internal/lib/sl"
)

// CreateContact resolves the responsible user and creates the person. The
// lookup and the create are two separate CRM calls.
func (c *Core) CreateContact(ctx context.Context, contact entity.Contact) (json.RawMessage, error) {
	crm, err := c.client()
	if err != nil {
		return nil, err
	}

	person, err := PrepareContactCreate(ctx, contact, crm)
	if err != nil {
		return nil, err
	}

	data, err := crm.CreatePerson(ctx, person)
	if err != nil {
		return nil, err
	}

	c.log.With(
		slog.String("responsible", contact.Responsible),
		slog.Int64("owner_user", person.ResponsibleID.Value),
	).Info("contact created")
	return data, nil
}

func (c *Core) FindContacts(ctx context.Context, phone string) (json.RawMessage, error) {
	if err := c.validatePhone(phone); err != nil {
		return nil, err
	}
	crm, err := c.client()
	if err != nil {
		return nil, err
	}

	data, err := crm.FindPeopleByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}
	if isEmptyResult(data) {
		return nil, &entity.NotFoundError{Resource: "contact", Key: phone}
	}
	return data, nil
}

func (c *Core) UpdateContact(ctx context.Context, update entity.ContactUpdate) (json.RawMessage, error) {
	personID, person, err := PrepareContactUpdate(update)
	if err != nil {
		return nil, err
	}
	crm, err := c.client()
	if err != nil {
		return nil, err
	}

	data, err := crm.UpdatePerson(ctx, personID, person)
	if err != nil {
		c.log.With(slog.Int64("person_id", personID)).Debug("update contact", sl.Err(err))
		return nil, err
	}
	return data, nil
}

func (c *Core) validatePhone(phone string) error {
	if phone == "" {
		return &entity.ValidationError{Field: "phone", Reason: "is required"}
	}
	return nil
}

// isEmptyResult reports a CRM answer carrying no records.
func isEmptyResult(data json.RawMessage) bool {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return true
	}
	if trimmed[0] != '[' {
		return false
	}
	var items []json.RawMessage
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return false
	}
	return len(items) == 0
}

