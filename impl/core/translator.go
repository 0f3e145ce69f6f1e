package core

import (
	"context"
	"strings"

	"AgendorBridge/entity"
	"AgendorBridge/internal/lib/validate"
	"AgendorBridge/internal/service/agendor"
)

// ResponsibleResolver maps a CRM user's display name to its id.
type ResponsibleResolver interface {
	ResolveResponsibleID(ctx context.Context, name string) (int64, error)
}

// PrepareContactCreate validates a new contact and resolves its responsible
// user. Nothing is created when the responsible cannot be found.
func PrepareContactCreate(ctx context.Context, input entity.Contact, resolver ResponsibleResolver) (agendor.PersonPayload, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Phone = strings.TrimSpace(input.Phone)
	input.Responsible = strings.TrimSpace(input.Responsible)

	if err := validate.Struct(input); err != nil {
		return agendor.PersonPayload{}, err
	}

	responsibleID, err := resolver.ResolveResponsibleID(ctx, input.Responsible)
	if err != nil {
		return agendor.PersonPayload{}, err
	}

	person := personFields(input.PersonFields, entity.Optional[string]{})
	person.Name = entity.Some(input.Name)
	person.ResponsibleID = entity.Some(responsibleID)
	person.Contact = withWhatsapp(person.Contact, entity.Some(input.Phone))
	return person, nil
}

// PrepareContactUpdate splits an update into the person id and the fields the
// caller actually sent.
func PrepareContactUpdate(input entity.ContactUpdate) (int64, agendor.PersonPayload, error) {
	if err := validate.Struct(input); err != nil {
		return 0, agendor.PersonPayload{}, err
	}

	person := personFields(input.PersonFields, input.Whatsapp)
	person.Name = input.Name
	person.ResponsibleID = input.OwnerUser
	return input.PersonID, person, nil
}

func PrepareDealCreate(input entity.Deal) (string, int64, agendor.DealPayload, error) {
	input.EntityType = strings.TrimSpace(input.EntityType)
	input.Title = strings.TrimSpace(input.Title)

	if err := validate.Struct(input); err != nil {
		return "", 0, agendor.DealPayload{}, err
	}
	if status, ok := input.DealStatusText.Get(); ok {
		if err := ValidateDealStatus(status); err != nil {
			return "", 0, agendor.DealPayload{}, err
		}
	}

	deal := agendor.DealPayload{
		Title:           entity.Some(input.Title),
		DealStatusText:  input.DealStatusText,
		Description:     input.Description,
		StartTime:       input.StartTime,
		EndTime:         input.EndTime,
		Products:        input.Products,
		Ranking:         input.Ranking,
		OwnerUser:       input.OwnerUser,
		Funnel:          input.Funnel,
		DealStage:       input.DealStage,
		Value:           input.Value,
		AllowedUsers:    input.AllowedUsers,
		AllowToAllUsers: input.AllowToAllUsers,
		CustomFields:    input.CustomFields,
	}
	return input.EntityType, input.EntityID, deal, nil
}

func PrepareDealUpdate(input entity.DealUpdate) (int64, agendor.DealPayload, error) {
	if err := validate.Struct(input); err != nil {
		return 0, agendor.DealPayload{}, err
	}

	deal := agendor.DealPayload{
		Title:           input.Title,
		Value:           input.Value,
		Description:     input.Description,
		StartTime:       input.StartTime,
		EndTime:         input.EndTime,
		Ranking:         input.Ranking,
		Products:        input.Products,
		OwnerUser:       input.OwnerUser,
		AllowedUsers:    input.AllowedUsers,
		AllowToAllUsers: input.AllowToAllUsers,
		CustomFields:    input.CustomFields,
	}
	return input.DealID, deal, nil
}

func PrepareDealStageUpdate(input entity.DealStageUpdate) (int64, agendor.StagePayload, error) {
	if err := validate.Struct(input); err != nil {
		return 0, agendor.StagePayload{}, err
	}
	return input.DealID, agendor.StagePayload{DealStage: input.DealStage, Funnel: input.Funnel}, nil
}

func PrepareDealStatusUpdate(input entity.DealStatusUpdate) (int64, agendor.StatusPayload, error) {
	input.DealStatusText = strings.ToLower(strings.TrimSpace(input.DealStatusText))
	if err := validate.Struct(input); err != nil {
		return 0, agendor.StatusPayload{}, err
	}
	return input.DealID, agendor.StatusPayload{DealStatusText: input.DealStatusText}, nil
}

// ValidateEntityType accepts only the owners a deal can hang from.
func ValidateEntityType(entityType string) error {
	return validate.Var("entityType", entityType, "required,oneof=people organizations")
}

func ValidateDealStatus(status string) error {
	return validate.Var("dealStatusText", status, "required,oneof=ongoing won lost")
}

// personFields nests contact channels and address parts the way Agendor
// expects them. Empty groups are left out.
func personFields(f entity.PersonFields, whatsapp entity.Optional[string]) agendor.PersonPayload {
	person := agendor.PersonPayload{
		Cpf:             f.Cpf,
		Organization:    f.Organization,
		Role:            f.Role,
		Ranking:         f.Ranking,
		Description:     f.Description,
		Birthday:        f.Birthday,
		LeadOrigin:      f.LeadOrigin,
		Category:        f.Category,
		Products:        f.Products,
		AllowedUsers:    f.AllowedUsers,
		AllowToAllUsers: f.AllowToAllUsers,
		CustomFields:    f.CustomFields,
	}

	contact := agendor.PersonContact{
		Email:     f.Email,
		Work:      f.Work,
		Mobile:    f.Mobile,
		Whatsapp:  whatsapp,
		Fax:       f.Fax,
		Facebook:  f.Facebook,
		Twitter:   f.Twitter,
		Instagram: f.Instagram,
		Linkedin:  f.LinkedIn,
		Skype:     f.Skype,
	}
	if !contact.IsEmpty() {
		person.Contact = &contact
	}

	address := agendor.PersonAddress{
		PostalCode:     f.PostalCode,
		Country:        f.Country,
		District:       f.District,
		State:          f.State,
		StreetName:     f.StreetName,
		StreetNumber:   f.StreetNumber,
		AdditionalInfo: f.AdditionalInfo,
		City:           f.City,
	}
	if !address.IsEmpty() {
		person.Address = &address
	}

	return person
}

func withWhatsapp(contact *agendor.PersonContact, whatsapp entity.Optional[string]) *agendor.PersonContact {
	if contact == nil {
		contact = &agendor.PersonContact{}
	}
	contact.Whatsapp = whatsapp
	return contact
}
