package agendor

import "AgendorBridge/entity"

// PersonPayload is the body of POST /people and PUT /people/{id}. Unset
// fields are left out of the request entirely.
type PersonPayload struct {
	Name            entity.Optional[string]                 `json:"name,omitzero"`
	ResponsibleID   entity.Optional[int64]                  `json:"ownerUser,omitzero"`
	Cpf             entity.Optional[string]                 `json:"cpf,omitzero"`
	Organization    entity.Optional[int64]                  `json:"organization,omitzero"`
	Role            entity.Optional[string]                 `json:"role,omitzero"`
	Ranking         entity.Optional[int]                    `json:"ranking,omitzero"`
	Description     entity.Optional[string]                 `json:"description,omitzero"`
	Birthday        entity.Optional[string]                 `json:"birthday,omitzero"`
	Contact         *PersonContact                          `json:"contact,omitempty"`
	Address         *PersonAddress                          `json:"address,omitempty"`
	LeadOrigin      entity.Optional[int64]                  `json:"leadOrigin,omitzero"`
	Category        entity.Optional[int64]                  `json:"category,omitzero"`
	Products        entity.Optional[[]int64]                `json:"products,omitzero"`
	AllowedUsers    entity.Optional[[]int64]                `json:"allowedUsers,omitzero"`
	AllowToAllUsers entity.Optional[bool]                   `json:"allowToAllUsers,omitzero"`
	CustomFields    entity.Optional[map[string]interface{}] `json:"customFields,omitzero"`
}

type PersonContact struct {
	Email     entity.Optional[string] `json:"email,omitzero"`
	Work      entity.Optional[string] `json:"work,omitzero"`
	Mobile    entity.Optional[string] `json:"mobile,omitzero"`
	Whatsapp  entity.Optional[string] `json:"whatsapp,omitzero"`
	Fax       entity.Optional[string] `json:"fax,omitzero"`
	Facebook  entity.Optional[string] `json:"facebook,omitzero"`
	Twitter   entity.Optional[string] `json:"twitter,omitzero"`
	Instagram entity.Optional[string] `json:"instagram,omitzero"`
	Linkedin  entity.Optional[string] `json:"linkedin,omitzero"`
	Skype     entity.Optional[string] `json:"skype,omitzero"`
}

func (c PersonContact) IsEmpty() bool {
	return c == PersonContact{}
}

type PersonAddress struct {
	PostalCode     entity.Optional[string] `json:"postal_code,omitzero"`
	Country        entity.Optional[string] `json:"country,omitzero"`
	District       entity.Optional[string] `json:"district,omitzero"`
	State          entity.Optional[string] `json:"state,omitzero"`
	StreetName     entity.Optional[string] `json:"street_name,omitzero"`
	StreetNumber   entity.Optional[int]    `json:"street_number,omitzero"`
	AdditionalInfo entity.Optional[string] `json:"additional_info,omitzero"`
	City           entity.Optional[int64]  `json:"city,omitzero"`
}

func (a PersonAddress) IsEmpty() bool {
	return a == PersonAddress{}
}

// DealPayload is the body of POST /{entityType}/{id}/deals and PUT /deals/{id}.
type DealPayload struct {
	Title           entity.Optional[string]                 `json:"title,omitzero"`
	DealStatusText  entity.Optional[string]                 `json:"dealStatusText,omitzero"`
	Description     entity.Optional[string]                 `json:"description,omitzero"`
	StartTime       entity.Optional[string]                 `json:"startTime,omitzero"`
	EndTime         entity.Optional[string]                 `json:"endTime,omitzero"`
	Products        entity.Optional[[]int64]                `json:"products,omitzero"`
	Ranking         entity.Optional[int]                    `json:"ranking,omitzero"`
	OwnerUser       entity.Optional[int64]                  `json:"ownerUser,omitzero"`
	Funnel          entity.Optional[int64]                  `json:"funnel,omitzero"`
	DealStage       entity.Optional[int64]                  `json:"dealStage,omitzero"`
	Value           entity.Optional[float64]                `json:"value,omitzero"`
	AllowedUsers    entity.Optional[[]int64]                `json:"allowedUsers,omitzero"`
	AllowToAllUsers entity.Optional[bool]                   `json:"allowToAllUsers,omitzero"`
	CustomFields    entity.Optional[map[string]interface{}] `json:"customFields,omitzero"`
}

type StagePayload struct {
	DealStage int64                  `json:"dealStage"`
	Funnel    entity.Optional[int64] `json:"funnel,omitzero"`
}

type StatusPayload struct {
	DealStatusText string `json:"dealStatusText"`
}

// User is an Agendor account that can own people and deals.
type User struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"contactEmail"`
	Active bool   `json:"active"`
}
