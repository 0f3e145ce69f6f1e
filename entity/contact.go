package entity

// PersonFields are the optional descriptive fields shared by contact create
// and update requests.
type PersonFields struct {
	Cpf             Optional[string]                 `json:"cpf"`
	Organization    Optional[int64]                  `json:"organization"`
	Role            Optional[string]                 `json:"role"`
	Ranking         Optional[int]                    `json:"ranking"`
	Description     Optional[string]                 `json:"description"`
	Birthday        Optional[string]                 `json:"birthday"`
	Email           Optional[string]                 `json:"email"`
	Work            Optional[string]                 `json:"work"`
	Mobile          Optional[string]                 `json:"mobile"`
	Fax             Optional[string]                 `json:"fax"`
	Facebook        Optional[string]                 `json:"facebook"`
	Twitter         Optional[string]                 `json:"twitter"`
	Instagram       Optional[string]                 `json:"instagram"`
	LinkedIn        Optional[string]                 `json:"linked_in"`
	Skype           Optional[string]                 `json:"skype"`
	PostalCode      Optional[string]                 `json:"postal_code"`
	Country         Optional[string]                 `json:"country"`
	District        Optional[string]                 `json:"district"`
	State           Optional[string]                 `json:"state"`
	StreetName      Optional[string]                 `json:"street_name"`
	StreetNumber    Optional[int]                    `json:"street_number"`
	AdditionalInfo  Optional[string]                 `json:"additional_info"`
	City            Optional[int64]                  `json:"city"`
	LeadOrigin      Optional[int64]                  `json:"leadOrigin"`
	Category        Optional[int64]                  `json:"category"`
	Products        Optional[[]int64]                `json:"products"`
	AllowedUsers    Optional[[]int64]                `json:"allowedUsers"`
	AllowToAllUsers Optional[bool]                   `json:"allowToAllUsers"`
	CustomFields    Optional[map[string]interface{}] `json:"customFields"`
}

// Contact is the body of a contact create request. Responsible is the CRM
// user's display name.
type Contact struct {
	Name        string `json:"name" validate:"required"`
	Phone       string `json:"phone" validate:"required"`
	Responsible string `json:"responsible" validate:"required"`
	PersonFields
}

// ContactUpdate addresses an existing person by PersonID; only the keys the
// caller sent are forwarded.
type ContactUpdate struct {
	PersonID  int64            `json:"personId" validate:"required,gt=0"`
	Name      Optional[string] `json:"name"`
	OwnerUser Optional[int64]  `json:"ownerUser"`
	Whatsapp  Optional[string] `json:"whatsapp"`
	PersonFields
}
