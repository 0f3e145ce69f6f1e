package entity

const (
	EntityPeople        = "people"
	EntityOrganizations = "organizations"

	DealStatusOngoing = "ongoing"
	DealStatusWon     = "won"
	DealStatusLost    = "lost"
)

// Deal is the body of a deal create request. The deal is attached to the
// person or organization named by EntityType and EntityID.
type Deal struct {
	EntityType      string                           `json:"entityType" validate:"required,oneof=people organizations"`
	EntityID        int64                            `json:"entityId" validate:"required,gt=0"`
	Title           string                           `json:"title" validate:"required"`
	DealStatusText  Optional[string]                 `json:"dealStatusText"`
	Description     Optional[string]                 `json:"description"`
	StartTime       Optional[string]                 `json:"startTime"`
	EndTime         Optional[string]                 `json:"endTime"`
	Products        Optional[[]int64]                `json:"products"`
	Ranking         Optional[int]                    `json:"ranking"`
	OwnerUser       Optional[int64]                  `json:"ownerUser"`
	Funnel          Optional[int64]                  `json:"funnel"`
	DealStage       Optional[int64]                  `json:"dealStage"`
	Value           Optional[float64]                `json:"value"`
	AllowedUsers    Optional[[]int64]                `json:"allowedUsers"`
	AllowToAllUsers Optional[bool]                   `json:"allowToAllUsers"`
	CustomFields    Optional[map[string]interface{}] `json:"customFields"`
}

type DealUpdate struct {
	DealID          int64                            `json:"dealId" validate:"required,gt=0"`
	Title           Optional[string]                 `json:"title"`
	Value           Optional[float64]                `json:"value"`
	Description     Optional[string]                 `json:"description"`
	StartTime       Optional[string]                 `json:"startTime"`
	EndTime         Optional[string]                 `json:"endTime"`
	Ranking         Optional[int]                    `json:"ranking"`
	Products        Optional[[]int64]                `json:"products"`
	OwnerUser       Optional[int64]                  `json:"ownerUser"`
	AllowedUsers    Optional[[]int64]                `json:"allowedUsers"`
	AllowToAllUsers Optional[bool]                   `json:"allowToAllUsers"`
	CustomFields    Optional[map[string]interface{}] `json:"customFields"`
}

// DealStageUpdate moves a deal to another stage, optionally in another funnel.
type DealStageUpdate struct {
	DealID    int64           `json:"dealId" validate:"required,gt=0"`
	DealStage int64           `json:"dealStage" validate:"required,gt=0"`
	Funnel    Optional[int64] `json:"funnel"`
}

type DealStatusUpdate struct {
	DealID         int64  `json:"dealId" validate:"required,gt=0"`
	DealStatusText string `json:"dealStatusText" validate:"required,oneof=ongoing won lost"`
}
