package domain

// Ability slots with dedicated labels in the detail view. Anything else is a
// numbered standard ability.
const (
	SlotUltimate = "Ultimate"
	SlotPassive  = "Passive"
)

// AgentRole carries the role name shown on agent cards and used for filtering.
type AgentRole struct {
	DisplayName string `json:"displayName"`
}

// Ability is one agent ability as delivered by the external catalog.
type Ability struct {
	Slot        string `json:"slot"`
	DisplayName string `json:"displayName"`
	Description string `json:"description"`
}

// Agent is a read-only record sourced from the external character catalog.
// Field names mirror the catalog's JSON; records are never mutated locally.
type Agent struct {
	UUID                string    `json:"uuid"`
	DisplayName         string    `json:"displayName"`
	Description         string    `json:"description"`
	DisplayIcon         string    `json:"displayIcon"`
	IsPlayableCharacter bool      `json:"isPlayableCharacter"`
	Role                AgentRole `json:"role"`
	Abilities           []Ability `json:"abilities"`
}
