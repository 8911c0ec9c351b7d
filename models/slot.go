package models

// PickupSlot is one of the fixed time windows during which a placed order
// may be collected. Slots come from configuration and are not user-creatable.
type PickupSlot struct {
	ID    string `json:"id" yaml:"id"`
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
}
