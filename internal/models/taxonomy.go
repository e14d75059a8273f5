package models

// ModelEntry is one model of a make with its known trim variants.
type ModelEntry struct {
	Name     string   `json:"name"`
	Variants []string `json:"variants,omitempty"`
}

// MakeEntry lists the models of a single make within a category.
type MakeEntry struct {
	Make   string       `json:"make"`
	Models []ModelEntry `json:"models"`
}

// VehicleTaxonomy maps a vehicle category to the makes/models/variants offered
// in it. It only feeds selection UI; there is no identity beyond the compound
// (category, make, model) key.
type VehicleTaxonomy map[string][]MakeEntry
