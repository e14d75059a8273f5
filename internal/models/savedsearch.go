package models

import "time"

// SavedSearch is a buyer's stored filter. It is entirely client-owned: created,
// mutated, and deleted only in the local store, keyed by the owning user.
// ID is unique per user; CreatedAt is immutable after creation.
//
// Every zero-valued filter field imposes no constraint.
type SavedSearch struct {
	ID        int64  `json:"id"`
	UserEmail string `json:"userEmail"`
	Name      string `json:"name,omitempty"`

	Make         string  `json:"make,omitempty"`
	Model        string  `json:"model,omitempty"`
	Category     string  `json:"category,omitempty"`
	FuelType     string  `json:"fuelType,omitempty"`
	Transmission string  `json:"transmission,omitempty"`
	City         string  `json:"city,omitempty"`
	MinPrice     float64 `json:"minPrice,omitempty"`
	MaxPrice     float64 `json:"maxPrice,omitempty"`
	MinYear      int     `json:"minYear,omitempty"`
	MaxYear      int     `json:"maxYear,omitempty"`

	AlertsEnabled bool      `json:"alertsEnabled,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}
