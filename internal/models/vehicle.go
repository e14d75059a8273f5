// Package models defines the marketplace entities exchanged between the
// remote API, the local cache, and the UI layers. JSON tags follow the wire
// format of the collection endpoints.
package models

import "time"

// ListingStatus is the lifecycle state of a vehicle listing.
type ListingStatus string

const (
	StatusActive    ListingStatus = "active"
	StatusExpired   ListingStatus = "expired"
	StatusSold      ListingStatus = "sold"
	StatusSuspended ListingStatus = "suspended"
	StatusDraft     ListingStatus = "draft"
)

// VehicleRecord is a single listing. Seller name and rating are denormalized
// enrichment fields, not authoritative; sellerEmail is the reference key to
// the user collection.
type VehicleRecord struct {
	ID           int64    `json:"id"`
	Make         string   `json:"make" validate:"required"`
	Model        string   `json:"model" validate:"required"`
	Variant      string   `json:"variant,omitempty"`
	Year         int      `json:"year" validate:"required,gte=1900"`
	Price        float64  `json:"price" validate:"required,gt=0"`
	Mileage      int64    `json:"mileage" validate:"gte=0"`
	FuelType     string   `json:"fuelType,omitempty"`
	Transmission string   `json:"transmission,omitempty"`
	Category     string   `json:"category,omitempty"`
	City         string   `json:"city,omitempty"`
	Description  string   `json:"description,omitempty"`
	Features     []string `json:"features,omitempty"`

	// Media. Images are ordered; the first one is the cover shot.
	Images         []string `json:"images,omitempty"`
	VideoURL       string   `json:"videoUrl,omitempty"`
	Documents      []string `json:"documents,omitempty"`
	ServiceRecords []string `json:"serviceRecords,omitempty"`

	// CertificationStatus is "approved" once an inspection passed.
	CertificationStatus string `json:"certificationStatus,omitempty"`

	SellerEmail         string  `json:"sellerEmail,omitempty" validate:"omitempty,email"`
	SellerName          string  `json:"sellerName,omitempty"`
	SellerAverageRating float64 `json:"sellerAverageRating,omitempty"`

	ListingStatus ListingStatus `json:"listingStatus,omitempty"`
	CreatedAt     time.Time     `json:"createdAt,omitempty"`
	UpdatedAt     time.Time     `json:"updatedAt,omitempty"`
	ExpiresAt     time.Time     `json:"expiresAt,omitempty"`

	// Engagement counters, maintained by the client accessors.
	Views          int64 `json:"views,omitempty"`
	InquiriesCount int64 `json:"inquiriesCount,omitempty"`
	PhoneViews     int64 `json:"phoneViews,omitempty"`
	ShareCount     int64 `json:"shareCount,omitempty"`
}
