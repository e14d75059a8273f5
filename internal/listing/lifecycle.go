// Package listing holds pure derived-data functions over vehicle records:
// listing lifecycle, quality scoring, and price positioning. Nothing here
// performs I/O; every function is deterministic in its inputs.
package listing

import (
	"time"

	"github.com/wheelmarket/wheelmarket/internal/models"
)

const (
	// ListingLifetime is how long a listing stays active after creation.
	ListingLifetime = 60 * 24 * time.Hour

	// nearExpiryWindow is the tail of the lifetime during which the UI warns
	// the seller.
	nearExpiryWindow = 7 * 24 * time.Hour
)

// ExpiresAt computes when a listing created at the given time lapses.
func ExpiresAt(createdAt time.Time) time.Time {
	return createdAt.Add(ListingLifetime)
}

// IsExpired reports whether the listing's lifetime has passed at now.
func IsExpired(v models.VehicleRecord, now time.Time) bool {
	return !now.Before(expiry(v))
}

// IsNearExpiry reports whether the listing is in its final warning window.
func IsNearExpiry(v models.VehicleRecord, now time.Time) bool {
	exp := expiry(v)
	return now.Before(exp) && !now.Before(exp.Add(-nearExpiryWindow))
}

func expiry(v models.VehicleRecord) time.Time {
	if !v.ExpiresAt.IsZero() {
		return v.ExpiresAt
	}
	return ExpiresAt(v.CreatedAt)
}

// AutoExpireListings returns a new collection in which every active listing
// past its expiry is marked expired. The input is never mutated, and applying
// the transform to an already-expired record changes nothing, so the batch is
// safe to re-run.
func AutoExpireListings(vehicles []models.VehicleRecord, now time.Time) []models.VehicleRecord {
	out := make([]models.VehicleRecord, len(vehicles))
	for i, v := range vehicles {
		if v.ListingStatus == models.StatusActive && IsExpired(v, now) {
			v.ListingStatus = models.StatusExpired
		}
		out[i] = v
	}
	return out
}
