package services

import (
	"context"

	"github.com/wheelmarket/wheelmarket/internal/client/store"
	"github.com/wheelmarket/wheelmarket/internal/common"
)

// maxComparison is the most vehicles a comparison view can hold.
const maxComparison = 4

// Wishlist returns the saved vehicle ids for a user.
func (s *DataService) Wishlist(ctx context.Context, email string) []int64 {
	var ids []int64
	s.store.Load(ctx, store.WishlistKey(email), &ids)
	return ids
}

// ToggleWishlist adds the vehicle to the user's wishlist, or removes it when
// already present, and returns the updated list.
func (s *DataService) ToggleWishlist(ctx context.Context, email string, vehicleID int64) []int64 {
	ids := s.Wishlist(ctx, email)

	out := make([]int64, 0, len(ids)+1)
	removed := false
	for _, id := range ids {
		if id == vehicleID {
			removed = true
			continue
		}
		out = append(out, id)
	}
	if !removed {
		out = append(out, vehicleID)
	}

	if err := s.store.Save(ctx, store.WishlistKey(email), out); err != nil {
		s.log.Error(ctx, "failed to persist wishlist", "error", err)
	}
	return out
}

// ComparisonList returns the vehicles queued for side-by-side comparison.
func (s *DataService) ComparisonList(ctx context.Context) []int64 {
	var ids []int64
	s.store.Load(ctx, store.KeyComparison, &ids)
	return ids
}

// AddToComparison appends a vehicle to the comparison list. Adding a vehicle
// that is already listed is a no-op; a full list returns ErrComparisonFull.
func (s *DataService) AddToComparison(ctx context.Context, vehicleID int64) ([]int64, error) {
	ids := s.ComparisonList(ctx)
	for _, id := range ids {
		if id == vehicleID {
			return ids, nil
		}
	}
	if len(ids) >= maxComparison {
		return ids, common.ErrComparisonFull
	}

	ids = append(ids, vehicleID)
	if err := s.store.Save(ctx, store.KeyComparison, ids); err != nil {
		s.log.Error(ctx, "failed to persist comparison list", "error", err)
	}
	return ids, nil
}

// RemoveFromComparison drops a vehicle from the comparison list.
func (s *DataService) RemoveFromComparison(ctx context.Context, vehicleID int64) []int64 {
	ids := s.ComparisonList(ctx)
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if id != vehicleID {
			out = append(out, id)
		}
	}
	if err := s.store.Save(ctx, store.KeyComparison, out); err != nil {
		s.log.Error(ctx, "failed to persist comparison list", "error", err)
	}
	return out
}

func (s *DataService) bumpCounter(ctx context.Context, key string, vehicleID int64) int64 {
	counts := make(map[int64]int64)
	s.store.Load(ctx, key, &counts)
	counts[vehicleID]++
	if err := s.store.Save(ctx, key, counts); err != nil {
		s.log.Error(ctx, "failed to persist counter", "key", key, "error", err)
	}
	return counts[vehicleID]
}

// RecordPhoneView increments the per-vehicle phone-reveal counter and returns
// the new value.
func (s *DataService) RecordPhoneView(ctx context.Context, vehicleID int64) int64 {
	return s.bumpCounter(ctx, store.KeyPhoneViews, vehicleID)
}

// RecordShare increments the per-vehicle share counter and returns the new
// value.
func (s *DataService) RecordShare(ctx context.Context, vehicleID int64) int64 {
	return s.bumpCounter(ctx, store.KeyShareCounts, vehicleID)
}
