// Package buyer implements buyer-side derived services: saved searches with
// filter matching, and price-drop detection over the wishlist. Saved searches
// are entirely client-owned — they live only in the local store and have no
// remote counterpart.
package buyer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/wheelmarket/wheelmarket/internal/models"
	"github.com/wheelmarket/wheelmarket/internal/client/store"
	"github.com/wheelmarket/wheelmarket/internal/common"
	"github.com/wheelmarket/wheelmarket/internal/logging"
)

type Service struct {
	store *store.Store
	log   logging.Logger
}

func NewService(st *store.Store, log logging.Logger) *Service {
	return &Service{store: st, log: log}
}

// SavedSearches lists a user's stored filters.
func (s *Service) SavedSearches(ctx context.Context, email string) []models.SavedSearch {
	var searches []models.SavedSearch
	s.store.Load(ctx, store.SavedSearchesKey(email), &searches)
	return searches
}

func (s *Service) save(ctx context.Context, email string, searches []models.SavedSearch) {
	if err := s.store.Save(ctx, store.SavedSearchesKey(email), searches); err != nil {
		s.log.Error(ctx, "failed to persist saved searches", "error", err)
	}
}

// CreateSavedSearch stores a new filter for search.UserEmail, assigning the
// next free per-user id and stamping CreatedAt.
func (s *Service) CreateSavedSearch(ctx context.Context, search models.SavedSearch) (*models.SavedSearch, error) {
	if search.UserEmail == "" {
		return nil, fmt.Errorf("saved search: %w: user email required", common.ErrInternal)
	}

	searches := s.SavedSearches(ctx, search.UserEmail)

	var max int64
	for _, existing := range searches {
		if existing.ID > max {
			max = existing.ID
		}
	}
	search.ID = max + 1
	search.CreatedAt = time.Now().UTC()

	s.save(ctx, search.UserEmail, append(searches, search))
	return &search, nil
}

// UpdateSavedSearch replaces the filter with the same id. CreatedAt is
// immutable: the stored stamp always wins.
func (s *Service) UpdateSavedSearch(ctx context.Context, search models.SavedSearch) (*models.SavedSearch, error) {
	searches := s.SavedSearches(ctx, search.UserEmail)

	for i, existing := range searches {
		if existing.ID != search.ID {
			continue
		}
		search.CreatedAt = existing.CreatedAt
		searches[i] = search
		s.save(ctx, search.UserEmail, searches)
		return &search, nil
	}
	return nil, common.ErrNotFound
}

// DeleteSavedSearch removes a filter. Unknown ids are ignored.
func (s *Service) DeleteSavedSearch(ctx context.Context, email string, id int64) {
	searches := s.SavedSearches(ctx, email)
	out := make([]models.SavedSearch, 0, len(searches))
	for _, existing := range searches {
		if existing.ID != id {
			out = append(out, existing)
		}
	}
	s.save(ctx, email, out)
}

// MatchesSearch reports whether a vehicle satisfies every specified filter
// field of a saved search. Unset fields impose no constraint.
func MatchesSearch(search models.SavedSearch, v models.VehicleRecord) bool {
	if !fieldMatches(search.Make, v.Make) ||
		!fieldMatches(search.Model, v.Model) ||
		!fieldMatches(search.Category, v.Category) ||
		!fieldMatches(search.FuelType, v.FuelType) ||
		!fieldMatches(search.Transmission, v.Transmission) ||
		!fieldMatches(search.City, v.City) {
		return false
	}

	if search.MinPrice > 0 && v.Price < search.MinPrice {
		return false
	}
	if search.MaxPrice > 0 && v.Price > search.MaxPrice {
		return false
	}
	if search.MinYear > 0 && v.Year < search.MinYear {
		return false
	}
	if search.MaxYear > 0 && v.Year > search.MaxYear {
		return false
	}
	return true
}

func fieldMatches(want, got string) bool {
	return want == "" || strings.EqualFold(want, got)
}

// MatchingVehicles filters a collection by a saved search.
func MatchingVehicles(search models.SavedSearch, vehicles []models.VehicleRecord) []models.VehicleRecord {
	var out []models.VehicleRecord
	for _, v := range vehicles {
		if MatchesSearch(search, v) {
			out = append(out, v)
		}
	}
	return out
}

// PriceDrop describes a wishlist vehicle whose price fell since the last
// check.
type PriceDrop struct {
	Vehicle  models.VehicleRecord
	OldPrice float64
	NewPrice float64
}

// CheckPriceDrops compares the current price of each wishlist vehicle against
// the recorded watermark and reports the drops. Checking advances the
// watermark: a second call with unchanged prices reports nothing.
func (s *Service) CheckPriceDrops(ctx context.Context, wishlist []int64, vehicles []models.VehicleRecord) []PriceDrop {
	history := make(map[int64]float64)
	s.store.Load(ctx, store.KeyPriceHistory, &history)

	byID := make(map[int64]models.VehicleRecord, len(vehicles))
	for _, v := range vehicles {
		byID[v.ID] = v
	}

	var drops []PriceDrop
	for _, id := range wishlist {
		v, ok := byID[id]
		if !ok {
			continue
		}
		if prev, seen := history[id]; seen && v.Price < prev {
			drops = append(drops, PriceDrop{Vehicle: v, OldPrice: prev, NewPrice: v.Price})
		}
		history[id] = v.Price
	}

	if err := s.store.Save(ctx, store.KeyPriceHistory, history); err != nil {
		s.log.Error(ctx, "failed to persist price history", "error", err)
	}
	return drops
}
