package services

import (
	"context"
	"time"

	"github.com/wheelmarket/wheelmarket/internal/listing"
	"github.com/wheelmarket/wheelmarket/internal/models"
	"github.com/wheelmarket/wheelmarket/internal/client/seed"
	"github.com/wheelmarket/wheelmarket/internal/client/store"
)

// GetVehicles resolves the vehicle collection. Remote-preferred mode fetches
// the authoritative collection and replaces the cache wholesale; any
// transport failure degrades silently to the cached (or bundled) data.
func (s *DataService) GetVehicles(ctx context.Context) ([]models.VehicleRecord, error) {
	if !s.localOnly {
		remote, err := s.gw.ListVehicles(ctx)
		if err == nil {
			if remote == nil {
				remote = []models.VehicleRecord{}
			}
			if err := s.store.Save(ctx, store.KeyVehicles, remote); err != nil {
				s.log.Error(ctx, "failed to cache vehicles", "error", err)
			}
			return remote, nil
		}
		s.log.Warn(ctx, "vehicle fetch failed, falling back to cache", "error", err)
	}
	return s.localVehicles(ctx), nil
}

// localVehicles reads the cached collection, seeding it from the bundled
// dataset when empty. Seeding persists best-effort: a quota-blocked write
// still returns the bundled records.
func (s *DataService) localVehicles(ctx context.Context) []models.VehicleRecord {
	var cached []models.VehicleRecord
	if s.store.Load(ctx, store.KeyVehicles, &cached) {
		return cached
	}

	seeded, err := seed.Vehicles()
	if err != nil {
		s.log.Error(ctx, "bundled vehicle dataset unreadable", "error", err)
		return []models.VehicleRecord{}
	}
	if err := s.store.Save(ctx, store.KeyVehicles, seeded); err != nil {
		s.log.Error(ctx, "failed to persist vehicle seed", "error", err)
	}
	return seeded
}

func (s *DataService) saveVehicles(ctx context.Context, vehicles []models.VehicleRecord) {
	if err := s.store.Save(ctx, store.KeyVehicles, vehicles); err != nil {
		s.log.Error(ctx, "failed to cache vehicles", "error", err)
	}
}

// stampNewVehicle fills lifecycle defaults on a record entering the system.
func stampNewVehicle(v *models.VehicleRecord) {
	now := time.Now().UTC()
	if v.CreatedAt.IsZero() {
		v.CreatedAt = now
	}
	v.UpdatedAt = now
	if v.ListingStatus == "" {
		v.ListingStatus = models.StatusActive
	}
	if v.ExpiresAt.IsZero() {
		v.ExpiresAt = listing.ExpiresAt(v.CreatedAt)
	}
}

// AddVehicle creates a listing. A validation failure is surfaced as-is — the
// cache would accept the same bad record, so there is no fallback for it.
// Transport failures degrade to a local-only write.
func (s *DataService) AddVehicle(ctx context.Context, v models.VehicleRecord) (*models.VehicleRecord, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	stampNewVehicle(&v)

	if !s.localOnly {
		created, err := s.gw.CreateVehicle(ctx, v)
		if err == nil {
			vehicles := s.localVehicles(ctx)
			s.saveVehicles(ctx, append([]models.VehicleRecord{*created}, vehicles...))
			return created, nil
		}
		s.log.Warn(ctx, "vehicle create failed remotely, keeping local copy", "error", err)
	}

	vehicles := s.localVehicles(ctx)
	if v.ID == 0 {
		v.ID = nextVehicleID(vehicles)
	}
	s.saveVehicles(ctx, append([]models.VehicleRecord{v}, vehicles...))
	s.markDirty(ctx, store.KeyVehicles)
	return &v, nil
}

func nextVehicleID(vehicles []models.VehicleRecord) int64 {
	var max int64
	for _, v := range vehicles {
		if v.ID > max {
			max = v.ID
		}
	}
	return max + 1
}

// UpdateVehicle replaces the record with the same id. The remote write is
// attempted before the cache is touched, so the cache can be stale but never
// ahead of an unconfirmed remote write.
func (s *DataService) UpdateVehicle(ctx context.Context, v models.VehicleRecord) (*models.VehicleRecord, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	v.UpdatedAt = time.Now().UTC()

	if !s.localOnly {
		updated, err := s.gw.UpdateVehicle(ctx, v)
		if err == nil {
			s.saveVehicles(ctx, replaceVehicle(s.localVehicles(ctx), *updated))
			return updated, nil
		}
		s.log.Warn(ctx, "vehicle update failed remotely, keeping local copy", "error", err)
	}

	s.saveVehicles(ctx, replaceVehicle(s.localVehicles(ctx), v))
	s.markDirty(ctx, store.KeyVehicles)
	return &v, nil
}

func replaceVehicle(vehicles []models.VehicleRecord, v models.VehicleRecord) []models.VehicleRecord {
	out := make([]models.VehicleRecord, len(vehicles))
	for i, cur := range vehicles {
		if cur.ID == v.ID {
			out[i] = v
		} else {
			out[i] = cur
		}
	}
	return out
}

// DeleteVehicle removes the record from both tiers. Deleting an id that is
// already gone is a no-op, not an error.
func (s *DataService) DeleteVehicle(ctx context.Context, id int64) error {
	if !s.localOnly {
		if err := s.gw.DeleteVehicle(ctx, id); err == nil {
			s.saveVehicles(ctx, dropVehicle(s.localVehicles(ctx), id))
			return nil
		} else {
			s.log.Warn(ctx, "vehicle delete failed remotely, removing locally", "id", id, "error", err)
		}
	}

	s.saveVehicles(ctx, dropVehicle(s.localVehicles(ctx), id))
	s.markDirty(ctx, store.KeyVehicles)
	return nil
}

func dropVehicle(vehicles []models.VehicleRecord, id int64) []models.VehicleRecord {
	out := make([]models.VehicleRecord, 0, len(vehicles))
	for _, v := range vehicles {
		if v.ID != id {
			out = append(out, v)
		}
	}
	return out
}

// GetVehicleData resolves the category/make/model taxonomy.
func (s *DataService) GetVehicleData(ctx context.Context) (models.VehicleTaxonomy, error) {
	if !s.localOnly {
		remote, err := s.gw.GetVehicleData(ctx)
		if err == nil {
			if err := s.store.Save(ctx, store.KeyTaxonomy, remote); err != nil {
				s.log.Error(ctx, "failed to cache taxonomy", "error", err)
			}
			return remote, nil
		}
		s.log.Warn(ctx, "taxonomy fetch failed, falling back to cache", "error", err)
	}

	var cached models.VehicleTaxonomy
	if s.store.Load(ctx, store.KeyTaxonomy, &cached) {
		return cached, nil
	}

	seeded, err := seed.Taxonomy()
	if err != nil {
		s.log.Error(ctx, "bundled taxonomy unreadable", "error", err)
		return models.VehicleTaxonomy{}, nil
	}
	if err := s.store.Save(ctx, store.KeyTaxonomy, seeded); err != nil {
		s.log.Error(ctx, "failed to persist taxonomy seed", "error", err)
	}
	return seeded, nil
}

// SaveVehicleData stores an updated taxonomy (admin operation).
func (s *DataService) SaveVehicleData(ctx context.Context, data models.VehicleTaxonomy) error {
	if !s.localOnly {
		if err := s.gw.SaveVehicleData(ctx, data); err != nil {
			s.log.Warn(ctx, "taxonomy save failed remotely, keeping local copy", "error", err)
		}
	}
	return s.store.Save(ctx, store.KeyTaxonomy, data)
}
