package services

import (
	"context"

	"github.com/wheelmarket/wheelmarket/internal/models"
	"github.com/wheelmarket/wheelmarket/internal/client/store"
)

// markDirty flags a collection as locally modified so SyncWhenOnline knows to
// reconcile it.
func (s *DataService) markDirty(ctx context.Context, key string) {
	var dirty []string
	s.store.Load(ctx, store.KeyPendingSync, &dirty)
	for _, k := range dirty {
		if k == key {
			return
		}
	}
	dirty = append(dirty, key)
	if err := s.store.Save(ctx, store.KeyPendingSync, dirty); err != nil {
		s.log.Error(ctx, "failed to persist pending-sync flags", "error", err)
	}
}

// SyncWhenOnline reconciles locally modified collections with the server.
// It is meant to be invoked on a connectivity-restored signal and is a no-op
// in local-only mode or while offline (no gateway call is made).
//
// The merge is additive and best-effort: the remote record wins for every
// identity present on both sides, records present only locally are kept.
// Divergent concurrent edits to the same record are not merged field-by-field.
// Local-only writes are never replayed against the server.
func (s *DataService) SyncWhenOnline(ctx context.Context, online bool) error {
	if s.localOnly || !online {
		return nil
	}

	var dirty []string
	if !s.store.Load(ctx, store.KeyPendingSync, &dirty) || len(dirty) == 0 {
		return nil
	}

	remaining := make([]string, 0, len(dirty))
	for _, key := range dirty {
		var err error
		switch key {
		case store.KeyVehicles:
			err = s.reconcileVehicles(ctx)
		case store.KeyUsers:
			err = s.reconcileUsers(ctx)
		default:
			s.log.Warn(ctx, "unknown pending-sync key dropped", "key", key)
			continue
		}
		if err != nil {
			s.log.Warn(ctx, "reconciliation postponed", "collection", key, "error", err)
			remaining = append(remaining, key)
		}
	}

	if len(remaining) == 0 {
		s.store.Delete(ctx, store.KeyPendingSync)
		return nil
	}
	return s.store.Save(ctx, store.KeyPendingSync, remaining)
}

func (s *DataService) reconcileVehicles(ctx context.Context) error {
	remote, err := s.gw.ListVehicles(ctx)
	if err != nil {
		return err
	}

	var local []models.VehicleRecord
	s.store.Load(ctx, store.KeyVehicles, &local)

	known := make(map[int64]struct{}, len(remote))
	for _, v := range remote {
		known[v.ID] = struct{}{}
	}
	merged := remote
	for _, v := range local {
		if _, ok := known[v.ID]; !ok {
			merged = append(merged, v)
		}
	}

	s.saveVehicles(ctx, merged)
	return nil
}

func (s *DataService) reconcileUsers(ctx context.Context) error {
	remote, err := s.gw.ListUsers(ctx)
	if err != nil {
		return err
	}
	remote = sanitizeAll(remote)

	var local []models.UserRecord
	s.store.Load(ctx, store.KeyUsers, &local)

	known := make(map[string]struct{}, len(remote))
	for _, u := range remote {
		known[models.EmailKey(u.Email)] = struct{}{}
	}
	merged := remote
	for _, u := range local {
		if _, ok := known[models.EmailKey(u.Email)]; !ok {
			merged = append(merged, u)
		}
	}

	s.saveUsers(ctx, merged)
	return nil
}
