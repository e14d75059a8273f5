package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wheelmarket/wheelmarket/internal/models"
	"github.com/wheelmarket/wheelmarket/internal/client/store"
	"github.com/wheelmarket/wheelmarket/internal/logging"
)

// A successful remote read replaces the cache
// wholesale, and the cached copy answers the next call when the network dies.
func TestGetVehicles_RemoteThenCached(t *testing.T) {
	gw := &fakeGateway{vehicles: []models.VehicleRecord{
		{ID: 1, Make: "Toyota", Model: "Camry", Year: 2020, Price: 25000},
	}}
	s, _ := newTestService(t, gw, false)
	ctx := context.Background()

	got, err := s.GetVehicles(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Camry", got[0].Model)

	gw.failing = true

	cached, err := s.GetVehicles(ctx)
	require.NoError(t, err)
	assert.Equal(t, got, cached)
}

// A pre-seeded cache answers when the gateway rejects.
func TestGetVehicles_FallsBackToPreseededCache(t *testing.T) {
	gw := &fakeGateway{failing: true}
	s, st := newTestService(t, gw, false)
	ctx := context.Background()

	preseeded := []models.VehicleRecord{{ID: 1, Make: "Honda", Model: "Civic", Year: 2019, Price: 14900}}
	require.NoError(t, st.Save(ctx, store.KeyVehicles, preseeded))

	got, err := s.GetVehicles(ctx)
	require.NoError(t, err)
	assert.Equal(t, preseeded, got)
}

// With the gateway failing and an empty cache, reads seed from the
// bundled dataset — never an error, never nil.
func TestGetVehicles_SeedsWhenEmpty(t *testing.T) {
	gw := &fakeGateway{failing: true}
	s, st := newTestService(t, gw, false)
	ctx := context.Background()

	got, err := s.GetVehicles(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.NotEmpty(t, got)

	// the seed was persisted for later reads
	var cached []models.VehicleRecord
	require.True(t, st.Load(ctx, store.KeyVehicles, &cached))
	assert.Equal(t, got, cached)
}

// With every durable write blocked by quota, the seed read still returns
// the full bundled collection instead of [].
func TestGetVehicles_QuotaBlockedSeedStillReturnsDefaults(t *testing.T) {
	gw := &fakeGateway{failing: true}
	st := store.New(quotaKV{}, logging.Default())
	s := NewDataService(gw, st, logging.Default(), false)

	got, err := s.GetVehicles(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, got)
}

// quotaKV rejects every write and holds no data.
type quotaKV struct{}

func (quotaKV) Get(ctx context.Context, key string) ([]byte, error)        { return nil, nil }
func (quotaKV) Set(ctx context.Context, key string, value []byte) error    { return store.ErrQuotaExceeded }
func (quotaKV) Delete(ctx context.Context, key string) error               { return nil }
func (quotaKV) Keys(ctx context.Context) ([]string, error)                 { return nil, nil }
func (quotaKV) Clear(ctx context.Context) error                            { return nil }

func TestGetVehicles_LocalOnlyNeverCallsGateway(t *testing.T) {
	gw := &fakeGateway{}
	s, _ := newTestService(t, gw, true)

	_, err := s.GetVehicles(context.Background())
	require.NoError(t, err)
	assert.Zero(t, gw.calls)
}

func TestAddVehicle_RemoteSuccessUpdatesBothTiers(t *testing.T) {
	gw := &fakeGateway{}
	s, st := newTestService(t, gw, false)
	ctx := context.Background()

	created, err := s.AddVehicle(ctx, models.VehicleRecord{Make: "Skoda", Model: "Octavia", Year: 2022, Price: 21000})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, models.StatusActive, created.ListingStatus)
	assert.False(t, created.ExpiresAt.IsZero())

	var cached []models.VehicleRecord
	require.True(t, st.Load(ctx, store.KeyVehicles, &cached))
	assert.Equal(t, created.ID, cached[0].ID) // prepended
}

func TestAddVehicle_ValidationErrorIsSurfaced(t *testing.T) {
	gw := &fakeGateway{}
	s, _ := newTestService(t, gw, false)

	_, err := s.AddVehicle(context.Background(), models.VehicleRecord{Model: "NoMake"})

	var verr *models.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Zero(t, gw.calls) // rejected before any I/O
}

func TestAddVehicle_TransportFailureFallsBackLocally(t *testing.T) {
	gw := &fakeGateway{failing: true}
	s, _ := newTestService(t, gw, false)
	ctx := context.Background()

	created, err := s.AddVehicle(ctx, models.VehicleRecord{Make: "Skoda", Model: "Fabia", Year: 2021, Price: 12000})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	// the write is flagged for reconciliation
	var dirty []string
	st := s.store
	require.True(t, st.Load(ctx, store.KeyPendingSync, &dirty))
	assert.Contains(t, dirty, store.KeyVehicles)
}

func TestUpdateVehicle_ReplacesById(t *testing.T) {
	gw := &fakeGateway{}
	s, _ := newTestService(t, gw, true)
	ctx := context.Background()

	created, err := s.AddVehicle(ctx, models.VehicleRecord{Make: "Skoda", Model: "Fabia", Year: 2021, Price: 12000})
	require.NoError(t, err)

	created.Price = 11000
	updated, err := s.UpdateVehicle(ctx, *created)
	require.NoError(t, err)
	assert.Equal(t, 11000.0, updated.Price)

	all, err := s.GetVehicles(ctx)
	require.NoError(t, err)
	for _, v := range all {
		if v.ID == created.ID {
			assert.Equal(t, 11000.0, v.Price)
		}
	}
}

// Deleting the same id twice leaves the cache exactly as after the first
// delete, with no error.
func TestDeleteVehicle_Idempotent(t *testing.T) {
	gw := &fakeGateway{}
	s, st := newTestService(t, gw, true)
	ctx := context.Background()

	seeded, err := s.GetVehicles(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, seeded)
	id := seeded[0].ID

	require.NoError(t, s.DeleteVehicle(ctx, id))

	var afterFirst []models.VehicleRecord
	require.True(t, st.Load(ctx, store.KeyVehicles, &afterFirst))

	require.NoError(t, s.DeleteVehicle(ctx, id))

	var afterSecond []models.VehicleRecord
	require.True(t, st.Load(ctx, store.KeyVehicles, &afterSecond))
	assert.Equal(t, afterFirst, afterSecond)
	assert.Len(t, afterSecond, len(seeded)-1)
}

func TestGetVehicleData_RemoteAndSeedFallback(t *testing.T) {
	gw := &fakeGateway{taxonomy: models.VehicleTaxonomy{
		"coupe": {{Make: "BMW", Models: []models.ModelEntry{{Name: "M4"}}}},
	}}
	s, _ := newTestService(t, gw, false)
	ctx := context.Background()

	tx, err := s.GetVehicleData(ctx)
	require.NoError(t, err)
	assert.Contains(t, tx, "coupe")

	// empty cache + failing gateway seeds the bundled taxonomy
	gw2 := &fakeGateway{failing: true}
	s2, _ := newTestService(t, gw2, false)
	tx2, err := s2.GetVehicleData(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, tx2)
}
