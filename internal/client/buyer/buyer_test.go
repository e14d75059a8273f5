package buyer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wheelmarket/wheelmarket/internal/models"
	"github.com/wheelmarket/wheelmarket/internal/client/store"
	"github.com/wheelmarket/wheelmarket/internal/logging"

	_ "modernc.org/sqlite"
)

func newService(t *testing.T) *Service {
	t.Helper()
	db, err := store.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	st := store.New(store.NewSQLiteKV(db, 0), logging.Default())
	return NewService(st, logging.Default())
}

const email = "buyer@wheelmarket.example"

func TestSavedSearch_CreateAssignsSequentialIDs(t *testing.T) {
	s := newService(t)
	ctx := context.Background()

	first, err := s.CreateSavedSearch(ctx, models.SavedSearch{UserEmail: email, Make: "Toyota"})
	require.NoError(t, err)
	second, err := s.CreateSavedSearch(ctx, models.SavedSearch{UserEmail: email, Make: "Honda"})
	require.NoError(t, err)

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
	assert.False(t, first.CreatedAt.IsZero())

	searches := s.SavedSearches(ctx, email)
	assert.Len(t, searches, 2)
}

func TestSavedSearch_IDsScopedPerUser(t *testing.T) {
	s := newService(t)
	ctx := context.Background()

	a, err := s.CreateSavedSearch(ctx, models.SavedSearch{UserEmail: "a@x.com"})
	require.NoError(t, err)
	b, err := s.CreateSavedSearch(ctx, models.SavedSearch{UserEmail: "b@x.com"})
	require.NoError(t, err)

	assert.Equal(t, int64(1), a.ID)
	assert.Equal(t, int64(1), b.ID)
}

func TestSavedSearch_UpdatePreservesCreatedAt(t *testing.T) {
	s := newService(t)
	ctx := context.Background()

	created, err := s.CreateSavedSearch(ctx, models.SavedSearch{UserEmail: email, Make: "Toyota"})
	require.NoError(t, err)

	changed := *created
	changed.Make = "Honda"
	changed.CreatedAt = changed.CreatedAt.AddDate(1, 0, 0) // attempt to tamper

	updated, err := s.UpdateSavedSearch(ctx, changed)
	require.NoError(t, err)
	assert.Equal(t, "Honda", updated.Make)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
}

func TestSavedSearch_UpdateUnknownID(t *testing.T) {
	s := newService(t)

	_, err := s.UpdateSavedSearch(context.Background(), models.SavedSearch{UserEmail: email, ID: 99})
	assert.Error(t, err)
}

func TestSavedSearch_Delete(t *testing.T) {
	s := newService(t)
	ctx := context.Background()

	created, err := s.CreateSavedSearch(ctx, models.SavedSearch{UserEmail: email})
	require.NoError(t, err)

	s.DeleteSavedSearch(ctx, email, created.ID)
	s.DeleteSavedSearch(ctx, email, created.ID) // idempotent

	assert.Empty(t, s.SavedSearches(ctx, email))
}

func TestMatchesSearch(t *testing.T) {
	v := models.VehicleRecord{
		Make: "Toyota", Model: "Corolla", Year: 2021, Price: 18500,
		FuelType: "petrol", Transmission: "automatic", Category: "sedan", City: "Riga",
	}

	tests := []struct {
		name   string
		search models.SavedSearch
		want   bool
	}{
		{"empty search matches everything", models.SavedSearch{}, true},
		{"make case-insensitive", models.SavedSearch{Make: "toyota"}, true},
		{"wrong make", models.SavedSearch{Make: "Honda"}, false},
		{"price in range", models.SavedSearch{MinPrice: 15000, MaxPrice: 20000}, true},
		{"price above max", models.SavedSearch{MaxPrice: 15000}, false},
		{"price below min", models.SavedSearch{MinPrice: 19000}, false},
		{"year range", models.SavedSearch{MinYear: 2020, MaxYear: 2022}, true},
		{"year too old", models.SavedSearch{MinYear: 2022}, false},
		{"all filters conjoined", models.SavedSearch{Make: "Toyota", City: "Vilnius"}, false},
		{"full match", models.SavedSearch{
			Make: "Toyota", Model: "corolla", Category: "sedan",
			FuelType: "petrol", Transmission: "automatic", City: "riga",
			MinPrice: 10000, MaxPrice: 20000, MinYear: 2019, MaxYear: 2022,
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MatchesSearch(tt.search, v))
		})
	}
}

func TestMatchingVehicles(t *testing.T) {
	vehicles := []models.VehicleRecord{
		{ID: 1, Make: "Toyota", Model: "Corolla"},
		{ID: 2, Make: "Honda", Model: "Civic"},
	}

	got := MatchingVehicles(models.SavedSearch{Make: "Honda"}, vehicles)
	require.Len(t, got, 1)
	assert.Equal(t, int64(2), got[0].ID)
}

func TestCheckPriceDrops_Watermark(t *testing.T) {
	s := newService(t)
	ctx := context.Background()

	vehicles := []models.VehicleRecord{
		{ID: 1, Make: "Toyota", Model: "Corolla", Price: 18000},
		{ID: 2, Make: "Honda", Model: "Civic", Price: 15000},
	}
	wishlist := []int64{1, 2}

	// first run only records watermarks
	drops := s.CheckPriceDrops(ctx, wishlist, vehicles)
	assert.Empty(t, drops)

	// price falls on vehicle 1
	vehicles[0].Price = 17000
	drops = s.CheckPriceDrops(ctx, wishlist, vehicles)
	require.Len(t, drops, 1)
	assert.Equal(t, int64(1), drops[0].Vehicle.ID)
	assert.Equal(t, 18000.0, drops[0].OldPrice)
	assert.Equal(t, 17000.0, drops[0].NewPrice)

	// unchanged prices: the check itself advanced the watermark
	drops = s.CheckPriceDrops(ctx, wishlist, vehicles)
	assert.Empty(t, drops)
}

func TestCheckPriceDrops_PriceIncreaseIsNotADrop(t *testing.T) {
	s := newService(t)
	ctx := context.Background()

	vehicles := []models.VehicleRecord{{ID: 1, Price: 10000}}
	_ = s.CheckPriceDrops(ctx, []int64{1}, vehicles)

	vehicles[0].Price = 12000
	assert.Empty(t, s.CheckPriceDrops(ctx, []int64{1}, vehicles))
}
