package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wheelmarket/wheelmarket/internal/client/api"
	"github.com/wheelmarket/wheelmarket/internal/models"
	"github.com/wheelmarket/wheelmarket/internal/client/store"
	"github.com/wheelmarket/wheelmarket/internal/logging"

	_ "modernc.org/sqlite"
)

// fakeGateway is a scriptable api.Gateway. With failing=true every method
// returns a transport error; calls counts every method invocation either way.
type fakeGateway struct {
	vehicles []models.VehicleRecord
	users    []models.UserRecord
	taxonomy models.VehicleTaxonomy

	loginResult    *models.AuthResult
	registerResult *models.AuthResult

	failing bool
	calls   int
}

func (g *fakeGateway) err() error {
	return &api.APIError{Message: "connection refused"}
}

func (g *fakeGateway) ListVehicles(ctx context.Context) ([]models.VehicleRecord, error) {
	g.calls++
	if g.failing {
		return nil, g.err()
	}
	return g.vehicles, nil
}

func (g *fakeGateway) CreateVehicle(ctx context.Context, v models.VehicleRecord) (*models.VehicleRecord, error) {
	g.calls++
	if g.failing {
		return nil, g.err()
	}
	if v.ID == 0 {
		v.ID = int64(len(g.vehicles)) + 100
	}
	g.vehicles = append([]models.VehicleRecord{v}, g.vehicles...)
	return &v, nil
}

func (g *fakeGateway) UpdateVehicle(ctx context.Context, v models.VehicleRecord) (*models.VehicleRecord, error) {
	g.calls++
	if g.failing {
		return nil, g.err()
	}
	for i, cur := range g.vehicles {
		if cur.ID == v.ID {
			g.vehicles[i] = v
		}
	}
	return &v, nil
}

func (g *fakeGateway) DeleteVehicle(ctx context.Context, id int64) error {
	g.calls++
	if g.failing {
		return g.err()
	}
	out := g.vehicles[:0]
	for _, v := range g.vehicles {
		if v.ID != id {
			out = append(out, v)
		}
	}
	g.vehicles = out
	return nil
}

func (g *fakeGateway) ListUsers(ctx context.Context) ([]models.UserRecord, error) {
	g.calls++
	if g.failing {
		return nil, g.err()
	}
	return g.users, nil
}

func (g *fakeGateway) Login(ctx context.Context, email, password string, role models.Role) (*models.AuthResult, error) {
	g.calls++
	if g.failing {
		return nil, g.err()
	}
	return g.loginResult, nil
}

func (g *fakeGateway) Register(ctx context.Context, reg models.Registration) (*models.AuthResult, error) {
	g.calls++
	if g.failing {
		return nil, g.err()
	}
	if g.registerResult != nil {
		return g.registerResult, nil
	}
	u := models.UserRecord{Name: reg.Name, Email: reg.Email, Role: reg.Role, Status: models.UserActive}
	g.users = append(g.users, u)
	return &models.AuthResult{Success: true, User: &u, Token: "tok"}, nil
}

func (g *fakeGateway) GetVehicleData(ctx context.Context) (models.VehicleTaxonomy, error) {
	g.calls++
	if g.failing {
		return nil, g.err()
	}
	return g.taxonomy, nil
}

func (g *fakeGateway) SaveVehicleData(ctx context.Context, data models.VehicleTaxonomy) error {
	g.calls++
	if g.failing {
		return g.err()
	}
	g.taxonomy = data
	return nil
}

func (g *fakeGateway) MediaUploadURL(ctx context.Context) (string, string, error) {
	g.calls++
	if g.failing {
		return "", "", g.err()
	}
	return "https://s3.example/upload", "listings/test/key", nil
}

func (g *fakeGateway) Ping(ctx context.Context) error {
	g.calls++
	if g.failing {
		return g.err()
	}
	return nil
}

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	db, err := store.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return store.New(store.NewSQLiteKV(db, 0), logging.Default())
}

func newTestService(t *testing.T, gw api.Gateway, localOnly bool) (*DataService, *store.Store) {
	t.Helper()
	st := newTestStore(t)
	return NewDataService(gw, st, logging.Default(), localOnly), st
}
