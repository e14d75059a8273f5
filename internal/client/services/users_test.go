package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wheelmarket/wheelmarket/internal/models"
	"github.com/wheelmarket/wheelmarket/internal/common"
)

func TestGetUsers_SanitizesRemoteRecords(t *testing.T) {
	gw := &fakeGateway{users: []models.UserRecord{
		{Name: "A", Email: "a@b.com", Password: "hunter2", Role: models.RoleCustomer},
	}}
	s, _ := newTestService(t, gw, false)

	users, err := s.GetUsers(context.Background())
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Empty(t, users[0].Password)
}

func TestGetUsers_SeedsOfflineDefaults(t *testing.T) {
	gw := &fakeGateway{failing: true}
	s, _ := newTestService(t, gw, false)

	users, err := s.GetUsers(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, users)
	for _, u := range users {
		assert.Empty(t, u.Password)
	}
}

// A rejected login is a normal result and the session stays
// untouched.
func TestLogin_RejectionLeavesSessionUnchanged(t *testing.T) {
	gw := &fakeGateway{loginResult: &models.AuthResult{Success: false, Reason: "Invalid credentials"}}
	s, _ := newTestService(t, gw, false)
	ctx := context.Background()

	res, err := s.Login(ctx, "test@test.com", "wrongpassword", "")
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, "Invalid credentials", res.Reason)
	assert.Nil(t, s.CurrentUser(ctx))
}

func TestLogin_SuccessPersistsSanitizedSession(t *testing.T) {
	u := models.UserRecord{Name: "A", Email: "a@b.com", Password: "hunter2", Role: models.RoleSeller}
	gw := &fakeGateway{loginResult: &models.AuthResult{Success: true, User: &u, Token: "tok123"}}
	s, st := newTestService(t, gw, false)
	ctx := context.Background()

	res, err := s.Login(ctx, "a@b.com", "hunter2", "")
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.Empty(t, res.User.Password)

	cur := s.CurrentUser(ctx)
	require.NotNil(t, cur)
	assert.Equal(t, "a@b.com", cur.Email)
	assert.Empty(t, cur.Password)

	// the gateway credentials now see the session token
	creds := NewCredentials(st)
	assert.Equal(t, "tok123", creds.AccessToken(ctx))
	assert.Equal(t, "a@b.com", creds.SessionEmail(ctx))
}

func TestLogin_TransportFailureFallsBackToLocalVerifier(t *testing.T) {
	gw := &fakeGateway{failing: true}
	s, _ := newTestService(t, gw, false)
	ctx := context.Background()

	// demo account from the bundled dataset
	res, err := s.Login(ctx, "buyer@wheelmarket.example", "buyer123", "")
	require.NoError(t, err)
	require.True(t, res.Success)
	assert.Empty(t, res.User.Password)

	// wrong password fails the same way online login would
	s.Logout(ctx)
	res, err = s.Login(ctx, "buyer@wheelmarket.example", "nope", "")
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Nil(t, s.CurrentUser(ctx))
}

// Duplicate registration is rejected case-insensitively before any write.
func TestRegister_DuplicateEmailRejected(t *testing.T) {
	gw := &fakeGateway{users: []models.UserRecord{{Name: "A", Email: "taken@x.com"}}}
	s, _ := newTestService(t, gw, false)
	ctx := context.Background()

	res, err := s.Register(ctx, models.Registration{
		Name: "B", Email: "TAKEN@X.COM", Password: "secret1", Role: models.RoleCustomer,
	})
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, common.DuplicateEmailReason, res.Reason)

	// no second record was created
	users, err := s.GetUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestRegister_SuccessCreatesSessionAndRecord(t *testing.T) {
	gw := &fakeGateway{}
	s, _ := newTestService(t, gw, false)
	ctx := context.Background()

	res, err := s.Register(ctx, models.Registration{
		Name: "New", Email: "new@x.com", Password: "secret1", Role: models.RoleCustomer,
	})
	require.NoError(t, err)
	require.True(t, res.Success)

	cur := s.CurrentUser(ctx)
	require.NotNil(t, cur)
	assert.Equal(t, "new@x.com", cur.Email)
}

func TestRegister_ValidationBeforeAnything(t *testing.T) {
	gw := &fakeGateway{}
	s, _ := newTestService(t, gw, false)

	_, err := s.Register(context.Background(), models.Registration{Email: "bad"})
	require.Error(t, err)
	assert.Zero(t, gw.calls)
}

func TestRegister_OfflineThenLocalLogin(t *testing.T) {
	gw := &fakeGateway{failing: true}
	s, _ := newTestService(t, gw, false)
	ctx := context.Background()

	res, err := s.Register(ctx, models.Registration{
		Name: "Off", Email: "off@x.com", Password: "secret1", Role: models.RoleSeller,
	})
	require.NoError(t, err)
	require.True(t, res.Success)

	s.Logout(ctx)

	res, err = s.Login(ctx, "off@x.com", "secret1", "")
	require.NoError(t, err)
	assert.True(t, res.Success)
}
