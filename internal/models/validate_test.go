package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVehicleRecord_ValidateOK(t *testing.T) {
	v := &VehicleRecord{Make: "Toyota", Model: "Camry", Year: 2020, Price: 25000}
	require.NoError(t, v.Validate())
}

func TestVehicleRecord_ValidateReportsAllFields(t *testing.T) {
	v := &VehicleRecord{Year: 1800, Mileage: -1}

	err := v.Validate()
	require.Error(t, err)

	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	// make, model, year, price, mileage all violated
	assert.Len(t, verr.Fields, 5)
	assert.Contains(t, verr.Error(), "Make")
}

func TestRegistration_Validate(t *testing.T) {
	tests := []struct {
		name string
		reg  Registration
		ok   bool
	}{
		{"valid", Registration{Name: "A", Email: "a@b.com", Password: "secret1", Role: RoleCustomer}, true},
		{"bad email", Registration{Name: "A", Email: "nope", Password: "secret1", Role: RoleCustomer}, false},
		{"short password", Registration{Name: "A", Email: "a@b.com", Password: "x", Role: RoleSeller}, false},
		{"unknown role", Registration{Name: "A", Email: "a@b.com", Password: "secret1", Role: Role("root")}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.reg.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				var verr *ValidationError
				assert.True(t, errors.As(err, &verr))
			}
		})
	}
}

func TestSameEmail(t *testing.T) {
	assert.True(t, SameEmail("Test@Test.COM", " test@test.com "))
	assert.False(t, SameEmail("a@b.com", "b@a.com"))
}

func TestUserRecord_Sanitized(t *testing.T) {
	u := UserRecord{Name: "A", Email: "a@b.com", Password: "secret"}
	s := u.Sanitized()
	assert.Empty(t, s.Password)
	assert.Equal(t, "secret", u.Password) // original untouched
}
