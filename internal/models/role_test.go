package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoles_Valid(t *testing.T) {
	for _, r := range Roles {
		assert.True(t, r.Valid(), r)
	}
	assert.False(t, Role("manager").Valid())
	assert.False(t, Role("").Valid())
	assert.False(t, Role("Administrator").Valid())
}

func TestParseRole(t *testing.T) {
	r, err := ParseRole("epp_user")
	require.NoError(t, err)
	assert.Equal(t, RoleEPPUser, r)

	_, err = ParseRole("manager")
	require.Error(t, err)
	for _, want := range Roles {
		assert.Contains(t, err.Error(), string(want))
	}
}

func TestRole_UnmarshalJSON(t *testing.T) {
	var u struct {
		Role Role `json:"role"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"role":"coordinator"}`), &u))
	assert.Equal(t, RoleCoordinator, u.Role)

	assert.Error(t, json.Unmarshal([]byte(`{"role":"manager"}`), &u))
	assert.Error(t, json.Unmarshal([]byte(`{"role":1}`), &u))
}
