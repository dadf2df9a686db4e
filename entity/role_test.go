package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRoles(t *testing.T) {
	s, err := ParseRoles([]string{"seller", "rider"})
	require.NoError(t, err)
	assert.True(t, s.Has(RoleSeller))
	assert.True(t, s.Has(RoleRider))
	assert.False(t, s.Has(RoleBuyer))

	_, err = ParseRoles([]string{"admin"})
	assert.Error(t, err)
}

func TestNormalizedAlwaysIncludesBuyer(t *testing.T) {
	s, err := ParseRoles([]string{"seller"})
	require.NoError(t, err)
	assert.Equal(t, []string{"buyer", "seller"}, s.Normalized().Names())

	var empty RoleSet
	assert.Equal(t, []string{"buyer"}, empty.Normalized().Names())
}

func TestRoleSetJSONRoundTrip(t *testing.T) {
	s := RoleBuyer | RoleRider
	b, err := json.Marshal(s)
	require.NoError(t, err)
	assert.JSONEq(t, `["buyer","rider"]`, string(b))

	var back RoleSet
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, s, back)
}
