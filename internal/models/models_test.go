package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_JSONHidesPasswordHash(t *testing.T) {
	raw, err := json.Marshal(User{ID: 3, Username: "alice", PasswordHash: "$2a$10$abc", Role: RoleEmployee, Version: 2})
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, map[string]any{
		"id":       float64(3),
		"username": "alice",
		"role":     RoleEmployee,
		"version":  float64(2),
	}, got)
}

func TestRoleRank(t *testing.T) {
	assert.Less(t, RoleRank(RoleEmployee), RoleRank(RoleManager))
	assert.Zero(t, RoleRank(""))
	assert.Zero(t, RoleRank("Manager"))
}
