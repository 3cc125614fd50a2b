package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGrantRoleAddsAdministrator(t *testing.T) {
	resetContract()
	initContract(t, "hive:owner")

	callAs("hive:owner")
	payload := "administrator|hive:deputy"
	env := decodeResponse(t, GrantRole(&payload))
	require.True(t, env.Ok, env.Error)
	assert.True(t, isAdministrator("hive:deputy"))

	// The new administrator can register funds.
	createTestFund(t, "hive:deputy", "f1", "hive:x", 1)
	assert.NotNil(t, loadFund("f1"))
}

func TestGrantRoleRequiresAdministrator(t *testing.T) {
	resetContract()
	initContract(t, "hive:owner")

	callAs("hive:mallory")
	payload := "administrator|hive:mallory"
	env := decodeResponse(t, GrantRole(&payload))
	assert.False(t, env.Ok)
	assert.Equal(t, errUnauthorized, env.Error)
	assert.False(t, hasRole(RoleAdministrator, "hive:mallory"))
}

func TestGrantRoleIdempotent(t *testing.T) {
	resetContract()
	initContract(t, "hive:owner")

	callAs("hive:owner")
	payload := "administrator|hive:deputy"
	decodeResponse(t, GrantRole(&payload))

	callAs("hive:owner")
	env := decodeResponse(t, GrantRole(&payload))
	require.True(t, env.Ok)
	assert.Equal(t, "already-granted", env.Data["status"])
	assert.Len(t, loadRoleMembers(RoleAdministrator), 2)
}

func TestRevokeRole(t *testing.T) {
	resetContract()
	initContract(t, "hive:owner")

	callAs("hive:owner")
	payload := "administrator|hive:deputy"
	decodeResponse(t, GrantRole(&payload))
	require.True(t, isAdministrator("hive:deputy"))

	callAs("hive:owner")
	env := decodeResponse(t, RevokeRole(&payload))
	require.True(t, env.Ok, env.Error)
	assert.False(t, hasRole(RoleAdministrator, "hive:deputy"))

	// Revoking again reports not found.
	callAs("hive:owner")
	env = decodeResponse(t, RevokeRole(&payload))
	assert.False(t, env.Ok)
	assert.Equal(t, errNotFound, env.Error)
}

// The fund-manager role can be granted and revoked but no operation consults
// it; holding it confers nothing.
func TestFundManagerRoleIsInert(t *testing.T) {
	resetContract()
	initContract(t, "hive:owner")

	callAs("hive:owner")
	payload := "fund-manager|hive:manager"
	env := decodeResponse(t, GrantRole(&payload))
	require.True(t, env.Ok, env.Error)
	assert.True(t, hasRole(RoleFundManager, "hive:manager"))

	callAs("hive:manager")
	fundPayload := "f1|Fund|p|hive:x|1"
	env = decodeResponse(t, CreateFund(&fundPayload))
	assert.False(t, env.Ok)
	assert.Equal(t, errUnauthorized, env.Error)
}

func TestUnknownRoleAborts(t *testing.T) {
	resetContract()
	initContract(t, "hive:owner")

	callAs("hive:owner")
	payload := "superuser|hive:deputy"
	assert.Panics(t, func() { GrantRole(&payload) })
}

func TestOwnerAlwaysAdministrator(t *testing.T) {
	resetContract()
	initContract(t, "hive:owner")

	// Even with the member list cleared the owner passes the gate.
	saveRoleMembers(RoleAdministrator, nil)
	assert.True(t, isAdministrator("hive:owner"))
	assert.False(t, isAdministrator("hive:someone"))
}
