package main

import (
	"strings"

	"swipepad/sdk"
)

// Role membership is stored as a ";"-joined address list per role. Lists stay
// tiny (a handful of operators) so the string shuffle is fine.

// loadRoleMembers returns the current member list for a role.
func loadRoleMembers(role string) []string {
	raw := sdk.StateGetObject(roleKey(role))
	if raw == nil || *raw == "" {
		return nil
	}
	return strings.Split(*raw, ";")
}

// saveRoleMembers persists the member list, deleting the key when it empties.
func saveRoleMembers(role string, members []string) {
	key := roleKey(role)
	if len(members) == 0 {
		sdk.StateDeleteObject(key)
		return
	}
	sdk.StateSetObject(key, strings.Join(members, ";"))
}

// hasRole reports whether an address is a member of the given role.
func hasRole(role string, addr sdk.Address) bool {
	target := addr.String()
	for _, member := range loadRoleMembers(role) {
		if member == target {
			return true
		}
	}
	return false
}

// isContractOwner compares against the init config owner.
func isContractOwner(addr sdk.Address) bool {
	cfg := loadContractConfig()
	return cfg != nil && cfg.Owner == addr
}

// isAdministrator is the gate for fund registration and status toggles. The
// owner always passes so a fresh deployment works before any grants happen.
func isAdministrator(addr sdk.Address) bool {
	return isContractOwner(addr) || hasRole(RoleAdministrator, addr)
}

// GrantRole adds an address to a role. Owner and administrators may grant.
func GrantRole(payload *string) *string {
	if !isContractInitialized() {
		return errorResponse(errUnauthorized, "contract is not initialized")
	}
	sender := getSenderAddress()
	if !isAdministrator(sender) {
		return errorResponse(errUnauthorized, "sender may not manage roles")
	}
	role, addr := decodeRoleArgs(payload)
	members := loadRoleMembers(role)
	target := addr.String()
	for _, member := range members {
		if member == target {
			return returnJsonResponse(&statusResponse{ID: target, Status: "already-granted"})
		}
	}
	members = append(members, target)
	saveRoleMembers(role, members)
	emitRoleGranted(role, addr, sender)
	return returnJsonResponse(&statusResponse{ID: target, Status: "granted"})
}

// RevokeRole removes an address from a role. Owner and administrators may revoke.
func RevokeRole(payload *string) *string {
	if !isContractInitialized() {
		return errorResponse(errUnauthorized, "contract is not initialized")
	}
	sender := getSenderAddress()
	if !isAdministrator(sender) {
		return errorResponse(errUnauthorized, "sender may not manage roles")
	}
	role, addr := decodeRoleArgs(payload)
	members := loadRoleMembers(role)
	target := addr.String()
	kept := members[:0]
	found := false
	for _, member := range members {
		if member == target {
			found = true
			continue
		}
		kept = append(kept, member)
	}
	if !found {
		return errorResponse(errNotFound, "address does not hold the role")
	}
	saveRoleMembers(role, kept)
	emitRoleRevoked(role, addr, sender)
	return returnJsonResponse(&statusResponse{ID: target, Status: "revoked"})
}
