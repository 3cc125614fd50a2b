package main

import (
	"strings"

	"swipepad/sdk"
)

func main() {}

// loadContractConfig decodes the pipe-encoded init config, nil before init.
func loadContractConfig() *ContractConfig {
	raw := sdk.StateGetObject(ContractConfigKey)
	if raw == nil || *raw == "" {
		return nil
	}
	parts := strings.SplitN(*raw, "|", 2)
	cfg := &ContractConfig{Owner: sdk.Address(parts[0])}
	if len(parts) > 1 {
		cfg.Verifier = parts[1]
	}
	return cfg
}

// saveContractConfig persists the config as `owner|verifier`.
func saveContractConfig(cfg *ContractConfig) {
	sdk.StateSetObject(ContractConfigKey, cfg.Owner.String()+"|"+cfg.Verifier)
}

// isContractInitialized reports whether ContractInit has run.
func isContractInitialized() bool {
	return loadContractConfig() != nil
}

// ContractInit records the deploying sender as owner and optionally wires an
// identity-verifier contract. Payload: empty, or `verifierContractId`.
// Running it twice is refused so ownership cannot be hijacked.
func ContractInit(payload *string) *string {
	if isContractInitialized() {
		return errorResponse(errUnauthorized, "contract is already initialized")
	}
	owner := getSenderAddress()
	if !owner.IsValid() {
		return errorResponse(errUnauthorized, "init requires a valid sender address")
	}
	verifier := ""
	if payload != nil {
		verifier = normalizeOptionalField(*payload)
	}
	saveContractConfig(&ContractConfig{Owner: owner, Verifier: verifier})
	saveRoleMembers(RoleAdministrator, []string{owner.String()})
	emitInitEvent(owner)
	return returnJsonResponse(&statusResponse{ID: owner.String(), Status: "initialized"})
}
