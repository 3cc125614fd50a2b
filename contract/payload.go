package main

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"swipepad/sdk"
)

// Payloads arrive as single pipe-delimited strings, the cheapest format to
// decode inside the wasm target. Malformed payloads abort; domain rules are
// enforced by the entrypoints and answered as error responses.

// decodeCreateFundArgs unpacks `id|name|purpose|signer1;signer2|required`.
func decodeCreateFundArgs(payload *string) *CreateFundArgs {
	raw := unwrapPayload(payload, "fund payload missing")
	parts := strings.Split(raw, "|")
	if len(parts) < 5 {
		sdk.Abort("fund payload requires id|name|purpose|signers|required")
	}
	id := parseFundIDField(parts[0])
	name := strings.TrimSpace(parts[1])
	purpose := strings.TrimSpace(parts[2])
	if len(name) > MaxNameLength || len(purpose) > MaxNameLength {
		sdk.Abort(fmt.Sprintf("fund text exceeds maximum length of %d characters", MaxNameLength))
	}
	signers := parseAddressList(parts[3])
	if len(signers) > MaxSigners {
		sdk.Abort(fmt.Sprintf("signer set exceeds maximum of %d entries", MaxSigners))
	}
	required := parseUintField(parts[4], "required signatures")
	if required > math.MaxUint32 {
		sdk.Abort("required signatures out of range")
	}
	return &CreateFundArgs{
		ID:                 id,
		Name:               name,
		Purpose:            purpose,
		Signers:            signers,
		RequiredSignatures: uint32(required),
	}
}

// decodeFundIDArg handles the single-field payloads (donate, fund lookup);
// for donations the asset and amount ride on the intent instead.
func decodeFundIDArg(payload *string) string {
	raw := unwrapPayload(payload, "fund id missing")
	return parseFundIDField(raw)
}

// decodeProposeWithdrawalArgs unpacks `fundId|amount|asset|destination`.
func decodeProposeWithdrawalArgs(payload *string) *ProposeWithdrawalArgs {
	raw := unwrapPayload(payload, "withdrawal payload missing")
	parts := strings.Split(raw, "|")
	if len(parts) < 4 {
		sdk.Abort("withdrawal payload requires fundId|amount|asset|destination")
	}
	fundID := parseFundIDField(parts[0])
	amount := FloatToAmount(mustParseFloat(parts[1], "invalid withdrawal amount"))
	asset := strings.TrimSpace(parts[2])
	if !isValidAsset(asset) {
		sdk.Abort("invalid withdrawal asset")
	}
	destination := AddressFromString(strings.TrimSpace(parts[3]))
	return &ProposeWithdrawalArgs{
		FundID:      fundID,
		Amount:      amount,
		Asset:       AssetFromString(asset),
		Destination: destination,
	}
}

// decodeFundAssetArgs unpacks `fundId|asset` for balance queries.
func decodeFundAssetArgs(payload *string) (string, sdk.Asset) {
	raw := unwrapPayload(payload, "balance payload missing")
	parts := strings.Split(raw, "|")
	if len(parts) < 2 {
		sdk.Abort("balance payload requires fundId|asset")
	}
	fundID := parseFundIDField(parts[0])
	asset := strings.TrimSpace(parts[1])
	if !isValidAsset(asset) {
		sdk.Abort("invalid balance asset")
	}
	return fundID, AssetFromString(asset)
}

// decodeSetActiveArgs unpacks `fundId|active`.
func decodeSetActiveArgs(payload *string) (string, bool) {
	raw := unwrapPayload(payload, "status payload missing")
	parts := strings.Split(raw, "|")
	if len(parts) < 2 {
		sdk.Abort("status payload requires fundId|active")
	}
	return parseFundIDField(parts[0]), parseBoolField(parts[1])
}

// decodeRoleArgs unpacks `role|address` for grants and revocations.
func decodeRoleArgs(payload *string) (string, sdk.Address) {
	raw := unwrapPayload(payload, "role payload missing")
	parts := strings.Split(raw, "|")
	if len(parts) < 2 {
		sdk.Abort("role payload requires role|address")
	}
	role := strings.ToLower(strings.TrimSpace(parts[0]))
	if role != RoleAdministrator && role != RoleFundManager {
		sdk.Abort("unknown role")
	}
	addr := AddressFromString(strings.TrimSpace(parts[1]))
	if !addr.IsValid() {
		sdk.Abort("invalid role address")
	}
	return role, addr
}

// decodeIDArg is the shared single-field decoder for proposal ids.
func decodeIDArg(payload *string, errMsg string) string {
	raw := unwrapPayload(payload, errMsg)
	return strings.TrimSpace(raw)
}

// unwrapPayload trims quotes and whitespace, aborting if the payload is empty.
func unwrapPayload(payload *string, errMsg string) string {
	if payload == nil {
		sdk.Abort(errMsg)
	}
	raw := strings.TrimSpace(*payload)
	if raw == "" {
		sdk.Abort(errMsg)
	}
	if len(raw) >= 2 {
		first := raw[0]
		last := raw[len(raw)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
			if unquoted, err := strconv.Unquote(raw); err == nil {
				return unquoted
			}
			raw = strings.TrimSpace(raw[1 : len(raw)-1])
			if raw == "" {
				sdk.Abort(errMsg)
			}
		}
	}
	return raw
}

// parseFundIDField keeps fund ids printable and delimiter-free.
func parseFundIDField(val string) string {
	val = strings.TrimSpace(val)
	if val == "" {
		sdk.Abort("fund id required")
	}
	if len(val) > MaxFundIDLength {
		sdk.Abort(fmt.Sprintf("fund id exceeds maximum length of %d characters", MaxFundIDLength))
	}
	if strings.ContainsAny(val, "|;") {
		sdk.Abort("fund id must not contain delimiters")
	}
	return val
}

// parseUintField is the uint variant used for thresholds and counters.
func parseUintField(val string, field string) uint64 {
	val = strings.TrimSpace(val)
	if val == "" {
		return 0
	}
	n, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		sdk.Abort(fmt.Sprintf("invalid %s", field))
	}
	return n
}

// parseBoolField accepts a couple of truthy keywords, defaulting to false for unknown text.
func parseBoolField(val string) bool {
	switch strings.ToLower(strings.TrimSpace(val)) {
	case "1", "true", "yes", "y", "active":
		return true
	default:
		return false
	}
}

// mustParseFloat parses a float or aborts with the given message.
func mustParseFloat(s string, errMsg string) float64 {
	val, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		sdk.Abort(errMsg)
	}
	return val
}

// parseAddressList accepts comma/semicolon separated addresses and normalizes them.
func parseAddressList(val string) []sdk.Address {
	val = strings.TrimSpace(val)
	if val == "" {
		return nil
	}
	parts := strings.FieldsFunc(val, func(r rune) bool {
		return r == ';' || r == ',' || r == '\n' || r == '\t'
	})
	seen := map[string]struct{}{}
	addresses := make([]sdk.Address, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if _, ok := seen[part]; ok {
			continue
		}
		seen[part] = struct{}{}
		addresses = append(addresses, AddressFromString(part))
	}
	if len(addresses) == 0 {
		return nil
	}
	return addresses
}

// normalizeOptionalField trims funky placeholders like "" so metadata stays clean.
func normalizeOptionalField(val string) string {
	val = strings.TrimSpace(val)
	if val == "" || val == "\"\"" || val == "''" {
		return ""
	}
	return val
}
