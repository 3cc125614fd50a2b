package main

import "swipepad/sdk"

// Donate credits a donation to a fund. The donated asset and amount come from
// the transfer.allow intent attached to the transaction; the payload names the
// target fund. The tokens are drawn into contract custody first, the fund is
// credited only after the draw succeeds.
func Donate(payload *string) *string {
	if !isContractInitialized() {
		return errorResponse(errUnauthorized, "contract is not initialized")
	}
	fundID := decodeFundIDArg(payload)
	fund := loadFund(fundID)
	if fund == nil {
		return errorResponse(errNotFound, "unknown fund: "+fundID)
	}
	if !fund.Active {
		return errorResponse(errFundInactive, "fund is not accepting donations")
	}
	allow := getFirstTransferAllow()
	if allow == nil {
		return errorResponse(errInvalidAmount, "donation requires a transfer.allow intent")
	}
	if allow.Limit <= 0 {
		return errorResponse(errInvalidAmount, "donation amount must be positive")
	}
	sender := getSenderAddress()
	if reason := verifyDonorIdentity(sender); reason != "" {
		return errorResponse(errUnauthorized, reason)
	}
	if err := drawFromSender(sender, allow.Limit, allow.Token); err != nil {
		return errorResponse(errTransferFailed, "could not draw donation into custody")
	}
	newBalance := addFundBalance(fundID, allow.Token, allow.Limit)
	fund.TotalDonations += allow.Limit
	saveFund(fund)
	emitDonation(fundID, sender, allow.Limit, allow.Token)
	return returnJsonResponse(&donationResponse{
		FundID:     fundID,
		Asset:      allow.Token.String(),
		Amount:     allow.Limit,
		NewBalance: newBalance,
	})
}

// verifyDonorIdentity consults the optional verifier contract configured at
// init. Returns an empty string when the donor passes or no verifier is set.
func verifyDonorIdentity(donor sdk.Address) string {
	cfg := loadContractConfig()
	if cfg == nil || cfg.Verifier == "" {
		return ""
	}
	result := sdk.ContractCall(cfg.Verifier, "verify", donor.String(), nil)
	if result == nil || *result != "true" {
		return "donor failed identity verification"
	}
	return ""
}
