package main

// CreateFund registers a donation pool with a fixed signer set and approval
// threshold. Administrators only. Re-using an existing id overwrites the
// stored configuration and zeroes the ledger for that id; admins are trusted
// to know what they are doing here.
func CreateFund(payload *string) *string {
	if !isContractInitialized() {
		return errorResponse(errUnauthorized, "contract is not initialized")
	}
	sender := getSenderAddress()
	if !isAdministrator(sender) {
		return errorResponse(errUnauthorized, "sender may not register funds")
	}
	args := decodeCreateFundArgs(payload)
	if args.RequiredSignatures == 0 {
		return errorResponse(errInvalidConfiguration, "required signatures must be at least 1")
	}
	if int(args.RequiredSignatures) > len(args.Signers) {
		return errorResponse(errInvalidConfiguration, "required signatures exceed signer count")
	}
	for _, signer := range args.Signers {
		if !signer.IsValid() {
			return errorResponse(errInvalidConfiguration, "signer list contains an invalid address")
		}
	}
	fund := &Fund{
		ID:                 args.ID,
		Name:               args.Name,
		Purpose:            args.Purpose,
		Signers:            args.Signers,
		RequiredSignatures: args.RequiredSignatures,
		TotalDonations:     0,
		Active:             true,
		CreatedAt:          nowUnix(),
		CreatedBy:          sender,
		Tx:                 getTxID(),
	}
	if fundExists(fund.ID) {
		// Overwrite resets the ledger for the id. Tokens already drawn into
		// custody for the old record stay there with no fund claiming them.
		for _, asset := range validAssets {
			setFundBalance(fund.ID, AssetFromString(asset), 0)
		}
	}
	saveFund(fund)
	emitFundCreated(fund.ID, sender, len(fund.Signers), fund.RequiredSignatures)
	return returnJsonResponse(&fundResponse{Fund: fund, Balances: loadBalances(fund.ID)})
}

// GetFund returns the fund record with its per-asset balances.
func GetFund(payload *string) *string {
	id := decodeFundIDArg(payload)
	fund := loadFund(id)
	if fund == nil {
		return errorResponse(errNotFound, "unknown fund: "+id)
	}
	return returnJsonResponse(&fundResponse{Fund: fund, Balances: loadBalances(id)})
}

// GetFundBalance answers a single (fund, asset) balance query.
func GetFundBalance(payload *string) *string {
	fundID, asset := decodeFundAssetArgs(payload)
	if !fundExists(fundID) {
		return errorResponse(errNotFound, "unknown fund: "+fundID)
	}
	return returnJsonResponse(&balanceResponse{
		FundID:  fundID,
		Asset:   asset.String(),
		Balance: getFundBalance(fundID, asset),
	})
}

// ListFunds returns every registered fund id.
func ListFunds(payload *string) *string {
	return returnJsonResponse(&idListResponse{IDs: loadFundIndex()})
}

// SetFundActive toggles whether a fund accepts donations and new withdrawal
// proposals. Administrators only.
func SetFundActive(payload *string) *string {
	if !isContractInitialized() {
		return errorResponse(errUnauthorized, "contract is not initialized")
	}
	sender := getSenderAddress()
	if !isAdministrator(sender) {
		return errorResponse(errUnauthorized, "sender may not change fund status")
	}
	fundID, active := decodeSetActiveArgs(payload)
	fund := loadFund(fundID)
	if fund == nil {
		return errorResponse(errNotFound, "unknown fund: "+fundID)
	}
	if fund.Active == active {
		return returnJsonResponse(&statusResponse{ID: fundID, Status: "unchanged"})
	}
	fund.Active = active
	saveFund(fund)
	emitFundStatusChanged(fundID, active, sender)
	status := "deactivated"
	if active {
		status = "activated"
	}
	return returnJsonResponse(&statusResponse{ID: fundID, Status: status})
}
