package main

// The withdrawal workflow is a two-state machine: a proposal starts Proposed
// and flips to Executed exactly once. There is no rejection, expiry or
// approval revocation; an unexecuted proposal simply stays around.

// ProposeWithdrawal creates a withdrawal request against a fund. The caller
// must be one of the fund's signers. The balance check here is advisory: it
// filters obviously impossible requests but reserves nothing, so competing
// proposals against the same balance all pass and the execution order decides.
func ProposeWithdrawal(payload *string) *string {
	if !isContractInitialized() {
		return errorResponse(errUnauthorized, "contract is not initialized")
	}
	args := decodeProposeWithdrawalArgs(payload)
	fund := loadFund(args.FundID)
	if fund == nil {
		return errorResponse(errNotFound, "unknown fund: "+args.FundID)
	}
	sender := getSenderAddress()
	if !fund.IsSigner(sender) {
		return errorResponse(errUnauthorized, "sender is not a signer of the fund")
	}
	if !fund.Active {
		return errorResponse(errFundInactive, "fund is not accepting withdrawal proposals")
	}
	if args.Amount <= 0 {
		return errorResponse(errInvalidAmount, "withdrawal amount must be positive")
	}
	if !args.Destination.IsValid() {
		return errorResponse(errInvalidDestination, "destination is not a valid account")
	}
	if getFundBalance(args.FundID, args.Asset) < args.Amount {
		return errorResponse(errInsufficientBalance, "fund balance below requested amount")
	}
	createdAt := nowUnix()
	proposal := &WithdrawalProposal{
		ID:          withdrawalID(args.FundID, args.Asset, args.Amount, args.Destination, createdAt),
		FundID:      args.FundID,
		Asset:       args.Asset,
		Amount:      args.Amount,
		Destination: args.Destination,
		Creator:     sender,
		CreatedAt:   createdAt,
		ApprovedBy:  nil,
		Approvals:   0,
		Executed:    false,
		Tx:          getTxID(),
	}
	saveProposal(proposal)
	emitWithdrawalProposed(proposal.ID, args.FundID, sender, args.Amount, args.Asset)
	return returnJsonResponse(&proposalResponse{Proposal: proposal})
}

// ApproveWithdrawal records one signer's approval. Each signer counts once and
// approvals cannot be taken back.
func ApproveWithdrawal(payload *string) *string {
	if !isContractInitialized() {
		return errorResponse(errUnauthorized, "contract is not initialized")
	}
	id := decodeIDArg(payload, "proposal id missing")
	proposal := loadProposal(id)
	if proposal == nil {
		return errorResponse(errNotFound, "unknown proposal: "+id)
	}
	fund := loadFund(proposal.FundID)
	if fund == nil {
		return errorResponse(errNotFound, "unknown fund: "+proposal.FundID)
	}
	sender := getSenderAddress()
	if !fund.IsSigner(sender) {
		return errorResponse(errUnauthorized, "sender is not a signer of the fund")
	}
	if proposal.Executed {
		return errorResponse(errAlreadyExecuted, "proposal was already executed")
	}
	if proposal.HasApproved(sender) {
		return errorResponse(errAlreadyApproved, "sender already approved this proposal")
	}
	proposal.ApprovedBy = append(proposal.ApprovedBy, sender)
	proposal.Approvals++
	saveProposal(proposal)
	emitWithdrawalApproved(proposal.ID, sender, proposal.Approvals, fund.RequiredSignatures)
	return returnJsonResponse(&proposalResponse{Proposal: proposal})
}

// ExecuteWithdrawal pays out a proposal that reached quorum. Deliberately open
// to any caller: once enough signers approved, execution is mechanical. The
// balance is re-checked at execution time since the proposal-time check
// reserved nothing. The executed flag and the debit are committed before the
// ledger transfer runs; if the transfer fails both are rolled back so the call
// leaves no trace.
func ExecuteWithdrawal(payload *string) *string {
	if !isContractInitialized() {
		return errorResponse(errUnauthorized, "contract is not initialized")
	}
	id := decodeIDArg(payload, "proposal id missing")
	proposal := loadProposal(id)
	if proposal == nil {
		return errorResponse(errNotFound, "unknown proposal: "+id)
	}
	fund := loadFund(proposal.FundID)
	if fund == nil {
		return errorResponse(errNotFound, "unknown fund: "+proposal.FundID)
	}
	if proposal.Executed {
		return errorResponse(errAlreadyExecuted, "proposal was already executed")
	}
	if proposal.Approvals < fund.RequiredSignatures {
		return errorResponse(errInsufficientApprovals, "proposal has not reached quorum")
	}
	if !removeFundBalance(proposal.FundID, proposal.Asset, proposal.Amount) {
		return errorResponse(errInsufficientBalance, "fund balance below proposal amount")
	}
	proposal.Executed = true
	proposal.ExecutedAt = nowUnix()
	saveProposal(proposal)
	if err := transferFromCustody(proposal.Destination, proposal.Amount, proposal.Asset); err != nil {
		addFundBalance(proposal.FundID, proposal.Asset, proposal.Amount)
		proposal.Executed = false
		proposal.ExecutedAt = 0
		saveProposal(proposal)
		return errorResponse(errTransferFailed, "ledger transfer to destination failed")
	}
	emitWithdrawalExecuted(proposal.ID, proposal.FundID, proposal.Destination, proposal.Amount, proposal.Asset)
	return returnJsonResponse(&proposalResponse{Proposal: proposal})
}

// GetWithdrawal returns a proposal record.
func GetWithdrawal(payload *string) *string {
	id := decodeIDArg(payload, "proposal id missing")
	proposal := loadProposal(id)
	if proposal == nil {
		return errorResponse(errNotFound, "unknown proposal: "+id)
	}
	return returnJsonResponse(&proposalResponse{Proposal: proposal})
}

// ListWithdrawals returns the proposal ids raised against a fund.
func ListWithdrawals(payload *string) *string {
	fundID := decodeFundIDArg(payload)
	if !fundExists(fundID) {
		return errorResponse(errNotFound, "unknown fund: "+fundID)
	}
	return returnJsonResponse(&idListResponse{IDs: loadProposalIndex(fundID)})
}
