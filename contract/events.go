package main

import (
	"fmt"

	"swipepad/sdk"
)

// Events are short coded log lines. Indexers match on the two-letter prefix
// and split the rest on pipes, so keep fields ordered and stable.

func emitInitEvent(owner sdk.Address) {
	sdk.Log(fmt.Sprintf("init|owner:%s", owner.String()))
}

func emitFundCreated(fundID string, by sdk.Address, signerCount int, required uint32) {
	sdk.Log(fmt.Sprintf("fc|id:%s|by:%s|signers:%d|req:%d", fundID, by.String(), signerCount, required))
}

func emitFundStatusChanged(fundID string, active bool, by sdk.Address) {
	sdk.Log(fmt.Sprintf("fs|id:%s|active:%t|by:%s", fundID, active, by.String()))
}

func emitDonation(fundID string, from sdk.Address, amount Amount, asset sdk.Asset) {
	sdk.Log(fmt.Sprintf("df|id:%s|from:%s|amount:%s|asset:%s", fundID, from.String(), AmountToString(amount), asset.String()))
}

func emitWithdrawalProposed(proposalID string, fundID string, by sdk.Address, amount Amount, asset sdk.Asset) {
	sdk.Log(fmt.Sprintf("wp|id:%s|fund:%s|by:%s|amount:%s|asset:%s", proposalID, fundID, by.String(), AmountToString(amount), asset.String()))
}

func emitWithdrawalApproved(proposalID string, by sdk.Address, approvals uint32, required uint32) {
	sdk.Log(fmt.Sprintf("wa|id:%s|by:%s|approvals:%d/%d", proposalID, by.String(), approvals, required))
}

func emitWithdrawalExecuted(proposalID string, fundID string, to sdk.Address, amount Amount, asset sdk.Asset) {
	sdk.Log(fmt.Sprintf("wx|id:%s|fund:%s|to:%s|amount:%s|asset:%s", proposalID, fundID, to.String(), AmountToString(amount), asset.String()))
}

func emitRoleGranted(role string, addr sdk.Address, by sdk.Address) {
	sdk.Log(fmt.Sprintf("rg|role:%s|addr:%s|by:%s", role, addr.String(), by.String()))
}

func emitRoleRevoked(role string, addr sdk.Address, by sdk.Address) {
	sdk.Log(fmt.Sprintf("rr|role:%s|addr:%s|by:%s", role, addr.String(), by.String()))
}
