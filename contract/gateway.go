package main

import (
	"errors"

	"swipepad/sdk"
)

// The gateway wraps the hive ledger calls behind error returns. The raw sdk
// functions abort the whole call on failure; here we pre-check balances so the
// caller can answer with a proper error envelope and roll its own state back.

var errGatewayShort = errors.New("ledger balance below requested amount")

// drawFromSender pulls `amount` of `asset` from the sender account into
// contract custody. Requires a matching transfer.allow intent on the tx.
func drawFromSender(from sdk.Address, amount Amount, asset sdk.Asset) error {
	available := sdk.GetBalance(from, asset)
	if available < AmountToInt64(amount) {
		return errGatewayShort
	}
	sdk.HiveDraw(AmountToInt64(amount), asset)
	return nil
}

// transferFromCustody pushes `amount` of `asset` from contract custody to the
// target account.
func transferFromCustody(to sdk.Address, amount Amount, asset sdk.Asset) error {
	custody := getContractAddress()
	available := sdk.GetBalance(custody, asset)
	if available < AmountToInt64(amount) {
		return errGatewayShort
	}
	sdk.HiveTransfer(to, AmountToInt64(amount), asset)
	return nil
}
