package main

import (
	"strconv"

	"swipepad/sdk"
)

// cachedEnv/cachedTransfer are scoped to the currently executing transaction.
// Whenever the tx.id changes we refresh sdk.GetEnv() and drop any memoized
// data to keep reads consistent.
var (
	cachedEnv       sdk.Env
	cachedEnvLoaded bool
	cachedTransfer  *TransferAllow
)

// currentEnv caches the env per tx.id so we dont poke the host api every few
// lines and subsequent helper calls always see the same snapshot.
func currentEnv() *sdk.Env {
	var currentTx string
	if txPtr := sdk.GetEnvKey("tx.id"); txPtr != nil {
		currentTx = *txPtr
	}
	if !cachedEnvLoaded || cachedEnv.TxId != currentTx {
		cachedEnv = sdk.GetEnv()
		cachedEnvLoaded = true
		cachedTransfer = nil
	}
	return &cachedEnv
}

// currentIntents is just a tiny helper to access intents already pulled above.
func currentIntents() []sdk.Intent {
	return currentEnv().Intents
}

// getSenderAddress returns the address of the current transaction sender.
func getSenderAddress() sdk.Address {
	return currentEnv().Sender.Address
}

// getTxID exposes the transaction id for record stamping.
func getTxID() string {
	return currentEnv().TxId
}

// getContractAddress is the custody account all donations are drawn into.
func getContractAddress() sdk.Address {
	return sdk.Address(currentEnv().ContractId)
}

// TransferAllow represents arguments extracted from a transfer.allow intent.
// It specifies the allowed transfer amount (`Limit`) and the asset (`Token`).
type TransferAllow struct {
	Limit Amount
	Token sdk.Asset
}

// isValidAsset checks if a given token string is one of the supported assets.
func isValidAsset(token string) bool {
	for _, a := range validAssets {
		if token == a {
			return true
		}
	}
	return false
}

// getFirstTransferAllow scans the current transaction's intents and returns
// the first valid transfer.allow intent. The env is refreshed before the
// cache is consulted: currentIntents drops a stale cachedTransfer on tx-id
// change, so one call's intent can never bleed into the next.
func getFirstTransferAllow() *TransferAllow {
	intents := currentIntents()
	if cachedTransfer != nil {
		return cachedTransfer
	}
	for _, intent := range intents {
		if intent.Type == "transfer.allow" {
			token := intent.Args["token"]
			if !isValidAsset(token) {
				sdk.Abort("invalid intent asset")
			}
			limitStr := intent.Args["limit"]
			limit, err := strconv.ParseFloat(limitStr, 64)
			if err != nil {
				sdk.Abort("invalid intent limit")
			}
			ta := &TransferAllow{
				Limit: FloatToAmount(limit),
				Token: sdk.Asset(token),
			}
			cachedTransfer = ta
			return ta
		}
	}
	return nil
}
