package main

import (
	"strconv"

	"swipepad/sdk"
)

// Balances are one scaled int64 per (fund, asset) key. Keeping them out of the
// fund blob means concurrent donations to different assets never rewrite the
// same record.

// getFundBalance returns the tracked balance, zero when the key is absent.
func getFundBalance(fundID string, asset sdk.Asset) Amount {
	raw := sdk.StateGetObject(fundBalanceKey(fundID, asset))
	if raw == nil || *raw == "" {
		return 0
	}
	v, err := strconv.ParseInt(*raw, 10, 64)
	if err != nil {
		sdk.Abort("corrupt balance record: " + fundID)
	}
	return Amount(v)
}

// setFundBalance overwrites the tracked balance.
func setFundBalance(fundID string, asset sdk.Asset, amount Amount) {
	sdk.StateSetObject(fundBalanceKey(fundID, asset), strconv.FormatInt(int64(amount), 10))
}

// addFundBalance credits the balance and returns the new total.
func addFundBalance(fundID string, asset sdk.Asset, amount Amount) Amount {
	next := getFundBalance(fundID, asset) + amount
	setFundBalance(fundID, asset, next)
	return next
}

// removeFundBalance debits the balance, refusing to go negative.
func removeFundBalance(fundID string, asset sdk.Asset, amount Amount) bool {
	current := getFundBalance(fundID, asset)
	if current < amount {
		return false
	}
	setFundBalance(fundID, asset, current-amount)
	return true
}

// loadBalances collects every tracked asset balance for a fund.
func loadBalances(fundID string) map[string]Amount {
	balances := make(map[string]Amount, len(validAssets))
	for _, asset := range validAssets {
		balances[asset] = getFundBalance(fundID, sdk.Asset(asset))
	}
	return balances
}
