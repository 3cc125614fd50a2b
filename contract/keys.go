package main

import "swipepad/sdk"

// fundKey builds the storage key for a fund record.
func fundKey(id string) string {
	buf := make([]byte, 0, 1+len(id))
	buf = append(buf, kFundMeta)
	buf = append(buf, id...)
	return string(buf)
}

// fundBalanceKey stores a single asset balance under a (fund, asset) composite
// key so balances never live in nested maps inside the fund blob.
// Key format: kFundBalance|fundId|0x00|asset
func fundBalanceKey(fundID string, asset sdk.Asset) string {
	assetStr := asset.String()
	buf := make([]byte, 0, 1+len(fundID)+1+len(assetStr))
	buf = append(buf, kFundBalance)
	buf = append(buf, fundID...)
	buf = append(buf, 0x00)
	buf = append(buf, assetStr...)
	return string(buf)
}

// fundProposalsKey indexes the withdrawal proposal ids raised against a fund.
func fundProposalsKey(fundID string) string {
	buf := make([]byte, 0, 1+len(fundID))
	buf = append(buf, kFundProposals)
	buf = append(buf, fundID...)
	return string(buf)
}

// proposalKey builds the storage key for a withdrawal proposal record.
func proposalKey(id string) string {
	buf := make([]byte, 0, 1+len(id))
	buf = append(buf, kProposalMeta)
	buf = append(buf, id...)
	return string(buf)
}

// roleKey keeps each global role's member list under its own prefix.
func roleKey(role string) string {
	buf := make([]byte, 0, 1+len(role))
	buf = append(buf, kRoleMembers)
	buf = append(buf, role...)
	return string(buf)
}
