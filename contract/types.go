package main

import (
	"math"
	"strconv"

	"swipepad/sdk"
)

const AmountScale = 1000

type Amount int64

// FloatToAmount scales human floats by AmountScale and rounds to int64 so storage stays precise.
func FloatToAmount(v float64) Amount {
	return Amount(math.Round(v * AmountScale))
}

// AmountToFloat converts back to float64 for reporting or events.
func AmountToFloat(v Amount) float64 {
	return float64(v) / AmountScale
}

// AmountToInt64 exposes the raw scaled int64 for hive transfer functions.
func AmountToInt64(v Amount) int64 {
	return int64(v)
}

// AmountToString formats with three decimals for log lines.
func AmountToString(v Amount) string {
	return strconv.FormatFloat(AmountToFloat(v), 'f', 3, 64)
}

// ContractConfig holds the one-time init settings.
type ContractConfig struct {
	Owner    sdk.Address
	Verifier string // optional identity-verifier contract id, empty = hook disabled
}

// Fund is a pooled donation account with a fixed signer set and threshold.
// Per-asset balances live under separate composite keys, not in this blob.
type Fund struct {
	ID                 string
	Name               string
	Purpose            string
	Signers            []sdk.Address
	RequiredSignatures uint32
	TotalDonations     Amount
	Active             bool
	CreatedAt          int64
	CreatedBy          sdk.Address
	Tx                 string
}

// IsSigner does a linear scan; signer sets are small and bounded.
func (f *Fund) IsSigner(addr sdk.Address) bool {
	for _, s := range f.Signers {
		if s == addr {
			return true
		}
	}
	return false
}

// WithdrawalProposal is a pending or executed request to move one asset
// amount out of a fund. Mutable bits are the approval set and the executed flag.
type WithdrawalProposal struct {
	ID          string
	FundID      string
	Asset       sdk.Asset
	Amount      Amount
	Destination sdk.Address
	Creator     sdk.Address
	CreatedAt   int64
	ApprovedBy  []sdk.Address
	Approvals   uint32
	Executed    bool
	ExecutedAt  int64
	Tx          string
}

// HasApproved reports whether the signer already counts towards quorum.
func (p *WithdrawalProposal) HasApproved(addr sdk.Address) bool {
	for _, a := range p.ApprovedBy {
		if a == addr {
			return true
		}
	}
	return false
}

type CreateFundArgs struct {
	ID                 string
	Name               string
	Purpose            string
	Signers            []sdk.Address
	RequiredSignatures uint32
}

type ProposeWithdrawalArgs struct {
	FundID      string
	Amount      Amount
	Asset       sdk.Asset
	Destination sdk.Address
}

// AddressFromString converts a human string to the platform-specific address wrapper.
func AddressFromString(s string) sdk.Address { return sdk.Address(s) }

// AssetFromString wraps a ticker string so type checking keeps us honest.
func AssetFromString(s string) sdk.Asset { return sdk.Asset(s) }
