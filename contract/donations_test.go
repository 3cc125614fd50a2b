package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swipepad/sdk"
)

func TestDonateCreditsFund(t *testing.T) {
	resetContract()
	initContract(t, "hive:owner")
	createTestFund(t, "hive:owner", "f1", "hive:x,hive:y", 2)

	env := donateToFund(t, "hive:donor", "f1", 100, "hive")
	require.True(t, env.Ok, env.Error)
	assert.Equal(t, float64(100), env.Data["amount"])
	assert.Equal(t, float64(100), env.Data["balance"])

	// Ledger, lifetime counter and custody all moved together.
	assert.Equal(t, Amount(100*AmountScale), getFundBalance("f1", "hive"))
	assert.Equal(t, Amount(100*AmountScale), loadFund("f1").TotalDonations)
	assert.Equal(t, int64(100*AmountScale), sdk.GetBalance(getContractAddress(), sdk.AssetHive))
	assert.Equal(t, int64(0), sdk.GetBalance("hive:donor", sdk.AssetHive))
}

func TestDonateAccumulatesAcrossAssets(t *testing.T) {
	resetContract()
	initContract(t, "hive:owner")
	createTestFund(t, "hive:owner", "f1", "hive:x", 1)

	donateToFund(t, "hive:donor", "f1", 40, "hive")
	donateToFund(t, "hive:donor", "f1", 60, "hive")
	donateToFund(t, "hive:other", "f1", 5, "hbd")

	assert.Equal(t, Amount(100*AmountScale), getFundBalance("f1", "hive"))
	assert.Equal(t, Amount(5*AmountScale), getFundBalance("f1", "hbd"))
	assert.Equal(t, Amount(105*AmountScale), loadFund("f1").TotalDonations)
}

// Each transaction's transfer.allow must be read fresh; a stale cached intent
// from the previous call would credit the wrong amount.
func TestDonateReadsIntentPerTransaction(t *testing.T) {
	resetContract()
	initContract(t, "hive:owner")
	createTestFund(t, "hive:owner", "f1", "hive:x", 1)

	env := donateToFund(t, "hive:donor", "f1", 40, "hive")
	require.True(t, env.Ok, env.Error)
	assert.Equal(t, float64(40), env.Data["amount"])

	env = donateToFund(t, "hive:donor", "f1", 60, "hive")
	require.True(t, env.Ok, env.Error)
	assert.Equal(t, float64(60), env.Data["amount"])

	assert.Equal(t, Amount(100*AmountScale), getFundBalance("f1", "hive"))
	assert.Equal(t, int64(0), sdk.GetBalance("hive:donor", sdk.AssetHive))
	assert.Equal(t, int64(100*AmountScale), sdk.GetBalance(getContractAddress(), sdk.AssetHive))
}

func TestDonateInactiveFund(t *testing.T) {
	resetContract()
	initContract(t, "hive:owner")
	createTestFund(t, "hive:owner", "f1", "hive:x", 1)

	callAs("hive:owner")
	payload := "f1|false"
	decodeResponse(t, SetFundActive(&payload))

	env := donateToFund(t, "hive:donor", "f1", 10, "hive")
	assert.False(t, env.Ok)
	assert.Equal(t, errFundInactive, env.Error)
	assert.Equal(t, Amount(0), getFundBalance("f1", "hive"))
	// Donor keeps the tokens.
	assert.Equal(t, int64(10*AmountScale), sdk.GetBalance("hive:donor", sdk.AssetHive))
}

func TestDonateRequiresIntent(t *testing.T) {
	resetContract()
	initContract(t, "hive:owner")
	createTestFund(t, "hive:owner", "f1", "hive:x", 1)

	callAs("hive:donor")
	payload := "f1"
	env := decodeResponse(t, Donate(&payload))
	assert.False(t, env.Ok)
	assert.Equal(t, errInvalidAmount, env.Error)
}

func TestDonateZeroAmount(t *testing.T) {
	resetContract()
	initContract(t, "hive:owner")
	createTestFund(t, "hive:owner", "f1", "hive:x", 1)

	callAs("hive:donor", transferAllow(0, "hive"))
	payload := "f1"
	env := decodeResponse(t, Donate(&payload))
	assert.False(t, env.Ok)
	assert.Equal(t, errInvalidAmount, env.Error)
}

func TestDonateUnknownFund(t *testing.T) {
	resetContract()
	initContract(t, "hive:owner")

	callAs("hive:donor", transferAllow(10, "hive"))
	payload := "missing"
	env := decodeResponse(t, Donate(&payload))
	assert.False(t, env.Ok)
	assert.Equal(t, errNotFound, env.Error)
}

func TestDonateInsufficientSenderBalance(t *testing.T) {
	resetContract()
	initContract(t, "hive:owner")
	createTestFund(t, "hive:owner", "f1", "hive:x", 1)

	// Intent allows 50 but the donor holds only 20.
	sdk.MockDeposit("hive:donor", 20*AmountScale, sdk.AssetHive)
	callAs("hive:donor", transferAllow(50, "hive"))
	payload := "f1"
	env := decodeResponse(t, Donate(&payload))
	assert.False(t, env.Ok)
	assert.Equal(t, errTransferFailed, env.Error)
	// Nothing was credited.
	assert.Equal(t, Amount(0), getFundBalance("f1", "hive"))
	assert.Equal(t, Amount(0), loadFund("f1").TotalDonations)
}

func TestDonateVerifierHook(t *testing.T) {
	resetContract()
	callAs("hive:owner")
	verifier := "contract:identity"
	decodeResponse(t, ContractInit(&verifier))

	sdk.MockRegisterContract(verifier, func(method, payload string) *string {
		result := "false"
		if payload == "hive:trusted" {
			result = "true"
		}
		return &result
	})
	createTestFund(t, "hive:owner", "f1", "hive:x", 1)

	env := donateToFund(t, "hive:trusted", "f1", 10, "hive")
	require.True(t, env.Ok, env.Error)

	env = donateToFund(t, "hive:anonymous", "f1", 10, "hive")
	assert.False(t, env.Ok)
	assert.Equal(t, errUnauthorized, env.Error)
	assert.Equal(t, Amount(10*AmountScale), getFundBalance("f1", "hive"))
}

func TestDonationEventEmitted(t *testing.T) {
	resetContract()
	initContract(t, "hive:owner")
	createTestFund(t, "hive:owner", "f1", "hive:x", 1)
	donateToFund(t, "hive:donor", "f1", 12.5, "hbd")

	logs := sdk.MockLogs()
	require.NotEmpty(t, logs)
	assert.Contains(t, logs, "df|id:f1|from:hive:donor|amount:12.500|asset:hbd")
}
