package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"testing"

	"swipepad/sdk"
)

// Shared test plumbing. Every test drives the public entrypoints through the
// emulated host; state never gets poked directly except through Mock helpers.

var testTxCounter int

// resetContract wipes the emulated host and the per-tx caches.
func resetContract() {
	sdk.MockReset()
	cachedEnvLoaded = false
	cachedTransfer = nil
	testTxCounter = 0
}

// callAs points the env at a new transaction from the given sender. Intents
// are optional; donations attach a transfer.allow.
func callAs(sender string, intents ...sdk.Intent) {
	testTxCounter++
	env := sdk.MockCurrentEnv()
	env.TxId = fmt.Sprintf("tx-%d", testTxCounter)
	env.Sender = sdk.Sender{Address: sdk.Address(sender)}
	env.Caller = sdk.Caller{Address: sdk.Address(sender)}
	env.Intents = intents
	sdk.MockSetEnv(env)
}

// transferAllow builds the intent a donor signs to let the contract draw tokens.
func transferAllow(limit float64, token string) sdk.Intent {
	return sdk.Intent{
		Type: "transfer.allow",
		Args: map[string]string{
			"limit": strconv.FormatFloat(limit, 'f', -1, 64),
			"token": token,
		},
	}
}

// envelope mirrors the JSON response shape of every entrypoint.
type envelope struct {
	Ok      bool                   `json:"ok"`
	Error   string                 `json:"error"`
	Message string                 `json:"message"`
	Data    map[string]interface{} `json:"data"`
}

// decodeResponse parses an entrypoint result and fails the test on bad JSON.
func decodeResponse(t *testing.T, resp *string) envelope {
	t.Helper()
	if resp == nil {
		t.Fatal("entrypoint returned nil response")
	}
	var env envelope
	if err := json.Unmarshal([]byte(*resp), &env); err != nil {
		t.Fatalf("response is not valid JSON: %v\n%s", err, *resp)
	}
	return env
}

// initContract runs ContractInit as the given owner.
func initContract(t *testing.T, owner string) {
	t.Helper()
	callAs(owner)
	env := decodeResponse(t, ContractInit(nil))
	if !env.Ok {
		t.Fatalf("init failed: %s", env.Error)
	}
}

// createTestFund registers a fund as the owner with the given signers and threshold.
func createTestFund(t *testing.T, owner string, fundID string, signers string, required int) {
	t.Helper()
	callAs(owner)
	payload := fmt.Sprintf("%s|Test Fund|testing|%s|%d", fundID, signers, required)
	env := decodeResponse(t, CreateFund(&payload))
	if !env.Ok {
		t.Fatalf("create fund failed: %s (%s)", env.Error, env.Message)
	}
}

// donateToFund performs a funded donation from the given sender.
func donateToFund(t *testing.T, sender string, fundID string, amount float64, asset string) envelope {
	t.Helper()
	sdk.MockDeposit(sdk.Address(sender), int64(amount*AmountScale), sdk.Asset(asset))
	callAs(sender, transferAllow(amount, asset))
	return decodeResponse(t, Donate(&fundID))
}

// proposeTestWithdrawal raises a proposal and returns its id.
func proposeTestWithdrawal(t *testing.T, signer string, fundID string, amount float64, asset string, destination string) string {
	t.Helper()
	callAs(signer)
	payload := fmt.Sprintf("%s|%s|%s|%s", fundID, strconv.FormatFloat(amount, 'f', -1, 64), asset, destination)
	env := decodeResponse(t, ProposeWithdrawal(&payload))
	if !env.Ok {
		t.Fatalf("propose failed: %s (%s)", env.Error, env.Message)
	}
	id, _ := env.Data["id"].(string)
	if id == "" {
		t.Fatal("propose returned no proposal id")
	}
	return id
}

// approveAs approves a proposal as the given signer, expecting success.
func approveAs(t *testing.T, signer string, proposalID string) envelope {
	t.Helper()
	callAs(signer)
	return decodeResponse(t, ApproveWithdrawal(&proposalID))
}
