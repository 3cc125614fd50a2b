//go:build wasm

package sdk

import (
	"encoding/json"
	"strconv"
)

//go:wasmimport sdk console.log
func log(s *string) *string

// Log writes a message to the wasm console so we can trace contract steps.
// Example payload: sdk.Log("hello pool")
func Log(s string) {
	log(&s)
}

//go:wasmimport sdk db.set_object
func stateSetObject(key *string, value *string) *string

//go:wasmimport sdk db.get_object
func stateGetObject(key *string) *string

//go:wasmimport sdk db.rm_object
func stateDeleteObject(key *string) *string

//go:wasmimport sdk system.get_env
func getEnv(arg *string) *string

//go:wasmimport sdk system.get_env_key
func getEnvKey(arg *string) *string

//go:wasmimport sdk hive.get_balance
func getBalance(arg1 *string, arg2 *string) *string

//go:wasmimport sdk hive.draw
func hiveDraw(arg1 *string, arg2 *string) *string

//go:wasmimport sdk hive.transfer
func hiveTransfer(arg1 *string, arg2 *string, arg3 *string) *string

//go:wasmimport sdk contracts.read
func contractRead(contractId *string, key *string) *string

//go:wasmimport sdk contracts.call
func contractCall(contractId *string, method *string, payload *string, options *string) *string

//go:wasmimport env abort
func abort(msg, file *string, line, column *int32)

//go:wasmimport env revert
func revert(msg, symbol *string)

// Abort stops execution immediately and surfaces the message to the chain, so use sparingly.
// Example payload: sdk.Abort("bad payload")
func Abort(msg string) {
	ln := int32(0)
	abort(&msg, nil, &ln, &ln)
	panic(msg)
}

// Revert throws a named error back to the caller (like revert in solidity) with a short symbol.
// Example payload: sdk.Revert("bad input", "input_error")
func Revert(msg string, symbol string) {
	revert(&msg, &symbol)
}

// StateSetObject stores a key/value string pair into contract kv storage.
func StateSetObject(key string, value string) {
	stateSetObject(&key, &value)
}

// StateGetObject fetches a key and returns nil when missing.
func StateGetObject(key string) *string {
	return stateGetObject(&key)
}

// StateDeleteObject removes the key entirely, handy for cleanup.
func StateDeleteObject(key string) {
	stateDeleteObject(&key)
}

// GetEnv pulls the JSON env blob from the chain and maps it to the Env struct.
func GetEnv() Env {
	envStr := *getEnv(nil)
	env := Env{}
	json.Unmarshal([]byte(envStr), &env)
	envMap := map[string]interface{}{}
	json.Unmarshal([]byte(envStr), &envMap)

	requiredAuths := make([]Address, 0)
	if auths, ok := envMap["msg.required_auths"].([]interface{}); ok {
		for _, auth := range auths {
			if addr, ok := auth.(string); ok {
				requiredAuths = append(requiredAuths, Address(addr))
			}
		}
	}
	requiredPostingAuths := make([]Address, 0)
	if auths, ok := envMap["msg.required_posting_auths"].([]interface{}); ok {
		for _, auth := range auths {
			if addr, ok := auth.(string); ok {
				requiredPostingAuths = append(requiredPostingAuths, Address(addr))
			}
		}
	}

	sender, _ := envMap["msg.sender"].(string)
	env.Sender = Sender{
		Address:              Address(sender),
		RequiredAuths:        requiredAuths,
		RequiredPostingAuths: requiredPostingAuths,
	}
	caller, _ := envMap["msg.caller"].(string)
	env.Caller = Caller{Address: Address(caller)}
	return env
}

// GetEnvKey pulls a single env key (like tx.id) to avoid parsing the whole struct.
// Example payload: sdk.GetEnvKey("tx.id")
func GetEnvKey(key string) *string {
	return getEnvKey(&key)
}

// GetBalance queries the hive ledger balance for the given account+asset combo.
// Example payload: sdk.GetBalance(sdk.Address("hive:foo"), sdk.AssetHive)
func GetBalance(address Address, asset Asset) int64 {
	addr := address.String()
	as := asset.String()
	balStr := *getBalance(&addr, &as)
	bal, err := strconv.ParseInt(balStr, 10, 64)
	if err != nil {
		panic(err)
	}
	return bal
}

// HiveDraw pulls tokens from the caller to the contract within the transfer.allow limit.
// Example payload: sdk.HiveDraw(1000, sdk.AssetHive)
func HiveDraw(amount int64, asset Asset) {
	amt := strconv.FormatInt(amount, 10)
	as := asset.String()
	hiveDraw(&amt, &as)
}

// HiveTransfer sends tokens from the contract towards a user address.
// Example payload: sdk.HiveTransfer(sdk.Address("hive:foo"), 500, sdk.AssetHbd)
func HiveTransfer(to Address, amount int64, asset Asset) {
	toaddr := to.String()
	amt := strconv.FormatInt(amount, 10)
	as := asset.String()
	hiveTransfer(&toaddr, &amt, &as)
}

// ContractStateGet reads another contract's state key (view-only).
// Example payload: sdk.ContractStateGet("contract:demo", "cfg")
func ContractStateGet(contractId string, key string) *string {
	return contractRead(&contractId, &key)
}

// ContractCall performs a synchronous call into another contract with optional intents.
// Example payload: sdk.ContractCall("contract:demo", "ping", "{}", nil)
func ContractCall(contractId string, method string, payload string, options *ContractCallOptions) *string {
	optStr := ""
	if options != nil {
		optByte, err := json.Marshal(&options)
		if err != nil {
			Revert("could not serialize options", "sdk_error")
		}
		optStr = string(optByte)
	}
	return contractCall(&contractId, &method, &payload, &optStr)
}
