//go:build !wasm

package sdk

// Host-side emulation of the wasm imports so the contract package can be
// exercised with the plain Go toolchain. State, ledger and env live in
// package-level maps; tests drive them through the Mock* helpers.

import "fmt"

var (
	hostState     map[string]string
	hostEnv       Env
	hostLedger    map[string]map[Asset]int64
	hostLogs      []string
	hostContracts map[string]func(method, payload string) *string
)

func init() {
	MockReset()
}

// MockReset wipes state, ledger, logs and registered contracts between tests.
func MockReset() {
	hostState = map[string]string{}
	hostLedger = map[string]map[Asset]int64{}
	hostLogs = nil
	hostContracts = map[string]func(method, payload string) *string{}
	hostEnv = Env{
		ContractId: "contract:swipepad",
		TxId:       "tx-0",
		BlockId:    "block-0",
		Timestamp:  "2025-01-01T00:00:00",
	}
}

// MockSetEnv replaces the current execution environment snapshot.
func MockSetEnv(env Env) {
	hostEnv = env
}

// MockCurrentEnv returns a copy of the active env for test tweaks.
func MockCurrentEnv() Env {
	return hostEnv
}

// MockDeposit credits an account on the emulated hive ledger.
func MockDeposit(addr Address, amount int64, asset Asset) {
	ledgerFor(addr.String())[asset] += amount
}

// MockSetBalance overwrites a ledger balance, useful to simulate drained custody.
func MockSetBalance(addr Address, asset Asset, amount int64) {
	ledgerFor(addr.String())[asset] = amount
}

// MockLogs returns everything the contract logged since the last reset.
func MockLogs() []string {
	return hostLogs
}

// MockRegisterContract installs a callable stand-in for an external contract.
func MockRegisterContract(contractId string, handler func(method, payload string) *string) {
	hostContracts[contractId] = handler
}

func ledgerFor(addr string) map[Asset]int64 {
	if hostLedger[addr] == nil {
		hostLedger[addr] = map[Asset]int64{}
	}
	return hostLedger[addr]
}

// Log captures the message so tests can assert on emitted events.
func Log(s string) {
	hostLogs = append(hostLogs, s)
}

// Abort mirrors the host abort by panicking; tests recover via assert.Panics.
func Abort(msg string) {
	panic("abort: " + msg)
}

// Revert mirrors the named host error; it terminates the call like abort does.
func Revert(msg string, symbol string) {
	panic(fmt.Sprintf("revert(%s): %s", symbol, msg))
}

func StateSetObject(key string, value string) {
	hostState[key] = value
}

func StateGetObject(key string) *string {
	val, ok := hostState[key]
	if !ok {
		return nil
	}
	return &val
}

func StateDeleteObject(key string) {
	delete(hostState, key)
}

func GetEnv() Env {
	return hostEnv
}

func GetEnvKey(key string) *string {
	var val string
	switch key {
	case "contract.id":
		val = hostEnv.ContractId
	case "tx.id":
		val = hostEnv.TxId
	case "block.id":
		val = hostEnv.BlockId
	case "block.timestamp":
		val = hostEnv.Timestamp
	default:
		return nil
	}
	return &val
}

func GetBalance(address Address, asset Asset) int64 {
	return ledgerFor(address.String())[asset]
}

// HiveDraw moves tokens from the sender to the contract account, aborting on
// insufficient balance just like the host would.
func HiveDraw(amount int64, asset Asset) {
	from := hostEnv.Sender.Address.String()
	if ledgerFor(from)[asset] < amount {
		Abort("insufficient balance to draw")
	}
	ledgerFor(from)[asset] -= amount
	ledgerFor(hostEnv.ContractId)[asset] += amount
}

// HiveTransfer moves tokens from the contract account to the target address.
func HiveTransfer(to Address, amount int64, asset Asset) {
	if ledgerFor(hostEnv.ContractId)[asset] < amount {
		Abort("insufficient contract balance to transfer")
	}
	ledgerFor(hostEnv.ContractId)[asset] -= amount
	ledgerFor(to.String())[asset] += amount
}

func ContractStateGet(contractId string, key string) *string {
	handler, ok := hostContracts[contractId]
	if !ok {
		return nil
	}
	return handler("__state_get", key)
}

func ContractCall(contractId string, method string, payload string, options *ContractCallOptions) *string {
	handler, ok := hostContracts[contractId]
	if !ok {
		Abort("contract not found: " + contractId)
	}
	return handler(method, payload)
}
