//go:build wasm

package main

// Exported entrypoints for the wasm host. Kept behind the wasm build tag so
// the package still compiles with the regular toolchain for tests.

//go:wasmexport contract_init
func contractInit(payload *string) *string { return ContractInit(payload) }

//go:wasmexport fund_create
func fundCreate(payload *string) *string { return CreateFund(payload) }

//go:wasmexport fund_get
func fundGet(payload *string) *string { return GetFund(payload) }

//go:wasmexport fund_balance
func fundBalance(payload *string) *string { return GetFundBalance(payload) }

//go:wasmexport fund_list
func fundList(payload *string) *string { return ListFunds(payload) }

//go:wasmexport fund_set_active
func fundSetActive(payload *string) *string { return SetFundActive(payload) }

//go:wasmexport fund_donate
func fundDonate(payload *string) *string { return Donate(payload) }

//go:wasmexport withdrawal_propose
func withdrawalPropose(payload *string) *string { return ProposeWithdrawal(payload) }

//go:wasmexport withdrawal_approve
func withdrawalApprove(payload *string) *string { return ApproveWithdrawal(payload) }

//go:wasmexport withdrawal_execute
func withdrawalExecute(payload *string) *string { return ExecuteWithdrawal(payload) }

//go:wasmexport withdrawal_get
func withdrawalGet(payload *string) *string { return GetWithdrawal(payload) }

//go:wasmexport withdrawal_list
func withdrawalList(payload *string) *string { return ListWithdrawals(payload) }

//go:wasmexport role_grant
func roleGrant(payload *string) *string { return GrantRole(payload) }

//go:wasmexport role_revoke
func roleRevoke(payload *string) *string { return RevokeRole(payload) }
