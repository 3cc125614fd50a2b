package main

import "swipepad/sdk"

// -----------------------------------------------------------------------------
// Supported Assets
// -----------------------------------------------------------------------------

// validAssets lists the supported asset types for donations and withdrawals.
var validAssets = []string{
	sdk.AssetHbd.String(),
	sdk.AssetHive.String(),
	sdk.AssetHbdSavings.String(),
}

// -----------------------------------------------------------------------------
// Roles
// -----------------------------------------------------------------------------

const (
	// RoleAdministrator gates fund registration and status toggles.
	RoleAdministrator = "administrator"
	// RoleFundManager is declared and grantable but consulted by no operation.
	RoleFundManager = "fund-manager"
)

// -----------------------------------------------------------------------------
// Error Symbols
// -----------------------------------------------------------------------------

const (
	errInvalidConfiguration  = "invalid_configuration"
	errUnauthorized          = "unauthorized"
	errFundInactive          = "fund_inactive"
	errInvalidAmount         = "invalid_amount"
	errInvalidDestination    = "invalid_destination"
	errInsufficientBalance   = "insufficient_balance"
	errAlreadyApproved       = "already_approved"
	errAlreadyExecuted       = "already_executed"
	errInsufficientApprovals = "insufficient_approvals"
	errTransferFailed        = "transfer_failed"
	errNotFound              = "not_found"
)

// -----------------------------------------------------------------------------
// Validation Limits
// -----------------------------------------------------------------------------

const (
	// MaxFundIDLength limits caller-supplied fund identifiers.
	MaxFundIDLength = 64
	// MaxNameLength limits fund name and purpose text.
	MaxNameLength = 500
	// MaxSigners bounds the signer set so membership scans stay cheap.
	MaxSigners = 32
)

// -----------------------------------------------------------------------------
// Storage Key Prefixes
// -----------------------------------------------------------------------------

const (
	// kFundMeta stores encoded Fund records.
	kFundMeta byte = 0x01
	// kFundBalance stores one balance per (fund, asset) composite key.
	kFundBalance byte = 0x02
	// kFundProposals indexes proposal ids per fund.
	kFundProposals byte = 0x03
	// kProposalMeta stores encoded WithdrawalProposal records.
	kProposalMeta byte = 0x10
	// kRoleMembers stores the member list per global role.
	kRoleMembers byte = 0x20
)

// ContractConfigKey holds the pipe-encoded init config (owner, verifier).
const ContractConfigKey = "cfg"

// FundsIndexKey holds the ordered list of all registered fund ids.
const FundsIndexKey = "funds:index"
