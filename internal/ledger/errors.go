package ledger

import "errors"

// Domain errors returned by account and registry operations. A failed
// operation never leaves a partial mutation behind; callers may retry
// with corrected inputs.
var (
	// ErrInsufficientFunds means a withdrawal would push a Standard or
	// Savings balance below zero.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrOverdraftExceeded means a withdrawal would push a Business
	// balance below its authorized overdraft.
	ErrOverdraftExceeded = errors.New("overdraft limit exceeded")

	// ErrSelfTransfer means source and destination are the same account.
	ErrSelfTransfer = errors.New("cannot transfer to the same account")

	// ErrDuplicateAccount means the account number is already registered.
	ErrDuplicateAccount = errors.New("account number already registered")

	// ErrAccountNotFound means no account has the requested number.
	ErrAccountNotFound = errors.New("account not found")

	// ErrAuthenticationFailed is reported by callers of Verify on a
	// credential mismatch; the account itself never returns it.
	ErrAuthenticationFailed = errors.New("authentication failed")
)
