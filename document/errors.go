package document

import "errors"

// Errors returned by recorder operations.
var (
	// ErrTransactionActive indicates StartTransaction was called while a
	// transaction was already recording. Nesting is not supported.
	ErrTransactionActive = errors.New("transaction already active")

	// ErrNoTransaction indicates EndTransaction was called without a
	// matching StartTransaction.
	ErrNoTransaction = errors.New("no active transaction")
)
