package history

// Handle is the per-document undo/redo collaborator. It wraps one document
// and performs the actual low-level work: tracking edits made during a
// transaction and reversing or reapplying them per scope.
//
// The manager treats handles as external: errors they return pass through
// manager operations uncaught, and their transaction-nesting behavior is
// their own (the manager never starts a second transaction on purpose).
type Handle interface {
	// ID returns the stable identifier used as the registry key.
	ID() DocumentID

	// StartTransaction begins recording local edits for later undo.
	StartTransaction() error

	// EndTransaction stops recording and reports whether an effective,
	// recordable change occurred during the transaction.
	EndTransaction(opts TransactionOptions) (bool, error)

	// Undo reverses the most recent recorded change for the scope on this
	// document.
	Undo(scope Scope) error

	// Redo reapplies the most recently undone change for the scope on this
	// document.
	Redo(scope Scope) error
}

// HandleProvider is implemented by raw documents that can produce their own
// undo/redo handle. It lets Manager.AddDocument accept unwrapped documents
// without resorting to runtime type inspection.
type HandleProvider interface {
	UndoRedoHandle() Handle
}
