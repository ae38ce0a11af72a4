// Package history coordinates undo/redo across multiple documents.
//
// Each document brings its own low-level undo/redo capability, exposed to
// this package through the Handle interface. The Manager registers handles,
// delimits transactions that may span several documents, records one
// combined history entry per transaction, and replays undo/redo against
// exactly the documents that participated.
//
// # Scopes
//
// History is partitioned into independent scopes so unrelated editing
// contexts (different panels, tools, or views) do not interfere with each
// other. The zero Scope is the default scope; Named creates caller scopes:
//
//	m.Undo(history.Default)          // default scope
//	m.Undo(history.Named("panelA"))  // independent history bucket
//
// # Transactions
//
// Callers delimit transactions explicitly. Edits happen directly on the
// documents between StartTransaction and EndTransaction:
//
//	m.StartTransaction()
//	// ... mutate documents ...
//	change, err := m.EndTransaction(history.TransactionOptions{Description: "edit"})
//
// EndTransaction asks every participating handle whether it recorded an
// effective change. If at least one did, a single Change naming those
// documents is pushed onto the scope's undo stack and the scope's redo
// stack is cleared. A transaction with no effective change records nothing
// and returns a nil Change.
//
// Transaction wraps the two calls around a function for the common
// synchronous case:
//
//	change, err := m.Transaction(func() (string, error) {
//	    return "rename", doc.Set("user.name", "Ada")
//	}, history.TransactionOptions{})
//
// # Undo and Redo
//
// Undo pops the most recent Change for a scope, invokes Undo on each
// participating handle in recorded order, and moves the Change to the redo
// stack. Redo is symmetric. Empty stacks report ErrNothingToUndo and
// ErrNothingToRedo.
package history
