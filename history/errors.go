package history

import "errors"

// Errors returned by manager operations.
var (
	// ErrNothingToUndo indicates the scope's undo stack is empty.
	ErrNothingToUndo = errors.New("nothing to undo")

	// ErrNothingToRedo indicates the scope's redo stack is empty.
	ErrNothingToRedo = errors.New("nothing to redo")
)
