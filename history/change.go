package history

import "time"

// DocumentID is the opaque identifier of a registered document. The
// manager never creates one; ids come from the handles themselves.
type DocumentID string

// Change records one completed transaction: which documents had an
// effective edit, under which scope, and a human-readable label.
//
// A Change is created only by a successful EndTransaction and is immutable
// afterward; Undo and Redo move the same record between the two stacks of
// its scope.
type Change struct {
	// Description is the caller-supplied label, empty if none was given.
	Description string

	// IDs lists the documents that reported an effective change, in the
	// order the transaction visited them.
	IDs []DocumentID

	// Scope is the history bucket the change was recorded under.
	Scope Scope

	timestamp time.Time
}

func newChange(description string, ids []DocumentID, scope Scope) *Change {
	owned := make([]DocumentID, len(ids))
	copy(owned, ids)
	return &Change{
		Description: description,
		IDs:         owned,
		Scope:       scope,
		timestamp:   time.Now(),
	}
}

// Timestamp returns when the change was recorded.
func (c *Change) Timestamp() time.Time {
	return c.timestamp
}

// Includes reports whether the change touched the given document.
func (c *Change) Includes(id DocumentID) bool {
	for _, cid := range c.IDs {
		if cid == id {
			return true
		}
	}
	return false
}
