package history

import "sync"

// TransactionOptions carries the optional parameters of EndTransaction and
// Transaction. The zero value means: no description, default scope, all
// registered documents.
type TransactionOptions struct {
	// Description labels the recorded Change.
	Description string

	// Scope selects the history bucket to record into.
	Scope Scope

	// Dependencies limits the transaction to the listed documents.
	// Identifiers that are not registered are silently skipped. Nil or
	// empty means every registered document participates.
	Dependencies []DocumentID
}

// Manager owns the handle registry and the scoped history store. It is the
// unit of lifetime: two managers share nothing.
//
// The manager guards its own bookkeeping with a mutex, but the transaction
// protocol itself is caller-serialized: interleaving transactions over
// overlapping documents corrupts the handles' recording state.
type Manager struct {
	mu sync.Mutex

	handles map[DocumentID]Handle
	order   []DocumentID // registration order, drives fan-out iteration

	undoStacks map[Scope][]*Change
	redoStacks map[Scope][]*Change

	maxEntries int
}

// NewManager creates an empty manager. The default scope exists from the
// start; other scopes materialize on first use.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		handles:    make(map[DocumentID]Handle),
		undoStacks: make(map[Scope][]*Change),
		redoStacks: make(map[Scope][]*Change),
		maxEntries: DefaultMaxEntries,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.ensureScopeLocked(Default)
	return m
}

// AddHandle registers a handle keyed by its document id, overwriting any
// prior handle for the same id. Re-adding an id keeps its original position
// in registration order. Returns the handle for direct use.
func (m *Manager) AddHandle(h Handle) Handle {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := h.ID()
	if _, exists := m.handles[id]; !exists {
		m.order = append(m.order, id)
	}
	m.handles[id] = h
	return h
}

// AddDocument wraps a raw document via its HandleProvider capability and
// registers the resulting handle.
func (m *Manager) AddDocument(p HandleProvider) Handle {
	return m.AddHandle(p.UndoRedoHandle())
}

// GetUndoRedoHandle returns the registered handle for the id, or false if
// none is registered.
func (m *Manager) GetUndoRedoHandle(id DocumentID) (Handle, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	h, ok := m.handles[id]
	return h, ok
}

// RemoveHandle deregisters a document and reports whether it was present.
// History entries that already name the id remain; replaying them simply
// skips the missing document.
func (m *Manager) RemoveHandle(id DocumentID) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.handles[id]; !ok {
		return false
	}
	delete(m.handles, id)
	for i, oid := range m.order {
		if oid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return true
}

// StartTransaction begins a transaction on the listed documents, or on
// every registered document when none are listed. Unregistered ids are
// silently skipped. A handle error aborts the fan-out and propagates;
// handles already started stay in recording mode.
func (m *Manager) StartTransaction(deps ...DocumentID) error {
	for _, h := range m.targets(deps) {
		if err := h.StartTransaction(); err != nil {
			return err
		}
	}
	return nil
}

// EndTransaction closes the transaction on the participating documents and
// records a combined Change if at least one of them reports an effective
// edit. Recording pushes the Change onto the scope's undo stack and clears
// the scope's redo stack. When no document changed, nothing is recorded and
// (nil, nil) is returned.
func (m *Manager) EndTransaction(opts TransactionOptions) (*Change, error) {
	var ids []DocumentID
	for _, h := range m.targets(opts.Dependencies) {
		changed, err := h.EndTransaction(opts)
		if err != nil {
			return nil, err
		}
		if changed {
			ids = append(ids, h.ID())
		}
	}
	if len(ids) == 0 {
		return nil, nil
	}

	change := newChange(opts.Description, ids, opts.Scope)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.pushLocked(opts.Scope, change)
	return change, nil
}

// Transaction runs fn between StartTransaction and EndTransaction. The
// description returned by fn wins over opts.Description when non-empty.
//
// An error from fn is returned without closing the transaction, leaving the
// participating handles in recording mode, exactly as if the caller's own
// edit code had failed between the two primitive calls. Asynchronous edits
// cannot use this form; call the two primitives directly instead.
func (m *Manager) Transaction(fn func() (string, error), opts TransactionOptions) (*Change, error) {
	if err := m.StartTransaction(opts.Dependencies...); err != nil {
		return nil, err
	}

	description, err := fn()
	if err != nil {
		return nil, err
	}
	if description == "" {
		description = opts.Description
	}

	opts.Description = description
	return m.EndTransaction(opts)
}

// Undo reverses the most recent Change recorded under the scope, invoking
// Undo on each participating handle in recorded order, and moves the Change
// to the scope's redo stack. Documents that are no longer registered are
// skipped. An empty undo stack returns ErrNothingToUndo.
//
// If a handle's Undo fails, the Change is restored to the undo stack and
// the error propagates; documents already undone stay undone.
func (m *Manager) Undo(scope Scope) (*Change, error) {
	m.mu.Lock()
	m.ensureScopeLocked(scope)
	stack := m.undoStacks[scope]
	if len(stack) == 0 {
		m.mu.Unlock()
		return nil, ErrNothingToUndo
	}
	change := stack[len(stack)-1]
	m.undoStacks[scope] = stack[:len(stack)-1]
	m.mu.Unlock()

	if err := m.replay(change, scope, Handle.Undo); err != nil {
		m.mu.Lock()
		m.undoStacks[scope] = append(m.undoStacks[scope], change)
		m.mu.Unlock()
		return nil, err
	}

	m.mu.Lock()
	m.redoStacks[scope] = append(m.redoStacks[scope], change)
	m.mu.Unlock()
	return change, nil
}

// Redo reapplies the most recently undone Change for the scope and moves it
// back to the undo stack. An empty redo stack returns ErrNothingToRedo.
// Failure handling mirrors Undo.
func (m *Manager) Redo(scope Scope) (*Change, error) {
	m.mu.Lock()
	m.ensureScopeLocked(scope)
	stack := m.redoStacks[scope]
	if len(stack) == 0 {
		m.mu.Unlock()
		return nil, ErrNothingToRedo
	}
	change := stack[len(stack)-1]
	m.redoStacks[scope] = stack[:len(stack)-1]
	m.mu.Unlock()

	if err := m.replay(change, scope, Handle.Redo); err != nil {
		m.mu.Lock()
		m.redoStacks[scope] = append(m.redoStacks[scope], change)
		m.mu.Unlock()
		return nil, err
	}

	m.mu.Lock()
	m.undoStacks[scope] = append(m.undoStacks[scope], change)
	m.mu.Unlock()
	return change, nil
}

// CanUndo reports whether the scope has anything to undo.
func (m *Manager) CanUndo(scope Scope) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ensureScopeLocked(scope)
	return len(m.undoStacks[scope]) > 0
}

// CanRedo reports whether the scope has anything to redo.
func (m *Manager) CanRedo(scope Scope) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ensureScopeLocked(scope)
	return len(m.redoStacks[scope]) > 0
}

// UndoCount returns the number of undo entries for the scope.
func (m *Manager) UndoCount(scope Scope) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ensureScopeLocked(scope)
	return len(m.undoStacks[scope])
}

// RedoCount returns the number of redo entries for the scope.
func (m *Manager) RedoCount(scope Scope) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ensureScopeLocked(scope)
	return len(m.redoStacks[scope])
}

// Undos returns the descriptions on the scope's undo stack, oldest first.
func (m *Manager) Undos(scope Scope) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ensureScopeLocked(scope)
	return descriptions(m.undoStacks[scope])
}

// Redos returns the descriptions on the scope's redo stack, oldest first.
func (m *Manager) Redos(scope Scope) []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ensureScopeLocked(scope)
	return descriptions(m.redoStacks[scope])
}

// PeekUndo returns the Change that Undo would replay next, without removing
// it.
func (m *Manager) PeekUndo(scope Scope) (*Change, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ensureScopeLocked(scope)
	return peek(m.undoStacks[scope])
}

// PeekRedo returns the Change that Redo would replay next, without removing
// it.
func (m *Manager) PeekRedo(scope Scope) (*Change, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ensureScopeLocked(scope)
	return peek(m.redoStacks[scope])
}

// Clear removes all undo/redo history for the scope. Other scopes are
// untouched.
func (m *Manager) Clear(scope Scope) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.undoStacks[scope] = nil
	m.redoStacks[scope] = nil
}

// targets resolves the handle set for a transaction: the registered handles
// among deps in dependency order, or every registered handle in
// registration order when deps is empty.
func (m *Manager) targets(deps []DocumentID) []Handle {
	m.mu.Lock()
	defer m.mu.Unlock()

	ids := deps
	if len(ids) == 0 {
		ids = m.order
	}

	handles := make([]Handle, 0, len(ids))
	for _, id := range ids {
		if h, ok := m.handles[id]; ok {
			handles = append(handles, h)
		}
	}
	return handles
}

// replay invokes op for every participating document still registered.
func (m *Manager) replay(change *Change, scope Scope, op func(Handle, Scope) error) error {
	for _, id := range change.IDs {
		h, ok := m.GetUndoRedoHandle(id)
		if !ok {
			continue
		}
		if err := op(h, scope); err != nil {
			return err
		}
	}
	return nil
}

// pushLocked records a change: push undo, clear redo, trim to maxEntries.
func (m *Manager) pushLocked(scope Scope, change *Change) {
	m.ensureScopeLocked(scope)
	stack := append(m.undoStacks[scope], change)
	if len(stack) > m.maxEntries {
		excess := len(stack) - m.maxEntries
		stack = stack[excess:]
	}
	m.undoStacks[scope] = stack
	m.redoStacks[scope] = nil
}

// ensureScopeLocked lazily materializes the stacks for a scope.
func (m *Manager) ensureScopeLocked(scope Scope) {
	if _, ok := m.undoStacks[scope]; !ok {
		m.undoStacks[scope] = nil
		m.redoStacks[scope] = nil
	}
}

func descriptions(stack []*Change) []string {
	result := make([]string, len(stack))
	for i, c := range stack {
		result[i] = c.Description
	}
	return result
}

func peek(stack []*Change) (*Change, bool) {
	if len(stack) == 0 {
		return nil, false
	}
	return stack[len(stack)-1], true
}
