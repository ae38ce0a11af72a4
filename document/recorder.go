package document

import (
	"sync"

	"github.com/dshills/rewind/history"
)

// revision is one recorded transaction: the content before and after.
type revision struct {
	before string
	after  string
}

// Recorder implements history.Handle for a Document using whole-content
// snapshots. It keeps independent undo/redo stacks per scope.
type Recorder struct {
	mu  sync.Mutex
	doc *Document

	recording bool
	before    string

	undoStacks map[history.Scope][]revision
	redoStacks map[history.Scope][]revision
}

func newRecorder(doc *Document) *Recorder {
	return &Recorder{
		doc:        doc,
		undoStacks: make(map[history.Scope][]revision),
		redoStacks: make(map[history.Scope][]revision),
	}
}

// ID returns the wrapped document's identifier.
func (r *Recorder) ID() history.DocumentID {
	return r.doc.ID()
}

// StartTransaction snapshots the current content. Nested transactions are
// rejected with ErrTransactionActive.
func (r *Recorder) StartTransaction() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.recording {
		return ErrTransactionActive
	}
	r.recording = true
	r.before = r.doc.Text()
	return nil
}

// EndTransaction stops recording and reports whether the content differs
// from the StartTransaction snapshot. An effective change is pushed onto
// the scope's undo stack and clears that scope's redo stack.
func (r *Recorder) EndTransaction(opts history.TransactionOptions) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.recording {
		return false, ErrNoTransaction
	}
	r.recording = false

	after := r.doc.Text()
	if after == r.before {
		return false, nil
	}

	r.undoStacks[opts.Scope] = append(r.undoStacks[opts.Scope], revision{before: r.before, after: after})
	r.redoStacks[opts.Scope] = nil
	return true, nil
}

// Undo restores the content from before the scope's most recent recorded
// transaction. Nothing recorded for the scope is a silent no-op.
func (r *Recorder) Undo(scope history.Scope) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stack := r.undoStacks[scope]
	if len(stack) == 0 {
		return nil
	}
	rev := stack[len(stack)-1]
	r.undoStacks[scope] = stack[:len(stack)-1]

	r.doc.restore(rev.before)
	r.redoStacks[scope] = append(r.redoStacks[scope], rev)
	return nil
}

// Redo reapplies the scope's most recently undone transaction. Nothing to
// redo is a silent no-op.
func (r *Recorder) Redo(scope history.Scope) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stack := r.redoStacks[scope]
	if len(stack) == 0 {
		return nil
	}
	rev := stack[len(stack)-1]
	r.redoStacks[scope] = stack[:len(stack)-1]

	r.doc.restore(rev.after)
	r.undoStacks[scope] = append(r.undoStacks[scope], rev)
	return nil
}
