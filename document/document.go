package document

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/dshills/rewind/history"
)

// Document is a JSON document addressed with gjson path syntax. All
// operations are guarded by a mutex; the zero content is the empty object.
type Document struct {
	mu      sync.Mutex
	id      history.DocumentID
	content string

	recorder *Recorder
}

// Option configures a Document during creation.
type Option func(*Document)

// WithID sets the document identifier. Without it, New generates a uuid.
func WithID(id history.DocumentID) Option {
	return func(d *Document) {
		if id != "" {
			d.id = id
		}
	}
}

// WithContent sets the initial JSON content. Invalid JSON is ignored and
// the document starts as the empty object.
func WithContent(content string) Option {
	return func(d *Document) {
		if gjson.Valid(content) {
			d.content = content
		}
	}
}

// New creates a document. By default the id is a fresh uuid and the content
// is "{}".
func New(opts ...Option) *Document {
	d := &Document{content: "{}"}
	for _, opt := range opts {
		opt(d)
	}
	if d.id == "" {
		d.id = history.DocumentID(uuid.NewString())
	}
	return d
}

// ID returns the stable document identifier.
func (d *Document) ID() history.DocumentID {
	return d.id
}

// Text returns the full JSON content.
func (d *Document) Text() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.content
}

// Get returns the value at the gjson path.
func (d *Document) Get(path string) gjson.Result {
	d.mu.Lock()
	defer d.mu.Unlock()
	return gjson.Get(d.content, path)
}

// Set assigns a Go value at the path, creating intermediate objects as
// needed.
func (d *Document) Set(path string, value any) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	updated, err := sjson.Set(d.content, path, value)
	if err != nil {
		return fmt.Errorf("set %s: %w", path, err)
	}
	d.content = updated
	return nil
}

// SetRaw assigns a pre-encoded JSON fragment at the path.
func (d *Document) SetRaw(path, raw string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	updated, err := sjson.SetRaw(d.content, path, raw)
	if err != nil {
		return fmt.Errorf("set raw %s: %w", path, err)
	}
	d.content = updated
	return nil
}

// Delete removes the value at the path. Deleting a missing path leaves the
// document unchanged.
func (d *Document) Delete(path string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	updated, err := sjson.Delete(d.content, path)
	if err != nil {
		return fmt.Errorf("delete %s: %w", path, err)
	}
	d.content = updated
	return nil
}

// UndoRedoHandle returns the document's recorder, creating it on first
// call. The same recorder is returned every time, so registering the
// document twice cannot split its undo state.
func (d *Document) UndoRedoHandle() history.Handle {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.recorder == nil {
		d.recorder = newRecorder(d)
	}
	return d.recorder
}

// restore replaces the content wholesale. Used by the recorder.
func (d *Document) restore(content string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.content = content
}
