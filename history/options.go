package history

// DefaultMaxEntries is the per-scope undo stack limit used when no option
// overrides it.
const DefaultMaxEntries = 1000

// Option configures a Manager during creation.
type Option func(*Manager)

// WithMaxEntries sets the maximum number of undo entries kept per scope.
// When a scope's undo stack grows past the limit, the oldest entries are
// dropped. Values <= 0 are ignored.
func WithMaxEntries(max int) Option {
	return func(m *Manager) {
		if max > 0 {
			m.maxEntries = max
		}
	}
}
