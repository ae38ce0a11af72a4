package history

// Scope identifies an independent undo/redo history bucket. Operations
// performed under one scope never affect the stacks of another.
//
// The zero value is the default scope, used whenever a caller does not care
// about partitioning. Named scopes are created with Named. Because the
// variant tag participates in equality, a named scope can never collide
// with the default scope, not even Named("").
type Scope struct {
	name  string
	named bool
}

// Default is the scope used when callers do not choose one.
var Default = Scope{}

// Named returns the scope with the given name. Calling Named twice with
// the same name yields the same scope.
func Named(name string) Scope {
	return Scope{name: name, named: true}
}

// IsDefault reports whether s is the default scope.
func (s Scope) IsDefault() bool {
	return !s.named
}

// Name returns the scope name and whether the scope is a named one.
// The default scope has no name.
func (s Scope) Name() (string, bool) {
	return s.name, s.named
}

// String returns "default" for the default scope, the name otherwise.
func (s Scope) String() string {
	if !s.named {
		return "default"
	}
	return s.name
}
