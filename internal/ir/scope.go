package ir

// Scope is one frame of a parent-linked scope chain. Lookup walks
// outward, so the innermost binding wins. Frames are only inserted into
// while they are being built; extending an environment always creates a
// new frame, never mutates a shared one.
type Scope struct {
	Parent  *Scope
	Symbols map[string]*Symbol
}

// NewScope creates a new scope nested in the parent scope.
func NewScope(parent *Scope) *Scope {
	const n = 4 // Initial scope capacity
	return &Scope{Parent: parent, Symbols: make(map[string]*Symbol, n)}
}

// Insert adds sym to the scope and returns nil, or returns the existing
// symbol if the name is already bound in this frame.
func (s *Scope) Insert(sym *Symbol) *Symbol {
	var existing *Symbol
	if existing = s.Symbols[sym.Name]; existing == nil {
		s.Symbols[sym.Name] = sym
	}
	return existing
}

// Lookup finds the innermost binding of name, or nil.
func (s *Scope) Lookup(name string) *Symbol {
	return doLookup(s, name)
}

func doLookup(s *Scope, name string) *Symbol {
	if s == nil {
		return nil
	}
	if res := s.Symbols[name]; res != nil {
		return res
	}
	return doLookup(s.Parent, name)
}
