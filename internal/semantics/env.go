package semantics

import "github.com/fenlang/fen/internal/ir"

// env is the compile-time environment threaded through checking: the
// value namespace, the type namespace, and whether the current position
// is inside a loop body. env is a value; binding returns an extended
// copy, so sibling branches of the recursion never observe each other's
// bindings.
type env struct {
	vals   *ir.Scope
	types  *ir.Scope
	inLoop bool
}

func (e env) lookupVal(name string) *ir.Symbol {
	return e.vals.Lookup(name)
}

func (e env) lookupType(name string) *ir.Symbol {
	return e.types.Lookup(name)
}

// bindVal extends the value namespace with a single symbol in a fresh frame.
func (e env) bindVal(sym *ir.Symbol) env {
	frame := ir.NewScope(e.vals)
	frame.Insert(sym)
	e.vals = frame
	return e
}

// bindVals extends the value namespace with one shared frame holding all
// of syms. Used for function groups and parameter lists; a duplicate
// name within the frame is reported by the caller via Insert.
func (e env) bindVals(frame *ir.Scope) env {
	e.vals = frame
	return e
}

// enterLoop marks the environment as being inside a while body.
func (e env) enterLoop() env {
	e.inLoop = true
	return e
}

// funcBody resets the loop flag: an exit inside a nested function body
// does not belong to any enclosing loop.
func (e env) funcBody() env {
	e.inLoop = false
	return e
}
