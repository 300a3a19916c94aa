package semantics

import (
	"github.com/fenlang/fen/internal/ir"
	"github.com/fenlang/fen/internal/token"
)

// Check runs semantic analysis on a parsed program: it resolves names,
// type checks every expression, and writes the inferred type into each
// node's annotation slot. It returns nil on success or the first
// semantic error encountered (*common.Error).
//
// A tree must only be checked once; annotation slots are single-write.
func Check(program ir.Expr) error {
	_, err := checkExpr(preludeEnv(), program)
	return err
}

// The prelude scopes are immutable after init; every Check invocation
// extends them with fresh frames and never inserts into them.
var builtinVals = ir.NewScope(nil)
var builtinTypes = ir.NewScope(nil)

func addBuiltinType(t ir.Type) {
	sym := ir.NewSymbol(ir.TypeSymbol, t.String(), token.NoPosition, t)
	builtinTypes.Insert(sym)
}

func addBuiltinFunc(name string, ret ir.Type, params ...ir.Type) {
	sig := ir.NewFuncType(params, ret)
	sym := ir.NewSymbol(ir.FuncSymbol, name, token.NoPosition, sig)
	builtinVals.Insert(sym)
}

func init() {
	addBuiltinType(ir.TBuiltinInt)
	addBuiltinType(ir.TBuiltinBool)
	addBuiltinType(ir.TBuiltinString)
	addBuiltinType(ir.TBuiltinReal)
	addBuiltinType(ir.TBuiltinUnit)

	addBuiltinFunc("print", ir.TBuiltinUnit, ir.TBuiltinString)
	addBuiltinFunc("printInt", ir.TBuiltinUnit, ir.TBuiltinInt)
	addBuiltinFunc("flush", ir.TBuiltinUnit)
	addBuiltinFunc("size", ir.TBuiltinInt, ir.TBuiltinString)
	addBuiltinFunc("concat", ir.TBuiltinString, ir.TBuiltinString, ir.TBuiltinString)
	addBuiltinFunc("not", ir.TBuiltinBool, ir.TBuiltinBool)
}

func preludeEnv() env {
	return env{vals: builtinVals, types: builtinTypes}
}
