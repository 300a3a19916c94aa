package ir

import (
	"fmt"

	"github.com/fenlang/fen/internal/token"
)

// SymbolKind identifies the type of symbol.
type SymbolKind int

// Symbol kinds. Values and functions share the value namespace; type
// names live in a separate namespace.
const (
	ValSymbol SymbolKind = iota
	FuncSymbol
	TypeSymbol
)

func (k SymbolKind) String() string {
	switch k {
	case ValSymbol:
		return "var"
	case FuncSymbol:
		return "fun"
	case TypeSymbol:
		return "type"
	default:
		return fmt.Sprintf("symbol(%d)", int(k))
	}
}

// Symbol represents a named entry in a scope. For ValSymbol T is the
// variable's type, for FuncSymbol T is a *FuncType, for TypeSymbol T is
// the named type.
type Symbol struct {
	Kind    SymbolKind
	Name    string
	DeclPos token.Position
	T       Type
}

// NewSymbol creates a new symbol.
func NewSymbol(kind SymbolKind, name string, pos token.Position, t Type) *Symbol {
	return &Symbol{Kind: kind, Name: name, DeclPos: pos, T: t}
}

func (s *Symbol) String() string {
	return fmt.Sprintf("%s:%s:%s", s.Kind, s.DeclPos, s.Name)
}
