package ir

import "bytes"

// TypeKind identifies the base type.
type TypeKind int

// Type kinds.
const (
	TInvalid TypeKind = iota
	TInt
	TBool
	TString
	TReal
	TUnit
	TFunc
)

var types = [...]string{
	TInvalid: "Invalid",
	TInt:     "Int",
	TBool:    "Bool",
	TString:  "String",
	TReal:    "Real",
	TUnit:    "Unit",
	TFunc:    "Fun",
}

func (k TypeKind) String() string {
	s := ""
	if 0 <= k && k < TypeKind(len(types)) {
		s = types[k]
	} else {
		s = "unknown"
	}
	return s
}

// Type interface is implemented by all types and is the main
// representation of types in the analyzer. Types are immutable once
// constructed and compared structurally.
type Type interface {
	Kind() TypeKind
	String() string
	Equals(Type) bool
}

// Built-in types.
var (
	TBuiltinInt    = Type(NewBasicType(TInt))
	TBuiltinBool   = Type(NewBasicType(TBool))
	TBuiltinString = Type(NewBasicType(TString))
	TBuiltinReal   = Type(NewBasicType(TReal))
	TBuiltinUnit   = Type(NewBasicType(TUnit))
)

type baseType struct {
	kind TypeKind
}

func (t *baseType) Kind() TypeKind {
	return t.kind
}

type BasicType struct {
	baseType
}

func NewBasicType(kind TypeKind) *BasicType {
	return &BasicType{baseType{kind}}
}

func (t *BasicType) String() string {
	return t.kind.String()
}

func (t *BasicType) Equals(other Type) bool {
	if t2, ok := other.(*BasicType); ok {
		return t.kind == t2.kind
	}
	return false
}

// FuncType is the signature of a function: parameter types plus result type.
type FuncType struct {
	baseType
	Params []Type
	Return Type
}

func NewFuncType(params []Type, ret Type) *FuncType {
	t := &FuncType{Params: params, Return: ret}
	t.kind = TFunc
	return t
}

func (t *FuncType) String() string {
	var buf bytes.Buffer
	buf.WriteString("fun")
	buf.WriteString("(")
	for i, param := range t.Params {
		buf.WriteString(param.String())
		if (i + 1) < len(t.Params) {
			buf.WriteString(", ")
		}
	}
	buf.WriteString(")")
	if t.Return.Kind() != TUnit {
		buf.WriteString(" ")
		buf.WriteString(t.Return.String())
	}
	return buf.String()
}

func (t *FuncType) Equals(other Type) bool {
	if t2, ok := other.(*FuncType); ok {
		if len(t.Params) != len(t2.Params) {
			return false
		}
		if !t.Return.Equals(t2.Return) {
			return false
		}
		for i := 0; i < len(t.Params); i++ {
			if !t.Params[i].Equals(t2.Params[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// IsNumericType returns true for the types negation and arithmetic
// operators accept.
func IsNumericType(t Type) bool {
	switch t.Kind() {
	case TInt, TReal:
		return true
	default:
		return false
	}
}
