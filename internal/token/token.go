package token

import "strconv"

// Token represents a syntax atom. The parser only hands the analyzer
// operator tokens; keywords and punctuation never reach this package.
type Token int

// List of tokens.
const (
	Invalid Token = iota

	// Arithmetic
	Add
	Sub
	Mul
	Div
	Mod

	// Relational
	Eq
	Neq
	Gt
	GtEq
	Lt
	LtEq

	// Logical
	Land
	Lor
)

var tokens = [...]string{
	Invalid: "invalid",

	Add: "+",
	Sub: "-",
	Mul: "*",
	Div: "/",
	Mod: "%",

	Eq:   "==",
	Neq:  "!=",
	Gt:   ">",
	GtEq: ">=",
	Lt:   "<",
	LtEq: "<=",

	Land: "and",
	Lor:  "or",
}

func (tok Token) String() string {
	s := ""
	if 0 <= tok && tok < Token(len(tokens)) {
		s = tokens[tok]
	}
	if s == "" {
		s = "token(" + strconv.Itoa(int(tok)) + ")"
	}
	return s
}

// IsBinaryOp returns true if the token represents a binary operator.
func (tok Token) IsBinaryOp() bool {
	switch tok {
	case Add, Sub, Mul, Div, Mod,
		Eq, Neq, Gt, GtEq, Lt, LtEq,
		Land, Lor:
		return true
	}
	return false
}

// IsArithmeticOp returns true if the token represents an arithmetic operator.
func (tok Token) IsArithmeticOp() bool {
	switch tok {
	case Add, Sub, Mul, Div, Mod:
		return true
	}
	return false
}

// IsComparisonOp returns true if the token represents a comparison operator.
func (tok Token) IsComparisonOp() bool {
	switch tok {
	case Eq, Neq, Gt, GtEq, Lt, LtEq:
		return true
	}
	return false
}

// IsLogicalOp returns true if the token represents a logical operator.
func (tok Token) IsLogicalOp() bool {
	switch tok {
	case Land, Lor:
		return true
	}
	return false
}

// OneOf returns true if the token matches one of the IDs.
func (tok Token) OneOf(ids ...Token) bool {
	for _, id := range ids {
		if tok == id {
			return true
		}
	}
	return false
}
