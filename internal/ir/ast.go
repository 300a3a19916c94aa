package ir

import (
	"math/big"

	"github.com/fenlang/fen/internal/common"
	"github.com/fenlang/fen/internal/token"
)

// Node interface.
type Node interface {
	Pos() token.Position
	node()
}

// Expr is the main interface for expression nodes. Every expression
// carries a single-write type slot: the checker sets it exactly once,
// later stages only read it.
type Expr interface {
	Node
	Type() Type
	SetType(Type)
	exprNode()
}

// Decl is the main interface for declaration nodes.
type Decl interface {
	Node
	declNode()
}

type baseNode struct{}

func (n *baseNode) node() {}

type baseExpr struct {
	baseNode
	T Type
}

func (x *baseExpr) exprNode() {}

// Type returns the inferred type, or nil if the node has not been checked.
func (x *baseExpr) Type() Type {
	return x.T
}

func (x *baseExpr) SetType(t Type) {
	common.Assert(x.T == nil, "type annotation set twice")
	x.T = t
}

// Expression nodes.

type BoolLit struct {
	baseExpr
	Value    bool
	ValuePos token.Position
}

func (x *BoolLit) Pos() token.Position { return x.ValuePos }

type IntLit struct {
	baseExpr
	Value    *big.Int
	ValuePos token.Position
}

func (x *IntLit) Pos() token.Position { return x.ValuePos }

type StringLit struct {
	baseExpr
	Value    string
	ValuePos token.Position
}

func (x *StringLit) Pos() token.Position { return x.ValuePos }

type RealLit struct {
	baseExpr
	Value    *big.Float
	ValuePos token.Position
}

func (x *RealLit) Pos() token.Position { return x.ValuePos }

// UnaryExpr is numeric negation.
type UnaryExpr struct {
	baseExpr
	Op    token.Token
	OpPos token.Position
	X     Expr
}

func (x *UnaryExpr) Pos() token.Position { return x.OpPos }

type BinaryExpr struct {
	baseExpr
	Left  Expr
	Op    token.Token
	OpPos token.Position
	Right Expr
}

func (x *BinaryExpr) Pos() token.Position { return x.Left.Pos() }

// IfExpr is the conditional with an optional else branch. Without an
// else the then branch must have type Unit.
type IfExpr struct {
	baseExpr
	If   token.Position
	Cond Expr
	Then Expr
	Else Expr // Optional
}

func (x *IfExpr) Pos() token.Position { return x.If }

// TernaryExpr is the expression form of the conditional: all three
// branches are required and both result branches must have the same type.
type TernaryExpr struct {
	baseExpr
	If   token.Position
	Cond Expr
	Then Expr
	Else Expr
}

func (x *TernaryExpr) Pos() token.Position { return x.If }

type WhileExpr struct {
	baseExpr
	While token.Position
	Cond  Expr
	Body  Expr
}

func (x *WhileExpr) Pos() token.Position { return x.While }

// ExitExpr breaks out of the innermost enclosing while loop.
type ExitExpr struct {
	baseExpr
	Exit token.Position
}

func (x *ExitExpr) Pos() token.Position { return x.Exit }

type SeqExpr struct {
	baseExpr
	Lparen token.Position
	Exprs  []Expr
}

func (x *SeqExpr) Pos() token.Position { return x.Lparen }

type CallExpr struct {
	baseExpr
	Name    string
	NamePos token.Position
	Args    []Expr
}

func (x *CallExpr) Pos() token.Position { return x.NamePos }

type VarExpr struct {
	baseExpr
	Name    string
	NamePos token.Position
}

func (x *VarExpr) Pos() token.Position { return x.NamePos }

type LetExpr struct {
	baseExpr
	Let   token.Position
	Decls []Decl
	Body  Expr
}

func (x *LetExpr) Pos() token.Position { return x.Let }

type AssignExpr struct {
	baseExpr
	Name    string
	NamePos token.Position
	Right   Expr
}

func (x *AssignExpr) Pos() token.Position { return x.NamePos }

// Declaration nodes.

type baseDecl struct {
	baseNode
}

func (d *baseDecl) declNode() {}

// TypeName is an optional type annotation written in the source.
type TypeName struct {
	Name    string
	NamePos token.Position
}

// VarDecl declares a variable with an initializer and an optional
// declared type.
type VarDecl struct {
	baseDecl
	Name        string
	NamePos     token.Position
	Type        *TypeName // Optional
	Initializer Expr
}

func (d *VarDecl) Pos() token.Position { return d.NamePos }

// Param is a function parameter with a required type annotation.
type Param struct {
	Name    string
	NamePos token.Position
	Type    TypeName
}

// FuncDecl is a single function inside a group. Signature is a
// single-write slot filled in by the checker.
type FuncDecl struct {
	Name      string
	NamePos   token.Position
	Params    []Param
	Result    *TypeName // Optional, defaults to Unit
	Body      Expr
	Signature *FuncType
}

func (d *FuncDecl) Pos() token.Position { return d.NamePos }

func (d *FuncDecl) SetSignature(sig *FuncType) {
	common.Assert(d.Signature == nil, "signature annotation set twice")
	d.Signature = sig
}

// FuncGroup is an ordered list of mutually recursive function
// declarations. Functions in one group are visible to each other;
// functions in later groups are not.
type FuncGroup struct {
	baseDecl
	Funcs []*FuncDecl
}

func (d *FuncGroup) Pos() token.Position {
	if len(d.Funcs) > 0 {
		return d.Funcs[0].NamePos
	}
	return token.NoPosition
}
