package semantics_test

import (
	"math/big"
	"strings"
	"testing"

	"github.com/fenlang/fen/internal/common"
	"github.com/fenlang/fen/internal/ir"
	"github.com/fenlang/fen/internal/semantics"
	"github.com/fenlang/fen/internal/token"
)

// Builders for hand-constructed syntax trees. The parser is an external
// collaborator, so tests assemble nodes directly.

func pos(line, col int) token.Position {
	return token.Position{Filename: "test.fen", Line: line, Column: col}
}

var testPos = pos(1, 1)

func intLit(v int64) *ir.IntLit {
	return &ir.IntLit{Value: big.NewInt(v), ValuePos: testPos}
}

func boolLit(v bool) *ir.BoolLit {
	return &ir.BoolLit{Value: v, ValuePos: testPos}
}

func strLit(v string) *ir.StringLit {
	return &ir.StringLit{Value: v, ValuePos: testPos}
}

func realLit(v float64) *ir.RealLit {
	return &ir.RealLit{Value: big.NewFloat(v), ValuePos: testPos}
}

func neg(x ir.Expr) *ir.UnaryExpr {
	return &ir.UnaryExpr{Op: token.Sub, OpPos: testPos, X: x}
}

func binop(op token.Token, left, right ir.Expr) *ir.BinaryExpr {
	return &ir.BinaryExpr{Left: left, Op: op, OpPos: testPos, Right: right}
}

func ifExpr(cond, then, els ir.Expr) *ir.IfExpr {
	return &ir.IfExpr{If: testPos, Cond: cond, Then: then, Else: els}
}

func ternary(cond, then, els ir.Expr) *ir.TernaryExpr {
	return &ir.TernaryExpr{If: testPos, Cond: cond, Then: then, Else: els}
}

func while(cond, body ir.Expr) *ir.WhileExpr {
	return &ir.WhileExpr{While: testPos, Cond: cond, Body: body}
}

func exit() *ir.ExitExpr {
	return &ir.ExitExpr{Exit: testPos}
}

func seq(exprs ...ir.Expr) *ir.SeqExpr {
	return &ir.SeqExpr{Lparen: testPos, Exprs: exprs}
}

func call(name string, args ...ir.Expr) *ir.CallExpr {
	return &ir.CallExpr{Name: name, NamePos: testPos, Args: args}
}

func varRef(name string) *ir.VarExpr {
	return &ir.VarExpr{Name: name, NamePos: testPos}
}

func let(decls []ir.Decl, body ir.Expr) *ir.LetExpr {
	return &ir.LetExpr{Let: testPos, Decls: decls, Body: body}
}

func assign(name string, right ir.Expr) *ir.AssignExpr {
	return &ir.AssignExpr{Name: name, NamePos: testPos, Right: right}
}

func typeName(name string) *ir.TypeName {
	return &ir.TypeName{Name: name, NamePos: testPos}
}

func varDec(name string, typ string, init ir.Expr) *ir.VarDecl {
	d := &ir.VarDecl{Name: name, NamePos: testPos, Initializer: init}
	if typ != "" {
		d.Type = typeName(typ)
	}
	return d
}

func param(name string, typ string) ir.Param {
	return ir.Param{Name: name, NamePos: testPos, Type: *typeName(typ)}
}

func funDec(name string, params []ir.Param, result string, body ir.Expr) *ir.FuncDecl {
	d := &ir.FuncDecl{Name: name, NamePos: testPos, Params: params, Body: body}
	if result != "" {
		d.Result = typeName(result)
	}
	return d
}

func funGroup(funcs ...*ir.FuncDecl) *ir.FuncGroup {
	return &ir.FuncGroup{Funcs: funcs}
}

// Assertion helpers.

func mustCheck(t *testing.T, program ir.Expr) {
	t.Helper()
	if err := semantics.Check(program); err != nil {
		t.Fatalf("unexpected semantic error: %s", err)
	}
}

func mustFail(t *testing.T, program ir.Expr, wantSubstr string) {
	t.Helper()
	err := semantics.Check(program)
	if err == nil {
		t.Fatalf("expected semantic error containing %q, got none", wantSubstr)
	}
	if _, ok := err.(*common.Error); !ok {
		t.Fatalf("error has type %T, want *common.Error", err)
	}
	if !strings.Contains(err.Error(), wantSubstr) {
		t.Fatalf("error %q does not contain %q", err, wantSubstr)
	}
}

func checkErr(t *testing.T, program ir.Expr) *common.Error {
	t.Helper()
	err := semantics.Check(program)
	if err == nil {
		t.Fatal("expected semantic error, got none")
	}
	serr, ok := err.(*common.Error)
	if !ok {
		t.Fatalf("error has type %T, want *common.Error", err)
	}
	return serr
}

func assertType(t *testing.T, expr ir.Expr, want ir.Type) {
	t.Helper()
	got := expr.Type()
	if got == nil {
		t.Fatalf("node has no type annotation, want %s", want)
	}
	if !got.Equals(want) {
		t.Fatalf("node annotated %s, want %s", got, want)
	}
}
