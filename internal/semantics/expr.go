package semantics

import (
	"fmt"

	"github.com/fenlang/fen/internal/common"
	"github.com/fenlang/fen/internal/ir"
)

// checkExpr type checks expr in e and writes the result into the node's
// annotation slot. It returns the first semantic error encountered.
func checkExpr(e env, expr ir.Expr) (ir.Type, error) {
	var t ir.Type
	var err error

	switch expr := expr.(type) {
	case *ir.BoolLit:
		t = ir.TBuiltinBool
	case *ir.IntLit:
		t = ir.TBuiltinInt
	case *ir.StringLit:
		t = ir.TBuiltinString
	case *ir.RealLit:
		t = ir.TBuiltinReal
	case *ir.UnaryExpr:
		t, err = checkUnaryExpr(e, expr)
	case *ir.BinaryExpr:
		t, err = checkBinaryExpr(e, expr)
	case *ir.IfExpr:
		t, err = checkIfExpr(e, expr)
	case *ir.TernaryExpr:
		t, err = checkTernaryExpr(e, expr)
	case *ir.WhileExpr:
		t, err = checkWhileExpr(e, expr)
	case *ir.ExitExpr:
		t, err = checkExitExpr(e, expr)
	case *ir.SeqExpr:
		t, err = checkSeqExpr(e, expr)
	case *ir.CallExpr:
		t, err = checkCallExpr(e, expr)
	case *ir.VarExpr:
		t, err = checkVarExpr(e, expr)
	case *ir.LetExpr:
		t, err = checkLetExpr(e, expr)
	case *ir.AssignExpr:
		t, err = checkAssignExpr(e, expr)
	default:
		panic(fmt.Sprintf("unhandled expr %T", expr))
	}

	if err != nil {
		return nil, err
	}

	expr.SetType(t)
	return t, nil
}

func checkUnaryExpr(e env, expr *ir.UnaryExpr) (ir.Type, error) {
	tx, err := checkExpr(e, expr.X)
	if err != nil {
		return nil, err
	}
	if !ir.IsNumericType(tx) {
		return nil, common.NewError(expr.X.Pos(), "operand of '%s' has type %s (expected Int or Real)", expr.Op, tx)
	}
	return tx, nil
}

func checkBinaryExpr(e env, expr *ir.BinaryExpr) (ir.Type, error) {
	left, err := checkExpr(e, expr.Left)
	if err != nil {
		return nil, err
	}
	right, err := checkExpr(e, expr.Right)
	if err != nil {
		return nil, err
	}

	switch {
	case expr.Op.IsArithmeticOp():
		if !ir.IsNumericType(left) {
			return nil, common.NewError(expr.Left.Pos(), "left operand of '%s' has type %s (expected Int or Real)", expr.Op, left)
		}
		if !left.Equals(right) {
			return nil, common.NewError(expr.OpPos, "operands of '%s' have types %s and %s", expr.Op, left, right)
		}
		return left, nil
	case expr.Op.IsComparisonOp():
		if !left.Equals(right) {
			return nil, common.NewError(expr.OpPos, "operands of '%s' have types %s and %s", expr.Op, left, right)
		}
		return ir.TBuiltinBool, nil
	case expr.Op.IsLogicalOp():
		if left.Kind() != ir.TBool {
			return nil, common.NewError(expr.Left.Pos(), "left operand of '%s' has type %s (expected Bool)", expr.Op, left)
		}
		if right.Kind() != ir.TBool {
			return nil, common.NewError(expr.Right.Pos(), "right operand of '%s' has type %s (expected Bool)", expr.Op, right)
		}
		return ir.TBuiltinBool, nil
	default:
		panic(fmt.Sprintf("unhandled binary op %s", expr.Op))
	}
}

func checkCond(e env, cond ir.Expr) error {
	tcond, err := checkExpr(e, cond)
	if err != nil {
		return err
	}
	if tcond.Kind() != ir.TBool {
		return common.NewError(cond.Pos(), "condition has type %s (expected Bool)", tcond)
	}
	return nil
}

func checkIfExpr(e env, expr *ir.IfExpr) (ir.Type, error) {
	if err := checkCond(e, expr.Cond); err != nil {
		return nil, err
	}
	tthen, err := checkExpr(e, expr.Then)
	if err != nil {
		return nil, err
	}
	if expr.Else == nil {
		if tthen.Kind() != ir.TUnit {
			return nil, common.NewError(expr.Then.Pos(), "if without else has type %s (expected Unit)", tthen)
		}
		return ir.TBuiltinUnit, nil
	}
	telse, err := checkExpr(e, expr.Else)
	if err != nil {
		return nil, err
	}
	if !tthen.Equals(telse) {
		return nil, common.NewError(expr.Else.Pos(), "if branches have types %s and %s", tthen, telse)
	}
	return tthen, nil
}

func checkTernaryExpr(e env, expr *ir.TernaryExpr) (ir.Type, error) {
	if err := checkCond(e, expr.Cond); err != nil {
		return nil, err
	}
	tthen, err := checkExpr(e, expr.Then)
	if err != nil {
		return nil, err
	}
	telse, err := checkExpr(e, expr.Else)
	if err != nil {
		return nil, err
	}
	if !tthen.Equals(telse) {
		return nil, common.NewError(expr.Else.Pos(), "ternary branches have types %s and %s", tthen, telse)
	}
	return tthen, nil
}

func checkWhileExpr(e env, expr *ir.WhileExpr) (ir.Type, error) {
	if err := checkCond(e, expr.Cond); err != nil {
		return nil, err
	}
	tbody, err := checkExpr(e.enterLoop(), expr.Body)
	if err != nil {
		return nil, err
	}
	if tbody.Kind() != ir.TUnit {
		return nil, common.NewError(expr.Body.Pos(), "while body has type %s (expected Unit)", tbody)
	}
	return ir.TBuiltinUnit, nil
}

func checkExitExpr(e env, expr *ir.ExitExpr) (ir.Type, error) {
	if !e.inLoop {
		return nil, common.NewError(expr.Exit, "'exit' can only be used in a loop")
	}
	return ir.TBuiltinUnit, nil
}

func checkSeqExpr(e env, expr *ir.SeqExpr) (ir.Type, error) {
	t := ir.TBuiltinUnit
	for _, x := range expr.Exprs {
		tx, err := checkExpr(e, x)
		if err != nil {
			return nil, err
		}
		t = tx
	}
	return t, nil
}

func checkCallExpr(e env, expr *ir.CallExpr) (ir.Type, error) {
	sym := e.lookupVal(expr.Name)
	if sym == nil {
		return nil, common.NewError(expr.NamePos, "undeclared identifier '%s'", expr.Name)
	}
	if sym.Kind != ir.FuncSymbol {
		return nil, common.NewError(expr.NamePos, "'%s' is not a function", expr.Name)
	}
	sig := sym.T.(*ir.FuncType)
	if len(expr.Args) != len(sig.Params) {
		return nil, common.NewError(expr.NamePos, "'%s' takes %d argument(s) (got %d)", expr.Name, len(sig.Params), len(expr.Args))
	}
	for i, arg := range expr.Args {
		targ, err := checkExpr(e, arg)
		if err != nil {
			return nil, err
		}
		if !targ.Equals(sig.Params[i]) {
			return nil, common.NewError(arg.Pos(), "argument %d of '%s' has type %s (expected %s)", i+1, expr.Name, targ, sig.Params[i])
		}
	}
	return sig.Return, nil
}

func checkVarExpr(e env, expr *ir.VarExpr) (ir.Type, error) {
	sym := e.lookupVal(expr.Name)
	if sym == nil {
		return nil, common.NewError(expr.NamePos, "undeclared identifier '%s'", expr.Name)
	}
	if sym.Kind != ir.ValSymbol {
		return nil, common.NewError(expr.NamePos, "'%s' is a function, not a variable", expr.Name)
	}
	return sym.T, nil
}

func checkLetExpr(e env, expr *ir.LetExpr) (ir.Type, error) {
	var err error
	for _, decl := range expr.Decls {
		e, err = checkDecl(e, decl)
		if err != nil {
			return nil, err
		}
	}
	return checkExpr(e, expr.Body)
}

func checkAssignExpr(e env, expr *ir.AssignExpr) (ir.Type, error) {
	sym := e.lookupVal(expr.Name)
	if sym == nil {
		return nil, common.NewError(expr.NamePos, "undeclared identifier '%s'", expr.Name)
	}
	if sym.Kind != ir.ValSymbol {
		return nil, common.NewError(expr.NamePos, "cannot assign to '%s' (not a variable)", expr.Name)
	}
	tright, err := checkExpr(e, expr.Right)
	if err != nil {
		return nil, err
	}
	if !tright.Equals(sym.T) {
		return nil, common.NewError(expr.Right.Pos(), "cannot assign %s to '%s' (type %s)", tright, expr.Name, sym.T)
	}
	return ir.TBuiltinUnit, nil
}
