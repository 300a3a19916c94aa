package semantics

import (
	"fmt"

	"github.com/fenlang/fen/internal/common"
	"github.com/fenlang/fen/internal/ir"
)

// checkDecl checks a declaration and returns the environment extended
// with its bindings. Later declarations in a let see all earlier ones.
func checkDecl(e env, decl ir.Decl) (env, error) {
	switch decl := decl.(type) {
	case *ir.VarDecl:
		return checkVarDecl(e, decl)
	case *ir.FuncGroup:
		return checkFuncGroup(e, decl)
	default:
		panic(fmt.Sprintf("unhandled decl %T", decl))
	}
}

func resolveTypeName(e env, name *ir.TypeName) (ir.Type, error) {
	sym := e.lookupType(name.Name)
	if sym == nil {
		return nil, common.NewError(name.NamePos, "undeclared type '%s'", name.Name)
	}
	return sym.T, nil
}

func checkVarDecl(e env, decl *ir.VarDecl) (env, error) {
	tinit, err := checkExpr(e, decl.Initializer)
	if err != nil {
		return e, err
	}

	t := tinit
	if decl.Type != nil {
		tdecl, err := resolveTypeName(e, decl.Type)
		if err != nil {
			return e, err
		}
		if !tdecl.Equals(tinit) {
			return e, common.NewError(decl.NamePos, "variable '%s' has type %s (initializer has type %s)", decl.Name, tdecl, tinit)
		}
		t = tdecl
	}

	sym := ir.NewSymbol(ir.ValSymbol, decl.Name, decl.NamePos, t)
	return e.bindVal(sym), nil
}

// checkFuncGroup checks a group of mutually recursive functions in two
// passes: first every signature is resolved and bound into one shared
// frame, then each body is checked against its declared result type.
func checkFuncGroup(e env, group *ir.FuncGroup) (env, error) {
	frame := ir.NewScope(e.vals)
	for _, fun := range group.Funcs {
		var params []ir.Type
		for i := range fun.Params {
			tparam, err := resolveTypeName(e, &fun.Params[i].Type)
			if err != nil {
				return e, err
			}
			params = append(params, tparam)
		}
		ret := ir.TBuiltinUnit
		if fun.Result != nil {
			tret, err := resolveTypeName(e, fun.Result)
			if err != nil {
				return e, err
			}
			ret = tret
		}
		sig := ir.NewFuncType(params, ret)
		fun.SetSignature(sig)
		sym := ir.NewSymbol(ir.FuncSymbol, fun.Name, fun.NamePos, sig)
		if existing := frame.Insert(sym); existing != nil {
			return e, common.NewError(fun.NamePos, "redefinition of '%s' (previously defined at %s)", fun.Name, existing.DeclPos)
		}
	}
	e = e.bindVals(frame)

	for _, fun := range group.Funcs {
		paramFrame := ir.NewScope(e.vals)
		for i := range fun.Params {
			param := &fun.Params[i]
			sym := ir.NewSymbol(ir.ValSymbol, param.Name, param.NamePos, fun.Signature.Params[i])
			if existing := paramFrame.Insert(sym); existing != nil {
				return e, common.NewError(param.NamePos, "redefinition of '%s' (previously defined at %s)", param.Name, existing.DeclPos)
			}
		}
		be := e.bindVals(paramFrame).funcBody()
		tbody, err := checkExpr(be, fun.Body)
		if err != nil {
			return e, err
		}
		if !tbody.Equals(fun.Signature.Return) {
			return e, common.NewError(fun.NamePos, "function '%s' has result type %s (body has type %s)", fun.Name, fun.Signature.Return, tbody)
		}
	}

	return e, nil
}
