package semantics

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/fenlang/fen/internal/ir"
)

// Tree is the generic debug tree the serializer renders syntax trees
// into: a label of one or more lines plus an ordered list of children.
// It is the snapshot form the checker's output is compared against.
type Tree struct {
	Lines    []string
	Children []*Tree
}

// EmptyTree is the distinguished leaf for an absent optional child,
// e.g. a missing else branch.
var EmptyTree = &Tree{}

func (t *Tree) IsEmpty() bool {
	return t == EmptyTree
}

func newTree(label string, children ...*Tree) *Tree {
	return &Tree{Lines: []string{label}, Children: children}
}

// Label joins the label lines into one newline-joined string.
func (t *Tree) Label() string {
	return strings.Join(t.Lines, "\n")
}

// annotated appends text as an extra label line. Annotating the empty
// tree yields a two-line label with an empty first line.
func annotated(t *Tree, text string) *Tree {
	if t.IsEmpty() {
		return &Tree{Lines: []string{"", text}}
	}
	lines := make([]string, 0, len(t.Lines)+1)
	lines = append(lines, t.Lines...)
	lines = append(lines, text)
	return &Tree{Lines: lines, Children: t.Children}
}

// String renders the tree in the stable textual form used for snapshot
// comparison: each label line at the node's indentation, children
// indented one level, in source order.
func (t *Tree) String() string {
	var buf bytes.Buffer
	writeTree(&buf, t, 0)
	return buf.String()
}

func writeTree(buf *bytes.Buffer, t *Tree, level int) {
	for _, line := range t.Lines {
		for i := 0; i < level; i++ {
			buf.WriteString("  ")
		}
		buf.WriteString(line)
		buf.WriteByte('\n')
	}
	for _, child := range t.Children {
		writeTree(buf, child, level+1)
	}
}

// ToTree renders a syntax tree (or subtree) into its generic tree form.
// It never mutates the input and works on checked and unchecked trees
// alike; annotation slots that are set show up as extra label lines.
func ToTree(node ir.Node) *Tree {
	switch n := node.(type) {
	case ir.Expr:
		return exprTree(n)
	case ir.Decl:
		return declTree(n)
	default:
		panic(fmt.Sprintf("unhandled node %T", node))
	}
}

func exprTree(expr ir.Expr) *Tree {
	t := rawExprTree(expr)
	if typ := expr.Type(); typ != nil {
		t = annotated(t, typ.String())
	}
	return t
}

func rawExprTree(expr ir.Expr) *Tree {
	switch expr := expr.(type) {
	case *ir.BoolLit:
		return newTree(fmt.Sprintf("BoolLit %t", expr.Value))
	case *ir.IntLit:
		return newTree(fmt.Sprintf("IntLit %s", expr.Value))
	case *ir.StringLit:
		return newTree(fmt.Sprintf("StringLit %q", expr.Value))
	case *ir.RealLit:
		return newTree(fmt.Sprintf("RealLit %v", expr.Value))
	case *ir.UnaryExpr:
		return newTree("Negate", exprTree(expr.X))
	case *ir.BinaryExpr:
		return newTree(fmt.Sprintf("BinaryOp %s", expr.Op), exprTree(expr.Left), exprTree(expr.Right))
	case *ir.IfExpr:
		return newTree("If", exprTree(expr.Cond), exprTree(expr.Then), optExprTree(expr.Else))
	case *ir.TernaryExpr:
		return newTree("Ternary", exprTree(expr.Cond), exprTree(expr.Then), exprTree(expr.Else))
	case *ir.WhileExpr:
		return newTree("While", exprTree(expr.Cond), exprTree(expr.Body))
	case *ir.ExitExpr:
		return newTree("Exit")
	case *ir.SeqExpr:
		return newTree("Seq", exprTreeList(expr.Exprs)...)
	case *ir.CallExpr:
		args := newTree("Args", exprTreeList(expr.Args)...)
		return newTree(fmt.Sprintf("Call %s", expr.Name), args)
	case *ir.VarExpr:
		return newTree(fmt.Sprintf("Var %s", expr.Name))
	case *ir.LetExpr:
		decs := &Tree{Lines: []string{"Decs"}}
		for _, decl := range expr.Decls {
			decs.Children = append(decs.Children, declTree(decl))
		}
		return newTree("Let", decs, exprTree(expr.Body))
	case *ir.AssignExpr:
		return newTree(fmt.Sprintf("Assign %s", expr.Name), exprTree(expr.Right))
	default:
		panic(fmt.Sprintf("unhandled expr %T", expr))
	}
}

func optExprTree(expr ir.Expr) *Tree {
	if expr == nil {
		return EmptyTree
	}
	return exprTree(expr)
}

func exprTreeList(exprs []ir.Expr) []*Tree {
	var trees []*Tree
	for _, x := range exprs {
		trees = append(trees, exprTree(x))
	}
	return trees
}

func declTree(decl ir.Decl) *Tree {
	switch decl := decl.(type) {
	case *ir.VarDecl:
		return newTree(fmt.Sprintf("VarDec %s", decl.Name), typeNameTree(decl.Type), exprTree(decl.Initializer))
	case *ir.FuncGroup:
		group := &Tree{Lines: []string{"FunDecs"}}
		for _, fun := range decl.Funcs {
			group.Children = append(group.Children, funcDeclTree(fun))
		}
		return group
	default:
		panic(fmt.Sprintf("unhandled decl %T", decl))
	}
}

func funcDeclTree(fun *ir.FuncDecl) *Tree {
	params := &Tree{Lines: []string{"Parameters"}}
	for i := range fun.Params {
		param := &fun.Params[i]
		params.Children = append(params.Children, newTree(fmt.Sprintf("Param %s %s", param.Name, param.Type.Name)))
	}
	t := newTree(fmt.Sprintf("FunDec %s", fun.Name), params, typeNameTree(fun.Result), exprTree(fun.Body))
	if fun.Signature != nil {
		t.Lines = append([]string{fun.Signature.String()}, t.Lines...)
	}
	return t
}

func typeNameTree(name *ir.TypeName) *Tree {
	if name == nil {
		return EmptyTree
	}
	return newTree(fmt.Sprintf("Type %s", name.Name))
}
