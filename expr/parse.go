package expr

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"math"
	"strconv"
)

// Parse builds an Expr from Go expression syntax. Identifiers are bound to
// coordinate indices in the order given by names, so Parse("x1*x2", "x1",
// "x2") reads x1 from x[0] and x2 from x[1].
//
// Besides the arithmetic operators and comparisons, the source may use the
// unary functions cos, sin, tan, acos, asin, atan, exp, log, sqrt and abs,
// pow(a, b), where(cond, a, b) and the constant pi. The operator ^ is a
// power but keeps Go's additive precedence, so "1 - x^2" must be written
// "1 - (x^2)".
func Parse(src string, names ...string) (e Expr, err error) {
	var (
		node  ast.Expr
		index = make(map[string]int, len(names))
	)
	for i, name := range names {
		index[name] = i
	}
	if node, err = parser.ParseExpr(src); err != nil {
		err = fmt.Errorf("parsing %q: %w", src, err)
		return
	}
	if e, err = build(node, index); err != nil {
		err = fmt.Errorf("parsing %q: %w", src, err)
	}
	return
}

func build(node ast.Expr, index map[string]int) (e Expr, err error) {
	switch n := node.(type) {
	case *ast.BasicLit:
		if n.Kind != token.INT && n.Kind != token.FLOAT {
			err = fmt.Errorf("unsupported literal %s", n.Value)
			return
		}
		var val float64
		if val, err = strconv.ParseFloat(n.Value, 64); err != nil {
			return
		}
		e = Const(val)
	case *ast.Ident:
		if i, ok := index[n.Name]; ok {
			e = Coord(i, n.Name)
			return
		}
		if n.Name == "pi" {
			e = Const(math.Pi)
			return
		}
		err = fmt.Errorf("unknown identifier %q", n.Name)
	case *ast.ParenExpr:
		e, err = build(n.X, index)
	case *ast.UnaryExpr:
		var a Expr
		if a, err = build(n.X, index); err != nil {
			return
		}
		switch n.Op {
		case token.SUB:
			e = Neg(a)
		case token.ADD:
			e = a
		case token.NOT:
			e = Not(a)
		default:
			err = fmt.Errorf("unsupported unary operator %s", n.Op)
		}
	case *ast.BinaryExpr:
		var a, b Expr
		if a, err = build(n.X, index); err != nil {
			return
		}
		if b, err = build(n.Y, index); err != nil {
			return
		}
		switch n.Op {
		case token.ADD:
			e = Add(a, b)
		case token.SUB:
			e = Sub(a, b)
		case token.MUL:
			e = Mul(a, b)
		case token.QUO:
			e = Div(a, b)
		case token.XOR:
			e = Pow(a, b)
		case token.LSS:
			e = Lt(a, b)
		case token.LEQ:
			e = Le(a, b)
		case token.GTR:
			e = Gt(a, b)
		case token.GEQ:
			e = Ge(a, b)
		case token.EQL:
			e = Eq(a, b)
		case token.LAND:
			e = And(a, b)
		case token.LOR:
			e = Or(a, b)
		default:
			err = fmt.Errorf("unsupported operator %s", n.Op)
		}
	case *ast.CallExpr:
		e, err = buildCall(n, index)
	default:
		err = fmt.Errorf("unsupported expression %T", node)
	}
	return
}

func buildCall(n *ast.CallExpr, index map[string]int) (e Expr, err error) {
	var (
		args = make([]Expr, len(n.Args))
	)
	fn, ok := n.Fun.(*ast.Ident)
	if !ok {
		err = fmt.Errorf("unsupported call target %T", n.Fun)
		return
	}
	for i, arg := range n.Args {
		if args[i], err = build(arg, index); err != nil {
			return
		}
	}
	nargs := func(want int) error {
		if len(args) != want {
			return fmt.Errorf("%s takes %d arguments, got %d", fn.Name, want, len(args))
		}
		return nil
	}
	switch fn.Name {
	case "pow":
		if err = nargs(2); err == nil {
			e = Pow(args[0], args[1])
		}
	case "where":
		if err = nargs(3); err == nil {
			e = Where(args[0], args[1], args[2])
		}
	default:
		if err = nargs(1); err == nil {
			e, err = Apply(fn.Name, args[0])
		}
	}
	return
}
