// Package expr provides closed-form scalar expressions over mesh
// coordinates. An Expr is the transform capability consumed by the
// distribution fit: it can be evaluated at a point and, through the fem
// package, integrated over a cell.
package expr

import (
	"fmt"
	"math"
	"strconv"

	"github.com/mannixp/D.stratify-pdfe/utils"
)

type Expr interface {
	// Eval returns the value at the coordinate tuple x
	Eval(x []float64) float64
	String() string
}

type Const float64

func (c Const) Eval([]float64) float64 { return float64(c) }
func (c Const) String() string {
	return strconv.FormatFloat(float64(c), 'g', -1, 64)
}

// Coordinate selects component Index of the evaluation point
type Coordinate struct {
	Index int
	Name  string
}

func Coord(i int, name string) Coordinate {
	return Coordinate{Index: i, Name: name}
}

func (c Coordinate) Eval(x []float64) float64 {
	if c.Index >= len(x) {
		panic(fmt.Errorf("coordinate %s has index %d, point has dimension %d", c.Name, c.Index, len(x)))
	}
	return x[c.Index]
}

func (c Coordinate) String() string { return c.Name }

type binary struct {
	op   byte
	a, b Expr
}

func Add(a, b Expr) Expr { return binary{'+', a, b} }
func Sub(a, b Expr) Expr { return binary{'-', a, b} }
func Mul(a, b Expr) Expr { return binary{'*', a, b} }
func Div(a, b Expr) Expr { return binary{'/', a, b} }
func Pow(a, b Expr) Expr { return binary{'^', a, b} }

func (e binary) Eval(x []float64) (v float64) {
	a, b := e.a.Eval(x), e.b.Eval(x)
	switch e.op {
	case '+':
		v = a + b
	case '-':
		v = a - b
	case '*':
		v = a * b
	case '/':
		v = a / b
	case '^':
		v = math.Pow(a, b)
	}
	return
}

func (e binary) String() string {
	return fmt.Sprintf("(%s %c %s)", e.a, e.op, e.b)
}

type unary struct {
	name string
	fn   func(float64) float64
	a    Expr
}

var functions = map[string]func(float64) float64{
	"cos":  math.Cos,
	"sin":  math.Sin,
	"tan":  math.Tan,
	"acos": math.Acos,
	"asin": math.Asin,
	"atan": math.Atan,
	"exp":  math.Exp,
	"log":  math.Log,
	"sqrt": math.Sqrt,
	"abs":  math.Abs,
}

// Apply wraps a in the named unary function
func Apply(name string, a Expr) (e Expr, err error) {
	fn, ok := functions[name]
	if !ok {
		err = fmt.Errorf("unknown function %q", name)
		return
	}
	e = unary{name, fn, a}
	return
}

func mustApply(name string, a Expr) Expr {
	e, err := Apply(name, a)
	if err != nil {
		panic(err)
	}
	return e
}

func Neg(a Expr) Expr  { return unary{"-", func(v float64) float64 { return -v }, a} }
func Cos(a Expr) Expr  { return mustApply("cos", a) }
func Sin(a Expr) Expr  { return mustApply("sin", a) }
func Acos(a Expr) Expr { return mustApply("acos", a) }
func Exp(a Expr) Expr  { return mustApply("exp", a) }
func Sqrt(a Expr) Expr { return mustApply("sqrt", a) }
func Abs(a Expr) Expr  { return mustApply("abs", a) }

func (e unary) Eval(x []float64) float64 { return e.fn(e.a.Eval(x)) }
func (e unary) String() string {
	if e.name == "-" {
		return "-" + e.a.String()
	}
	return e.name + "(" + e.a.String() + ")"
}

type compare struct {
	op   utils.EvalOp
	a, b Expr
}

// Comparisons evaluate to 1 when true and 0 otherwise
func Lt(a, b Expr) Expr { return compare{utils.Less, a, b} }
func Le(a, b Expr) Expr { return compare{utils.LessOrEqual, a, b} }
func Gt(a, b Expr) Expr { return compare{utils.Greater, a, b} }
func Ge(a, b Expr) Expr { return compare{utils.GreaterOrEqual, a, b} }
func Eq(a, b Expr) Expr { return compare{utils.Equal, a, b} }

func (e compare) Eval(x []float64) float64 {
	return boolean(e.op.Compare(e.a.Eval(x), e.b.Eval(x)))
}

func (e compare) String() string {
	return fmt.Sprintf("(%s %s %s)", e.a, e.op, e.b)
}

type logical struct {
	and  bool
	a, b Expr
}

func And(a, b Expr) Expr { return logical{true, a, b} }
func Or(a, b Expr) Expr  { return logical{false, a, b} }

func (e logical) Eval(x []float64) float64 {
	a, b := e.a.Eval(x) != 0, e.b.Eval(x) != 0
	if e.and {
		return boolean(a && b)
	}
	return boolean(a || b)
}

func (e logical) String() string {
	op := "||"
	if e.and {
		op = "&&"
	}
	return fmt.Sprintf("(%s %s %s)", e.a, op, e.b)
}

type not struct{ a Expr }

func Not(a Expr) Expr                  { return not{a} }
func (e not) Eval(x []float64) float64 { return boolean(e.a.Eval(x) == 0) }
func (e not) String() string           { return "!" + e.a.String() }

type where struct {
	cond, a, b Expr
}

// Where returns a where cond is non-zero, otherwise b
func Where(cond, a, b Expr) Expr { return where{cond, a, b} }

func (e where) Eval(x []float64) float64 {
	if e.cond.Eval(x) != 0 {
		return e.a.Eval(x)
	}
	return e.b.Eval(x)
}

func (e where) String() string {
	return fmt.Sprintf("where(%s, %s, %s)", e.cond, e.a, e.b)
}

func boolean(l bool) float64 {
	if l {
		return 1
	}
	return 0
}
