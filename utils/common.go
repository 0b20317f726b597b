package utils

type EvalOp uint8

const (
	Equal EvalOp = iota
	Less
	Greater
	LessOrEqual
	GreaterOrEqual
)

// Compare evaluates "a op b"
func (op EvalOp) Compare(a, b float64) (l bool) {
	switch op {
	case Equal:
		l = a == b
	case Less:
		l = a < b
	case Greater:
		l = a > b
	case LessOrEqual:
		l = a <= b
	case GreaterOrEqual:
		l = a >= b
	}
	return
}

func (op EvalOp) String() string {
	switch op {
	case Equal:
		return "=="
	case Less:
		return "<"
	case Greater:
		return ">"
	case LessOrEqual:
		return "<="
	case GreaterOrEqual:
		return ">="
	}
	return "?"
}
