package interpreter

type binaryOp func(l, r float64) float64

var operators = map[string]binaryOp{
	"plus":    func(l, r float64) float64 { return l + r },
	"minus":   func(l, r float64) float64 { return l - r },
	"times":   func(l, r float64) float64 { return l * r },
	"divided": func(l, r float64) float64 { return l / r },
}

// operand is the outcome of resolving a token: either a value, or the
// token that could not be resolved.
type operand struct {
	value    float64
	resolved bool
	token    string
}

// resolve tries the token as a literal first, then as a variable name.
func (in *Interpreter) resolve(token string) operand {
	if v, ok := ParseNumber(token); ok {
		return operand{value: v, resolved: true, token: token}
	}
	if v, ok := in.env.Get(token); ok {
		return operand{value: v, resolved: true, token: token}
	}
	return operand{token: token}
}

// valueOf reports an unresolved operand and stands in 0 for it.
func (in *Interpreter) valueOf(op operand) float64 {
	if !op.resolved {
		in.out.undefined(op.token)
		return 0
	}
	return op.value
}

// print handles `<operand> <operator> <operand>`, the tokens after the
// print keyword. Both operands are resolved before the operator is looked
// at, so undefined names are reported even when the operator is unknown.
func (in *Interpreter) print(tokens []string) {
	if len(tokens) != 3 {
		in.out.diagnostic(msgInvalidPrint)
		return
	}
	left := in.valueOf(in.resolve(tokens[0]))
	right := in.valueOf(in.resolve(tokens[2]))

	apply, ok := operators[tokens[1]]
	if !ok {
		in.out.diagnostic(msgUnknownOperator)
		return
	}
	in.out.result(apply(left, right))
}
