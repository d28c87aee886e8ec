package interpreter

import "io"

// Kind is the statement form selected by a line's first token.
type Kind int

const (
	KindUnknown Kind = iota
	KindAssign
	KindPrint
)

const (
	keywordVariable = "variable"
	keywordPrint    = "print"
)

// Interpreter evaluates one line at a time against its own Environment.
// It is not safe for concurrent use.
type Interpreter struct {
	env *Environment
	out *reporter
}

type Option func(*Interpreter)

// WithColor turns on ANSI colors for reports written by the interpreter.
func WithColor(enabled bool) Option {
	return func(in *Interpreter) {
		in.out.colored = enabled
	}
}

func New(out io.Writer, opts ...Option) *Interpreter {
	in := &Interpreter{
		env: NewEnvironment(),
		out: newReporter(out, false),
	}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

func (in *Interpreter) Env() *Environment {
	return in.env
}

// SetOutput redirects reports to w and clears any earlier write error.
// The environment is kept.
func (in *Interpreter) SetOutput(w io.Writer) {
	in.out.w = w
	in.out.err = nil
}

// Err returns the first error hit while writing reports.
func (in *Interpreter) Err() error {
	return in.out.err
}

// Classify picks the statement form from the first token.
func Classify(tokens []string) Kind {
	if len(tokens) == 0 {
		return KindUnknown
	}
	switch tokens[0] {
	case keywordVariable:
		return KindAssign
	case keywordPrint:
		return KindPrint
	}
	return KindUnknown
}

// Interpret runs a single line. Every outcome, including malformed input,
// is reported on the output writer; nothing is returned.
func (in *Interpreter) Interpret(line string) {
	tokens := Tokenize(line)
	switch Classify(tokens) {
	case KindAssign:
		in.assign(tokens)
	case KindPrint:
		in.print(tokens[1:])
	default:
		in.out.diagnostic(msgUnknownCommand)
	}
}
