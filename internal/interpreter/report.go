package interpreter

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

const (
	msgUnknownCommand    = "Unknown command"
	msgInvalidAssignment = "Invalid assignment syntax"
	msgInvalidValue      = "Invalid value for assignment"
	msgInvalidPrint      = "Invalid print syntax"
	msgUnknownOperator   = "Unknown operator"
)

type tone int

const (
	toneDiagnostic tone = iota
	toneAssigned
	toneResult
)

// reporter writes one message per line. The first write error sticks and
// silences further output.
type reporter struct {
	w       io.Writer
	colored bool
	palette map[tone]*color.Color
	err     error
}

func newReporter(w io.Writer, colored bool) *reporter {
	r := &reporter{
		w:       w,
		colored: colored,
		palette: map[tone]*color.Color{
			toneDiagnostic: color.New(color.FgRed),
			toneAssigned:   color.New(color.FgCyan),
			toneResult:     color.New(color.FgGreen, color.Bold),
		},
	}
	// the global color.NoColor follows stdout, but w may be anything
	for _, c := range r.palette {
		c.EnableColor()
	}
	return r
}

func (r *reporter) line(t tone, msg string) {
	if r.err != nil {
		return
	}
	if r.colored {
		_, r.err = r.palette[t].Fprintln(r.w, msg)
		return
	}
	_, r.err = fmt.Fprintln(r.w, msg)
}

func (r *reporter) diagnostic(msg string) { r.line(toneDiagnostic, msg) }

func (r *reporter) undefined(token string) {
	r.line(toneDiagnostic, "Undefined variable: "+token)
}

func (r *reporter) assigned(name string, v float64) {
	r.line(toneAssigned, fmt.Sprintf("Assigned %s to %s", FormatNumber(v), name))
}

func (r *reporter) result(v float64) {
	r.line(toneResult, "Result: "+FormatNumber(v))
}
