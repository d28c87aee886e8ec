// Package session drives an interpreter from a line-oriented input stream.
package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"wordcalc/internal/interpreter"
)

type Config struct {
	// Sentinel ends the session when a line equals it exactly.
	Sentinel string
	Prompt   string
	Banner   string
	// Interactive input gets a prompt before each line.
	Interactive bool
	Quiet       bool
}

type Stats struct {
	Lines int // lines handed to the interpreter, sentinel excluded
}

// Run writes the banner and then interprets lines from in until the
// sentinel or end of input. Prompts and the banner go to out; reports go
// wherever the interpreter writes.
func Run(in io.Reader, out io.Writer, interp *interpreter.Interpreter, cfg Config) (Stats, error) {
	var stats Stats
	if !cfg.Quiet {
		if _, err := fmt.Fprintln(out, cfg.Banner); err != nil {
			return stats, fmt.Errorf("write banner: %w", err)
		}
	}

	r := bufio.NewReader(in)
	for {
		if cfg.Interactive && cfg.Prompt != "" {
			if _, err := fmt.Fprint(out, cfg.Prompt); err != nil {
				return stats, fmt.Errorf("write prompt: %w", err)
			}
		}
		line, err := r.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return stats, fmt.Errorf("read input: %w", err)
		}
		if line == "" && err != nil {
			break
		}
		line = trimEOL(line)
		if line == cfg.Sentinel {
			return stats, nil
		}
		interp.Interpret(line)
		stats.Lines++
		if werr := interp.Err(); werr != nil {
			return stats, fmt.Errorf("write report: %w", werr)
		}
		// the last line had no terminator
		if err != nil {
			return stats, nil
		}
	}
	// leave the terminal on a fresh line after ^D
	if cfg.Interactive && cfg.Prompt != "" {
		if _, err := fmt.Fprintln(out); err != nil {
			return stats, fmt.Errorf("write prompt: %w", err)
		}
	}
	return stats, nil
}

func trimEOL(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}

// RunLines interprets a fixed list of statements, stopping early at the
// sentinel exactly as Run does. It reports whether the sentinel was seen.
func RunLines(lines []string, interp *interpreter.Interpreter, sentinel string) (Stats, bool, error) {
	var stats Stats
	for _, line := range lines {
		if line == sentinel {
			return stats, true, nil
		}
		interp.Interpret(line)
		stats.Lines++
		if err := interp.Err(); err != nil {
			return stats, false, fmt.Errorf("write report: %w", err)
		}
	}
	return stats, false, nil
}
