package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"git.sr.ht/~sircmpwn/getopt"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"wordcalc/internal/config"
	"wordcalc/internal/interpreter"
	"wordcalc/internal/session"
)

type options struct {
	configPath string
	scriptPath string
	sentinel   *string
	prompt     *string
	noColor    bool
	quiet      bool
	verbose    bool
	statements []string
}

const usage = `usage: %s [-c config] [-f script] [-e word] [-p prompt] [-nqv] [statement ...]

  -c file    load settings from a YAML file
  -f file    read statements from file instead of stdin
  -e word    line that ends the session (default "exit")
  -p text    prompt shown for interactive input
  -n         never color output
  -q         do not print the banner
  -v         trace the session on stderr
`

// readFlags parses argv. It returns an exit code, or -1 to continue.
func readFlags(args []string, opts *options) int {
	parsed, optind, err := getopt.Getopts(args, "c:f:e:p:nqvh")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintf(os.Stderr, usage, args[0])
		return 2
	}
	for _, opt := range parsed {
		switch opt.Option {
		case 'c':
			opts.configPath = opt.Value
		case 'f':
			opts.scriptPath = opt.Value
		case 'e':
			v := opt.Value
			opts.sentinel = &v
		case 'p':
			v := opt.Value
			opts.prompt = &v
		case 'n':
			opts.noColor = true
		case 'q':
			opts.quiet = true
		case 'v':
			opts.verbose = true
		case 'h':
			fmt.Fprintf(os.Stdout, usage, args[0])
			return 0
		}
	}
	opts.statements = args[optind:]
	return -1
}

func loadConfig(opts *options) (config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		var err error
		if cfg, err = config.Load(opts.configPath); err != nil {
			return cfg, err
		}
		if opts.verbose {
			log.Printf("loaded config %s", opts.configPath)
		}
	}
	if opts.sentinel != nil {
		customBanner := cfg.Banner != config.Banner(cfg.Exit)
		cfg.Exit = *opts.sentinel
		if !customBanner {
			cfg.Banner = config.Banner(cfg.Exit)
		}
	}
	if opts.prompt != nil {
		cfg.Prompt = *opts.prompt
	}
	if opts.noColor {
		cfg.Color = config.ColorNever
	}
	return cfg, cfg.Validate()
}

func useColor(mode config.ColorMode) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	return !color.NoColor
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func sessionConfig(cfg config.Config, opts *options, interactive bool) session.Config {
	return session.Config{
		Sentinel:    cfg.Exit,
		Prompt:      cfg.Prompt,
		Banner:      cfg.Banner,
		Interactive: interactive,
		// statements from the command line have already printed output
		Quiet: opts.quiet || len(opts.statements) > 0,
	}
}

// run executes everything after flag parsing. stdin is read only when
// neither a script nor command-line statements are given.
func run(opts *options, stdin *os.File, stdout io.Writer) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	interp := interpreter.New(stdout, interpreter.WithColor(useColor(cfg.Color)))

	// preload reports are noise unless tracing
	if opts.verbose {
		interp.SetOutput(os.Stderr)
	} else {
		interp.SetOutput(io.Discard)
	}
	stats, _, err := session.RunLines(cfg.Preload, interp, cfg.Exit)
	if err != nil {
		return fmt.Errorf("preload: %w", err)
	}
	if opts.verbose {
		log.Printf("preloaded %d statements, %d variables defined", stats.Lines, interp.Env().Len())
	}
	interp.SetOutput(stdout)

	if len(opts.statements) > 0 {
		stats, stopped, err := session.RunLines(opts.statements, interp, cfg.Exit)
		if err != nil {
			return err
		}
		if opts.verbose {
			log.Printf("ran %d statements from the command line", stats.Lines)
		}
		if stopped || opts.scriptPath == "" {
			return nil
		}
	}

	in := stdin
	interactive := isTerminal(stdin)
	if opts.scriptPath != "" {
		f, err := os.Open(opts.scriptPath)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
		interactive = false
	}

	stats, err = session.Run(in, stdout, interp, sessionConfig(cfg, opts, interactive))
	if err != nil {
		return err
	}
	if opts.verbose {
		log.Printf("processed %d lines", stats.Lines)
	}
	return nil
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("wordcalc: ")

	var opts options
	if code := readFlags(os.Args, &opts); code >= 0 {
		os.Exit(code)
	}
	if err := run(&opts, os.Stdin, os.Stdout); err != nil {
		log.Fatal(err)
	}
}
