package main

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"svw.info/aoc/internal/domain"
)

// ExitError carries a specific process exit code.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string { return e.Message }

// options holds everything parsed from the command line.
type options struct {
	ConfigPath string
	Addr       string
	LogLevel   string
	LogFormat  string
	Render     domain.RenderFormat
	Out        string
	Verify     bool
	Sample     [2]int // width, height; zero means unset
	Seed       int64
	Days       []int
}

func parseArgs(args []string, output io.Writer) (*options, bool, error) {
	fs := flag.NewFlagSet("aoc", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprint(output, `
aoc - Advent of Code runner.

Usage:
  aoc [options] [DAY ...]

Runs the given days (default: the latest implemented day) and prints both
answers for each.

Options:
`)
		fs.PrintDefaults()
	}

	opts := &options{}
	fs.StringVar(&opts.ConfigPath, "config", "aoc.hcl", "Path to the HCL config file.")
	fs.StringVar(&opts.Addr, "addr", "", "Serve the HTTP API on this address instead of running days.")
	fs.StringVar(&opts.LogLevel, "log-level", "info", "debug|info|warn|error")
	fs.StringVar(&opts.LogFormat, "log-format", "text", "text|json")
	renderStr := fs.String("render", "", "Write the annotated forest after solving: text|html")
	fs.StringVar(&opts.Out, "out", "", "Render destination (default stdout).")
	fs.BoolVar(&opts.Verify, "verify", false, "Cross-check visibility against a brute-force scan.")
	sampleStr := fs.String("sample", "", "Print a random WIDTHxHEIGHT forest and exit.")
	fs.Int64Var(&opts.Seed, "seed", 0, "Seed for -sample (default: time based).")

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	switch strings.ToLower(opts.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	if f := strings.ToLower(opts.LogFormat); f != "text" && f != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	switch strings.ToLower(strings.TrimSpace(*renderStr)) {
	case "":
		opts.Render = domain.RenderNone
	case "text":
		opts.Render = domain.RenderText
	case "html":
		opts.Render = domain.RenderHTML
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid render: must be 'text' or 'html'"}
	}

	if *sampleStr != "" {
		w, h, ok := strings.Cut(strings.ToLower(*sampleStr), "x")
		wi, errW := strconv.Atoi(w)
		hi, errH := strconv.Atoi(h)
		if !ok || errW != nil || errH != nil || wi <= 0 || hi <= 0 {
			return nil, false, &ExitError{Code: 2, Message: "invalid sample: expected WIDTHxHEIGHT"}
		}
		opts.Sample = [2]int{wi, hi}
	}

	for _, a := range fs.Args() {
		day, err := strconv.Atoi(a)
		if err != nil || day <= 0 {
			return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("invalid day %q", a)}
		}
		opts.Days = append(opts.Days, day)
	}
	return opts, false, nil
}
