// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Program jpretty validates JSON text and prints it indented and colorized.
package main

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/amterp/color"
	"github.com/creachadair/jpretty"
	"github.com/creachadair/jpretty/internal/log"
	"github.com/jessevdk/go-flags"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/tailscale/hujson"
)

type options struct {
	TabStop int    `short:"t" long:"tab-stop" env:"JPRETTY_TAB_STOP" default:"4" description:"spaces per indentation level"`
	Color   string `short:"c" long:"color" env:"JPRETTY_COLOR" default:"auto" choice:"auto" choice:"always" choice:"never" description:"when to color the output"`
	Strict  bool   `short:"s" long:"strict" description:"reject characters outside the JSON grammar instead of skipping them"`
	JWCC    bool   `short:"j" long:"jwcc" description:"accept comments and trailing commas in the input"`
	Verbose bool   `short:"v" long:"verbose" description:"enable verbose logging"`

	Positional struct {
		Input flags.Filename `positional-arg-name:"file" description:"input file path; - or omitted reads stdin"`
	} `positional-args:"yes"`
}

// env carries the process streams, so that run can be exercised in tests.
type env struct {
	stdin          io.Reader
	stdout, stderr io.Writer
	tty            bool // stdout is a terminal
}

func main() {
	fd := os.Stdout.Fd()
	os.Exit(run(os.Args[1:], env{
		stdin:  os.Stdin,
		stdout: colorable.NewColorable(os.Stdout),
		stderr: colorable.NewColorable(os.Stderr),
		tty:    isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd),
	}))
}

// run executes the command with the given arguments and returns the exit
// status for the process.
func run(args []string, e env) int {
	opts := &options{}

	fp := flags.NewParser(opts, flags.HelpFlag|flags.PassDoubleDash)
	fp.Name = "jpretty"
	fp.LongDescription = `
jpretty reads a JSON document from a file or standard input, checks that it is
well formed, and prints it with one token per line, indented by nesting depth.

The first error in the input stops the program with a diagnostic and a
non-zero exit status.`

	if _, err := fp.ParseArgs(args); err != nil {
		var fe *flags.Error
		if errors.As(err, &fe) && fe.Type == flags.ErrHelp {
			fmt.Fprintln(e.stdout, err)
			return 0
		}
		return fatal(e.stderr, err)
	}
	if opts.Verbose {
		log.Debug = true
	}

	path := string(opts.Positional.Input)
	in, err := openInput(path, e.stdin)
	if err != nil {
		return fatal(e.stderr, err)
	}
	defer in.Close()

	var r io.Reader = in
	if opts.JWCC {
		data, err := io.ReadAll(in)
		if err != nil {
			return fatal(e.stderr, err)
		}
		std, err := hujson.Standardize(data)
		if err != nil {
			return fatal(e.stderr, fmt.Errorf("invalid JWCC input: %w", err))
		}
		log.Debugf("standardized %d bytes of JWCC input", len(data))
		r = bytes.NewReader(std)
	}

	popts := &jpretty.Options{
		TabStop: opts.TabStop,
		Color:   useColor(opts.Color, e.tty),
		Strict:  opts.Strict,
	}
	log.Debugf("printing %q: tab stop %d, color %v, strict %v", path, popts.TabStop, popts.Color, popts.Strict)

	out := bufio.NewWriter(e.stdout)
	err = jpretty.Format(out, r, popts)

	// Flush what was rendered before any error, as the diagnostic refers to it.
	if ferr := out.Flush(); err == nil {
		err = ferr
	}
	if err != nil {
		return fatal(e.stderr, err)
	}
	return 0
}

// openInput opens the named file, or returns stdin if path is empty or "-".
func openInput(path string, stdin io.Reader) (io.ReadCloser, error) {
	if path == "" || path == "-" {
		log.Debugf("reading standard input")
		return io.NopCloser(stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening file %q: %w", path, err)
	}
	return f, nil
}

// useColor reports whether output should be colored for the given --color
// mode, where tty reports whether the output is a terminal.
func useColor(mode string, tty bool) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	return tty && !color.NoColor
}

var errColor = color.New(color.FgRed)

func fatal(w io.Writer, err error) int {
	errColor.Fprintln(w, err)
	return 1
}
