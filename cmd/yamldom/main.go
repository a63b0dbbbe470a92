// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// This binary loads YAML from stdin or a file into the document object
// model and shows what the model holds: the event stream it emits back,
// the nodes reachable from each root, or the text it writes back.

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"go.yaml.in/yamldom"
)

// version is the current version of the yamldom CLI tool.
const version = "0.1.0"

// stringSlice is a custom flag type for collecting multiple -o flags
type stringSlice []string

// String returns the string representation of the slice for [flag.Value] interface.
func (s *stringSlice) String() string {
	if s == nil {
		return ""
	}
	return fmt.Sprint(*s)
}

// Set appends a value to the slice for [flag.Value] interface.
func (s *stringSlice) Set(value string) error {
	*s = append(*s, value)
	return nil
}

type config struct {
	mode       string
	json       bool
	diff       bool
	verbose    bool
	color      string
	configFile string
	options    stringSlice
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the tool and returns the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var cfg config
	fs := flag.NewFlagSet("yamldom", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.mode, "mode", "events", "Output mode: events, nodes or roundtrip")
	fs.BoolVar(&cfg.json, "json", false, "Print events as JSON lines (events mode)")
	fs.BoolVar(&cfg.diff, "diff", false, "Print a unified diff against the input (roundtrip mode)")
	fs.BoolVar(&cfg.verbose, "v", false, "Log anchor and alias bookkeeping to stderr")
	fs.StringVar(&cfg.color, "color", "auto", "Colour output: auto, always or never")
	fs.StringVar(&cfg.configFile, "C", "", "Load options from YAML config file")
	fs.Var(&cfg.options, "o", "Set option (name=value); repeatable, use -o help to list")
	showVersion := fs.Bool("version", false, "Print the version and exit")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: yamldom [flags] [file]\n\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if *showVersion {
		fmt.Fprintf(stdout, "yamldom version %s\n", version)
		return 0
	}
	for _, o := range cfg.options {
		if o == "help" || o == "?" {
			printAvailableOptions(stdout)
			return 0
		}
	}

	logger := newLogger(stderr, cfg.verbose)

	switch cfg.mode {
	case "events", "nodes", "roundtrip":
	default:
		level.Error(logger).Log("msg", "unknown mode", "mode", cfg.mode)
		return 2
	}
	colors, err := newPalette(cfg.color, stdout)
	if err != nil {
		level.Error(logger).Log("msg", "invalid flag", "err", err)
		return 2
	}
	opts, err := buildOptions(cfg.configFile, cfg.options)
	if err != nil {
		level.Error(logger).Log("msg", "invalid options", "err", err)
		return 2
	}
	opts = append(opts, yamldom.WithLogger(logger))

	name, input, err := readInput(fs.Args(), stdin)
	if err != nil {
		level.Error(logger).Log("msg", "cannot read input", "err", err)
		return 1
	}
	docs, err := yamldom.ParseAll(input, opts...)
	if err != nil {
		level.Error(logger).Log("msg", "cannot load input", "file", name, "err", err)
		return 1
	}
	level.Debug(logger).Log("msg", "input loaded", "file", name, "documents", len(docs))

	switch cfg.mode {
	case "events":
		if cfg.json {
			err = writeJSONEvents(stdout, docs, opts)
		} else {
			err = writeEvents(stdout, docs, opts, colors)
		}
	case "nodes":
		err = writeNodes(stdout, docs, colors)
	case "roundtrip":
		err = writeRoundTrip(stdout, name, input, docs, cfg.diff, opts, colors)
	}
	if err != nil {
		level.Error(logger).Log("msg", "cannot write output", "mode", cfg.mode, "err", err)
		return 1
	}
	return 0
}

// newLogger returns a logfmt logger on w, showing debug output only when
// verbose is set.
func newLogger(w io.Writer, verbose bool) log.Logger {
	logger := log.NewLogfmtLogger(log.NewSyncWriter(w))
	if verbose {
		return level.NewFilter(logger, level.AllowDebug())
	}
	return level.NewFilter(logger, level.AllowInfo())
}

// readInput reads the file named by args, or stdin when there is none or
// the name is "-".
func readInput(args []string, stdin io.Reader) (string, []byte, error) {
	switch {
	case len(args) == 0 || (len(args) == 1 && args[0] == "-"):
		data, err := io.ReadAll(stdin)
		return "-", data, err
	case len(args) == 1:
		data, err := os.ReadFile(args[0])
		return args[0], data, err
	}
	return "", nil, errors.New("only one file argument supported")
}
