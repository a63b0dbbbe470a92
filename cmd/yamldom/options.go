// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"go.yaml.in/yamldom"
)

// optionSpec defines metadata for an option
type optionSpec struct {
	typ     string // "bool", "int", "string"
	handler func(value string) (yamldom.Option, error)
}

func intOption(name string, with func(int) yamldom.Option) optionSpec {
	return optionSpec{typ: "int", handler: func(value string) (yamldom.Option, error) {
		n, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("%s requires integer value", name)
		}
		return with(n), nil
	}}
}

// optionRegistry maps option names (including short aliases) to their specs.
var optionRegistry = map[string]optionSpec{
	"indent":    intOption("indent", yamldom.WithIndent),
	"max-depth": intOption("max-depth", yamldom.WithMaxDepth),
	"depth":     intOption("depth", yamldom.WithMaxDepth),
	"anchor-prefix": {typ: "string", handler: func(value string) (yamldom.Option, error) {
		return yamldom.WithAnchorPrefix(value), nil
	}},
	"prefix": {typ: "string", handler: func(value string) (yamldom.Option, error) {
		return yamldom.WithAnchorPrefix(value), nil
	}},
	"single-document": {typ: "bool", handler: func(value string) (yamldom.Option, error) {
		return yamldom.WithSingleDocument(value == "true"), nil
	}},
	"single": {typ: "bool", handler: func(value string) (yamldom.Option, error) {
		return yamldom.WithSingleDocument(value == "true"), nil
	}},
}

// parseOneOption parses a single option (name=value, name or no-name).
func parseOneOption(s string) (yamldom.Option, error) {
	if name, ok := strings.CutPrefix(s, "no-"); ok {
		spec, ok := optionRegistry[name]
		if !ok {
			return nil, fmt.Errorf("unknown option: %s", name)
		}
		if spec.typ != "bool" {
			return nil, fmt.Errorf("option %s is not boolean, cannot use no- prefix", name)
		}
		return spec.handler("false")
	}

	if name, value, found := strings.Cut(s, "="); found {
		spec, ok := optionRegistry[name]
		if !ok {
			return nil, fmt.Errorf("unknown option: %s", name)
		}
		if spec.typ == "bool" && value != "true" && value != "false" {
			return nil, fmt.Errorf("option %s requires true or false value", name)
		}
		return spec.handler(value)
	}

	spec, ok := optionRegistry[s]
	if !ok {
		return nil, fmt.Errorf("unknown option: %s", s)
	}
	if spec.typ != "bool" {
		return nil, fmt.Errorf("option %s requires a value (use %s=value)", s, s)
	}
	return spec.handler("true")
}

// parseOptionFlags parses comma-separated options string into individual options
func parseOptionFlags(s string) ([]yamldom.Option, error) {
	var opts []yamldom.Option
	for _, part := range strings.Split(s, ",") {
		trimmed := strings.TrimSpace(part)
		if trimmed == "" {
			continue
		}
		opt, err := parseOneOption(trimmed)
		if err != nil {
			return nil, err
		}
		opts = append(opts, opt)
	}
	return opts, nil
}

// buildOptions creates the option list from the config file and -o flags.
// Options given with -o override the config file. Every option is checked
// here so that a bad value is reported before any input is read.
func buildOptions(configFile string, optionFlags []string) ([]yamldom.Option, error) {
	var opts []yamldom.Option
	if configFile != "" {
		configData, err := os.ReadFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		configOpts, err := yamldom.OptsYAML(string(configData))
		if err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
		opts = append(opts, configOpts)
	}
	for _, optStr := range optionFlags {
		parsed, err := parseOptionFlags(optStr)
		if err != nil {
			return nil, err
		}
		opts = append(opts, parsed...)
	}
	if _, err := yamldom.NewEventLoader(yamldom.NewEventBuffer(), opts...); err != nil {
		return nil, err
	}
	return opts, nil
}

// printAvailableOptions prints the list of available options for -o flag
func printAvailableOptions(w io.Writer) {
	fmt.Fprint(w, `Available options for -o:

Loading options:
  max-depth=NUM         Nesting limit, 0 for the default (short: depth)
  single-document       Only process the first document (short: single)

Writing options:
  indent=NUM            Indentation spaces (2-9)
  anchor-prefix=NAME    Prefix of synthesized anchors (short: prefix)

Boolean options: use 'name' for true, 'no-name' for false
Multiple options: comma-separated or repeat -o flag

Examples:
  yamldom -mode roundtrip -o indent=4
  yamldom -mode events -o prefix=ref,single
`)
}
