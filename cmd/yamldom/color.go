// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// palette holds the formatting functions of each output element.
type palette struct {
	collection func(string, ...any) string
	scalar     func(string, ...any) string
	alias      func(string, ...any) string
	document   func(string, ...any) string
	property   func(string, ...any) string
	added      func(string, ...any) string
	removed    func(string, ...any) string
}

// newPalette resolves the -color flag. In "auto" mode colours are used
// when w is a terminal.
func newPalette(mode string, w io.Writer) (*palette, error) {
	var enabled bool
	switch mode {
	case "always":
		enabled = true
	case "never":
	case "auto":
		if f, ok := w.(*os.File); ok {
			enabled = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
		}
	default:
		return nil, fmt.Errorf("color must be auto, always or never, not %q", mode)
	}

	sprintf := func(attrs ...color.Attribute) func(string, ...any) string {
		if !enabled {
			return fmt.Sprintf
		}
		c := color.New(attrs...)
		c.EnableColor()
		return c.SprintfFunc()
	}
	return &palette{
		collection: sprintf(color.FgBlue, color.Bold),
		scalar:     sprintf(color.FgGreen),
		alias:      sprintf(color.FgMagenta),
		document:   sprintf(color.Faint),
		property:   sprintf(color.FgYellow),
		added:      sprintf(color.FgGreen, color.Bold),
		removed:    sprintf(color.FgRed, color.Bold),
	}, nil
}
