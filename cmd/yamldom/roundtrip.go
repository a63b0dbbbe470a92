// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"io"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"go.yaml.in/yamldom"
)

// writeRoundTrip writes docs back as YAML text. With diff set it prints a
// unified diff of the input against that text instead, which is empty
// when the input survives the round trip unchanged.
func writeRoundTrip(w io.Writer, name string, input []byte, docs []*yamldom.Document, diff bool, opts []yamldom.Option, colors *palette) error {
	out, err := yamldom.FormatAll(docs, opts...)
	if err != nil {
		return err
	}
	if !diff {
		_, err := w.Write(out)
		return err
	}

	text, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(input)),
		B:        difflib.SplitLines(string(out)),
		FromFile: name,
		ToFile:   "roundtrip",
		Context:  2,
	})
	if err != nil {
		return err
	}
	if text == "" {
		return nil
	}
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	// The first two lines are the file header.
	for i, s := range lines {
		switch {
		case i < 2:
		case strings.HasPrefix(s, "+"):
			lines[i] = colors.added("%s", s)
		case strings.HasPrefix(s, "-"):
			lines[i] = colors.removed("%s", s)
		}
	}
	_, err = io.WriteString(w, strings.Join(lines, "\n")+"\n")
	return err
}
