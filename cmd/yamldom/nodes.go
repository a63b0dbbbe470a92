// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.yaml.in/yamldom"
)

// writeNodes lists every node reachable from each document root once, in
// traversal order. Each line shows the kind, anchor, resolved tag and
// structural hash of the node; scalars also show their value.
func writeNodes(w io.Writer, docs []*yamldom.Document, colors *palette) error {
	for i, doc := range docs {
		if _, err := fmt.Fprintln(w, colors.document("# document %d", i+1)); err != nil {
			return err
		}
		if doc.Root == nil {
			if _, err := fmt.Fprintln(w, colors.document("(empty)")); err != nil {
				return err
			}
			continue
		}
		for n := range doc.AllNodes() {
			if _, err := fmt.Fprintln(w, formatNode(n, colors)); err != nil {
				return err
			}
		}
	}
	return nil
}

func formatNode(n yamldom.Node, colors *palette) string {
	var b strings.Builder
	switch n := n.(type) {
	case *yamldom.Scalar:
		b.WriteString(colors.scalar("%-8s", n.Kind()))
	case *yamldom.Sequence:
		b.WriteString(colors.collection("%-8s", n.Kind()))
		fmt.Fprintf(&b, " len=%d", n.Len())
	case *yamldom.Mapping:
		b.WriteString(colors.collection("%-8s", n.Kind()))
		fmt.Fprintf(&b, " len=%d", n.Len())
	}
	if a := n.Anchor(); a != "" {
		b.WriteString(" " + colors.property("&%s", a))
	}
	b.WriteString(" " + colors.property("<%s>", yamldom.ResolvedTag(n)))
	fmt.Fprintf(&b, " #%016x", n.Hash())
	if s, ok := n.(*yamldom.Scalar); ok {
		b.WriteString(" " + strconv.Quote(s.Value()))
	}
	return b.String()
}
