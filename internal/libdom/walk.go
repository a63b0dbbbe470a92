// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Graph traversal and copying.

package libdom

import "iter"

// AllNodes returns a depth-first, pre-order sequence of n and every node
// reachable from it. Mapping entries contribute their key before their
// value. A node reached again through an alias, including a cycle back to
// an ancestor, is not yielded a second time. Each iteration starts afresh.
func AllNodes(n Node) iter.Seq[Node] {
	return func(yield func(Node) bool) {
		walk(n, make(map[Node]struct{}), yield)
	}
}

func walk(n Node, seen map[Node]struct{}, yield func(Node) bool) bool {
	if n == nil {
		return true
	}
	if _, ok := seen[n]; ok {
		return true
	}
	seen[n] = struct{}{}
	if !yield(n) {
		return false
	}
	switch n := n.(type) {
	case *Sequence:
		for _, c := range n.children {
			if !walk(c, seen, yield) {
				return false
			}
		}
	case *Mapping:
		for _, e := range n.entries {
			if !walk(e.Key, seen, yield) || !walk(e.Value, seen, yield) {
				return false
			}
		}
	}
	return true
}

// Clone returns a deep copy of n. Nodes shared within n stay shared in the
// copy, and cycles are reproduced rather than unrolled.
func Clone(n Node) Node {
	return cloneNode(n, make(map[Node]Node))
}

func cloneNode(n Node, done map[Node]Node) Node {
	if n == nil {
		return nil
	}
	if c, ok := done[n]; ok {
		return c
	}
	switch n := n.(type) {
	case *Scalar:
		c := *n
		done[n] = &c
		return &c
	case *Sequence:
		c := &Sequence{base: n.base, style: n.style}
		done[n] = c
		c.children = make([]Node, len(n.children))
		for i, child := range n.children {
			c.children[i] = cloneNode(child, done)
		}
		return c
	case *Mapping:
		c := &Mapping{base: n.base, style: n.style}
		done[n] = c
		c.entries = make([]Entry, len(n.entries))
		for i, e := range n.entries {
			c.entries[i] = Entry{
				Key:   cloneNode(e.Key, done),
				Value: cloneNode(e.Value, done),
			}
		}
		return c
	}
	panic("internal error: unknown node type (please report)")
}
