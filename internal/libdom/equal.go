// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Structural equality over node graphs.
// Equality is co-inductive: a pair of nodes already under comparison is
// assumed equal when met again, so comparison terminates on cycles while
// genuine differences are still found on the way.

package libdom

type nodePair struct {
	a, b Node
}

// Equal reports whether a and b are structurally equal. Two nodes are equal
// when they have the same kind and tag, scalars hold the same value, and
// sequences and mappings hold pairwise-equal children or entries in the same
// order. Anchors and styles do not take part. Nil nodes are only equal to
// nil.
func Equal(a, b Node) bool {
	return equal(a, b, make(map[nodePair]struct{}))
}

func equal(a, b Node, seen map[nodePair]struct{}) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a == b {
		return true
	}
	if a.Kind() != b.Kind() || a.Tag() != b.Tag() {
		return false
	}
	p := nodePair{a, b}
	if _, ok := seen[p]; ok {
		return true
	}
	seen[p] = struct{}{}

	switch a := a.(type) {
	case *Scalar:
		return a.value == b.(*Scalar).value
	case *Sequence:
		b := b.(*Sequence)
		if len(a.children) != len(b.children) {
			return false
		}
		for i := range a.children {
			if !equal(a.children[i], b.children[i], seen) {
				return false
			}
		}
		return true
	case *Mapping:
		b := b.(*Mapping)
		if len(a.entries) != len(b.entries) {
			return false
		}
		for i := range a.entries {
			if !equal(a.entries[i].Key, b.entries[i].Key, seen) {
				return false
			}
			if !equal(a.entries[i].Value, b.entries[i].Value, seen) {
				return false
			}
		}
		return true
	}
	return false
}
