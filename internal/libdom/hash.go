// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Structural hashing over node graphs.
//
// Acyclic graphs hash by the full recursive combination of kind, tag, value
// and child hashes. A graph containing a cycle cannot be hashed that way, so
// it is hashed to a fixed depth instead: below cyclicHashDepth a collection
// only contributes its kind, tag and length. Equal graphs are either both
// acyclic or both cyclic, and equal cyclic graphs unroll identically, so
// either scheme agrees with Equal.

package libdom

import "github.com/segmentio/fasthash/fnv1a"

const cyclicHashDepth = 8

// nilHash is the hash of an empty slot.
var nilHash = fnv1a.HashString64("<nil>")

// Hash returns a hash of n consistent with [Equal]. Anchors and styles do
// not take part.
func Hash(n Node) uint64 {
	if n == nil {
		return nilHash
	}
	if hasCycle(n) {
		return boundedHash(n, cyclicHashDepth, make(map[depthKey]uint64))
	}
	return treeHash(n, make(map[Node]uint64))
}

func header(n Node, size int) uint64 {
	h := fnv1a.AddUint64(fnv1a.Init64, uint64(n.Kind()))
	h = fnv1a.AddUint64(h, uint64(len(n.Tag())))
	h = fnv1a.AddString64(h, n.Tag())
	return fnv1a.AddUint64(h, uint64(size))
}

func scalarHash(n *Scalar) uint64 {
	return fnv1a.AddString64(header(n, len(n.value)), n.value)
}

// treeHash hashes an acyclic graph. Shared subtrees are hashed once.
func treeHash(n Node, memo map[Node]uint64) uint64 {
	if n == nil {
		return nilHash
	}
	if h, ok := memo[n]; ok {
		return h
	}
	var h uint64
	switch n := n.(type) {
	case *Scalar:
		h = scalarHash(n)
	case *Sequence:
		h = header(n, len(n.children))
		for _, c := range n.children {
			h = fnv1a.AddUint64(h, treeHash(c, memo))
		}
	case *Mapping:
		h = header(n, len(n.entries))
		for _, e := range n.entries {
			h = fnv1a.AddUint64(h, treeHash(e.Key, memo))
			h = fnv1a.AddUint64(h, treeHash(e.Value, memo))
		}
	}
	memo[n] = h
	return h
}

type depthKey struct {
	n     Node
	depth int
}

func boundedHash(n Node, depth int, memo map[depthKey]uint64) uint64 {
	if n == nil {
		return nilHash
	}
	if s, ok := n.(*Scalar); ok {
		return scalarHash(s)
	}
	k := depthKey{n, depth}
	if h, ok := memo[k]; ok {
		return h
	}
	var h uint64
	switch n := n.(type) {
	case *Sequence:
		h = header(n, len(n.children))
		if depth > 0 {
			for _, c := range n.children {
				h = fnv1a.AddUint64(h, boundedHash(c, depth-1, memo))
			}
		}
	case *Mapping:
		h = header(n, len(n.entries))
		if depth > 0 {
			for _, e := range n.entries {
				h = fnv1a.AddUint64(h, boundedHash(e.Key, depth-1, memo))
				h = fnv1a.AddUint64(h, boundedHash(e.Value, depth-1, memo))
			}
		}
	}
	memo[k] = h
	return h
}

// hasCycle reports whether any node reachable from n can reach itself.
func hasCycle(n Node) bool {
	const (
		onPath = 1
		done   = 2
	)
	state := make(map[Node]int)
	var visit func(Node) bool
	visit = func(n Node) bool {
		if n == nil {
			return false
		}
		switch state[n] {
		case onPath:
			return true
		case done:
			return false
		}
		state[n] = onPath
		switch n := n.(type) {
		case *Sequence:
			for _, c := range n.children {
				if visit(c) {
					return true
				}
			}
		case *Mapping:
			for _, e := range n.entries {
				if visit(e.Key) || visit(e.Value) {
					return true
				}
			}
		}
		state[n] = done
		return false
	}
	return visit(n)
}
