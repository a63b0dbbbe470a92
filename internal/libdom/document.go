// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package libdom

import "iter"

// Document is the single owning handle of a node graph. Edges between nodes,
// aliases included, are plain references into the graph; dropping the
// Document releases every node at once, cycles included.
type Document struct {
	// Root is the top-level node, nil for an empty document.
	Root Node

	// ExplicitStart and ExplicitEnd record whether the document markers
	// were present, and are honoured on emission.
	ExplicitStart bool
	ExplicitEnd   bool
}

// NewDocument returns a document holding root.
func NewDocument(root Node) *Document {
	return &Document{Root: root}
}

// Equal reports whether both documents have structurally equal roots.
func (d *Document) Equal(other *Document) bool {
	return Equal(d.Root, other.Root)
}

// Hash returns the hash of the root.
func (d *Document) Hash() uint64 {
	return Hash(d.Root)
}

// AllNodes yields every node of the document once.
func (d *Document) AllNodes() iter.Seq[Node] {
	return AllNodes(d.Root)
}

// Anchored returns the first node, in traversal order, whose anchor is name.
func (d *Document) Anchored(name string) (Node, bool) {
	for n := range d.AllNodes() {
		if n.Anchor() == name {
			return n, true
		}
	}
	return nil, false
}

// Clone returns a deep copy of the document.
func (d *Document) Clone() *Document {
	c := *d
	c.Root = Clone(d.Root)
	return &c
}

// ResolveAliases patches a root left pending by an alias. Such an alias can
// never resolve: no anchor precedes the root.
func (d *Document) ResolveAliases(st *LoadingState) error {
	return st.resolveFor(d)
}
