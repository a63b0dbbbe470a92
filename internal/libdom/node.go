// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Node variants of the document object model.
// A document is a graph: aliases make a node reachable from several parents,
// possibly from its own descendants.

package libdom

import (
	"iter"
	"slices"
)

// Node is implemented by *Scalar, *Sequence and *Mapping only.
type Node interface {
	// Kind reports the node variant.
	Kind() Kind
	// Anchor returns the anchor name, or "" if the node has none.
	Anchor() string
	SetAnchor(anchor string)
	// Tag returns the explicit tag, or "" when the default tag for the
	// kind and value applies (see [ResolvedTag]).
	Tag() string
	SetTag(tag string)
	// Mark returns the position the node was loaded from, if any.
	Mark() Mark

	// Equal reports structural equality: same kind, same tag, equal
	// content. Anchors and styles are ignored. Terminates on cycles.
	Equal(other Node) bool
	// Hash returns a hash consistent with Equal.
	Hash() uint64
	// Accept calls the visitor method for the node's variant, once.
	Accept(v Visitor) error
	// AllNodes yields the node and every node reachable from it, depth
	// first, each exactly once.
	AllNodes() iter.Seq[Node]
	// ResolveAliases patches the child slots this node left pending in st.
	ResolveAliases(st *LoadingState) error

	isNode()
}

type base struct {
	anchor string
	tag    string
	mark   Mark
}

func (b *base) Anchor() string          { return b.anchor }
func (b *base) SetAnchor(anchor string) { b.anchor = anchor }
func (b *base) Tag() string             { return b.tag }
func (b *base) SetTag(tag string)       { b.tag = tag }
func (b *base) Mark() Mark              { return b.mark }
func (b *base) isNode()                 {}

// Scalar is a leaf node holding a text value.
type Scalar struct {
	base
	value string
	style ScalarStyle
}

// NewScalar returns a plain scalar holding value.
func NewScalar(value string) *Scalar {
	return &Scalar{value: value, style: PlainStyle}
}

func (n *Scalar) Kind() Kind                 { return ScalarKind }
func (n *Scalar) Value() string              { return n.value }
func (n *Scalar) SetValue(value string)      { n.value = value }
func (n *Scalar) Style() ScalarStyle         { return n.style }
func (n *Scalar) SetStyle(style ScalarStyle) { n.style = style }
func (n *Scalar) Accept(v Visitor) error     { return v.VisitScalar(n) }
func (n *Scalar) Equal(other Node) bool      { return Equal(n, other) }
func (n *Scalar) Hash() uint64               { return Hash(n) }
func (n *Scalar) AllNodes() iter.Seq[Node]   { return AllNodes(n) }

// WithStyle sets the style and returns the node.
func (n *Scalar) WithStyle(style ScalarStyle) *Scalar {
	n.style = style
	return n
}

// WithTag sets the tag and returns the node.
func (n *Scalar) WithTag(tag string) *Scalar {
	n.tag = tag
	return n
}

// WithAnchor sets the anchor and returns the node.
func (n *Scalar) WithAnchor(anchor string) *Scalar {
	n.anchor = anchor
	return n
}

// ResolveAliases always fails: scalars hold no child slots.
func (n *Scalar) ResolveAliases(*LoadingState) error {
	return &UnsupportedOperationError{Op: "resolve aliases", Kind: ScalarKind}
}

// Sequence is an ordered list of child nodes. Children may repeat and may
// include the sequence itself or one of its ancestors.
type Sequence struct {
	base
	style    CollectionStyle
	children []Node
}

// NewSequence returns a sequence holding children in order.
func NewSequence(children ...Node) *Sequence {
	return &Sequence{children: slices.Clone(children)}
}

func (n *Sequence) Kind() Kind                     { return SequenceKind }
func (n *Sequence) Style() CollectionStyle         { return n.style }
func (n *Sequence) SetStyle(style CollectionStyle) { n.style = style }
func (n *Sequence) Accept(v Visitor) error         { return v.VisitSequence(n) }
func (n *Sequence) Equal(other Node) bool          { return Equal(n, other) }
func (n *Sequence) Hash() uint64                   { return Hash(n) }
func (n *Sequence) AllNodes() iter.Seq[Node]       { return AllNodes(n) }

// WithStyle sets the style and returns the node.
func (n *Sequence) WithStyle(style CollectionStyle) *Sequence {
	n.style = style
	return n
}

// WithTag sets the tag and returns the node.
func (n *Sequence) WithTag(tag string) *Sequence {
	n.tag = tag
	return n
}

// WithAnchor sets the anchor and returns the node.
func (n *Sequence) WithAnchor(anchor string) *Sequence {
	n.anchor = anchor
	return n
}

func (n *Sequence) ResolveAliases(st *LoadingState) error {
	return st.resolveFor(n)
}

// Len returns the number of children.
func (n *Sequence) Len() int { return len(n.children) }

// At returns the i-th child.
func (n *Sequence) At(i int) Node { return n.children[i] }

// Set replaces the i-th child.
func (n *Sequence) Set(i int, child Node) { n.children[i] = child }

// Append adds children at the end.
func (n *Sequence) Append(children ...Node) {
	n.children = append(n.children, children...)
}

// Insert adds children before index i.
func (n *Sequence) Insert(i int, children ...Node) {
	n.children = slices.Insert(n.children, i, children...)
}

// Remove deletes the i-th child.
func (n *Sequence) Remove(i int) {
	n.children = slices.Delete(n.children, i, i+1)
}

// Children yields index and child pairs in order.
func (n *Sequence) Children() iter.Seq2[int, Node] {
	return slices.All(n.children)
}

// Entry is one key/value pair of a [Mapping].
type Entry struct {
	Key   Node
	Value Node
}

// Mapping is an ordered list of key/value entries. Insertion order is
// preserved and is part of equality. Keys need not be scalars nor unique.
type Mapping struct {
	base
	style   CollectionStyle
	entries []Entry
}

// NewMapping returns a mapping holding entries in order.
func NewMapping(entries ...Entry) *Mapping {
	return &Mapping{entries: slices.Clone(entries)}
}

func (n *Mapping) Kind() Kind                     { return MappingKind }
func (n *Mapping) Style() CollectionStyle         { return n.style }
func (n *Mapping) SetStyle(style CollectionStyle) { n.style = style }
func (n *Mapping) Accept(v Visitor) error         { return v.VisitMapping(n) }
func (n *Mapping) Equal(other Node) bool          { return Equal(n, other) }
func (n *Mapping) Hash() uint64                   { return Hash(n) }
func (n *Mapping) AllNodes() iter.Seq[Node]       { return AllNodes(n) }

// WithStyle sets the style and returns the node.
func (n *Mapping) WithStyle(style CollectionStyle) *Mapping {
	n.style = style
	return n
}

// WithTag sets the tag and returns the node.
func (n *Mapping) WithTag(tag string) *Mapping {
	n.tag = tag
	return n
}

// WithAnchor sets the anchor and returns the node.
func (n *Mapping) WithAnchor(anchor string) *Mapping {
	n.anchor = anchor
	return n
}

func (n *Mapping) ResolveAliases(st *LoadingState) error {
	return st.resolveFor(n)
}

// Len returns the number of entries.
func (n *Mapping) Len() int { return len(n.entries) }

// EntryAt returns the i-th entry.
func (n *Mapping) EntryAt(i int) Entry { return n.entries[i] }

// SetEntryAt replaces the i-th entry.
func (n *Mapping) SetEntryAt(i int, e Entry) { n.entries[i] = e }

// Entries yields key/value pairs in insertion order.
func (n *Mapping) Entries() iter.Seq2[Node, Node] {
	return func(yield func(Node, Node) bool) {
		for _, e := range n.entries {
			if !yield(e.Key, e.Value) {
				return
			}
		}
	}
}

// index returns the position of the first entry whose key is structurally
// equal to key, or -1.
func (n *Mapping) index(key Node) int {
	return slices.IndexFunc(n.entries, func(e Entry) bool {
		return Equal(e.Key, key)
	})
}

// Get returns the value of the first entry whose key equals key.
func (n *Mapping) Get(key Node) (Node, bool) {
	if i := n.index(key); i >= 0 {
		return n.entries[i].Value, true
	}
	return nil, false
}

// Lookup returns the value of the first entry whose key is an untagged
// scalar holding key.
func (n *Mapping) Lookup(key string) (Node, bool) {
	for _, e := range n.entries {
		if s, ok := e.Key.(*Scalar); ok && s.tag == "" && s.value == key {
			return e.Value, true
		}
	}
	return nil, false
}

// Set replaces the value of the first entry whose key equals key, or
// appends a new entry.
func (n *Mapping) Set(key, value Node) {
	if i := n.index(key); i >= 0 {
		n.entries[i].Value = value
		return
	}
	n.Append(key, value)
}

// Append adds an entry at the end without looking for an existing key.
func (n *Mapping) Append(key, value Node) {
	n.entries = append(n.entries, Entry{Key: key, Value: value})
}

// Delete removes the first entry whose key equals key.
func (n *Mapping) Delete(key Node) bool {
	i := n.index(key)
	if i < 0 {
		return false
	}
	n.entries = slices.Delete(n.entries, i, i+1)
	return true
}
