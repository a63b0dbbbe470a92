// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package yamldom

import "go.yaml.in/yamldom/internal/libdom"

//-----------------------------------------------------------------------------
// Node-related type aliases and constants
//-----------------------------------------------------------------------------

type (
	// Node is a node of a document graph.
	// See internal/libdom.Node.
	Node = libdom.Node
	// Scalar is a leaf node holding a text value.
	Scalar = libdom.Scalar
	// Sequence is an ordered list of child nodes.
	Sequence = libdom.Sequence
	// Mapping is an ordered list of key/value entries.
	Mapping = libdom.Mapping
	// Entry is one key/value pair of a Mapping.
	Entry = libdom.Entry
	// Document owns a node graph.
	Document = libdom.Document
	// Kind identifies the variant of a node.
	Kind = libdom.Kind
	// ScalarStyle controls the presentation of a scalar.
	ScalarStyle = libdom.ScalarStyle
	// CollectionStyle controls the presentation of a sequence or mapping.
	CollectionStyle = libdom.CollectionStyle
	// Mark is a position in the source text.
	Mark = libdom.Mark
	// Visitor dispatches on the node variant.
	Visitor = libdom.Visitor
	// VisitorFuncs adapts functions to a Visitor.
	VisitorFuncs = libdom.VisitorFuncs
	// LoadingState holds the anchors and pending aliases of one load.
	LoadingState = libdom.LoadingState
	// AliasResolver owns child slots that may be patched after a load.
	AliasResolver = libdom.AliasResolver
)

// Re-export Kind constants
const (
	ScalarKind   = libdom.ScalarKind
	SequenceKind = libdom.SequenceKind
	MappingKind  = libdom.MappingKind
)

// Re-export Style constants
const (
	AnyScalarStyle     = libdom.AnyScalarStyle
	PlainStyle         = libdom.PlainStyle
	SingleQuotedStyle  = libdom.SingleQuotedStyle
	DoubleQuotedStyle  = libdom.DoubleQuotedStyle
	LiteralStyle       = libdom.LiteralStyle
	FoldedStyle        = libdom.FoldedStyle
	AnyCollectionStyle = libdom.AnyCollectionStyle
	BlockStyle         = libdom.BlockStyle
	FlowStyle          = libdom.FlowStyle
)

// Re-export well-known tags
const (
	NullTag  = libdom.NullTag
	BoolTag  = libdom.BoolTag
	StrTag   = libdom.StrTag
	IntTag   = libdom.IntTag
	FloatTag = libdom.FloatTag
	SeqTag   = libdom.SeqTag
	MapTag   = libdom.MapTag
)

// Node constructors and graph functions.
var (
	NewScalar       = libdom.NewScalar
	NewSequence     = libdom.NewSequence
	NewMapping      = libdom.NewMapping
	NewDocument     = libdom.NewDocument
	NewLoadingState = libdom.NewLoadingState
	Equal           = libdom.Equal
	Hash            = libdom.Hash
	AllNodes        = libdom.AllNodes
	Clone           = libdom.Clone
	ResolvedTag     = libdom.ResolvedTag
)
