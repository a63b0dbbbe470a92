// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Core libdom types.
// Defines node kinds, presentation styles, positions and well-known tags.

package libdom

import (
	"fmt"
	"strings"
)

// Mark holds a position in the source text.
type Mark struct {
	Line   int // The position line (1-indexed, 0 when unknown).
	Column int // The position column (1-indexed).
}

func (m Mark) String() string {
	var builder strings.Builder
	if m.Line == 0 {
		return "<unknown position>"
	}

	fmt.Fprintf(&builder, "line %d", m.Line)
	if m.Column != 0 {
		fmt.Fprintf(&builder, ", column %d", m.Column)
	}

	return builder.String()
}

// Kind identifies the variant of a node.
type Kind uint8

const (
	ScalarKind Kind = iota + 1
	SequenceKind
	MappingKind
)

var kindStrings = []string{
	ScalarKind:   "scalar",
	SequenceKind: "sequence",
	MappingKind:  "mapping",
}

func (k Kind) String() string {
	if k == 0 || int(k) >= len(kindStrings) {
		return fmt.Sprintf("unknown kind %d", k)
	}
	return kindStrings[k]
}

type styleInt int8

// ScalarStyle is the presentation hint of a scalar. It never affects
// equality or hashing.
type ScalarStyle styleInt

// Scalar styles.
const (
	// Let the emitter choose the style.
	AnyScalarStyle ScalarStyle = iota

	PlainStyle        // The plain scalar style.
	SingleQuotedStyle // The single-quoted scalar style.
	DoubleQuotedStyle // The double-quoted scalar style.
	LiteralStyle      // The literal block scalar style.
	FoldedStyle       // The folded block scalar style.
)

// String returns a string representation of a [ScalarStyle].
func (style ScalarStyle) String() string {
	switch style {
	case AnyScalarStyle:
		return "Any"
	case PlainStyle:
		return "Plain"
	case SingleQuotedStyle:
		return "Single"
	case DoubleQuotedStyle:
		return "Double"
	case LiteralStyle:
		return "Literal"
	case FoldedStyle:
		return "Folded"
	default:
		return fmt.Sprintf("ScalarStyle(%d)", int(style))
	}
}

// CollectionStyle is the presentation hint of a sequence or mapping.
type CollectionStyle styleInt

// Collection styles.
const (
	// Let the emitter choose the style.
	AnyCollectionStyle CollectionStyle = iota

	BlockStyle // The block collection style.
	FlowStyle  // The flow collection style.
)

// String returns a string representation of a [CollectionStyle].
func (style CollectionStyle) String() string {
	switch style {
	case AnyCollectionStyle:
		return "Any"
	case BlockStyle:
		return "Block"
	case FlowStyle:
		return "Flow"
	default:
		return fmt.Sprintf("CollectionStyle(%d)", int(style))
	}
}

// Well-known tags, in the short form produced by the text collaborator.
const (
	NullTag  = "!!null"
	BoolTag  = "!!bool"
	StrTag   = "!!str"
	IntTag   = "!!int"
	FloatTag = "!!float"
	SeqTag   = "!!seq"
	MapTag   = "!!map"
)
