// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Resolver: default tags for nodes without an explicit tag.
// Plain scalars resolve by the YAML 1.2 core schema; quoted and block
// scalars are always strings.

package libdom

import "regexp"

var (
	nullRE  = regexp.MustCompile(`^(?:~|null|Null|NULL|)$`)
	boolRE  = regexp.MustCompile(`^(?:true|True|TRUE|false|False|FALSE)$`)
	intRE   = regexp.MustCompile(`^(?:[-+]?[0-9]+|0o[0-7]+|0x[0-9a-fA-F]+)$`)
	floatRE = regexp.MustCompile(`^(?:[-+]?(?:\.[0-9]+|[0-9]+(?:\.[0-9]*)?)(?:[eE][-+]?[0-9]+)?|[-+]?\.(?:inf|Inf|INF)|\.(?:nan|NaN|NAN))$`)
)

// ResolvedTag returns the tag of n, or the default tag for its kind and
// value when it has none.
func ResolvedTag(n Node) string {
	if tag := n.Tag(); tag != "" {
		return tag
	}
	switch n := n.(type) {
	case *Sequence:
		return SeqTag
	case *Mapping:
		return MapTag
	case *Scalar:
		if n.style != PlainStyle && n.style != AnyScalarStyle {
			return StrTag
		}
		return resolveScalar(n.value)
	}
	return ""
}

func resolveScalar(value string) string {
	switch {
	case nullRE.MatchString(value):
		return NullTag
	case boolRE.MatchString(value):
		return BoolTag
	case intRE.MatchString(value):
		return IntTag
	case floatRE.MatchString(value):
		return FloatTag
	}
	return StrTag
}
