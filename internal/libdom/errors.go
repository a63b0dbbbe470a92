// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Error types for loading and emitting document trees.
// Provides structured error reporting with line/column information.

package libdom

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors matched by the typed errors below through errors.Is.
var (
	ErrParse                = errors.New("yaml: parse error")
	ErrDuplicateAnchor      = errors.New("yaml: duplicate anchor")
	ErrUndefinedAlias       = errors.New("yaml: undefined alias")
	ErrUnsupportedOperation = errors.New("yaml: unsupported operation")
	ErrEmit                 = errors.New("yaml: emit error")
)

// ParseError reports an event stream that does not match what the current
// load step requires, or a failure of the event source itself.
type ParseError struct {
	Mark    Mark
	Message string
	Err     error // collaborator error, if any
}

func (e *ParseError) Error() string {
	var builder strings.Builder
	builder.WriteString("yaml: ")
	if e.Mark.Line != 0 {
		fmt.Fprintf(&builder, "%s: ", e.Mark)
	}
	builder.WriteString(e.Message)
	if e.Err != nil {
		if e.Message != "" {
			builder.WriteString(": ")
		}
		builder.WriteString(e.Err.Error())
	}
	return builder.String()
}

func (e *ParseError) Unwrap() error        { return e.Err }
func (e *ParseError) Is(target error) bool { return target == ErrParse }

// DuplicateAnchorError reports two nodes of one document declaring the
// same anchor name.
type DuplicateAnchorError struct {
	Anchor   string
	Mark     Mark
	Previous Mark
}

func (e *DuplicateAnchorError) Error() string {
	var builder strings.Builder
	builder.WriteString("yaml: ")
	if e.Mark.Line != 0 {
		fmt.Fprintf(&builder, "%s: ", e.Mark)
	}
	fmt.Fprintf(&builder, "duplicate anchor '%s'", e.Anchor)
	if e.Previous.Line != 0 {
		fmt.Fprintf(&builder, " (first defined at %s)", e.Previous)
	}
	return builder.String()
}

func (e *DuplicateAnchorError) Is(target error) bool { return target == ErrDuplicateAnchor }

// UndefinedAliasError reports an alias whose anchor was never defined in
// the document.
type UndefinedAliasError struct {
	Anchor string
	Mark   Mark
}

func (e *UndefinedAliasError) Error() string {
	if e.Mark.Line != 0 {
		return fmt.Sprintf("yaml: %s: unknown anchor '%s' referenced", e.Mark, e.Anchor)
	}
	return fmt.Sprintf("yaml: unknown anchor '%s' referenced", e.Anchor)
}

func (e *UndefinedAliasError) Is(target error) bool { return target == ErrUndefinedAlias }

// UnsupportedOperationError reports an operation that the node kind does not
// support, such as alias resolution on a scalar.
type UnsupportedOperationError struct {
	Op   string
	Kind Kind
}

func (e *UnsupportedOperationError) Error() string {
	return fmt.Sprintf("yaml: cannot %s on a %s node", e.Op, e.Kind)
}

func (e *UnsupportedOperationError) Is(target error) bool { return target == ErrUnsupportedOperation }

// EmitError reports a tree that cannot be serialized or a failing sink.
type EmitError struct {
	Message string
	Err     error
}

func (e *EmitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("yaml: %s: %s", e.Message, e.Err)
	}
	return fmt.Sprintf("yaml: %s", e.Message)
}

func (e *EmitError) Unwrap() error        { return e.Err }
func (e *EmitError) Is(target error) bool { return target == ErrEmit }
