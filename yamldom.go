// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Package yamldom is a document object model for YAML.
//
// Text, or any source of parse events, is loaded into a graph of Scalar,
// Sequence and Mapping nodes owned by a Document. Anchors and aliases are
// kept as shared nodes, so a document may contain cycles; equality,
// hashing and traversal all terminate on such graphs. Documents can be
// built or edited programmatically and written back as events or text.
package yamldom

import (
	"errors"
	"io"
	"strings"

	"go.yaml.in/yaml/v3"

	"go.yaml.in/yamldom/internal/libdom"
)

//-----------------------------------------------------------------------------
// Events
//-----------------------------------------------------------------------------

type (
	// Event is a parse or emit event.
	Event = libdom.Event
	// EventType identifies the kind of an Event.
	EventType = libdom.EventType
	// EventSource produces parse events.
	EventSource = libdom.EventSource
	// EventSink consumes emit events.
	EventSink = libdom.EventSink
	// EventBuffer is an in-memory EventSource and EventSink.
	EventBuffer = libdom.EventBuffer
)

// Re-export EventType constants
const (
	StreamStartEvent   = libdom.StreamStartEvent
	StreamEndEvent     = libdom.StreamEndEvent
	DocumentStartEvent = libdom.DocumentStartEvent
	DocumentEndEvent   = libdom.DocumentEndEvent
	AliasEvent         = libdom.AliasEvent
	ScalarEvent        = libdom.ScalarEvent
	SequenceStartEvent = libdom.SequenceStartEvent
	SequenceEndEvent   = libdom.SequenceEndEvent
	MappingStartEvent  = libdom.MappingStartEvent
	MappingEndEvent    = libdom.MappingEndEvent
)

// Event constructors.
var (
	NewEventBuffer        = libdom.NewEventBuffer
	NewStreamStartEvent   = libdom.NewStreamStartEvent
	NewStreamEndEvent     = libdom.NewStreamEndEvent
	NewDocumentStartEvent = libdom.NewDocumentStartEvent
	NewDocumentEndEvent   = libdom.NewDocumentEndEvent
	NewAliasEvent         = libdom.NewAliasEvent
	NewScalarEvent        = libdom.NewScalarEvent
	NewSequenceStartEvent = libdom.NewSequenceStartEvent
	NewSequenceEndEvent   = libdom.NewSequenceEndEvent
	NewMappingStartEvent  = libdom.NewMappingStartEvent
	NewMappingEndEvent    = libdom.NewMappingEndEvent
)

//-----------------------------------------------------------------------------
// Errors
//-----------------------------------------------------------------------------

type (
	ParseError                = libdom.ParseError
	DuplicateAnchorError      = libdom.DuplicateAnchorError
	UndefinedAliasError       = libdom.UndefinedAliasError
	UnsupportedOperationError = libdom.UnsupportedOperationError
	EmitError                 = libdom.EmitError
)

var (
	ErrParse                = libdom.ErrParse
	ErrDuplicateAnchor      = libdom.ErrDuplicateAnchor
	ErrUndefinedAlias       = libdom.ErrUndefinedAlias
	ErrUnsupportedOperation = libdom.ErrUnsupportedOperation
	ErrEmit                 = libdom.ErrEmit
)

//-----------------------------------------------------------------------------
// Options
//-----------------------------------------------------------------------------

// Option configures loading and emitting.
type Option = libdom.Option

// Option configuration functions
var (
	// WithLogger sets a go-kit logger receiving debug output about anchor
	// registration, deferred aliases and synthesized anchors.
	WithLogger = libdom.WithLogger

	// WithMaxDepth limits the nesting depth accepted while loading.
	// Exceeding it fails the load with a *ParseError.
	WithMaxDepth = libdom.WithMaxDepth

	// WithAnchorPrefix sets the prefix of anchors synthesized for nodes
	// that are reachable more than once. The default is "id", giving
	// id001, id002 and so on.
	WithAnchorPrefix = libdom.WithAnchorPrefix

	// WithIndent sets the number of spaces used for indentation when
	// writing text. Valid values are 2-9.
	WithIndent = libdom.WithIndent

	// WithSingleDocument makes a Loader stop after the first document.
	WithSingleDocument = libdom.WithSingleDocument
)

// Options combines multiple options into a single Option.
func Options(opts ...Option) Option {
	return libdom.CombineOptions(opts...)
}

// OptsYAML parses a YAML string containing option settings and returns
// an Option that can be combined with other options using Options().
//
// The YAML string can specify any of these fields:
// - max-depth (int)
// - anchor-prefix (string)
// - indent (int)
// - single-document (bool)
//
// Only fields specified in the YAML override other options when combined.
func OptsYAML(yamlStr string) (Option, error) {
	var cfg struct {
		MaxDepth       *int    `yaml:"max-depth"`
		AnchorPrefix   *string `yaml:"anchor-prefix"`
		Indent         *int    `yaml:"indent"`
		SingleDocument *bool   `yaml:"single-document"`
	}
	dec := yaml.NewDecoder(strings.NewReader(yamlStr))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	var opts []Option
	if cfg.MaxDepth != nil {
		opts = append(opts, WithMaxDepth(*cfg.MaxDepth))
	}
	if cfg.AnchorPrefix != nil {
		opts = append(opts, WithAnchorPrefix(*cfg.AnchorPrefix))
	}
	if cfg.Indent != nil {
		opts = append(opts, WithIndent(*cfg.Indent))
	}
	if cfg.SingleDocument != nil {
		opts = append(opts, WithSingleDocument(*cfg.SingleDocument))
	}
	return Options(opts...), nil
}
