// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Functional options shared by the Loader, the Emitter and the text
// collaborator.

package libdom

import (
	"errors"

	"github.com/go-kit/log"
)

const (
	DefaultMaxDepth     = 10000
	DefaultAnchorPrefix = "id"
	DefaultIndent       = 2
)

// Options holds the settings applied by [Option] values.
type Options struct {
	Logger         log.Logger
	MaxDepth       int
	AnchorPrefix   string
	Indent         int
	SingleDocument bool
}

// Option configures loading and emitting.
type Option func(*Options) error

// DefaultOptions returns the settings used when no option is given.
func DefaultOptions() *Options {
	return &Options{
		Logger:       log.NewNopLogger(),
		MaxDepth:     DefaultMaxDepth,
		AnchorPrefix: DefaultAnchorPrefix,
		Indent:       DefaultIndent,
	}
}

// ApplyOptions returns the default options with opts applied in order.
func ApplyOptions(opts ...Option) (*Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// CombineOptions folds several options into one.
func CombineOptions(opts ...Option) Option {
	return func(o *Options) error {
		for _, opt := range opts {
			if opt == nil {
				continue
			}
			if err := opt(o); err != nil {
				return err
			}
		}
		return nil
	}
}

// WithLogger sets the logger receiving debug output. A nil logger discards
// everything.
func WithLogger(logger log.Logger) Option {
	return func(o *Options) error {
		if logger == nil {
			logger = log.NewNopLogger()
		}
		o.Logger = logger
		return nil
	}
}

// WithMaxDepth limits the nesting depth accepted while loading.
// 0 restores the default.
func WithMaxDepth(depth int) Option {
	return func(o *Options) error {
		if depth < 0 {
			return errors.New("yaml: max depth cannot be negative")
		}
		if depth == 0 {
			depth = DefaultMaxDepth
		}
		o.MaxDepth = depth
		return nil
	}
}

// WithAnchorPrefix sets the prefix of anchors synthesized during emission.
func WithAnchorPrefix(prefix string) Option {
	return func(o *Options) error {
		if prefix == "" {
			return errors.New("yaml: anchor prefix cannot be empty")
		}
		o.AnchorPrefix = prefix
		return nil
	}
}

// WithIndent sets the indentation used when writing text.
// Valid values are 2-9. 0 restores the default.
func WithIndent(indent int) Option {
	return func(o *Options) error {
		if indent == 0 {
			indent = DefaultIndent
		}
		if indent < 2 || indent > 9 {
			return errors.New("yaml: indent must be between 2 and 9")
		}
		o.Indent = indent
		return nil
	}
}

// WithSingleDocument makes the Loader stop after the first document.
// When called without arguments, defaults to true.
func WithSingleDocument(single ...bool) Option {
	return func(o *Options) error {
		o.SingleDocument = len(single) == 0 || single[0]
		return nil
	}
}
