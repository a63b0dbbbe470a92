// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// This file contains the Loader API for reading documents.
//
// Primary functions:
// - Parse: Load one document from YAML text
// - ParseAll: Load every document of a YAML stream
// - NewLoader: Create a streaming loader from io.Reader
// - NewEventLoader: Create a loader over any EventSource

package yamldom

import (
	"bytes"
	"errors"
	"io"

	"go.yaml.in/yamldom/internal/libdom"
	"go.yaml.in/yamldom/internal/textio"
)

// A Loader reads documents from a stream, one per Load call.
type Loader = libdom.Loader

// NewLoader returns a Loader reading YAML text from r.
func NewLoader(r io.Reader, opts ...Option) (*Loader, error) {
	return libdom.NewLoader(textio.NewSource(r), opts...)
}

// NewEventLoader returns a Loader pulling events from src.
func NewEventLoader(src EventSource, opts ...Option) (*Loader, error) {
	return libdom.NewLoader(src, opts...)
}

// LoadEvents loads every document of an event stream.
func LoadEvents(src EventSource, opts ...Option) ([]*Document, error) {
	return libdom.LoadAll(src, opts...)
}

// Parse loads exactly one document from YAML text.
//
// Empty input, or input holding more than one document, is an error.
func Parse(in []byte, opts ...Option) (*Document, error) {
	l, err := NewLoader(bytes.NewReader(in), opts...)
	if err != nil {
		return nil, err
	}
	doc, err := l.Load()
	if err == io.EOF {
		return nil, errors.New("yaml: no documents in input")
	}
	if err != nil {
		return nil, err
	}
	if _, err := l.Load(); err != io.EOF {
		if err != nil {
			return nil, err
		}
		return nil, errors.New("yaml: expected a single document in input")
	}
	return doc, nil
}

// ParseAll loads every document of a YAML stream.
func ParseAll(in []byte, opts ...Option) ([]*Document, error) {
	return libdom.LoadAll(textio.NewSource(bytes.NewReader(in)), opts...)
}
