// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// This file contains the Dumper API for writing documents.
//
// Primary functions:
// - Format: Write one document as YAML text
// - FormatAll: Write several documents as a multi-document YAML stream
// - Events: Serialize documents to an event list
// - NewDumper: Create a streaming dumper to io.Writer

package yamldom

import (
	"bytes"
	"io"

	"go.yaml.in/yamldom/internal/libdom"
	"go.yaml.in/yamldom/internal/textio"
)

// Format writes doc as YAML text.
func Format(doc *Document, opts ...Option) ([]byte, error) {
	return FormatAll([]*Document{doc}, opts...)
}

// FormatAll writes docs as a multi-document YAML stream.
func FormatAll(docs []*Document, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	d, err := NewDumper(&buf, opts...)
	if err != nil {
		return nil, err
	}
	for _, doc := range docs {
		if err := d.Dump(doc); err != nil {
			return nil, err
		}
	}
	if err := d.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Events serializes docs to a complete event stream.
func Events(docs []*Document, opts ...Option) ([]Event, error) {
	buf := libdom.NewEventBuffer()
	if err := libdom.EmitAll(buf, docs, opts...); err != nil {
		return nil, err
	}
	return buf.Events(), nil
}

// An Emitter writes documents to an EventSink.
type Emitter = libdom.Emitter

// NewEmitter returns an Emitter writing events to sink.
func NewEmitter(sink EventSink, opts ...Option) (*Emitter, error) {
	return libdom.NewEmitter(sink, opts...)
}

// A Dumper writes documents to an output stream as YAML text.
type Dumper struct {
	emitter *libdom.Emitter
}

// NewDumper returns a new Dumper that writes to w with the given options.
//
// The Dumper should be closed after use to flush all data to w.
func NewDumper(w io.Writer, opts ...Option) (*Dumper, error) {
	sink, err := textio.NewSink(w, opts...)
	if err != nil {
		return nil, err
	}
	e, err := libdom.NewEmitter(sink, opts...)
	if err != nil {
		return nil, err
	}
	return &Dumper{emitter: e}, nil
}

// Dump writes doc to the stream.
//
// If multiple documents are dumped to the stream, the second and subsequent
// documents are preceded with a "---" document separator.
func (d *Dumper) Dump(doc *Document) error {
	return d.emitter.Emit(doc)
}

// Close closes the Dumper by writing any remaining data.
func (d *Dumper) Close() error {
	return d.emitter.Close()
}
