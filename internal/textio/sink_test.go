// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package textio

import (
	"bytes"
	"strings"
	"testing"

	"go.yaml.in/yamldom/internal/libdom"
	"go.yaml.in/yamldom/internal/testutil/assert"
)

func write(t *testing.T, events []libdom.Event, opts ...libdom.Option) string {
	t.Helper()
	var buf bytes.Buffer
	sink, err := NewSink(&buf, opts...)
	assert.NoError(t, err)
	for _, e := range events {
		assert.NoError(t, sink.Emit(e))
	}
	return buf.String()
}

func TestSinkWrites(t *testing.T) {
	tests := []struct {
		name   string
		events []libdom.Event
		want   string
	}{
		{
			name: "mapping with flow sequence",
			events: stream(
				libdom.NewMappingStartEvent("", "", true, libdom.BlockStyle),
				plain("a"), plain("1"),
				plain("b"),
				libdom.NewSequenceStartEvent("", "", true, libdom.FlowStyle),
				plain("x"), plain("y"),
				libdom.NewSequenceEndEvent(),
				libdom.NewMappingEndEvent(),
			),
			want: "a: 1\nb: [x, y]\n",
		},
		{
			name: "anchor and alias",
			events: stream(
				libdom.NewSequenceStartEvent("", "", true, libdom.BlockStyle),
				libdom.NewScalarEvent("x", "", "v", true, false, libdom.PlainStyle),
				libdom.NewAliasEvent("x"),
				libdom.NewSequenceEndEvent(),
			),
			want: "- &x v\n- *x\n",
		},
		{
			name: "quoting and tags",
			events: stream(
				libdom.NewSequenceStartEvent("", "", true, libdom.BlockStyle),
				libdom.NewScalarEvent("", "", "5", false, true, libdom.DoubleQuotedStyle),
				libdom.NewScalarEvent("", "", "s", false, true, libdom.SingleQuotedStyle),
				libdom.NewScalarEvent("", "!custom", "v", false, false, libdom.PlainStyle),
				libdom.NewSequenceEndEvent(),
			),
			want: "- \"5\"\n- 's'\n- !custom v\n",
		},
		{
			name: "self reference",
			events: stream(
				libdom.NewSequenceStartEvent("a", "", true, libdom.FlowStyle),
				libdom.NewAliasEvent("a"),
				libdom.NewSequenceEndEvent(),
			),
			want: "&a [*a]\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, write(t, tt.events))
		})
	}
}

func TestSinkEmptyStream(t *testing.T) {
	assert.Equal(t, "", write(t, []libdom.Event{libdom.NewStreamStartEvent(), libdom.NewStreamEndEvent()}))

	var buf bytes.Buffer
	assert.NoError(t, libdom.EmitAll(mustSink(t, &buf), nil))
	assert.Equal(t, "", buf.String())
}

func mustSink(t *testing.T, w *bytes.Buffer) *Sink {
	t.Helper()
	sink, err := NewSink(w)
	assert.NoError(t, err)
	return sink
}

func TestSinkMultipleDocuments(t *testing.T) {
	events := []libdom.Event{
		libdom.NewStreamStartEvent(),
		libdom.NewDocumentStartEvent(true), plain("a"), libdom.NewDocumentEndEvent(true),
		libdom.NewDocumentStartEvent(true), plain("b"), libdom.NewDocumentEndEvent(true),
		libdom.NewStreamEndEvent(),
	}
	assert.Equal(t, "a\n---\nb\n", write(t, events))
}

func TestSinkIndent(t *testing.T) {
	events := stream(
		libdom.NewMappingStartEvent("", "", true, libdom.BlockStyle),
		plain("a"),
		libdom.NewMappingStartEvent("", "", true, libdom.BlockStyle),
		plain("b"), plain("c"),
		libdom.NewMappingEndEvent(),
		libdom.NewMappingEndEvent(),
	)
	assert.Equal(t, "a:\n  b: c\n", write(t, events))
	assert.Equal(t, "a:\n    b: c\n", write(t, events, libdom.WithIndent(4)))

	_, err := NewSink(&bytes.Buffer{}, libdom.WithIndent(12))
	assert.ErrorMatches(t, `indent must be between 2 and 9`, err)
}

func TestSinkRejectsMalformedStreams(t *testing.T) {
	start := []libdom.Event{libdom.NewStreamStartEvent(), libdom.NewDocumentStartEvent(true)}
	tests := []struct {
		name   string
		events []libdom.Event
		want   string
	}{
		{
			name:   "unknown alias",
			events: append(start, libdom.NewAliasEvent("nope")),
			want:   `alias to unknown anchor 'nope'`,
		},
		{
			name:   "two roots",
			events: append(start, plain("a"), plain("b")),
			want:   `document holds more than one root node`,
		},
		{
			name: "mismatched end",
			events: append(start,
				libdom.NewSequenceStartEvent("", "", true, libdom.BlockStyle),
				libdom.NewMappingEndEvent(),
			),
			want: `unbalanced mapping end`,
		},
		{
			name:   "node outside document",
			events: []libdom.Event{libdom.NewStreamStartEvent(), plain("a")},
			want:   `node outside of a document`,
		},
		{
			name:   "event after stream end",
			events: []libdom.Event{libdom.NewStreamStartEvent(), libdom.NewStreamEndEvent(), libdom.NewStreamStartEvent()},
			want:   `stream start event after stream end`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink, err := NewSink(&bytes.Buffer{})
			assert.NoError(t, err)
			var last error
			for _, e := range tt.events {
				if last = sink.Emit(e); last != nil {
					break
				}
			}
			assert.ErrorMatches(t, tt.want, last)
		})
	}
}

func TestTextRoundTrip(t *testing.T) {
	for _, input := range []string{
		"a: 1\nb: [x, 'y']\n",
		"- &x v\n- *x\n",
		"&a [*a]\n",
		"&m\nself: *m\n",
		"one\n---\ntwo\n",
	} {
		docs, err := libdom.LoadAll(NewSource(strings.NewReader(input)))
		assert.NoError(t, err)

		var buf bytes.Buffer
		sink, err := NewSink(&buf)
		assert.NoError(t, err)
		assert.NoError(t, libdom.EmitAll(sink, docs))
		assert.Equal(t, input, buf.String())
	}
}
