// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Event builders shared by the libdom tests.

package libdom

import (
	"testing"

	"go.yaml.in/yamldom/internal/testutil/assert"
)

func scalarEv(value string) Event {
	return NewScalarEvent("", "", value, true, false, PlainStyle)
}

func anchoredEv(anchor, value string) Event {
	return NewScalarEvent(anchor, "", value, true, false, PlainStyle)
}

func aliasEv(anchor string) Event {
	return NewAliasEvent(anchor)
}

func seqStartEv(anchor string) Event {
	return NewSequenceStartEvent(anchor, "", true, BlockStyle)
}

func mapStartEv(anchor string) Event {
	return NewMappingStartEvent(anchor, "", true, BlockStyle)
}

// docEvents frames node events as one implicit document.
func docEvents(nodes ...Event) []Event {
	events := []Event{NewDocumentStartEvent(true)}
	events = append(events, nodes...)
	return append(events, NewDocumentEndEvent(true))
}

// streamEvents frames documents as a complete stream.
func streamEvents(docs ...[]Event) []Event {
	events := []Event{NewStreamStartEvent()}
	for _, d := range docs {
		events = append(events, d...)
	}
	return append(events, NewStreamEndEvent())
}

func loadOne(t *testing.T, nodes ...Event) *Document {
	t.Helper()
	docs, err := LoadAll(NewEventBuffer(streamEvents(docEvents(nodes...))...))
	assert.NoError(t, err)
	assert.Equal(t, 1, len(docs))
	return docs[0]
}

func loadErr(nodes ...Event) error {
	_, err := LoadAll(NewEventBuffer(streamEvents(docEvents(nodes...))...))
	return err
}

func emitEvents(t *testing.T, docs ...*Document) []Event {
	t.Helper()
	buf := NewEventBuffer()
	assert.NoError(t, EmitAll(buf, docs))
	return buf.Events()
}
