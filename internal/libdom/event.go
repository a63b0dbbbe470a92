// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Event protocol shared with the parser and emitter collaborators.
// The same Event type flows in (parse events) and out (emit events).

package libdom

import (
	"fmt"
	"io"
	"strings"
)

// EventType identifies the kind of an [Event].
type EventType int8

// Event types.
const (
	// An empty event.
	NoEvent EventType = iota

	StreamStartEvent   // A STREAM-START event.
	StreamEndEvent     // A STREAM-END event.
	DocumentStartEvent // A DOCUMENT-START event.
	DocumentEndEvent   // A DOCUMENT-END event.
	AliasEvent         // An ALIAS event.
	ScalarEvent        // A SCALAR event.
	SequenceStartEvent // A SEQUENCE-START event.
	SequenceEndEvent   // A SEQUENCE-END event.
	MappingStartEvent  // A MAPPING-START event.
	MappingEndEvent    // A MAPPING-END event.
)

var eventStrings = []string{
	NoEvent:            "none",
	StreamStartEvent:   "stream start",
	StreamEndEvent:     "stream end",
	DocumentStartEvent: "document start",
	DocumentEndEvent:   "document end",
	AliasEvent:         "alias",
	ScalarEvent:        "scalar",
	SequenceStartEvent: "sequence start",
	SequenceEndEvent:   "sequence end",
	MappingStartEvent:  "mapping start",
	MappingEndEvent:    "mapping end",
}

func (e EventType) String() string {
	if e < 0 || int(e) >= len(eventStrings) {
		return fmt.Sprintf("unknown event %d", e)
	}
	return eventStrings[e]
}

// Event holds information about a parsing or emitting event.
type Event struct {
	// The event type.
	Type EventType

	// The position of the event in the source text, if known.
	Mark Mark

	// The anchor (for ScalarEvent, SequenceStartEvent, MappingStartEvent)
	// or the referenced anchor name (for AliasEvent).
	Anchor string

	// The tag (for ScalarEvent, SequenceStartEvent, MappingStartEvent).
	// Empty means no explicit tag.
	Tag string

	// The scalar value (for ScalarEvent).
	Value string

	// Is the tag optional? For ScalarEvent this is the plain-implicit flag.
	Implicit bool

	// Is the tag optional for any non-plain style? (for ScalarEvent).
	QuotedImplicit bool

	// The style (for ScalarEvent, SequenceStartEvent, MappingStartEvent).
	Style styleInt
}

func (e *Event) ScalarStyle() ScalarStyle         { return ScalarStyle(e.Style) }
func (e *Event) CollectionStyle() CollectionStyle { return CollectionStyle(e.Style) }

var valueEscaper = strings.NewReplacer(`\`, `\\`, "\n", `\n`, "\t", `\t`, "\r", `\r`, "\b", `\b`)

// String renders the event in the compact notation of the YAML test suite.
func (e Event) String() string {
	props := func() string {
		s := ""
		if e.Anchor != "" {
			s += " &" + e.Anchor
		}
		if e.Tag != "" {
			s += " <" + e.Tag + ">"
		}
		return s
	}
	switch e.Type {
	case StreamStartEvent:
		return "+STR"
	case StreamEndEvent:
		return "-STR"
	case DocumentStartEvent:
		if !e.Implicit {
			return "+DOC ---"
		}
		return "+DOC"
	case DocumentEndEvent:
		if !e.Implicit {
			return "-DOC ..."
		}
		return "-DOC"
	case AliasEvent:
		return "=ALI *" + e.Anchor
	case ScalarEvent:
		indicator := ":"
		switch e.ScalarStyle() {
		case SingleQuotedStyle:
			indicator = "'"
		case DoubleQuotedStyle:
			indicator = `"`
		case LiteralStyle:
			indicator = "|"
		case FoldedStyle:
			indicator = ">"
		}
		return "=VAL" + props() + " " + indicator + valueEscaper.Replace(e.Value)
	case SequenceStartEvent:
		if e.CollectionStyle() == FlowStyle {
			return "+SEQ []" + props()
		}
		return "+SEQ" + props()
	case SequenceEndEvent:
		return "-SEQ"
	case MappingStartEvent:
		if e.CollectionStyle() == FlowStyle {
			return "+MAP {}" + props()
		}
		return "+MAP" + props()
	case MappingEndEvent:
		return "-MAP"
	}
	return e.Type.String()
}

// NewStreamStartEvent creates a new STREAM-START event.
func NewStreamStartEvent() Event {
	return Event{Type: StreamStartEvent}
}

// NewStreamEndEvent creates a new STREAM-END event.
func NewStreamEndEvent() Event {
	return Event{Type: StreamEndEvent}
}

// NewDocumentStartEvent creates a new DOCUMENT-START event.
func NewDocumentStartEvent(implicit bool) Event {
	return Event{Type: DocumentStartEvent, Implicit: implicit}
}

// NewDocumentEndEvent creates a new DOCUMENT-END event.
func NewDocumentEndEvent(implicit bool) Event {
	return Event{Type: DocumentEndEvent, Implicit: implicit}
}

// NewAliasEvent creates a new ALIAS event.
func NewAliasEvent(anchor string) Event {
	return Event{Type: AliasEvent, Anchor: anchor}
}

// NewScalarEvent creates a new SCALAR event.
func NewScalarEvent(anchor, tag, value string, plainImplicit, quotedImplicit bool, style ScalarStyle) Event {
	return Event{
		Type:           ScalarEvent,
		Anchor:         anchor,
		Tag:            tag,
		Value:          value,
		Implicit:       plainImplicit,
		QuotedImplicit: quotedImplicit,
		Style:          styleInt(style),
	}
}

// NewSequenceStartEvent creates a new SEQUENCE-START event.
func NewSequenceStartEvent(anchor, tag string, implicit bool, style CollectionStyle) Event {
	return Event{
		Type:     SequenceStartEvent,
		Anchor:   anchor,
		Tag:      tag,
		Implicit: implicit,
		Style:    styleInt(style),
	}
}

// NewSequenceEndEvent creates a new SEQUENCE-END event.
func NewSequenceEndEvent() Event {
	return Event{Type: SequenceEndEvent}
}

// NewMappingStartEvent creates a new MAPPING-START event.
func NewMappingStartEvent(anchor, tag string, implicit bool, style CollectionStyle) Event {
	return Event{
		Type:     MappingStartEvent,
		Anchor:   anchor,
		Tag:      tag,
		Implicit: implicit,
		Style:    styleInt(style),
	}
}

// NewMappingEndEvent creates a new MAPPING-END event.
func NewMappingEndEvent() Event {
	return Event{Type: MappingEndEvent}
}

// EventSource is the pull side of the parser collaborator. Next returns
// io.EOF once the stream is exhausted.
type EventSource interface {
	Next() (Event, error)
}

// EventSink is the push side of the emitter collaborator.
type EventSink interface {
	Emit(Event) error
}

// EventBuffer is an in-memory event stream. It is both an [EventSource]
// (reading from the front) and an [EventSink] (appending to the back).
type EventBuffer struct {
	events []Event
	pos    int
}

// NewEventBuffer returns a buffer holding a copy of events.
func NewEventBuffer(events ...Event) *EventBuffer {
	return &EventBuffer{events: append([]Event(nil), events...)}
}

// Next implements [EventSource].
func (b *EventBuffer) Next() (Event, error) {
	if b.pos >= len(b.events) {
		return Event{}, io.EOF
	}
	e := b.events[b.pos]
	b.pos++
	return e, nil
}

// Emit implements [EventSink].
func (b *EventBuffer) Emit(e Event) error {
	b.events = append(b.events, e)
	return nil
}

// Events returns the events not yet consumed by Next.
func (b *EventBuffer) Events() []Event {
	return b.events[b.pos:]
}

// Reset rewinds the read position to the start of the buffer.
func (b *EventBuffer) Reset() {
	b.pos = 0
}
