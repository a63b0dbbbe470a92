// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Package textio binds the event protocol to YAML text. The scanning,
// parsing and emitting of characters is delegated to go.yaml.in/yaml/v3;
// this package only translates between its representation tree and the
// event stream consumed and produced by libdom.
package textio

import (
	"io"
	"regexp"
	"strconv"
	"strings"

	"go.yaml.in/yaml/v3"

	"go.yaml.in/yamldom/internal/libdom"
)

// Source is a [libdom.EventSource] reading YAML text. Documents are parsed
// one at a time as events are pulled.
type Source struct {
	dec     *yaml.Decoder
	queue   []libdom.Event
	started bool
	done    bool
}

// NewSource returns a Source reading from r.
func NewSource(r io.Reader) *Source {
	return &Source{dec: yaml.NewDecoder(r)}
}

// Next implements [libdom.EventSource].
func (s *Source) Next() (libdom.Event, error) {
	for len(s.queue) == 0 {
		if s.done {
			return libdom.Event{}, io.EOF
		}
		if !s.started {
			s.started = true
			return libdom.NewStreamStartEvent(), nil
		}
		var doc yaml.Node
		err := s.dec.Decode(&doc)
		if err == io.EOF {
			s.done = true
			return libdom.NewStreamEndEvent(), nil
		}
		if err != nil {
			s.done = true
			return libdom.Event{}, parseError(err)
		}
		s.queue = documentEvents(&doc, s.queue)
	}
	e := s.queue[0]
	s.queue = s.queue[1:]
	return e, nil
}

func mark(n *yaml.Node) libdom.Mark {
	return libdom.Mark{Line: n.Line, Column: n.Column}
}

func documentEvents(doc *yaml.Node, events []libdom.Event) []libdom.Event {
	start := libdom.NewDocumentStartEvent(true)
	start.Mark = mark(doc)
	events = append(events, start)
	for _, n := range doc.Content {
		events = nodeEvents(n, events)
	}
	return append(events, libdom.NewDocumentEndEvent(true))
}

// explicitTag returns the tag written in the text, if any. The decoder
// fills in resolved tags for untagged nodes; those are dropped.
func explicitTag(n *yaml.Node) string {
	if n.Style&yaml.TaggedStyle != 0 {
		return n.Tag
	}
	return ""
}

func scalarStyle(s yaml.Style) libdom.ScalarStyle {
	switch {
	case s&yaml.DoubleQuotedStyle != 0:
		return libdom.DoubleQuotedStyle
	case s&yaml.SingleQuotedStyle != 0:
		return libdom.SingleQuotedStyle
	case s&yaml.LiteralStyle != 0:
		return libdom.LiteralStyle
	case s&yaml.FoldedStyle != 0:
		return libdom.FoldedStyle
	}
	return libdom.PlainStyle
}

func collectionStyle(s yaml.Style) libdom.CollectionStyle {
	if s&yaml.FlowStyle != 0 {
		return libdom.FlowStyle
	}
	return libdom.BlockStyle
}

func nodeEvents(n *yaml.Node, events []libdom.Event) []libdom.Event {
	var e libdom.Event
	switch n.Kind {
	case yaml.AliasNode:
		e = libdom.NewAliasEvent(n.Value)
	case yaml.ScalarNode:
		tag := explicitTag(n)
		style := scalarStyle(n.Style)
		plain := tag == "" && style == libdom.PlainStyle
		quoted := tag == "" && style != libdom.PlainStyle
		e = libdom.NewScalarEvent(n.Anchor, tag, n.Value, plain, quoted, style)
	case yaml.SequenceNode:
		tag := explicitTag(n)
		e = libdom.NewSequenceStartEvent(n.Anchor, tag, tag == "", collectionStyle(n.Style))
	case yaml.MappingNode:
		tag := explicitTag(n)
		e = libdom.NewMappingStartEvent(n.Anchor, tag, tag == "", collectionStyle(n.Style))
	case yaml.DocumentNode:
		for _, c := range n.Content {
			events = nodeEvents(c, events)
		}
		return events
	default:
		return events
	}
	e.Mark = mark(n)
	events = append(events, e)

	switch n.Kind {
	case yaml.SequenceNode:
		for _, c := range n.Content {
			events = nodeEvents(c, events)
		}
		end := libdom.NewSequenceEndEvent()
		end.Mark = e.Mark
		events = append(events, end)
	case yaml.MappingNode:
		for _, c := range n.Content {
			events = nodeEvents(c, events)
		}
		end := libdom.NewMappingEndEvent()
		end.Mark = e.Mark
		events = append(events, end)
	}
	return events
}

var (
	unknownAnchorRE = regexp.MustCompile(`^yaml: unknown anchor '(.*)' referenced$`)
	lineRE          = regexp.MustCompile(`^yaml: line (\d+): (.*)$`)
)

// parseError converts an error of the text parser into the libdom error
// types. The parser refuses aliases that precede their anchor, so those
// surface as undefined aliases here.
func parseError(err error) error {
	msg := err.Error()
	if m := unknownAnchorRE.FindStringSubmatch(msg); m != nil {
		return &libdom.UndefinedAliasError{Anchor: m[1]}
	}
	if m := lineRE.FindStringSubmatch(msg); m != nil {
		line, _ := strconv.Atoi(m[1])
		return &libdom.ParseError{Mark: libdom.Mark{Line: line}, Message: m[2]}
	}
	if strings.HasPrefix(msg, "yaml: ") {
		return &libdom.ParseError{Message: strings.TrimPrefix(msg, "yaml: ")}
	}
	return &libdom.ParseError{Err: err}
}
