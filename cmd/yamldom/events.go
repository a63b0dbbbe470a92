// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Event stream output for the yamldom tool.

package main

import (
	"fmt"
	"io"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"go.yaml.in/yamldom"
)

// writeEvents prints the events emitted for docs in the compact notation of
// the YAML test suite, one per line, indented by nesting depth.
func writeEvents(w io.Writer, docs []*yamldom.Document, opts []yamldom.Option, colors *palette) error {
	events, err := yamldom.Events(docs, opts...)
	if err != nil {
		return err
	}
	depth := 0
	for _, e := range events {
		switch e.Type {
		case yamldom.StreamEndEvent, yamldom.DocumentEndEvent, yamldom.SequenceEndEvent, yamldom.MappingEndEvent:
			depth--
		}
		line := strings.Repeat(" ", max(depth, 0)) + formatEvent(e, colors)
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
		switch e.Type {
		case yamldom.StreamStartEvent, yamldom.DocumentStartEvent, yamldom.SequenceStartEvent, yamldom.MappingStartEvent:
			depth++
		}
	}
	return nil
}

func formatEvent(e yamldom.Event, colors *palette) string {
	text := e.String()
	switch e.Type {
	case yamldom.SequenceStartEvent, yamldom.MappingStartEvent, yamldom.ScalarEvent:
		head, props, _ := strings.Cut(text, " ")
		paint := colors.collection
		if e.Type == yamldom.ScalarEvent {
			paint = colors.scalar
		}
		if props == "" {
			return paint("%s", head)
		}
		return paint("%s", head) + " " + colors.property("%s", props)
	case yamldom.SequenceEndEvent, yamldom.MappingEndEvent:
		return colors.collection("%s", text)
	case yamldom.AliasEvent:
		return colors.alias("%s", text)
	}
	return colors.document("%s", text)
}

// jsonEvent is the JSON form of one event.
type jsonEvent struct {
	Event    string  `json:"event"`
	Anchor   string  `json:"anchor,omitempty"`
	Tag      string  `json:"tag,omitempty"`
	Value    *string `json:"value,omitempty"`
	Style    string  `json:"style,omitempty"`
	Implicit *bool   `json:"implicit,omitempty"`
}

var jsonAPI = jsoniter.Config{
	EscapeHTML:  false,
	SortMapKeys: true,
}.Froze()

func toJSONEvent(e yamldom.Event) jsonEvent {
	je := jsonEvent{
		Event:  strings.ReplaceAll(e.Type.String(), " ", "-"),
		Anchor: e.Anchor,
		Tag:    e.Tag,
	}
	switch e.Type {
	case yamldom.ScalarEvent:
		value := e.Value
		je.Value = &value
		je.Style = strings.ToLower(e.ScalarStyle().String())
	case yamldom.SequenceStartEvent, yamldom.MappingStartEvent:
		je.Style = strings.ToLower(e.CollectionStyle().String())
	case yamldom.DocumentStartEvent, yamldom.DocumentEndEvent:
		implicit := e.Implicit
		je.Implicit = &implicit
	}
	return je
}

// writeJSONEvents prints the events emitted for docs as JSON lines.
func writeJSONEvents(w io.Writer, docs []*yamldom.Document, opts []yamldom.Option) error {
	events, err := yamldom.Events(docs, opts...)
	if err != nil {
		return err
	}
	enc := jsonAPI.NewEncoder(w)
	for _, e := range events {
		if err := enc.Encode(toJSONEvent(e)); err != nil {
			return err
		}
	}
	return nil
}
