// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package textio

import (
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"

	"go.yaml.in/yamldom/internal/libdom"
)

// Sink is a [libdom.EventSink] writing YAML text. Each document is
// assembled from its events and written when its end event arrives.
type Sink struct {
	enc     *yaml.Encoder
	doc     *yaml.Node
	stack   []*yaml.Node
	anchors map[string]*yaml.Node
	written bool
	closed  bool
	err     error
}

// NewSink returns a Sink writing to w. Only the indent option applies.
func NewSink(w io.Writer, opts ...libdom.Option) (*Sink, error) {
	o, err := libdom.ApplyOptions(opts...)
	if err != nil {
		return nil, err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(o.Indent)
	return &Sink{enc: enc}, nil
}

// Emit implements [libdom.EventSink].
func (s *Sink) Emit(e libdom.Event) error {
	if s.err != nil {
		return s.err
	}
	if s.closed {
		return fmt.Errorf("%s event after stream end", e.Type)
	}
	switch e.Type {
	case libdom.StreamStartEvent:
		return nil
	case libdom.StreamEndEvent:
		if s.doc != nil {
			return fmt.Errorf("stream end inside a document")
		}
		// The encoder has nothing to finish when no document was written.
		if s.written {
			if err := s.enc.Close(); err != nil {
				s.err = err
				return err
			}
		}
		s.closed = true
		return nil
	case libdom.DocumentStartEvent:
		if s.doc != nil {
			return fmt.Errorf("document start inside a document")
		}
		s.doc = &yaml.Node{Kind: yaml.DocumentNode}
		s.stack = []*yaml.Node{s.doc}
		s.anchors = make(map[string]*yaml.Node)
		return nil
	case libdom.DocumentEndEvent:
		if s.doc == nil || len(s.stack) != 1 {
			return fmt.Errorf("unbalanced document end")
		}
		doc := s.doc
		s.doc, s.stack, s.anchors = nil, nil, nil
		if err := s.enc.Encode(doc); err != nil {
			return err
		}
		s.written = true
		return nil
	case libdom.AliasEvent:
		target, ok := s.anchors[e.Anchor]
		if !ok {
			return fmt.Errorf("alias to unknown anchor '%s'", e.Anchor)
		}
		return s.add(&yaml.Node{Kind: yaml.AliasNode, Value: e.Anchor, Alias: target}, "")
	case libdom.ScalarEvent:
		n := &yaml.Node{Kind: yaml.ScalarNode, Value: e.Value, Tag: e.Tag}
		n.Style = tagged(e.Tag) | scalarStyleOf(e.ScalarStyle())
		return s.add(n, e.Anchor)
	case libdom.SequenceStartEvent, libdom.MappingStartEvent:
		kind := yaml.SequenceNode
		if e.Type == libdom.MappingStartEvent {
			kind = yaml.MappingNode
		}
		n := &yaml.Node{Kind: kind, Tag: e.Tag, Style: tagged(e.Tag)}
		if e.CollectionStyle() == libdom.FlowStyle {
			n.Style |= yaml.FlowStyle
		}
		if err := s.add(n, e.Anchor); err != nil {
			return err
		}
		s.stack = append(s.stack, n)
		return nil
	case libdom.SequenceEndEvent, libdom.MappingEndEvent:
		want := yaml.SequenceNode
		if e.Type == libdom.MappingEndEvent {
			want = yaml.MappingNode
		}
		if len(s.stack) < 2 || s.stack[len(s.stack)-1].Kind != want {
			return fmt.Errorf("unbalanced %s", e.Type)
		}
		s.stack = s.stack[:len(s.stack)-1]
		return nil
	}
	return fmt.Errorf("cannot write %s event", e.Type)
}

func (s *Sink) add(n *yaml.Node, anchor string) error {
	if s.doc == nil {
		return fmt.Errorf("node outside of a document")
	}
	parent := s.stack[len(s.stack)-1]
	if parent.Kind == yaml.DocumentNode && len(parent.Content) != 0 {
		return fmt.Errorf("document holds more than one root node")
	}
	if anchor != "" {
		n.Anchor = anchor
		s.anchors[anchor] = n
	}
	parent.Content = append(parent.Content, n)
	return nil
}

func tagged(tag string) yaml.Style {
	if tag != "" {
		return yaml.TaggedStyle
	}
	return 0
}

func scalarStyleOf(s libdom.ScalarStyle) yaml.Style {
	switch s {
	case libdom.DoubleQuotedStyle:
		return yaml.DoubleQuotedStyle
	case libdom.SingleQuotedStyle:
		return yaml.SingleQuotedStyle
	case libdom.LiteralStyle:
		return yaml.LiteralStyle
	case libdom.FoldedStyle:
		return yaml.FoldedStyle
	}
	return 0
}
