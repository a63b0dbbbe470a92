// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Emitter stage: converts document trees back into an event stream.
// Walks each tree depth first; a node met a second time, whether shared or
// reached through a cycle, is emitted as an alias of its first occurrence.

package libdom

import (
	"errors"
	"fmt"

	"github.com/go-kit/log/level"
)

// Emitter writes documents to an [EventSink]. It never modifies the trees
// it emits: anchors it has to synthesize live in an emission-local table.
type Emitter struct {
	sink    EventSink
	opts    *Options
	started  bool
	closed   bool
	closeErr error

	names   map[Node]string
	emitted map[Node]struct{}
}

// NewEmitter returns an Emitter writing to sink.
func NewEmitter(sink EventSink, opts ...Option) (*Emitter, error) {
	o, err := ApplyOptions(opts...)
	if err != nil {
		return nil, err
	}
	return &Emitter{sink: sink, opts: o}, nil
}

// EmitAll writes a complete stream holding docs.
func EmitAll(sink EventSink, docs []*Document, opts ...Option) error {
	e, err := NewEmitter(sink, opts...)
	if err != nil {
		return err
	}
	for _, doc := range docs {
		if err := e.Emit(doc); err != nil {
			return err
		}
	}
	return e.Close()
}

func (e *Emitter) init() error {
	if e.started {
		return nil
	}
	e.started = true
	return e.emit(NewStreamStartEvent())
}

// Emit writes one document. The stream start is written before the first
// document.
func (e *Emitter) Emit(doc *Document) error {
	if e.closed {
		return &EmitError{Message: "emitter already closed"}
	}
	if err := e.init(); err != nil {
		return err
	}
	e.names = e.anchors(doc.Root)
	e.emitted = make(map[Node]struct{})
	defer func() {
		e.names = nil
		e.emitted = nil
	}()

	if err := e.emit(NewDocumentStartEvent(!doc.ExplicitStart)); err != nil {
		return err
	}
	if doc.Root == nil {
		if err := e.emit(NewScalarEvent("", "", "", true, false, PlainStyle)); err != nil {
			return err
		}
	} else if err := e.node(doc.Root); err != nil {
		return err
	}
	return e.emit(NewDocumentEndEvent(!doc.ExplicitEnd))
}

// Close writes the stream end.
func (e *Emitter) Close() error {
	if e.closed {
		return e.closeErr
	}
	if err := e.init(); err != nil {
		return err
	}
	e.closed = true
	e.closeErr = e.emit(NewStreamEndEvent())
	return e.closeErr
}

func (e *Emitter) emit(ev Event) error {
	if err := e.sink.Emit(ev); err != nil {
		var ee *EmitError
		if errors.As(err, &ee) {
			return err
		}
		return &EmitError{Message: fmt.Sprintf("cannot emit %s event", ev.Type), Err: err}
	}
	return nil
}

func (e *Emitter) node(n Node) error {
	if n == nil {
		return &EmitError{Message: "cannot emit an empty node slot"}
	}
	if _, ok := e.emitted[n]; ok {
		return e.emit(NewAliasEvent(e.names[n]))
	}
	e.emitted[n] = struct{}{}
	return n.Accept(e)
}

func (e *Emitter) VisitScalar(n *Scalar) error {
	return e.emit(NewScalarEvent(e.names[n], n.tag, n.value, n.tag == "", false, n.style))
}

func (e *Emitter) VisitSequence(n *Sequence) error {
	if err := e.emit(NewSequenceStartEvent(e.names[n], n.tag, n.tag == "", n.style)); err != nil {
		return err
	}
	for _, c := range n.children {
		if err := e.node(c); err != nil {
			return err
		}
	}
	return e.emit(NewSequenceEndEvent())
}

func (e *Emitter) VisitMapping(n *Mapping) error {
	if err := e.emit(NewMappingStartEvent(e.names[n], n.tag, n.tag == "", n.style)); err != nil {
		return err
	}
	for _, entry := range n.entries {
		if err := e.node(entry.Key); err != nil {
			return err
		}
		if err := e.node(entry.Value); err != nil {
			return err
		}
	}
	return e.emit(NewMappingEndEvent())
}

// anchors decides the anchor of every node of the graph rooted at root.
// Existing anchors are kept, the first node in traversal order winning a
// name claimed twice. Nodes reachable more than once and losers of a name
// clash get a synthesized, unused name.
func (e *Emitter) anchors(root Node) map[Node]string {
	refs := make(map[Node]int)
	var order []Node
	var count func(Node)
	count = func(n Node) {
		if n == nil {
			return
		}
		refs[n]++
		if refs[n] > 1 {
			return
		}
		order = append(order, n)
		switch n := n.(type) {
		case *Sequence:
			for _, c := range n.children {
				count(c)
			}
		case *Mapping:
			for _, entry := range n.entries {
				count(entry.Key)
				count(entry.Value)
			}
		}
	}
	count(root)

	names := make(map[Node]string)
	used := make(map[string]struct{})
	for _, n := range order {
		a := n.Anchor()
		if a == "" {
			continue
		}
		if _, taken := used[a]; !taken {
			used[a] = struct{}{}
			names[n] = a
		}
	}

	seq := 0
	for _, n := range order {
		if _, ok := names[n]; ok {
			continue
		}
		if refs[n] < 2 && n.Anchor() == "" {
			continue
		}
		var name string
		for {
			seq++
			name = fmt.Sprintf("%s%03d", e.opts.AnchorPrefix, seq)
			if _, taken := used[name]; !taken {
				break
			}
		}
		used[name] = struct{}{}
		names[n] = name
		level.Debug(e.opts.Logger).Log("msg", "anchor synthesized", "anchor", name, "kind", n.Kind(), "refs", refs[n], "replaces", n.Anchor())
	}
	return names
}
