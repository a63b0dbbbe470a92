// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Loader stage: builds document trees out of an event stream.
// Nodes are constructed depth first; anchors register before children load
// so that a child may alias its own ancestor, and aliases to anchors not yet
// seen are patched once the document end is consumed.

package libdom

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-kit/log/level"
)

// Loader produces documents out of an [EventSource].
type Loader struct {
	src      EventSource
	opts     *Options
	event    Event
	peeked   bool
	started  bool
	finished bool
	err      error
	depth    int
}

// NewLoader returns a Loader pulling events from src.
func NewLoader(src EventSource, opts ...Option) (*Loader, error) {
	o, err := ApplyOptions(opts...)
	if err != nil {
		return nil, err
	}
	return &Loader{src: src, opts: o}, nil
}

// LoadAll loads every document of the stream.
func LoadAll(src EventSource, opts ...Option) ([]*Document, error) {
	l, err := NewLoader(src, opts...)
	if err != nil {
		return nil, err
	}
	var docs []*Document
	for {
		doc, err := l.Load()
		if err == io.EOF {
			return docs, nil
		}
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
}

// Load returns the next document of the stream, or io.EOF once the stream
// end has been consumed. A document either loads completely, with every
// alias resolved, or Load fails and the Loader keeps returning that error.
func (l *Loader) Load() (*Document, error) {
	if l.err != nil {
		return nil, l.err
	}
	if l.finished {
		return nil, io.EOF
	}
	doc, err := l.load()
	if err != nil {
		l.err = err
		return nil, err
	}
	if doc == nil || l.opts.SingleDocument {
		l.finished = true
	}
	if doc == nil {
		return nil, io.EOF
	}
	return doc, nil
}

func (l *Loader) load() (*Document, error) {
	if !l.started {
		if _, err := l.expect(StreamStartEvent); err != nil {
			return nil, err
		}
		l.started = true
	}
	t, err := l.peek()
	if err != nil {
		return nil, err
	}
	if t == StreamEndEvent {
		_, err := l.expect(StreamEndEvent)
		return nil, err
	}
	return l.document()
}

// peek reads the next event into l.event, if not read yet, and returns its
// type.
func (l *Loader) peek() (EventType, error) {
	if l.peeked {
		return l.event.Type, nil
	}
	e, err := l.src.Next()
	if err != nil {
		if err == io.EOF {
			return NoEvent, &ParseError{Mark: l.event.Mark, Message: "unexpected end of event stream"}
		}
		if errors.Is(err, ErrParse) || errors.Is(err, ErrUndefinedAlias) || errors.Is(err, ErrDuplicateAnchor) {
			return NoEvent, err
		}
		return NoEvent, &ParseError{Mark: l.event.Mark, Err: err}
	}
	l.event = e
	l.peeked = true
	return e.Type, nil
}

// expect consumes an event from the event stream and checks that it's of
// the expected type.
func (l *Loader) expect(want EventType) (Event, error) {
	got, err := l.peek()
	if err != nil {
		return Event{}, err
	}
	if got != want {
		return Event{}, &ParseError{
			Mark:    l.event.Mark,
			Message: fmt.Sprintf("expected %s event but got %s", want, got),
		}
	}
	l.peeked = false
	return l.event, nil
}

func (l *Loader) document() (*Document, error) {
	start, err := l.expect(DocumentStartEvent)
	if err != nil {
		return nil, err
	}
	doc := &Document{ExplicitStart: !start.Implicit}
	st := NewLoadingState(l.opts.Logger)
	t, err := l.peek()
	if err != nil {
		return nil, err
	}
	if t != DocumentEndEvent {
		if err := l.child(st, doc, func(n Node) { doc.Root = n }); err != nil {
			return nil, err
		}
	}
	end, err := l.expect(DocumentEndEvent)
	if err != nil {
		return nil, err
	}
	doc.ExplicitEnd = !end.Implicit
	if err := st.Resolve(); err != nil {
		return nil, err
	}
	level.Debug(l.opts.Logger).Log("msg", "document loaded", "pos", start.Mark, "explicit_start", doc.ExplicitStart)
	return doc, nil
}

// child loads the next node into the slot of owner described by assign.
// An alias is handed to the loading state, which assigns it now or once
// the document completes.
func (l *Loader) child(st *LoadingState, owner AliasResolver, assign func(Node)) error {
	t, err := l.peek()
	if err != nil {
		return err
	}
	if t == AliasEvent {
		e, err := l.expect(AliasEvent)
		if err != nil {
			return err
		}
		st.Reference(owner, e.Anchor, e.Mark, assign)
		return nil
	}
	n, err := l.node(st)
	if err != nil {
		return err
	}
	assign(n)
	return nil
}

// node loads the node starting at the next event, dispatching on its type.
func (l *Loader) node(st *LoadingState) (Node, error) {
	t, err := l.peek()
	if err != nil {
		return nil, err
	}
	switch t {
	case ScalarEvent:
		return l.scalar(st)
	case SequenceStartEvent:
		return l.sequence(st)
	case MappingStartEvent:
		return l.mapping(st)
	}
	return nil, &ParseError{
		Mark:    l.event.Mark,
		Message: fmt.Sprintf("expected scalar, sequence start or mapping start event but got %s", t),
	}
}

func (l *Loader) anchor(st *LoadingState, n Node, e Event) error {
	if e.Anchor == "" {
		return nil
	}
	n.SetAnchor(e.Anchor)
	return st.Register(e.Anchor, n, e.Mark)
}

func (l *Loader) enter() error {
	l.depth++
	if l.depth > l.opts.MaxDepth {
		return &ParseError{
			Mark:    l.event.Mark,
			Message: fmt.Sprintf("exceeded max depth of %d", l.opts.MaxDepth),
		}
	}
	return nil
}

func (l *Loader) scalar(st *LoadingState) (Node, error) {
	e, err := l.expect(ScalarEvent)
	if err != nil {
		return nil, err
	}
	n := &Scalar{
		base:  base{tag: e.Tag, mark: e.Mark},
		value: e.Value,
		style: e.ScalarStyle(),
	}
	if err := l.anchor(st, n, e); err != nil {
		return nil, err
	}
	return n, nil
}

func (l *Loader) sequence(st *LoadingState) (Node, error) {
	e, err := l.expect(SequenceStartEvent)
	if err != nil {
		return nil, err
	}
	if err := l.enter(); err != nil {
		return nil, err
	}
	defer func() { l.depth-- }()

	n := &Sequence{
		base:  base{tag: e.Tag, mark: e.Mark},
		style: e.CollectionStyle(),
	}
	if err := l.anchor(st, n, e); err != nil {
		return nil, err
	}
	for {
		t, err := l.peek()
		if err != nil {
			return nil, err
		}
		if t == SequenceEndEvent {
			break
		}
		i := len(n.children)
		n.children = append(n.children, nil)
		if err := l.child(st, n, func(c Node) { n.children[i] = c }); err != nil {
			return nil, err
		}
	}
	if _, err := l.expect(SequenceEndEvent); err != nil {
		return nil, err
	}
	return n, nil
}

func (l *Loader) mapping(st *LoadingState) (Node, error) {
	e, err := l.expect(MappingStartEvent)
	if err != nil {
		return nil, err
	}
	if err := l.enter(); err != nil {
		return nil, err
	}
	defer func() { l.depth-- }()

	n := &Mapping{
		base:  base{tag: e.Tag, mark: e.Mark},
		style: e.CollectionStyle(),
	}
	if err := l.anchor(st, n, e); err != nil {
		return nil, err
	}
	for {
		t, err := l.peek()
		if err != nil {
			return nil, err
		}
		if t == MappingEndEvent {
			break
		}
		i := len(n.entries)
		n.entries = append(n.entries, Entry{})
		if err := l.child(st, n, func(k Node) { n.entries[i].Key = k }); err != nil {
			return nil, err
		}
		if err := l.child(st, n, func(v Node) { n.entries[i].Value = v }); err != nil {
			return nil, err
		}
	}
	if _, err := l.expect(MappingEndEvent); err != nil {
		return nil, err
	}
	return n, nil
}
