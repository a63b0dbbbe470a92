// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package yamldom_test

import (
	"bytes"
	"errors"
	"io"
	"strings"

	. "gopkg.in/check.v1"

	"go.yaml.in/yamldom"
)

var roundTripTests = []string{
	"a: 1\nb: [x, 'y']\n",
	"- &x v\n- *x\n",
	"&a [*a]\n",
	"&m\nself: *m\n",
	"key: \"quoted\"\n",
	"!custom {}\n",
	"one\n---\ntwo\n",
}

func (s *S) TestRoundTrip(c *C) {
	for _, input := range roundTripTests {
		docs, err := yamldom.ParseAll([]byte(input))
		c.Assert(err, IsNil, Commentf("input: %q", input))
		out, err := yamldom.FormatAll(docs)
		c.Assert(err, IsNil)
		c.Check(string(out), Equals, input)
	}
}

func (s *S) TestFormatEmptyStream(c *C) {
	out, err := yamldom.FormatAll(nil)
	c.Assert(err, IsNil)
	c.Check(out, HasLen, 0)

	docs, err := yamldom.ParseAll([]byte(""))
	c.Assert(err, IsNil)
	c.Check(docs, HasLen, 0)
	out, err = yamldom.FormatAll(docs)
	c.Assert(err, IsNil)
	c.Check(out, HasLen, 0)
}

func (s *S) TestParseErrors(c *C) {
	_, err := yamldom.Parse(nil)
	c.Check(err, ErrorMatches, "yaml: no documents in input")

	_, err = yamldom.Parse([]byte("a\n---\nb\n"))
	c.Check(err, ErrorMatches, "yaml: expected a single document in input")

	_, err = yamldom.Parse([]byte("a: [\n"))
	c.Check(errors.Is(err, yamldom.ErrParse), Equals, true)
	c.Check(err, ErrorMatches, `yaml: line \d+: .*`)

	_, err = yamldom.Parse([]byte("[*B, &B foo]\n"))
	c.Check(errors.Is(err, yamldom.ErrUndefinedAlias), Equals, true)

	_, err = yamldom.Parse([]byte("[&X 1, &X 2]\n"))
	c.Check(errors.Is(err, yamldom.ErrDuplicateAnchor), Equals, true)
	var derr *yamldom.DuplicateAnchorError
	c.Assert(errors.As(err, &derr), Equals, true)
	c.Check(derr.Anchor, Equals, "X")
}

func (s *S) TestParseCycle(c *C) {
	doc, err := yamldom.Parse([]byte("&a [*a]\n"))
	c.Assert(err, IsNil)
	root, ok := doc.Root.(*yamldom.Sequence)
	c.Assert(ok, Equals, true)
	c.Assert(root.Len(), Equals, 1)
	c.Check(root.At(0) == yamldom.Node(root), Equals, true)
	c.Check(root.Anchor(), Equals, "a")

	anchored, ok := doc.Anchored("a")
	c.Check(ok, Equals, true)
	c.Check(anchored == yamldom.Node(root), Equals, true)

	other, err := yamldom.Parse([]byte("&b [*b]\n"))
	c.Assert(err, IsNil)
	c.Check(doc.Equal(other), Equals, true)
	c.Check(doc.Hash(), Equals, other.Hash())
}

func (s *S) TestParseStyles(c *C) {
	doc, err := yamldom.Parse([]byte("a: 'q'\nb: [1]\n"))
	c.Assert(err, IsNil)
	root := doc.Root.(*yamldom.Mapping)
	c.Check(root.Style(), Equals, yamldom.BlockStyle)

	a, ok := root.Lookup("a")
	c.Assert(ok, Equals, true)
	c.Check(a.(*yamldom.Scalar).Style(), Equals, yamldom.SingleQuotedStyle)
	c.Check(yamldom.ResolvedTag(a), Equals, yamldom.StrTag)

	b, ok := root.Lookup("b")
	c.Assert(ok, Equals, true)
	c.Check(b.(*yamldom.Sequence).Style(), Equals, yamldom.FlowStyle)
	c.Check(yamldom.ResolvedTag(b.(*yamldom.Sequence).At(0)), Equals, yamldom.IntTag)

	_, ok = root.Lookup("c")
	c.Check(ok, Equals, false)
}

func (s *S) TestFormatSharedNode(c *C) {
	x := yamldom.NewScalar("x")
	root := yamldom.NewMapping().WithStyle(yamldom.BlockStyle)
	root.Set(yamldom.NewScalar("a"), x)
	root.Set(yamldom.NewScalar("b"), x)

	out, err := yamldom.Format(yamldom.NewDocument(root))
	c.Assert(err, IsNil)
	c.Check(string(out), Equals, "a: &id001 x\nb: *id001\n")
	c.Check(x.Anchor(), Equals, "")

	out, err = yamldom.Format(yamldom.NewDocument(root), yamldom.WithAnchorPrefix("ref"))
	c.Assert(err, IsNil)
	c.Check(string(out), Equals, "a: &ref001 x\nb: *ref001\n")
}

func (s *S) TestOptsYAML(c *C) {
	opt, err := yamldom.OptsYAML("indent: 4\n")
	c.Assert(err, IsNil)
	doc, err := yamldom.Parse([]byte("a:\n  b: c\n"))
	c.Assert(err, IsNil)
	out, err := yamldom.Format(doc, opt)
	c.Assert(err, IsNil)
	c.Check(string(out), Equals, "a:\n    b: c\n")

	// Later options override earlier ones.
	out, err = yamldom.Format(doc, yamldom.Options(opt, yamldom.WithIndent(3)))
	c.Assert(err, IsNil)
	c.Check(string(out), Equals, "a:\n   b: c\n")

	_, err = yamldom.OptsYAML("")
	c.Check(err, IsNil)

	_, err = yamldom.OptsYAML("bogus: 1\n")
	c.Check(err, ErrorMatches, "(?s).*field bogus not found.*")

	opt, err = yamldom.OptsYAML("max-depth: 2\n")
	c.Assert(err, IsNil)
	_, err = yamldom.Parse([]byte("[[[x]]]\n"), opt)
	c.Check(errors.Is(err, yamldom.ErrParse), Equals, true)
}

func (s *S) TestEventsAndLoadEvents(c *C) {
	doc, err := yamldom.Parse([]byte("- &x v\n- *x\n"))
	c.Assert(err, IsNil)

	events, err := yamldom.Events([]*yamldom.Document{doc})
	c.Assert(err, IsNil)
	var types []yamldom.EventType
	for _, e := range events {
		types = append(types, e.Type)
	}
	c.Check(types, DeepEquals, []yamldom.EventType{
		yamldom.StreamStartEvent,
		yamldom.DocumentStartEvent,
		yamldom.SequenceStartEvent,
		yamldom.ScalarEvent,
		yamldom.AliasEvent,
		yamldom.SequenceEndEvent,
		yamldom.DocumentEndEvent,
		yamldom.StreamEndEvent,
	})
	c.Check(events[3].Anchor, Equals, "x")
	c.Check(events[4].Anchor, Equals, "x")

	docs, err := yamldom.LoadEvents(yamldom.NewEventBuffer(events...))
	c.Assert(err, IsNil)
	c.Assert(docs, HasLen, 1)
	c.Check(docs[0].Equal(doc), Equals, true)
	seq := docs[0].Root.(*yamldom.Sequence)
	c.Check(seq.At(0) == seq.At(1), Equals, true)
}

func (s *S) TestEventLoaderForwardAlias(c *C) {
	buf := yamldom.NewEventBuffer(
		yamldom.NewStreamStartEvent(),
		yamldom.NewDocumentStartEvent(true),
		yamldom.NewSequenceStartEvent("", "", true, yamldom.BlockStyle),
		yamldom.NewAliasEvent("later"),
		yamldom.NewScalarEvent("later", "", "v", true, false, yamldom.PlainStyle),
		yamldom.NewSequenceEndEvent(),
		yamldom.NewDocumentEndEvent(true),
		yamldom.NewStreamEndEvent(),
	)
	l, err := yamldom.NewEventLoader(buf)
	c.Assert(err, IsNil)
	doc, err := l.Load()
	c.Assert(err, IsNil)
	seq := doc.Root.(*yamldom.Sequence)
	c.Check(seq.At(0) == seq.At(1), Equals, true)

	_, err = l.Load()
	c.Check(err, Equals, io.EOF)
}

func (s *S) TestStreamingLoader(c *C) {
	l, err := yamldom.NewLoader(strings.NewReader("a\n---\nb\n---\nc\n"))
	c.Assert(err, IsNil)
	var values []string
	for {
		doc, err := l.Load()
		if err == io.EOF {
			break
		}
		c.Assert(err, IsNil)
		values = append(values, doc.Root.(*yamldom.Scalar).Value())
	}
	c.Check(values, DeepEquals, []string{"a", "b", "c"})

	l, err = yamldom.NewLoader(strings.NewReader("a\n---\nb\n"), yamldom.WithSingleDocument(true))
	c.Assert(err, IsNil)
	_, err = l.Load()
	c.Assert(err, IsNil)
	_, err = l.Load()
	c.Check(err, Equals, io.EOF)

	_, err = yamldom.NewLoader(strings.NewReader(""), yamldom.WithMaxDepth(-1))
	c.Check(err, ErrorMatches, "yaml: max depth cannot be negative")
}

func (s *S) TestDumper(c *C) {
	var buf bytes.Buffer
	d, err := yamldom.NewDumper(&buf)
	c.Assert(err, IsNil)
	c.Assert(d.Dump(yamldom.NewDocument(yamldom.NewScalar("a"))), IsNil)
	c.Assert(d.Dump(yamldom.NewDocument(yamldom.NewScalar("b"))), IsNil)
	c.Assert(d.Close(), IsNil)
	c.Check(buf.String(), Equals, "a\n---\nb\n")

	err = d.Dump(yamldom.NewDocument(yamldom.NewScalar("c")))
	c.Check(errors.Is(err, yamldom.ErrEmit), Equals, true)

	_, err = yamldom.NewDumper(&buf, yamldom.WithIndent(1))
	c.Check(err, ErrorMatches, "yaml: indent must be between 2 and 9")
}

func (s *S) TestEmitter(c *C) {
	buf := yamldom.NewEventBuffer()
	e, err := yamldom.NewEmitter(buf)
	c.Assert(err, IsNil)
	c.Assert(e.Emit(yamldom.NewDocument(yamldom.NewScalar("a"))), IsNil)
	c.Assert(e.Close(), IsNil)
	c.Check(buf.Events(), HasLen, 5)
}

func (s *S) TestCloneKeepsSharing(c *C) {
	doc, err := yamldom.Parse([]byte("&m\nself: *m\n"))
	c.Assert(err, IsNil)
	clone := doc.Clone()
	c.Check(clone.Root == doc.Root, Equals, false)
	c.Check(clone.Equal(doc), Equals, true)

	m := clone.Root.(*yamldom.Mapping)
	self, _ := m.Lookup("self")
	c.Check(self == yamldom.Node(m), Equals, true)
}

func (s *S) TestVisitor(c *C) {
	doc, err := yamldom.Parse([]byte("a: [b, c]\n"))
	c.Assert(err, IsNil)
	var kinds []string
	v := yamldom.VisitorFuncs{
		Scalar:   func(*yamldom.Scalar) error { kinds = append(kinds, "scalar"); return nil },
		Sequence: func(*yamldom.Sequence) error { kinds = append(kinds, "sequence"); return nil },
		Mapping:  func(*yamldom.Mapping) error { kinds = append(kinds, "mapping"); return nil },
	}
	for n := range doc.AllNodes() {
		c.Assert(n.Accept(v), IsNil)
	}
	c.Check(kinds, DeepEquals, []string{"mapping", "scalar", "sequence", "scalar", "scalar"})
}
