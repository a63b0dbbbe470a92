// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package libdom

import (
	"bytes"
	"strings"
	"testing"

	"github.com/go-kit/log"

	"go.yaml.in/yamldom/internal/testutil/assert"
)

func TestRegisterAndLookup(t *testing.T) {
	st := NewLoadingState(nil)
	n := NewScalar("v")
	assert.NoError(t, st.Register("a", n, Mark{Line: 1, Column: 1}))

	got, ok := st.Lookup("a")
	assert.True(t, ok)
	assert.True(t, got == Node(n))
	_, ok = st.Lookup("b")
	assert.False(t, ok)

	err := st.Register("a", NewScalar("w"), Mark{Line: 4, Column: 2})
	assert.ErrorIs(t, err, ErrDuplicateAnchor)
	assert.ErrorMatches(t, `^yaml: line 4, column 2: duplicate anchor 'a' \(first defined at line 1, column 1\)$`, err)

	got, _ = st.Lookup("a")
	assert.True(t, got == Node(n))
}

func TestReferenceImmediate(t *testing.T) {
	st := NewLoadingState(nil)
	target := NewScalar("t")
	assert.NoError(t, st.Register("t", target, Mark{}))

	seq := NewSequence(nil)
	ok := st.Reference(seq, "t", Mark{}, func(n Node) { seq.Set(0, n) })
	assert.True(t, ok)
	assert.True(t, seq.At(0) == Node(target))
	assert.Equal(t, 0, st.Pending())
	assert.NoError(t, st.Resolve())
}

func TestReferenceDeferred(t *testing.T) {
	st := NewLoadingState(nil)
	seq := NewSequence(nil)
	m := NewMapping(Entry{})

	assert.False(t, st.Reference(seq, "later", Mark{}, func(n Node) { seq.Set(0, n) }))
	assert.False(t, st.Reference(m, "later", Mark{}, func(n Node) { m.SetEntryAt(0, Entry{Key: n, Value: n}) }))
	assert.Equal(t, 2, st.Pending())
	assert.IsNil(t, seq.At(0))

	target := NewScalar("t")
	assert.NoError(t, st.Register("later", target, Mark{}))
	assert.NoError(t, st.Resolve())
	assert.Equal(t, 0, st.Pending())
	assert.True(t, seq.At(0) == Node(target))
	assert.True(t, m.EntryAt(0).Value == Node(target))
}

func TestResolveForOnlyPatchesOwner(t *testing.T) {
	st := NewLoadingState(nil)
	a := NewSequence(nil)
	b := NewSequence(nil)
	st.Reference(a, "x", Mark{}, func(n Node) { a.Set(0, n) })
	st.Reference(b, "x", Mark{}, func(n Node) { b.Set(0, n) })
	assert.NoError(t, st.Register("x", NewScalar("x"), Mark{}))

	assert.NoError(t, a.ResolveAliases(st))
	assert.NotNil(t, a.At(0))
	assert.IsNil(t, b.At(0))
	assert.Equal(t, 1, st.Pending())
}

func TestResolveUndefined(t *testing.T) {
	st := NewLoadingState(nil)
	seq := NewSequence(nil, nil)
	st.Reference(seq, "B", Mark{Line: 3, Column: 5}, func(n Node) { seq.Set(0, n) })

	err := st.Resolve()
	assert.ErrorIs(t, err, ErrUndefinedAlias)
	assert.ErrorMatches(t, `^yaml: line 3, column 5: unknown anchor 'B' referenced$`, err)

	var uerr *UndefinedAliasError
	assert.ErrorAs(t, err, &uerr)
	assert.Equal(t, "B", uerr.Anchor)
}

func TestResolveReportsScalarOwner(t *testing.T) {
	st := NewLoadingState(nil)
	s := NewScalar("s")
	st.Reference(s, "x", Mark{}, func(Node) {})
	assert.ErrorIs(t, st.Resolve(), ErrUnsupportedOperation)
}

func TestLoadingStateLogs(t *testing.T) {
	var buf bytes.Buffer
	st := NewLoadingState(log.NewLogfmtLogger(&buf))
	seq := NewSequence(nil)
	st.Reference(seq, "a", Mark{}, func(n Node) { seq.Set(0, n) })
	assert.NoError(t, st.Register("a", NewScalar("v"), Mark{Line: 1, Column: 1}))
	assert.NoError(t, st.Resolve())

	out := buf.String()
	for _, want := range []string{
		`msg="alias deferred" anchor=a`,
		`msg="anchor registered" anchor=a kind=scalar`,
		`msg="aliases resolved" forward=1 anchors=1`,
	} {
		assert.Truef(t, strings.Contains(out, want), "log output %q lacks %q", out, want)
	}
}
