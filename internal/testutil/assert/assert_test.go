// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package assert

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
)

func TestAssertEqual_Success(t *testing.T) {
	Equal(t, 2, 2)
	Equal(t, "ok", "ok")
}

func TestAssertDeepEqual_Success(t *testing.T) {
	DeepEqual(t, []int{1, 2, 3}, []int{1, 2, 3})
	DeepEqual(t, map[string]int{"a": 1}, map[string]int{"a": 1})
}

func TestErrorMatches_Success(t *testing.T) {
	ErrorMatches(t, `unknown anchor '\w+'`, fmt.Errorf("unknown anchor 'B' referenced"))
}

func TestErrorIsAndAs_Success(t *testing.T) {
	base := errors.New("base")
	wrapped := fmt.Errorf("outer: %w", base)
	ErrorIs(t, wrapped, base)

	var pe *fs
	ErrorAs(t, fmt.Errorf("wrap: %w", &fs{"x"}), &pe)
	Equal(t, "x", pe.name)
}

func TestIsNil_NotNil_Success(t *testing.T) {
	var p *int
	IsNil(t, p)

	var w io.Writer
	IsNil(t, w)

	x := 0
	NotNil(t, &x)
	NotNil(t, make([]int, 0))
}

func TestAssertTrueAndFalse_Success(t *testing.T) {
	True(t, true)
	False(t, false)
}

/************** failure-path checks **************/

type fs struct{ name string }

func (e *fs) Error() string { return e.name }

type fakeTB struct {
	failed bool
	msg    string
}

func (f *fakeTB) Helper() {}

func (f *fakeTB) Fatalf(format string, args ...any) {
	f.failed = true
	f.msg = fmt.Sprintf(format, args...)
}

func TestFailures(t *testing.T) {
	tests := []struct {
		name string
		run  func(tb miniTB)
		want string
	}{
		{"equal", func(tb miniTB) { Equal(tb, 1, 2) }, "got 2; want 1"},
		{"equalf", func(tb miniTB) { Equalf(tb, "a", "b", "key %s", "k") }, "got b; want a - key k"},
		{"deep-equal", func(tb miniTB) { DeepEqual(tb, []int{1}, []int{2}) }, "mismatch (-want +got)"},
		{"no-error", func(tb miniTB) { NoError(tb, errors.New("boom")) }, "unexpected error: boom"},
		{"error-matches-nil", func(tb miniTB) { ErrorMatches(tb, "x", nil) }, "got nil"},
		{"error-matches", func(tb miniTB) { ErrorMatches(tb, "^x$", errors.New("y")) }, "does not match"},
		{"error-is", func(tb miniTB) { ErrorIs(tb, errors.New("a"), io.EOF) }, "want an error matching EOF"},
		{"error-as", func(tb miniTB) {
			var target *fs
			ErrorAs(tb, errors.New("plain"), &target)
		}, "want *assert.fs"},
		{"error-as-non-pointer", func(tb miniTB) { ErrorAs(tb, errors.New("e"), fs{}) }, "a pointer was expected"},
		{"is-nil", func(tb miniTB) { IsNil(tb, 1) }, "got non-nil"},
		{"not-nil", func(tb miniTB) { NotNil(tb, nil) }, "got nil; want non-nil"},
		{"true", func(tb miniTB) { True(tb, false) }, "got false; want true"},
		{"false", func(tb miniTB) { Falsef(tb, true, "case %d", 3) }, "got true; want false - case 3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tb := &fakeTB{}
			tt.run(tb)
			if !tb.failed {
				t.Fatalf("assertion did not fail")
			}
			if !strings.Contains(tb.msg, tt.want) {
				t.Fatalf("message %q does not contain %q", tb.msg, tt.want)
			}
		})
	}
}
