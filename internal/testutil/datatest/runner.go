// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package datatest

import (
	"fmt"
	"testing"
)

// TestHandler runs a single test case.
type TestHandler func(t *testing.T, tc map[string]any)

// TestRunner dispatches cases to the handler registered for their type.
type TestRunner struct {
	handlers map[string]TestHandler
}

// NewTestRunner creates a runner with no handlers.
func NewTestRunner() *TestRunner {
	return &TestRunner{handlers: make(map[string]TestHandler)}
}

// RegisterHandler registers the handler for testType.
func (r *TestRunner) RegisterHandler(testType string, handler TestHandler) {
	r.handlers[testType] = handler
}

// RunWithCases runs every case as a subtest named after its "name" field.
func (r *TestRunner) RunWithCases(t *testing.T, cases []map[string]any) {
	t.Helper()
	for i, tc := range cases {
		name, _ := tc["name"].(string)
		if name == "" {
			name = fmt.Sprintf("case-%d", i)
		}
		testType, _ := tc["type"].(string)
		t.Run(name, func(t *testing.T) {
			handler, ok := r.handlers[testType]
			if !ok {
				t.Fatalf("unknown test type %q", testType)
			}
			handler(t, tc)
		})
	}
}

// RunTestCases loads cases with loadFunc and runs them with handlers.
func RunTestCases(t *testing.T, loadFunc func() ([]map[string]any, error), handlers map[string]TestHandler) {
	t.Helper()
	cases, err := loadFunc()
	if err != nil {
		t.Fatalf("failed to load test cases: %v", err)
	}
	runner := NewTestRunner()
	for testType, handler := range handlers {
		runner.RegisterHandler(testType, handler)
	}
	runner.RunWithCases(t, cases)
}

// GetString returns the string field key of tc.
func GetString(tc map[string]any, key string) (string, bool) {
	s, ok := tc[key].(string)
	return s, ok
}

// RequireString returns the string field key of tc, failing the test when
// it is missing.
func RequireString(t *testing.T, tc map[string]any, key string) string {
	t.Helper()
	s, ok := GetString(tc, key)
	if !ok {
		t.Fatalf("test case lacks string field %q", key)
	}
	return s
}

// RequireStrings returns the field key of tc as a list of strings.
func RequireStrings(t *testing.T, tc map[string]any, key string) []string {
	t.Helper()
	items, ok := tc[key].([]any)
	if !ok {
		t.Fatalf("test case lacks list field %q", key)
	}
	out := make([]string, len(items))
	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			t.Fatalf("field %q: item %d is %T, not a string", key, i, item)
		}
		out[i] = s
	}
	return out
}
