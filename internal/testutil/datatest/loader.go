// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Package datatest runs table tests whose cases live in YAML files.
//
// A case file is a sequence of cases. Each case is either a mapping with a
// "type" key, or a mapping with a single key naming the type whose value
// holds the remaining fields:
//
//	- events:
//	    name: anchor and alias
//	    yaml: "- &x v\n- *x\n"
package datatest

import (
	"fmt"
	"os"
)

// LoadYAMLFunc decodes YAML data into generic Go values.
// Callers supply their own decoder so this package stays parser agnostic.
type LoadYAMLFunc func([]byte) (any, error)

// LoadTestCasesFromFile reads filename, decodes it with loadYAML and
// returns its cases in the normalized form.
func LoadTestCasesFromFile(filename string, loadYAML LoadYAMLFunc) ([]map[string]any, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	raw, err := loadYAML(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}

	items, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("%s: expected a sequence of cases, got %T", filename, raw)
	}

	cases := make([]map[string]any, 0, len(items))
	for i, item := range items {
		tc, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%s: case %d: expected a mapping, got %T", filename, i, item)
		}
		cases = append(cases, NormalizeTypeAsKey(tc))
	}
	return cases, nil
}

// NormalizeTypeAsKey rewrites {"events": {...}} as {"type": "events", ...}.
// Maps already carrying a "type" key are returned unchanged.
func NormalizeTypeAsKey(tc map[string]any) map[string]any {
	if len(tc) != 1 {
		return tc
	}
	if _, ok := tc["type"]; ok {
		return tc
	}
	for key, value := range tc {
		fields, ok := value.(map[string]any)
		if !ok || !IsTypeConstant(key) {
			return tc
		}
		out := map[string]any{"type": key}
		for k, v := range fields {
			out[k] = v
		}
		return out
	}
	return tc
}

// IsTypeConstant reports whether s looks like a case type name:
// letters, digits, underscores and hyphens only.
func IsTypeConstant(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9', c == '_', c == '-':
		default:
			return false
		}
	}
	return true
}
