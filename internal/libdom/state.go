// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// LoadingState: per-document anchor table and pending alias patches.
//
// Loading runs in two phases. While events are consumed, every anchored
// node is registered and every alias either resolves at once or is queued
// with the slot to patch. Once the document end is reached, Resolve patches
// every queued slot against the final anchor table.

package libdom

import (
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// AliasResolver owns child slots that may be left pending during a load.
// [Node] implementations and [Document] satisfy it.
type AliasResolver interface {
	ResolveAliases(st *LoadingState) error
}

type pendingAlias struct {
	owner  AliasResolver
	anchor string
	mark   Mark
	assign func(Node)
}

type anchorEntry struct {
	node Node
	mark Mark
}

// LoadingState is the bookkeeping of one document load. It is not safe for
// concurrent use and must not be shared between documents.
type LoadingState struct {
	anchors map[string]anchorEntry
	pending []pendingAlias
	logger  log.Logger
}

// NewLoadingState returns an empty state. A nil logger discards output.
func NewLoadingState(logger log.Logger) *LoadingState {
	if logger == nil {
		logger = log.NewNopLogger()
	}
	return &LoadingState{
		anchors: make(map[string]anchorEntry),
		logger:  logger,
	}
}

// Register records n under anchor. Registering a name twice fails with a
// *DuplicateAnchorError.
func (st *LoadingState) Register(anchor string, n Node, mark Mark) error {
	if prev, ok := st.anchors[anchor]; ok {
		return &DuplicateAnchorError{Anchor: anchor, Mark: mark, Previous: prev.mark}
	}
	st.anchors[anchor] = anchorEntry{node: n, mark: mark}
	level.Debug(st.logger).Log("msg", "anchor registered", "anchor", anchor, "kind", n.Kind(), "pos", mark)
	return nil
}

// Lookup returns the node registered under anchor.
func (st *LoadingState) Lookup(anchor string) (Node, bool) {
	e, ok := st.anchors[anchor]
	return e.node, ok
}

// Reference resolves an alias found in a slot owned by owner. If anchor is
// already registered, assign is called at once and Reference returns true.
// Otherwise the patch is queued for [LoadingState.Resolve].
func (st *LoadingState) Reference(owner AliasResolver, anchor string, mark Mark, assign func(Node)) bool {
	if n, ok := st.Lookup(anchor); ok {
		assign(n)
		return true
	}
	st.pending = append(st.pending, pendingAlias{owner: owner, anchor: anchor, mark: mark, assign: assign})
	level.Debug(st.logger).Log("msg", "alias deferred", "anchor", anchor, "pos", mark)
	return false
}

// Pending returns the number of queued patches.
func (st *LoadingState) Pending() int {
	return len(st.pending)
}

// Resolve runs the resolve phase: each owner with queued patches resolves
// its own slots, in order of its first queued patch. The first alias whose
// anchor is still unknown fails with an *UndefinedAliasError.
func (st *LoadingState) Resolve() error {
	total := len(st.pending)
	var owners []AliasResolver
	seen := make(map[AliasResolver]struct{})
	for _, p := range st.pending {
		if _, ok := seen[p.owner]; !ok {
			seen[p.owner] = struct{}{}
			owners = append(owners, p.owner)
		}
	}
	for _, owner := range owners {
		if err := owner.ResolveAliases(st); err != nil {
			return err
		}
	}
	if len(st.pending) != 0 {
		p := st.pending[0]
		return &UndefinedAliasError{Anchor: p.anchor, Mark: p.mark}
	}
	level.Debug(st.logger).Log("msg", "aliases resolved", "forward", total, "anchors", len(st.anchors))
	return nil
}

// resolveFor patches the queued slots owned by owner and drops them from
// the queue.
func (st *LoadingState) resolveFor(owner AliasResolver) error {
	rest := st.pending[:0]
	var err error
	for _, p := range st.pending {
		if p.owner != owner || err != nil {
			rest = append(rest, p)
			continue
		}
		n, ok := st.Lookup(p.anchor)
		if !ok {
			err = &UndefinedAliasError{Anchor: p.anchor, Mark: p.mark}
			rest = append(rest, p)
			continue
		}
		p.assign(n)
	}
	st.pending = rest
	return err
}
