// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

package libdom

// Visitor is implemented by consumers that dispatch on the node variant.
// [Node.Accept] calls exactly one method and never recurses; a visitor that
// wants descendants visited calls Accept on them itself.
type Visitor interface {
	VisitScalar(n *Scalar) error
	VisitSequence(n *Sequence) error
	VisitMapping(n *Mapping) error
}

// VisitorFuncs adapts plain functions to a [Visitor]. A nil field makes the
// corresponding visit a no-op.
type VisitorFuncs struct {
	Scalar   func(n *Scalar) error
	Sequence func(n *Sequence) error
	Mapping  func(n *Mapping) error
}

func (f VisitorFuncs) VisitScalar(n *Scalar) error {
	if f.Scalar == nil {
		return nil
	}
	return f.Scalar(n)
}

func (f VisitorFuncs) VisitSequence(n *Sequence) error {
	if f.Sequence == nil {
		return nil
	}
	return f.Sequence(n)
}

func (f VisitorFuncs) VisitMapping(n *Mapping) error {
	if f.Mapping == nil {
		return nil
	}
	return f.Mapping(n)
}
