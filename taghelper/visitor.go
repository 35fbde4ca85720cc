// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package taghelper

import (
	"github.com/albertocavalcante/razortags/internal/names"
	"github.com/albertocavalcante/razortags/symbols"
)

// Visitor selects the types that can become tag helpers.
type Visitor struct {
	marker string
}

// NewVisitor returns a visitor for types implementing the interface with the
// given metadata name. An empty marker selects ITagHelper.
func NewVisitor(marker string) *Visitor {
	if marker == "" {
		marker = names.TagHelperInterface
	}
	return &Visitor{marker: marker}
}

// Marker returns the metadata name candidates must implement.
func (v *Visitor) Marker() string { return v.marker }

// IsCandidate reports whether t is a public, concrete, non-generic class
// that implements the marker through its hierarchy.
func (v *Visitor) IsCandidate(t symbols.Type) bool {
	if t == nil {
		return false
	}
	return t.Kind() == symbols.KindClass &&
		!t.IsAbstract() &&
		t.Arity() == 0 &&
		symbols.IsPublic(t) &&
		symbols.Implements(t, v.marker)
}

// Filter returns the candidates among types, in input order.
func (v *Visitor) Filter(types []symbols.Type) []symbols.Type {
	var out []symbols.Type
	for _, t := range types {
		if v.IsCandidate(t) {
			out = append(out, t)
		}
	}
	return out
}
