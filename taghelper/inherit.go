// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package taghelper

import (
	"strings"

	"github.com/albertocavalcante/razortags/internal/names"
	"github.com/albertocavalcante/razortags/symbols"
)

// origin records where a per-declaration value came from.
type origin int

const (
	unset origin = iota
	inherited
	declared
)

// resolved is a value looked up bottom-up along a declaration chain.
type resolved[T any] struct {
	value  T
	origin origin
}

func (r resolved[T]) ok() bool { return r.origin != unset }

// resolve walks chain from the most derived element. The first element for
// which read reports a value wins: it is declared when it is chain[0] and
// inherited otherwise. Values are never merged across the chain.
func resolve[E, T any](chain []E, read func(E) (T, bool)) resolved[T] {
	for i, e := range chain {
		v, ok := read(e)
		if !ok {
			continue
		}
		if i == 0 {
			return resolved[T]{value: v, origin: declared}
		}
		return resolved[T]{value: v, origin: inherited}
	}
	return resolved[T]{}
}

// attributesOf returns a reader that yields every attribute of the given
// well-known type declared on one element.
func attributesOf[E any](full string, attrs func(E) []symbols.Attribute) func(E) ([]symbols.Attribute, bool) {
	return func(e E) ([]symbols.Attribute, bool) {
		found := symbols.FilterAttributes(attrs(e), full)
		return found, len(found) > 0
	}
}

func typeAttributes(t symbols.Type) []symbols.Attribute         { return t.Attributes() }
func propertyAttributes(p symbols.Property) []symbols.Attribute { return p.Attributes }

// hiddenReader reports whether an element declares EditorBrowsable(Never).
// Any other declared state counts as visible and stops the walk.
func hiddenReader[E any](attrs func(E) []symbols.Attribute) func(E) (bool, bool) {
	return func(e E) (bool, bool) {
		a, ok := symbols.FindAttribute(attrs(e), names.AttrEditorBrowsable)
		if !ok {
			return false, false
		}
		v, ok := a.Arg(0)
		if !ok {
			return false, true
		}
		switch v.Kind {
		case symbols.ValueEnum:
			return v.Text == "Never" || strings.HasSuffix(v.Text, ".Never"), true
		case symbols.ValueInt:
			return v.Int == 1, true
		}
		return false, true
	}
}

// propertyChain returns every declaration of the property name along the
// type hierarchy, most derived first.
func propertyChain(hierarchy []symbols.Type, name string) []symbols.Property {
	var chain []symbols.Property
	for _, h := range hierarchy {
		for _, p := range symbols.DeclaredProperties(h) {
			if p.Name == name {
				chain = append(chain, p)
			}
		}
	}
	return chain
}

// IsHidden reports whether the nearest type in the hierarchy of t that
// declares EditorBrowsable marks it EditorBrowsableState.Never.
func IsHidden(t symbols.Type) bool {
	return resolve(symbols.Hierarchy(t), hiddenReader(typeAttributes)).value
}

// IsPropertyHidden reports whether the nearest declaration of property name
// along the hierarchy of t that declares EditorBrowsable marks it
// EditorBrowsableState.Never.
func IsPropertyHidden(t symbols.Type, name string) bool {
	return isPropertyHidden(symbols.Hierarchy(t), name)
}

func isPropertyHidden(hierarchy []symbols.Type, name string) bool {
	return resolve(propertyChain(hierarchy, name), hiddenReader(propertyAttributes)).value
}
