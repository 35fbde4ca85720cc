// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package typename

import (
	"slices"

	"github.com/albertocavalcante/razortags/internal/names"
)

// GlobalPrefix qualifies a reference from the global namespace.
const GlobalPrefix = "global::"

// Binding is the argument bound to a type parameter. The zero value is
// Unspecified.
type Binding struct {
	typeName  string
	specified bool
}

// Unspecified marks a type parameter whose argument is not known. It is
// rewritten to System.Object.
var Unspecified = Binding{}

// Bind binds a type parameter to typeName.
func Bind(typeName string) Binding {
	return Binding{typeName: typeName, specified: true}
}

// IsSpecified reports whether the binding names a concrete argument.
func (b Binding) IsSpecified() bool { return b.specified }

// TypeName returns the replacement text for the bound parameter.
func (b Binding) TypeName() string {
	if !b.specified {
		return names.TypeObject
	}
	return b.typeName
}

// GenericRewriter substitutes type parameters with their bound arguments.
type GenericRewriter struct {
	bindings map[string]Binding
}

// NewGenericRewriter returns a rewriter for bindings, keyed by type parameter
// name.
func NewGenericRewriter(bindings map[string]Binding) *GenericRewriter {
	return &GenericRewriter{bindings: bindings}
}

// Rewrite replaces every standalone reference to a bound type parameter.
// Identifiers that name a tuple element or carry their own type argument list
// are left alone. So is every segment of a dotted or alias-qualified name,
// the leading one included: TItem1.TItem2 keeps TItem1.
func (r *GenericRewriter) Rewrite(typeName string) string {
	ts := tokens(Tokenize(typeName))
	replace := map[int]string{}
	for i, t := range ts {
		if !ts.substitutable(i) {
			continue
		}
		if b, ok := r.bindings[t.Text]; ok {
			replace[i] = b.TypeName()
		}
	}
	if len(replace) == 0 {
		return typeName
	}
	return ts.join(replace)
}

// GlobalQualifiedRewriter prefixes every type reference with "global::".
type GlobalQualifiedRewriter struct {
	params map[string]bool
}

// NewGlobalQualifiedRewriter returns a rewriter that leaves references to
// typeParams unqualified.
func NewGlobalQualifiedRewriter(typeParams []string) *GlobalQualifiedRewriter {
	params := make(map[string]bool, len(typeParams))
	for _, p := range typeParams {
		params[p] = true
	}
	return &GlobalQualifiedRewriter{params: params}
}

// Rewrite qualifies each reference once, before its first segment. A
// reference whose first segment is a type parameter, a C# keyword type or an
// alias is left unqualified, though its type arguments are still rewritten.
func (r *GlobalQualifiedRewriter) Rewrite(typeName string) string {
	ts := tokens(Tokenize(typeName))
	replace := map[int]string{}
	for i, t := range ts {
		if t.Kind != Identifier || !ts.startsReference(i) || ts.isTupleElementName(i) {
			continue
		}
		if k, ok := ts.kindAt(ts.next(i)); ok && k == ColonColon {
			continue
		}
		if r.params[t.Text] || names.IsKeywordType(t.Text) {
			continue
		}
		replace[i] = GlobalPrefix + t.Text
	}
	if len(replace) == 0 {
		return typeName
	}
	return ts.join(replace)
}

// References reports whether typeName refers to any of typeParams in a
// position the generic rewriter would substitute.
func References(typeName string, typeParams []string) bool {
	if len(typeParams) == 0 {
		return false
	}
	ts := tokens(Tokenize(typeName))
	for i, t := range ts {
		if ts.substitutable(i) && slices.Contains(typeParams, t.Text) {
			return true
		}
	}
	return false
}

// substitutable reports whether the token at i is a standalone identifier
// that may name a type parameter.
func (ts tokens) substitutable(i int) bool {
	return ts[i].Kind == Identifier && !ts.qualified(i) && !ts.isGeneric(i) && !ts.isTupleElementName(i)
}
