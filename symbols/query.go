// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package symbols

import (
	"github.com/albertocavalcante/razortags/internal/names"
)

// maxDepth bounds base-type walks over malformed, cyclic hierarchies.
const maxDepth = 64

// IsPublic reports whether t and every type containing it are public.
func IsPublic(t Type) bool {
	for cur := t; cur != nil; cur = cur.ContainingType() {
		if cur.Accessibility() != AccessPublic {
			return false
		}
	}
	return true
}

// Hierarchy returns t followed by its base types, nearest first. Type
// arguments of constructed base types are substituted.
func Hierarchy(t Type) []Type {
	var out []Type
	for cur := t; cur != nil && len(out) < maxDepth; {
		out = append(out, cur)
		cur = substitute(cur.BaseType(), environment(cur))
	}
	return out
}

// AllInterfaces returns every interface t implements, directly, through a
// base type, or through another interface. Each interface appears once, in
// discovery order.
func AllInterfaces(t Type) []Type {
	seen := map[string]bool{}
	var out []Type
	var visit func(Type, int)
	visit = func(i Type, depth int) {
		if i == nil || depth > maxDepth || seen[i.FullName()] {
			return
		}
		seen[i.FullName()] = true
		out = append(out, i)
		env := environment(i)
		for _, base := range i.Interfaces() {
			visit(substitute(base, env), depth+1)
		}
	}
	for _, h := range Hierarchy(t) {
		env := environment(h)
		for _, i := range h.Interfaces() {
			visit(substitute(i, env), 0)
		}
	}
	return out
}

// Implements reports whether t is, derives from, or implements the type with
// the given metadata name.
func Implements(t Type, metadataName string) bool {
	for _, h := range Hierarchy(t) {
		if h.MetadataName() == metadataName {
			return true
		}
	}
	for _, i := range AllInterfaces(t) {
		if i.MetadataName() == metadataName {
			return true
		}
	}
	return false
}

// InheritsFrom reports whether a proper base type of t has the given metadata
// name.
func InheritsFrom(t Type, metadataName string) bool {
	chain := Hierarchy(t)
	if len(chain) < 2 {
		return false
	}
	for _, h := range chain[1:] {
		if h.MetadataName() == metadataName {
			return true
		}
	}
	return false
}

// DeclaredProperties returns the properties declared on t with type
// parameters replaced by t's type arguments.
func DeclaredProperties(t Type) []Property {
	env := environment(t)
	props := t.Properties()
	if env == nil {
		return props
	}
	out := make([]Property, len(props))
	for i, p := range props {
		p.Type = substitute(p.Type, env)
		out[i] = p
	}
	return out
}

// DictionaryArguments returns the key and value types when t is or implements
// IDictionary<TKey, TValue>.
func DictionaryArguments(t Type) (key, value Type, ok bool) {
	if t == nil {
		return nil, nil, false
	}
	candidates := append([]Type{t}, AllInterfaces(t)...)
	for _, c := range candidates {
		if c.MetadataName() != names.TypeDictionary {
			continue
		}
		args := c.TypeArguments()
		if len(args) != 2 {
			continue
		}
		return args[0], args[1], true
	}
	return nil, nil, false
}

// FindAttribute returns the first attribute in attrs that refers to the
// well-known attribute type full.
func FindAttribute(attrs []Attribute, full string) (Attribute, bool) {
	for _, a := range attrs {
		if names.MatchesAttribute(a.Type, full) {
			return a, true
		}
	}
	return Attribute{}, false
}

// FilterAttributes returns every attribute in attrs that refers to full, in
// declaration order.
func FilterAttributes(attrs []Attribute, full string) []Attribute {
	var out []Attribute
	for _, a := range attrs {
		if names.MatchesAttribute(a.Type, full) {
			out = append(out, a)
		}
	}
	return out
}

// environment maps the type parameters of a constructed type to its type
// arguments.
func environment(t Type) map[string]Type {
	if t == nil {
		return nil
	}
	params, args := t.TypeParameters(), t.TypeArguments()
	if len(args) == 0 || len(args) != len(params) {
		return nil
	}
	env := make(map[string]Type, len(params))
	for i, p := range params {
		env[p] = args[i]
	}
	return env
}

func substitute(t Type, env map[string]Type) Type {
	if t == nil || len(env) == 0 {
		return t
	}
	if t.Kind() == KindTypeParameter {
		if r, ok := env[t.Name()]; ok {
			return r
		}
		return t
	}
	nt, ok := t.(*NamedType)
	if !ok {
		return t
	}
	if nt.TypeKind == KindArray && nt.Elem != nil {
		return ArrayOf(substitute(nt.Elem, env))
	}
	if len(nt.TypeArgs) == 0 {
		return t
	}
	args := make([]Type, len(nt.TypeArgs))
	changed := false
	for i, a := range nt.TypeArgs {
		args[i] = substitute(a, env)
		if args[i] != a {
			changed = true
		}
	}
	if !changed {
		return t
	}
	def := nt.Definition
	if def == nil {
		def = nt
	}
	return def.Construct(args...)
}
