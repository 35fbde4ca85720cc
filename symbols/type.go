// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package symbols

import (
	"strconv"
	"strings"
)

// NamedType is an in-memory Type. The zero value is a public, non-abstract
// class in the global namespace.
type NamedType struct {
	Simple      string
	Namespace   string
	TypeKind    Kind
	SpecialType Special
	Access      Accessibility
	Abstract    bool
	TypeParams  []string
	TypeArgs    []Type
	Outer       Type
	Assembly    string
	Base        Type
	Ifaces      []Type
	Attrs       []Attribute
	Props       []Property
	Doc         string

	// Definition is the open generic type a constructed type was built from.
	Definition *NamedType
	// Elem is the element type of an array.
	Elem Type
}

var _ Type = (*NamedType)(nil)

func (t *NamedType) Name() string               { return t.Simple }
func (t *NamedType) Kind() Kind                 { return t.TypeKind }
func (t *NamedType) Special() Special           { return t.SpecialType }
func (t *NamedType) IsAbstract() bool           { return t.Abstract }
func (t *NamedType) TypeArguments() []Type      { return t.TypeArgs }
func (t *NamedType) TypeParameters() []string   { return t.TypeParams }
func (t *NamedType) ContainingType() Type       { return t.Outer }
func (t *NamedType) ContainingAssembly() string { return t.Assembly }
func (t *NamedType) BaseType() Type             { return t.Base }
func (t *NamedType) Interfaces() []Type         { return t.Ifaces }
func (t *NamedType) Attributes() []Attribute    { return t.Attrs }
func (t *NamedType) Properties() []Property     { return t.Props }
func (t *NamedType) DocComment() string         { return t.Doc }

// Accessibility defaults to public when unset.
func (t *NamedType) Accessibility() Accessibility {
	if t.Access == AccessNone {
		return AccessPublic
	}
	return t.Access
}

// Arity is the number of type parameters, or of type arguments for a
// constructed type.
func (t *NamedType) Arity() int {
	if len(t.TypeArgs) > 0 {
		return len(t.TypeArgs)
	}
	return len(t.TypeParams)
}

func (t *NamedType) qualifier() string {
	if t.Outer != nil {
		return definitionName(t.Outer) + "."
	}
	if t.Namespace != "" {
		return t.Namespace + "."
	}
	return ""
}

// definitionName is the qualified name without arity or type arguments.
func definitionName(t Type) string {
	if nt, ok := t.(*NamedType); ok {
		return nt.qualifier() + nt.Simple
	}
	name := t.FullName()
	if i := strings.IndexByte(name, '<'); i >= 0 {
		name = name[:i]
	}
	return name
}

// FullName renders the display name. Open generic types list their type
// parameter names; constructed types list the full names of their arguments.
func (t *NamedType) FullName() string {
	switch t.TypeKind {
	case KindTypeParameter, KindError:
		return t.Simple
	case KindArray:
		if t.Elem != nil {
			return t.Elem.FullName() + "[]"
		}
		return t.Simple
	}
	var sb strings.Builder
	sb.WriteString(t.qualifier())
	sb.WriteString(t.Simple)
	switch {
	case len(t.TypeArgs) > 0:
		sb.WriteByte('<')
		for i, a := range t.TypeArgs {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(a.FullName())
		}
		sb.WriteByte('>')
	case len(t.TypeParams) > 0:
		sb.WriteByte('<')
		sb.WriteString(strings.Join(t.TypeParams, ", "))
		sb.WriteByte('>')
	}
	return sb.String()
}

// MetadataName is the qualified definition name with a "`N" arity suffix for
// generic types.
func (t *NamedType) MetadataName() string {
	switch t.TypeKind {
	case KindTypeParameter, KindError, KindArray:
		return t.FullName()
	}
	name := t.qualifier() + t.Simple
	if n := t.Arity(); n > 0 {
		name += "`" + strconv.Itoa(n)
	}
	return name
}

// Construct returns the closed generic type of t with args.
func (t *NamedType) Construct(args ...Type) *NamedType {
	c := *t
	c.TypeArgs = args
	c.Definition = t
	return &c
}

// TypeParameter returns a type-parameter type named name.
func TypeParameter(name string) *NamedType {
	return &NamedType{Simple: name, TypeKind: KindTypeParameter}
}

// ArrayOf returns the single-dimensional array type of elem.
func ArrayOf(elem Type) *NamedType {
	return &NamedType{Simple: elem.Name() + "[]", TypeKind: KindArray, Elem: elem}
}

// Unresolved returns an error type standing for a reference that could not
// be bound to a declaration.
func Unresolved(written string) *NamedType {
	return &NamedType{Simple: written, TypeKind: KindError}
}
