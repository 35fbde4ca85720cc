// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package symbols describes the compiled-type facts that descriptor producers
// read: modifiers, attributes, base types, properties and doc comments.
//
// Type is the narrow capability interface the producers depend on. NamedType
// is an in-memory implementation used by tests and by the manifest and C#
// source loaders.
package symbols

// Kind classifies a type.
type Kind int

const (
	KindClass Kind = iota
	KindStruct
	KindInterface
	KindEnum
	KindDelegate
	KindTypeParameter
	KindArray
	KindError
)

var kindNames = [...]string{"class", "struct", "interface", "enum", "delegate", "typeparam", "array", "error"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// ParseKind maps a kind name as produced by Kind.String back to a Kind.
func ParseKind(s string) (Kind, bool) {
	for i, name := range kindNames {
		if s == name {
			return Kind(i), true
		}
	}
	return KindError, false
}

// Special identifies the platform types that get dedicated treatment.
type Special int

const (
	SpecialNone Special = iota
	SpecialString
	SpecialBoolean
	SpecialObject
)

// Accessibility is the declared accessibility of a type or accessor.
// AccessNone marks an accessor that is not declared at all.
type Accessibility int

const (
	AccessNone Accessibility = iota
	AccessPrivate
	AccessProtected
	AccessInternal
	AccessProtectedInternal
	AccessPublic
)

var accessNames = [...]string{"none", "private", "protected", "internal", "protected internal", "public"}

func (a Accessibility) String() string {
	if a < 0 || int(a) >= len(accessNames) {
		return "unknown"
	}
	return accessNames[a]
}

// ParseAccessibility maps a C# accessibility keyword sequence to an
// Accessibility.
func ParseAccessibility(s string) (Accessibility, bool) {
	if s == "private protected" {
		return AccessProtected, true
	}
	for i, name := range accessNames {
		if s == name {
			return Accessibility(i), true
		}
	}
	return AccessNone, false
}

// Type is the facade over one compiled type.
type Type interface {
	// Name is the simple name, without namespace or type arguments.
	Name() string
	// FullName is the display name: namespace, containing types and type
	// arguments, e.g. "System.Collections.Generic.IDictionary<System.String, System.Object>".
	FullName() string
	// MetadataName identifies the generic definition, e.g.
	// "System.Collections.Generic.IDictionary`2".
	MetadataName() string
	Kind() Kind
	Special() Special
	Accessibility() Accessibility
	IsAbstract() bool
	Arity() int
	TypeArguments() []Type
	TypeParameters() []string
	ContainingType() Type
	ContainingAssembly() string
	BaseType() Type
	Interfaces() []Type
	Attributes() []Attribute
	Properties() []Property
	DocComment() string
}

// Property is one declared property.
type Property struct {
	Name       string
	Type       Type
	IsStatic   bool
	IsIndexer  bool
	Getter     Accessibility
	Setter     Accessibility
	Attributes []Attribute
	DocComment string
}

// HasPublicGetter reports whether the getter is declared public.
func (p Property) HasPublicGetter() bool { return p.Getter == AccessPublic }

// HasPublicSetter reports whether the setter is declared public.
func (p Property) HasPublicSetter() bool { return p.Setter == AccessPublic }

// ValueKind classifies an attribute argument.
type ValueKind int

const (
	ValueNull ValueKind = iota
	ValueString
	ValueBool
	ValueInt
	ValueEnum
	ValueType
	ValueArray
)

// Value is a constant attribute argument.
type Value struct {
	Kind  ValueKind
	Text  string // string literal, enum member or type name
	Bool  bool
	Int   int64
	Items []Value
}

// AsString returns a string argument. Null and non-string values report
// false.
func (v Value) AsString() (string, bool) {
	if v.Kind != ValueString {
		return "", false
	}
	return v.Text, true
}

// AsStrings flattens a string or an array of strings.
func (v Value) AsStrings() []string {
	switch v.Kind {
	case ValueString:
		return []string{v.Text}
	case ValueArray:
		var out []string
		for _, item := range v.Items {
			if s, ok := item.AsString(); ok {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

// Str is a string constant.
func Str(s string) Value { return Value{Kind: ValueString, Text: s} }

// Bool is a boolean constant.
func Bool(b bool) Value { return Value{Kind: ValueBool, Bool: b} }

// Int is an integer constant.
func Int(n int64) Value { return Value{Kind: ValueInt, Int: n} }

// Enum is an enum member constant, written as "Type.Member" or "Member".
func Enum(member string) Value { return Value{Kind: ValueEnum, Text: member} }

// TypeOf is a typeof(...) constant.
func TypeOf(name string) Value { return Value{Kind: ValueType, Text: name} }

// Null is the null constant.
func Null() Value { return Value{Kind: ValueNull} }

// NamedArg is one "Name = value" attribute argument.
type NamedArg struct {
	Name  string
	Value Value
}

// Attribute is one attribute instance applied to a type or property.
type Attribute struct {
	// Type is the attribute type name as resolved or written.
	Type  string
	Args  []Value
	Named []NamedArg
}

// Arg returns the i-th positional argument.
func (a Attribute) Arg(i int) (Value, bool) {
	if i < 0 || i >= len(a.Args) {
		return Value{}, false
	}
	return a.Args[i], true
}

// NamedValue returns the value of the named argument name.
func (a Attribute) NamedValue(name string) (Value, bool) {
	for _, n := range a.Named {
		if n.Name == name {
			return n.Value, true
		}
	}
	return Value{}, false
}
