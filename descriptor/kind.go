// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package descriptor

// Kind identifies the producer family of a tag helper descriptor.
type Kind string

const (
	KindDefault      Kind = "ITagHelper"
	KindBind         Kind = "Components.Bind"
	KindEventHandler Kind = "Components.EventHandler"
	KindRef          Kind = "Components.Ref"
	KindKey          Kind = "Components.Key"
	KindSplat        Kind = "Components.Splat"
	KindComponent    Kind = "Components.Component"
	KindChildContent Kind = "Components.ChildContent"
)

// TagStructure constrains how a matched element may be written.
type TagStructure int

const (
	TagStructureUnspecified TagStructure = iota
	TagStructureNormalOrSelfClosing
	TagStructureWithoutEndTag
)

var tagStructureNames = [...]string{"Unspecified", "NormalOrSelfClosing", "WithoutEndTag"}

func (s TagStructure) String() string {
	if s < 0 || int(s) >= len(tagStructureNames) {
		return "Unspecified"
	}
	return tagStructureNames[s]
}

// ParseTagStructure maps an enum member name, optionally qualified with its
// type name, to a TagStructure.
func ParseTagStructure(s string) (TagStructure, bool) {
	for i, name := range tagStructureNames {
		if s == name || s == "TagStructure."+name {
			return TagStructure(i), true
		}
	}
	return TagStructureUnspecified, false
}

// NameComparison selects how a required attribute name is matched.
type NameComparison int

const (
	NameFullMatch NameComparison = iota
	NamePrefixMatch
)

func (c NameComparison) String() string {
	if c == NamePrefixMatch {
		return "PrefixMatch"
	}
	return "FullMatch"
}

// ValueComparison selects how a required attribute value is matched.
type ValueComparison int

const (
	ValueNone ValueComparison = iota
	ValueFullMatch
	ValuePrefixMatch
	ValueSuffixMatch
)

func (c ValueComparison) String() string {
	switch c {
	case ValueFullMatch:
		return "FullMatch"
	case ValuePrefixMatch:
		return "PrefixMatch"
	case ValueSuffixMatch:
		return "SuffixMatch"
	default:
		return "None"
	}
}

// Metadata keys.
const (
	MetaTypeName              = "Common.TypeName"
	MetaPropertyName          = "Common.PropertyName"
	MetaRuntimeName           = "Runtime.Name"
	MetaDirectiveAttribute    = "Common.DirectiveAttribute"
	MetaSpecialKind           = "Components.IsSpecialKind"
	MetaTypeParameter         = "Components.TypeParameter"
	MetaGenericTyped          = "Components.GenericTyped"
	MetaGlobalTypeName        = "Components.GloballyQualifiedTypeName"
	MetaChildContent          = "Components.ChildContent"
	MetaChildContentParameter = "Components.ChildContentParameterName"
	MetaNameMatch             = "Components.NameMatch"
	MetaEventArgsType         = "Components.EventHandler.EventArgs"
	MetaEventCallback         = "Components.EventCallback"
	MetaBindValueAttribute    = "Common.ValueAttribute"
	MetaBindChangeAttribute   = "Common.ChangeAttribute"
	MetaBindExpressionAttr    = "Common.ExpressionAttribute"
	MetaBindFormat            = "Components.Bind.Format"
	MetaBindTypeAttribute     = "Components.Bind.TypeAttribute"
	MetaBindInvariantCulture  = "Components.Bind.IsInvariantCulture"
	MetaBindFallback          = "Components.Bind.Fallback"
	MetaBindAttributeName     = "Components.Bind.AttributeName"
)

// Metadata values.
const (
	RuntimeTagHelper    = "ITagHelper"
	RuntimeComponent    = "Components.IComponent"
	RuntimeNone         = "Components.None"
	True                = "True"
	FullyQualifiedMatch = "Components.FullyQualifiedNameMatch"
)
