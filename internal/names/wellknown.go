// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package names provides HTML name conventions and the well-known .NET type
// and attribute names recognized by descriptor producers.
package names

import "strings"

// Well-known framework types.
const (
	TypeString     = "System.String"
	TypeBoolean    = "System.Boolean"
	TypeObject     = "System.Object"
	TypeType       = "System.Type"
	TypeDictionary = "System.Collections.Generic.IDictionary`2"

	TagHelperInterface   = "Microsoft.AspNetCore.Razor.TagHelpers.ITagHelper"
	TagHelperBase        = "Microsoft.AspNetCore.Razor.TagHelpers.TagHelper"
	ComponentInterface   = "Microsoft.AspNetCore.Components.IComponent"
	ComponentBase        = "Microsoft.AspNetCore.Components.ComponentBase"
	RenderFragment       = "Microsoft.AspNetCore.Components.RenderFragment"
	RenderFragmentOfT    = "Microsoft.AspNetCore.Components.RenderFragment`1"
	EventCallback        = "Microsoft.AspNetCore.Components.EventCallback"
	EventCallbackOfT     = "Microsoft.AspNetCore.Components.EventCallback`1"
	ComponentsNamespace  = "Microsoft.AspNetCore.Components"
	TagHelpersNamespace  = "Microsoft.AspNetCore.Razor.TagHelpers"
	ComponentModelPrefix = "System.ComponentModel"
)

// Well-known attribute types.
const (
	AttrHTMLTargetElement     = "Microsoft.AspNetCore.Razor.TagHelpers.HtmlTargetElementAttribute"
	AttrHTMLAttributeName     = "Microsoft.AspNetCore.Razor.TagHelpers.HtmlAttributeNameAttribute"
	AttrHTMLAttributeNotBound = "Microsoft.AspNetCore.Razor.TagHelpers.HtmlAttributeNotBoundAttribute"
	AttrRestrictChildren      = "Microsoft.AspNetCore.Razor.TagHelpers.RestrictChildrenAttribute"
	AttrOutputElementHint     = "Microsoft.AspNetCore.Razor.TagHelpers.OutputElementHintAttribute"
	AttrEditorBrowsable       = "System.ComponentModel.EditorBrowsableAttribute"
	AttrParameter             = "Microsoft.AspNetCore.Components.ParameterAttribute"
	AttrEventHandler          = "Microsoft.AspNetCore.Components.EventHandlerAttribute"
	AttrBindElement           = "Microsoft.AspNetCore.Components.BindElementAttribute"
	AttrBindInputElement      = "Microsoft.AspNetCore.Components.BindInputElementAttribute"
)

// Named and positional argument names of the well-known attributes.
const (
	ArgAttributes                = "Attributes"
	ArgParentTag                 = "ParentTag"
	ArgTagStructure              = "TagStructure"
	ArgDictionaryAttributePrefix = "DictionaryAttributePrefix"
)

// predefined maps C# keyword aliases to the framework type they name.
var predefined = map[string]string{
	"bool":    "System.Boolean",
	"byte":    "System.Byte",
	"sbyte":   "System.SByte",
	"char":    "System.Char",
	"decimal": "System.Decimal",
	"double":  "System.Double",
	"float":   "System.Single",
	"int":     "System.Int32",
	"uint":    "System.UInt32",
	"long":    "System.Int64",
	"ulong":   "System.UInt64",
	"short":   "System.Int16",
	"ushort":  "System.UInt16",
	"object":  "System.Object",
	"string":  "System.String",
	"void":    "System.Void",
	"nint":    "System.IntPtr",
	"nuint":   "System.UIntPtr",
	"dynamic": "System.Object",
}

// IsKeywordType reports whether name is a C# predefined type keyword.
func IsKeywordType(name string) bool {
	_, ok := predefined[name]
	return ok
}

// KeywordType returns the framework type named by a C# keyword alias.
func KeywordType(name string) (string, bool) {
	full, ok := predefined[name]
	return full, ok
}

// MatchesAttribute reports whether an attribute written as name refers to the
// well-known attribute type full. The written name may be fully qualified,
// global-qualified, or simple, with or without the "Attribute" suffix.
func MatchesAttribute(name, full string) bool {
	name = strings.TrimPrefix(name, "global::")
	if name == full || name+"Attribute" == full {
		return true
	}
	simple := SimpleName(full)
	short := strings.TrimSuffix(simple, "Attribute")
	return name == simple || name == short
}
