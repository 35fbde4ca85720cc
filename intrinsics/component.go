// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package intrinsics

import (
	"strings"

	"github.com/albertocavalcante/razortags/descriptor"
	"github.com/albertocavalcante/razortags/internal/names"
	"github.com/albertocavalcante/razortags/symbols"
	"github.com/albertocavalcante/razortags/taghelper"
	"github.com/albertocavalcante/razortags/typename"
)

const (
	typeParameterDoc       = "Specifies the type of the type parameter %s for the %s component."
	childContentContextDoc = "Specifies the parameter name for the '%s' child content expression."
	componentContextDoc    = "Specifies the parameter name for all child content expressions."

	contextAttribute = "Context"
)

type parameterKind int

const (
	plainParameter parameterKind = iota
	childContentParameter
	templateParameter // RenderFragment<T>
	eventCallbackParameter
)

type parameter struct {
	prop symbols.Property
	kind parameterKind
}

// IsComponent reports whether t is a public, concrete class implementing
// IComponent. Generic components are allowed.
func IsComponent(t symbols.Type) bool {
	return t != nil &&
		t.Kind() == symbols.KindClass &&
		!t.IsAbstract() &&
		symbols.IsPublic(t) &&
		symbols.Implements(t, names.ComponentInterface)
}

// Components returns the descriptors of every component among types, in
// order. Each component yields a descriptor matching its simple name, one
// matching its fully qualified name, and one child content descriptor per
// RenderFragment parameter for each of the two.
func Components(types []symbols.Type, opts Options) []*descriptor.TagHelperDescriptor {
	var out []*descriptor.TagHelperDescriptor
	for _, t := range types {
		if !IsComponent(t) || opts.ExcludeHidden && taghelper.IsHidden(t) {
			continue
		}
		params := componentParameters(t, opts)
		short := newComponent(t, params, false, opts)
		full := newComponent(t, params, true, opts)
		out = append(out, short, full)
		out = append(out, childContents(short, params, opts)...)
		out = append(out, childContents(full, params, opts)...)
	}
	return out
}

// componentParameters collects the [Parameter] properties with a public
// setter, most derived first.
func componentParameters(t symbols.Type, opts Options) []parameter {
	hierarchy := symbols.Hierarchy(t)
	seen := map[string]bool{}
	var params []parameter
	for _, h := range hierarchy {
		for _, p := range symbols.DeclaredProperties(h) {
			if p.IsStatic || p.IsIndexer || seen[p.Name] {
				continue
			}
			seen[p.Name] = true
			if _, ok := symbols.FindAttribute(p.Attributes, names.AttrParameter); !ok || !p.HasPublicSetter() {
				continue
			}
			if opts.ExcludeHidden && taghelper.IsPropertyHidden(t, p.Name) {
				continue
			}
			params = append(params, parameter{prop: p, kind: classify(p.Type)})
		}
	}
	return params
}

func classify(t symbols.Type) parameterKind {
	if t == nil {
		return plainParameter
	}
	switch t.MetadataName() {
	case names.RenderFragment:
		return childContentParameter
	case names.RenderFragmentOfT:
		return templateParameter
	case names.EventCallback, names.EventCallbackOfT:
		return eventCallbackParameter
	}
	return plainParameter
}

func newComponent(t symbols.Type, params []parameter, fullyQualified bool, opts Options) *descriptor.TagHelperDescriptor {
	typeName := t.FullName()
	typeParams := t.TypeParameters()
	global := typename.NewGlobalQualifiedRewriter(typeParams)

	b := descriptor.NewBuilder(descriptor.KindComponent, typeName, t.ContainingAssembly())
	b.TypeName = typeName
	b.DisplayName = typeName
	b.CaseSensitive = true
	b.Documentation = opts.doc(t.DocComment())
	b.Metadata[descriptor.MetaTypeName] = typeName
	b.Metadata[descriptor.MetaRuntimeName] = descriptor.RuntimeComponent
	b.Metadata[descriptor.MetaGlobalTypeName] = global.Rewrite(typeName)
	if len(typeParams) > 0 {
		b.Metadata[descriptor.MetaGenericTyped] = descriptor.True
	}

	r := b.Rule()
	r.TagName = t.Name()
	if fullyQualified {
		r.TagName = qualifiedTagName(t)
		b.Metadata[descriptor.MetaNameMatch] = descriptor.FullyQualifiedMatch
	}

	for _, tp := range typeParams {
		a := b.BoundAttribute()
		a.Name = tp
		a.PropertyName = tp
		a.TypeName = names.TypeType
		a.Documentation = opts.docf(typeParameterDoc, tp, t.Name())
		a.Metadata[descriptor.MetaPropertyName] = tp
		a.Metadata[descriptor.MetaTypeParameter] = descriptor.True
	}

	templated := false
	for _, p := range params {
		propType := fullName(p.prop.Type)
		a := b.BoundAttribute()
		a.Name = p.prop.Name
		a.PropertyName = p.prop.Name
		a.TypeName = propType
		a.IsEnum = p.prop.Type != nil && p.prop.Type.Kind() == symbols.KindEnum
		a.Documentation = opts.doc(p.prop.DocComment)
		a.Metadata[descriptor.MetaPropertyName] = p.prop.Name
		a.Metadata[descriptor.MetaGlobalTypeName] = global.Rewrite(propType)
		if typename.References(propType, typeParams) {
			a.Metadata[descriptor.MetaGenericTyped] = descriptor.True
		}
		switch p.kind {
		case childContentParameter:
			a.Metadata[descriptor.MetaChildContent] = descriptor.True
		case templateParameter:
			a.Metadata[descriptor.MetaChildContent] = descriptor.True
			templated = true
		case eventCallbackParameter:
			a.Metadata[descriptor.MetaEventCallback] = descriptor.True
		}
	}

	if templated {
		contextParameter(b, opts.doc(componentContextDoc))
	}
	return b.Build()
}

// childContents returns the child content descriptors of component c, nested
// under the tag c matches.
func childContents(c *descriptor.TagHelperDescriptor, params []parameter, opts Options) []*descriptor.TagHelperDescriptor {
	var out []*descriptor.TagHelperDescriptor
	for _, p := range params {
		if p.kind != childContentParameter && p.kind != templateParameter {
			continue
		}
		name := p.prop.Name
		b := descriptor.NewBuilder(descriptor.KindChildContent, c.Name()+"."+name, c.AssemblyName())
		b.TypeName = c.TypeName()
		b.DisplayName = c.DisplayName() + "." + name
		b.CaseSensitive = true
		b.Documentation = opts.doc(p.prop.DocComment)
		b.Metadata[descriptor.MetaTypeName] = c.TypeName()
		b.Metadata[descriptor.MetaRuntimeName] = descriptor.RuntimeNone
		if match, ok := c.Metadata()[descriptor.MetaNameMatch]; ok {
			b.Metadata[descriptor.MetaNameMatch] = match
		}

		r := b.Rule()
		r.TagName = name
		r.ParentTag = c.TagMatchingRules()[0].TagName()

		if p.kind == templateParameter {
			contextParameter(b, opts.docf(childContentContextDoc, name))
		}
		out = append(out, b.Build())
	}
	return out
}

func contextParameter(b *descriptor.Builder, doc string) {
	a := b.BoundAttribute()
	a.Name = contextAttribute
	a.PropertyName = contextAttribute
	a.TypeName = names.TypeString
	a.Documentation = doc
	a.Metadata[descriptor.MetaPropertyName] = contextAttribute
	a.Metadata[descriptor.MetaChildContentParameter] = descriptor.True
}

// qualifiedTagName is the full name of t without its type argument list.
func qualifiedTagName(t symbols.Type) string {
	full, _, _ := strings.Cut(t.FullName(), "<")
	return full
}

// Specialize returns a copy of the generic component descriptor d with its
// type parameters replaced according to bindings. Type name metadata is
// recomputed for the specialized types. Non-generic descriptors are returned
// unchanged.
func Specialize(d *descriptor.TagHelperDescriptor, bindings map[string]typename.Binding) *descriptor.TagHelperDescriptor {
	if d.Metadata()[descriptor.MetaGenericTyped] != descriptor.True {
		return d
	}
	var open []string
	for _, a := range d.BoundAttributes() {
		if a.Metadata()[descriptor.MetaTypeParameter] != descriptor.True {
			continue
		}
		if _, ok := bindings[a.Name()]; !ok {
			open = append(open, a.Name())
		}
	}
	global := typename.NewGlobalQualifiedRewriter(open)
	return d.WithTypeNames(typename.NewGenericRewriter(bindings).Rewrite, global.Rewrite)
}

func fullName(t symbols.Type) string {
	if t == nil {
		return ""
	}
	return t.FullName()
}
