// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package intrinsics builds the descriptors of the component directive
// attributes: @ref, @key, @attributes, @bind, the event handlers, and the
// components themselves.
//
// Unlike tag helpers these descriptors are not derived from arbitrary
// properties. Ref, Key and Splat are fixed. Bind and EventHandler descriptors
// come from well-known declarations, and component descriptors come from
// [Parameter] properties.
package intrinsics

import (
	"fmt"

	"github.com/albertocavalcante/razortags/descriptor"
	"github.com/albertocavalcante/razortags/internal/names"
)

// AssemblyName is the assembly that owns the fixed intrinsic descriptors.
const AssemblyName = "Microsoft.AspNetCore.Components"

// Options control intrinsic descriptor creation.
type Options struct {
	// IncludeDocumentation attaches documentation to descriptors, attributes
	// and parameters.
	IncludeDocumentation bool

	// ExcludeHidden omits components and parameters marked
	// EditorBrowsable(EditorBrowsableState.Never).
	ExcludeHidden bool
}

func (o Options) doc(text string) string {
	if !o.IncludeDocumentation {
		return ""
	}
	return text
}

func (o Options) docf(format string, args ...any) string {
	if !o.IncludeDocumentation {
		return ""
	}
	return fmt.Sprintf(format, args...)
}

const (
	refDoc   = "Populates the specified field or property with a reference to the element or component."
	keyDoc   = "Ensures that the component or element will be preserved across renders if (and only if) the supplied key value matches."
	splatDoc = "Merges a collection of attributes into the current element or component."
)

// Ref returns the descriptor of the @ref directive attribute.
func Ref(opts Options) *descriptor.TagHelperDescriptor {
	return fixed(descriptor.KindRef, "Ref", "@ref", opts.doc(refDoc))
}

// Key returns the descriptor of the @key directive attribute.
func Key(opts Options) *descriptor.TagHelperDescriptor {
	return fixed(descriptor.KindKey, "Key", "@key", opts.doc(keyDoc))
}

// Splat returns the descriptor of the @attributes directive attribute.
func Splat(opts Options) *descriptor.TagHelperDescriptor {
	return fixed(descriptor.KindSplat, "Attributes", "@attributes", opts.doc(splatDoc))
}

// fixed builds a descriptor matching any element that carries attribute.
func fixed(kind descriptor.Kind, name, attribute, doc string) *descriptor.TagHelperDescriptor {
	typeName := names.ComponentsNamespace + "." + name
	b := special(kind, name, AssemblyName, typeName)
	b.Documentation = doc

	directiveAttribute(ruleForAny(b), attribute, descriptor.NameFullMatch)

	a := b.BoundAttribute()
	a.Name = attribute
	a.PropertyName = name
	a.TypeName = names.TypeObject
	a.Documentation = doc
	a.Metadata[descriptor.MetaPropertyName] = name
	a.Metadata[descriptor.MetaDirectiveAttribute] = descriptor.True
	return b.Build()
}

// special returns a builder with the settings shared by every directive
// attribute descriptor.
func special(kind descriptor.Kind, name, assembly, typeName string) *descriptor.Builder {
	b := descriptor.NewBuilder(kind, name, assembly)
	b.TypeName = typeName
	b.CaseSensitive = true
	b.ClassifyAttributesOnly = true
	b.Metadata[descriptor.MetaSpecialKind] = string(kind)
	b.Metadata[descriptor.MetaTypeName] = typeName
	b.Metadata[descriptor.MetaRuntimeName] = descriptor.RuntimeNone
	return b
}

func directiveAttribute(r *descriptor.RuleBuilder, name string, match descriptor.NameComparison) {
	ra := r.Attribute()
	ra.Name = name
	ra.NameComparison = match
	ra.IsDirectiveAttribute = true
}

func boolParameter(a *descriptor.BoundAttributeBuilder, name, property, doc string) {
	p := a.Parameter()
	p.Name = name
	p.PropertyName = property
	p.TypeName = names.TypeBoolean
	p.Documentation = doc
}

func stringParameter(a *descriptor.BoundAttributeBuilder, name, property, doc string) {
	p := a.Parameter()
	p.Name = name
	p.PropertyName = property
	p.TypeName = names.TypeString
	p.Documentation = doc
}
