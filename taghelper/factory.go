// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package taghelper turns compiled tag helper types into descriptors.
//
// A Visitor picks the candidate types out of a compilation and a Factory
// builds one descriptor per candidate. Malformed declarations never fail
// descriptor creation; they are reported as diagnostics on the descriptor
// element closest to the declaration.
//
// Target elements, RestrictChildren, OutputElementHint and EditorBrowsable
// are resolved along the base type chain. The nearest type that declares one
// of them supplies the whole value and nothing is merged from further up.
package taghelper

import (
	"github.com/albertocavalcante/razortags/descriptor"
	"github.com/albertocavalcante/razortags/diagnostic"
	"github.com/albertocavalcante/razortags/internal/names"
	"github.com/albertocavalcante/razortags/internal/validate"
	"github.com/albertocavalcante/razortags/requiredattr"
	"github.com/albertocavalcante/razortags/symbols"
)

// Options control descriptor creation.
type Options struct {
	// IncludeDocumentation copies doc comments onto descriptors.
	IncludeDocumentation bool

	// ExcludeHidden omits types and properties marked
	// EditorBrowsable(EditorBrowsableState.Never).
	ExcludeHidden bool
}

// Factory creates tag helper descriptors.
type Factory struct {
	opts Options
}

// NewFactory returns a factory using opts.
func NewFactory(opts Options) *Factory {
	return &Factory{opts: opts}
}

// Options returns the options the factory was created with.
func (f *Factory) Options() Options { return f.opts }

// CreateDescriptor builds the descriptor for t. It returns nil only when
// hidden types are excluded and t is hidden. CreateDescriptor panics if t is
// nil.
func (f *Factory) CreateDescriptor(t symbols.Type) *descriptor.TagHelperDescriptor {
	if t == nil {
		panic("taghelper: CreateDescriptor called with a nil type")
	}
	hierarchy := symbols.Hierarchy(t)
	if f.opts.ExcludeHidden && resolve(hierarchy, hiddenReader(typeAttributes)).value {
		return nil
	}

	typeName := t.FullName()
	b := descriptor.NewBuilder(descriptor.KindDefault, typeName, t.ContainingAssembly())
	b.TypeName = typeName
	b.DisplayName = typeName
	b.Metadata[descriptor.MetaTypeName] = typeName
	b.Metadata[descriptor.MetaRuntimeName] = descriptor.RuntimeTagHelper
	if f.opts.IncludeDocumentation {
		b.Documentation = t.DocComment()
	}

	addRules(b, t, hierarchy)
	addAllowedChildTags(b, hierarchy)
	addOutputHint(b, hierarchy)
	f.addBoundAttributes(b, hierarchy, typeName)

	return b.Build()
}

func addRules(b *descriptor.Builder, t symbols.Type, hierarchy []symbols.Type) {
	targets := resolve(hierarchy, attributesOf(names.AttrHTMLTargetElement, typeAttributes))
	if !targets.ok() {
		b.Rule().TagName = names.DefaultTagName(t.Name())
		return
	}
	for _, a := range targets.value {
		addRule(b, a)
	}
}

func addRule(b *descriptor.Builder, a symbols.Attribute) {
	r := b.Rule()
	r.TagName = validate.CatchAll
	if v, ok := a.Arg(0); ok {
		r.TagName, _ = v.AsString()
	}
	if v, ok := a.NamedValue(names.ArgParentTag); ok {
		r.ParentTag, _ = v.AsString()
	}
	if v, ok := a.NamedValue(names.ArgTagStructure); ok {
		r.TagStructure = tagStructure(v)
	}
	if v, ok := a.NamedValue(names.ArgAttributes); ok {
		if text, ok := v.AsString(); ok {
			requiredattr.Parse(text, r)
		}
	}
}

func tagStructure(v symbols.Value) descriptor.TagStructure {
	switch v.Kind {
	case symbols.ValueEnum, symbols.ValueString:
		ts, _ := descriptor.ParseTagStructure(v.Text)
		return ts
	case symbols.ValueInt:
		ts := descriptor.TagStructure(v.Int)
		if ts >= descriptor.TagStructureUnspecified && ts <= descriptor.TagStructureWithoutEndTag {
			return ts
		}
	}
	return descriptor.TagStructureUnspecified
}

func addAllowedChildTags(b *descriptor.Builder, hierarchy []symbols.Type) {
	restrict := resolve(hierarchy, attributesOf(names.AttrRestrictChildren, typeAttributes))
	for _, a := range restrict.value {
		for _, v := range a.Args {
			for _, tag := range childTags(v) {
				b.AllowChildTag(tag)
			}
		}
	}
}

// childTags flattens a RestrictChildren argument. A null tag is kept as an
// empty name so that it is reported.
func childTags(v symbols.Value) []string {
	switch v.Kind {
	case symbols.ValueNull:
		return []string{""}
	case symbols.ValueArray:
		var out []string
		for _, item := range v.Items {
			out = append(out, childTags(item)...)
		}
		return out
	}
	s, _ := v.AsString()
	return []string{s}
}

func addOutputHint(b *descriptor.Builder, hierarchy []symbols.Type) {
	hint := resolve(hierarchy, func(t symbols.Type) (string, bool) {
		a, ok := symbols.FindAttribute(t.Attributes(), names.AttrOutputElementHint)
		if !ok {
			return "", false
		}
		v, _ := a.Arg(0)
		s, _ := v.AsString()
		return s, true
	})
	b.TagOutputHint = hint.value
}

// addBoundAttributes binds the accessible properties of the hierarchy, most
// derived first. A property name is claimed by its most derived declaration
// even when that declaration is not bindable.
func (f *Factory) addBoundAttributes(b *descriptor.Builder, hierarchy []symbols.Type, ownerType string) {
	seen := map[string]bool{}
	for _, h := range hierarchy {
		for _, p := range symbols.DeclaredProperties(h) {
			if p.IsStatic || p.IsIndexer || seen[p.Name] {
				continue
			}
			seen[p.Name] = true
			if !isAccessible(p) {
				continue
			}
			if f.opts.ExcludeHidden && isPropertyHidden(hierarchy, p.Name) {
				continue
			}
			f.addBoundAttribute(b, p, ownerType)
		}
	}
}

func isAccessible(p symbols.Property) bool {
	if !p.HasPublicGetter() {
		return false
	}
	if _, ok := symbols.FindAttribute(p.Attributes, names.AttrHTMLAttributeNotBound); ok {
		return false
	}
	if p.HasPublicSetter() {
		return true
	}
	if _, ok := symbols.FindAttribute(p.Attributes, names.AttrHTMLAttributeName); ok {
		return true
	}
	_, ok := stringKeyedDictionary(p.Type)
	return ok
}

func (f *Factory) addBoundAttribute(b *descriptor.Builder, p symbols.Property, ownerType string) {
	nameAttr, hasNameAttr := symbols.FindAttribute(p.Attributes, names.AttrHTMLAttributeName)
	name, explicit := names.ToHTMLCase(p.Name), false
	if hasNameAttr {
		if v, ok := nameAttr.Arg(0); ok {
			name, _ = v.AsString()
			explicit = true
		}
	}

	a := b.BoundAttribute()
	a.PropertyName = p.Name
	a.TypeName = fullName(p.Type)
	a.Metadata[descriptor.MetaPropertyName] = p.Name
	if f.opts.IncludeDocumentation {
		a.Documentation = p.DocComment
	}

	valueType, dictionary := stringKeyedDictionary(p.Type)
	setter := p.HasPublicSetter()
	switch {
	case setter:
		a.Name = name
		a.IsEnum = p.Type != nil && p.Type.Kind() == symbols.KindEnum
	case explicit && !dictionary:
		a.Name = name
		a.AddDiagnostic(diagnostic.InvalidAttributeNameNullOrEmpty(ownerType, p.Name))
	}

	var prefix string
	prefixSet, prefixNull := false, false
	if hasNameAttr {
		if v, ok := nameAttr.NamedValue(names.ArgDictionaryAttributePrefix); ok {
			prefixSet = true
			prefix, _ = v.AsString()
			prefixNull = v.Kind == symbols.ValueNull
		}
	}

	if !dictionary {
		if prefixSet && !prefixNull {
			a.AddDiagnostic(diagnostic.InvalidAttributePrefixNotNull(ownerType, p.Name))
		}
		return
	}
	if !prefixSet {
		prefix = name + "-"
	}
	if !prefixNull {
		a.HasIndexer = true
		a.IndexerNamePrefix = prefix
		a.IndexerTypeName = fullName(valueType)
	}
	if !setter && hasNameAttr && !prefixSet {
		a.AddDiagnostic(diagnostic.InvalidAttributePrefixNull(ownerType, p.Name))
	}
}

// stringKeyedDictionary returns the value type when t is or implements
// IDictionary<string, TValue>.
func stringKeyedDictionary(t symbols.Type) (symbols.Type, bool) {
	key, value, ok := symbols.DictionaryArguments(t)
	if !ok || !isString(key) {
		return nil, false
	}
	return value, true
}

func isString(t symbols.Type) bool {
	return t != nil && (t.Special() == symbols.SpecialString || t.FullName() == names.TypeString)
}

func fullName(t symbols.Type) string {
	if t == nil {
		return ""
	}
	return t.FullName()
}
