// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package descriptor defines the immutable tag helper descriptor graph and the
// builders that produce it.
//
// Descriptors are created once through a builder and never change afterwards.
// Equality is structural: two descriptors built from the same facts compare
// equal through their Equal methods, which go-cmp picks up automatically.
// Back-references from attributes and parameters to their owners are kept for
// lookups and are ignored by equality.
package descriptor

import (
	"maps"
	"slices"

	"github.com/albertocavalcante/razortags/diagnostic"
	"github.com/albertocavalcante/razortags/internal/orderedset"
	"github.com/albertocavalcante/razortags/internal/validate"
)

// TagHelperDescriptor describes how a type binds to HTML tags and attributes.
type TagHelperDescriptor struct {
	kind                   Kind
	assemblyName           string
	name                   string
	displayName            string
	typeName               string
	documentation          string
	caseSensitive          bool
	classifyAttributesOnly bool
	tagOutputHint          string
	allowedChildTags       []string
	rules                  []*TagMatchingRuleDescriptor
	boundAttributes        []*BoundAttributeDescriptor
	metadata               map[string]string
	diagnostics            []diagnostic.Diagnostic
}

func (d *TagHelperDescriptor) Kind() Kind                   { return d.kind }
func (d *TagHelperDescriptor) AssemblyName() string         { return d.assemblyName }
func (d *TagHelperDescriptor) Name() string                 { return d.name }
func (d *TagHelperDescriptor) DisplayName() string          { return d.displayName }
func (d *TagHelperDescriptor) TypeName() string             { return d.typeName }
func (d *TagHelperDescriptor) Documentation() string        { return d.documentation }
func (d *TagHelperDescriptor) CaseSensitive() bool          { return d.caseSensitive }
func (d *TagHelperDescriptor) ClassifyAttributesOnly() bool { return d.classifyAttributesOnly }
func (d *TagHelperDescriptor) TagOutputHint() string        { return d.tagOutputHint }

// AllowedChildTags returns the child tag names the helper restricts its
// content to, or nil when children are unrestricted.
func (d *TagHelperDescriptor) AllowedChildTags() []string {
	return d.allowedChildTags
}

// TagMatchingRules returns the rules in declaration order. There is always at
// least one.
func (d *TagHelperDescriptor) TagMatchingRules() []*TagMatchingRuleDescriptor {
	return d.rules
}

// BoundAttributes returns the bound attributes in declaration order.
func (d *TagHelperDescriptor) BoundAttributes() []*BoundAttributeDescriptor {
	return d.boundAttributes
}

// BoundAttribute returns the bound attribute with the given HTML name.
func (d *TagHelperDescriptor) BoundAttribute(name string) (*BoundAttributeDescriptor, bool) {
	for _, a := range d.boundAttributes {
		if a.name == name {
			return a, true
		}
	}
	return nil, false
}

// Metadata returns the kind-specific metadata. Callers must not modify it.
func (d *TagHelperDescriptor) Metadata() map[string]string {
	return d.metadata
}

// Diagnostics returns the diagnostics attached to the descriptor itself.
func (d *TagHelperDescriptor) Diagnostics() []diagnostic.Diagnostic {
	return d.diagnostics
}

// AllDiagnostics returns every diagnostic in the descriptor graph: the
// descriptor's own, then each rule's, then each bound attribute's.
func (d *TagHelperDescriptor) AllDiagnostics() []diagnostic.Diagnostic {
	all := slices.Clone(d.diagnostics)
	for _, r := range d.rules {
		all = append(all, r.AllDiagnostics()...)
	}
	for _, a := range d.boundAttributes {
		all = append(all, a.diagnostics...)
	}
	return all
}

// HasErrors reports whether any diagnostic in the descriptor graph is an
// error.
func (d *TagHelperDescriptor) HasErrors() bool {
	if diagnostic.HasErrors(d.diagnostics) {
		return true
	}
	for _, r := range d.rules {
		if r.HasErrors() {
			return true
		}
	}
	for _, a := range d.boundAttributes {
		if a.HasErrors() {
			return true
		}
	}
	return false
}

// IsComponent reports whether the descriptor was produced for a component.
func (d *TagHelperDescriptor) IsComponent() bool {
	return d.kind == KindComponent
}

// Equal reports structural equality.
func (d *TagHelperDescriptor) Equal(other *TagHelperDescriptor) bool {
	if d == nil || other == nil {
		return d == other
	}
	return d.kind == other.kind &&
		d.assemblyName == other.assemblyName &&
		d.name == other.name &&
		d.displayName == other.displayName &&
		d.typeName == other.typeName &&
		d.documentation == other.documentation &&
		d.caseSensitive == other.caseSensitive &&
		d.classifyAttributesOnly == other.classifyAttributesOnly &&
		d.tagOutputHint == other.tagOutputHint &&
		slices.Equal(d.allowedChildTags, other.allowedChildTags) &&
		slices.EqualFunc(d.rules, other.rules, (*TagMatchingRuleDescriptor).Equal) &&
		slices.EqualFunc(d.boundAttributes, other.boundAttributes, (*BoundAttributeDescriptor).Equal) &&
		maps.Equal(d.metadata, other.metadata) &&
		slices.EqualFunc(d.diagnostics, other.diagnostics, diagnostic.Diagnostic.Equal)
}

// Builder accumulates one TagHelperDescriptor.
type Builder struct {
	Kind                   Kind
	AssemblyName           string
	Name                   string
	DisplayName            string
	TypeName               string
	Documentation          string
	CaseSensitive          bool
	ClassifyAttributesOnly bool
	TagOutputHint          string
	Metadata               map[string]string

	allowedChildTags []string
	rules            []*RuleBuilder
	attributes       []*BoundAttributeBuilder
	diags            *diagnostic.Collector
}

// NewBuilder returns a builder for a descriptor of the given kind.
func NewBuilder(kind Kind, name, assemblyName string) *Builder {
	return &Builder{
		Kind:         kind,
		Name:         name,
		AssemblyName: assemblyName,
		Metadata:     map[string]string{},
	}
}

// AllowChildTag restricts the helper's children to include name.
func (b *Builder) AllowChildTag(name string) {
	b.allowedChildTags = append(b.allowedChildTags, name)
}

// Rule appends a tag matching rule and returns its builder.
func (b *Builder) Rule() *RuleBuilder {
	r := &RuleBuilder{}
	b.rules = append(b.rules, r)
	return r
}

// BoundAttribute appends a bound attribute and returns its builder.
func (b *Builder) BoundAttribute() *BoundAttributeBuilder {
	a := &BoundAttributeBuilder{kind: b.Kind, Metadata: map[string]string{}}
	b.attributes = append(b.attributes, a)
	return a
}

// AddDiagnostic attaches d to the descriptor being built.
func (b *Builder) AddDiagnostic(d diagnostic.Diagnostic) {
	if b.diags == nil {
		b.diags = diagnostic.NewCollector()
	}
	b.diags.Add(d)
}

// Build freezes the builder into a descriptor.
//
// Child tag names are validated and de-duplicated. Structurally identical
// rules collapse into one. Bound attributes whose name or indexer prefix uses
// the reserved "data-" prefix are dropped and their diagnostics are attached
// to the descriptor instead. Build panics when no rule was added.
func (b *Builder) Build() *TagHelperDescriptor {
	if len(b.rules) == 0 {
		panic("descriptor: tag helper " + b.Name + " has no tag matching rules")
	}

	d := &TagHelperDescriptor{
		kind:                   b.Kind,
		assemblyName:           b.AssemblyName,
		name:                   b.Name,
		displayName:            b.DisplayName,
		typeName:               b.TypeName,
		documentation:          b.Documentation,
		caseSensitive:          b.CaseSensitive,
		classifyAttributesOnly: b.ClassifyAttributesOnly,
		tagOutputHint:          b.TagOutputHint,
		metadata:               cloneMetadata(b.Metadata),
	}
	if d.displayName == "" {
		d.displayName = b.Name
	}

	var diags []diagnostic.Diagnostic
	if b.allowedChildTags != nil {
		children := orderedset.Of(b.allowedChildTags...)
		for _, child := range children.Items() {
			diags = append(diags, validate.RestrictedChild(b.displayTypeName(), child)...)
		}
		d.allowedChildTags = children.Items()
	}

	rules := orderedset.New((*TagMatchingRuleDescriptor).key)
	for _, rb := range b.rules {
		rules.Add(rb.Build())
	}
	d.rules = rules.Items()

	for _, ab := range b.attributes {
		attr, reserved := ab.build(b.displayTypeName())
		if reserved != nil {
			diags = append(diags, reserved...)
			continue
		}
		attr.owner = d
		d.boundAttributes = append(d.boundAttributes, attr)
	}

	d.diagnostics = append(diags, b.diags.Diagnostics()...)
	return d
}

func (b *Builder) displayTypeName() string {
	if b.TypeName != "" {
		return b.TypeName
	}
	return b.Name
}
