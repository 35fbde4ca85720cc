// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package descriptor

import (
	"slices"
	"strconv"
	"strings"

	"github.com/albertocavalcante/razortags/diagnostic"
	"github.com/albertocavalcante/razortags/internal/validate"
)

// RequiredAttributeDescriptor is one attribute a tag must carry for a
// TagMatchingRuleDescriptor to apply.
type RequiredAttributeDescriptor struct {
	name            string
	nameComparison  NameComparison
	value           string
	valueComparison ValueComparison
	directive       bool
	diagnostics     []diagnostic.Diagnostic
}

func (d *RequiredAttributeDescriptor) Name() string                     { return d.name }
func (d *RequiredAttributeDescriptor) NameComparison() NameComparison   { return d.nameComparison }
func (d *RequiredAttributeDescriptor) ValueComparison() ValueComparison { return d.valueComparison }
func (d *RequiredAttributeDescriptor) IsDirectiveAttribute() bool       { return d.directive }

// Value returns the required value. It is meaningful only when
// ValueComparison is not ValueNone.
func (d *RequiredAttributeDescriptor) Value() string { return d.value }

// DisplayName is the name as written in a selector, with "..." marking a
// prefix match.
func (d *RequiredAttributeDescriptor) DisplayName() string {
	if d.nameComparison == NamePrefixMatch {
		return d.name + "..."
	}
	return d.name
}

// Diagnostics returns the diagnostics attached to this attribute.
func (d *RequiredAttributeDescriptor) Diagnostics() []diagnostic.Diagnostic {
	return d.diagnostics
}

// HasErrors reports whether any attached diagnostic is an error.
func (d *RequiredAttributeDescriptor) HasErrors() bool {
	return diagnostic.HasErrors(d.diagnostics)
}

// Equal reports structural equality.
func (d *RequiredAttributeDescriptor) Equal(other *RequiredAttributeDescriptor) bool {
	if d == nil || other == nil {
		return d == other
	}
	return d.name == other.name &&
		d.nameComparison == other.nameComparison &&
		d.value == other.value &&
		d.valueComparison == other.valueComparison &&
		d.directive == other.directive &&
		slices.EqualFunc(d.diagnostics, other.diagnostics, diagnostic.Diagnostic.Equal)
}

func (d *RequiredAttributeDescriptor) key() string {
	return d.name + "\x00" + d.nameComparison.String() + "\x00" + d.valueComparison.String() + "\x00" + d.value
}

// RequiredAttributeBuilder accumulates one RequiredAttributeDescriptor.
type RequiredAttributeBuilder struct {
	Name                 string
	NameComparison       NameComparison
	Value                string
	ValueComparison      ValueComparison
	IsDirectiveAttribute bool

	diags *diagnostic.Collector
}

// AddDiagnostic attaches d to the attribute being built.
func (b *RequiredAttributeBuilder) AddDiagnostic(d diagnostic.Diagnostic) {
	if b.diags == nil {
		b.diags = diagnostic.NewCollector()
	}
	b.diags.Add(d)
}

// Build freezes the builder. Name validation diagnostics precede the ones
// added through AddDiagnostic.
func (b *RequiredAttributeBuilder) Build() *RequiredAttributeDescriptor {
	diags := validate.RequiredAttributeName(b.Name, b.IsDirectiveAttribute)
	diags = append(diags, b.diags.Diagnostics()...)
	value := b.Value
	if b.ValueComparison == ValueNone {
		value = ""
	}
	return &RequiredAttributeDescriptor{
		name:            b.Name,
		nameComparison:  b.NameComparison,
		value:           value,
		valueComparison: b.ValueComparison,
		directive:       b.IsDirectiveAttribute,
		diagnostics:     diags,
	}
}

// TagMatchingRuleDescriptor is one tag, parent, structure and attribute
// combination under which a tag helper applies.
type TagMatchingRuleDescriptor struct {
	tagName      string
	parentTag    string
	tagStructure TagStructure
	attributes   []*RequiredAttributeDescriptor
	diagnostics  []diagnostic.Diagnostic
}

func (r *TagMatchingRuleDescriptor) TagName() string            { return r.tagName }
func (r *TagMatchingRuleDescriptor) ParentTag() string          { return r.parentTag }
func (r *TagMatchingRuleDescriptor) TagStructure() TagStructure { return r.tagStructure }

// Attributes returns the required attributes in declaration order.
func (r *TagMatchingRuleDescriptor) Attributes() []*RequiredAttributeDescriptor {
	return r.attributes
}

// Diagnostics returns the diagnostics attached to the rule itself.
func (r *TagMatchingRuleDescriptor) Diagnostics() []diagnostic.Diagnostic {
	return r.diagnostics
}

// HasErrors reports whether the rule or any of its attributes has an error.
func (r *TagMatchingRuleDescriptor) HasErrors() bool {
	if diagnostic.HasErrors(r.diagnostics) {
		return true
	}
	for _, a := range r.attributes {
		if a.HasErrors() {
			return true
		}
	}
	return false
}

// AllDiagnostics returns the rule diagnostics followed by those of every
// required attribute.
func (r *TagMatchingRuleDescriptor) AllDiagnostics() []diagnostic.Diagnostic {
	all := slices.Clone(r.diagnostics)
	for _, a := range r.attributes {
		all = append(all, a.diagnostics...)
	}
	return all
}

// Equal reports structural equality.
func (r *TagMatchingRuleDescriptor) Equal(other *TagMatchingRuleDescriptor) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.tagName == other.tagName &&
		r.parentTag == other.parentTag &&
		r.tagStructure == other.tagStructure &&
		slices.EqualFunc(r.attributes, other.attributes, (*RequiredAttributeDescriptor).Equal) &&
		slices.EqualFunc(r.diagnostics, other.diagnostics, diagnostic.Diagnostic.Equal)
}

func (r *TagMatchingRuleDescriptor) key() string {
	var sb strings.Builder
	sb.WriteString(r.tagName)
	sb.WriteByte(0)
	sb.WriteString(r.parentTag)
	sb.WriteByte(0)
	sb.WriteString(strconv.Itoa(int(r.tagStructure)))
	for _, a := range r.attributes {
		sb.WriteByte(1)
		sb.WriteString(a.key())
	}
	return sb.String()
}

// RuleBuilder accumulates one TagMatchingRuleDescriptor.
type RuleBuilder struct {
	TagName      string
	ParentTag    string
	TagStructure TagStructure

	attributes []*RequiredAttributeBuilder
	diags      *diagnostic.Collector
}

// Attribute appends a required attribute and returns its builder.
func (b *RuleBuilder) Attribute() *RequiredAttributeBuilder {
	a := &RequiredAttributeBuilder{}
	b.attributes = append(b.attributes, a)
	return a
}

// AddDiagnostic attaches d to the rule being built.
func (b *RuleBuilder) AddDiagnostic(d diagnostic.Diagnostic) {
	if b.diags == nil {
		b.diags = diagnostic.NewCollector()
	}
	b.diags.Add(d)
}

// Build freezes the builder, validating the tag and parent tag names.
func (b *RuleBuilder) Build() *TagMatchingRuleDescriptor {
	diags := validate.TagName(b.TagName)
	if b.ParentTag != "" {
		diags = append(diags, validate.ParentTagName(b.ParentTag)...)
	}
	diags = append(diags, b.diags.Diagnostics()...)

	attrs := make([]*RequiredAttributeDescriptor, 0, len(b.attributes))
	for _, a := range b.attributes {
		attrs = append(attrs, a.Build())
	}
	return &TagMatchingRuleDescriptor{
		tagName:      b.TagName,
		parentTag:    b.ParentTag,
		tagStructure: b.TagStructure,
		attributes:   attrs,
		diagnostics:  diags,
	}
}
