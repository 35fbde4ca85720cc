// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package descriptor

import (
	"maps"
	"slices"

	"github.com/albertocavalcante/razortags/diagnostic"
	"github.com/albertocavalcante/razortags/internal/names"
	"github.com/albertocavalcante/razortags/internal/validate"
)

// BoundAttributeDescriptor describes an HTML attribute bound to a property of
// the tag helper type.
type BoundAttributeDescriptor struct {
	kind              Kind
	name              string
	propertyName      string
	typeName          string
	displayName       string
	documentation     string
	isEnum            bool
	isString          bool
	isBoolean         bool
	hasIndexer        bool
	indexerNamePrefix string
	indexerTypeName   string
	parameters        []*BoundAttributeParameterDescriptor
	metadata          map[string]string
	diagnostics       []diagnostic.Diagnostic

	owner *TagHelperDescriptor
}

func (a *BoundAttributeDescriptor) Kind() Kind                { return a.kind }
func (a *BoundAttributeDescriptor) Name() string              { return a.name }
func (a *BoundAttributeDescriptor) PropertyName() string      { return a.propertyName }
func (a *BoundAttributeDescriptor) TypeName() string          { return a.typeName }
func (a *BoundAttributeDescriptor) DisplayName() string       { return a.displayName }
func (a *BoundAttributeDescriptor) Documentation() string     { return a.documentation }
func (a *BoundAttributeDescriptor) IsEnum() bool              { return a.isEnum }
func (a *BoundAttributeDescriptor) IsStringProperty() bool    { return a.isString }
func (a *BoundAttributeDescriptor) IsBooleanProperty() bool   { return a.isBoolean }
func (a *BoundAttributeDescriptor) HasIndexer() bool          { return a.hasIndexer }
func (a *BoundAttributeDescriptor) IndexerNamePrefix() string { return a.indexerNamePrefix }
func (a *BoundAttributeDescriptor) IndexerTypeName() string   { return a.indexerTypeName }

// IsIndexerStringProperty reports whether indexer values are strings.
func (a *BoundAttributeDescriptor) IsIndexerStringProperty() bool {
	return a.hasIndexer && a.indexerTypeName == names.TypeString
}

// IsIndexerBooleanProperty reports whether indexer values are booleans.
func (a *BoundAttributeDescriptor) IsIndexerBooleanProperty() bool {
	return a.hasIndexer && a.indexerTypeName == names.TypeBoolean
}

// IsDirectiveAttribute reports whether the attribute is written with a
// leading '@'.
func (a *BoundAttributeDescriptor) IsDirectiveAttribute() bool {
	return a.metadata[MetaDirectiveAttribute] == True
}

// Parameters returns the attribute parameters in declaration order.
func (a *BoundAttributeDescriptor) Parameters() []*BoundAttributeParameterDescriptor {
	return a.parameters
}

// Metadata returns the kind-specific metadata. Callers must not modify it.
func (a *BoundAttributeDescriptor) Metadata() map[string]string {
	return a.metadata
}

// Diagnostics returns the diagnostics attached to this attribute.
func (a *BoundAttributeDescriptor) Diagnostics() []diagnostic.Diagnostic {
	return a.diagnostics
}

// HasErrors reports whether any attached diagnostic is an error.
func (a *BoundAttributeDescriptor) HasErrors() bool {
	return diagnostic.HasErrors(a.diagnostics)
}

// Owner returns the tag helper this attribute belongs to. It is used for
// lookups only and takes no part in equality.
func (a *BoundAttributeDescriptor) Owner() *TagHelperDescriptor {
	return a.owner
}

// Equal reports structural equality, ignoring the owner.
func (a *BoundAttributeDescriptor) Equal(other *BoundAttributeDescriptor) bool {
	if a == nil || other == nil {
		return a == other
	}
	return a.kind == other.kind &&
		a.name == other.name &&
		a.propertyName == other.propertyName &&
		a.typeName == other.typeName &&
		a.displayName == other.displayName &&
		a.documentation == other.documentation &&
		a.isEnum == other.isEnum &&
		a.isString == other.isString &&
		a.isBoolean == other.isBoolean &&
		a.hasIndexer == other.hasIndexer &&
		a.indexerNamePrefix == other.indexerNamePrefix &&
		a.indexerTypeName == other.indexerTypeName &&
		slices.EqualFunc(a.parameters, other.parameters, (*BoundAttributeParameterDescriptor).Equal) &&
		maps.Equal(a.metadata, other.metadata) &&
		slices.EqualFunc(a.diagnostics, other.diagnostics, diagnostic.Diagnostic.Equal)
}

// BoundAttributeParameterDescriptor is a sub-parameter of a directive
// attribute, written as "@attr:parameter".
type BoundAttributeParameterDescriptor struct {
	name          string
	propertyName  string
	typeName      string
	displayName   string
	documentation string
	isEnum        bool
	metadata      map[string]string

	owner *BoundAttributeDescriptor
}

func (p *BoundAttributeParameterDescriptor) Name() string          { return p.name }
func (p *BoundAttributeParameterDescriptor) PropertyName() string  { return p.propertyName }
func (p *BoundAttributeParameterDescriptor) TypeName() string      { return p.typeName }
func (p *BoundAttributeParameterDescriptor) DisplayName() string   { return p.displayName }
func (p *BoundAttributeParameterDescriptor) Documentation() string { return p.documentation }
func (p *BoundAttributeParameterDescriptor) IsEnum() bool          { return p.isEnum }

// IsBooleanProperty reports whether the parameter is a boolean.
func (p *BoundAttributeParameterDescriptor) IsBooleanProperty() bool {
	return p.typeName == names.TypeBoolean
}

// IsStringProperty reports whether the parameter is a string.
func (p *BoundAttributeParameterDescriptor) IsStringProperty() bool {
	return p.typeName == names.TypeString
}

// Metadata returns the parameter metadata. Callers must not modify it.
func (p *BoundAttributeParameterDescriptor) Metadata() map[string]string {
	return p.metadata
}

// Owner returns the attribute this parameter belongs to.
func (p *BoundAttributeParameterDescriptor) Owner() *BoundAttributeDescriptor {
	return p.owner
}

// Equal reports structural equality, ignoring the owner.
func (p *BoundAttributeParameterDescriptor) Equal(other *BoundAttributeParameterDescriptor) bool {
	if p == nil || other == nil {
		return p == other
	}
	return p.name == other.name &&
		p.propertyName == other.propertyName &&
		p.typeName == other.typeName &&
		p.displayName == other.displayName &&
		p.documentation == other.documentation &&
		p.isEnum == other.isEnum &&
		maps.Equal(p.metadata, other.metadata)
}

// ParameterBuilder accumulates one BoundAttributeParameterDescriptor.
type ParameterBuilder struct {
	Name          string
	PropertyName  string
	TypeName      string
	DisplayName   string
	Documentation string
	IsEnum        bool
	Metadata      map[string]string
}

func (b *ParameterBuilder) build(owner *BoundAttributeDescriptor) *BoundAttributeParameterDescriptor {
	display := b.DisplayName
	if display == "" {
		display = ":" + b.Name
	}
	return &BoundAttributeParameterDescriptor{
		name:          b.Name,
		propertyName:  b.PropertyName,
		typeName:      b.TypeName,
		displayName:   display,
		documentation: b.Documentation,
		isEnum:        b.IsEnum,
		metadata:      cloneMetadata(b.Metadata),
		owner:         owner,
	}
}

// BoundAttributeBuilder accumulates one BoundAttributeDescriptor.
type BoundAttributeBuilder struct {
	Name              string
	PropertyName      string
	TypeName          string
	DisplayName       string
	Documentation     string
	IsEnum            bool
	HasIndexer        bool
	IndexerNamePrefix string
	IndexerTypeName   string
	Metadata          map[string]string

	kind       Kind
	parameters []*ParameterBuilder
	diags      *diagnostic.Collector
}

// Parameter appends a parameter and returns its builder.
func (b *BoundAttributeBuilder) Parameter() *ParameterBuilder {
	p := &ParameterBuilder{Metadata: map[string]string{}}
	b.parameters = append(b.parameters, p)
	return p
}

// AddDiagnostic attaches d to the attribute being built.
func (b *BoundAttributeBuilder) AddDiagnostic(d diagnostic.Diagnostic) {
	if b.diags == nil {
		b.diags = diagnostic.NewCollector()
	}
	b.diags.Add(d)
}

func (b *BoundAttributeBuilder) isDirective() bool {
	return b.Metadata[MetaDirectiveAttribute] == True
}

// build freezes the attribute. The returned reserved diagnostics are non-nil
// when the name or indexer prefix uses the reserved "data-" prefix, in which
// case the attribute is nil and must be left out of its tag helper.
func (b *BoundAttributeBuilder) build(ownerType string) (attr *BoundAttributeDescriptor, reserved []diagnostic.Diagnostic) {
	directive := b.isDirective()

	var diags []diagnostic.Diagnostic
	if b.Name != "" || !b.HasIndexer {
		nameDiags, isReserved := validate.BoundAttributeName(ownerType, b.PropertyName, b.Name, directive)
		if isReserved {
			reserved = append(reserved, nameDiags...)
		} else {
			diags = append(diags, nameDiags...)
		}
	}
	if b.HasIndexer {
		prefixDiags, isReserved := validate.BoundAttributePrefix(ownerType, b.PropertyName, b.IndexerNamePrefix, directive)
		if isReserved {
			reserved = append(reserved, prefixDiags...)
		} else {
			diags = append(diags, prefixDiags...)
		}
	}
	if reserved != nil {
		return nil, reserved
	}
	for _, p := range b.parameters {
		diags = append(diags, validate.ParameterName(b.Name, p.Name)...)
	}
	diags = append(diags, b.diags.Diagnostics()...)

	display := b.DisplayName
	if display == "" {
		display = b.TypeName + " " + ownerType + "." + b.PropertyName
	}
	a := &BoundAttributeDescriptor{
		kind:              b.kind,
		name:              b.Name,
		propertyName:      b.PropertyName,
		typeName:          b.TypeName,
		displayName:       display,
		documentation:     b.Documentation,
		isEnum:            b.IsEnum,
		isString:          b.TypeName == names.TypeString,
		isBoolean:         b.TypeName == names.TypeBoolean,
		hasIndexer:        b.HasIndexer,
		indexerNamePrefix: b.IndexerNamePrefix,
		indexerTypeName:   b.IndexerTypeName,
		metadata:          cloneMetadata(b.Metadata),
		diagnostics:       diags,
	}
	if !b.HasIndexer {
		a.indexerNamePrefix = ""
		a.indexerTypeName = ""
	}
	for _, p := range b.parameters {
		a.parameters = append(a.parameters, p.build(a))
	}
	return a, nil
}

func cloneMetadata(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	maps.Copy(out, m)
	return out
}
