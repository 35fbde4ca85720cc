// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package report renders descriptor graphs as deterministic JSON.
//
// Output is stable for equal inputs: descriptors keep producer order and
// metadata maps are emitted with sorted keys, so reports can be diffed and
// checked into golden files.
package report

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"

	"github.com/albertocavalcante/razortags/descriptor"
	"github.com/albertocavalcante/razortags/diagnostic"
)

// Report is the document written by the scan command.
type Report struct {
	Assembly    string       `json:"assembly"`
	Revision    string       `json:"revision,omitempty"`
	Descriptors []Descriptor `json:"descriptors"`
}

type Descriptor struct {
	Kind                   string            `json:"kind"`
	Name                   string            `json:"name"`
	DisplayName            string            `json:"displayName"`
	TypeName               string            `json:"typeName,omitempty"`
	AssemblyName           string            `json:"assemblyName"`
	Documentation          string            `json:"documentation,omitempty"`
	CaseSensitive          bool              `json:"caseSensitive,omitzero"`
	ClassifyAttributesOnly bool              `json:"classifyAttributesOnly,omitzero"`
	TagOutputHint          string            `json:"tagOutputHint,omitempty"`
	AllowedChildTags       []string          `json:"allowedChildTags,omitempty"`
	Rules                  []Rule            `json:"tagMatchingRules"`
	BoundAttributes        []BoundAttribute  `json:"boundAttributes,omitempty"`
	Metadata               map[string]string `json:"metadata,omitempty"`
	Diagnostics            []Diagnostic      `json:"diagnostics,omitempty"`
}

type Rule struct {
	TagName      string              `json:"tagName"`
	ParentTag    string              `json:"parentTag,omitempty"`
	TagStructure string              `json:"tagStructure,omitempty"`
	Attributes   []RequiredAttribute `json:"attributes,omitempty"`
	Diagnostics  []Diagnostic        `json:"diagnostics,omitempty"`
}

type RequiredAttribute struct {
	Name               string       `json:"name"`
	NameComparison     string       `json:"nameComparison"`
	Value              string       `json:"value,omitempty"`
	ValueComparison    string       `json:"valueComparison"`
	DirectiveAttribute bool         `json:"directiveAttribute,omitzero"`
	Diagnostics        []Diagnostic `json:"diagnostics,omitempty"`
}

type BoundAttribute struct {
	Name              string            `json:"name"`
	PropertyName      string            `json:"propertyName,omitempty"`
	TypeName          string            `json:"typeName"`
	DisplayName       string            `json:"displayName"`
	Documentation     string            `json:"documentation,omitempty"`
	IsEnum            bool              `json:"isEnum,omitzero"`
	IndexerNamePrefix string            `json:"indexerNamePrefix,omitempty"`
	IndexerTypeName   string            `json:"indexerTypeName,omitempty"`
	Parameters        []Parameter       `json:"parameters,omitempty"`
	Metadata          map[string]string `json:"metadata,omitempty"`
	Diagnostics       []Diagnostic      `json:"diagnostics,omitempty"`
}

type Parameter struct {
	Name          string            `json:"name"`
	PropertyName  string            `json:"propertyName,omitempty"`
	TypeName      string            `json:"typeName"`
	Documentation string            `json:"documentation,omitempty"`
	IsEnum        bool              `json:"isEnum,omitzero"`
	Metadata      map[string]string `json:"metadata,omitempty"`
}

type Diagnostic struct {
	ID       string   `json:"id"`
	Severity string   `json:"severity"`
	Category string   `json:"category,omitempty"`
	Args     []string `json:"args,omitempty"`
	Message  string   `json:"message"`
}

// New converts descriptors into a report.
func New(assembly, revision string, descriptors []*descriptor.TagHelperDescriptor) *Report {
	r := &Report{Assembly: assembly, Revision: revision, Descriptors: []Descriptor{}}
	for _, d := range descriptors {
		r.Descriptors = append(r.Descriptors, FromDescriptor(d))
	}
	return r
}

func FromDescriptor(d *descriptor.TagHelperDescriptor) Descriptor {
	out := Descriptor{
		Kind:                   string(d.Kind()),
		Name:                   d.Name(),
		DisplayName:            d.DisplayName(),
		TypeName:               d.TypeName(),
		AssemblyName:           d.AssemblyName(),
		Documentation:          d.Documentation(),
		CaseSensitive:          d.CaseSensitive(),
		ClassifyAttributesOnly: d.ClassifyAttributesOnly(),
		TagOutputHint:          d.TagOutputHint(),
		AllowedChildTags:       d.AllowedChildTags(),
		Rules:                  []Rule{},
		Metadata:               d.Metadata(),
		Diagnostics:            Diagnostics(d.Diagnostics()),
	}
	for _, r := range d.TagMatchingRules() {
		out.Rules = append(out.Rules, FromRule(r))
	}
	for _, a := range d.BoundAttributes() {
		out.BoundAttributes = append(out.BoundAttributes, fromBoundAttribute(a))
	}
	return out
}

func FromRule(r *descriptor.TagMatchingRuleDescriptor) Rule {
	out := Rule{
		TagName:     r.TagName(),
		ParentTag:   r.ParentTag(),
		Attributes:  RequiredAttributes(r.Attributes()),
		Diagnostics: Diagnostics(r.Diagnostics()),
	}
	if s := r.TagStructure(); s != descriptor.TagStructureUnspecified {
		out.TagStructure = s.String()
	}
	return out
}

// RequiredAttributes converts required attribute descriptors, keeping order.
func RequiredAttributes(attrs []*descriptor.RequiredAttributeDescriptor) []RequiredAttribute {
	var out []RequiredAttribute
	for _, a := range attrs {
		out = append(out, RequiredAttribute{
			Name:               a.Name(),
			NameComparison:     a.NameComparison().String(),
			Value:              a.Value(),
			ValueComparison:    a.ValueComparison().String(),
			DirectiveAttribute: a.IsDirectiveAttribute(),
			Diagnostics:        Diagnostics(a.Diagnostics()),
		})
	}
	return out
}

func fromBoundAttribute(a *descriptor.BoundAttributeDescriptor) BoundAttribute {
	out := BoundAttribute{
		Name:              a.Name(),
		PropertyName:      a.PropertyName(),
		TypeName:          a.TypeName(),
		DisplayName:       a.DisplayName(),
		Documentation:     a.Documentation(),
		IsEnum:            a.IsEnum(),
		IndexerNamePrefix: a.IndexerNamePrefix(),
		IndexerTypeName:   a.IndexerTypeName(),
		Metadata:          a.Metadata(),
		Diagnostics:       Diagnostics(a.Diagnostics()),
	}
	for _, p := range a.Parameters() {
		out.Parameters = append(out.Parameters, Parameter{
			Name:          p.Name(),
			PropertyName:  p.PropertyName(),
			TypeName:      p.TypeName(),
			Documentation: p.Documentation(),
			IsEnum:        p.IsEnum(),
			Metadata:      p.Metadata(),
		})
	}
	return out
}

func Diagnostics(diags []diagnostic.Diagnostic) []Diagnostic {
	var out []Diagnostic
	for _, d := range diags {
		out = append(out, Diagnostic{
			ID:       d.ID,
			Severity: d.Severity.String(),
			Category: string(d.Category),
			Args:     d.Args,
			Message:  d.Message(),
		})
	}
	return out
}

// Write encodes v as indented JSON with sorted map keys.
func Write(w io.Writer, v any) error {
	if err := json.MarshalWrite(w, v, jsontext.WithIndent("  "), json.Deterministic(true)); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// Summary counts descriptors and diagnostics.
type Summary struct {
	Kinds    map[descriptor.Kind]int
	Total    int
	Errors   int
	Warnings int
}

// Summarize counts descriptors per kind and every diagnostic in their
// graphs.
func Summarize(descriptors []*descriptor.TagHelperDescriptor) Summary {
	s := Summary{Kinds: map[descriptor.Kind]int{}}
	for _, d := range descriptors {
		s.Total++
		s.Kinds[d.Kind()]++
		for _, diag := range d.AllDiagnostics() {
			if diag.IsError() {
				s.Errors++
			} else {
				s.Warnings++
			}
		}
	}
	return s
}

// WriteText prints the summary as aligned lines, kinds in name order.
func (s Summary) WriteText(w io.Writer) error {
	kinds := make([]string, 0, len(s.Kinds))
	width := len("diagnostics")
	for k := range s.Kinds {
		kinds = append(kinds, string(k))
		width = max(width, len(k))
	}
	slices.Sort(kinds)

	var sb strings.Builder
	for _, k := range kinds {
		fmt.Fprintf(&sb, "%-*s %d\n", width, k, s.Kinds[descriptor.Kind(k)])
	}
	fmt.Fprintf(&sb, "%-*s %d\n", width, "total", s.Total)
	fmt.Fprintf(&sb, "%-*s %d errors, %d warnings\n", width, "diagnostics", s.Errors, s.Warnings)
	_, err := io.WriteString(w, sb.String())
	return err
}
