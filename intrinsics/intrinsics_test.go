// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package intrinsics

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/albertocavalcante/razortags/descriptor"
	"github.com/albertocavalcante/razortags/internal/names"
	"github.com/albertocavalcante/razortags/symbols"
)

type rule struct {
	Tag        string
	Parent     string
	Attributes []string
}

func rulesOf(d *descriptor.TagHelperDescriptor) []rule {
	var out []rule
	for _, r := range d.TagMatchingRules() {
		got := rule{Tag: r.TagName(), Parent: r.ParentTag()}
		for _, a := range r.Attributes() {
			name := a.DisplayName()
			if a.Value() != "" {
				name += "=" + a.Value()
			}
			got.Attributes = append(got.Attributes, name)
		}
		out = append(out, got)
	}
	return out
}

func parametersOf(a *descriptor.BoundAttributeDescriptor) []string {
	var out []string
	for _, p := range a.Parameters() {
		out = append(out, p.Name()+":"+p.TypeName())
	}
	return out
}

func TestFixed(t *testing.T) {
	tests := []struct {
		name      string
		build     func(Options) *descriptor.TagHelperDescriptor
		kind      descriptor.Kind
		attribute string
		typeName  string
	}{
		{name: "ref", build: Ref, kind: descriptor.KindRef, attribute: "@ref", typeName: "Microsoft.AspNetCore.Components.Ref"},
		{name: "key", build: Key, kind: descriptor.KindKey, attribute: "@key", typeName: "Microsoft.AspNetCore.Components.Key"},
		{name: "splat", build: Splat, kind: descriptor.KindSplat, attribute: "@attributes", typeName: "Microsoft.AspNetCore.Components.Attributes"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := tc.build(Options{})

			if d.Kind() != tc.kind {
				t.Errorf("Kind() = %q, want %q", d.Kind(), tc.kind)
			}
			if d.TypeName() != tc.typeName {
				t.Errorf("TypeName() = %q, want %q", d.TypeName(), tc.typeName)
			}
			if d.AssemblyName() != AssemblyName {
				t.Errorf("AssemblyName() = %q, want %q", d.AssemblyName(), AssemblyName)
			}
			if !d.CaseSensitive() || !d.ClassifyAttributesOnly() {
				t.Errorf("CaseSensitive() = %v, ClassifyAttributesOnly() = %v, want both true", d.CaseSensitive(), d.ClassifyAttributesOnly())
			}
			if got := d.Metadata()[descriptor.MetaSpecialKind]; got != string(tc.kind) {
				t.Errorf("special kind = %q, want %q", got, tc.kind)
			}
			if d.Documentation() != "" {
				t.Errorf("Documentation() = %q, want empty", d.Documentation())
			}
			if d.HasErrors() {
				t.Errorf("unexpected diagnostics: %v", d.AllDiagnostics())
			}

			want := []rule{{Tag: "*", Attributes: []string{tc.attribute}}}
			if diff := cmp.Diff(want, rulesOf(d)); diff != "" {
				t.Errorf("rules mismatch (-want +got):\n%s", diff)
			}

			a, ok := d.BoundAttribute(tc.attribute)
			if !ok {
				t.Fatalf("BoundAttribute(%q) not found", tc.attribute)
			}
			if a.TypeName() != names.TypeObject || !a.IsDirectiveAttribute() {
				t.Errorf("attribute type = %q, directive = %v, want %q, true", a.TypeName(), a.IsDirectiveAttribute(), names.TypeObject)
			}
			if !d.TagMatchingRules()[0].Attributes()[0].IsDirectiveAttribute() {
				t.Error("required attribute is not a directive attribute")
			}
		})
	}
}

func TestFixed_Documentation(t *testing.T) {
	d := Ref(Options{IncludeDocumentation: true})
	if d.Documentation() != refDoc {
		t.Errorf("Documentation() = %q, want %q", d.Documentation(), refDoc)
	}
	if got := d.BoundAttributes()[0].Documentation(); got != refDoc {
		t.Errorf("attribute Documentation() = %q, want %q", got, refDoc)
	}
}

func eventHandlerType(attrs ...symbols.Attribute) *symbols.NamedType {
	return &symbols.NamedType{
		Simple:    "EventHandlers",
		Namespace: "Microsoft.AspNetCore.Components.Web",
		Assembly:  "Microsoft.AspNetCore.Components.Web",
		Attrs:     attrs,
	}
}

func eventHandlerAttr(args ...symbols.Value) symbols.Attribute {
	return symbols.Attribute{Type: "EventHandler", Args: args}
}

func TestEventHandlerDeclarations(t *testing.T) {
	typ := eventHandlerType(
		eventHandlerAttr(symbols.Str("onclick"), symbols.TypeOf("Microsoft.AspNetCore.Components.Web.MouseEventArgs"), symbols.Bool(true), symbols.Bool(true)),
		eventHandlerAttr(symbols.Str("onchange"), symbols.TypeOf("Microsoft.AspNetCore.Components.ChangeEventArgs")),
		eventHandlerAttr(symbols.Str(""), symbols.TypeOf("System.EventArgs")),
		eventHandlerAttr(symbols.Str("onfocus"), symbols.Str("not a type")),
		symbols.Attribute{Type: "Obsolete"},
	)

	got := EventHandlerDeclarations([]symbols.Type{typ})

	want := []EventHandler{
		{
			Attribute:       "onclick",
			EventArgs:       "Microsoft.AspNetCore.Components.Web.MouseEventArgs",
			StopPropagation: true,
			PreventDefault:  true,
			TypeName:        "Microsoft.AspNetCore.Components.Web.EventHandlers",
			Assembly:        "Microsoft.AspNetCore.Components.Web",
		},
		{
			Attribute: "onchange",
			EventArgs: "Microsoft.AspNetCore.Components.ChangeEventArgs",
			TypeName:  "Microsoft.AspNetCore.Components.Web.EventHandlers",
			Assembly:  "Microsoft.AspNetCore.Components.Web",
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("EventHandlerDeclarations mismatch (-want +got):\n%s", diff)
	}
}

func TestNewEventHandler(t *testing.T) {
	tests := []struct {
		name       string
		handler    EventHandler
		wantRules  []rule
		wantParams []string
	}{
		{
			name:      "plain",
			handler:   EventHandler{Attribute: "onchange", EventArgs: "ChangeEventArgs"},
			wantRules: []rule{{Tag: "*", Attributes: []string{"@onchange"}}},
		},
		{
			name:    "both modifiers",
			handler: EventHandler{Attribute: "onclick", EventArgs: "MouseEventArgs", PreventDefault: true, StopPropagation: true},
			wantRules: []rule{
				{Tag: "*", Attributes: []string{"@onclick"}},
				{Tag: "*", Attributes: []string{"@onclick:preventDefault"}},
				{Tag: "*", Attributes: []string{"@onclick:stopPropagation"}},
			},
			wantParams: []string{"preventDefault:System.Boolean", "stopPropagation:System.Boolean"},
		},
		{
			name:       "stop propagation only",
			handler:    EventHandler{Attribute: "onkeydown", EventArgs: "KeyboardEventArgs", StopPropagation: true},
			wantRules:  []rule{{Tag: "*", Attributes: []string{"@onkeydown"}}, {Tag: "*", Attributes: []string{"@onkeydown:stopPropagation"}}},
			wantParams: []string{"stopPropagation:System.Boolean"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := NewEventHandler(tc.handler, Options{})

			if d.Kind() != descriptor.KindEventHandler {
				t.Errorf("Kind() = %q, want %q", d.Kind(), descriptor.KindEventHandler)
			}
			if want := "@" + tc.handler.Attribute; d.DisplayName() != want {
				t.Errorf("DisplayName() = %q, want %q", d.DisplayName(), want)
			}
			if got := d.Metadata()[descriptor.MetaEventArgsType]; got != tc.handler.EventArgs {
				t.Errorf("event args = %q, want %q", got, tc.handler.EventArgs)
			}
			if diff := cmp.Diff(tc.wantRules, rulesOf(d)); diff != "" {
				t.Errorf("rules mismatch (-want +got):\n%s", diff)
			}

			a := d.BoundAttributes()[0]
			wantType := "Microsoft.AspNetCore.Components.EventCallback<" + tc.handler.EventArgs + ">"
			if a.TypeName() != wantType {
				t.Errorf("attribute TypeName() = %q, want %q", a.TypeName(), wantType)
			}
			if diff := cmp.Diff(tc.wantParams, parametersOf(a)); diff != "" {
				t.Errorf("parameters mismatch (-want +got):\n%s", diff)
			}
			if d.HasErrors() {
				t.Errorf("unexpected diagnostics: %v", d.AllDiagnostics())
			}
		})
	}
}

func TestBindFallback(t *testing.T) {
	d := BindFallback(Options{})

	if d.Metadata()[descriptor.MetaBindFallback] != descriptor.True {
		t.Error("fallback metadata missing")
	}
	want := []rule{{Tag: "*", Attributes: []string{"@bind-..."}}}
	if diff := cmp.Diff(want, rulesOf(d)); diff != "" {
		t.Errorf("rules mismatch (-want +got):\n%s", diff)
	}
	if got := d.TagMatchingRules()[0].Attributes()[0].NameComparison(); got != descriptor.NamePrefixMatch {
		t.Errorf("NameComparison() = %v, want %v", got, descriptor.NamePrefixMatch)
	}

	a := d.BoundAttributes()[0]
	if !a.HasIndexer() || a.IndexerNamePrefix() != "@bind-" || a.IndexerTypeName() != names.TypeObject {
		t.Errorf("indexer = (%v, %q, %q), want (true, %q, %q)", a.HasIndexer(), a.IndexerNamePrefix(), a.IndexerTypeName(), "@bind-", names.TypeObject)
	}
	wantParams := []string{"format:System.String", "event:System.String", "culture:System.Globalization.CultureInfo"}
	if diff := cmp.Diff(wantParams, parametersOf(a)); diff != "" {
		t.Errorf("parameters mismatch (-want +got):\n%s", diff)
	}
	if d.HasErrors() {
		t.Errorf("unexpected diagnostics: %v", d.AllDiagnostics())
	}
}

func TestBindDeclarations(t *testing.T) {
	typ := &symbols.NamedType{
		Simple:    "BindAttributes",
		Namespace: "Microsoft.AspNetCore.Components.Web",
		Assembly:  "Microsoft.AspNetCore.Components.Web",
		Attrs: []symbols.Attribute{
			{Type: "BindElement", Args: []symbols.Value{symbols.Str("select"), symbols.Null(), symbols.Str("value"), symbols.Str("onchange")}},
			{Type: "BindInputElement", Args: []symbols.Value{symbols.Str("checkbox"), symbols.Null(), symbols.Str("checked"), symbols.Str("onchange"), symbols.Bool(false), symbols.Null()}},
			{Type: "BindInputElement", Args: []symbols.Value{symbols.Str("date"), symbols.Str("value"), symbols.Str("value"), symbols.Str("onchange"), symbols.Bool(true), symbols.Str("yyyy-MM-dd")}},
			{Type: "BindElement", Args: []symbols.Value{symbols.Str("textarea"), symbols.Null(), symbols.Null(), symbols.Str("onchange")}},
		},
	}

	got := BindDeclarations([]symbols.Type{typ})

	const owner, assembly = "Microsoft.AspNetCore.Components.Web.BindAttributes", "Microsoft.AspNetCore.Components.Web"
	want := []BindElement{
		{Element: "select", ValueAttribute: "value", ChangeAttribute: "onchange", TypeName: owner, Assembly: assembly},
		{Element: "input", TypeAttribute: "checkbox", ValueAttribute: "checked", ChangeAttribute: "onchange", TypeName: owner, Assembly: assembly},
		{
			Element:          "input",
			TypeAttribute:    "date",
			Suffix:           "value",
			ValueAttribute:   "value",
			ChangeAttribute:  "onchange",
			InvariantCulture: true,
			Format:           "yyyy-MM-dd",
			TypeName:         owner,
			Assembly:         assembly,
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("BindDeclarations mismatch (-want +got):\n%s", diff)
	}

	all := Bind([]symbols.Type{typ}, Options{})
	if len(all) != 4 {
		t.Fatalf("Bind returned %d descriptors, want 4", len(all))
	}
	if all[0].Metadata()[descriptor.MetaBindFallback] != descriptor.True {
		t.Error("Bind()[0] is not the fallback descriptor")
	}
}

func TestNewBind(t *testing.T) {
	tests := []struct {
		name         string
		elem         BindElement
		wantName     string
		wantRules    []rule
		wantAttrs    []string
		wantMetadata map[string]string
	}{
		{
			name:      "element",
			elem:      BindElement{Element: "select", ValueAttribute: "value", ChangeAttribute: "onchange"},
			wantName:  "Bind",
			wantRules: []rule{{Tag: "select", Attributes: []string{"@bind"}}},
			wantAttrs: []string{"@bind", "format-value"},
			wantMetadata: map[string]string{
				descriptor.MetaBindValueAttribute:  "value",
				descriptor.MetaBindChangeAttribute: "onchange",
				descriptor.MetaBindAttributeName:   "@bind",
			},
		},
		{
			name:      "typed input",
			elem:      BindElement{Element: "input", TypeAttribute: "checkbox", ValueAttribute: "checked", ChangeAttribute: "onchange"},
			wantName:  "Bind",
			wantRules: []rule{{Tag: "input", Attributes: []string{"type=checkbox", "@bind"}}},
			wantAttrs: []string{"@bind", "format-checked"},
			wantMetadata: map[string]string{
				descriptor.MetaBindValueAttribute:  "checked",
				descriptor.MetaBindChangeAttribute: "onchange",
				descriptor.MetaBindAttributeName:   "@bind",
				descriptor.MetaBindTypeAttribute:   "checkbox",
			},
		},
		{
			name: "suffixed input",
			elem: BindElement{
				Element:          "input",
				TypeAttribute:    "date",
				Suffix:           "value",
				ValueAttribute:   "value",
				ChangeAttribute:  "onchange",
				InvariantCulture: true,
				Format:           "yyyy-MM-dd",
			},
			wantName:  "Bind_value",
			wantRules: []rule{{Tag: "input", Attributes: []string{"type=date", "@bind-value"}}},
			wantAttrs: []string{"@bind-value", "format-value"},
			wantMetadata: map[string]string{
				descriptor.MetaBindValueAttribute:   "value",
				descriptor.MetaBindChangeAttribute:  "onchange",
				descriptor.MetaBindAttributeName:    "@bind-value",
				descriptor.MetaBindTypeAttribute:    "date",
				descriptor.MetaBindInvariantCulture: descriptor.True,
				descriptor.MetaBindFormat:           "yyyy-MM-dd",
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.elem.TypeName = "Test.BindAttributes"
			tc.elem.Assembly = "TestAssembly"
			d := NewBind(tc.elem, Options{})

			if d.Name() != tc.wantName {
				t.Errorf("Name() = %q, want %q", d.Name(), tc.wantName)
			}
			if diff := cmp.Diff(tc.wantRules, rulesOf(d)); diff != "" {
				t.Errorf("rules mismatch (-want +got):\n%s", diff)
			}
			var attrs []string
			for _, a := range d.BoundAttributes() {
				attrs = append(attrs, a.Name())
			}
			if diff := cmp.Diff(tc.wantAttrs, attrs); diff != "" {
				t.Errorf("attributes mismatch (-want +got):\n%s", diff)
			}
			tc.wantMetadata[descriptor.MetaSpecialKind] = string(descriptor.KindBind)
			tc.wantMetadata[descriptor.MetaTypeName] = "Test.BindAttributes"
			tc.wantMetadata[descriptor.MetaRuntimeName] = descriptor.RuntimeNone
			if diff := cmp.Diff(tc.wantMetadata, d.Metadata()); diff != "" {
				t.Errorf("metadata mismatch (-want +got):\n%s", diff)
			}
			if d.HasErrors() {
				t.Errorf("unexpected diagnostics: %v", d.AllDiagnostics())
			}
		})
	}
}

func TestOptions_Documentation(t *testing.T) {
	e := EventHandler{Attribute: "onclick", EventArgs: "MouseEventArgs", PreventDefault: true}

	off := NewEventHandler(e, Options{})
	if off.Documentation() != "" || off.BoundAttributes()[0].Parameters()[0].Documentation() != "" {
		t.Error("documentation attached with IncludeDocumentation off")
	}

	on := NewEventHandler(e, Options{IncludeDocumentation: true})
	want := "Sets the 'onclick' attribute to the provided string or delegate value. A delegate value should be of type 'MouseEventArgs'."
	if on.Documentation() != want {
		t.Errorf("Documentation() = %q, want %q", on.Documentation(), want)
	}
}
