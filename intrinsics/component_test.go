// SPDX-License-Identifier: MIT

package intrinsics

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/albertocavalcante/razortags/descriptor"
	"github.com/albertocavalcante/razortags/internal/names"
	"github.com/albertocavalcante/razortags/symbols"
	"github.com/albertocavalcante/razortags/typename"
)

func builtins() map[string]*symbols.NamedType {
	m := map[string]*symbols.NamedType{}
	for _, b := range symbols.Builtins() {
		m[b.MetadataName()] = b
	}
	return m
}

var parameterAttr = symbols.Attribute{Type: "Parameter"}

func param(name string, typ symbols.Type, attrs ...symbols.Attribute) symbols.Property {
	return symbols.Property{
		Name:       name,
		Type:       typ,
		Getter:     symbols.AccessPublic,
		Setter:     symbols.AccessPublic,
		Attributes: append([]symbols.Attribute{parameterAttr}, attrs...),
	}
}

// grid is a generic component with one parameter of every kind.
func grid() *symbols.NamedType {
	bt := builtins()
	item := symbols.TypeParameter("TItem")
	str := bt[names.TypeString]
	hidden := param("Internal", str, symbols.Attribute{Type: "EditorBrowsable", Args: []symbols.Value{symbols.Enum("EditorBrowsableState.Never")}})
	return &symbols.NamedType{
		Simple:     "Grid",
		Namespace:  "Test",
		Assembly:   "TestAssembly",
		TypeParams: []string{"TItem"},
		Base:       bt[names.ComponentBase],
		Props: []symbols.Property{
			param("Items", symbols.ArrayOf(item)),
			param("RowTemplate", bt[names.RenderFragmentOfT].Construct(item)),
			param("ChildContent", bt[names.RenderFragment]),
			param("Value", str),
			param("ValueChanged", bt[names.EventCallbackOfT].Construct(str)),
			{Name: "NotAParameter", Type: str, Getter: symbols.AccessPublic, Setter: symbols.AccessPublic},
			hidden,
		},
	}
}

func TestIsComponent(t *testing.T) {
	bt := builtins()
	abstract := grid()
	abstract.Abstract = true
	internal := grid()
	internal.Access = symbols.AccessInternal
	plain := &symbols.NamedType{Simple: "Plain", Namespace: "Test", Base: bt[names.TypeObject]}

	tests := []struct {
		name string
		typ  symbols.Type
		want bool
	}{
		{name: "generic component", typ: grid(), want: true},
		{name: "abstract", typ: abstract, want: false},
		{name: "internal", typ: internal, want: false},
		{name: "not a component", typ: plain, want: false},
		{name: "nil", typ: nil, want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsComponent(tc.typ); got != tc.want {
				t.Errorf("IsComponent() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestComponents(t *testing.T) {
	got := Components([]symbols.Type{grid()}, Options{})

	type summary struct {
		Kind  descriptor.Kind
		Name  string
		Rules []rule
		Match string
	}
	var gotSummary []summary
	for _, d := range got {
		gotSummary = append(gotSummary, summary{
			Kind:  d.Kind(),
			Name:  d.Name(),
			Rules: rulesOf(d),
			Match: d.Metadata()[descriptor.MetaNameMatch],
		})
	}
	fq := descriptor.FullyQualifiedMatch
	want := []summary{
		{Kind: descriptor.KindComponent, Name: "Test.Grid<TItem>", Rules: []rule{{Tag: "Grid"}}},
		{Kind: descriptor.KindComponent, Name: "Test.Grid<TItem>", Rules: []rule{{Tag: "Test.Grid"}}, Match: fq},
		{Kind: descriptor.KindChildContent, Name: "Test.Grid<TItem>.RowTemplate", Rules: []rule{{Tag: "RowTemplate", Parent: "Grid"}}},
		{Kind: descriptor.KindChildContent, Name: "Test.Grid<TItem>.ChildContent", Rules: []rule{{Tag: "ChildContent", Parent: "Grid"}}},
		{Kind: descriptor.KindChildContent, Name: "Test.Grid<TItem>.RowTemplate", Rules: []rule{{Tag: "RowTemplate", Parent: "Test.Grid"}}, Match: fq},
		{Kind: descriptor.KindChildContent, Name: "Test.Grid<TItem>.ChildContent", Rules: []rule{{Tag: "ChildContent", Parent: "Test.Grid"}}, Match: fq},
	}
	if diff := cmp.Diff(want, gotSummary); diff != "" {
		t.Errorf("Components mismatch (-want +got):\n%s", diff)
	}
	for _, d := range got {
		if d.HasErrors() {
			t.Errorf("%s: unexpected diagnostics: %v", d.Name(), d.AllDiagnostics())
		}
	}
}

func TestComponents_Attributes(t *testing.T) {
	d := Components([]symbols.Type{grid()}, Options{})[0]

	if got := d.Metadata()[descriptor.MetaGlobalTypeName]; got != "global::Test.Grid<TItem>" {
		t.Errorf("global type name = %q, want %q", got, "global::Test.Grid<TItem>")
	}
	if d.Metadata()[descriptor.MetaGenericTyped] != descriptor.True {
		t.Error("generic component is not marked generic typed")
	}
	if !d.CaseSensitive() {
		t.Error("component descriptor is not case sensitive")
	}

	type attrSummary struct {
		Name    string
		Type    string
		Generic bool
		Flags   []string
	}
	flags := []string{
		descriptor.MetaTypeParameter,
		descriptor.MetaChildContent,
		descriptor.MetaEventCallback,
		descriptor.MetaChildContentParameter,
	}
	var got []attrSummary
	for _, a := range d.BoundAttributes() {
		s := attrSummary{Name: a.Name(), Type: a.TypeName(), Generic: a.Metadata()[descriptor.MetaGenericTyped] == descriptor.True}
		for _, f := range flags {
			if a.Metadata()[f] == descriptor.True {
				s.Flags = append(s.Flags, f)
			}
		}
		got = append(got, s)
	}

	want := []attrSummary{
		{Name: "TItem", Type: "System.Type", Flags: []string{descriptor.MetaTypeParameter}},
		{Name: "Items", Type: "TItem[]", Generic: true},
		{Name: "RowTemplate", Type: "Microsoft.AspNetCore.Components.RenderFragment<TItem>", Generic: true, Flags: []string{descriptor.MetaChildContent}},
		{Name: "ChildContent", Type: "Microsoft.AspNetCore.Components.RenderFragment", Flags: []string{descriptor.MetaChildContent}},
		{Name: "Value", Type: "System.String"},
		{Name: "ValueChanged", Type: "Microsoft.AspNetCore.Components.EventCallback<System.String>", Flags: []string{descriptor.MetaEventCallback}},
		{Name: "Internal", Type: "System.String"},
		{Name: "Context", Type: "System.String", Flags: []string{descriptor.MetaChildContentParameter}},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("bound attributes mismatch (-want +got):\n%s", diff)
	}

	items, _ := d.BoundAttribute("Value")
	if got := items.Metadata()[descriptor.MetaGlobalTypeName]; got != "global::System.String" {
		t.Errorf("Value global type name = %q, want %q", got, "global::System.String")
	}
}

func TestComponents_ExcludeHidden(t *testing.T) {
	d := Components([]symbols.Type{grid()}, Options{ExcludeHidden: true})[0]
	if _, ok := d.BoundAttribute("Internal"); ok {
		t.Error("hidden parameter was bound")
	}

	hidden := grid()
	hidden.Attrs = []symbols.Attribute{{Type: "EditorBrowsable", Args: []symbols.Value{symbols.Enum("EditorBrowsableState.Never")}}}
	if got := Components([]symbols.Type{hidden}, Options{ExcludeHidden: true}); len(got) != 0 {
		t.Errorf("hidden component produced %d descriptors, want 0", len(got))
	}
}

func TestComponents_ChildContentContext(t *testing.T) {
	all := Components([]symbols.Type{grid()}, Options{})
	row, childContent := all[2], all[3]

	if _, ok := row.BoundAttribute("Context"); !ok {
		t.Error("templated child content has no Context attribute")
	}
	if _, ok := childContent.BoundAttribute("Context"); ok {
		t.Error("plain child content has a Context attribute")
	}
	if row.Metadata()[descriptor.MetaRuntimeName] != descriptor.RuntimeNone {
		t.Errorf("runtime name = %q, want %q", row.Metadata()[descriptor.MetaRuntimeName], descriptor.RuntimeNone)
	}
}

func TestComponentBinds(t *testing.T) {
	components := Components([]symbols.Type{grid()}, Options{})

	got := ComponentBinds(components, Options{})
	if len(got) != 2 {
		t.Fatalf("ComponentBinds returned %d descriptors, want 2", len(got))
	}

	short, full := got[0], got[1]
	if diff := cmp.Diff([]rule{{Tag: "Grid", Attributes: []string{"@bind-Value"}}}, rulesOf(short)); diff != "" {
		t.Errorf("short rules mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]rule{{Tag: "Test.Grid", Attributes: []string{"@bind-Value"}}}, rulesOf(full)); diff != "" {
		t.Errorf("qualified rules mismatch (-want +got):\n%s", diff)
	}
	if full.Metadata()[descriptor.MetaNameMatch] != descriptor.FullyQualifiedMatch {
		t.Error("qualified bind lost its name match")
	}

	wantMeta := map[string]string{
		descriptor.MetaBindValueAttribute:  "Value",
		descriptor.MetaBindChangeAttribute: "ValueChanged",
		descriptor.MetaBindAttributeName:   "@bind-Value",
	}
	for k, v := range wantMeta {
		if got := short.Metadata()[k]; got != v {
			t.Errorf("Metadata()[%q] = %q, want %q", k, got, v)
		}
	}

	a := short.BoundAttributes()[0]
	if a.Name() != "@bind-Value" || a.PropertyName() != "Value" || a.TypeName() != "System.String" {
		t.Errorf("attribute = (%q, %q, %q), want (%q, %q, %q)", a.Name(), a.PropertyName(), a.TypeName(), "@bind-Value", "Value", "System.String")
	}
}

func TestComponentBinds_ActionChange(t *testing.T) {
	bt := builtins()
	action := &symbols.NamedType{Simple: "Action", Namespace: "System", TypeKind: symbols.KindDelegate, TypeParams: []string{"T"}}
	counter := &symbols.NamedType{
		Simple:    "Counter",
		Namespace: "Test",
		Assembly:  "TestAssembly",
		Base:      bt[names.ComponentBase],
		Props: []symbols.Property{
			param("Count", bt["System.Int32"]),
			param("CountChanged", action.Construct(bt["System.Int32"])),
			param("Step", bt["System.Int32"]),
		},
	}

	got := ComponentBinds(Components([]symbols.Type{counter}, Options{}), Options{})
	if len(got) != 2 {
		t.Fatalf("ComponentBinds returned %d descriptors, want 2", len(got))
	}
	if name := got[0].Metadata()[descriptor.MetaBindAttributeName]; name != "@bind-Count" {
		t.Errorf("bind attribute = %q, want %q", name, "@bind-Count")
	}
}

func TestSpecialize(t *testing.T) {
	d := Components([]symbols.Type{grid()}, Options{})[0]

	got := Specialize(d, map[string]typename.Binding{"TItem": typename.Bind("System.Int32")})

	if got.TypeName() != "Test.Grid<System.Int32>" {
		t.Errorf("TypeName() = %q, want %q", got.TypeName(), "Test.Grid<System.Int32>")
	}
	items, _ := got.BoundAttribute("Items")
	if items.TypeName() != "System.Int32[]" {
		t.Errorf("Items TypeName() = %q, want %q", items.TypeName(), "System.Int32[]")
	}
	row, _ := got.BoundAttribute("RowTemplate")
	if want := "Microsoft.AspNetCore.Components.RenderFragment<System.Int32>"; row.TypeName() != want {
		t.Errorf("RowTemplate TypeName() = %q, want %q", row.TypeName(), want)
	}
	wantMeta := map[string]string{
		descriptor.MetaTypeName:       "Test.Grid<System.Int32>",
		descriptor.MetaGlobalTypeName: "global::Test.Grid<global::System.Int32>",
	}
	for key, want := range wantMeta {
		if v := got.Metadata()[key]; v != want {
			t.Errorf("Metadata()[%s] = %q, want %q", key, v, want)
		}
	}
	if v := items.Metadata()[descriptor.MetaGlobalTypeName]; v != "global::System.Int32[]" {
		t.Errorf("Items global type name = %q, want %q", v, "global::System.Int32[]")
	}
	if orig, _ := d.BoundAttribute("Items"); orig.TypeName() != "TItem[]" {
		t.Errorf("original Items TypeName() = %q, want unchanged", orig.TypeName())
	}

	if v := d.Metadata()[descriptor.MetaGlobalTypeName]; v != "global::Test.Grid<TItem>" {
		t.Errorf("original global type name = %q, want unchanged", v)
	}

	plain := Ref(Options{})
	if Specialize(plain, nil) != plain {
		t.Error("Specialize copied a non-generic descriptor")
	}
}

func TestSpecialize_Unbound(t *testing.T) {
	d := Components([]symbols.Type{grid()}, Options{})[0]

	got := Specialize(d, map[string]typename.Binding{})

	if v := got.Metadata()[descriptor.MetaGlobalTypeName]; v != "global::Test.Grid<TItem>" {
		t.Errorf("global type name = %q, want %q", v, "global::Test.Grid<TItem>")
	}
	items, _ := got.BoundAttribute("Items")
	if v := items.Metadata()[descriptor.MetaGlobalTypeName]; v != "TItem[]" {
		t.Errorf("Items global type name = %q, want %q", v, "TItem[]")
	}
}
