// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package taghelper

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/albertocavalcante/razortags/internal/names"
	"github.com/albertocavalcante/razortags/symbols"
)

// builtins indexes fresh framework declarations by metadata name.
func builtins() map[string]*symbols.NamedType {
	m := map[string]*symbols.NamedType{}
	for _, b := range symbols.Builtins() {
		m[b.MetadataName()] = b
	}
	return m
}

func class(name string, base symbols.Type, attrs ...symbols.Attribute) *symbols.NamedType {
	return &symbols.NamedType{Simple: name, Namespace: "Test", Assembly: "TestAssembly", Base: base, Attrs: attrs}
}

func TestVisitor_Filter(t *testing.T) {
	bt := builtins()
	tagHelper := bt[names.TagHelperBase]
	object := bt[names.TypeObject]

	eligible := class("AnchorTagHelper", tagHelper)
	abstract := class("AbstractTagHelper", tagHelper)
	abstract.Abstract = true
	generic := class("GenericTagHelper", tagHelper)
	generic.TypeParams = []string{"T"}
	internal := class("InternalTagHelper", tagHelper)
	internal.Access = symbols.AccessInternal
	outer := class("Outer", object)
	outer.Access = symbols.AccessInternal
	nested := class("NestedTagHelper", tagHelper)
	nested.Outer = outer
	inheritsOnly := class("DerivedTagHelper", abstract)
	viaInterface := class("DirectTagHelper", object)
	viaInterface.Ifaces = []symbols.Type{bt[names.TagHelperInterface]}
	iface := &symbols.NamedType{Simple: "ICustomTagHelper", Namespace: "Test", TypeKind: symbols.KindInterface, Ifaces: []symbols.Type{bt[names.TagHelperInterface]}}
	strct := &symbols.NamedType{Simple: "StructTagHelper", Namespace: "Test", TypeKind: symbols.KindStruct, Ifaces: []symbols.Type{bt[names.TagHelperInterface]}}
	unrelated := class("Widget", object)

	input := []symbols.Type{
		unrelated, eligible, abstract, generic, internal, nested,
		inheritsOnly, viaInterface, iface, strct,
	}

	var got []string
	for _, typ := range NewVisitor("").Filter(input) {
		got = append(got, typ.Name())
	}
	want := []string{"AnchorTagHelper", "DerivedTagHelper", "DirectTagHelper"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Filter() mismatch (-want +got):\n%s", diff)
	}
}

func TestVisitor_CustomMarker(t *testing.T) {
	bt := builtins()
	component := class("Counter", bt[names.ComponentBase])
	tagHelper := class("AnchorTagHelper", bt[names.TagHelperBase])

	v := NewVisitor(names.ComponentInterface)
	if v.Marker() != names.ComponentInterface {
		t.Errorf("Marker() = %q, want %q", v.Marker(), names.ComponentInterface)
	}
	if !v.IsCandidate(component) {
		t.Error("component should be a candidate")
	}
	if v.IsCandidate(tagHelper) {
		t.Error("tag helper should not implement the component marker")
	}
	if v.IsCandidate(nil) {
		t.Error("nil is never a candidate")
	}
}
