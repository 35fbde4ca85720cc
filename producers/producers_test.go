// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package producers

import (
	"context"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/albertocavalcante/razortags/descriptor"
	"github.com/albertocavalcante/razortags/internal/names"
	"github.com/albertocavalcante/razortags/producer"
	"github.com/albertocavalcante/razortags/symbols"
)

func compilation() *symbols.Compilation {
	bt := map[string]*symbols.NamedType{}
	for _, b := range symbols.Builtins() {
		bt[b.MetadataName()] = b
	}
	str := bt[names.TypeString]
	anchor := &symbols.NamedType{
		Simple:    "AnchorTagHelper",
		Namespace: "Test",
		Assembly:  "TestAssembly",
		Base:      bt[names.TagHelperBase],
		Props: []symbols.Property{
			{Name: "Href", Type: str, Getter: symbols.AccessPublic, Setter: symbols.AccessPublic},
		},
	}
	parameter := []symbols.Attribute{{Type: "Parameter"}}
	counter := &symbols.NamedType{
		Simple:    "Counter",
		Namespace: "Test",
		Assembly:  "TestAssembly",
		Base:      bt[names.ComponentBase],
		Props: []symbols.Property{
			{Name: "Value", Type: str, Getter: symbols.AccessPublic, Setter: symbols.AccessPublic, Attributes: parameter},
			{Name: "ValueChanged", Type: bt[names.EventCallbackOfT].Construct(str), Getter: symbols.AccessPublic, Setter: symbols.AccessPublic, Attributes: parameter},
		},
	}
	handlers := &symbols.NamedType{
		Simple:    "EventHandlers",
		Namespace: "Test",
		Assembly:  "TestAssembly",
		Attrs: []symbols.Attribute{
			{Type: "EventHandler", Args: []symbols.Value{symbols.Str("onclick"), symbols.TypeOf("MouseEventArgs"), symbols.Bool(false), symbols.Bool(false)}},
		},
	}
	return symbols.NewCompilation("TestAssembly", anchor, counter, handlers)
}

func kinds(out *producer.Output) []descriptor.Kind {
	var got []descriptor.Kind
	for _, d := range out.Descriptors {
		got = append(got, d.Kind())
	}
	return got
}

func TestProducers(t *testing.T) {
	c := compilation()

	tests := []struct {
		producer producer.Producer
		want     []descriptor.Kind
	}{
		{producer: NewTagHelpers(), want: []descriptor.Kind{descriptor.KindDefault}},
		{producer: NewComponents(), want: []descriptor.Kind{descriptor.KindComponent, descriptor.KindComponent}},
		{producer: NewBind(), want: []descriptor.Kind{descriptor.KindBind, descriptor.KindBind, descriptor.KindBind}},
		{producer: NewEventHandlers(), want: []descriptor.Kind{descriptor.KindEventHandler}},
		{producer: NewRef(), want: []descriptor.Kind{descriptor.KindRef}},
		{producer: NewKey(), want: []descriptor.Kind{descriptor.KindKey}},
		{producer: NewSplat(), want: []descriptor.Kind{descriptor.KindSplat}},
	}

	for _, tc := range tests {
		name := tc.producer.Metadata().Name
		t.Run(name, func(t *testing.T) {
			out, err := tc.producer.Produce(context.Background(), c, producer.Config{})
			if err != nil {
				t.Fatalf("Produce: %v", err)
			}
			if diff := cmp.Diff(tc.want, kinds(out)); diff != "" {
				t.Errorf("kinds mismatch (-want +got):\n%s", diff)
			}
			for _, k := range kinds(out) {
				if !slices.Contains(tc.producer.Metadata().Kinds, k) {
					t.Errorf("produced kind %q not listed in Metadata().Kinds", k)
				}
			}
		})
	}
}

func TestTagHelpers_TypeFilter(t *testing.T) {
	c := compilation()

	out, err := NewTagHelpers().Produce(context.Background(), c, producer.Config{Types: []string{"Test.Counter"}})
	if err != nil {
		t.Fatalf("Produce: %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("Len() = %d, want 0", out.Len())
	}
}

func TestTagHelpers_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewTagHelpers().Produce(ctx, compilation(), producer.Config{}); err == nil {
		t.Error("Produce succeeded with a cancelled context")
	}
}

func TestDefault_Registers(t *testing.T) {
	producer.Reset()
	defer producer.Reset()
	for _, p := range Default() {
		producer.Register(p)
	}

	want := []string{"bind", "components", "eventhandlers", "key", "ref", "splat", "taghelpers"}
	if diff := cmp.Diff(want, producer.List()); diff != "" {
		t.Errorf("List() mismatch (-want +got):\n%s", diff)
	}

	out, err := producer.RunAll(context.Background(), compilation(), producer.Config{}, "ref", "taghelpers")
	if err != nil {
		t.Fatalf("RunAll: %v", err)
	}
	if diff := cmp.Diff([]descriptor.Kind{descriptor.KindRef, descriptor.KindDefault}, kinds(out)); diff != "" {
		t.Errorf("RunAll kinds mismatch (-want +got):\n%s", diff)
	}
}
