// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package producer

import (
	"context"
	"errors"
	"testing"

	"github.com/albertocavalcante/razortags/descriptor"
	"github.com/albertocavalcante/razortags/symbols"
)

// mockProducer is a test implementation of Producer.
type mockProducer struct {
	name string
	err  error
}

func (m *mockProducer) Metadata() Metadata {
	return Metadata{
		Name:        m.name,
		Description: "Mock producer for testing",
		Kinds:       []descriptor.Kind{descriptor.KindDefault},
	}
}

func (m *mockProducer) Produce(_ context.Context, _ *symbols.Compilation, _ Config) (*Output, error) {
	if m.err != nil {
		return nil, m.err
	}
	b := descriptor.NewBuilder(descriptor.KindDefault, m.name, "TestAssembly")
	b.Rule().TagName = m.name
	return Of(b.Build()), nil
}

func TestRegistry(t *testing.T) {
	Reset()
	defer Reset()

	t.Run("Register and Get", func(t *testing.T) {
		Register(&mockProducer{name: "test"})

		got, ok := Get("test")
		if !ok {
			t.Fatal("expected to find registered producer")
		}
		if got.Metadata().Name != "test" {
			t.Errorf("got name %q, want %q", got.Metadata().Name, "test")
		}
	})

	t.Run("Get nonexistent", func(t *testing.T) {
		if _, ok := Get("nonexistent"); ok {
			t.Error("expected not to find nonexistent producer")
		}
	})

	t.Run("List", func(t *testing.T) {
		Reset()
		Register(&mockProducer{name: "zebra"})
		Register(&mockProducer{name: "alpha"})

		names := List()
		if len(names) != 2 {
			t.Fatalf("got %d producers, want 2", len(names))
		}
		if names[0] != "alpha" || names[1] != "zebra" {
			t.Errorf("got %v, want [alpha zebra]", names)
		}
	})

	t.Run("All is sorted", func(t *testing.T) {
		Reset()
		Register(&mockProducer{name: "two"})
		Register(&mockProducer{name: "one"})

		all := All()
		if len(all) != 2 {
			t.Fatalf("got %d producers, want 2", len(all))
		}
		if all[0].Metadata().Name != "one" {
			t.Errorf("All()[0] = %q, want %q", all[0].Metadata().Name, "one")
		}
	})

	t.Run("Lookup unknown", func(t *testing.T) {
		Reset()
		Register(&mockProducer{name: "known"})

		_, err := Lookup("known", "missing")
		if !errors.Is(err, ErrUnknownProducer) {
			t.Errorf("Lookup error = %v, want ErrUnknownProducer", err)
		}
	})

	t.Run("Duplicate panics", func(t *testing.T) {
		Reset()
		Register(&mockProducer{name: "dup"})

		defer func() {
			if r := recover(); r == nil {
				t.Error("expected panic on duplicate registration")
			}
		}()
		Register(&mockProducer{name: "dup"})
	})
}

func TestConfig_Option(t *testing.T) {
	cfg := Config{
		Options: map[string]string{
			"marker": "Test.IMarker",
		},
	}

	if got := cfg.Option("marker", "default"); got != "Test.IMarker" {
		t.Errorf("got %q, want %q", got, "Test.IMarker")
	}
	if got := cfg.Option("missing", "default"); got != "default" {
		t.Errorf("got %q, want %q", got, "default")
	}
}

func TestOutput(t *testing.T) {
	b := descriptor.NewBuilder(descriptor.KindDefault, "A", "TestAssembly")
	b.Rule().TagName = "a"
	d := b.Build()

	out := NewOutput()
	out.Add(d, nil, d)
	if out.Len() != 2 {
		t.Errorf("Len() = %d, want 2", out.Len())
	}

	var empty *Output
	if empty.Len() != 0 {
		t.Errorf("nil Len() = %d, want 0", empty.Len())
	}
}
