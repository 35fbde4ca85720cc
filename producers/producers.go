// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package producers implements [producer.Producer] for every descriptor
// family: tag helpers, components, and the component directive attributes.
package producers

import (
	"context"

	"github.com/albertocavalcante/razortags/descriptor"
	"github.com/albertocavalcante/razortags/intrinsics"
	"github.com/albertocavalcante/razortags/producer"
	"github.com/albertocavalcante/razortags/symbols"
	"github.com/albertocavalcante/razortags/taghelper"
)

// Default returns one instance of every producer, in the order the CLI
// reports them.
func Default() []producer.Producer {
	return []producer.Producer{
		NewTagHelpers(),
		NewComponents(),
		NewBind(),
		NewEventHandlers(),
		NewRef(),
		NewKey(),
		NewSplat(),
	}
}

func intrinsicOptions(cfg producer.Config) intrinsics.Options {
	return intrinsics.Options{
		IncludeDocumentation: cfg.IncludeDocumentation,
		ExcludeHidden:        cfg.ExcludeHidden,
	}
}

// TagHelpers implements [producer.Producer] for ITagHelper types.
type TagHelpers struct{}

// NewTagHelpers creates a new tag helper producer.
func NewTagHelpers() *TagHelpers {
	return &TagHelpers{}
}

// Metadata returns information about this producer.
func (p *TagHelpers) Metadata() producer.Metadata {
	return producer.Metadata{
		Name:        "taghelpers",
		Description: "Tag helper descriptors for types implementing the marker interface",
		Kinds:       []descriptor.Kind{descriptor.KindDefault},
	}
}

// Produce builds one descriptor per tag helper type. The marker interface
// comes from cfg.MarkerInterface, falling back to the "marker" option.
func (p *TagHelpers) Produce(ctx context.Context, c *symbols.Compilation, cfg producer.Config) (*producer.Output, error) {
	marker := cfg.MarkerInterface
	if marker == "" {
		marker = cfg.Option("marker", "")
	}
	visitor := taghelper.NewVisitor(marker)
	factory := taghelper.NewFactory(taghelper.Options{
		IncludeDocumentation: cfg.IncludeDocumentation,
		ExcludeHidden:        cfg.ExcludeHidden,
	})

	out := producer.NewOutput()
	for _, t := range visitor.Filter(producer.ResolveTypes(c, cfg.Types)) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		out.Add(factory.CreateDescriptor(t))
	}
	return out, nil
}

// Components implements [producer.Producer] for IComponent types.
type Components struct{}

// NewComponents creates a new component producer.
func NewComponents() *Components {
	return &Components{}
}

// Metadata returns information about this producer.
func (p *Components) Metadata() producer.Metadata {
	return producer.Metadata{
		Name:        "components",
		Description: "Component and child content descriptors",
		Kinds:       []descriptor.Kind{descriptor.KindComponent, descriptor.KindChildContent},
	}
}

// Produce builds the component descriptors of c.
func (p *Components) Produce(ctx context.Context, c *symbols.Compilation, cfg producer.Config) (*producer.Output, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return producer.Of(intrinsics.Components(producer.ResolveTypes(c, cfg.Types), intrinsicOptions(cfg))...), nil
}

// Bind implements [producer.Producer] for @bind.
type Bind struct{}

// NewBind creates a new bind producer.
func NewBind() *Bind {
	return &Bind{}
}

// Metadata returns information about this producer.
func (p *Bind) Metadata() producer.Metadata {
	return producer.Metadata{
		Name:        "bind",
		Description: "@bind descriptors for elements and component parameters",
		Kinds:       []descriptor.Kind{descriptor.KindBind},
	}
}

// Produce builds the fallback, element and component bind descriptors.
func (p *Bind) Produce(ctx context.Context, c *symbols.Compilation, cfg producer.Config) (*producer.Output, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	opts := intrinsicOptions(cfg)
	types := producer.ResolveTypes(c, cfg.Types)
	out := producer.Of(intrinsics.Bind(types, opts)...)
	out.Add(intrinsics.ComponentBinds(intrinsics.Components(types, opts), opts)...)
	return out, nil
}

// EventHandlers implements [producer.Producer] for event handler attributes.
type EventHandlers struct{}

// NewEventHandlers creates a new event handler producer.
func NewEventHandlers() *EventHandlers {
	return &EventHandlers{}
}

// Metadata returns information about this producer.
func (p *EventHandlers) Metadata() producer.Metadata {
	return producer.Metadata{
		Name:        "eventhandlers",
		Description: "@on... descriptors from EventHandler declarations",
		Kinds:       []descriptor.Kind{descriptor.KindEventHandler},
	}
}

// Produce builds one descriptor per EventHandler declaration.
func (p *EventHandlers) Produce(ctx context.Context, c *symbols.Compilation, cfg producer.Config) (*producer.Output, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return producer.Of(intrinsics.EventHandlers(producer.ResolveTypes(c, cfg.Types), intrinsicOptions(cfg))...), nil
}

// Directive implements [producer.Producer] for one fixed directive
// attribute such as @ref.
type Directive struct {
	name      string
	attribute string
	kind      descriptor.Kind
	build     func(intrinsics.Options) *descriptor.TagHelperDescriptor
}

// NewRef creates the @ref producer.
func NewRef() *Directive {
	return &Directive{name: "ref", attribute: "@ref", kind: descriptor.KindRef, build: intrinsics.Ref}
}

// NewKey creates the @key producer.
func NewKey() *Directive {
	return &Directive{name: "key", attribute: "@key", kind: descriptor.KindKey, build: intrinsics.Key}
}

// NewSplat creates the @attributes producer.
func NewSplat() *Directive {
	return &Directive{name: "splat", attribute: "@attributes", kind: descriptor.KindSplat, build: intrinsics.Splat}
}

// Metadata returns information about this producer.
func (p *Directive) Metadata() producer.Metadata {
	return producer.Metadata{
		Name:        p.name,
		Description: p.attribute + " directive attribute descriptor",
		Kinds:       []descriptor.Kind{p.kind},
	}
}

// Produce returns the single directive descriptor. It does not depend on c.
func (p *Directive) Produce(ctx context.Context, _ *symbols.Compilation, cfg producer.Config) (*producer.Output, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return producer.Of(p.build(intrinsicOptions(cfg))), nil
}
