// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package intrinsics

import (
	"github.com/albertocavalcante/razortags/descriptor"
	"github.com/albertocavalcante/razortags/internal/names"
	"github.com/albertocavalcante/razortags/symbols"
)

const (
	eventHandlerDoc    = "Sets the '%s' attribute to the provided string or delegate value. A delegate value should be of type '%s'."
	preventDefaultDoc  = "Specifies whether to cancel (if cancelable) the default action that belongs to the '%s' event."
	stopPropagationDoc = "Specifies whether to prevent further propagation of the '%s' event in the capturing and bubbling phases."
)

// EventHandler is one EventHandler declaration.
type EventHandler struct {
	// Attribute is the event attribute name without '@', e.g. "onclick".
	Attribute string
	// EventArgs is the event argument type name.
	EventArgs       string
	StopPropagation bool
	PreventDefault  bool
	// TypeName is the type carrying the declaration.
	TypeName string
	Assembly string
}

// EventHandlerDeclarations collects the EventHandler declarations of types in
// order. Declarations without an attribute name or argument type are
// skipped.
func EventHandlerDeclarations(types []symbols.Type) []EventHandler {
	var out []EventHandler
	for _, t := range types {
		for _, a := range symbols.FilterAttributes(t.Attributes(), names.AttrEventHandler) {
			name, _ := argString(a, 0)
			args, ok := a.Arg(1)
			if name == "" || !ok || args.Kind != symbols.ValueType {
				continue
			}
			out = append(out, EventHandler{
				Attribute:       name,
				EventArgs:       args.Text,
				StopPropagation: argBool(a, 2),
				PreventDefault:  argBool(a, 3),
				TypeName:        t.FullName(),
				Assembly:        t.ContainingAssembly(),
			})
		}
	}
	return out
}

// EventHandlers returns one descriptor per EventHandler declaration on types.
func EventHandlers(types []symbols.Type, opts Options) []*descriptor.TagHelperDescriptor {
	var out []*descriptor.TagHelperDescriptor
	for _, e := range EventHandlerDeclarations(types) {
		out = append(out, NewEventHandler(e, opts))
	}
	return out
}

// NewEventHandler builds the descriptor of one event handler. Besides the
// "@event" rule it adds one rule per enabled modifier so that a modifier can
// be written without the event itself.
func NewEventHandler(e EventHandler, opts Options) *descriptor.TagHelperDescriptor {
	attribute := "@" + e.Attribute
	b := special(descriptor.KindEventHandler, e.Attribute, e.Assembly, e.TypeName)
	b.DisplayName = attribute
	b.Documentation = opts.docf(eventHandlerDoc, e.Attribute, e.EventArgs)
	b.Metadata[descriptor.MetaEventArgsType] = e.EventArgs

	directiveAttribute(ruleForAny(b), attribute, descriptor.NameFullMatch)
	if e.PreventDefault {
		directiveAttribute(ruleForAny(b), attribute+":preventDefault", descriptor.NameFullMatch)
	}
	if e.StopPropagation {
		directiveAttribute(ruleForAny(b), attribute+":stopPropagation", descriptor.NameFullMatch)
	}

	a := b.BoundAttribute()
	a.Name = attribute
	a.PropertyName = e.Attribute
	a.TypeName = names.ComponentsNamespace + ".EventCallback<" + e.EventArgs + ">"
	a.Documentation = b.Documentation
	a.Metadata[descriptor.MetaPropertyName] = e.Attribute
	a.Metadata[descriptor.MetaDirectiveAttribute] = descriptor.True
	if e.PreventDefault {
		boolParameter(a, "preventDefault", "PreventDefault", opts.docf(preventDefaultDoc, e.Attribute))
	}
	if e.StopPropagation {
		boolParameter(a, "stopPropagation", "StopPropagation", opts.docf(stopPropagationDoc, e.Attribute))
	}
	return b.Build()
}

func ruleForAny(b *descriptor.Builder) *descriptor.RuleBuilder {
	r := b.Rule()
	r.TagName = "*"
	return r
}

func argString(a symbols.Attribute, i int) (string, bool) {
	v, ok := a.Arg(i)
	if !ok {
		return "", false
	}
	return v.AsString()
}

func argBool(a symbols.Attribute, i int) bool {
	v, ok := a.Arg(i)
	return ok && v.Kind == symbols.ValueBool && v.Bool
}
