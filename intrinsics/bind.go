// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package intrinsics

import (
	"strings"

	"github.com/albertocavalcante/razortags/descriptor"
	"github.com/albertocavalcante/razortags/internal/names"
	"github.com/albertocavalcante/razortags/requiredattr"
	"github.com/albertocavalcante/razortags/symbols"
)

const (
	bindFallbackDoc  = "Binds the provided expression to an attribute and a change event, based on the naming of the bind attribute. For example: <code>@bind-value=\"...\"</code> and <code>@bind-value:event=\"onchange\"</code> will assign the current value of the expression to the 'value' attribute, and assign a delegate that attempts to set the value to the 'onchange' attribute."
	bindElementDoc   = "Binds the provided expression to the '%s' attribute and a change event delegate to the '%s' attribute."
	bindComponentDoc = "Binds the provided expression to the '%s' property and a change event delegate to the '%s' property of the component."
	bindFormatDoc    = "Specifies a format to convert the value specified by the '%s' attribute. The format string can currently only be used with expressions of type <code>DateTime</code>."
	bindEventDoc     = "Specifies the event handler name to attach for change notifications for the value provided by the '%s' attribute."
	bindCultureDoc   = "Specifies the culture to use for conversions."

	cultureInfo = "System.Globalization.CultureInfo"
	bindPrefix  = "@bind-"
)

// BindElement is one BindElement or BindInputElement declaration.
type BindElement struct {
	Element string
	// TypeAttribute restricts an input binding to one input type. Empty
	// matches inputs of any type.
	TypeAttribute    string
	Suffix           string
	ValueAttribute   string
	ChangeAttribute  string
	InvariantCulture bool
	Format           string
	// TypeName is the type carrying the declaration.
	TypeName string
	Assembly string
}

// BindDeclarations collects the bind declarations of types in order.
// Declarations missing the element, value or change attribute are skipped.
func BindDeclarations(types []symbols.Type) []BindElement {
	var out []BindElement
	for _, t := range types {
		for _, a := range t.Attributes() {
			var e BindElement
			switch {
			case names.MatchesAttribute(a.Type, names.AttrBindElement):
				e.Element, _ = argString(a, 0)
				e.Suffix, _ = argString(a, 1)
				e.ValueAttribute, _ = argString(a, 2)
				e.ChangeAttribute, _ = argString(a, 3)
			case names.MatchesAttribute(a.Type, names.AttrBindInputElement):
				e.Element = "input"
				e.TypeAttribute, _ = argString(a, 0)
				e.Suffix, _ = argString(a, 1)
				e.ValueAttribute, _ = argString(a, 2)
				e.ChangeAttribute, _ = argString(a, 3)
				e.InvariantCulture = argBool(a, 4)
				e.Format, _ = argString(a, 5)
			default:
				continue
			}
			if e.Element == "" || e.ValueAttribute == "" || e.ChangeAttribute == "" {
				continue
			}
			e.TypeName = t.FullName()
			e.Assembly = t.ContainingAssembly()
			out = append(out, e)
		}
	}
	return out
}

// Bind returns the fallback bind descriptor followed by one descriptor per
// bind declaration on types.
func Bind(types []symbols.Type, opts Options) []*descriptor.TagHelperDescriptor {
	out := []*descriptor.TagHelperDescriptor{BindFallback(opts)}
	for _, e := range BindDeclarations(types) {
		out = append(out, NewBind(e, opts))
	}
	return out
}

// BindFallback returns the descriptor matching "@bind-..." on any element.
func BindFallback(opts Options) *descriptor.TagHelperDescriptor {
	const name = "Bind"
	b := special(descriptor.KindBind, name, AssemblyName, names.ComponentsNamespace+"."+name)
	b.Documentation = opts.doc(bindFallbackDoc)
	b.Metadata[descriptor.MetaBindFallback] = descriptor.True

	directiveAttribute(ruleForAny(b), bindPrefix, descriptor.NamePrefixMatch)

	a := b.BoundAttribute()
	a.Name = bindPrefix + "..."
	a.PropertyName = name
	a.TypeName = "System.Collections.Generic.Dictionary<string, object>"
	a.HasIndexer = true
	a.IndexerNamePrefix = bindPrefix
	a.IndexerTypeName = names.TypeObject
	a.Documentation = b.Documentation
	a.Metadata[descriptor.MetaPropertyName] = name
	a.Metadata[descriptor.MetaDirectiveAttribute] = descriptor.True
	bindParameters(a, "Format", "Event", "@bind-...", opts)
	return b.Build()
}

// NewBind builds the descriptor of one bind declaration.
func NewBind(e BindElement, opts Options) *descriptor.TagHelperDescriptor {
	key := e.ValueAttribute
	name, attribute := "Bind", "@bind"
	if e.Suffix != "" {
		key = e.Suffix
		name, attribute = "Bind_"+e.Suffix, bindPrefix+e.Suffix
	}
	formatName := "Format_" + key
	eventName := "Event_" + key

	b := special(descriptor.KindBind, name, e.Assembly, e.TypeName)
	b.DisplayName = attribute
	b.Documentation = opts.docf(bindElementDoc, e.ValueAttribute, e.ChangeAttribute)
	b.Metadata[descriptor.MetaBindValueAttribute] = e.ValueAttribute
	b.Metadata[descriptor.MetaBindChangeAttribute] = e.ChangeAttribute
	b.Metadata[descriptor.MetaBindAttributeName] = attribute
	if e.TypeAttribute != "" {
		b.Metadata[descriptor.MetaBindTypeAttribute] = e.TypeAttribute
	}
	if e.InvariantCulture {
		b.Metadata[descriptor.MetaBindInvariantCulture] = descriptor.True
	}
	if e.Format != "" {
		b.Metadata[descriptor.MetaBindFormat] = e.Format
	}

	r := b.Rule()
	r.TagName = e.Element
	if e.TypeAttribute != "" {
		requiredattr.Parse("[type='"+e.TypeAttribute+"']", r)
	}
	directiveAttribute(r, attribute, descriptor.NameFullMatch)

	a := b.BoundAttribute()
	a.Name = attribute
	a.PropertyName = name
	a.TypeName = names.TypeObject
	a.Documentation = b.Documentation
	a.Metadata[descriptor.MetaPropertyName] = name
	a.Metadata[descriptor.MetaDirectiveAttribute] = descriptor.True
	bindParameters(a, formatName, eventName, attribute, opts)

	legacy := b.BoundAttribute()
	legacy.Name = "format-" + key
	legacy.PropertyName = formatName
	legacy.TypeName = names.TypeString
	legacy.Documentation = opts.docf(bindFormatDoc, attribute)
	legacy.Metadata[descriptor.MetaPropertyName] = formatName
	return b.Build()
}

func bindParameters(a *descriptor.BoundAttributeBuilder, formatName, eventName, attribute string, opts Options) {
	stringParameter(a, "format", formatName, opts.docf(bindFormatDoc, attribute))
	stringParameter(a, "event", eventName, opts.docf(bindEventDoc, attribute))
	culture := a.Parameter()
	culture.Name = "culture"
	culture.PropertyName = "Culture"
	culture.TypeName = cultureInfo
	culture.Documentation = opts.doc(bindCultureDoc)
}

// ComponentBinds returns one bind descriptor per bindable parameter of the
// given component descriptors. A parameter X is bindable when the component
// also has an XChanged parameter that is an event callback or a
// System.Action.
func ComponentBinds(components []*descriptor.TagHelperDescriptor, opts Options) []*descriptor.TagHelperDescriptor {
	var out []*descriptor.TagHelperDescriptor
	for _, d := range components {
		if !d.IsComponent() {
			continue
		}
		for _, a := range d.BoundAttributes() {
			meta := a.Metadata()
			if meta[descriptor.MetaTypeParameter] == descriptor.True ||
				meta[descriptor.MetaChildContent] == descriptor.True ||
				meta[descriptor.MetaChildContentParameter] == descriptor.True {
				continue
			}
			changed, ok := d.BoundAttribute(a.Name() + "Changed")
			if !ok || !isChangeCallback(changed) {
				continue
			}
			expression, _ := d.BoundAttribute(a.Name() + "Expression")
			out = append(out, newComponentBind(d, a, changed, expression, opts))
		}
	}
	return out
}

func isChangeCallback(a *descriptor.BoundAttributeDescriptor) bool {
	return a.Metadata()[descriptor.MetaEventCallback] == descriptor.True ||
		strings.HasPrefix(a.TypeName(), "System.Action<")
}

func newComponentBind(d *descriptor.TagHelperDescriptor, value, changed, expression *descriptor.BoundAttributeDescriptor, opts Options) *descriptor.TagHelperDescriptor {
	attribute := bindPrefix + value.Name()
	b := special(descriptor.KindBind, d.Name(), d.AssemblyName(), d.TypeName())
	b.DisplayName = d.DisplayName()
	b.Documentation = opts.docf(bindComponentDoc, value.Name(), changed.Name())
	b.Metadata[descriptor.MetaBindValueAttribute] = value.Name()
	b.Metadata[descriptor.MetaBindChangeAttribute] = changed.Name()
	b.Metadata[descriptor.MetaBindAttributeName] = attribute
	if expression != nil {
		b.Metadata[descriptor.MetaBindExpressionAttr] = expression.Name()
	}
	if match, ok := d.Metadata()[descriptor.MetaNameMatch]; ok {
		b.Metadata[descriptor.MetaNameMatch] = match
	}

	for _, rule := range d.TagMatchingRules() {
		r := b.Rule()
		r.TagName = rule.TagName()
		r.ParentTag = rule.ParentTag()
		r.TagStructure = rule.TagStructure()
		for _, ra := range rule.Attributes() {
			c := r.Attribute()
			c.Name = ra.Name()
			c.NameComparison = ra.NameComparison()
			c.Value = ra.Value()
			c.ValueComparison = ra.ValueComparison()
			c.IsDirectiveAttribute = ra.IsDirectiveAttribute()
		}
		directiveAttribute(r, attribute, descriptor.NameFullMatch)
	}

	a := b.BoundAttribute()
	a.Name = attribute
	a.PropertyName = value.PropertyName()
	a.TypeName = value.TypeName()
	a.IsEnum = value.IsEnum()
	a.Documentation = b.Documentation
	a.Metadata[descriptor.MetaPropertyName] = value.PropertyName()
	a.Metadata[descriptor.MetaDirectiveAttribute] = descriptor.True
	for _, key := range []string{descriptor.MetaGenericTyped, descriptor.MetaGlobalTypeName} {
		if v, ok := value.Metadata()[key]; ok {
			a.Metadata[key] = v
		}
	}
	return b.Build()
}
