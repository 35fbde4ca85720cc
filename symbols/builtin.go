// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package symbols

// Builtins returns fresh declarations of the framework types descriptor
// producers reason about. Loaders reference them so that source declarations
// resolve base types, interfaces and property types without a real
// framework assembly.
func Builtins() []*NamedType {
	const (
		system      = "System"
		collections = "System.Collections.Generic"
		tagHelpers  = "Microsoft.AspNetCore.Razor.TagHelpers"
		components  = "Microsoft.AspNetCore.Components"
	)
	object := &NamedType{Simple: "Object", Namespace: system, SpecialType: SpecialObject, Assembly: "System.Runtime"}
	valueType := func(name string) *NamedType {
		return &NamedType{Simple: name, Namespace: system, TypeKind: KindStruct, Assembly: "System.Runtime"}
	}

	boolean := valueType("Boolean")
	boolean.SpecialType = SpecialBoolean
	str := &NamedType{Simple: "String", Namespace: system, SpecialType: SpecialString, Base: object, Assembly: "System.Runtime"}

	out := []*NamedType{object, str, boolean}
	for _, name := range []string{
		"Byte", "SByte", "Char", "Decimal", "Double", "Single",
		"Int16", "Int32", "Int64", "UInt16", "UInt32", "UInt64",
		"IntPtr", "UIntPtr", "Void", "DateTime", "TimeSpan", "Guid",
	} {
		out = append(out, valueType(name))
	}

	typ := &NamedType{Simple: "Type", Namespace: system, Abstract: true, Base: object, Assembly: "System.Runtime"}
	eventArgs := &NamedType{Simple: "EventArgs", Namespace: system, Base: object, Assembly: "System.Runtime"}

	dict := &NamedType{
		Simple:     "IDictionary",
		Namespace:  collections,
		TypeKind:   KindInterface,
		TypeParams: []string{"TKey", "TValue"},
		Assembly:   "System.Runtime",
	}
	readOnlyDict := &NamedType{
		Simple:     "IReadOnlyDictionary",
		Namespace:  collections,
		TypeKind:   KindInterface,
		TypeParams: []string{"TKey", "TValue"},
		Assembly:   "System.Runtime",
	}
	concreteDict := &NamedType{
		Simple:     "Dictionary",
		Namespace:  collections,
		TypeParams: []string{"TKey", "TValue"},
		Base:       object,
		Ifaces: []Type{
			dict.Construct(TypeParameter("TKey"), TypeParameter("TValue")),
			readOnlyDict.Construct(TypeParameter("TKey"), TypeParameter("TValue")),
		},
		Assembly: "System.Runtime",
	}

	iTagHelper := &NamedType{Simple: "ITagHelper", Namespace: tagHelpers, TypeKind: KindInterface, Assembly: "Microsoft.AspNetCore.Razor"}
	tagHelper := &NamedType{
		Simple:    "TagHelper",
		Namespace: tagHelpers,
		Abstract:  true,
		Base:      object,
		Ifaces:    []Type{iTagHelper},
		Assembly:  "Microsoft.AspNetCore.Razor",
	}

	iComponent := &NamedType{Simple: "IComponent", Namespace: components, TypeKind: KindInterface, Assembly: "Microsoft.AspNetCore.Components"}
	componentBase := &NamedType{
		Simple:    "ComponentBase",
		Namespace: components,
		Abstract:  true,
		Base:      object,
		Ifaces:    []Type{iComponent},
		Assembly:  "Microsoft.AspNetCore.Components",
	}
	renderFragment := &NamedType{Simple: "RenderFragment", Namespace: components, TypeKind: KindDelegate, Assembly: "Microsoft.AspNetCore.Components"}
	renderFragmentOfT := &NamedType{
		Simple:     "RenderFragment",
		Namespace:  components,
		TypeKind:   KindDelegate,
		TypeParams: []string{"TValue"},
		Assembly:   "Microsoft.AspNetCore.Components",
	}
	eventCallback := &NamedType{Simple: "EventCallback", Namespace: components, TypeKind: KindStruct, Assembly: "Microsoft.AspNetCore.Components"}
	eventCallbackOfT := &NamedType{
		Simple:     "EventCallback",
		Namespace:  components,
		TypeKind:   KindStruct,
		TypeParams: []string{"TValue"},
		Assembly:   "Microsoft.AspNetCore.Components",
	}

	return append(out,
		typ, eventArgs,
		dict, readOnlyDict, concreteDict,
		iTagHelper, tagHelper,
		iComponent, componentBase,
		renderFragment, renderFragmentOfT,
		eventCallback, eventCallbackOfT,
	)
}
