// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package manifest defines a YAML description of compiled types.
//
// A manifest stands in for a compiled assembly: it lists types with their
// base types, interfaces, attributes and properties. Type references are
// written the way C# source writes them and are bound against a
// [symbols.Compilation] once every manifest of a run has been declared.
//
//	assembly: TestAssembly
//	usings: [Microsoft.AspNetCore.Razor.TagHelpers]
//	types:
//	  - name: AnchorTagHelper
//	    namespace: Test
//	    base: TagHelper
//	    attributes:
//	      - type: HtmlTargetElement
//	        args: [a]
//	        named: {Attributes: "[href]"}
//	    properties:
//	      - {name: Href, type: string}
package manifest

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/albertocavalcante/razortags/symbols"
)

// Manifest describes the types of one assembly.
type Manifest struct {
	// Assembly is the containing assembly of every type.
	Assembly string `yaml:"assembly" validate:"required"`

	// Usings are namespaces searched when binding type references.
	Usings []string `yaml:"usings"`

	Types []TypeDecl `yaml:"types" validate:"dive"`
}

// TypeDecl declares one type.
type TypeDecl struct {
	Name      string `yaml:"name" validate:"required"`
	Namespace string `yaml:"namespace"`

	// Kind is class (the default), struct, interface, enum or delegate.
	Kind string `yaml:"kind" validate:"omitempty,typekind"`

	// Access is a C# accessibility; empty means public.
	Access   string `yaml:"access" validate:"omitempty,access"`
	Abstract bool   `yaml:"abstract"`

	// Outer names the enclosing type of a nested type by its dotted path
	// of simple names within the namespace, e.g. "Page.Section". The
	// enclosing type must be declared earlier in the same manifest.
	Outer string `yaml:"outer"`

	TypeParameters []string `yaml:"typeParameters" validate:"dive,required"`
	Base           string   `yaml:"base"`
	Interfaces     []string `yaml:"interfaces" validate:"dive,required"`
	Doc            string   `yaml:"doc"`

	Attributes []AttributeDecl `yaml:"attributes" validate:"dive"`
	Properties []PropertyDecl  `yaml:"properties" validate:"dive"`
}

// PropertyDecl declares one property. Accessors default to public; "none"
// leaves an accessor out.
type PropertyDecl struct {
	Name    string `yaml:"name" validate:"required"`
	Type    string `yaml:"type" validate:"required"`
	Getter  string `yaml:"getter" validate:"omitempty,access"`
	Setter  string `yaml:"setter" validate:"omitempty,access"`
	Static  bool   `yaml:"static"`
	Indexer bool   `yaml:"indexer"`
	Doc     string `yaml:"doc"`

	Attributes []AttributeDecl `yaml:"attributes" validate:"dive"`
}

// AttributeDecl is one applied attribute.
type AttributeDecl struct {
	Type  string    `yaml:"type" validate:"required"`
	Args  []Value   `yaml:"args"`
	Named NamedArgs `yaml:"named"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("typekind", func(fl validator.FieldLevel) bool {
		k, ok := symbols.ParseKind(fl.Field().String())
		return ok && k != symbols.KindTypeParameter && k != symbols.KindArray && k != symbols.KindError
	})
	_ = v.RegisterValidation("access", func(fl validator.FieldLevel) bool {
		_, ok := symbols.ParseAccessibility(fl.Field().String())
		return ok
	})
	return v
}

// Parse decodes and validates a manifest. Unknown fields are errors.
func Parse(data []byte) (*Manifest, error) {
	return Decode(bytes.NewReader(data))
}

// Decode reads and validates a manifest from r.
func Decode(r io.Reader) (*Manifest, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var m Manifest
	if err := dec.Decode(&m); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("manifest: empty document")
		}
		return nil, fmt.Errorf("manifest: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Load reads the manifest at path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Validate checks required fields and enumerated values.
func (m *Manifest) Validate() error {
	if err := validate.Struct(m); err != nil {
		return fmt.Errorf("manifest: invalid: %w", err)
	}
	return nil
}

// Value is an attribute argument. In YAML it is a scalar (string, bool,
// int or null), a sequence of values, or a one-key mapping
// {typeof: Name} or {enum: Type.Member}.
type Value struct {
	symbols.Value
}

// UnmarshalYAML implements [yaml.Unmarshaler].
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	val, err := decodeValue(node)
	if err != nil {
		return err
	}
	v.Value = val
	return nil
}

func decodeValue(node *yaml.Node) (symbols.Value, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		switch node.Tag {
		case "!!null":
			return symbols.Null(), nil
		case "!!bool":
			var b bool
			if err := node.Decode(&b); err != nil {
				return symbols.Value{}, err
			}
			return symbols.Bool(b), nil
		case "!!int":
			var n int64
			if err := node.Decode(&n); err != nil {
				return symbols.Value{}, err
			}
			return symbols.Int(n), nil
		}
		return symbols.Str(node.Value), nil
	case yaml.SequenceNode:
		items := make([]symbols.Value, 0, len(node.Content))
		for _, item := range node.Content {
			v, err := decodeValue(item)
			if err != nil {
				return symbols.Value{}, err
			}
			items = append(items, v)
		}
		return symbols.Value{Kind: symbols.ValueArray, Items: items}, nil
	case yaml.MappingNode:
		if len(node.Content) == 2 {
			key, val := node.Content[0].Value, node.Content[1].Value
			switch key {
			case "typeof":
				return symbols.TypeOf(val), nil
			case "enum":
				return symbols.Enum(val), nil
			}
		}
	}
	return symbols.Value{}, fmt.Errorf("line %d: unsupported attribute value", node.Line)
}

// NamedArgs are "Name = value" attribute arguments in declaration order.
type NamedArgs []symbols.NamedArg

// UnmarshalYAML implements [yaml.Unmarshaler].
func (n *NamedArgs) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: named arguments must be a mapping", node.Line)
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		v, err := decodeValue(node.Content[i+1])
		if err != nil {
			return err
		}
		*n = append(*n, symbols.NamedArg{Name: node.Content[i].Value, Value: v})
	}
	return nil
}

// Unit is a manifest whose types have been added to a compilation but whose
// references are not bound yet.
type Unit struct {
	manifest *Manifest
	c        *symbols.Compilation
	types    []*symbols.NamedType
}

// Declare adds the manifest's types to c. References between types are
// bound by [Unit.Bind], after every unit of the compilation is declared.
func (m *Manifest) Declare(c *symbols.Compilation) *Unit {
	u := &Unit{manifest: m, c: c}
	declared := map[string]*symbols.NamedType{}
	for _, d := range m.Types {
		kind := symbols.KindClass
		if d.Kind != "" {
			kind, _ = symbols.ParseKind(d.Kind)
		}
		access := symbols.AccessPublic
		if d.Access != "" {
			access, _ = symbols.ParseAccessibility(d.Access)
		}
		t := &symbols.NamedType{
			Simple:     d.Name,
			Namespace:  d.Namespace,
			TypeKind:   kind,
			Access:     access,
			Abstract:   d.Abstract,
			TypeParams: d.TypeParameters,
			Assembly:   m.Assembly,
			Doc:        d.Doc,
		}
		path := d.Name
		if d.Outer != "" {
			path = d.Outer + "." + d.Name
			if outer, ok := declared[d.Namespace+"/"+d.Outer]; ok {
				t.Outer = outer
				t.Namespace = ""
			}
		}
		declared[d.Namespace+"/"+path] = t
		u.types = append(u.types, t)
		c.Add(t)
	}
	return u
}

// Types returns the declared types in manifest order.
func (u *Unit) Types() []*symbols.NamedType { return u.types }

// Bind resolves base types, interfaces, property types and attributes.
func (u *Unit) Bind() {
	for i, d := range u.manifest.Types {
		t := u.types[i]
		scope := symbols.Scope{
			TypeParameters: d.TypeParameters,
			Namespaces:     append(enclosing(d.Namespace), u.manifest.Usings...),
		}
		if d.Base != "" {
			t.Base = u.c.Resolve(d.Base, scope)
		} else if t.TypeKind == symbols.KindClass {
			t.Base, _ = u.c.Lookup("System.Object")
		}
		for _, iface := range d.Interfaces {
			t.Ifaces = append(t.Ifaces, u.c.Resolve(iface, scope))
		}
		t.Attrs = attributes(d.Attributes)
		for _, p := range d.Properties {
			t.Props = append(t.Props, symbols.Property{
				Name:       p.Name,
				Type:       u.c.Resolve(p.Type, scope),
				IsStatic:   p.Static,
				IsIndexer:  p.Indexer,
				Getter:     accessor(p.Getter),
				Setter:     accessor(p.Setter),
				Attributes: attributes(p.Attributes),
				DocComment: p.Doc,
			})
		}
	}
}

// enclosing returns ns and each of its parent namespaces, innermost first.
func enclosing(ns string) []string {
	var out []string
	for ns != "" {
		out = append(out, ns)
		i := strings.LastIndexByte(ns, '.')
		if i < 0 {
			break
		}
		ns = ns[:i]
	}
	return out
}

func accessor(s string) symbols.Accessibility {
	if s == "" {
		return symbols.AccessPublic
	}
	a, _ := symbols.ParseAccessibility(s)
	return a
}

func attributes(decls []AttributeDecl) []symbols.Attribute {
	var out []symbols.Attribute
	for _, d := range decls {
		a := symbols.Attribute{Type: d.Type, Named: d.Named}
		for _, v := range d.Args {
			a.Args = append(a.Args, v.Value)
		}
		out = append(out, a)
	}
	return out
}
