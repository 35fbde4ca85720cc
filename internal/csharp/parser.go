// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package csharp reads type declarations out of C# source files.
//
// Only the surface a descriptor producer needs is extracted: namespaces,
// using directives, type declarations with their modifiers, type parameters,
// base lists and attributes, and property declarations. Method bodies and
// expressions other than attribute arguments are ignored. The result is a
// [manifest.Manifest], so source files and YAML manifests bind into a
// compilation the same way.
package csharp

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	sitter "github.com/smacker/go-tree-sitter"
	grammar "github.com/smacker/go-tree-sitter/csharp"

	"github.com/albertocavalcante/razortags/internal/manifest"
	"github.com/albertocavalcante/razortags/symbols"
)

// ErrInvalidContent is returned for input that is not valid UTF-8.
var ErrInvalidContent = errors.New("invalid content")

// File is one parsed source file.
type File struct {
	Path     string
	Manifest *manifest.Manifest

	// HasErrors reports whether the syntax tree contains error nodes.
	// Declarations outside the damaged region are still extracted.
	HasErrors bool
}

// Parse extracts the type declarations of a C# source file. Every type is
// attributed to assembly.
func Parse(ctx context.Context, path, assembly string, content []byte) (*File, error) {
	if !utf8.Valid(content) {
		return nil, fmt.Errorf("%s: %w: content is not valid UTF-8", path, ErrInvalidContent)
	}

	// New parser per call: parsers are not safe for concurrent use.
	parser := sitter.NewParser()
	parser.SetLanguage(grammar.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, content)
	if err != nil {
		return nil, fmt.Errorf("%s: tree-sitter parse failed: %w", path, err)
	}
	defer tree.Close()

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: parse canceled: %w", path, err)
	}

	root := tree.RootNode()
	w := &walker{src: content, m: &manifest.Manifest{Assembly: assembly}}
	w.members(root, "", "")
	return &File{Path: path, Manifest: w.m, HasErrors: root.HasError()}, nil
}

type walker struct {
	src []byte
	m   *manifest.Manifest
}

func (w *walker) text(n *sitter.Node) string {
	return n.Content(w.src)
}

// members walks the declarations directly under n. File-scoped namespace
// declarations set the namespace of the declarations that follow them.
func (w *walker) members(n *sitter.Node, ns, outer string) {
	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		switch child.Type() {
		case "using_directive":
			if using := w.using(child); using != "" {
				w.m.Usings = append(w.m.Usings, using)
			}
		case "namespace_declaration":
			name := w.qualify(ns, child.ChildByFieldName("name"))
			if body := child.ChildByFieldName("body"); body != nil {
				w.members(body, name, "")
			}
		case "file_scoped_namespace_declaration":
			ns = w.qualify(ns, child.ChildByFieldName("name"))
			w.members(child, ns, "")
		case "declaration_list":
			w.members(child, ns, outer)
		case "class_declaration", "struct_declaration", "interface_declaration",
			"enum_declaration", "record_declaration", "record_struct_declaration":
			w.typeDecl(child, ns, outer)
		}
	}
}

func (w *walker) qualify(ns string, name *sitter.Node) string {
	if name == nil {
		return ns
	}
	if ns == "" {
		return w.text(name)
	}
	return ns + "." + w.text(name)
}

// using returns the namespace of a plain using directive. Aliases and
// static usings do not bring types into scope by simple name and are
// skipped.
func (w *walker) using(n *sitter.Node) string {
	var name string
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		switch child.Type() {
		case "static", "name_equals", "=":
			return ""
		case "identifier", "qualified_name":
			name = w.text(child)
		}
	}
	return name
}

var declKinds = map[string]string{
	"class_declaration":         "class",
	"record_declaration":        "class",
	"struct_declaration":        "struct",
	"record_struct_declaration": "struct",
	"interface_declaration":     "interface",
	"enum_declaration":          "enum",
}

func (w *walker) typeDecl(n *sitter.Node, ns, outer string) {
	nameNode := n.ChildByFieldName("name")
	if nameNode == nil {
		return
	}
	mods := w.modifiers(n)

	d := manifest.TypeDecl{
		Name:      w.text(nameNode),
		Namespace: ns,
		Outer:     outer,
		Kind:      declKinds[n.Type()],
		Access:    accessOf(mods, "internal"),
		Abstract:  mods["abstract"] || mods["static"],
		Doc:       w.docComment(n),
	}
	if outer != "" {
		d.Access = accessOf(mods, "private")
	}

	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		switch child.Type() {
		case "attribute_list":
			d.Attributes = append(d.Attributes, w.attributes(child)...)
		case "type_parameter_list":
			d.TypeParameters = w.typeParameters(child)
		case "base_list":
			w.baseList(child, &d)
		}
	}

	// Register before nested types so that they can name their outer type.
	index := len(w.m.Types)
	w.m.Types = append(w.m.Types, d)

	body := n.ChildByFieldName("body")
	if body == nil {
		return
	}
	nested := qualifiedOuter(outer, d.Name)
	for i := 0; i < int(body.NamedChildCount()); i++ {
		member := body.NamedChild(i)
		switch member.Type() {
		case "property_declaration":
			if p, ok := w.property(member, d.Kind == "interface"); ok {
				w.m.Types[index].Properties = append(w.m.Types[index].Properties, p)
			}
		case "indexer_declaration":
			w.m.Types[index].Properties = append(w.m.Types[index].Properties, w.indexer(member))
		}
	}
	w.members(body, ns, nested)
}

func qualifiedOuter(outer, name string) string {
	if outer == "" {
		return name
	}
	return outer + "." + name
}

// baseList splits a base list into the base class and interfaces. Without
// semantic information the first entry is taken as the base class of a
// class unless its name follows the I-prefix interface convention.
func (w *walker) baseList(n *sitter.Node, d *manifest.TypeDecl) {
	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		if child.Type() == "argument_list" {
			continue
		}
		name := w.text(child)
		if child.Type() == "primary_constructor_base_type" {
			if t := child.NamedChild(0); t != nil {
				name = w.text(t)
			}
		}
		if i == 0 && d.Kind == "class" && !looksLikeInterface(name) {
			d.Base = name
			continue
		}
		d.Interfaces = append(d.Interfaces, name)
	}
}

func looksLikeInterface(name string) bool {
	if i := strings.LastIndexByte(strings.SplitN(name, "<", 2)[0], '.'); i >= 0 {
		name = name[i+1:]
	}
	return len(name) > 1 && name[0] == 'I' && name[1] >= 'A' && name[1] <= 'Z'
}

func (w *walker) typeParameters(n *sitter.Node) []string {
	var out []string
	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		if child.Type() != "type_parameter" {
			continue
		}
		if name := child.ChildByFieldName("name"); name != nil {
			out = append(out, w.text(name))
			continue
		}
		out = append(out, lastIdentifier(w, child))
	}
	return out
}

func lastIdentifier(w *walker, n *sitter.Node) string {
	var name string
	for i := 0; i < int(n.NamedChildCount()); i++ {
		if child := n.NamedChild(i); child.Type() == "identifier" {
			name = w.text(child)
		}
	}
	return name
}

// modifiers returns the modifier keywords of a declaration.
func (w *walker) modifiers(n *sitter.Node) map[string]bool {
	mods := map[string]bool{}
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		switch child.Type() {
		case "modifier":
			mods[w.text(child)] = true
		case "public", "private", "protected", "internal", "static", "abstract", "sealed", "readonly":
			mods[child.Type()] = true
		}
	}
	return mods
}

func accessOf(mods map[string]bool, fallback string) string {
	switch {
	case mods["protected"] && mods["internal"]:
		return "protected internal"
	case mods["private"] && mods["protected"]:
		return "protected"
	case mods["public"]:
		return "public"
	case mods["internal"]:
		return "internal"
	case mods["protected"]:
		return "protected"
	case mods["private"]:
		return "private"
	}
	return fallback
}

func (w *walker) property(n *sitter.Node, inInterface bool) (manifest.PropertyDecl, bool) {
	nameNode, typeNode := n.ChildByFieldName("name"), n.ChildByFieldName("type")
	if nameNode == nil || typeNode == nil {
		return manifest.PropertyDecl{}, false
	}
	mods := w.modifiers(n)
	fallback := "private"
	if inInterface {
		fallback = "public"
	}
	access := accessOf(mods, fallback)

	p := manifest.PropertyDecl{
		Name:   w.text(nameNode),
		Type:   w.text(typeNode),
		Getter: "none",
		Setter: "none",
		Static: mods["static"],
		Doc:    w.docComment(n),
	}
	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		switch child.Type() {
		case "attribute_list":
			p.Attributes = append(p.Attributes, w.attributes(child)...)
		case "accessor_list":
			w.accessors(child, access, &p)
		case "arrow_expression_clause":
			p.Getter = access
		}
	}
	return p, true
}

func (w *walker) accessors(n *sitter.Node, access string, p *manifest.PropertyDecl) {
	for i := 0; i < int(n.NamedChildCount()); i++ {
		acc := n.NamedChild(i)
		if acc.Type() != "accessor_declaration" {
			continue
		}
		own := accessOf(w.modifiers(acc), access)
		switch w.accessorKeyword(acc) {
		case "get":
			p.Getter = own
		case "set", "init":
			p.Setter = own
		}
	}
}

func (w *walker) accessorKeyword(n *sitter.Node) string {
	if name := n.ChildByFieldName("name"); name != nil {
		return w.text(name)
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		switch t := n.Child(i).Type(); t {
		case "get", "set", "init":
			return t
		}
	}
	return ""
}

func (w *walker) indexer(n *sitter.Node) manifest.PropertyDecl {
	p := manifest.PropertyDecl{Name: "this[]", Type: "object", Indexer: true, Getter: "none", Setter: "none"}
	if t := n.ChildByFieldName("type"); t != nil {
		p.Type = w.text(t)
	}
	if list := n.ChildByFieldName("accessors"); list != nil {
		w.accessors(list, accessOf(w.modifiers(n), "private"), &p)
	}
	return p
}

// docComment joins the "///" lines directly above a declaration.
func (w *walker) docComment(n *sitter.Node) string {
	var lines []string
	for prev := n.PrevSibling(); prev != nil && prev.Type() == "comment"; prev = prev.PrevSibling() {
		text := w.text(prev)
		if !strings.HasPrefix(text, "///") {
			break
		}
		lines = append(lines, strings.TrimSpace(strings.TrimPrefix(text, "///")))
	}
	for i, j := 0, len(lines)-1; i < j; i, j = i+1, j-1 {
		lines[i], lines[j] = lines[j], lines[i]
	}
	return strings.Join(lines, "\n")
}

func (w *walker) attributes(list *sitter.Node) []manifest.AttributeDecl {
	var out []manifest.AttributeDecl
	for i := 0; i < int(list.NamedChildCount()); i++ {
		n := list.NamedChild(i)
		if n.Type() != "attribute" {
			continue
		}
		name := n.ChildByFieldName("name")
		if name == nil {
			continue
		}
		a := manifest.AttributeDecl{Type: w.text(name)}
		for j := 0; j < int(n.NamedChildCount()); j++ {
			if args := n.NamedChild(j); args.Type() == "attribute_argument_list" {
				w.arguments(args, &a)
			}
		}
		out = append(out, a)
	}
	return out
}

func (w *walker) arguments(list *sitter.Node, a *manifest.AttributeDecl) {
	for i := 0; i < int(list.NamedChildCount()); i++ {
		arg := list.NamedChild(i)
		if arg.Type() != "attribute_argument" {
			continue
		}
		var name string
		var expr *sitter.Node
		for j := 0; j < int(arg.NamedChildCount()); j++ {
			child := arg.NamedChild(j)
			switch child.Type() {
			case "name_equals":
				name = lastIdentifier(w, child)
			case "name_colon":
				// Named constructor parameters are positional in effect.
			default:
				expr = child
			}
		}
		if expr == nil {
			continue
		}
		v := manifest.Value{Value: w.value(expr)}
		if name != "" {
			a.Named = append(a.Named, symbols.NamedArg{Name: name, Value: v.Value})
			continue
		}
		a.Args = append(a.Args, v)
	}
}

// value converts an attribute argument expression. Expressions that are
// not literals, typeof or arrays are kept as their source text, which is
// how enum members and constants are referenced.
func (w *walker) value(n *sitter.Node) symbols.Value {
	switch n.Type() {
	case "string_literal", "verbatim_string_literal", "raw_string_literal":
		return symbols.Str(literal(w.text(n)))
	case "boolean_literal":
		return symbols.Bool(w.text(n) == "true")
	case "null_literal":
		return symbols.Null()
	case "integer_literal":
		if v, ok := integer(w.text(n)); ok {
			return symbols.Int(v)
		}
	case "prefix_unary_expression":
		if text := w.text(n); strings.HasPrefix(text, "-") {
			if v, ok := integer(strings.TrimSpace(text[1:])); ok {
				return symbols.Int(-v)
			}
		}
	case "parenthesized_expression":
		if inner := n.NamedChild(0); inner != nil {
			return w.value(inner)
		}
	case "typeof_expression":
		if t := n.ChildByFieldName("type"); t != nil {
			return symbols.TypeOf(w.text(t))
		}
		if t := n.NamedChild(0); t != nil {
			return symbols.TypeOf(w.text(t))
		}
	case "array_creation_expression", "implicit_array_creation_expression", "collection_expression":
		return w.array(n)
	}
	return symbols.Enum(w.text(n))
}

func (w *walker) array(n *sitter.Node) symbols.Value {
	items := n
	for i := 0; i < int(n.NamedChildCount()); i++ {
		if child := n.NamedChild(i); child.Type() == "initializer_expression" {
			items = child
		}
	}
	out := symbols.Value{Kind: symbols.ValueArray}
	for i := 0; i < int(items.NamedChildCount()); i++ {
		child := items.NamedChild(i)
		switch child.Type() {
		case "initializer_expression", "array_type", "comment":
			continue
		}
		out.Items = append(out.Items, w.value(child))
	}
	return out
}

func integer(text string) (int64, bool) {
	text = strings.ReplaceAll(strings.TrimRight(text, "uUlL"), "_", "")
	v, err := strconv.ParseInt(text, 0, 64)
	return v, err == nil
}

// literal unquotes a C# string literal. Verbatim literals double their
// quotes; regular literals use escapes close enough to Go's.
func literal(text string) string {
	switch {
	case strings.HasPrefix(text, `@"`):
		return strings.ReplaceAll(strings.TrimSuffix(text[2:], `"`), `""`, `"`)
	case strings.HasPrefix(text, `"""`):
		return strings.TrimSpace(strings.TrimSuffix(strings.TrimPrefix(text, `"""`), `"""`))
	}
	if s, err := strconv.Unquote(text); err == nil {
		return s
	}
	return strings.TrimSuffix(strings.TrimPrefix(text, `"`), `"`)
}
