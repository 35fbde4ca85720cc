// SPDX-License-Identifier: MIT

package csharp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/albertocavalcante/razortags/internal/manifest"
	"github.com/albertocavalcante/razortags/symbols"
)

const anchorSource = `using System;
using Microsoft.AspNetCore.Razor.TagHelpers;

namespace Test
{
    /// <summary>
    /// Renders an anchor.
    /// </summary>
    [HtmlTargetElement("a", Attributes = "asp-route")]
    public class AnchorTagHelper : TagHelper
    {
        [HtmlAttributeName("asp-route")]
        public string Route { get; set; }

        public int Count { get; private set; }

        internal bool Hidden { get; set; }
    }

    public abstract class BaseTagHelper : TagHelper, IDisposable
    {
    }
}
`

func parse(t *testing.T, src string) *File {
	t.Helper()
	f, err := Parse(context.Background(), "test.cs", "TestAssembly", []byte(src))
	require.NoError(t, err)
	require.NotNil(t, f.Manifest)
	return f
}

func findType(t *testing.T, m *manifest.Manifest, name string) manifest.TypeDecl {
	t.Helper()
	for _, d := range m.Types {
		if d.Name == name {
			return d
		}
	}
	t.Fatalf("type %q not found", name)
	return manifest.TypeDecl{}
}

func findProperty(t *testing.T, d manifest.TypeDecl, name string) manifest.PropertyDecl {
	t.Helper()
	for _, p := range d.Properties {
		if p.Name == name {
			return p
		}
	}
	t.Fatalf("property %q not found on %s", name, d.Name)
	return manifest.PropertyDecl{}
}

func TestParse_Declarations(t *testing.T) {
	f := parse(t, anchorSource)
	m := f.Manifest

	assert.False(t, f.HasErrors)
	assert.Equal(t, "TestAssembly", m.Assembly)
	assert.Equal(t, []string{"System", "Microsoft.AspNetCore.Razor.TagHelpers"}, m.Usings)
	require.Len(t, m.Types, 2)

	anchor := findType(t, m, "AnchorTagHelper")
	assert.Equal(t, "Test", anchor.Namespace)
	assert.Equal(t, "class", anchor.Kind)
	assert.Equal(t, "public", anchor.Access)
	assert.False(t, anchor.Abstract)
	assert.Equal(t, "TagHelper", anchor.Base)
	assert.Contains(t, anchor.Doc, "Renders an anchor.")

	base := findType(t, m, "BaseTagHelper")
	assert.True(t, base.Abstract)
	assert.Equal(t, "TagHelper", base.Base)
	assert.Equal(t, []string{"IDisposable"}, base.Interfaces)
}

func TestParse_Attributes(t *testing.T) {
	anchor := findType(t, parse(t, anchorSource).Manifest, "AnchorTagHelper")

	require.Len(t, anchor.Attributes, 1)
	target := anchor.Attributes[0]
	assert.Equal(t, "HtmlTargetElement", target.Type)
	require.Len(t, target.Args, 1)
	assert.Equal(t, symbols.Str("a"), target.Args[0].Value)
	require.Len(t, target.Named, 1)
	assert.Equal(t, "Attributes", target.Named[0].Name)
	assert.Equal(t, symbols.Str("asp-route"), target.Named[0].Value)

	route := findProperty(t, anchor, "Route")
	require.Len(t, route.Attributes, 1)
	assert.Equal(t, "HtmlAttributeName", route.Attributes[0].Type)
}

func TestParse_Accessors(t *testing.T) {
	anchor := findType(t, parse(t, anchorSource).Manifest, "AnchorTagHelper")

	tests := []struct {
		name   string
		typ    string
		getter string
		setter string
	}{
		{"Route", "string", "public", "public"},
		{"Count", "int", "public", "private"},
		{"Hidden", "bool", "internal", "internal"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := findProperty(t, anchor, tt.name)
			assert.Equal(t, tt.typ, p.Type)
			assert.Equal(t, tt.getter, p.Getter)
			assert.Equal(t, tt.setter, p.Setter)
		})
	}
}

func TestParse_Values(t *testing.T) {
	src := `namespace Test
{
    [EventHandler("onclick", typeof(MouseEventArgs), true, false)]
    [Sample(-3, null, TagStructure.WithoutEndTag)]
    public static class EventHandlers
    {
    }
}
`
	d := findType(t, parse(t, src).Manifest, "EventHandlers")
	require.Len(t, d.Attributes, 2)

	var got []symbols.Value
	for _, a := range d.Attributes {
		for _, v := range a.Args {
			got = append(got, v.Value)
		}
	}
	want := []symbols.Value{
		symbols.Str("onclick"),
		symbols.TypeOf("MouseEventArgs"),
		symbols.Bool(true),
		symbols.Bool(false),
		symbols.Int(-3),
		symbols.Null(),
		symbols.Enum("TagStructure.WithoutEndTag"),
	}
	assert.Equal(t, want, got)
}

func TestParse_Generic(t *testing.T) {
	src := `namespace Test
{
    public class Grid<TItem> : ComponentBase
    {
        [Parameter] public RenderFragment<TItem> RowTemplate { get; set; }
    }
}
`
	grid := findType(t, parse(t, src).Manifest, "Grid")
	assert.Equal(t, []string{"TItem"}, grid.TypeParameters)
	assert.Equal(t, "ComponentBase", grid.Base)

	row := findProperty(t, grid, "RowTemplate")
	assert.Equal(t, "RenderFragment<TItem>", row.Type)
	require.Len(t, row.Attributes, 1)
	assert.Equal(t, "Parameter", row.Attributes[0].Type)
}

func TestParse_Nested(t *testing.T) {
	src := `namespace Test
{
    public class Page
    {
        public class Section
        {
        }
    }
}
`
	m := parse(t, src).Manifest
	section := findType(t, m, "Section")
	assert.Equal(t, "Page", section.Outer)
	assert.Equal(t, "public", section.Access)

	c := symbols.NewCompilation("TestAssembly")
	unit := m.Declare(c)
	unit.Bind()
	_, ok := c.Lookup("Test.Page.Section")
	assert.True(t, ok)
}

func TestParse_Literal(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`"a"`, "a"},
		{`"a\"b"`, `a"b`},
		{`@"c:\dir"`, `c:\dir`},
		{`@"say ""hi"""`, `say "hi"`},
	}
	for _, tt := range tests {
		if got := literal(tt.in); got != tt.want {
			t.Errorf("literal(%s) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParse_InvalidContent(t *testing.T) {
	_, err := Parse(context.Background(), "bad.cs", "A", []byte{0xff, 0xfe})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidContent))
}
