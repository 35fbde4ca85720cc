// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package validate

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/albertocavalcante/razortags/diagnostic"
)

var testInvalidChars = []rune{'@', '!', '<', '/', '?', '[', '>', ']', '=', '"', '\'', '*', ' ', '\t', '\r', '\n'}

func TestTagName_EachInvalidCharacter(t *testing.T) {
	for _, r := range testInvalidChars {
		name := string(r) + "hello" + string(r)
		t.Run(name, func(t *testing.T) {
			want := []diagnostic.Diagnostic{diagnostic.InvalidTargetedTagName(name, r)}
			if diff := cmp.Diff(want, TagName(name)); diff != "" {
				t.Errorf("TagName(%q) mismatch (-want +got):\n%s", name, diff)
			}
		})
	}
}

func TestTagName_DistinctCharactersInOrder(t *testing.T) {
	name := "a<b>c<d!e>"
	want := []diagnostic.Diagnostic{
		diagnostic.InvalidTargetedTagName(name, '<'),
		diagnostic.InvalidTargetedTagName(name, '>'),
		diagnostic.InvalidTargetedTagName(name, '!'),
	}
	if diff := cmp.Diff(want, TagName(name)); diff != "" {
		t.Errorf("TagName(%q) mismatch (-want +got):\n%s", name, diff)
	}
}

func TestTagName_Special(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []diagnostic.Diagnostic
	}{
		{name: "catch all", input: "*", want: nil},
		{name: "valid", input: "my-tag", want: nil},
		{name: "empty", input: "", want: []diagnostic.Diagnostic{diagnostic.InvalidTargetedTagNameNullOrWhitespace()}},
		{name: "whitespace", input: "  \t", want: []diagnostic.Diagnostic{diagnostic.InvalidTargetedTagNameNullOrWhitespace()}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, TagName(tc.input)); diff != "" {
				t.Errorf("TagName(%q) mismatch (-want +got):\n%s", tc.input, diff)
			}
		})
	}
}

func TestBoundAttributeName(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		want         []diagnostic.Diagnostic
		wantReserved bool
	}{
		{
			name:  "valid",
			input: "bound-property",
		},
		{
			name:  "whitespace",
			input: " ",
			want:  []diagnostic.Diagnostic{diagnostic.InvalidBoundAttributeNullOrWhitespace("T", "P")},
		},
		{
			name:         "reserved prefix",
			input:        "data-foo",
			want:         []diagnostic.Diagnostic{diagnostic.InvalidBoundAttributeNameStartsWith("T", "P", "data-foo")},
			wantReserved: true,
		},
		{
			name:         "reserved prefix any case",
			input:        "DATA-Foo",
			want:         []diagnostic.Diagnostic{diagnostic.InvalidBoundAttributeNameStartsWith("T", "P", "DATA-Foo")},
			wantReserved: true,
		},
		{
			name:         "reserved prefix wins over characters",
			input:        "data-<foo>",
			want:         []diagnostic.Diagnostic{diagnostic.InvalidBoundAttributeNameStartsWith("T", "P", "data-<foo>")},
			wantReserved: true,
		},
		{
			name:  "invalid characters",
			input: "a=b=c'",
			want: []diagnostic.Diagnostic{
				diagnostic.InvalidBoundAttributeName("T", "P", "a=b=c'", '='),
				diagnostic.InvalidBoundAttributeName("T", "P", "a=b=c'", '\''),
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, reserved := BoundAttributeName("T", "P", tc.input, false)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("BoundAttributeName(%q) mismatch (-want +got):\n%s", tc.input, diff)
			}
			if reserved != tc.wantReserved {
				t.Errorf("BoundAttributeName(%q) reserved = %v, want %v", tc.input, reserved, tc.wantReserved)
			}
		})
	}
}

func TestBoundAttributePrefix(t *testing.T) {
	if diags, reserved := BoundAttributePrefix("T", "P", "", false); diags != nil || reserved {
		t.Errorf("empty prefix should be valid, got %v, %v", diags, reserved)
	}

	diags, reserved := BoundAttributePrefix("T", "P", "Data-", false)
	if !reserved || len(diags) != 1 || diags[0].ID != diagnostic.IDInvalidBoundAttributePrefixStartsWith {
		t.Errorf("expected reserved prefix diagnostic, got %v, %v", diags, reserved)
	}

	diags, reserved = BoundAttributePrefix("T", "P", "a b-", false)
	want := []diagnostic.Diagnostic{diagnostic.InvalidBoundAttributePrefix("T", "P", "a b-", ' ')}
	if reserved {
		t.Error("unexpected reserved")
	}
	if diff := cmp.Diff(want, diags); diff != "" {
		t.Errorf("BoundAttributePrefix mismatch (-want +got):\n%s", diff)
	}
}

func TestParentAndChildNames(t *testing.T) {
	if diff := cmp.Diff(
		[]diagnostic.Diagnostic{diagnostic.InvalidTargetedParentTagNameNullOrWhitespace()},
		ParentTagName(""),
	); diff != "" {
		t.Errorf("ParentTagName mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(
		[]diagnostic.Diagnostic{diagnostic.InvalidRestrictedChild("T", "li?", '?')},
		RestrictedChild("T", "li?"),
	); diff != "" {
		t.Errorf("RestrictedChild mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(
		[]diagnostic.Diagnostic{diagnostic.InvalidBoundAttributeParameterNullOrWhitespace("@bind")},
		ParameterName("@bind", ""),
	); diff != "" {
		t.Errorf("ParameterName mismatch (-want +got):\n%s", diff)
	}
}

func TestInvalidChars(t *testing.T) {
	if diff := cmp.Diff([]rune{'/', ' '}, InvalidChars("a/b c/d e")); diff != "" {
		t.Errorf("InvalidChars mismatch (-want +got):\n%s", diff)
	}
	if got := InvalidChars("valid-name"); got != nil {
		t.Errorf("InvalidChars(valid) = %v, want nil", got)
	}
}

func TestRequiredAttributeName_PerOccurrence(t *testing.T) {
	name := "a<b<c"
	want := []diagnostic.Diagnostic{
		diagnostic.InvalidTargetedAttributeName(name, '<'),
		diagnostic.InvalidTargetedAttributeName(name, '<'),
	}
	if diff := cmp.Diff(want, RequiredAttributeName(name, false)); diff != "" {
		t.Errorf("RequiredAttributeName(%q) mismatch (-want +got):\n%s", name, diff)
	}
}

func TestDirectiveNames(t *testing.T) {
	if diags := RequiredAttributeName("@bind-value:event", true); diags != nil {
		t.Errorf("directive required attribute should be valid, got %v", diags)
	}
	if diags, _ := BoundAttributeName("T", "P", "@ref", true); diags != nil {
		t.Errorf("directive bound attribute should be valid, got %v", diags)
	}
	diags, _ := BoundAttributeName("T", "P", "@ref", false)
	want := []diagnostic.Diagnostic{diagnostic.InvalidBoundAttributeName("T", "P", "@ref", '@')}
	if diff := cmp.Diff(want, diags); diff != "" {
		t.Errorf("BoundAttributeName mismatch (-want +got):\n%s", diff)
	}
}
