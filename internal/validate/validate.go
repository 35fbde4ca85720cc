// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package validate decides whether HTML tag, attribute and prefix names are
// well formed and reports the diagnostics for the ones that are not.
package validate

import (
	"slices"
	"strings"
	"unicode"

	"github.com/albertocavalcante/razortags/diagnostic"
)

// ReservedPrefix may not start a bound attribute name or indexer prefix.
const ReservedPrefix = "data-"

// CatchAll is the tag name that matches every element.
const CatchAll = "*"

// IsInvalidChar reports whether r may not appear in an HTML name.
func IsInvalidChar(r rune) bool {
	switch r {
	case '@', '!', '<', '/', '?', '[', '>', ']', '=', '"', '\'', '*':
		return true
	}
	return unicode.IsSpace(r)
}

// IsBlank reports whether name is empty or whitespace only.
func IsBlank(name string) bool {
	return strings.TrimSpace(name) == ""
}

// HasReservedPrefix reports whether name starts with "data-", ignoring case.
func HasReservedPrefix(name string) bool {
	return len(name) >= len(ReservedPrefix) &&
		strings.EqualFold(name[:len(ReservedPrefix)], ReservedPrefix)
}

// InvalidChars returns the distinct invalid characters of name in order of
// first occurrence.
func InvalidChars(name string) []rune {
	return invalidChars(name, false)
}

func invalidChars(name string, directive bool) []rune {
	name = directiveBody(name, directive)
	var out []rune
	for _, r := range name {
		if IsInvalidChar(r) && !slices.Contains(out, r) {
			out = append(out, r)
		}
	}
	return out
}

// directiveBody strips the leading '@' of a directive attribute name, which
// is the one place that character is allowed.
func directiveBody(name string, directive bool) string {
	if directive {
		return strings.TrimPrefix(name, "@")
	}
	return name
}

// TagName validates a targeted tag name. The catch-all tag is always valid.
func TagName(name string) []diagnostic.Diagnostic {
	if name == CatchAll {
		return nil
	}
	if IsBlank(name) {
		return []diagnostic.Diagnostic{diagnostic.InvalidTargetedTagNameNullOrWhitespace()}
	}
	var diags []diagnostic.Diagnostic
	for _, r := range InvalidChars(name) {
		diags = append(diags, diagnostic.InvalidTargetedTagName(name, r))
	}
	return diags
}

// ParentTagName validates a required parent tag name.
func ParentTagName(name string) []diagnostic.Diagnostic {
	if IsBlank(name) {
		return []diagnostic.Diagnostic{diagnostic.InvalidTargetedParentTagNameNullOrWhitespace()}
	}
	var diags []diagnostic.Diagnostic
	for _, r := range InvalidChars(name) {
		diags = append(diags, diagnostic.InvalidTargetedParentTagName(name, r))
	}
	return diags
}

// RestrictedChild validates a child tag name allowed by typeName.
func RestrictedChild(typeName, name string) []diagnostic.Diagnostic {
	if IsBlank(name) {
		return []diagnostic.Diagnostic{diagnostic.InvalidRestrictedChildNullOrWhitespace(typeName)}
	}
	var diags []diagnostic.Diagnostic
	for _, r := range InvalidChars(name) {
		diags = append(diags, diagnostic.InvalidRestrictedChild(typeName, name, r))
	}
	return diags
}

// BoundAttributeName validates the HTML name bound to typeName.property.
// When the name carries the reserved prefix the only diagnostic reported is
// the reserved-prefix one, and reserved is true: the caller must drop the
// attribute. Directive attribute names may start with '@'.
func BoundAttributeName(typeName, property, name string, directive bool) (diags []diagnostic.Diagnostic, reserved bool) {
	if IsBlank(name) {
		return []diagnostic.Diagnostic{diagnostic.InvalidBoundAttributeNullOrWhitespace(typeName, property)}, false
	}
	if HasReservedPrefix(name) {
		return []diagnostic.Diagnostic{diagnostic.InvalidBoundAttributeNameStartsWith(typeName, property, name)}, true
	}
	for _, r := range invalidChars(name, directive) {
		diags = append(diags, diagnostic.InvalidBoundAttributeName(typeName, property, name, r))
	}
	return diags, false
}

// BoundAttributePrefix validates an indexer prefix. An empty prefix matches
// every attribute and is valid.
func BoundAttributePrefix(typeName, property, prefix string, directive bool) (diags []diagnostic.Diagnostic, reserved bool) {
	if prefix == "" {
		return nil, false
	}
	if HasReservedPrefix(prefix) {
		return []diagnostic.Diagnostic{diagnostic.InvalidBoundAttributePrefixStartsWith(typeName, property, prefix)}, true
	}
	for _, r := range invalidChars(prefix, directive) {
		diags = append(diags, diagnostic.InvalidBoundAttributePrefix(typeName, property, prefix, r))
	}
	return diags, false
}

// ParameterName validates a bound attribute parameter name.
func ParameterName(attribute, name string) []diagnostic.Diagnostic {
	if IsBlank(name) {
		return []diagnostic.Diagnostic{diagnostic.InvalidBoundAttributeParameterNullOrWhitespace(attribute)}
	}
	var diags []diagnostic.Diagnostic
	for _, r := range InvalidChars(name) {
		diags = append(diags, diagnostic.InvalidBoundAttributeParameterName(name, attribute, r))
	}
	return diags
}

// RequiredAttributeName validates a required attribute name. Unlike the other
// checks, one diagnostic is reported per occurrence of an invalid character.
func RequiredAttributeName(name string, directive bool) []diagnostic.Diagnostic {
	if IsBlank(name) {
		return []diagnostic.Diagnostic{diagnostic.InvalidTargetedAttributeNameNullOrWhitespace()}
	}
	var diags []diagnostic.Diagnostic
	for _, r := range directiveBody(name, directive) {
		if IsInvalidChar(r) {
			diags = append(diags, diagnostic.InvalidTargetedAttributeName(name, r))
		}
	}
	return diags
}
