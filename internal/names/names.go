// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package names

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// TagHelperSuffix is stripped from type names before a default tag name is
// derived.
const TagHelperSuffix = "TagHelper"

var lower = cases.Lower(language.Und)

// ToHTMLCase converts a .NET identifier into a lowercase, hyphen-separated
// HTML name.
//
// A hyphen is inserted before an uppercase letter that follows a lowercase
// letter, and before an uppercase letter that starts a lowercase run after a
// letter or digit. Digits stay attached to the preceding word.
//
//	SingleAttribute -> single-attribute
//	CAPSOnOUTSIDE   -> caps-on-outside
//	One1Two2Three3  -> one1-two2-three3
func ToHTMLCase(name string) string {
	runes := []rune(name)
	var sb strings.Builder
	sb.Grow(len(name) + 4)
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) && startsWord(runes, i) {
			sb.WriteByte('-')
		}
		sb.WriteRune(r)
	}
	return lower.String(sb.String())
}

func startsWord(runes []rune, i int) bool {
	prev := runes[i-1]
	if unicode.IsLower(prev) {
		return true
	}
	if i+1 < len(runes) && unicode.IsLower(runes[i+1]) {
		return unicode.IsLetter(prev) || unicode.IsDigit(prev)
	}
	return false
}

// StripSuffix removes suffix from the end of name, ignoring case.
func StripSuffix(name, suffix string) string {
	if len(name) < len(suffix) {
		return name
	}
	cut := len(name) - len(suffix)
	if strings.EqualFold(name[cut:], suffix) {
		return name[:cut]
	}
	return name
}

// DefaultTagName derives the tag name targeted by a tag helper type that does
// not declare any target element.
func DefaultTagName(typeName string) string {
	return ToHTMLCase(StripSuffix(typeName, TagHelperSuffix))
}

// SimpleName returns the last dotted segment of a qualified name, ignoring
// any generic argument list.
func SimpleName(fullName string) string {
	if i := strings.IndexByte(fullName, '<'); i >= 0 {
		fullName = fullName[:i]
	}
	if i := strings.LastIndexByte(fullName, '.'); i >= 0 {
		return fullName[i+1:]
	}
	return fullName
}

// Namespace returns everything before the last dotted segment of a qualified
// name, or "" when the name is not qualified.
func Namespace(fullName string) string {
	if i := strings.IndexByte(fullName, '<'); i >= 0 {
		fullName = fullName[:i]
	}
	if i := strings.LastIndexByte(fullName, '.'); i >= 0 {
		return fullName[:i]
	}
	return ""
}
