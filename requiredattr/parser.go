// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package requiredattr parses the required-attribute selector language used
// by tag helper target declarations.
//
// A selector list is comma separated. Each selector is a plain name, a plain
// name ending in '*' for a prefix match, or a bracketed CSS-style form:
//
//	name
//	name-*
//	[name]
//	[name=value]  [name^=value]  [name$=value]
//	[name='quoted value']
//
// Malformed selectors never stop the parse: the selector is emitted with the
// diagnostics describing what went wrong and scanning resumes after the next
// comma.
package requiredattr

import (
	"strings"
	"unicode/utf8"

	"github.com/albertocavalcante/razortags/descriptor"
	"github.com/albertocavalcante/razortags/diagnostic"
)

const (
	plainNameTerminators = " \t,*"
	cssNameTerminators   = " \t,]=^$"
	cssValueTerminators  = " \t]"
)

// Parse parses text and appends one required attribute per selector to rule,
// in input order.
func Parse(text string, rule *descriptor.RuleBuilder) {
	if rule == nil {
		panic("requiredattr: nil rule builder")
	}
	if text == "" {
		return
	}

	p := &parser{text: text}
	p.skipWhitespace()
	for {
		attr := rule.Attribute()
		ok := p.selector(attr)
		if ok {
			ok = p.separator(attr)
		}
		if !ok && !p.skipPastComma() {
			return
		}
		p.skipWhitespace()
		if p.atEnd() {
			return
		}
	}
}

// ParseAll parses text on its own and returns the built required attributes.
func ParseAll(text string) []*descriptor.RequiredAttributeDescriptor {
	rule := &descriptor.RuleBuilder{TagName: "*"}
	Parse(text, rule)
	return rule.Build().Attributes()
}

type parser struct {
	text string
	pos  int
}

func (p *parser) atEnd() bool { return p.pos >= len(p.text) }

func (p *parser) at(b byte) bool { return p.pos < len(p.text) && p.text[p.pos] == b }

func (p *parser) current() rune {
	r, _ := utf8.DecodeRuneInString(p.text[p.pos:])
	return r
}

func (p *parser) skipWhitespace() {
	for p.pos < len(p.text) && (p.text[p.pos] == ' ' || p.text[p.pos] == '\t' || p.text[p.pos] == '\n' || p.text[p.pos] == '\r') {
		p.pos++
	}
}

// scanUntil advances to the first byte in stop, or to the end, and returns the
// text scanned.
func (p *parser) scanUntil(stop string) string {
	start := p.pos
	if i := strings.IndexAny(p.text[start:], stop); i >= 0 {
		p.pos = start + i
	} else {
		p.pos = len(p.text)
	}
	return p.text[start:p.pos]
}

func (p *parser) skipPastComma() bool {
	i := strings.IndexByte(p.text[p.pos:], ',')
	if i < 0 {
		p.pos = len(p.text)
		return false
	}
	p.pos += i + 1
	return true
}

func (p *parser) ensureNotAtEnd(attr *descriptor.RequiredAttributeBuilder) bool {
	if p.atEnd() {
		attr.AddDiagnostic(diagnostic.CouldNotFindMatchingEndBrace(p.text))
		return false
	}
	return true
}

func (p *parser) selector(attr *descriptor.RequiredAttributeBuilder) bool {
	if p.at('[') {
		return p.cssSelector(attr)
	}
	attr.Name = p.scanUntil(plainNameTerminators)
	if p.at('*') {
		p.pos++
		attr.NameComparison = descriptor.NamePrefixMatch
	}
	return true
}

func (p *parser) separator(attr *descriptor.RequiredAttributeBuilder) bool {
	p.skipWhitespace()
	switch {
	case p.at(','):
		p.pos++
		return p.ensureNotAtEnd(attr)
	case !p.atEnd():
		attr.AddDiagnostic(diagnostic.InvalidRequiredAttributeCharacter(p.current(), p.text))
		return false
	}
	return true
}

func (p *parser) cssSelector(attr *descriptor.RequiredAttributeBuilder) bool {
	p.pos++ // '['
	p.skipWhitespace()
	attr.Name = p.scanUntil(cssNameTerminators)
	p.skipWhitespace()
	if !p.ensureNotAtEnd(attr) || !p.comparison(attr) {
		return false
	}
	p.skipWhitespace()
	if !p.ensureNotAtEnd(attr) {
		return false
	}
	if attr.ValueComparison != descriptor.ValueNone && !p.value(attr) {
		return false
	}
	p.skipWhitespace()
	switch {
	case p.at(']'):
		p.pos++
		return true
	case p.atEnd():
		attr.AddDiagnostic(diagnostic.CouldNotFindMatchingEndBrace(p.text))
	default:
		attr.AddDiagnostic(diagnostic.InvalidRequiredAttributeCharacter(p.current(), p.text))
	}
	return false
}

func (p *parser) comparison(attr *descriptor.RequiredAttributeBuilder) bool {
	var mode descriptor.ValueComparison
	switch p.text[p.pos] {
	case '=':
		mode = descriptor.ValueFullMatch
	case '^':
		mode = descriptor.ValuePrefixMatch
	case '$':
		mode = descriptor.ValueSuffixMatch
	case ']':
		return true
	default:
		attr.AddDiagnostic(diagnostic.InvalidRequiredAttributeOperator(p.current(), p.text))
		return false
	}

	op := rune(p.text[p.pos])
	p.pos++
	if op != '=' {
		if !p.at('=') {
			attr.AddDiagnostic(diagnostic.PartialRequiredAttributeOperator(op, p.text))
			return false
		}
		p.pos++
	}
	attr.ValueComparison = mode
	return true
}

func (p *parser) value(attr *descriptor.RequiredAttributeBuilder) bool {
	if !p.at('\'') && !p.at('"') {
		attr.Value = p.scanUntil(cssValueTerminators)
		return true
	}

	quote := rune(p.text[p.pos])
	p.pos++
	end := strings.IndexRune(p.text[p.pos:], quote)
	if end < 0 {
		attr.Value = p.text[p.pos:]
		p.pos = len(p.text)
		attr.AddDiagnostic(diagnostic.InvalidRequiredAttributeMismatchedQuotes(quote, p.text))
		return false
	}
	attr.Value = p.text[p.pos : p.pos+end]
	p.pos += end + 1
	return true
}
