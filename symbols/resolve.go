// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package symbols

import (
	"slices"
	"strconv"
	"strings"

	"github.com/albertocavalcante/razortags/internal/names"
	"github.com/albertocavalcante/razortags/typename"
)

// Scope is the naming context a type reference is written in.
type Scope struct {
	// TypeParameters are the type parameters visible at the reference.
	TypeParameters []string

	// Namespaces are searched in order when the written name does not
	// resolve as is, as with the enclosing namespace and using directives.
	Namespaces []string
}

// typeRef is a parsed type reference.
type typeRef struct {
	name  string
	args  []typeRef
	ranks int
}

func (r typeRef) String() string {
	var sb strings.Builder
	sb.WriteString(r.name)
	if len(r.args) > 0 {
		sb.WriteByte('<')
		for i, a := range r.args {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(a.String())
		}
		sb.WriteByte('>')
	}
	sb.WriteString(strings.Repeat("[]", r.ranks))
	return sb.String()
}

// Resolve binds a written type reference such as "string",
// "List<TItem>" or "global::Ns.Grid<int>[]" to a type of c. Keywords map
// to their framework types, visible type parameters to type-parameter types,
// and generic references to constructed types. Anything that does not bind,
// tuples included, becomes an Unresolved type carrying the written text.
func (c *Compilation) Resolve(written string, scope Scope) Type {
	p := refParser{tokens: significant(typename.Tokenize(written))}
	ref, ok := p.parse()
	if !ok || !p.done() {
		return Unresolved(strings.TrimSpace(written))
	}
	return c.bind(ref, scope)
}

func (c *Compilation) bind(ref typeRef, scope Scope) Type {
	var t Type
	switch {
	case len(ref.args) == 0 && slices.Contains(scope.TypeParameters, ref.name):
		t = TypeParameter(ref.name)
	case len(ref.args) > 0:
		def, ok := c.lookupIn(ref.name+"`"+strconv.Itoa(len(ref.args)), scope)
		nt, named := def.(*NamedType)
		if !ok || !named {
			return Unresolved(ref.String())
		}
		args := make([]Type, len(ref.args))
		for i, a := range ref.args {
			args[i] = c.bind(a, scope)
		}
		t = nt.Construct(args...)
	default:
		name := ref.name
		if full, ok := names.KeywordType(name); ok {
			name = full
		}
		def, ok := c.lookupIn(name, scope)
		if !ok {
			return Unresolved(ref.String())
		}
		t = def
	}
	for range ref.ranks {
		t = ArrayOf(t)
	}
	return t
}

func (c *Compilation) lookupIn(name string, scope Scope) (Type, bool) {
	if t, ok := c.Lookup(name); ok {
		return t, true
	}
	for _, ns := range scope.Namespaces {
		if t, ok := c.Lookup(ns + "." + name); ok {
			return t, true
		}
	}
	return nil, false
}

func significant(tokens []typename.Token) []typename.Token {
	out := tokens[:0:0]
	for _, t := range tokens {
		if !t.IsTrivia() {
			out = append(out, t)
		}
	}
	return out
}

type refParser struct {
	tokens []typename.Token
	pos    int
}

func (p *refParser) done() bool { return p.pos == len(p.tokens) }

func (p *refParser) peek(kind typename.TokenKind) bool {
	return p.pos < len(p.tokens) && p.tokens[p.pos].Kind == kind
}

func (p *refParser) accept(kind typename.TokenKind) bool {
	if p.peek(kind) {
		p.pos++
		return true
	}
	return false
}

func (p *refParser) parse() (typeRef, bool) {
	var ref typeRef
	if !p.peek(typename.Identifier) {
		return ref, false
	}
	if p.tokens[p.pos].Text == "global" && p.pos+1 < len(p.tokens) && p.tokens[p.pos+1].Kind == typename.ColonColon {
		p.pos += 2
	}

	var parts []string
	for {
		if !p.peek(typename.Identifier) {
			return ref, false
		}
		parts = append(parts, strings.TrimPrefix(p.tokens[p.pos].Text, "@"))
		p.pos++
		if !p.accept(typename.Dot) {
			break
		}
	}
	ref.name = strings.Join(parts, ".")

	if p.accept(typename.LessThan) {
		for {
			arg, ok := p.parse()
			if !ok {
				return ref, false
			}
			ref.args = append(ref.args, arg)
			if p.accept(typename.GreaterThan) {
				break
			}
			if !p.accept(typename.Comma) {
				return ref, false
			}
		}
	}

	for {
		switch {
		case p.accept(typename.OpenBracket):
			if !p.accept(typename.CloseBracket) {
				return ref, false
			}
			ref.ranks++
		case p.peek(typename.Other) && p.tokens[p.pos].Text == "?":
			// Nullable annotations do not change the bound type.
			p.pos++
		default:
			return ref, true
		}
	}
}
