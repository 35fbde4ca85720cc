// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package typename tokenizes C# type-name strings and rewrites the
// identifiers in them, either substituting type parameters with concrete
// arguments or qualifying references with "global::".
//
// Rewriting works on tokens, so whitespace, punctuation and comments are
// carried through byte for byte.
package typename

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// TokenKind classifies a token.
type TokenKind int

const (
	Identifier TokenKind = iota
	Dot
	ColonColon
	LessThan
	GreaterThan
	Comma
	OpenParen
	CloseParen
	OpenBracket
	CloseBracket
	Whitespace
	LineComment
	BlockComment
	Other
)

var tokenKindNames = [...]string{
	"Identifier", "Dot", "ColonColon", "LessThan", "GreaterThan", "Comma",
	"OpenParen", "CloseParen", "OpenBracket", "CloseBracket",
	"Whitespace", "LineComment", "BlockComment", "Other",
}

func (k TokenKind) String() string {
	if k < 0 || int(k) >= len(tokenKindNames) {
		return "Unknown"
	}
	return tokenKindNames[k]
}

// Context is the kind of bracketed list a token appears in.
type Context int

const (
	TopLevel Context = iota
	TypeArgumentList
	TupleElementList
	ArrayRankList
)

// Token is one lexical element of a type name.
type Token struct {
	Kind   TokenKind
	Text   string
	Offset int
	// Depth is the number of brackets open around the token. Brackets
	// count themselves as inside.
	Depth int
	// Context is the innermost enclosing list.
	Context Context
}

// IsTrivia reports whether the token is whitespace or a comment.
func (t Token) IsTrivia() bool {
	return t.Kind == Whitespace || t.Kind == LineComment || t.Kind == BlockComment
}

// Tokenize splits text into tokens. It never fails: unknown characters become
// Other tokens and unbalanced brackets are tolerated.
func Tokenize(text string) []Token {
	var (
		tokens []Token
		stack  []Context
	)
	top := func() Context {
		if len(stack) == 0 {
			return TopLevel
		}
		return stack[len(stack)-1]
	}
	emit := func(kind TokenKind, start, end int) {
		tokens = append(tokens, Token{
			Kind:    kind,
			Text:    text[start:end],
			Offset:  start,
			Depth:   len(stack),
			Context: top(),
		})
	}
	open := func(kind TokenKind, ctx Context, at int) {
		stack = append(stack, ctx)
		emit(kind, at, at+1)
	}
	closeList := func(kind TokenKind, ctx Context, at int) {
		emit(kind, at, at+1)
		if i := lastIndex(stack, ctx); i >= 0 {
			stack = stack[:i]
		}
	}

	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		switch {
		case r == '/' && strings.HasPrefix(text[i:], "//"):
			end := strings.IndexAny(text[i:], "\r\n")
			if end < 0 {
				end = len(text) - i
			}
			emit(LineComment, i, i+end)
			i += end
		case r == '/' && strings.HasPrefix(text[i:], "/*"):
			end := strings.Index(text[i+2:], "*/")
			if end < 0 {
				end = len(text)
			} else {
				end = i + 2 + end + 2
			}
			emit(BlockComment, i, end)
			i = end
		case unicode.IsSpace(r):
			j := i
			for j < len(text) {
				r2, s2 := utf8.DecodeRuneInString(text[j:])
				if !unicode.IsSpace(r2) {
					break
				}
				j += s2
			}
			emit(Whitespace, i, j)
			i = j
		case isIdentStart(r):
			j := i + size
			for j < len(text) {
				r2, s2 := utf8.DecodeRuneInString(text[j:])
				if !isIdentPart(r2) {
					break
				}
				j += s2
			}
			emit(Identifier, i, j)
			i = j
		case r == ':' && strings.HasPrefix(text[i:], "::"):
			emit(ColonColon, i, i+2)
			i += 2
		case r == '.':
			emit(Dot, i, i+1)
			i++
		case r == ',':
			emit(Comma, i, i+1)
			i++
		case r == '<':
			open(LessThan, TypeArgumentList, i)
			i++
		case r == '(':
			open(OpenParen, TupleElementList, i)
			i++
		case r == '[':
			open(OpenBracket, ArrayRankList, i)
			i++
		case r == '>':
			closeList(GreaterThan, TypeArgumentList, i)
			i++
		case r == ')':
			closeList(CloseParen, TupleElementList, i)
			i++
		case r == ']':
			closeList(CloseBracket, ArrayRankList, i)
			i++
		default:
			emit(Other, i, i+size)
			i += size
		}
	}
	return tokens
}

func lastIndex(stack []Context, ctx Context) int {
	for i := len(stack) - 1; i >= 0; i-- {
		if stack[i] == ctx {
			return i
		}
	}
	return -1
}

func isIdentStart(r rune) bool {
	return r == '_' || r == '@' || unicode.IsLetter(r)
}

func isIdentPart(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// tokens wraps a token slice with the significant-neighbour queries the
// rewriters share.
type tokens []Token

// prev returns the index of the nearest non-trivia token before i, or -1.
func (ts tokens) prev(i int) int {
	for j := i - 1; j >= 0; j-- {
		if !ts[j].IsTrivia() {
			return j
		}
	}
	return -1
}

// next returns the index of the nearest non-trivia token after i, or -1.
func (ts tokens) next(i int) int {
	for j := i + 1; j < len(ts); j++ {
		if !ts[j].IsTrivia() {
			return j
		}
	}
	return -1
}

func (ts tokens) kindAt(i int) (TokenKind, bool) {
	if i < 0 {
		return 0, false
	}
	return ts[i].Kind, true
}

// qualified reports whether the identifier at i is joined to a neighbour by
// '.' or '::'.
func (ts tokens) qualified(i int) bool {
	for _, j := range []int{ts.prev(i), ts.next(i)} {
		if k, ok := ts.kindAt(j); ok && (k == Dot || k == ColonColon) {
			return true
		}
	}
	return false
}

// startsReference reports whether the identifier at i is the first segment
// of a type reference.
func (ts tokens) startsReference(i int) bool {
	k, ok := ts.kindAt(ts.prev(i))
	return !ok || (k != Dot && k != ColonColon)
}

// isGeneric reports whether the identifier at i is followed by its own type
// argument list.
func (ts tokens) isGeneric(i int) bool {
	k, ok := ts.kindAt(ts.next(i))
	return ok && k == LessThan
}

// isTupleElementName reports whether the identifier at i names a tuple
// element, as in "(int Count, string Name)".
func (ts tokens) isTupleElementName(i int) bool {
	if ts[i].Context != TupleElementList {
		return false
	}
	p := ts.prev(i)
	if p < 0 {
		return false
	}
	switch ts[p].Kind {
	case Identifier, GreaterThan, CloseBracket, CloseParen:
	case Other:
		if ts[p].Text != "?" && ts[p].Text != "*" {
			return false
		}
	default:
		return false
	}
	k, ok := ts.kindAt(ts.next(i))
	return !ok || k == Comma || k == CloseParen
}

func (ts tokens) join(replace map[int]string) string {
	var sb strings.Builder
	for i, t := range ts {
		if r, ok := replace[i]; ok {
			sb.WriteString(r)
			continue
		}
		sb.WriteString(t.Text)
	}
	return sb.String()
}
