// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package producer

import "github.com/albertocavalcante/razortags/symbols"

// ResolveTypes expands a type filter to every type of c that is a filtered
// type or derives from one, in compilation order. An empty filter selects
// every type.
//
// Filter entries match a type's full name or its metadata name, so both
// "Test.Grid<TItem>" and "Test.Grid`1" select the same generic type.
func ResolveTypes(c *symbols.Compilation, filter []string) []symbols.Type {
	if len(filter) == 0 {
		return c.Types()
	}

	wanted := make(map[string]bool, len(filter))
	for _, name := range filter {
		wanted[name] = true
	}

	memo := make(map[symbols.Type]bool)
	var out []symbols.Type
	for _, t := range c.Types() {
		if selected(t, wanted, memo) {
			out = append(out, t)
		}
	}
	return out
}

// selected reports whether t or one of its base types is wanted.
func selected(t symbols.Type, wanted map[string]bool, memo map[symbols.Type]bool) bool {
	if t == nil {
		return false
	}
	if v, ok := memo[t]; ok {
		return v // Already processed
	}
	memo[t] = false // Guards against base type cycles
	v := wanted[t.FullName()] || wanted[t.MetadataName()] || selected(t.BaseType(), wanted, memo)
	memo[t] = v
	return v
}
