// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package symbols

import "slices"

// Compilation is an ordered set of source types plus the referenced types
// they can resolve against. Only source types are scanned by producers.
type Compilation struct {
	Assembly string

	types []Type
	index map[string]Type
}

// NewCompilation returns a compilation for assembly holding types, in order.
func NewCompilation(assembly string, types ...Type) *Compilation {
	c := &Compilation{Assembly: assembly, index: map[string]Type{}}
	c.Add(types...)
	return c
}

// Add appends source types. A type whose name is already known is still
// scanned, but lookups keep resolving to the first declaration.
func (c *Compilation) Add(types ...Type) {
	for _, t := range types {
		c.types = append(c.types, t)
		c.register(t)
	}
}

// Reference makes types resolvable without scanning them.
func (c *Compilation) Reference(types ...Type) {
	for _, t := range types {
		c.register(t)
	}
}

func (c *Compilation) register(t Type) {
	for _, key := range []string{t.MetadataName(), t.FullName()} {
		if _, exists := c.index[key]; !exists {
			c.index[key] = t
		}
	}
}

// Types returns the source types in declaration order.
func (c *Compilation) Types() []Type {
	return slices.Clone(c.types)
}

// Lookup resolves a metadata name ("Ns.Name`1") or display name.
func (c *Compilation) Lookup(name string) (Type, bool) {
	t, ok := c.index[name]
	return t, ok
}
