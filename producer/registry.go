// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package producer

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
)

// ErrUnknownProducer is returned when a requested producer is not registered.
var ErrUnknownProducer = errors.New("unknown producer")

var (
	mu       sync.RWMutex
	registry = make(map[string]Producer)
)

// Register adds a producer to the registry.
func Register(p Producer) {
	mu.Lock()
	defer mu.Unlock()
	meta := p.Metadata()
	if _, exists := registry[meta.Name]; exists {
		panic(fmt.Sprintf("producer %q already registered", meta.Name))
	}
	registry[meta.Name] = p
}

// Get returns a producer by name.
func Get(name string) (Producer, bool) {
	mu.RLock()
	defer mu.RUnlock()
	p, ok := registry[name]
	return p, ok
}

// List returns all registered producer names, sorted.
func List() []string {
	mu.RLock()
	defer mu.RUnlock()
	return sortedKeys()
}

// All returns all registered producers, sorted by name.
func All() []Producer {
	mu.RLock()
	defer mu.RUnlock()
	producers := make([]Producer, 0, len(registry))
	for _, p := range registry {
		producers = append(producers, p)
	}
	slices.SortFunc(producers, func(a, b Producer) int {
		return strings.Compare(a.Metadata().Name, b.Metadata().Name)
	})
	return producers
}

// Lookup returns the named producers in order. Unknown names fail with
// ErrUnknownProducer.
func Lookup(names ...string) ([]Producer, error) {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]Producer, 0, len(names))
	for _, name := range names {
		p, ok := registry[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownProducer, name, sortedKeys())
		}
		out = append(out, p)
	}
	return out, nil
}

// Reset clears the registry (for testing).
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	registry = make(map[string]Producer)
}

func sortedKeys() []string {
	keys := make([]string, 0, len(registry))
	for k := range registry {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
