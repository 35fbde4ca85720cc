// SPDX-License-Identifier: MIT

// Package orderedset provides an insertion-ordered set keyed by a string
// projection of its elements.
package orderedset

import "slices"

// Set keeps the first element added for each key, in insertion order.
type Set[T any] struct {
	key   func(T) string
	index map[string]int
	items []T
}

// New returns an empty set that identifies elements by key.
func New[T any](key func(T) string) *Set[T] {
	return &Set[T]{
		key:   key,
		index: make(map[string]int),
	}
}

// Of returns a set of strings holding values in first-occurrence order.
func Of(values ...string) *Set[string] {
	s := New(func(v string) string { return v })
	s.AddAll(values...)
	return s
}

// Add inserts v unless an element with the same key is present. It reports
// whether v was inserted.
func (s *Set[T]) Add(v T) bool {
	k := s.key(v)
	if _, exists := s.index[k]; exists {
		return false
	}
	s.index[k] = len(s.items)
	s.items = append(s.items, v)
	return true
}

// AddAll inserts each of values in order.
func (s *Set[T]) AddAll(values ...T) {
	for _, v := range values {
		s.Add(v)
	}
}

// Contains reports whether an element with key k is present.
func (s *Set[T]) Contains(k string) bool {
	_, ok := s.index[k]
	return ok
}

// Get returns the element stored under key k.
func (s *Set[T]) Get(k string) (T, bool) {
	i, ok := s.index[k]
	if !ok {
		var zero T
		return zero, false
	}
	return s.items[i], true
}

// Len returns the number of elements.
func (s *Set[T]) Len() int {
	return len(s.items)
}

// Items returns a copy of the elements in insertion order.
func (s *Set[T]) Items() []T {
	return slices.Clone(s.items)
}
