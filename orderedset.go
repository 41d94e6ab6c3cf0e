// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

// Package orderedset provides a generic ordered set: a collection with set
// semantics (no duplicates), deterministic insertion-order iteration,
// positional indexing and O(1) membership tests.
//
// An OrderedSet keeps two representations in lock-step: a slice holding the
// elements in order and a map from each element to its current position.
// Each mutator uses one of two consistency policies:
//
//   - Insert rebuilds the whole position map after splicing.
//   - Append, Swap, Set and Remove patch only the entries they affect.
//     Removal decrements the positions of every element after the removal
//     point, so lookups stay correct.
//
// An OrderedSet is not safe for concurrent use.
package orderedset

import (
	"errors"
	"fmt"
	"strings"
)

// ErrOutOfRange is returned when a position is outside the valid range.
var ErrOutOfRange = errors.New("index out of range")

// OrderedSet is an insertion-ordered collection of unique elements.
// The zero value is an empty set ready to use.
type OrderedSet[T comparable] struct {
	elements  []T
	positions map[T]int
}

// New returns a set holding elements in order.
// Later duplicates are discarded; the first occurrence keeps its position.
func New[T comparable](elements ...T) *OrderedSet[T] {
	s := &OrderedSet[T]{
		elements:  make([]T, 0, len(elements)),
		positions: make(map[T]int, len(elements)),
	}
	s.AppendAll(elements...)
	return s
}

// Len returns the number of elements.
func (s *OrderedSet[T]) Len() int {
	return len(s.elements)
}

// Has reports whether element is in the set.
func (s *OrderedSet[T]) Has(element T) bool {
	_, ok := s.positions[element]
	return ok
}

// IndexOf returns the position of element and whether it is present.
func (s *OrderedSet[T]) IndexOf(element T) (int, bool) {
	i, ok := s.positions[element]
	return i, ok
}

// Append adds element to the end unless it is already present.
// It reports whether the element was added.
func (s *OrderedSet[T]) Append(element T) bool {
	if s.Has(element) {
		return false
	}
	s.init()
	s.positions[element] = len(s.elements)
	s.elements = append(s.elements, element)
	return true
}

// AppendAll appends each element in order, skipping duplicates.
// It returns the number of elements added.
func (s *OrderedSet[T]) AppendAll(elements ...T) int {
	added := 0
	for _, e := range elements {
		if s.Append(e) {
			added++
		}
	}
	return added
}

// Insert places element at position at, shifting the elements at or after
// at one slot later. Inserting at Len() appends.
//
// Insert does not check whether element is already present. Inserting a
// duplicate leaves two copies in the sequence, and the position map points
// at whichever copy comes last.
func (s *OrderedSet[T]) Insert(element T, at int) error {
	if at < 0 || at > len(s.elements) {
		return fmt.Errorf("insert at %d (len %d): %w", at, len(s.elements), ErrOutOfRange)
	}
	s.init()

	switch at {
	case 0:
		s.elements = append([]T{element}, s.elements...)
	case len(s.elements):
		s.elements = append(s.elements, element)
	default:
		var zero T
		s.elements = append(s.elements, zero)
		copy(s.elements[at+1:], s.elements[at:])
		s.elements[at] = element
	}

	s.rebuild()
	return nil
}

// Swap exchanges the elements at positions i and j.
// If either position is invalid the set is left untouched and Swap
// returns false.
func (s *OrderedSet[T]) Swap(i, j int) bool {
	if !s.valid(i) || !s.valid(j) {
		return false
	}
	a, b := s.elements[i], s.elements[j]
	s.positions[a] = j
	s.positions[b] = i
	s.elements[i], s.elements[j] = b, a
	return true
}

// Remove deletes element and returns it.
// If element is absent it returns the zero value and false.
func (s *OrderedSet[T]) Remove(element T) (T, bool) {
	i, ok := s.positions[element]
	if !ok {
		var zero T
		return zero, false
	}
	return s.removeAt(i), true
}

// RemoveAt deletes the element at position i and returns it.
// If i is invalid it returns the zero value and false.
func (s *OrderedSet[T]) RemoveAt(i int) (T, bool) {
	if !s.valid(i) {
		var zero T
		return zero, false
	}
	return s.removeAt(i), true
}

// Get returns the element at position i.
func (s *OrderedSet[T]) Get(i int) (T, error) {
	if !s.valid(i) {
		var zero T
		return zero, fmt.Errorf("get %d (len %d): %w", i, len(s.elements), ErrOutOfRange)
	}
	return s.elements[i], nil
}

// Set replaces the element at position i with element.
//
// Like Insert, Set does not check for duplicates: if element already sits
// at another position, the map entry for it moves to i and the other copy
// is left without one.
func (s *OrderedSet[T]) Set(i int, element T) error {
	if !s.valid(i) {
		return fmt.Errorf("set %d (len %d): %w", i, len(s.elements), ErrOutOfRange)
	}
	delete(s.positions, s.elements[i])
	s.positions[element] = i
	s.elements[i] = element
	return nil
}

// Slice returns a copy of the elements in order.
func (s *OrderedSet[T]) Slice() []T {
	out := make([]T, len(s.elements))
	copy(out, s.elements)
	return out
}

// String renders the count followed by each element, for diagnostics.
func (s *OrderedSet[T]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "OrderedSet %d objects:", len(s.elements))
	for i, e := range s.elements {
		if i > 0 {
			b.WriteByte(',')
		}
		fmt.Fprintf(&b, " %v", e)
	}
	return b.String()
}

func (s *OrderedSet[T]) removeAt(i int) T {
	element := s.elements[i]
	delete(s.positions, element)

	copy(s.elements[i:], s.elements[i+1:])
	var zero T
	s.elements[len(s.elements)-1] = zero
	s.elements = s.elements[:len(s.elements)-1]

	for j := i; j < len(s.elements); j++ {
		s.positions[s.elements[j]] = j
	}
	return element
}

// rebuild recomputes every position from the element sequence.
func (s *OrderedSet[T]) rebuild() {
	for i, e := range s.elements {
		s.positions[e] = i
	}
}

func (s *OrderedSet[T]) valid(i int) bool {
	return i >= 0 && i < len(s.elements)
}

func (s *OrderedSet[T]) init() {
	if s.positions == nil {
		s.positions = make(map[T]int)
	}
}
