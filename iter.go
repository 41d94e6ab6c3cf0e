// SPDX-License-Identifier: MIT
//
// Copyright 2026 Alberto Cavalcante. All rights reserved.
// Use of this source code is governed by a MIT-style license
// that can be found in the LICENSE file.

package orderedset

import "iter"

// FromSeq returns a set holding the values of seq in order, first
// occurrence wins.
func FromSeq[T comparable](seq iter.Seq[T]) *OrderedSet[T] {
	s := New[T]()
	for v := range seq {
		s.Append(v)
	}
	return s
}

// All returns an iterator over positions and elements in order.
// It walks the live backing slice; mutating the set during iteration
// is undefined.
func (s *OrderedSet[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < len(s.elements); i++ {
			if !yield(i, s.elements[i]) {
				return
			}
		}
	}
}

// Values returns an iterator over the elements in order.
func (s *OrderedSet[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range s.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// Iterator is a forward cursor over a set.
type Iterator[T comparable] struct {
	set  *OrderedSet[T]
	next int
}

// Iterator returns a cursor positioned before the first element.
func (s *OrderedSet[T]) Iterator() *Iterator[T] {
	return &Iterator[T]{set: s}
}

// Next returns the next element, or false once the set is exhausted.
func (it *Iterator[T]) Next() (T, bool) {
	if it.next >= len(it.set.elements) {
		var zero T
		return zero, false
	}
	v := it.set.elements[it.next]
	it.next++
	return v, true
}

// Reset rewinds the cursor to the first element.
func (it *Iterator[T]) Reset() {
	it.next = 0
}
