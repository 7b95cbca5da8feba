// Package memory provides the auxiliary storage used by stack machines and
// Turing machines.
package memory

import "slices"

// Stack is a LIFO of comparable items. The zero value is an empty stack.
type Stack[T comparable] struct {
	items []T
}

// NewStack returns a stack holding items, the last one on top.
func NewStack[T comparable](items ...T) *Stack[T] {
	return &Stack[T]{items: slices.Clone(items)}
}

func (s *Stack[T]) Push(v T) {
	s.items = append(s.items, v)
}

// Pop removes and returns the top item. ok is false on an empty stack.
func (s *Stack[T]) Pop() (v T, ok bool) {
	if len(s.items) == 0 {
		return v, false
	}
	last := len(s.items) - 1
	v = s.items[last]
	s.items = s.items[:last]
	return v, true
}

// Peek returns the top item without removing it.
func (s *Stack[T]) Peek() (v T, ok bool) {
	if len(s.items) == 0 {
		return v, false
	}
	return s.items[len(s.items)-1], true
}

func (s *Stack[T]) Len() int { return len(s.items) }

func (s *Stack[T]) IsEmpty() bool { return len(s.items) == 0 }

// Clone returns an independent copy.
func (s *Stack[T]) Clone() *Stack[T] {
	return &Stack[T]{items: slices.Clone(s.items)}
}

// Items returns a copy of the contents, bottom first.
func (s *Stack[T]) Items() []T {
	return slices.Clone(s.items)
}

func (s *Stack[T]) Equal(other *Stack[T]) bool {
	return slices.Equal(s.items, other.items)
}
