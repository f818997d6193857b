package ui

import "slices"

// FocusRing cycles focus through a fixed set of form fields. Moving past
// either end wraps around.
type FocusRing[T comparable] struct {
	order    []T
	at       int
	onChange func(to T)
}

// NewFocusRing focuses the first of order. onChange runs on every change of
// focus, including this initial one, so fields can sync their cursors.
func NewFocusRing[T comparable](onChange func(to T), order ...T) *FocusRing[T] {
	r := &FocusRing[T]{order: order, onChange: onChange}
	if len(order) > 0 && onChange != nil {
		onChange(order[0])
	}
	return r
}

// Current returns the focused field, or the zero value of an empty ring.
func (r *FocusRing[T]) Current() T {
	if len(r.order) == 0 {
		var zero T
		return zero
	}
	return r.order[r.at]
}

// Is reports whether field has focus.
func (r *FocusRing[T]) Is(field T) bool {
	return len(r.order) > 0 && r.order[r.at] == field
}

// Next moves focus forward and returns the new field.
func (r *FocusRing[T]) Next() T { return r.move(1) }

// Prev moves focus backward and returns the new field.
func (r *FocusRing[T]) Prev() T { return r.move(-1) }

// Focus moves focus to field. It reports false for fields outside the ring.
func (r *FocusRing[T]) Focus(field T) bool {
	i := slices.Index(r.order, field)
	if i < 0 {
		return false
	}
	r.jump(i)
	return true
}

func (r *FocusRing[T]) move(delta int) T {
	n := len(r.order)
	if n == 0 {
		return r.Current()
	}
	r.jump(((r.at+delta)%n + n) % n)
	return r.Current()
}

func (r *FocusRing[T]) jump(i int) {
	if i == r.at {
		return
	}
	r.at = i
	if r.onChange != nil {
		r.onChange(r.order[i])
	}
}
