// Package sorting contains simple in-place comparison sorts and quickselect.
//
// Each function has a form for ordered types and a Func form that takes an xsort.Less, for types
// that aren't ordered or need a different order. None of the sorts are stable except Bubble and
// Insertion.
package sorting

import (
	"github.com/bradenaw/juniper/xsort"
	"golang.org/x/exp/constraints"
)

// Bubble sorts a in ascending order. It stops early once a pass over a makes no swaps, so it is
// O(n) on input that is already sorted and O(n^2) otherwise.
func Bubble[T constraints.Ordered](a []T) { BubbleFunc(a, xsort.OrderedLess[T]) }

// BubbleFunc sorts a in the order given by less.
func BubbleFunc[T any](a []T, less xsort.Less[T]) {
	n := len(a)
	for i := 0; i < n; i++ {
		swapped := false
		for j := 0; j < n-i-1; j++ {
			if less(a[j+1], a[j]) {
				a[j], a[j+1] = a[j+1], a[j]
				swapped = true
			}
		}
		if !swapped {
			return
		}
	}
}

// Insertion sorts a in ascending order in O(n^2).
func Insertion[T constraints.Ordered](a []T) { InsertionFunc(a, xsort.OrderedLess[T]) }

func InsertionFunc[T any](a []T, less xsort.Less[T]) {
	for i := 1; i < len(a); i++ {
		x := a[i]
		j := i - 1
		for ; j >= 0 && less(x, a[j]); j-- {
			a[j+1] = a[j]
		}
		a[j+1] = x
	}
}

// Selection sorts a in ascending order in O(n^2), with at most n swaps.
func Selection[T constraints.Ordered](a []T) { SelectionFunc(a, xsort.OrderedLess[T]) }

func SelectionFunc[T any](a []T, less xsort.Less[T]) {
	for i := range a {
		m := i
		for j := i + 1; j < len(a); j++ {
			if less(a[j], a[m]) {
				m = j
			}
		}
		if m != i {
			a[i], a[m] = a[m], a[i]
		}
	}
}

// Quick sorts a in ascending order using quicksort with the last element as the pivot. Expected
// O(n log n), O(n^2) on already-sorted input.
func Quick[T constraints.Ordered](a []T) { QuickFunc(a, xsort.OrderedLess[T]) }

func QuickFunc[T any](a []T, less xsort.Less[T]) {
	for len(a) > 1 {
		p := partition(a, less)
		// Recurse into the smaller side and loop on the larger one to keep the stack O(log n).
		if p < len(a)-p-1 {
			QuickFunc(a[:p], less)
			a = a[p+1:]
		} else {
			QuickFunc(a[p+1:], less)
			a = a[:p]
		}
	}
}

// partition moves every element of a that is less than the last element to the front, puts the
// last element right after them, and returns its new index. a must not be empty.
func partition[T any](a []T, less xsort.Less[T]) int {
	n := len(a)
	pivot := a[n-1]
	i := 0
	for j := 0; j < n-1; j++ {
		if less(a[j], pivot) {
			a[i], a[j] = a[j], a[i]
			i++
		}
	}
	a[i], a[n-1] = a[n-1], a[i]
	return i
}

// SmallestN returns the nth smallest element of a, counting from 1, or false in the second return
// if n is 0 or larger than len(a). It reorders a.
func SmallestN[T constraints.Ordered](a []T, n int) (T, bool) {
	return SmallestNFunc(a, n, xsort.OrderedLess[T])
}

func SmallestNFunc[T any](a []T, n int, less xsort.Less[T]) (T, bool) {
	if n <= 0 || n > len(a) {
		var zero T
		return zero, false
	}
	for {
		p := partition(a, less)
		switch {
		case p == n-1:
			return a[p], true
		case p < n-1:
			a = a[p+1:]
			n -= p + 1
		default:
			a = a[:p]
		}
	}
}
