// Package search contains binary search over sorted slices.
//
// Every function returns the index it found and true, or 0 and false if there is no such index.
// The slices must be sorted in ascending order (by less, for the Func forms), except for Cycled.
package search

import (
	"github.com/bradenaw/juniper/xsort"
	"golang.org/x/exp/constraints"
)

// Binary returns an index of a that holds v. If v appears more than once, any of them may be
// returned.
func Binary[T constraints.Ordered](a []T, v T) (int, bool) {
	return BinaryFunc(a, v, xsort.OrderedLess[T])
}

func BinaryFunc[T any](a []T, v T, less xsort.Less[T]) (int, bool) {
	low, high := 0, len(a)-1
	for low <= high {
		mid := low + (high-low)/2
		switch {
		case less(a[mid], v):
			low = mid + 1
		case less(v, a[mid]):
			high = mid - 1
		default:
			return mid, true
		}
	}
	return 0, false
}

// First returns the lowest index of a that holds v.
func First[T constraints.Ordered](a []T, v T) (int, bool) {
	return FirstFunc(a, v, xsort.OrderedLess[T])
}

func FirstFunc[T any](a []T, v T, less xsort.Less[T]) (int, bool) {
	low, high := 0, len(a)-1
	for low <= high {
		mid := low + (high-low)/2
		switch {
		case less(a[mid], v):
			low = mid + 1
		case less(v, a[mid]):
			high = mid - 1
		case mid == 0 || less(a[mid-1], v):
			return mid, true
		default:
			high = mid - 1
		}
	}
	return 0, false
}

// Last returns the highest index of a that holds v.
func Last[T constraints.Ordered](a []T, v T) (int, bool) {
	return LastFunc(a, v, xsort.OrderedLess[T])
}

func LastFunc[T any](a []T, v T, less xsort.Less[T]) (int, bool) {
	low, high := 0, len(a)-1
	for low <= high {
		mid := low + (high-low)/2
		switch {
		case less(a[mid], v):
			low = mid + 1
		case less(v, a[mid]):
			high = mid - 1
		case mid == len(a)-1 || less(v, a[mid+1]):
			return mid, true
		default:
			low = mid + 1
		}
	}
	return 0, false
}

// FirstGTE returns the lowest index of a that holds an element greater than or equal to v.
func FirstGTE[T constraints.Ordered](a []T, v T) (int, bool) {
	return FirstGTEFunc(a, v, xsort.OrderedLess[T])
}

func FirstGTEFunc[T any](a []T, v T, less xsort.Less[T]) (int, bool) {
	low, high := 0, len(a)-1
	for low <= high {
		mid := low + (high-low)/2
		if less(a[mid], v) {
			low = mid + 1
		} else if mid == 0 || less(a[mid-1], v) {
			return mid, true
		} else {
			high = mid - 1
		}
	}
	return 0, false
}

// LastLTE returns the highest index of a that holds an element less than or equal to v.
func LastLTE[T constraints.Ordered](a []T, v T) (int, bool) {
	return LastLTEFunc(a, v, xsort.OrderedLess[T])
}

func LastLTEFunc[T any](a []T, v T, less xsort.Less[T]) (int, bool) {
	low, high := 0, len(a)-1
	for low <= high {
		mid := low + (high-low)/2
		if less(v, a[mid]) {
			high = mid - 1
		} else if mid == len(a)-1 || less(v, a[mid+1]) {
			return mid, true
		} else {
			low = mid + 1
		}
	}
	return 0, false
}

// Cycled returns an index of a that holds v, where a is a sorted slice that has been rotated by
// some unknown amount, e.g. [5 6 7 1 2 3 4]. The elements of a must be distinct.
func Cycled[T constraints.Ordered](a []T, v T) (int, bool) {
	return CycledFunc(a, v, xsort.OrderedLess[T])
}

func CycledFunc[T any](a []T, v T, less xsort.Less[T]) (int, bool) {
	low, high := 0, len(a)-1
	for low <= high {
		mid := low + (high-low)/2
		m := a[mid]
		if !less(m, v) && !less(v, m) {
			return mid, true
		}
		if !less(m, a[low]) {
			// a[low:mid+1] is in order, so v is in it iff a[low] <= v < m.
			if less(v, m) && !less(v, a[low]) {
				high = mid - 1
			} else {
				low = mid + 1
			}
		} else {
			// a[mid:high+1] is in order.
			if less(m, v) && !less(a[high], v) {
				low = mid + 1
			} else {
				high = mid - 1
			}
		}
	}
	return 0, false
}
