// Package list contains a generic doubly linked list and the List contract that the stack, queue
// and bag in package satchel are built on.
package list

import (
	"github.com/bradenaw/juniper/iterator"
)

// List is a sequence that can be grown and shrunk at both ends.
//
// PopBack and PopFront return false in the second return when the list is empty. That is not a
// failure, only a signal that no element was available.
type List[T any] interface {
	// Len returns the number of elements in the list.
	Len() int
	// PushBack adds value to the back of the list.
	PushBack(value T)
	// PushFront adds value to the front of the list.
	PushFront(value T)
	// PopBack removes and returns the element at the back of the list.
	PopBack() (T, bool)
	// PopFront removes and returns the element at the front of the list.
	PopFront() (T, bool)
	// Clear removes every element from the list.
	Clear()
	// Iter returns an iterator over the elements of the list from front to back.
	Iter() iterator.Iterator[T]
	// IterMut is like Iter, but yields pointers so that elements can be modified in place.
	IterMut() iterator.Iterator[*T]
}

var _ List[byte] = &LinkedList[byte]{}

// IsEmpty returns true if l has no elements.
func IsEmpty[T any](l List[T]) bool { return l.Len() == 0 }

// NonEmpty returns true if l has at least one element.
func NonEmpty[T any](l List[T]) bool { return l.Len() != 0 }
