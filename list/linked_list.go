package list

import (
	"fmt"

	"github.com/bradenaw/juniper/iterator"
)

// LinkedList is a doubly linked list. The zero value is an empty list ready to use.
//
// Each node is reachable only through the next link of the node before it (or through front, for
// the first node). The prev link is a back-pointer used to find the new back in PopBack, and is
// cleared along with next as soon as a node leaves the list, so a removed node never keeps
// anything in the list alive and nothing in the list can reach it.
//
// LinkedList's methods may not be called concurrently. Wrap it in a satchel.Locked if it needs to
// be shared between goroutines.
type LinkedList[T any] struct {
	front *node[T]
	back  *node[T]
	size  int
	// Incremented by every structural change, so that iterators can tell they've been invalidated.
	gen uint64
}

type node[T any] struct {
	prev  *node[T]
	next  *node[T]
	value T
}

// New returns an empty LinkedList.
func New[T any]() *LinkedList[T] {
	return &LinkedList[T]{}
}

func (l *LinkedList[T]) Len() int       { return l.size }
func (l *LinkedList[T]) IsEmpty() bool  { return l.size == 0 }
func (l *LinkedList[T]) NonEmpty() bool { return l.size != 0 }

// Front returns the element at the front of the list without removing it, or false if the list
// is empty.
func (l *LinkedList[T]) Front() (T, bool) {
	if l.front == nil {
		var zero T
		return zero, false
	}
	return l.front.value, true
}

// Back returns the element at the back of the list without removing it, or false if the list is
// empty.
func (l *LinkedList[T]) Back() (T, bool) {
	if l.back == nil {
		var zero T
		return zero, false
	}
	return l.back.value, true
}

func (l *LinkedList[T]) PushBack(value T) {
	n := &node[T]{
		prev:  l.back,
		value: value,
	}
	if l.back != nil {
		l.back.next = n
	} else {
		l.front = n
	}
	l.back = n
	l.size++
	l.gen++
}

func (l *LinkedList[T]) PushFront(value T) {
	n := &node[T]{
		next:  l.front,
		value: value,
	}
	if l.front != nil {
		l.front.prev = n
	} else {
		l.back = n
	}
	l.front = n
	l.size++
	l.gen++
}

func (l *LinkedList[T]) PopBack() (T, bool) {
	n := l.back
	if n == nil {
		var zero T
		return zero, false
	}
	l.back = n.prev
	if l.back != nil {
		l.back.next = nil
	} else {
		l.front = nil
	}
	return l.detach(n), true
}

func (l *LinkedList[T]) PopFront() (T, bool) {
	n := l.front
	if n == nil {
		var zero T
		return zero, false
	}
	l.front = n.next
	if l.front != nil {
		l.front.prev = nil
	} else {
		l.back = nil
	}
	return l.detach(n), true
}

// detach finishes removing n, which must already be unreachable from front and back, and returns
// its value.
func (l *LinkedList[T]) detach(n *node[T]) T {
	value := n.value
	var zero T
	n.value = zero
	n.prev = nil
	n.next = nil
	l.size--
	l.gen++
	return value
}

// Clear removes every element from the list, one node at a time from the front. Clearing an empty
// list does nothing.
func (l *LinkedList[T]) Clear() {
	for l.front != nil {
		l.PopFront()
	}
}

// All returns the elements of the list from front to back in a new slice.
func (l *LinkedList[T]) All() []T {
	return iterator.Collect(l.Iter())
}

func (l *LinkedList[T]) String() string {
	return fmt.Sprint(l.All())
}
