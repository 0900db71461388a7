package list

import (
	"github.com/bradenaw/juniper/iterator"
)

// Iter returns an iterator over the elements of the list from front to back. Every call returns a
// new iterator starting at the front.
//
// The list may not be pushed to, popped from or cleared while the iterator is in use. Next panics
// if it notices that this has happened.
func (l *LinkedList[T]) Iter() iterator.Iterator[T] {
	return &iter[T]{cursor: l.cursor()}
}

// IterMut is like Iter, but yields pointers to the elements so that they can be modified in
// place. The pointers must not be used after the element is removed from the list.
func (l *LinkedList[T]) IterMut() iterator.Iterator[*T] {
	return &iterMut[T]{cursor: l.cursor()}
}

type cursor[T any] struct {
	l    *LinkedList[T]
	next *node[T]
	gen  uint64
}

func (l *LinkedList[T]) cursor() cursor[T] {
	return cursor[T]{l: l, next: l.front, gen: l.gen}
}

func (c *cursor[T]) advance() (*node[T], bool) {
	if c.l == nil {
		return nil, false
	}
	if c.l.gen != c.gen {
		panic("list: modified during iteration")
	}
	n := c.next
	if n == nil {
		c.l = nil
		return nil, false
	}
	c.next = n.next
	return n, true
}

type iter[T any] struct{ cursor cursor[T] }

func (it *iter[T]) Next() (T, bool) {
	n, ok := it.cursor.advance()
	if !ok {
		var zero T
		return zero, false
	}
	return n.value, true
}

type iterMut[T any] struct{ cursor cursor[T] }

func (it *iterMut[T]) Next() (*T, bool) {
	n, ok := it.cursor.advance()
	if !ok {
		return nil, false
	}
	return &n.value, true
}
