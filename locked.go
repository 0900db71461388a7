package satchel

import (
	"sync"

	"github.com/bradenaw/juniper/iterator"

	"github.com/bradenaw/satchel/list"
)

// Locked wraps a list.List with a single mutex so that it can be shared between goroutines. Every
// method holds the lock for its whole duration.
//
// Locked's methods may be called concurrently.
type Locked[T any] struct {
	m sync.Mutex
	l list.List[T]
}

var _ list.List[int] = &Locked[int]{}

// NewLocked returns a Locked that guards l. l must not be used directly afterwards.
func NewLocked[T any](l list.List[T]) *Locked[T] {
	if l == nil {
		panic("satchel: nil list")
	}
	return &Locked[T]{l: l}
}

func (c *Locked[T]) Len() int {
	c.m.Lock()
	defer c.m.Unlock()
	return c.l.Len()
}

func (c *Locked[T]) PushBack(value T) {
	c.m.Lock()
	defer c.m.Unlock()
	c.l.PushBack(value)
}

func (c *Locked[T]) PushFront(value T) {
	c.m.Lock()
	defer c.m.Unlock()
	c.l.PushFront(value)
}

func (c *Locked[T]) PopBack() (T, bool) {
	c.m.Lock()
	defer c.m.Unlock()
	return c.l.PopBack()
}

func (c *Locked[T]) PopFront() (T, bool) {
	c.m.Lock()
	defer c.m.Unlock()
	return c.l.PopFront()
}

func (c *Locked[T]) Clear() {
	c.m.Lock()
	defer c.m.Unlock()
	c.l.Clear()
}

// Iter returns an iterator over a copy of the list's elements taken under the lock. The list may
// be modified while the iterator is in use; the iterator won't see the changes.
func (c *Locked[T]) Iter() iterator.Iterator[T] {
	c.m.Lock()
	defer c.m.Unlock()
	return iterator.Slice(iterator.Collect(c.l.Iter()))
}

// IterMut returns an iterator over pointers to the list's elements, collected under the lock.
// Writes through the pointers are not guarded by the lock, so they must not race with other
// goroutines reading or modifying the same elements. Pushes and pops made after IterMut returns
// are not seen by the iterator.
func (c *Locked[T]) IterMut() iterator.Iterator[*T] {
	c.m.Lock()
	defer c.m.Unlock()
	return iterator.Slice(iterator.Collect(c.l.IterMut()))
}
