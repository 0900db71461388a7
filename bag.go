package satchel

import (
	"github.com/bradenaw/juniper/iterator"

	"github.com/bradenaw/satchel/list"
)

// Bag is a collection that items can be added to but never removed from. Adding the same item
// twice keeps both.
type Bag[T any] struct {
	l list.List[T]
}

func NewBag[T any]() *Bag[T] {
	return NewBagOn[T](list.New[T]())
}

func NewBagOn[T any](l list.List[T]) *Bag[T] {
	if l == nil {
		panic("satchel: nil list")
	}
	return &Bag[T]{l: l}
}

func (b *Bag[T]) Add(item T)                 { b.l.PushBack(item) }
func (b *Bag[T]) Len() int                   { return b.l.Len() }
func (b *Bag[T]) IsEmpty() bool              { return list.IsEmpty(b.l) }
func (b *Bag[T]) Iter() iterator.Iterator[T] { return b.l.Iter() }
