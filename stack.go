package satchel

import (
	"github.com/bradenaw/juniper/iterator"

	"github.com/bradenaw/satchel/list"
)

// Stack is a last-in-first-out collection.
type Stack[T any] struct {
	l list.List[T]
}

func NewStack[T any]() *Stack[T] {
	return NewStackOn[T](list.New[T]())
}

// NewStackOn returns a Stack that keeps its elements in l, top first. l is used as-is, so any
// elements already in it are on the stack.
func NewStackOn[T any](l list.List[T]) *Stack[T] {
	if l == nil {
		panic("satchel: nil list")
	}
	return &Stack[T]{l: l}
}

// Push puts item on top of the stack.
func (s *Stack[T]) Push(item T) { s.l.PushFront(item) }

// Pop removes and returns the item on top of the stack, or false in the second return if the stack
// is empty.
func (s *Stack[T]) Pop() (T, bool) { return s.l.PopFront() }

// Peek returns the item on top of the stack without removing it, or false in the second return if
// the stack is empty.
func (s *Stack[T]) Peek() (T, bool) { return s.l.Iter().Next() }

func (s *Stack[T]) Len() int      { return s.l.Len() }
func (s *Stack[T]) IsEmpty() bool { return list.IsEmpty(s.l) }

// Iter iterates the stack from top to bottom.
func (s *Stack[T]) Iter() iterator.Iterator[T] { return s.l.Iter() }
