package satchel

import (
	"github.com/bradenaw/juniper/iterator"

	"github.com/bradenaw/satchel/list"
)

// Queue is a first-in-first-out collection.
type Queue[T any] struct {
	l list.List[T]
}

func NewQueue[T any]() *Queue[T] {
	return NewQueueOn[T](list.New[T]())
}

// NewQueueOn returns a Queue that keeps its elements in l, oldest first.
func NewQueueOn[T any](l list.List[T]) *Queue[T] {
	if l == nil {
		panic("satchel: nil list")
	}
	return &Queue[T]{l: l}
}

// Enqueue adds item to the back of the queue.
func (q *Queue[T]) Enqueue(item T) { q.l.PushBack(item) }

// Dequeue removes and returns the oldest item in the queue, or false in the second return if the
// queue is empty.
func (q *Queue[T]) Dequeue() (T, bool) { return q.l.PopFront() }

// Peek returns the oldest item without removing it.
func (q *Queue[T]) Peek() (T, bool) { return q.l.Iter().Next() }

func (q *Queue[T]) Len() int      { return q.l.Len() }
func (q *Queue[T]) IsEmpty() bool { return list.IsEmpty(q.l) }

// Iter iterates the queue from oldest to newest.
func (q *Queue[T]) Iter() iterator.Iterator[T] { return q.l.Iter() }
