package internal

import (
	"slices"
)

// Queue is a first-in first-out queue of values.
type Queue[T any] struct {
	Data []T
}

// Push appends values to the tail of the queue.
func (q *Queue[T]) Push(values ...T) {
	q.Data = append(q.Data, values...)
}

// Pop removes the value at the head of the queue.
func (q *Queue[T]) Pop() (value T, ok bool) {
	value, ok = q.Peek()
	if ok {
		var zero T
		q.Data[0] = zero
		q.Data = q.Data[1:]
	}
	return
}

// Peek returns the value at the head of the queue without removing it.
func (q *Queue[T]) Peek() (value T, ok bool) {
	if q.Empty() {
		return
	}

	return q.Data[0], true
}

func (q *Queue[T]) Empty() bool {
	return len(q.Data) == 0
}

func (q *Queue[T]) Len() int {
	return len(q.Data)
}

// Clone returns an independent copy of the queue.
func (q *Queue[T]) Clone() Queue[T] {
	return Queue[T]{Data: slices.Clone(q.Data)}
}
