// SPDX-License-Identifier: MIT

package pq

import "fmt"

// Queue is a 1-indexed binary min-heap of *Element[T] with a fixed capacity.
//
// Invariant: for every i in [1, count], elements[i].index == i and
// elements[i/2].priority <= elements[i].priority.
type Queue[T any] struct {
	elements []*Element[T] // len == capacity+1; slot 0 unused
	count    int
}

// New returns an empty queue able to hold maxElements elements.
// Returns ErrBadCapacity if maxElements < 0.
func New[T any](maxElements int) (*Queue[T], error) {
	if maxElements < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadCapacity, maxElements)
	}

	return &Queue[T]{elements: make([]*Element[T], maxElements+1)}, nil
}

// Len returns the number of elements currently held.
func (q *Queue[T]) Len() int { return q.count }

// Cap returns the maximum number of elements the queue can hold.
func (q *Queue[T]) Cap() int { return len(q.elements) - 1 }

// Contains reports whether e currently occupies its recorded slot in q.
// Stale or dequeued elements report false.
func (q *Queue[T]) Contains(e *Element[T]) bool {
	if e == nil || e.index < 1 || e.index > q.count {
		return false
	}

	return q.elements[e.index] == e
}

// Enqueue sets e's priority and inserts it, cascading it up to its heap position.
// e must not be held by any queue.
func (q *Queue[T]) Enqueue(e *Element[T], priority float64) error {
	if q.Contains(e) {
		return ErrAlreadyQueued
	}
	if e.index != 0 {
		return fmt.Errorf("%w: held by another queue at slot %d", ErrAlreadyQueued, e.index)
	}
	if q.count >= q.Cap() {
		return fmt.Errorf("%w: capacity %d", ErrQueueFull, q.Cap())
	}

	e.priority = priority
	q.count++
	q.elements[q.count] = e
	e.index = q.count
	q.cascadeUp(e)

	return nil
}

// Peek returns the minimum-priority element without removing it.
func (q *Queue[T]) Peek() (*Element[T], error) {
	if q.count == 0 {
		return nil, ErrQueueEmpty
	}

	return q.elements[1], nil
}

// Dequeue removes and returns the minimum-priority element.
// The last element takes the root slot and cascades down.
func (q *Queue[T]) Dequeue() (*Element[T], error) {
	if q.count == 0 {
		return nil, ErrQueueEmpty
	}

	root := q.elements[1]
	root.index = 0

	if q.count == 1 {
		q.elements[1] = nil
		q.count = 0
		return root, nil
	}

	last := q.elements[q.count]
	q.elements[q.count] = nil
	q.count--
	q.elements[1] = last
	last.index = 1
	q.cascadeDown(last)

	return root, nil
}

// UpdatePriority changes the priority of an enqueued element and restores heap order:
// up if it now beats its parent, down otherwise.
func (q *Queue[T]) UpdatePriority(e *Element[T], priority float64) error {
	if !q.Contains(e) {
		return ErrNotQueued
	}

	e.priority = priority
	parent := e.index >> 1
	if parent > 0 && e.priority < q.elements[parent].priority {
		q.cascadeUp(e)
	} else {
		q.cascadeDown(e)
	}

	return nil
}

// Resize reallocates storage for maxElements elements.
// Slots beyond the new capacity are dropped and their elements marked not enqueued.
func (q *Queue[T]) Resize(maxElements int) error {
	if maxElements < 0 {
		return fmt.Errorf("%w: %d", ErrBadCapacity, maxElements)
	}

	keep := min(maxElements, q.count)
	for i := keep + 1; i <= q.count; i++ {
		q.elements[i].index = 0
	}

	resized := make([]*Element[T], maxElements+1)
	copy(resized, q.elements[:keep+1])
	q.elements = resized
	q.count = keep

	return nil
}

// Clear empties the queue, keeping its capacity.
func (q *Queue[T]) Clear() {
	for i := 1; i <= q.count; i++ {
		q.elements[i].index = 0
		q.elements[i] = nil
	}
	q.count = 0
}

// cascadeUp moves e toward the root while its parent has a strictly greater priority.
func (q *Queue[T]) cascadeUp(e *Element[T]) {
	i := e.index
	for i > 1 {
		parent := i >> 1
		p := q.elements[parent]
		if p.priority <= e.priority {
			break
		}
		q.elements[i] = p
		p.index = i
		i = parent
	}
	q.elements[i] = e
	e.index = i
}

// cascadeDown moves e toward the leaves while a child has a strictly smaller priority.
func (q *Queue[T]) cascadeDown(e *Element[T]) {
	i := e.index
	for {
		left := i << 1
		if left > q.count {
			break
		}
		child := left
		if right := left + 1; right <= q.count && q.elements[right].priority < q.elements[left].priority {
			child = right
		}
		c := q.elements[child]
		if c.priority >= e.priority {
			break
		}
		q.elements[i] = c
		c.index = i
		i = child
	}
	q.elements[i] = e
	e.index = i
}
