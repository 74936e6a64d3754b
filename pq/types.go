// SPDX-License-Identifier: MIT

package pq

import "errors"

// Sentinel errors for queue operations.
var (
	// ErrBadCapacity indicates a negative maximum element count.
	ErrBadCapacity = errors.New("pq: capacity must be non-negative")

	// ErrQueueFull indicates Enqueue was called on a queue at capacity.
	ErrQueueFull = errors.New("pq: queue is full")

	// ErrQueueEmpty indicates Dequeue or Peek was called on an empty queue.
	ErrQueueEmpty = errors.New("pq: queue is empty")

	// ErrAlreadyQueued indicates the element is already held by the queue.
	ErrAlreadyQueued = errors.New("pq: element already enqueued")

	// ErrNotQueued indicates the element is not held by the queue.
	ErrNotQueued = errors.New("pq: element not enqueued")
)

// Element wraps an immutable payload with the queue-owned priority and heap index.
// An index of 0 means the element is not enqueued.
type Element[T any] struct {
	value    T
	priority float64
	index    int
}

// NewElement wraps value for use with a Queue.
func NewElement[T any](value T) *Element[T] {
	return &Element[T]{value: value}
}

// Value returns the wrapped payload.
func (e *Element[T]) Value() T { return e.value }

// Priority returns the priority last assigned by a queue.
func (e *Element[T]) Priority() float64 { return e.priority }

// Index returns the 1-based heap slot, or 0 when not enqueued.
func (e *Element[T]) Index() int { return e.index }
