// SPDX-License-Identifier: MIT

// Package pq provides a fixed-capacity indexed binary min-heap.
//
// What:
//
//   - Queue[T] keeps *Element[T] values ordered by a float64 priority
//     (lower priority is dequeued first).
//   - Every Element carries its own 1-based heap position, so Contains is O(1)
//     and UpdatePriority needs no scan.
//   - Slot 0 of the backing array is unused; parent of i is i/2, children are 2i and 2i+1.
//
// Complexity:
//
//   - Enqueue, Dequeue, UpdatePriority: O(log n).
//   - Contains, Peek, Len, Cap:         O(1).
//   - Resize, Clear:                    O(n).
//
// Errors:
//
//   - ErrBadCapacity:   negative capacity passed to New or Resize.
//   - ErrQueueFull:     Enqueue on a queue already holding Cap() elements.
//   - ErrQueueEmpty:    Dequeue or Peek on an empty queue.
//   - ErrAlreadyQueued: Enqueue of an element the queue already holds.
//   - ErrNotQueued:     UpdatePriority of an element the queue does not hold.
//
// The heap is not stable: equal priorities come out in no defined order.
// A Queue is not safe for concurrent use.
package pq
