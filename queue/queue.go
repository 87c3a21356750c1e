// Package queue provides an unbounded MPMC (Multi-Producer Multi-Consumer)
// FIFO queue built on the classic two-lock design: the head and the tail of
// the node chain are guarded by independent mutexes, so a producer and a
// consumer never contend with each other — only with their own kind.
//
// # Two-Lock Safety
//
// TwoLockQueue is safe for any number of goroutines to call Push() and Pop()
// concurrently. The two locks are never held at the same time by one call,
// so the structure cannot deadlock against itself.
//
// Len() is advisory: it is a single atomic load that may lag an in-flight
// Push or Pop by a moment. It is exact whenever no operation is in flight.
//
// A goroutine that panics out of user code while a queue call is on its
// stack cannot leave a lock held (Push and Pop call no user code), but a
// runtime-killed goroutine inside a call leaves that side of the queue
// permanently blocked. There is no recovery path; the instance is broken.
package queue

import (
	"sync"
	"sync/atomic"
)

// node is one link of the owning chain. The chain starting at the queue's
// head owns every node through the next pointers; nothing else does.
type node[T any] struct {
	val  T
	next *node[T]
}

// TwoLockQueue is an unbounded FIFO queue with separate head and tail locks.
//
// The first node of the chain is always a sentinel: its val slot is empty
// and it carries no element. Pop never has to special-case an empty chain,
// and Push and Pop touch disjoint nodes whenever at least one real element
// is stored.
type TwoLockQueue[T any] struct {
	headMu sync.Mutex
	head   *node[T] // sentinel; owns the chain

	tailMu sync.Mutex
	// tail locates the last node without owning it. It never precedes a
	// node Pop could unlink: Pop frees only head-side nodes, and when the
	// queue drains the last node becomes the new sentinel rather than
	// being freed, so tail cannot dangle.
	tail *node[T]

	length atomic.Int64
}

// New creates an empty TwoLockQueue.
func New[T any]() *TwoLockQueue[T] {
	sentinel := &node[T]{}
	q := &TwoLockQueue[T]{
		head: sentinel,
		tail: sentinel,
	}
	return q
}

// Push appends v at the tail. It never fails; capacity is bounded only by
// memory. Push blocks only while another producer holds the tail lock.
func (q *TwoLockQueue[T]) Push(v T) {
	n := &node[T]{val: v}

	q.tailMu.Lock()
	q.tail.next = n
	q.tail = n
	q.tailMu.Unlock()

	// The counter update is outside the critical section: Len may lag the
	// chain for a moment, which Pop's empty check tolerates.
	q.length.Add(1)
}

// Pop removes and returns the oldest element.
// Returns false if the queue is empty.
//
// The empty check reads the counter once under the head lock and treats
// zero as authoritative. A concurrent Push whose counter increment is not
// yet visible can therefore make Pop report empty even though a node is
// already linked — the element is simply observed by a later call.
func (q *TwoLockQueue[T]) Pop() (T, bool) {
	q.headMu.Lock()

	if q.length.Load() == 0 {
		q.headMu.Unlock()
		var zero T
		return zero, false
	}

	// length > 0 under the head lock guarantees head.next is linked:
	// nodes are only removed here, and the counter never exceeds the
	// number of linked real nodes.
	next := q.head.next
	q.head = next
	q.length.Add(-1)

	v := next.val
	var zero T
	next.val = zero // the promoted node is the new sentinel; drop the element

	q.headMu.Unlock()
	return v, true
}

// Len returns the current number of elements in the queue.
// This is an approximation and may be slightly stale.
func (q *TwoLockQueue[T]) Len() int {
	return int(q.length.Load())
}
