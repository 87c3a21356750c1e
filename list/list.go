// Package list provides a doubly linked list with push and pop at both ends.
//
// List is NOT safe for concurrent use. It is a plain single-owner structure;
// callers that share one across goroutines must provide their own locking.
package list

import (
	"fmt"
	"strings"
)

type node[T any] struct {
	val  T
	next *node[T]
	prev *node[T]
}

// List is a doubly linked list. The forward chain from head is the owning
// direction; prev pointers and the tail field only locate nodes.
// The zero value is an empty list ready to use.
type List[T any] struct {
	head *node[T]
	tail *node[T]
	len  int
}

// New creates an empty List.
func New[T any]() *List[T] {
	return &List[T]{}
}

// Len returns the number of elements in the list.
func (l *List[T]) Len() int {
	return l.len
}

// PushBack appends v at the tail.
func (l *List[T]) PushBack(v T) {
	n := &node[T]{val: v}
	if l.len == 0 {
		l.head = n
		l.tail = n
	} else {
		n.prev = l.tail
		l.tail.next = n
		l.tail = n
	}
	l.len++
}

// PushFront inserts v at the head.
func (l *List[T]) PushFront(v T) {
	n := &node[T]{val: v}
	if l.len == 0 {
		l.head = n
		l.tail = n
	} else {
		n.next = l.head
		l.head.prev = n
		l.head = n
	}
	l.len++
}

// PopBack removes and returns the last element.
// Returns false if the list is empty.
func (l *List[T]) PopBack() (zero T, _ bool) {
	if l.len == 0 {
		return zero, false
	}

	n := l.tail
	prev := n.prev
	if prev != nil {
		prev.next = nil
	} else {
		l.head = nil
	}
	l.tail = prev
	l.len--

	n.prev = nil // unlink so the node is collectable immediately

	return n.val, true
}

// PopFront removes and returns the first element.
// Returns false if the list is empty.
func (l *List[T]) PopFront() (zero T, _ bool) {
	if l.len == 0 {
		return zero, false
	}

	n := l.head
	next := n.next
	if next != nil {
		next.prev = nil
	} else {
		l.tail = nil
	}
	l.head = next
	l.len--

	n.next = nil

	return n.val, true
}

// Values returns the elements front to back. The slice is a snapshot;
// mutating it does not affect the list.
func (l *List[T]) Values() []T {
	if l.len == 0 {
		return nil
	}
	out := make([]T, 0, l.len)
	for n := l.head; n != nil; n = n.next {
		out = append(out, n.val)
	}
	return out
}

// String renders the list front to back, e.g. "List [1, 2, 3]".
func (l *List[T]) String() string {
	var b strings.Builder
	b.WriteString("List [")
	for n := l.head; n != nil; n = n.next {
		fmt.Fprintf(&b, "%v", n.val)
		if n.next != nil {
			b.WriteString(", ")
		}
	}
	b.WriteString("]")
	return b.String()
}
