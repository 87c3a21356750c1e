package queue_test

import (
	"testing"

	"github.com/linked-go/collections/queue"
)

// Sink variables to prevent compiler from eliminating benchmark loops
var sinkInt int
var sinkBool bool

func BenchmarkTwoLockQueue_PushPop(b *testing.B) {
	q := queue.New[int]()
	b.ReportAllocs()
	b.ResetTimer()

	var val int
	var ok bool
	for i := 0; i < b.N; i++ {
		q.Push(i)
		val, ok = q.Pop()
	}
	sinkInt = val
	sinkBool = ok
}

func BenchmarkTwoLockQueue_Push(b *testing.B) {
	q := queue.New[int]()
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		q.Push(i)
	}
}

func BenchmarkTwoLockQueue_Pop(b *testing.B) {
	q := queue.New[int]()
	for i := 0; i < b.N; i++ {
		q.Push(i)
	}
	b.ReportAllocs()
	b.ResetTimer()

	var val int
	var ok bool
	for i := 0; i < b.N; i++ {
		val, ok = q.Pop()
	}
	sinkInt = val
	sinkBool = ok
}

func BenchmarkTwoLockQueue_Len(b *testing.B) {
	q := queue.New[int]()
	q.Push(1)
	b.ReportAllocs()
	b.ResetTimer()

	var n int
	for i := 0; i < b.N; i++ {
		n = q.Len()
	}
	sinkInt = n
}

// Parallel benchmark: each goroutine alternates Push and Pop, exercising
// both locks under contention.
func BenchmarkTwoLockQueue_PushPop_Parallel(b *testing.B) {
	q := queue.New[int]()
	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			q.Push(i)
			q.Pop()
			i++
		}
	})
}
