// Command twolock measures two-lock queue throughput under a
// producer/consumer load and compares it against a buffered channel.
//
// Usage:
//
//	go run ./cmd/twolock -n 1000000 -producers 4 -consumers 4
package main

import (
	"flag"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/linked-go/collections/queue"
)

func main() {
	perProducer := flag.Int("n", 1_000_000, "values pushed per producer")
	producers := flag.Int("producers", 4, "number of producer goroutines")
	consumers := flag.Int("consumers", 4, "number of consumer goroutines")
	flag.Parse()

	total := *perProducer * *producers

	fmt.Printf("Benchmarking MPMC queues (%d producers × %d values, %d consumers)\n",
		*producers, *perProducer, *consumers)
	fmt.Println("─────────────────────────────────────────────────")

	qDur := runTwoLock(*producers, *consumers, *perProducer)
	chDur := runChannel(*producers, *consumers, *perProducer)

	qPerOp := float64(qDur.Nanoseconds()) / float64(total)
	chPerOp := float64(chDur.Nanoseconds()) / float64(total)

	fmt.Printf("\nResults (push + pop per value):\n")
	fmt.Printf("  TwoLockQueue:  %v (%.2f ns/op)\n", qDur, qPerOp)
	fmt.Printf("  Channel:       %v (%.2f ns/op)\n", chDur, chPerOp)

	if qPerOp < chPerOp {
		fmt.Printf("\n  Speedup:  %.2fx (TwoLockQueue faster)\n", chPerOp/qPerOp)
	} else {
		fmt.Printf("\n  Speedup:  %.2fx (Channel faster)\n", qPerOp/chPerOp)
	}

	fmt.Printf("\nThroughput:\n")
	fmt.Printf("  TwoLockQueue:  %.2f M ops/sec\n", 1000/qPerOp)
	fmt.Printf("  Channel:       %.2f M ops/sec\n", 1000/chPerOp)
}

// runTwoLock moves producers×perProducer values through a TwoLockQueue and
// returns the wall time from first push to last pop.
func runTwoLock(producers, consumers, perProducer int) time.Duration {
	q := queue.New[int]()
	total := producers * perProducer

	var remaining atomic.Int64
	remaining.Store(int64(total))

	start := time.Now()

	var producerWg sync.WaitGroup
	for p := 0; p < producers; p++ {
		producerWg.Add(1)
		go func() {
			defer producerWg.Done()
			for i := 0; i < perProducer; i++ {
				q.Push(i)
			}
		}()
	}

	var consumerWg sync.WaitGroup
	for c := 0; c < consumers; c++ {
		consumerWg.Add(1)
		go func() {
			defer consumerWg.Done()
			// Spin on empty: Pop does not block, and every consumer can
			// exit once all values have been collected.
			for remaining.Load() > 0 {
				if _, ok := q.Pop(); ok {
					remaining.Add(-1)
				}
			}
		}()
	}

	producerWg.Wait()
	consumerWg.Wait()

	return time.Since(start)
}

// runChannel is the same load over a buffered channel.
func runChannel(producers, consumers, perProducer int) time.Duration {
	ch := make(chan int, 1024)

	start := time.Now()

	var producerWg sync.WaitGroup
	for p := 0; p < producers; p++ {
		producerWg.Add(1)
		go func() {
			defer producerWg.Done()
			for i := 0; i < perProducer; i++ {
				ch <- i
			}
		}()
	}

	var consumerWg sync.WaitGroup
	for c := 0; c < consumers; c++ {
		consumerWg.Add(1)
		go func() {
			defer consumerWg.Done()
			for range ch {
			}
		}()
	}

	producerWg.Wait()
	close(ch)
	consumerWg.Wait()

	return time.Since(start)
}
