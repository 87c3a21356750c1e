// Package combined provides comparison benchmarks that put the two-lock
// queue next to other queueing primitives under the same load shapes.
//
// These benchmarks are more representative of real-world performance
// than isolated micro-benchmarks, as they capture producer/consumer
// interaction and lock contention rather than single-goroutine cost.
package combined
