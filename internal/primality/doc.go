// Package primality implements the Miller–Rabin primality test over uint64.
//
// IsPrime is deterministic for every uint64 input. IsProbablePrime draws
// random witnesses and may report a composite as prime with probability at
// most 4^-rounds. CheckAll fans a batch of numbers out over a bounded pool
// of goroutines and reports progress to a Sink.
package primality
