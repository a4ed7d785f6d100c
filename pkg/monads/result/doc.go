// Package result provides the terminal, diagnostic outcome types: Result,
// Value[T] and Pair[S, F]. A failure always carries a non-blank message and
// may carry per-field messages.
//
// Unlike either, this package has no Chain or Map: convert with
// Value.Either/Pair.Either when a pipeline is needed.
//
// Every result gets an id and a UTC creation time for tracing.
package result
