// Package either provides Either[S, F], a disjoint union of a success
// (right) and a failure (left) value, and the short-circuiting operators
// used to build pipelines out of Either-returning functions.
//
// Key operations:
// - Right/Left (R/L): construct an Either
// - Chain/Then: continue with the success value, pass failures through untouched
// - Map/MapBoth: transform both arms, possibly changing both types
// - ApplyRight/ApplyLeft: side effects on one arm
// - Fold: collapse to a single value
// - Sequence: run N steps, stopping at the first failure
// - Go/Await/ChainAsync/ChainAfter: the same contract when stages may block
//
// Every operator calls a continuation at most once, and never after a
// failure has been produced.
package either
