// Package monads holds the field error model and the sentinel errors
// shared by the value types under it.
//
// Subpackages:
// - maybe: optional values
// - either: two-armed disjoint union with short-circuiting Chain
// - result: pass/fail outcomes with diagnostic payloads
// - factor, probability, weighting: bounded numeric quantities
// - validation: per-field error collection producing Either values
package monads
