// Package validation builds Either[T, []monads.FieldError] values the way
// entity constructors are expected to: every field is checked, errors are
// collected per field, and only a clean input produces the entity.
//
// Highlights:
// - Collector: Add/Check/Merge field errors, Build the result
// - Rule/Field/Validate: declarative per-field checks
// - All: combine several validated items into one Either
// - Messages: flatten field errors into display lines
//
// The results compose with either.Chain.
package validation
