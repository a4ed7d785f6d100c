// Package maybe provides Maybe[T], a value that may be absent, as an
// alternative to nil sentinels.
//
// Highlights:
// - Create/Some/Empty/FromPointer/First: construct a Maybe
// - Value/Get/Coalesce: read the value (Value panics when empty)
// - Map: continue with a Maybe-returning function only when present
// - Apply: side effect when present
// - Equal/EqualFunc/Is: value-based equality
package maybe
