package validation

import (
	"github.com/ib-77/monads/pkg/monads"
	"github.com/ib-77/monads/pkg/monads/either"
)

// Collector accumulates field errors so that every invalid field is
// reported, instead of stopping at the first one.
type Collector struct {
	errs  []monads.FieldError
	index map[string]int
}

// Add records messages against field, appending to earlier ones.
func (c *Collector) Add(field string, messages ...string) {
	if len(messages) == 0 {
		return
	}
	if c.index == nil {
		c.index = make(map[string]int)
	}

	if i, ok := c.index[field]; ok {
		c.errs[i].Messages = append(c.errs[i].Messages, messages...)
		return
	}
	c.index[field] = len(c.errs)
	c.errs = append(c.errs, monads.NewFieldError(field, append([]string(nil), messages...)...))
}

// Check records errMsg against field when valid is false and returns valid.
func (c *Collector) Check(field string, valid bool, errMsg string) bool {
	if !valid {
		c.Add(field, errMsg)
	}
	return valid
}

func (c *Collector) Merge(errs ...monads.FieldError) {
	for _, e := range errs {
		c.Add(e.Field, e.Messages...)
	}
}

func (c *Collector) Failed() bool {
	return len(c.errs) > 0
}

// Errors returns a copy of the collected errors in first-seen field order.
func (c *Collector) Errors() []monads.FieldError {
	out := make([]monads.FieldError, len(c.errs))
	for i, e := range c.errs {
		out[i] = monads.NewFieldError(e.Field, append([]string(nil), e.Messages...)...)
	}
	return out
}

// Build returns the collected errors as a failure, or the value produced by
// build when nothing was collected. build is not called on failure.
func Build[T any](c *Collector, build func() T) either.Either[T, []monads.FieldError] {
	if c.Failed() {
		return either.Left[T](c.Errors())
	}
	return either.Right[T, []monads.FieldError](build())
}

// Rule validates one field of T.
type Rule[T any] struct {
	Field string
	Check func(in T) (valid bool, errMsg string)
}

func Field[T any](name string, check func(in T) (valid bool, errMsg string)) Rule[T] {
	return Rule[T]{Field: name, Check: check}
}

// Validate runs every rule against value and fails with all collected errors.
func Validate[T any](value T, rules ...Rule[T]) either.Either[T, []monads.FieldError] {
	c := &Collector{}
	for _, rule := range rules {
		valid, errMsg := rule.Check(value)
		c.Check(rule.Field, valid, errMsg)
	}
	return Build(c, func() T { return value })
}

// All gathers the successes of items, or every failure of them when at
// least one item failed.
func All[T any](items []either.Either[T, []monads.FieldError]) either.Either[[]T, []monads.FieldError] {
	c := &Collector{}
	values := make([]T, 0, len(items))
	for _, item := range items {
		if item.IsLeft() {
			c.Merge(item.Left()...)
			continue
		}
		values = append(values, item.Right())
	}
	return Build(c, func() []T { return values })
}

// Messages flattens field errors to "Field: msg" lines, the failure shape
// used by service level pipelines.
func Messages(errs []monads.FieldError) []string {
	out := make([]string, 0, len(errs))
	for _, e := range errs {
		out = append(out, e.String())
	}
	return out
}
