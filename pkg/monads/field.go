package monads

import (
	"sort"
	"strings"
)

// FieldError holds the messages reported against a single field.
type FieldError struct {
	Field    string
	Messages []string
}

func NewFieldError(field string, messages ...string) FieldError {
	return FieldError{Field: field, Messages: messages}
}

func (f FieldError) String() string {
	return f.Field + ": " + strings.Join(f.Messages, "\n")
}

// FieldErrors is an ordered list of field errors.
type FieldErrors []FieldError

// Map merges the list into a field -> messages mapping. Messages of a
// repeated field are appended in order, none is dropped.
func (fe FieldErrors) Map() map[string][]string {
	m := make(map[string][]string, len(fe))
	for _, f := range fe {
		m[f.Field] = append(m[f.Field], f.Messages...)
	}
	return m
}

// Fields returns field names in first-seen order without duplicates.
func (fe FieldErrors) Fields() []string {
	seen := make(map[string]struct{}, len(fe))
	names := make([]string, 0, len(fe))
	for _, f := range fe {
		if _, ok := seen[f.Field]; ok {
			continue
		}
		seen[f.Field] = struct{}{}
		names = append(names, f.Field)
	}
	return names
}

// FieldErrorsFromMap turns a mapping back into a list sorted by field name.
func FieldErrorsFromMap(m map[string][]string) FieldErrors {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)

	fe := make(FieldErrors, 0, len(names))
	for _, name := range names {
		fe = append(fe, FieldError{Field: name, Messages: append([]string(nil), m[name]...)})
	}
	return fe
}
