package monads

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFieldErrors_MapKeepsAllMessages(t *testing.T) {
	t.Parallel()

	fe := FieldErrors{
		NewFieldError("Name", "required"),
		NewFieldError("Balance", "must be positive"),
		NewFieldError("Name", "too short", "not unique"),
	}

	m := fe.Map()
	assert.Len(t, m, 2)
	assert.Equal(t, []string{"required", "too short", "not unique"}, m["Name"])
	assert.Equal(t, []string{"must be positive"}, m["Balance"])
	assert.Equal(t, []string{"Name", "Balance"}, fe.Fields())
}

func TestFieldErrorsFromMap_Sorted(t *testing.T) {
	t.Parallel()

	fe := FieldErrorsFromMap(map[string][]string{
		"b": {"two"},
		"a": {"one"},
	})

	assert.Equal(t, FieldErrors{
		{Field: "a", Messages: []string{"one"}},
		{Field: "b", Messages: []string{"two"}},
	}, fe)
}

func TestFieldError_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Notes: required\ntoo long", NewFieldError("Notes", "required", "too long").String())
}

func TestFailureError(t *testing.T) {
	t.Parallel()

	plain := &FailureError{Message: "failed"}
	assert.Equal(t, "failed", plain.Error())

	withFields := &FailureError{
		Message: "failed",
		Fields:  map[string][]string{"b": {"x"}, "a": {"y"}},
	}
	assert.Equal(t, "failed; a: y; b: x", withFields.Error())
}
