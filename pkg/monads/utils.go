package monads

import (
	"reflect"
)

// IsNil reports whether i is nil or a typed nil of a nillable kind
// (pointer, map, slice, chan, func, interface).
func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}

	switch v := reflect.ValueOf(i); v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return v.IsNil()
	}
	return false
}
