package obj

import (
	"reflect"
)

// IsNil reports whether what is nil, including an interface holding a nil
// pointer, map, slice, channel or func.
func IsNil(what interface{}) bool {
	if what == nil {
		return true
	}

	v := reflect.ValueOf(what)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}
