// Package zero provides utilities for working with zero values and nil values of generic types.
package zero

import "reflect"

// Value returns the zero value for type T.
// This is useful when you need to explicitly obtain the zero value of a generic type parameter.
//
// Example:
//
//	var defaultInt = zero.Value[int]()        // returns 0
//	var defaultPtr = zero.Value[*MyStruct]()  // returns nil
func Value[T any]() T {
	var zeroVal T

	return zeroVal
}

// IsZero reports whether value is the zero value for type T.
// It uses reflect.DeepEqual to perform a deep comparison between value and the zero value of T.
func IsZero[T any](value T) bool {
	var zeroVal T

	return reflect.DeepEqual(value, zeroVal)
}

// IsNil reports whether value is nil. Unlike a plain `value == nil` check, it also
// catches typed nils hidden inside an interface: a nil pointer, map, slice, func,
// channel or interface stored in an `any` is reported as nil.
//
// Example:
//
//	var p *int
//	zero.IsNil(nil)         // true
//	zero.IsNil(p)           // true
//	zero.IsNil([]int(nil))  // true
//	zero.IsNil(0)           // false
//	zero.IsNil("")          // false
func IsNil(value any) bool {
	if value == nil {
		return true
	}

	rv := reflect.ValueOf(value)

	switch rv.Kind() { //nolint:exhaustive
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func,
		reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}
