// Package compare provides utilities for comparing values.
package compare

import "reflect"

// Comparable is a generic interface for types that can compare themselves for equality.
// Types implementing this interface must provide their own Equals method that determines
// whether two values are equal according to the type's semantics.
type Comparable[T any] interface {
	Equals(other T) bool
}

// Equals compares two values using the Comparable interface.
// It delegates to the Equals method of the first argument.
func Equals[T any](a Comparable[T], b T) bool {
	return a.Equals(b)
}

// AnyEquals compares two dynamically typed values. If the left value implements
// Comparable[any] its Equals method decides; otherwise the values are compared
// with reflect.DeepEqual. Two nil values are equal, a nil and a non-nil value never are.
func AnyEquals(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	if cmp, ok := a.(Comparable[any]); ok {
		return cmp.Equals(b)
	}

	return reflect.DeepEqual(a, b)
}

// AllEqual reports whether two sequences have the same length and are
// element-wise equal according to AnyEquals. Order matters.
func AllEqual(a, b []any) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if !AnyEquals(a[i], b[i]) {
			return false
		}
	}

	return true
}
