package util

import "reflect"

// CloneSlice clones slice with cloneSize.
// This function will use src length as the clons size if cloneSize is 0.
func CloneSlice[T any](src []T, cloneSize int) []T {
	if cloneSize == 0 {
		cloneSize = len(src)
	}
	clone := make([]T, cloneSize)
	copy(clone, src)

	return clone
}

// CloneRing copies the logical contents of a circular buffer into a new slice
// of length cloneSize, front-aligned at index 0.
//
// head is the index of the first element and tail the index one past the last
// one. When head > tail the contents wrap, so [head, len(ring)) is copied
// first, followed by [0, tail). It returns the new slice and the number of
// elements copied.
func CloneRing[T any](ring []T, head, tail, cloneSize int) ([]T, int) {
	clone := make([]T, cloneSize)

	var n int
	if head > tail {
		n = copy(clone, ring[head:])
		n += copy(clone[n:], ring[:tail])
	} else {
		n = copy(clone, ring[head:tail])
	}

	return clone, n
}

// IsNil reports whether v is absent: either a nil interface, or a nil value
// of a pointer, map, slice, channel, function or interface type.
func IsNil[T any](v T) bool {
	iv := any(v)
	if iv == nil {
		return true
	}

	rv := reflect.ValueOf(iv)
	switch rv.Kind() { //nolint:exhaustive
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}
