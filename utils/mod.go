// Package utils has small slice helpers that never modify their input.
package utils

// FindIndex returns the position of the first element equal to item, or -1.
func FindIndex[T comparable](slice []T, item T) int {
	for i, v := range slice {
		if v == item {
			return i
		}
	}
	return -1
}

// Count returns how many elements equal item.
func Count[T comparable](slice []T, item T) int {
	n := 0
	for _, v := range slice {
		if v == item {
			n++
		}
	}
	return n
}

// WithoutIndex returns a fresh slice holding every element except the one at i.
func WithoutIndex[T any](slice []T, i int) []T {
	out := make([]T, 0, len(slice)-1)
	out = append(out, slice[:i]...)
	return append(out, slice[i+1:]...)
}

// Appended returns a fresh slice holding slice followed by items.
func Appended[T any](slice []T, items ...T) []T {
	out := make([]T, 0, len(slice)+len(items))
	out = append(out, slice...)
	return append(out, items...)
}
