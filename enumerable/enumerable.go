// Copyright 2024 Mike Carlton
// Released under terms of the MIT License:
//   http://www.opensource.org/licenses/mit-license.php

// Package enumerable holds small generic helpers over slices.
package enumerable

// Filter returns the elements for which predicate holds, in order.
func Filter[T any](slice []T, predicate func(T) bool) []T {
	filtered := make([]T, 0)
	for _, elem := range slice {
		if predicate(elem) {
			filtered = append(filtered, elem)
		}
	}
	return filtered
}

func Map[T, R any](slice []T, mapper func(T) R) []R {
	mapped := make([]R, len(slice))
	for i, elem := range slice {
		mapped[i] = mapper(elem)
	}
	return mapped
}

// MapErr is Map for a mapper that can fail; it stops at the first error.
func MapErr[T, R any](slice []T, mapper func(T) (R, error)) ([]R, error) {
	mapped := make([]R, len(slice))
	for i, elem := range slice {
		r, err := mapper(elem)
		if err != nil {
			return nil, err
		}
		mapped[i] = r
	}
	return mapped, nil
}
