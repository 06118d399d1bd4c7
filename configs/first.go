package configs

import (
	"errors"
)

// First returns the first value at path, or the zero value if no file defines it.
// Other errors panic.
func First[T any](loader Loader, path string) T {
	var value T
	if err := loader.AssignFirst(path, &value); err != nil {
		if errors.Is(err, ErrValueNotFound) {
			return value
		}
		panic(err)
	}
	return value
}

// FirstOr is First with a fallback for undefined values.
func FirstOr[T any](loader Loader, path string, fallback T) T {
	var value T
	if err := loader.AssignFirst(path, &value); err != nil {
		if errors.Is(err, ErrValueNotFound) {
			return fallback
		}
		panic(err)
	}
	return value
}
