package hashmap

import (
	"errors"
	"fmt"
)

// ErrKeyNotFound is returned by Fetch when the requested key is absent.
// Get, Update, and Remove treat absence as a silent signal instead (a bool,
// or a no-op) and never return this error.
var ErrKeyNotFound = errors.New("hashmap: key not found")

func fetchError[K any](key K) error {
	return fmt.Errorf("%v: %w", key, ErrKeyNotFound)
}
