package finance

import (
	"errors"
	"fmt"
	"strings"
)

// ErrAmbiguousID is returned when an ID prefix matches more than one item.
var ErrAmbiguousID = errors.New("ambiguous id")

// resolve returns the index of the single item whose id is, or starts with, prefix.
// notFound is returned (wrapped) when nothing matches.
func resolve[T any](items []T, id func(T) string, prefix string, notFound error) (int, error) {
	if prefix == "" {
		return -1, fmt.Errorf("empty id: %w", notFound)
	}
	found := -1
	for i, item := range items {
		v := id(item)
		if v == prefix {
			return i, nil
		}
		if strings.HasPrefix(v, prefix) {
			if found >= 0 {
				return -1, fmt.Errorf("%q: %w", prefix, ErrAmbiguousID)
			}
			found = i
		}
	}
	if found < 0 {
		return -1, fmt.Errorf("%q: %w", prefix, notFound)
	}
	return found, nil
}
