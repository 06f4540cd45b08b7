package finance

import (
	"encoding/json"
	"fmt"
)

// Store is the key-value capability the engine persists into.
//
// Writes are last-write-wins: nothing coordinates two processes writing the
// same key.
type Store interface {
	// Get returns the value stored under key, and whether it exists.
	Get(key string) (string, bool)
	// Set stores value under key.
	Set(key, value string) error
}

// Keys used in the Store.
const (
	KeyRows      = "rows"
	KeySnapshots = "snapshots"
	KeyFXRates   = "fxRates"
)

// decodeKey reads the JSON value under key into v.
//
// It returns false if the key does not exist or holds invalid JSON; a corrupt
// value is discarded silently.
func decodeKey(store Store, key string, v any) bool {
	content, ok := store.Get(key)
	if !ok {
		return false
	}
	if err := json.Unmarshal([]byte(content), v); err != nil {
		logger.WithField("key", key).Debugf("discarding corrupt value: %v", err)
		return false
	}
	return true
}

// encodeKey writes v as JSON under key.
func encodeKey(store Store, key string, v any) error {
	content, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("cannot encode %q: %w", key, err)
	}
	if err := store.Set(key, string(content)); err != nil {
		return fmt.Errorf("cannot write %q: %w", key, err)
	}
	return nil
}
