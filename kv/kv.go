// Package kv provides the key-value stores the finance engine persists into.
//
// All stores implement finance.Store. They protect their own state with a
// mutex, but two processes sharing the same file or database simply overwrite
// each other: the last write wins.
package kv

import (
	"path/filepath"
	"strings"
)

// Store is a finance.Store that can be released.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Close() error
}

// Open opens the store at path. Files ending with .db, .sqlite or .sqlite3
// are SQLite databases, anything else is a JSON file.
func Open(path string) (Store, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return OpenSQLite(path)
	default:
		return OpenFile(path)
	}
}
