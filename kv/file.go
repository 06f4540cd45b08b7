package kv

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
)

// File is a store persisted as a single JSON object in a file, key to string
// value. The whole file is rewritten on each Set.
type File struct {
	mu     sync.RWMutex
	path   string
	values map[string]string
}

// OpenFile opens the store persisted in path.
//
// A missing file is an empty store, it is created on the first Set. A file
// that is not a valid JSON object is discarded and replaced on the first Set.
func OpenFile(path string) (*File, error) {
	f := &File{path: path, values: make(map[string]string)}
	content, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return f, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read store %q: %w", path, err)
	}
	if len(content) == 0 {
		return f, nil
	}
	if err := json.Unmarshal(content, &f.values); err != nil {
		logrus.WithField("path", path).Warnf("store is corrupt, starting empty: %v", err)
		f.values = make(map[string]string)
	}
	return f, nil
}

func (f *File) Get(key string) (string, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	v, ok := f.values[key]
	return v, ok
}

func (f *File) Set(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	old, existed := f.values[key]
	f.values[key] = value
	if err := f.write(); err != nil {
		if existed {
			f.values[key] = old
		} else {
			delete(f.values, key)
		}
		return err
	}
	return nil
}

// write replaces the file content atomically.
func (f *File) write() error {
	content, err := json.MarshalIndent(f.values, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot encode store: %w", err)
	}
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("cannot create store dir %q: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".*")
	if err != nil {
		return fmt.Errorf("cannot write store %q: %w", f.path, err)
	}
	_, err = tmp.Write(append(content, '\n'))
	if cerr := tmp.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("cannot write store %q: %w", f.path, err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("cannot write store %q: %w", f.path, err)
	}
	return nil
}

func (f *File) Close() error { return nil }
