package kv

import "github.com/patrickmn/go-cache"

// Memory is an in-memory store. Values never expire.
type Memory struct {
	c *cache.Cache
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{c: cache.New(cache.NoExpiration, 0)}
}

func (m *Memory) Get(key string) (string, bool) {
	v, ok := m.c.Get(key)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

func (m *Memory) Set(key, value string) error {
	m.c.Set(key, value, cache.NoExpiration)
	return nil
}

// Keys returns the number of keys in the store.
func (m *Memory) Keys() int { return m.c.ItemCount() }

func (m *Memory) Close() error { return nil }
