package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Store is a key/value configuration source.
type Store interface {
	// Lookup returns the value stored under key, if any.
	Lookup(key string) (any, bool)
	// SetDefault returns the value stored under key. If there is none, it
	// stores value (when the store is writable) and returns it.
	SetDefault(key string, value any) any
}

// MapStore is an in-memory Store. It is not safe for concurrent writes;
// populate it during initialization.
type MapStore map[string]any

// Lookup implements [Store].
func (m MapStore) Lookup(key string) (any, bool) {
	v, ok := m[key]
	return v, ok
}

// SetDefault implements [Store].
func (m MapStore) SetDefault(key string, value any) any {
	if v, ok := m[key]; ok {
		return v
	}
	m[key] = value
	return value
}

// LoadFile reads a YAML mapping of configuration keys into a MapStore:
//
//	BCRYPT_LOG_ROUNDS: 12
//	BCRYPT_HASH_PREFIX: 2b
//	BCRYPT_HANDLE_LONG_PASSWORDS: false
//
// A missing file yields an error satisfying errors.Is(err, os.ErrNotExist).
func LoadFile(path string) (MapStore, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config may live anywhere
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	store := MapStore{}
	if err = yaml.Unmarshal(data, &store); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config file at %s: %w", path, err)
	}
	return store, nil
}

// EnvStore reads values from the process environment. It is read-only:
// SetDefault returns the default without exporting it.
type EnvStore struct {
	lookup func(string) (string, bool)
}

// NewEnvStore returns an EnvStore backed by [os.LookupEnv].
func NewEnvStore() EnvStore {
	return EnvStore{lookup: os.LookupEnv}
}

// Lookup implements [Store]. Empty variables count as unset.
func (e EnvStore) Lookup(key string) (any, bool) {
	if e.lookup == nil {
		return nil, false
	}
	v, ok := e.lookup(key)
	if !ok || v == "" {
		return nil, false
	}
	return v, true
}

// SetDefault implements [Store].
func (e EnvStore) SetDefault(key string, value any) any {
	if v, ok := e.Lookup(key); ok {
		return v
	}
	return value
}

// Chain layers stores by precedence: the first store holding a key wins.
// Defaults are written to the last store.
type Chain []Store

// Lookup implements [Store].
func (c Chain) Lookup(key string) (any, bool) {
	for _, s := range c {
		if v, ok := s.Lookup(key); ok {
			return v, true
		}
	}
	return nil, false
}

// SetDefault implements [Store].
func (c Chain) SetDefault(key string, value any) any {
	if v, ok := c.Lookup(key); ok {
		return v
	}
	if len(c) == 0 {
		return value
	}
	return c[len(c)-1].SetDefault(key, value)
}
