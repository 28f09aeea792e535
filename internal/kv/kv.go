// Package kv provides the durable string-keyed backing the planner keeps its
// collections in. Values are whole serialized collections; callers read a
// value, rewrite it in memory and put the whole thing back.
package kv

// Store is an opaque durable key-value store.
type Store interface {
	// Get returns the value for key. ok is false when the key is absent.
	Get(key string) (value string, ok bool, err error)
	// Set writes value under key, replacing any previous value.
	Set(key, value string) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(key string) error
	Close() error
}
