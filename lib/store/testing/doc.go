// Package testing provides a reusable test suite for implementations of the
// store.IStore interface. Any engine (in-memory or remote) can be validated
// against the store contract by calling RunStoreTests with a factory for
// fresh, independent instances.
package testing
