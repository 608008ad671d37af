// Package memstore provides the in-memory implementation of the store.IStore
// interface. It is the engine used by the store server.
//
// The implementation is a thin layer over a concurrent hash map (xsync.MapOf),
// which makes all operations safe for concurrent use without a global lock.
// This matters when the server accepts multiple client connections: each
// connection is serviced by its own goroutine, and all of them dispatch into
// the same engine instance.
//
// Stored values are defensively copied on write, so the engine never aliases
// caller-owned buffers.
package memstore
