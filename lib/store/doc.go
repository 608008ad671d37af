// Package store defines the engine interface of the config store: a mapping
// from opaque string keys to opaque binary values with three operations
// (Load, Store, Erase) and unified error handling.
//
// The package focuses on:
//   - A unified interface (IStore) for key-value operations across backends
//   - An explicit found/not-found result at the engine boundary, so that
//     "key not found" is never threaded through the system as an error
//
// Key Components:
//
//   - IStore Interface: The core abstraction defining the three store
//     operations. All implementations share this common interface, allowing
//     applications to switch between backends without code changes.
//
//   - Error System: A structured error reporting mechanism using typed error
//     codes and descriptive messages, reserved for genuine faults (invalid
//     keys, internal errors) rather than domain outcomes.
//
// Implementations:
//
//	The in-memory store (memstore) is the engine used by the store server:
//	a concurrent in-memory mapping with no durable backing. Store instances
//	are explicitly owned; multiple independent instances can coexist in one
//	process without cross-contamination.
//	Available in the "github.com/ValentinKolb/cstore/lib/store/memstore" package.
//
//	Remote access to an engine goes through the RPC client
//	("github.com/ValentinKolb/cstore/rpc/client"), which exposes the same
//	three operations but translates the not-found outcome into an error at
//	its public API edge instead of implementing this interface directly.
package store
