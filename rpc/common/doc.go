// Package common provides the core data structures shared by all RPC
// components of the config store: the wire protocol (Request/Response),
// configuration structures for client and server, and logging utilities.
//
// The package focuses on:
//   - The Request/Response protocol with its three operations (load, store, erase)
//   - Factory functions for constructing well-formed protocol messages
//   - Configuration structures with human-readable String() representations
//   - Named component loggers with a shared, configurable backend
//
// Protocol Semantics:
//
// Every Request is answered by exactly one Response. A Response carries the
// domain outcome in its Success flag: load and erase report Success=false
// when the key is not present, which is a regular outcome and not an error.
// The Err field is reserved for protocol-level failures (undecodable
// requests, unsupported request types) and is never used for "not found".
package common
