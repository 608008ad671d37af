// Package cmd implements the command-line interface for the cstore
// key-value store. It provides a hierarchical command structure with
// operations for running the server and interacting with it as a client.
//
// The package is organized into several subpackages:
//
//   - kv: Commands for key-value store operations (load, store, erase, perf)
//   - serve: Commands for starting and configuring the cstore server
//   - util: Shared utilities for command-line processing and configuration (internal use)
//
// See cstore -help for a list of all commands.
package cmd
