// Package unix provides the Unix domain socket implementation of the RPC
// transport layer. It is the preferred transport when client and server run
// on the same host, avoiding the TCP stack entirely. A stale socket file at
// the configured path is removed before binding.
package unix
