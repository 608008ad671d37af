// Package tcp provides the TCP implementation of the RPC transport layer.
// It plugs protocol-specific connectors into the base transport and exposes
// tuning options for latency-sensitive deployments (TCP_NODELAY, socket
// buffer sizes, keep-alive and linger settings).
package tcp
