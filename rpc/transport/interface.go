package transport

import (
	"github.com/ValentinKolb/cstore/rpc/common"
)

// --------------------------------------------------------------------------
// Server Transport
// --------------------------------------------------------------------------

// ServerHandleFunc is a function type that handles incoming requests.
// This function is called by a server transport layer when a request is
// received. It takes the raw request bytes and returns the raw response
// bytes. The transport guarantees that the response is written back to the
// requesting endpoint before the next request from that endpoint is read
// (strict request/response pairing).
type ServerHandleFunc func(req []byte) (resp []byte)

// IRPCServerTransport is the interface for the RPC server transport layer
type IRPCServerTransport interface {
	// RegisterHandler registers a handler for the transport layer
	// This handler is called for every received request
	RegisterHandler(handler ServerHandleFunc)
	// Listen binds the transport to the configured endpoint and serves
	// incoming requests until a fatal listener error occurs
	Listen(config common.ServerConfig) error
}

// --------------------------------------------------------------------------
// Client Transport
// --------------------------------------------------------------------------

// IRPCClientTransport is the interface for the RPC client transport.
//
// A client transport owns exactly one connection to the server. Send
// performs one blocking round trip; the transport serializes concurrent
// callers internally so that at most one request is in flight at a time.
type IRPCClientTransport interface {
	// Connect initializes the transport with the given configuration
	Connect(config common.ClientConfig) error
	// Send sends a request to the server and blocks until the paired
	// response arrives or the round trip fails
	Send(req []byte) (resp []byte, err error)
	// Close closes the transport connection
	Close() error
}
