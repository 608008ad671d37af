package client

import (
	"fmt"

	"github.com/ValentinKolb/cstore/rpc/common"
	"github.com/ValentinKolb/cstore/rpc/serializer"
	"github.com/ValentinKolb/cstore/rpc/transport"
)

// NewRPCClient creates a new store client.
// The function takes a config, a transport and a serializer as parameters.
// The transport connection is opened at construction and reused across all
// calls; every client owns exactly one connection.
func NewRPCClient(
	config common.ClientConfig,
	transport transport.IRPCClientTransport,
	serializer serializer.IRPCSerializer,
) (*Client, error) {

	// Connect the transport
	if err := transport.Connect(config); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCommunication, err)
	}

	return &Client{
		config:     config,
		transport:  transport,
		serializer: serializer,
	}, nil
}

// Client is a blocking store client. Each method performs exactly one
// request/response round trip.
//
// Calls from multiple goroutines against the same Client are serialized by
// the underlying transport (one outstanding request at a time); for
// parallel round trips use a pool of independent Client instances instead
// of sharing one.
type Client struct {
	config     common.ClientConfig
	transport  transport.IRPCClientTransport
	serializer serializer.IRPCSerializer
}

// --------------------------------------------------------------------------
// Public API
// --------------------------------------------------------------------------

// Load returns the value stored for the given key.
// A missing key is reported as ErrKeyNotFound; any transport or protocol
// failure is reported as an error wrapping ErrCommunication.
func (c *Client) Load(key string) ([]byte, error) {
	resp, err := c.invoke(common.NewLoadRequest(key))
	if err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, fmt.Errorf("load %q: %w", key, ErrKeyNotFound)
	}
	return resp.Data, nil
}

// Store inserts or overwrites the value for the given key and reports
// the success flag from the response. A correctly functioning server
// always reports true, but callers must check the flag rather than
// assume it.
func (c *Client) Store(key string, data []byte) (bool, error) {
	resp, err := c.invoke(common.NewStoreRequest(key, data))
	if err != nil {
		return false, err
	}
	return resp.Success, nil
}

// Erase removes the entry for the given key. It reports true only if the
// key existed; erasing a missing key reports false without an error.
func (c *Client) Erase(key string) (bool, error) {
	resp, err := c.invoke(common.NewEraseRequest(key))
	if err != nil {
		return false, err
	}
	return resp.Success, nil
}

// Close closes the underlying transport connection.
func (c *Client) Close() error {
	return c.transport.Close()
}
