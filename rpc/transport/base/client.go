package base

import (
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/ValentinKolb/cstore/rpc/common"
	"github.com/ValentinKolb/cstore/rpc/transport"
)

var Logger = common.GetLogger("transport/rpc")

// -----------------------------------------------------------
// Interface Definitions for dependency injection
// -----------------------------------------------------------

// IClientConnector defines the interface for transport-specific connection operations
type IClientConnector interface {
	// Connect establishes a single connection to the given endpoint
	Connect(endpoint string) (net.Conn, error)

	// GetName returns the name of the transport type (e.g., "unix", "tcp")
	GetName() string

	// UpgradeConnection applies protocol-specific settings to an established connection
	UpgradeConnection(conn net.Conn, config common.ClientConfig) error
}

// -----------------------------------------------------------
// Helper Types
// -----------------------------------------------------------

// clientTransport implements the core client transport functionality
// independent of the specific transport medium (unix, tcp, etc.).
//
// The transport owns exactly one connection. A mutex serializes complete
// round trips: the next request is only written after the previous
// response (or error) has been produced. This makes the one-outstanding-
// request discipline of the protocol explicit in the API instead of
// relying on callers to behave.
type clientTransport struct {
	connector     IClientConnector
	config        common.ClientConfig
	conn          net.Conn
	mu            sync.Mutex // serializes round trips and guards conn
	nextRequestID uint64
}

// -----------------------------------------------------------
// Transport Factory Method (used for tcp, unix, etc.)
// -----------------------------------------------------------

// NewBaseClientTransport creates a new base client transport with the specified connector
func NewBaseClientTransport(connector IClientConnector) transport.IRPCClientTransport {
	return &clientTransport{
		connector: connector,
	}
}

// --------------------------------------------------------------------------
// Interface Methods (docu see transport.IRPCClientTransport)
// --------------------------------------------------------------------------

func (t *clientTransport) Connect(config common.ClientConfig) error {
	if config.Transport.Endpoint == "" {
		return fmt.Errorf("no endpoint provided")
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	// Store the config
	t.config = config

	// Establish the initial connection
	if err := t.reconnect(); err != nil {
		return err
	}

	Logger.Infof("Connected to %s using %s transport", config.Transport.Endpoint, t.connector.GetName())
	return nil
}

func (t *clientTransport) Send(req []byte) (resp []byte, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	// Restore the connection if a previous round trip failed
	if t.conn == nil {
		if err := t.reconnect(); err != nil {
			return nil, fmt.Errorf("connection is closed: %v", err)
		}
	}

	t.nextRequestID++
	requestID := t.nextRequestID

	// Set deadlines for the full round trip
	if t.config.TimeoutSecond > 0 {
		timeout := time.Duration(t.config.TimeoutSecond) * time.Second
		if err := t.conn.SetDeadline(time.Now().Add(timeout)); err != nil {
			t.dropConnection()
			return nil, fmt.Errorf("failed to set deadline: %v", err)
		}
	}

	// Write the request frame
	if err := writeFrame(t.conn, requestID, req); err != nil {
		t.dropConnection()
		return nil, fmt.Errorf("failed to send request: %v", err)
	}

	// Block until the paired response frame arrives
	respID, data, err := readFrame(t.conn, nil)
	if err != nil {
		t.dropConnection()
		return nil, fmt.Errorf("failed to read response: %v", err)
	}

	// A mismatched requestID means the pairing is broken; the connection
	// cannot be trusted for further round trips
	if respID != requestID {
		t.dropConnection()
		return nil, fmt.Errorf("response pairing broken: got requestID %d, expected %d", respID, requestID)
	}

	return data, nil
}

func (t *clientTransport) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.dropConnection()
	return nil
}

// --------------------------------------------------------------------------
// Helper Methods
// --------------------------------------------------------------------------

// dropConnection closes the current connection. The next Send will try to
// reconnect. Callers must hold t.mu.
func (t *clientTransport) dropConnection() {
	if t.conn != nil {
		t.conn.Close()
		t.conn = nil
	}
}

// reconnect establishes or restores the connection to the endpoint.
// Callers must hold t.mu.
func (t *clientTransport) reconnect() error {
	t.dropConnection()

	// Connect to the endpoint
	conn, err := t.connector.Connect(t.config.Transport.Endpoint)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %v", t.config.Transport.Endpoint, err)
	}

	// Upgrade the connection with protocol-specific settings
	if err := t.connector.UpgradeConnection(conn, t.config); err != nil {
		conn.Close()
		return fmt.Errorf("failed to upgrade connection to %s: %v", t.config.Transport.Endpoint, err)
	}

	t.conn = conn
	return nil
}
