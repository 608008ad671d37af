package base

import (
	"fmt"
	"io"
	"net"
	"sync"
	"time"

	"github.com/ValentinKolb/cstore/rpc/common"
	"github.com/ValentinKolb/cstore/rpc/transport"
)

// -----------------------------------------------------------
// Interface Definitions for dependency injection
// -----------------------------------------------------------

// IServerConnector defines the interface for transport-specific server operations
type IServerConnector interface {
	// Listen creates a listener and returns it
	Listen(config common.ServerConfig) (net.Listener, error)

	// GetName returns the name of the transport type (e.g., "unix", "tcp")
	GetName() string

	// UpgradeConnection applies protocol-specific settings to an accepted connection
	UpgradeConnection(conn net.Conn, config common.ServerConfig) error
}

// -----------------------------------------------------------
// Helper Types
// -----------------------------------------------------------

// serverTransport implements the core server transport functionality
type serverTransport struct {
	connector  IServerConnector
	handler    transport.ServerHandleFunc
	config     common.ServerConfig
	listener   net.Listener
	bufferPool *sync.Pool
	bufferSize int
}

// -----------------------------------------------------------
// Transport Factory Method (used for tcp, unix, etc.)
// -----------------------------------------------------------

// NewBaseServerTransport creates a new base server transport with the specified connector
func NewBaseServerTransport(connector IServerConnector, bufferSize int) transport.IRPCServerTransport {
	return &serverTransport{
		connector:  connector,
		bufferSize: bufferSize,
		bufferPool: &sync.Pool{
			New: func() interface{} {
				return make([]byte, bufferSize)
			},
		},
	}
}

// --------------------------------------------------------------------------
// Interface Methods (docu see transport.IRPCServerTransport)
// --------------------------------------------------------------------------

func (t *serverTransport) RegisterHandler(handler transport.ServerHandleFunc) {
	t.handler = handler
}

func (t *serverTransport) Listen(config common.ServerConfig) error {
	t.config = config

	if t.handler == nil {
		return fmt.Errorf("no handler registered")
	}

	// Create listener using the connector
	listener, err := t.connector.Listen(config)
	if err != nil {
		return fmt.Errorf("failed to create listener: %v", err)
	}
	t.listener = listener

	Logger.Infof("Starting %s server on %s", t.connector.GetName(), config.Transport.Endpoint)

	// Accept connections
	for {
		conn, err := listener.Accept()
		if err != nil {
			// A closed listener ends the serve loop
			if ne, ok := err.(net.Error); ok && ne.Timeout() {
				continue
			}
			return fmt.Errorf("accept error: %v", err)
		}

		if err := t.connector.UpgradeConnection(conn, config); err != nil {
			Logger.Warnf("Failed to upgrade connection: %v", err)
		}

		// Handle the connection in a goroutine
		go t.handleConnection(conn)
	}
}

// --------------------------------------------------------------------------
// Helper Methods
// --------------------------------------------------------------------------

// handleConnection handles incoming requests for one connection.
//
// Requests on a connection are processed strictly one at a time: the
// response for request N is fully written before the frame for request N+1
// is read. This implements the Idle -> Processing -> Idle cycle the
// protocol requires.
func (t *serverTransport) handleConnection(conn net.Conn) {
	defer conn.Close()

	// Timeout in seconds
	timeout := time.Duration(t.config.TimeoutSecond) * time.Second

	for {
		// Idle: block until the next request frame arrives.
		// No read deadline here - an idle client is not an error.

		// Get a buffer from the pool
		buf := t.bufferPool.Get().([]byte)

		requestID, data, err := readFrame(conn, buf)

		// Case EOF: Connection closed by client
		if err == io.EOF {
			t.bufferPool.Put(buf)
			Logger.Debug("Connection closed by client")
			return
		}

		// Case error: log and close connection
		if err != nil {
			t.bufferPool.Put(buf)
			Logger.Errorf("Error reading request: %v", err)
			return
		}

		// Processing: dispatch and answer before the next read
		start := time.Now()
		resp := t.handler(data)
		t.bufferPool.Put(buf)
		Logger.Debugf("Processed request %d in %s", requestID, time.Since(start))

		if timeout > 0 {
			if err := conn.SetWriteDeadline(time.Now().Add(timeout)); err != nil {
				Logger.Errorf("Failed to set write deadline: %v", err)
				return
			}
		}

		// Write the response with the same requestID
		if err := writeFrame(conn, requestID, resp); err != nil {
			Logger.Errorf("Failed to write response: %v", err)
			return
		}
	}
}
