package tcp

import (
	"fmt"
	"net"
	"time"

	"github.com/ValentinKolb/cstore/rpc/common"
	"github.com/ValentinKolb/cstore/rpc/transport"
	"github.com/ValentinKolb/cstore/rpc/transport/base"
)

const (
	defaultBufferSize = 512 * 1024 // 512 KB
)

// serverConnector implements the IServerConnector interface for TCP sockets
type serverConnector struct{}

// --------------------------------------------------------------------------
// Interface Methods (docu see base.IServerConnector)
// --------------------------------------------------------------------------

func (c *serverConnector) GetName() string {
	return "tcp"
}

func (c *serverConnector) Listen(config common.ServerConfig) (net.Listener, error) {
	// Create TCP socket listener
	listener, err := net.Listen("tcp", config.Transport.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to create TCP socket: %v", err)
	}

	return listener, nil
}

// UpgradeConnection applies performance optimizations to a TCP connection
// using configuration values from TCPConf and SocketConf
func (c *serverConnector) UpgradeConnection(conn net.Conn, config common.ServerConfig) error {
	tcpConn, ok := conn.(*net.TCPConn)
	if !ok {
		return nil // Not a TCP connection, nothing to upgrade
	}

	return upgradeTCPConn(tcpConn, config.Transport.SocketConf, config.Transport.TCPConf)
}

// --------------------------------------------------------------------------
// Shared TCP tuning
// --------------------------------------------------------------------------

// upgradeTCPConn applies the socket and TCP tuning options to a connection
func upgradeTCPConn(tcpConn *net.TCPConn, socketConf common.SocketConf, tcpConf common.TCPConf) error {
	// Disable Nagle's algorithm (TCPNoDelay) if configured
	if err := tcpConn.SetNoDelay(tcpConf.TCPNoDelay); err != nil {
		return err
	}

	// Set socket write buffer size if configured
	if socketConf.WriteBufferSize > 0 {
		if err := tcpConn.SetWriteBuffer(socketConf.WriteBufferSize); err != nil {
			return err
		}
	}

	// Set socket read buffer size if configured
	if socketConf.ReadBufferSize > 0 {
		if err := tcpConn.SetReadBuffer(socketConf.ReadBufferSize); err != nil {
			return err
		}
	}

	// Enable TCP keep-alive if configured
	if tcpConf.TCPKeepAliveSec > 0 {
		if err := tcpConn.SetKeepAlive(true); err != nil {
			return err
		}

		// Set keep-alive period
		keepAlivePeriod := time.Duration(tcpConf.TCPKeepAliveSec) * time.Second
		if err := tcpConn.SetKeepAlivePeriod(keepAlivePeriod); err != nil {
			return err
		}
	}

	// Set TCP linger option if configured
	if tcpConf.TCPLingerSec >= 0 {
		if err := tcpConn.SetLinger(tcpConf.TCPLingerSec); err != nil {
			return err
		}
	}

	return nil
}

// --------------------------------------------------------------------------
// Server Transport Factory Method
// --------------------------------------------------------------------------

// NewTCPDefaultServerTransport creates a new TCP server transport with default buffer size
func NewTCPDefaultServerTransport() transport.IRPCServerTransport {
	return NewTCPServerTransport(defaultBufferSize)
}

// NewTCPServerTransport creates a new TCP server transport with specified buffer size
func NewTCPServerTransport(bufferSize int) transport.IRPCServerTransport {
	return base.NewBaseServerTransport(&serverConnector{}, bufferSize)
}
