package common

import (
	"fmt"
	"strconv"
	"strings"
)

// --------------------------------------------------------------------------
// Shared socket configuration
// --------------------------------------------------------------------------

// SocketConf holds socket buffer settings shared by client and server
type SocketConf struct {
	// Write buffer size in bytes (0 = OS default)
	WriteBufferSize int
	// Read buffer size in bytes (0 = OS default)
	ReadBufferSize int
}

// TCPConf holds TCP specific tuning options (ignored by other transports)
type TCPConf struct {
	// Disable Nagle's algorithm
	TCPNoDelay bool
	// Keep-alive interval in seconds (0 = disabled)
	TCPKeepAliveSec int
	// Linger time in seconds (negative = OS default)
	TCPLingerSec int
}

// --------------------------------------------------------------------------
// RPC server configuration struct
// --------------------------------------------------------------------------

// ServerTransportConfig holds all transport settings for the server
type ServerTransportConfig struct {
	// Endpoint is the address the server binds to
	// (e.g. "0.0.0.0:8080" for tcp/http, "/tmp/cstore.sock" for unix)
	Endpoint string

	SocketConf
	TCPConf
}

// ServerConfig holds all configuration parameters for the store server.
type ServerConfig struct {
	// Transport settings
	Transport ServerTransportConfig

	// Timeout in seconds for single socket reads/writes (0 = no timeout)
	TimeoutSecond int64

	// Optional address for the Prometheus metrics endpoint ("" = disabled)
	MetricsEndpoint string

	// Logging configuration
	LogLevel string
}

// String returns a formatted string representation of the configuration
func (c *ServerConfig) String() string {
	var sb strings.Builder

	// Create helper functions for consistent formatting
	addSection := func(title string) {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("%s\n", strings.ToUpper(title)))
	}

	addField := func(name, value string) {
		sb.WriteString(fmt.Sprintf("  %-22s: %s\n", name, value))
	}

	// RPC settings
	addSection("Store Server")
	addField("Endpoint", c.Transport.Endpoint)
	addField("Timeout", fmt.Sprintf("%d sec", c.TimeoutSecond))

	// Logging configuration
	addSection("Logging")
	addField("Log Level", c.LogLevel)

	// Metrics
	if c.MetricsEndpoint != "" {
		addSection("Metrics")
		addField("Endpoint", c.MetricsEndpoint)
	}

	return sb.String()
}

// --------------------------------------------------------------------------
// RPC client configuration struct
// --------------------------------------------------------------------------

// ClientTransportConfig holds all transport settings for the client
type ClientTransportConfig struct {
	// Endpoint is the address of the store server
	Endpoint string

	SocketConf
	TCPConf
}

// ClientConfig holds all configuration parameters for the store client.
// Each client owns exactly one connection to the server.
type ClientConfig struct {
	// Transport settings
	Transport ClientTransportConfig

	// Timeout in seconds for a full round trip (0 = block forever)
	TimeoutSecond int
}

// String returns a formatted string representation of the client configuration
func (c *ClientConfig) String() string {
	var sb strings.Builder

	// Create helper functions for consistent formatting
	addSection := func(title string) {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("%s\n", strings.ToUpper(title)))
	}

	addField := func(name, value string) {
		sb.WriteString(fmt.Sprintf("  %-22s: %s\n", name, value))
	}

	// General Client Settings
	addSection("Client Configuration")
	addField("Endpoint", c.Transport.Endpoint)
	addField("Timeout", fmt.Sprintf("%d sec", c.TimeoutSecond))

	// Socket settings
	addSection("Socket")
	addField("Write Buffer", strconv.Itoa(c.Transport.WriteBufferSize))
	addField("Read Buffer", strconv.Itoa(c.Transport.ReadBufferSize))
	addField("TCP NoDelay", fmt.Sprintf("%t", c.Transport.TCPNoDelay))

	return sb.String()
}
