package util

import (
	"fmt"
	"strings"

	"github.com/ValentinKolb/cstore/rpc/common"
	"github.com/ValentinKolb/cstore/rpc/serializer"
	"github.com/ValentinKolb/cstore/rpc/transport"
	"github.com/ValentinKolb/cstore/rpc/transport/http"
	"github.com/ValentinKolb/cstore/rpc/transport/tcp"
	"github.com/ValentinKolb/cstore/rpc/transport/unix"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	// Wrap is the number of characters to Wrap the help text at
	Wrap int = 50
)

// WrapString wraps a string at Wrap characters
func WrapString(text string) string {
	var wrappedLines []string
	var currentLine strings.Builder
	lineWidth := 0

	for _, word := range strings.Fields(text) {
		wordWidth := len(word)

		// Check if we need to wrap
		if lineWidth > 0 && lineWidth+1+wordWidth > Wrap {
			wrappedLines = append(wrappedLines, currentLine.String())
			currentLine.Reset()
			lineWidth = 0
		}

		// Add space before word (if not first word on line)
		if lineWidth > 0 {
			currentLine.WriteString(" ")
			lineWidth++
		}

		// Add the word
		currentLine.WriteString(word)
		lineWidth += wordWidth
	}

	// Add any remaining text
	if currentLine.Len() > 0 {
		wrappedLines = append(wrappedLines, currentLine.String())
	}

	return strings.Join(wrappedLines, "\n")
}

// SetupRPCClientFlags adds common RPC connection flags to a command
func SetupRPCClientFlags(cmd *cobra.Command) {
	key := "timeout"
	cmd.PersistentFlags().Int(key, 10, WrapString("The timeout in seconds for a full request/response round trip"))

	key = "endpoint"
	cmd.PersistentFlags().String(key, "http://localhost:8080", WrapString("The address of the cstore server (e.g. http://localhost:8080, localhost:8080 for tcp, /tmp/cstore.sock for unix)"))

	key = "write-buffer"
	cmd.PersistentFlags().Int(key, 512, WrapString("The size of the write buffer for the transport (in KB, ignored for http)"))

	key = "read-buffer"
	cmd.PersistentFlags().Int(key, 512, WrapString("The size of the read buffer for the transport (in KB, ignored for http)"))

	key = "tcp-nodelay"
	cmd.PersistentFlags().Bool(key, true, WrapString("Whether to enable TCP_NODELAY for the transport (tcp only)"))

	key = "tcp-keepalive"
	cmd.PersistentFlags().Int(key, 0, WrapString("The keepalive interval for the transport (in seconds, tcp only)"))

	key = "tcp-linger"
	cmd.PersistentFlags().Int(key, 0, WrapString("The linger time for the transport (in seconds, tcp only)"))
}

// InitClientConfig initializes configuration from environment variables
func InitClientConfig() {
	// load env files
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	// initialize viper
	viper.SetEnvPrefix("cstore")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match
}

// GetClientConfig reads client configuration from viper
func GetClientConfig() *common.ClientConfig {
	conf := &common.ClientConfig{
		TimeoutSecond: viper.GetInt("timeout"),
		Transport: common.ClientTransportConfig{
			Endpoint: viper.GetString("endpoint"),
			SocketConf: common.SocketConf{
				WriteBufferSize: viper.GetInt("write-buffer") * 1024,
				ReadBufferSize:  viper.GetInt("read-buffer") * 1024,
			},
			TCPConf: common.TCPConf{
				TCPKeepAliveSec: viper.GetInt("tcp-keepalive"),
				TCPLingerSec:    viper.GetInt("tcp-linger"),
				TCPNoDelay:      viper.GetBool("tcp-nodelay"),
			},
		},
	}

	return conf
}

// GetSerializer creates a serializer based on configuration
func GetSerializer() (serializer.IRPCSerializer, error) {
	switch viper.GetString("serializer") {
	case "json":
		return serializer.NewJSONSerializer(), nil
	case "gob":
		return serializer.NewGOBSerializer(), nil
	case "binary":
		return serializer.NewBinarySerializer(), nil
	default:
		return nil, fmt.Errorf("invalid serializer %s", viper.GetString("serializer"))
	}
}

// GetTransport creates transport based on configuration
func GetTransport() (transport.IRPCClientTransport, error) {
	switch viper.GetString("transport") {
	case "http":
		return http.NewHttpClientTransport(), nil
	case "tcp":
		return tcp.NewTCPClientTransport(), nil
	case "unix":
		return unix.NewUnixClientTransport(), nil
	default:
		return nil, fmt.Errorf("invalid transport %s", viper.GetString("transport"))
	}
}

// BindCommandFlags binds a command's flags to viper
func BindCommandFlags(cmd *cobra.Command) error {
	return viper.BindPFlags(cmd.Flags())
}
