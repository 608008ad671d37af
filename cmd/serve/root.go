package serve

import (
	"fmt"
	"strings"

	cmdUtil "github.com/ValentinKolb/cstore/cmd/util"
	"github.com/ValentinKolb/cstore/rpc/common"
	"github.com/ValentinKolb/cstore/rpc/serializer"
	"github.com/ValentinKolb/cstore/rpc/server"
	"github.com/ValentinKolb/cstore/rpc/transport"
	"github.com/ValentinKolb/cstore/rpc/transport/http"
	"github.com/ValentinKolb/cstore/rpc/transport/tcp"
	"github.com/ValentinKolb/cstore/rpc/transport/unix"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	serveCmdConfig = &common.ServerConfig{}
	ServeCmd       = &cobra.Command{
		Use:     "serve",
		Short:   "Start the cstore server",
		Long:    `Start the cstore server with the specified configuration. The configuration can be set via command line flags or environment variables. The format of the environment variables is CSTORE_<flag> (e.g. CSTORE_TIMEOUT=15)`,
		PreRunE: processConfig,
		RunE:    run,
	}
)

func init() {
	// initialize viper
	cobra.OnInitialize(initConfig)

	// add flags
	key := "endpoint"
	ServeCmd.PersistentFlags().String(key, "0.0.0.0:8080", cmdUtil.WrapString("The address on which the server will listen (e.g. 0.0.0.0:8080, /tmp/cstore.sock, ...)"))

	key = "timeout"
	ServeCmd.PersistentFlags().Int64(key, 5, cmdUtil.WrapString("Timeout in seconds for single socket reads and writes (0 = no timeout)"))

	key = "log-level"
	ServeCmd.PersistentFlags().String(key, "info", cmdUtil.WrapString("LogLevel is the level at which logs will be output (debug, info, warn, error)"))

	key = "metrics-endpoint"
	ServeCmd.PersistentFlags().String(key, "", cmdUtil.WrapString("Optional address for the Prometheus metrics endpoint (e.g. 0.0.0.0:9090, empty = disabled)"))

	key = "write-buffer"
	ServeCmd.PersistentFlags().Int(key, 512, cmdUtil.WrapString("The size of the write buffer for the transport (in KB, ignored for http)"))

	key = "read-buffer"
	ServeCmd.PersistentFlags().Int(key, 512, cmdUtil.WrapString("The size of the read buffer for the transport (in KB, ignored for http)"))

	key = "tcp-nodelay"
	ServeCmd.PersistentFlags().Bool(key, true, cmdUtil.WrapString("Whether to enable TCP_NODELAY for the transport (tcp only)"))

	key = "tcp-keepalive"
	ServeCmd.PersistentFlags().Int(key, 0, cmdUtil.WrapString("The keepalive interval for the transport (in seconds, tcp only)"))

	key = "tcp-linger"
	ServeCmd.PersistentFlags().Int(key, 0, cmdUtil.WrapString("The linger time for the transport (in seconds, tcp only)"))
}

// processConfig reads the configuration from the command line flags and environment variables and converts them to the server configuration
func processConfig(cmd *cobra.Command, _ []string) error {
	// bind the flags to viper
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	// read the configuration from the command line flags and environment variables
	serveCmdConfig.TimeoutSecond = viper.GetInt64("timeout")
	serveCmdConfig.LogLevel = viper.GetString("log-level")
	serveCmdConfig.MetricsEndpoint = viper.GetString("metrics-endpoint")
	serveCmdConfig.Transport = common.ServerTransportConfig{
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
	}

	return nil
}

// run starts the cstore server
func run(_ *cobra.Command, _ []string) error {

	// parse the serializer
	var s serializer.IRPCSerializer
	switch viper.GetString("serializer") {
	case "json":
		s = serializer.NewJSONSerializer()
	case "gob":
		s = serializer.NewGOBSerializer()
	case "binary":
		s = serializer.NewBinarySerializer()
	default:
		return fmt.Errorf("invalid serializer %s", viper.GetString("serializer"))
	}

	// Parse the transport
	var t transport.IRPCServerTransport
	switch viper.GetString("transport") {
	case "http":
		t = http.NewHttpServerTransport()
	case "tcp":
		t = tcp.NewTCPDefaultServerTransport()
	case "unix":
		t = unix.NewUnixDefaultServerTransport()
	default:
		return fmt.Errorf("invalid transport %s", viper.GetString("transport"))
	}

	serv := server.NewRPCServer(
		*serveCmdConfig,
		t,
		s,
	)

	return serv.Serve()
}

// initConfig reads in serveCmdConfig file and ENV variables if set.
func initConfig() {
	// load env files
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	// initialize viper
	viper.SetEnvPrefix("cstore")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match
}
