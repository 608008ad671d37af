package cmd

import (
	"fmt"
	"os"

	"github.com/ValentinKolb/cstore/cmd/kv"
	"github.com/ValentinKolb/cstore/cmd/serve"
	"github.com/ValentinKolb/cstore/cmd/util"
	"github.com/spf13/cobra"
)

const (
	Version = "1.0.0"
)

var (

	// RootCmd represents the base command when called without any subcommands
	RootCmd = &cobra.Command{
		Use:   "cstore",
		Short: "persistent key-value config store",
		Long: fmt.Sprintf(`cstore (v%s)

A small key-value store served over a synchronous request/response
protocol. Clients load, store and erase opaque byte values by key
over tcp, unix or http transports.`, Version),
	}
	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of cstore",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("cstore v%s\n", Version)
		},
	}
)

func init() {
	// Add Commands
	RootCmd.AddCommand(serve.ServeCmd)
	RootCmd.AddCommand(kv.KeyValueCommands)
	RootCmd.AddCommand(versionCmd)

	// Add Flags
	key := "serializer"
	RootCmd.PersistentFlags().String(key, "json", util.WrapString("serializer to use (json, gob, binary)"))
	key = "transport"
	RootCmd.PersistentFlags().String(key, "http", util.WrapString("transport to use (http, tcp, unix)"))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
