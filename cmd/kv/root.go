package kv

import (
	"github.com/ValentinKolb/cstore/cmd/util"
	"github.com/ValentinKolb/cstore/rpc/client"
	"github.com/spf13/cobra"
)

var (
	rpcClient *client.Client

	// KeyValueCommands represents the KV command group
	KeyValueCommands = &cobra.Command{
		Use:               "kv",
		Short:             "Perform key-value store operations",
		PersistentPreRunE: setupKVClient,
	}
)

func init() {
	// Initialize viper
	cobra.OnInitialize(util.InitClientConfig)

	// Add common RPC flags to the KV command
	util.SetupRPCClientFlags(KeyValueCommands)

	// Add subcommands
	KeyValueCommands.AddCommand(loadCmd)
	KeyValueCommands.AddCommand(storeCmd)
	KeyValueCommands.AddCommand(eraseCmd)
	KeyValueCommands.AddCommand(perfTestCmd)
}

// setupKVClient initializes the RPC store client
func setupKVClient(cmd *cobra.Command, _ []string) error {
	// Bind command flags to viper
	if err := util.BindCommandFlags(cmd); err != nil {
		return err
	}

	// Get client configuration components
	config := util.GetClientConfig()

	// Get serializer and transport
	s, err := util.GetSerializer()
	if err != nil {
		return err
	}

	t, err := util.GetTransport()
	if err != nil {
		return err
	}

	// Create the store client
	rpcClient, err = client.NewRPCClient(
		*config,
		t,
		s,
	)

	return err
}
