package kv

import (
	"errors"
	"fmt"

	"github.com/ValentinKolb/cstore/rpc/client"
	"github.com/spf13/cobra"
)

var (
	storeCmd = &cobra.Command{
		Use:   "store [key] [value]",
		Short: "Stores the value for a key",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			value := args[1]
			if ok, err := rpcClient.Store(key, []byte(value)); err != nil {
				return err
			} else if !ok {
				return fmt.Errorf("server rejected store for key %s", key)
			}
			fmt.Println("stored successfully")
			return nil
		},
	}
	loadCmd = &cobra.Command{
		Use:   "load [key]",
		Short: "Loads the value for a key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			resp, err := rpcClient.Load(key)
			if errors.Is(err, client.ErrKeyNotFound) {
				fmt.Printf("key=%s, found=false\n", key)
				return nil
			} else if err != nil {
				return err
			}
			fmt.Printf("key=%s, found=true, value=%s\n", key, resp)
			return nil
		},
	}
	eraseCmd = &cobra.Command{
		Use:   "erase [key]",
		Short: "Erases a key value pair",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			if existed, err := rpcClient.Erase(key); err != nil {
				return err
			} else {
				fmt.Printf("key=%s, existed=%t\n", key, existed)
			}
			return nil
		},
	}
)
