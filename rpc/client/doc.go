// Package client implements the RPC client for the config store. It is the
// sole translator from protocol responses and transport outcomes into
// caller-facing results.
//
// The package focuses on:
//   - Blocking load/store/erase calls, each one request/response round trip
//   - Error translation at the API edge: the not-found outcome becomes
//     ErrKeyNotFound, everything that prevented the round trip from
//     completing wraps ErrCommunication
//   - Integration with the transport and serialization layers
//
// Usage Example:
//
//	// Configure the client
//	config := common.ClientConfig{
//		Transport: common.ClientTransportConfig{
//			Endpoint: "localhost:8080",
//		},
//		TimeoutSecond: 5,
//	}
//
//	// Create the client
//	c, err := client.NewRPCClient(config, tcp.NewTCPClientTransport(), serializer.NewBinarySerializer())
//	if err != nil {
//		// handle connection failure
//	}
//	defer c.Close()
//
//	// Use the store
//	ok, err := c.Store("mykey", []byte("myvalue"))
//	value, err := c.Load("mykey")
//	if errors.Is(err, client.ErrKeyNotFound) {
//		// domain outcome: the key is not in the store
//	}
//
// Concurrency:
//
//	A Client performs at most one round trip at a time; concurrent calls
//	are serialized by the transport. Applications needing parallel requests
//	should create multiple independent clients (each with its own
//	connection) rather than sharing one.
package client
