// Package base provides a foundation for transport layers in the config
// store, implementing core functionality for RPC communication independent
// of the specific network protocol (TCP, Unix sockets). It serves as a base
// layer that can be extended with protocol-specific connectors.
//
// The package focuses on:
//   - Protocol-agnostic client and server transport implementations
//   - A frame-based message protocol with requestID tracking
//   - Strict request/response pairing on both ends of a connection
//   - Buffer reuse on the server to reduce GC pressure
//
// Key Components:
//
//   - IClientConnector/IServerConnector: Interfaces for protocol-specific
//     operations that allow extending the base transport with different
//     network protocols.
//
//   - clientTransport: Core client implementation owning a single
//     connection. A mutex serializes complete round trips, so the next
//     request can only be written after the previous response (or error)
//     has been produced. The requestID echoed by the server is verified to
//     detect broken pairing, in which case the connection is dropped and
//     re-established on the next call.
//
//   - serverTransport: Core server implementation that accepts connections
//     and services each one in a dedicated goroutine. Requests on one
//     connection are handled strictly one at a time: a response is fully
//     written before the next request frame is read.
//
// Wire Format:
//
//	Each frame consists of a 12-byte header (8 bytes requestID, 4 bytes
//	payload length, both big endian) followed by the payload. Frames are
//	written with net.Buffers to combine header and payload into a single
//	write operation.
//
// Thread Safety:
//
//	All public methods are thread-safe. Concurrent Send calls on one client
//	transport are serialized internally; callers needing parallelism must
//	use independent client instances.
package base
