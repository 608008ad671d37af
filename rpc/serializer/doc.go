// Package serializer provides message serialization capabilities for the
// config store RPC system. It defines a common interface and multiple
// implementations for serializing and deserializing requests and responses
// between client and server components.
//
// The package focuses on:
//   - Providing a consistent interface for different serialization formats
//   - Offering multiple implementations with different performance characteristics
//   - Supporting efficient encoding of the system's request/response structure
//   - Minimizing memory allocations and processing overhead
//
// Key Components:
//
//   - IRPCSerializer: Core interface that all serializer implementations must
//     satisfy. Requests and responses have separate codec methods since the
//     protocol is direction-sensitive (clients encode requests and decode
//     responses, servers do the opposite).
//
//   - binarySerializerImpl: Custom binary format implementation optimized for
//     speed and space efficiency. Uses a flag-based approach to encode only
//     present fields, resulting in compact serialized data with minimal overhead.
//
//   - gobSerializerImpl: Implementation using Go's built-in gob encoding, offering
//     good compatibility with Go's type system but with larger serialized sizes.
//
//   - jsonSerializerImpl: Implementation using JSON encoding, useful for debugging
//     or interoperability with other systems, but with lower performance.
//
// Thread Safety:
//
//	All serializer implementations are stateless and safe for concurrent use
//	across multiple goroutines without additional synchronization.
package serializer
