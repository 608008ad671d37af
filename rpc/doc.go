// Package rpc provides the communication layer of the config store: a
// synchronous request/response protocol between store clients and the
// store server.
//
// The package is organized into several subpackages:
//
//   - common: Core data structures and utilities used across the RPC system,
//     including the Request/Response protocol, configuration structures and
//     logging.
//
//   - transport: Network communication abstractions with pluggable
//     implementations (TCP, Unix sockets, HTTP), all enforcing strict
//     request/response pairing.
//
//   - serializer: Request/Response serialization with multiple format
//     options (Binary, JSON, GOB).
//
//   - client: The blocking store client exposing load, store and erase,
//     and translating responses into caller-facing results.
//
//   - server: The store server receiving one request at a time per
//     connection and dispatching it to the store engine.
package rpc
