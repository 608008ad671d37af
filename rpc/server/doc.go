// Package server implements the store server: it binds an RPC transport,
// receives one request at a time per connection, dispatches it to the store
// engine and sends back exactly one response.
//
// The package focuses on:
//   - The decode -> dispatch -> encode pipeline wired into the transport
//   - The adapter pattern separating protocol handling from engine logic
//   - Fault containment: malformed requests, unsupported request types and
//     panics become failure responses, never a dead serve loop
//   - Request metrics (counters and latency summary) with an optional
//     Prometheus endpoint
//
// Key Components:
//
//   - NewRPCServer: Factory function creating a server with its own private
//     engine instance. The engine is never shared between servers, which
//     permits multiple independent servers in one process.
//
//   - IRPCServerAdapter: Dispatch interface between decoded requests and
//     the store engine. The provided store adapter implements the three
//     protocol operations; unknown request types are answered with an
//     explicit failure response (documented policy: respond, don't hang).
//
// Error Handling Policy:
//
//	The engine reports not-found via the Success flag; the server forwards
//	this untouched. Protocol-level problems (undecodable bytes, unsupported
//	request types, engine faults, panics) are reported in the Err field of
//	the response. No condition observed while serving one request stops the
//	server from serving the next one.
package server
