// Package transport defines the interfaces of the RPC transport layer: a
// message-oriented, strictly request/response-paired channel between store
// clients and the store server.
//
// The transport moves opaque byte slices; serialization of requests and
// responses is the concern of the serializer package. Three implementations
// are provided in subpackages:
//
//   - tcp: framed protocol over TCP sockets (base + tcp connector)
//   - unix: framed protocol over Unix domain sockets (base + unix connector)
//   - http: one POST per round trip, pairing given by HTTP
//
// All implementations guarantee exactly one response per request at the
// transport level. Client transports hold a single connection and allow at
// most one in-flight request; parallel callers need independent transports.
package transport
