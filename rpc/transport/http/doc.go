// Package http provides the HTTP implementation of the RPC transport layer.
// Encoded requests are sent as POST bodies to a single /rpc endpoint and the
// encoded response is returned in the response body. Request/response
// pairing is inherited from HTTP itself, so no frame protocol is needed.
//
// This transport trades throughput for interoperability: it is easy to put
// behind existing HTTP infrastructure (load balancers, TLS termination) at
// the cost of per-request overhead compared to the tcp and unix transports.
package http
