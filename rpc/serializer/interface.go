package serializer

import "github.com/ValentinKolb/cstore/rpc/common"

// IRPCSerializer is the interface for all protocol serializers.
//
// The request and response codecs are separate because the protocol is
// direction-sensitive: a client only ever encodes Requests and decodes
// Responses, while the server does the opposite. For every implementation
// the round-trip law decode(encode(x)) == x must hold for both message kinds.
type IRPCSerializer interface {
	// SerializeRequest serializes a Request into a byte array
	SerializeRequest(req common.Request) ([]byte, error)
	// DeserializeRequest deserializes a byte array into a Request
	// It takes a byte array and a pointer to a Request as parameters
	DeserializeRequest(b []byte, req *common.Request) error
	// SerializeResponse serializes a Response into a byte array
	SerializeResponse(resp common.Response) ([]byte, error)
	// DeserializeResponse deserializes a byte array into a Response
	// It takes a byte array and a pointer to a Response as parameters
	DeserializeResponse(b []byte, resp *common.Response) error
}
