package client

import (
	"errors"
	"fmt"

	"github.com/ValentinKolb/cstore/rpc/common"
)

var (
	Logger = common.GetLogger("rpc")

	// ErrKeyNotFound is returned by Load when the key is not present in
	// the store. It is a domain outcome, not a transport fault.
	ErrKeyNotFound = errors.New("key not found")

	// ErrCommunication is wrapped by every error caused by the round trip
	// itself: transport failures, undecodable responses, protocol errors
	// reported by the server and broken request/response pairing. When a
	// call fails with ErrCommunication the caller cannot assume anything
	// about whether the operation took effect on the server.
	ErrCommunication = errors.New("communication error")
)

// invoke is the single round-trip helper used by all client methods.
// It serializes the request, performs one blocking send and validates the
// response: a protocol error in the response or a response answering a
// different request type is a communication failure, never a domain result.
func (c *Client) invoke(req *common.Request) (*common.Response, error) {
	// Serialize the request
	reqBytes, err := c.serializer.SerializeRequest(*req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to serialize request: %v", ErrCommunication, err)
	}

	// Perform the round trip
	respBytes, err := c.transport.Send(reqBytes)
	if err != nil {
		Logger.Warnf("Round trip for %s request failed: %v", req.ReqType, err)
		return nil, fmt.Errorf("%w: %v", ErrCommunication, err)
	}

	// Deserialize the response
	resp := &common.Response{}
	if err := c.serializer.DeserializeResponse(respBytes, resp); err != nil {
		Logger.Warnf("Undecodable response for %s request: %v", req.ReqType, err)
		return nil, fmt.Errorf("%w: failed to deserialize response: %v", ErrCommunication, err)
	}

	// Check if the response is an error response
	if resp.Err != "" {
		Logger.Warnf("Server reported error for %s request: %s", req.ReqType, resp.Err)
		return nil, fmt.Errorf("%w: server error: %s", ErrCommunication, resp.Err)
	}

	// Check if the type of the response is the expected type
	if resp.ReqType != req.ReqType {
		Logger.Warnf("Response type mismatch: got %s, expected %s", resp.ReqType, req.ReqType)
		return nil, fmt.Errorf("%w: unexpected response type: %s, expected %s", ErrCommunication, resp.ReqType, req.ReqType)
	}

	return resp, nil
}
