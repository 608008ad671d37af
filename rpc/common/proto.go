package common

import (
	"encoding/json"
	"fmt"
)

// --------------------------------------------------------------------------
// Request / Response Structures
// --------------------------------------------------------------------------

// Request represents a single command sent from a client to the server.
// The Data field is only meaningful for Store requests.
type Request struct {
	// Type of request
	ReqType RequestType `json:"req_type"`

	// Key the operation applies to
	Key string `json:"key,omitempty"`

	// Value payload, used for: Store (request)
	Data []byte `json:"data,omitempty"`
}

// Response represents the answer to exactly one Request.
// The Key and ReqType fields are echoed from the request so the client can
// verify the pairing. Data is only set for a successful Load.
//
// Success=false with an empty Err means the domain outcome "not found".
// A non-empty Err means the round trip itself failed on the server side
// (undecodable request, unsupported request type, internal error) - the
// client must surface this distinctly from "not found".
type Response struct {
	// Type of the request this response answers
	ReqType RequestType `json:"req_type"`

	// Whether the operation succeeded
	Success bool `json:"success,omitempty"`

	// Key echoed from the request
	Key string `json:"key,omitempty"`

	// Value payload, used for: Load (response)
	Data []byte `json:"data,omitempty"`

	// Empty if no protocol-level error, otherwise contains the error message
	Err string `json:"err,omitempty"`
}

// --------------------------------------------------------------------------
// Request Factory Functions
// --------------------------------------------------------------------------

// NewLoadRequest creates a new Load request
func NewLoadRequest(key string) *Request {
	return &Request{
		ReqType: ReqTLoad,
		Key:     key,
	}
}

// NewStoreRequest creates a new Store request
func NewStoreRequest(key string, data []byte) *Request {
	return &Request{
		ReqType: ReqTStore,
		Key:     key,
		Data:    data,
	}
}

// NewEraseRequest creates a new Erase request
func NewEraseRequest(key string) *Request {
	return &Request{
		ReqType: ReqTErase,
		Key:     key,
	}
}

// --------------------------------------------------------------------------
// Response Factory Functions
// --------------------------------------------------------------------------

// NewLoadResponse creates a new Load response.
// The found parameter reports whether the key was present in the store.
func NewLoadResponse(key string, data []byte, found bool) *Response {
	resp := &Response{
		ReqType: ReqTLoad,
		Key:     key,
		Success: found,
	}
	if found {
		resp.Data = data
	}
	return resp
}

// NewStoreResponse creates a new Store response
func NewStoreResponse(key string) *Response {
	return &Response{
		ReqType: ReqTStore,
		Key:     key,
		Success: true,
	}
}

// NewEraseResponse creates a new Erase response.
// The found parameter reports whether the key was present in the store.
func NewEraseResponse(key string, found bool) *Response {
	return &Response{
		ReqType: ReqTErase,
		Key:     key,
		Success: found,
	}
}

// NewErrorResponse creates a new error response for the given request type
func NewErrorResponse(reqType RequestType, key string, err string) *Response {
	return &Response{
		ReqType: reqType,
		Key:     key,
		Err:     err,
	}
}

// --------------------------------------------------------------------------
// Request Type Definition
// --------------------------------------------------------------------------

// RequestType defines the type of a request in the store protocol.
type RequestType uint8

// String returns the string representation of a RequestType.
func (t RequestType) String() string {
	switch t {
	case ReqTLoad:
		return "load"
	case ReqTStore:
		return "store"
	case ReqTErase:
		return "erase"
	default:
		return "unknown"
	}
}

// MarshalJSON implements the json.Marshaller interface for RequestType.
// This allows RequestType to be serialized as a string in JSON.
func (t RequestType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON implements the json.Unmarshaler interface for RequestType.
// This allows RequestType to be deserialized from a string in JSON.
func (t *RequestType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	// Convert string back to RequestType
	switch s {
	case "load":
		*t = ReqTLoad
	case "store":
		*t = ReqTStore
	case "erase":
		*t = ReqTErase
	case "unknown":
		// error responses for undecodable requests carry this type
		*t = ReqTUnknown
	default:
		return fmt.Errorf("unknown request type: %s", s)
	}

	return nil
}

// --------------------------------------------------------------------------
// Request Type Constants
// --------------------------------------------------------------------------

const (
	// ReqTUnknown is the zero value and never valid on the wire
	ReqTUnknown RequestType = iota

	ReqTLoad  // Load the value for a key
	ReqTStore // Store a key-value pair
	ReqTErase // Erase a key-value pair
)
