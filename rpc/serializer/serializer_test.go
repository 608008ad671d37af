package serializer

import (
	"reflect"
	"testing"

	"github.com/ValentinKolb/cstore/rpc/common"
)

// testSerializers is a map of serializer name to factory function
var testSerializers = map[string]func() IRPCSerializer{
	"JSON":   NewJSONSerializer,
	"GOB":    NewGOBSerializer,
	"Binary": NewBinarySerializer,
}

// testRequests creates a set of test requests with different fields filled
func testRequests() []common.Request {
	return []common.Request{
		// Load request
		{
			ReqType: common.ReqTLoad,
			Key:     "test-key",
		},

		// Store request
		{
			ReqType: common.ReqTStore,
			Key:     "test-key",
			Data:    []byte("test-value"),
		},

		// Store request with binary payload
		{
			ReqType: common.ReqTStore,
			Key:     "binary-key",
			Data:    []byte{0x00, 0xff, 0x42, 0x00, 0x01},
		},

		// Erase request
		{
			ReqType: common.ReqTErase,
			Key:     "some-other-key",
		},
	}
}

// testResponses creates a set of test responses with different fields filled
func testResponses() []common.Response {
	return []common.Response{
		// Successful load response
		{
			ReqType: common.ReqTLoad,
			Success: true,
			Key:     "test-key",
			Data:    []byte("test-value"),
		},

		// Not-found load response
		{
			ReqType: common.ReqTLoad,
			Success: false,
			Key:     "missing-key",
		},

		// Store response
		{
			ReqType: common.ReqTStore,
			Success: true,
			Key:     "test-key",
		},

		// Erase response (key did not exist)
		{
			ReqType: common.ReqTErase,
			Success: false,
			Key:     "missing-key",
		},

		// Error response
		{
			ReqType: common.ReqTStore,
			Key:     "test-key",
			Err:     "test error message",
		},
	}
}

// TestRequestRoundTrip tests that requests can be serialized and deserialized correctly
func TestRequestRoundTrip(t *testing.T) {
	requests := testRequests()

	for name, factory := range testSerializers {
		t.Run(name, func(t *testing.T) {
			serializer := factory()

			for i, req := range requests {
				// Serialize
				data, err := serializer.SerializeRequest(req)
				if err != nil {
					t.Errorf("Failed to serialize request %d: %v", i, err)
					continue
				}

				// Deserialize
				var result common.Request
				err = serializer.DeserializeRequest(data, &result)
				if err != nil {
					t.Errorf("Failed to deserialize request %d: %v", i, err)
					continue
				}

				// Compare
				if !reflect.DeepEqual(req, result) {
					t.Errorf("Request %d doesn't match after round trip:\nOriginal: %+v\nResult: %+v",
						i, req, result)
				}
			}
		})
	}
}

// TestResponseRoundTrip tests that responses can be serialized and deserialized correctly
func TestResponseRoundTrip(t *testing.T) {
	responses := testResponses()

	for name, factory := range testSerializers {
		t.Run(name, func(t *testing.T) {
			serializer := factory()

			for i, resp := range responses {
				// Serialize
				data, err := serializer.SerializeResponse(resp)
				if err != nil {
					t.Errorf("Failed to serialize response %d: %v", i, err)
					continue
				}

				// Deserialize
				var result common.Response
				err = serializer.DeserializeResponse(data, &result)
				if err != nil {
					t.Errorf("Failed to deserialize response %d: %v", i, err)
					continue
				}

				// Compare
				if !reflect.DeepEqual(resp, result) {
					t.Errorf("Response %d doesn't match after round trip:\nOriginal: %+v\nResult: %+v",
						i, resp, result)
				}
			}
		})
	}
}

// TestRequestTypes tests each request type with each serializer
func TestRequestTypes(t *testing.T) {
	for name, factory := range testSerializers {
		t.Run(name, func(t *testing.T) {
			serializer := factory()

			for reqType := common.ReqTLoad; reqType <= common.ReqTErase; reqType++ {
				req := common.Request{ReqType: reqType, Key: "k"}

				data, err := serializer.SerializeRequest(req)
				if err != nil {
					t.Errorf("Failed to serialize request type %s: %v", reqType.String(), err)
					continue
				}

				var result common.Request
				err = serializer.DeserializeRequest(data, &result)
				if err != nil {
					t.Errorf("Failed to deserialize request type %s: %v", reqType.String(), err)
					continue
				}

				if result.ReqType != reqType {
					t.Errorf("Request type doesn't match after round trip: Expected %s, got %s",
						reqType.String(), result.ReqType.String())
				}
			}
		})
	}
}

// TestDeserializeGarbage tests that truncated or garbage input surfaces as an error
func TestDeserializeGarbage(t *testing.T) {
	inputs := map[string][]byte{
		"Empty":     {},
		"OneByte":   {0x01},
		"Truncated": {0x02, 0x01, 0x00, 0x00}, // claims a key but no length/data
	}

	for name, factory := range testSerializers {
		t.Run(name, func(t *testing.T) {
			serializer := factory()

			for inputName, input := range inputs {
				var req common.Request
				if err := serializer.DeserializeRequest(input, &req); err == nil {
					// JSON tolerates nothing here either, but guard the
					// message in case an implementation becomes lenient
					t.Errorf("%s: expected error for garbage request input, got none", inputName)
				}

				var resp common.Response
				if err := serializer.DeserializeResponse(input, &resp); err == nil {
					t.Errorf("%s: expected error for garbage response input, got none", inputName)
				}
			}
		})
	}
}
