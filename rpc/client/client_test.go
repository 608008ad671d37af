package client

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/ValentinKolb/cstore/rpc/common"
	"github.com/ValentinKolb/cstore/rpc/serializer"
	"github.com/sirupsen/logrus"
	logrustest "github.com/sirupsen/logrus/hooks/test"
)

// fakeTransport implements transport.IRPCClientTransport without a network.
// Its reply function produces the raw response bytes for each request.
type fakeTransport struct {
	reply      func(req []byte) ([]byte, error)
	connectErr error
	closed     bool
}

func (t *fakeTransport) Connect(common.ClientConfig) error { return t.connectErr }
func (t *fakeTransport) Send(req []byte) ([]byte, error)   { return t.reply(req) }
func (t *fakeTransport) Close() error                      { t.closed = true; return nil }

// newTestClient creates a client whose server side is simulated by the
// given handler operating on decoded requests.
func newTestClient(t *testing.T, handler func(req common.Request) common.Response) *Client {
	t.Helper()

	s := serializer.NewBinarySerializer()
	ft := &fakeTransport{
		reply: func(reqBytes []byte) ([]byte, error) {
			var req common.Request
			if err := s.DeserializeRequest(reqBytes, &req); err != nil {
				return nil, err
			}
			return s.SerializeResponse(handler(req))
		},
	}

	c, err := NewRPCClient(common.ClientConfig{}, ft, s)
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	return c
}

// TestClientLoadTranslation verifies the three load outcomes: value,
// not-found, and communication error.
func TestClientLoadTranslation(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		c := newTestClient(t, func(req common.Request) common.Response {
			return *common.NewLoadResponse(req.Key, []byte("value"), true)
		})

		value, err := c.Load("key1")
		if err != nil {
			t.Fatalf("load failed: %v", err)
		}
		if !bytes.Equal(value, []byte("value")) {
			t.Errorf("load returned %q", value)
		}
	})

	t.Run("NotFound", func(t *testing.T) {
		c := newTestClient(t, func(req common.Request) common.Response {
			return *common.NewLoadResponse(req.Key, nil, false)
		})

		_, err := c.Load("key1")
		if !errors.Is(err, ErrKeyNotFound) {
			t.Errorf("expected ErrKeyNotFound, got %v", err)
		}
		if errors.Is(err, ErrCommunication) {
			t.Error("not-found must not wrap ErrCommunication")
		}
	})

	t.Run("ServerError", func(t *testing.T) {
		c := newTestClient(t, func(req common.Request) common.Response {
			return *common.NewErrorResponse(req.ReqType, req.Key, "boom")
		})

		_, err := c.Load("key1")
		if !errors.Is(err, ErrCommunication) {
			t.Errorf("expected ErrCommunication, got %v", err)
		}
		if errors.Is(err, ErrKeyNotFound) {
			t.Error("server error must not be classified as not-found")
		}
	})
}

// TestClientStoreEraseFlags verifies that store and erase pass the success
// flag through unchanged.
func TestClientStoreEraseFlags(t *testing.T) {
	existing := false
	c := newTestClient(t, func(req common.Request) common.Response {
		switch req.ReqType {
		case common.ReqTStore:
			return *common.NewStoreResponse(req.Key)
		case common.ReqTErase:
			return *common.NewEraseResponse(req.Key, existing)
		default:
			return *common.NewErrorResponse(req.ReqType, req.Key, "unexpected request")
		}
	})

	ok, err := c.Store("key1", []byte("v"))
	if err != nil || !ok {
		t.Fatalf("store: ok=%t err=%v", ok, err)
	}

	ok, err = c.Erase("key1")
	if err != nil {
		t.Fatalf("erase failed: %v", err)
	}
	if ok {
		t.Error("erase reported true although the server said false")
	}

	existing = true
	ok, err = c.Erase("key1")
	if err != nil || !ok {
		t.Fatalf("erase: ok=%t err=%v", ok, err)
	}
}

// TestClientTransportFailure verifies that a failing round trip surfaces
// as a communication error.
func TestClientTransportFailure(t *testing.T) {
	s := serializer.NewBinarySerializer()
	ft := &fakeTransport{
		reply: func([]byte) ([]byte, error) {
			return nil, fmt.Errorf("connection reset")
		},
	}

	c, err := NewRPCClient(common.ClientConfig{}, ft, s)
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	if _, err := c.Load("key1"); !errors.Is(err, ErrCommunication) {
		t.Errorf("expected ErrCommunication, got %v", err)
	}
	if _, err := c.Store("key1", []byte("v")); !errors.Is(err, ErrCommunication) {
		t.Errorf("expected ErrCommunication, got %v", err)
	}
	if _, err := c.Erase("key1"); !errors.Is(err, ErrCommunication) {
		t.Errorf("expected ErrCommunication, got %v", err)
	}
}

// TestClientResponseTypeMismatch verifies that a response answering a
// different request type is rejected as a communication error.
func TestClientResponseTypeMismatch(t *testing.T) {
	c := newTestClient(t, func(req common.Request) common.Response {
		// Answer every request as if it were a store
		return *common.NewStoreResponse(req.Key)
	})

	if _, err := c.Load("key1"); !errors.Is(err, ErrCommunication) {
		t.Errorf("expected ErrCommunication for mismatched response type, got %v", err)
	}
}

// TestClientUndecodableResponse verifies that garbage response bytes are a
// communication error.
func TestClientUndecodableResponse(t *testing.T) {
	s := serializer.NewBinarySerializer()
	ft := &fakeTransport{
		reply: func([]byte) ([]byte, error) {
			return []byte{0xff}, nil
		},
	}

	c, err := NewRPCClient(common.ClientConfig{}, ft, s)
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	if _, err := c.Load("key1"); !errors.Is(err, ErrCommunication) {
		t.Errorf("expected ErrCommunication, got %v", err)
	}
}

// TestClientLogsCommunicationFailures verifies that failed round trips are
// reported through the package logger, not just in the returned error.
func TestClientLogsCommunicationFailures(t *testing.T) {
	hook := logrustest.NewGlobal()
	defer hook.Reset()

	c := newTestClient(t, func(req common.Request) common.Response {
		return *common.NewErrorResponse(req.ReqType, req.Key, "boom")
	})

	if _, err := c.Load("key1"); !errors.Is(err, ErrCommunication) {
		t.Fatalf("expected ErrCommunication, got %v", err)
	}

	for _, entry := range hook.AllEntries() {
		if entry.Level == logrus.WarnLevel {
			return
		}
	}
	t.Error("communication failure produced no warning log entry")
}

// TestClientConnectFailure verifies that a failing connect surfaces at
// construction time.
func TestClientConnectFailure(t *testing.T) {
	ft := &fakeTransport{connectErr: fmt.Errorf("no such host")}

	if _, err := NewRPCClient(common.ClientConfig{}, ft, serializer.NewBinarySerializer()); !errors.Is(err, ErrCommunication) {
		t.Errorf("expected ErrCommunication, got %v", err)
	}
}
