package base

import (
	"bytes"
	"fmt"
	"net"
	"sync"
	"testing"

	"github.com/ValentinKolb/cstore/rpc/common"
)

// pipeHandler produces the response frame for one received request frame.
type pipeHandler func(requestID uint64, payload []byte) (respID uint64, resp []byte)

// echoHandler answers every request with its own requestID and payload.
func echoHandler(requestID uint64, payload []byte) (uint64, []byte) {
	resp := make([]byte, len(payload))
	copy(resp, payload)
	return requestID, resp
}

// pipeConnector implements IClientConnector over net.Pipe. Every Connect
// creates a fresh pipe serviced by a frame loop running the current handler,
// so tests can count reconnects and swap server behavior between calls.
type pipeConnector struct {
	mu       sync.Mutex
	connects int
	handler  pipeHandler
	dead     bool // when set, new connections are closed immediately
}

func (c *pipeConnector) GetName() string { return "pipe" }

func (c *pipeConnector) UpgradeConnection(net.Conn, common.ClientConfig) error { return nil }

func (c *pipeConnector) Connect(string) (net.Conn, error) {
	c.mu.Lock()
	c.connects++
	dead := c.dead
	c.mu.Unlock()

	clientConn, serverConn := net.Pipe()

	if dead {
		serverConn.Close()
		return clientConn, nil
	}

	go func() {
		defer serverConn.Close()
		for {
			requestID, payload, err := readFrame(serverConn, nil)
			if err != nil {
				return
			}
			respID, resp := c.currentHandler()(requestID, payload)
			if err := writeFrame(serverConn, respID, resp); err != nil {
				return
			}
		}
	}()

	return clientConn, nil
}

func (c *pipeConnector) currentHandler() pipeHandler {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.handler
}

func (c *pipeConnector) setHandler(h pipeHandler) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handler = h
}

func (c *pipeConnector) setDead(dead bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dead = dead
}

func (c *pipeConnector) connectCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.connects
}

func testClientConfig() common.ClientConfig {
	return common.ClientConfig{
		Transport: common.ClientTransportConfig{
			Endpoint: "pipe",
		},
	}
}

// TestClientTransportBrokenPairing verifies that a response carrying the
// wrong requestID fails the round trip, drops the connection and triggers a
// reconnect on the next Send.
func TestClientTransportBrokenPairing(t *testing.T) {
	connector := &pipeConnector{handler: func(requestID uint64, payload []byte) (uint64, []byte) {
		// Answer with a requestID the client never sent
		return requestID + 1000, payload
	}}

	tr := NewBaseClientTransport(connector)
	if err := tr.Connect(testClientConfig()); err != nil {
		t.Fatalf("connect failed: %v", err)
	}
	defer tr.Close()

	if _, err := tr.Send([]byte("req")); err == nil {
		t.Fatal("Send accepted a response with a foreign requestID")
	}

	// A correctly pairing server must be reachable again without any
	// intervention by the caller
	connector.setHandler(echoHandler)
	resp, err := tr.Send([]byte("again"))
	if err != nil {
		t.Fatalf("Send after broken pairing failed: %v", err)
	}
	if !bytes.Equal(resp, []byte("again")) {
		t.Errorf("Send returned %q, expected %q", resp, "again")
	}

	if got := connector.connectCount(); got != 2 {
		t.Errorf("connect count = %d, expected 2 (initial + reconnect)", got)
	}
}

// TestClientTransportReconnectAfterError verifies that a transport failure
// marks the connection dead and the next Send establishes a new one.
func TestClientTransportReconnectAfterError(t *testing.T) {
	connector := &pipeConnector{handler: echoHandler}

	tr := NewBaseClientTransport(connector)
	if err := tr.Connect(testClientConfig()); err != nil {
		t.Fatalf("connect failed: %v", err)
	}
	defer tr.Close()

	if _, err := tr.Send([]byte("warmup")); err != nil {
		t.Fatalf("Send failed: %v", err)
	}

	// Kill the server side of the next connection and force a new one
	connector.setDead(true)
	tr.(*clientTransport).dropConnectionLocked(t)

	if _, err := tr.Send([]byte("req")); err == nil {
		t.Fatal("Send on a dead connection did not fail")
	}

	connector.setDead(false)
	resp, err := tr.Send([]byte("recovered"))
	if err != nil {
		t.Fatalf("Send after transport failure failed: %v", err)
	}
	if !bytes.Equal(resp, []byte("recovered")) {
		t.Errorf("Send returned %q, expected %q", resp, "recovered")
	}
}

// dropConnectionLocked closes the transport's connection under its mutex,
// simulating a failure outside a round trip.
func (t *clientTransport) dropConnectionLocked(tb testing.TB) {
	tb.Helper()
	t.mu.Lock()
	defer t.mu.Unlock()
	t.dropConnection()
}

// TestClientTransportSerializesRoundTrips verifies that concurrent callers
// on one transport never interleave: every Send gets back exactly its own
// payload, through a single connection.
func TestClientTransportSerializesRoundTrips(t *testing.T) {
	connector := &pipeConnector{handler: echoHandler}

	tr := NewBaseClientTransport(connector)
	if err := tr.Connect(testClientConfig()); err != nil {
		t.Fatalf("connect failed: %v", err)
	}
	defer tr.Close()

	const workers = 4
	const sendsPerWorker = 25

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < sendsPerWorker; i++ {
				payload := []byte(fmt.Sprintf("w%d-i%d", w, i))
				resp, err := tr.Send(payload)
				if err != nil {
					t.Errorf("Send(%q) failed: %v", payload, err)
					return
				}
				if !bytes.Equal(resp, payload) {
					t.Errorf("Send(%q) returned foreign response %q", payload, resp)
					return
				}
			}
		}(w)
	}
	wg.Wait()

	// Interleaved use would have broken the pairing and forced reconnects
	if got := connector.connectCount(); got != 1 {
		t.Errorf("connect count = %d, expected 1", got)
	}
}
