package base

import (
	"bytes"
	"net"
	"testing"
)

// TestFrameRoundTrip verifies that a frame written to one end of a pipe is
// read back with the same requestID and payload.
func TestFrameRoundTrip(t *testing.T) {
	testPayloads := map[string][]byte{
		"Small":  []byte("hello"),
		"Binary": {0x00, 0xff, 0x13, 0x37},
		"Large":  bytes.Repeat([]byte("x"), 64*1024),
	}

	for name, payload := range testPayloads {
		t.Run(name, func(t *testing.T) {
			clientConn, serverConn := net.Pipe()
			defer clientConn.Close()
			defer serverConn.Close()

			const requestID = uint64(42)

			errCh := make(chan error, 1)
			go func() {
				errCh <- writeFrame(clientConn, requestID, payload)
			}()

			buf := make([]byte, 1024)
			gotID, gotPayload, err := readFrame(serverConn, buf)
			if err != nil {
				t.Fatalf("readFrame failed: %v", err)
			}
			if writeErr := <-errCh; writeErr != nil {
				t.Fatalf("writeFrame failed: %v", writeErr)
			}

			if gotID != requestID {
				t.Errorf("requestID = %d, expected %d", gotID, requestID)
			}
			if !bytes.Equal(gotPayload, payload) {
				t.Errorf("payload mismatch: got %d bytes, expected %d bytes", len(gotPayload), len(payload))
			}
		})
	}
}

// TestReadFrameSmallBuffer verifies that readFrame falls back to a larger
// temporary buffer when the provided one cannot hold the payload.
func TestReadFrameSmallBuffer(t *testing.T) {
	clientConn, serverConn := net.Pipe()
	defer clientConn.Close()
	defer serverConn.Close()

	payload := bytes.Repeat([]byte("y"), 256)

	go func() {
		_ = writeFrame(clientConn, 7, payload)
	}()

	gotID, gotPayload, err := readFrame(serverConn, make([]byte, headerSize))
	if err != nil {
		t.Fatalf("readFrame failed: %v", err)
	}
	if gotID != 7 {
		t.Errorf("requestID = %d, expected 7", gotID)
	}
	if !bytes.Equal(gotPayload, payload) {
		t.Error("payload mismatch with undersized buffer")
	}
}

// TestReadFrameTruncated verifies that a closed connection mid-frame is
// reported as an error.
func TestReadFrameTruncated(t *testing.T) {
	clientConn, serverConn := net.Pipe()
	defer serverConn.Close()

	go func() {
		// header promises 100 bytes but the connection closes after 3
		header := []byte{0, 0, 0, 0, 0, 0, 0, 1, 0, 0, 0, 100}
		_, _ = clientConn.Write(header)
		_, _ = clientConn.Write([]byte("abc"))
		_ = clientConn.Close()
	}()

	if _, _, err := readFrame(serverConn, make([]byte, 1024)); err == nil {
		t.Error("expected error for truncated frame")
	}
}
