package http

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ValentinKolb/cstore/rpc/common"
	"github.com/ValentinKolb/cstore/rpc/transport"
)

func NewHttpClientTransport() transport.IRPCClientTransport {
	return &httpClientTransport{}
}

type httpClientTransport struct {
	config common.ClientConfig
	client *http.Client
	url    string
}

// --------------------------------------------------------------------------
// Interface Methods (docu see transport.IRPCClientTransport)
// --------------------------------------------------------------------------

func (t *httpClientTransport) Connect(config common.ClientConfig) error {
	if config.Transport.Endpoint == "" {
		return fmt.Errorf("no endpoint provided")
	}

	t.config = config

	// Accept endpoints with or without a scheme
	endpoint := config.Transport.Endpoint
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "http://" + endpoint
	}
	t.url = strings.TrimSuffix(endpoint, "/") + rpcPath

	t.client = &http.Client{
		Timeout: time.Duration(config.TimeoutSecond) * time.Second,
	}

	return nil
}

func (t *httpClientTransport) Send(req []byte) ([]byte, error) {
	if t.client == nil {
		return nil, fmt.Errorf("transport is not connected")
	}

	resp, err := t.client.Post(t.url, "application/octet-stream", bytes.NewReader(req))
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("server returned status %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %v", err)
	}

	return body, nil
}

func (t *httpClientTransport) Close() error {
	if t.client != nil {
		t.client.CloseIdleConnections()
	}
	return nil
}
