package http

import (
	"io"
	"net/http"
	"time"

	"github.com/ValentinKolb/cstore/rpc/common"
	"github.com/ValentinKolb/cstore/rpc/transport"
)

var Logger = common.GetLogger("transport/rpc")

// rpcPath is the single endpoint the store protocol is served on
const rpcPath = "/rpc"

func NewHttpServerTransport() transport.IRPCServerTransport {
	return &httpServerTransport{}
}

type httpServerTransport struct {
	handler transport.ServerHandleFunc
	config  common.ServerConfig
}

// --------------------------------------------------------------------------
// Interface Methods (docu see transport.IRPCServerTransport)
// --------------------------------------------------------------------------

func (t *httpServerTransport) RegisterHandler(handler transport.ServerHandleFunc) {
	t.handler = handler
}

func (t *httpServerTransport) Listen(config common.ServerConfig) error {
	t.config = config

	// Create a new HTTP server
	mux := http.NewServeMux()

	// Register handler
	if t.config.LogLevel == "debug" {
		mux.HandleFunc("POST "+rpcPath, loggerMiddleware(t.handleRequest))
	} else {
		mux.HandleFunc("POST "+rpcPath, t.handleRequest)
	}

	Logger.Infof("Starting HTTP server on %s", t.config.Transport.Endpoint)

	// Set up the server with the address and handler
	return http.ListenAndServe(t.config.Transport.Endpoint, mux)
}

// --------------------------------------------------------------------------
// Helper Methods
// --------------------------------------------------------------------------

// handleRequest handles incoming HTTP requests and writes the response to the writer.
// Request/response pairing is given by HTTP itself: one POST body in, one
// response body out.
func (t *httpServerTransport) handleRequest(w http.ResponseWriter, r *http.Request) {
	// Read request body
	body, err := io.ReadAll(r.Body)
	defer r.Body.Close()

	// Check if body could be read
	if err != nil {
		http.Error(w, "Failed to read request body", http.StatusInternalServerError)
		return
	}

	// Dispatch to the registered handler
	resp := t.handler(body)

	// Write response
	if _, err = w.Write(resp); err != nil {
		Logger.Errorf("Failed to write response: %v", err)
	}
}

// --------------------------------------------------------------------------
// Middleware (logging)
// --------------------------------------------------------------------------

// responseWriter is a custom ResponseWriter that captures the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

// WriteHeader captures the status code before writing it
func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// loggerMiddleware is a middleware that logs HTTP requests
func loggerMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Create custom response writer to capture the status code
		rw := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		// Process request
		next.ServeHTTP(rw, r)

		// Log the request
		Logger.Debugf("%s %s -> %d (%s)", r.Method, r.URL.Path, rw.statusCode, time.Since(start))
	}
}
