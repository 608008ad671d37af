package server

import (
	"time"

	"github.com/ValentinKolb/cstore/lib/store"
	"github.com/ValentinKolb/cstore/lib/store/memstore"
	"github.com/ValentinKolb/cstore/rpc/common"
	"github.com/ValentinKolb/cstore/rpc/serializer"
	"github.com/ValentinKolb/cstore/rpc/transport"
)

var Logger = common.GetLogger("rpc")

// NewRPCServer creates a new store server.
// It takes a config, transport and serializer as parameters. The server
// owns its engine instance: every NewRPCServer call creates a fresh,
// independent store, so multiple servers in one process (e.g. in tests)
// never share state.
//
// Usage:
//
//	s := server.NewRPCServer(
//		config,
//		tcp.NewTCPDefaultServerTransport(),
//		serializer.NewBinarySerializer(),
//	)
//
//	if err := s.Serve(); err != nil {
//		panic(err)
//	}
func NewRPCServer(
	config common.ServerConfig,
	transport transport.IRPCServerTransport,
	serializer serializer.IRPCSerializer,
) rpcServer {
	return rpcServer{
		config:     config,
		transport:  transport,
		serializer: serializer,
		store:      memstore.NewMemStore(),
		adapter:    NewStoreServerAdapter(),
		metrics:    newServerMetrics(),
	}
}

type rpcServer struct {
	config     common.ServerConfig
	transport  transport.IRPCServerTransport
	serializer serializer.IRPCSerializer
	store      store.IStore
	adapter    IRPCServerAdapter
	metrics    *serverMetrics
}

// registerTransportHandler wires the decode -> dispatch -> encode pipeline
// into the transport layer
func (s *rpcServer) registerTransportHandler() {
	s.transport.RegisterHandler(func(req []byte) []byte {
		start := time.Now()

		var reqMsg common.Request
		var respMsg *common.Response

		// Decode the request
		if err := s.serializer.DeserializeRequest(req, &reqMsg); err != nil {
			// Malformed bytes must not kill the serve loop; the client
			// gets an explicit protocol error instead
			Logger.Warnf("Failed to deserialize request: %v", err)
			respMsg = common.NewErrorResponse(common.ReqTUnknown, "", "failed to deserialize request: "+err.Error())
		} else {
			// Let the adapter handle the request
			respMsg = s.handle(&reqMsg)
		}

		s.metrics.observe(reqMsg.ReqType, start, respMsg.Err != "")

		// Encode the response
		val, err := s.serializer.SerializeResponse(*respMsg)
		if err != nil {
			Logger.Errorf("Failed to serialize response: %v", err)
			val, _ = s.serializer.SerializeResponse(
				*common.NewErrorResponse(reqMsg.ReqType, reqMsg.Key, "failed to serialize response"),
			)
		}
		return val
	})
}

// handle dispatches one decoded request to the adapter. A panicking
// adapter or engine must not terminate the server's ability to serve
// subsequent requests, so panics are converted into failure responses.
func (s *rpcServer) handle(req *common.Request) (resp *common.Response) {
	defer func() {
		if r := recover(); r != nil {
			Logger.Errorf("Panic while handling %s request for key %q: %v", req.ReqType, req.Key, r)
			resp = common.NewErrorResponse(req.ReqType, req.Key, "internal server error")
		}
	}()

	return s.adapter.Handle(req, s.store)
}

// Serve starts the store server.
// This function initializes logging and the optional metrics endpoint,
// wires the request handler into the transport layer and then listens.
func (s *rpcServer) Serve() error {
	// Init logger
	common.InitLoggers(s.config)

	Logger.Infof("Created store server")
	Logger.Info(s.config.String())

	// Optional Prometheus endpoint
	if s.config.MetricsEndpoint != "" {
		go func() {
			if err := serveMetricsEndpoint(s.config.MetricsEndpoint); err != nil {
				Logger.Errorf("Metrics endpoint failed: %v", err)
			}
		}()
	}

	// Configure the transport layer
	s.registerTransportHandler()

	return s.transport.Listen(s.config)
}
