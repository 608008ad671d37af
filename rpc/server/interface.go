package server

import (
	"github.com/ValentinKolb/cstore/lib/store"
	"github.com/ValentinKolb/cstore/rpc/common"
)

// IRPCServerAdapter is the interface for all RPC server adapters.
// It is responsible for dispatching decoded requests to the store engine
// and translating the engine outcome into a response.
type IRPCServerAdapter interface {
	// Handle handles a request and returns a response.
	// It takes a Request and a store as parameters and must always
	// produce a Response; errors are reported inside the Response,
	// never by panicking or by dropping the request.
	Handle(req *common.Request, store store.IStore) (resp *common.Response)
}
