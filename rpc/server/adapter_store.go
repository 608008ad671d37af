package server

import (
	"fmt"

	"github.com/ValentinKolb/cstore/lib/store"
	"github.com/ValentinKolb/cstore/rpc/common"
)

func NewStoreServerAdapter() IRPCServerAdapter {
	return &storeServerAdapterImpl{}
}

type storeServerAdapterImpl struct{}

// Handle dispatches a request to the store engine.
//
// The load/erase outcome for a missing key is Success=false, not an error:
// only engine faults (e.g. an invalid key) and unsupported request types
// set the Err field. An unsupported request type gets an explicit failure
// response rather than being dropped, so the client is never left waiting.
func (adapter *storeServerAdapterImpl) Handle(req *common.Request, st store.IStore) *common.Response {
	// Check for nil store
	if st == nil {
		return common.NewErrorResponse(req.ReqType, req.Key, "handler: store is nil")
	}

	// Handle different request types
	switch req.ReqType {
	case common.ReqTLoad:
		value, found, err := st.Load(req.Key)
		if err != nil {
			return common.NewErrorResponse(req.ReqType, req.Key, err.Error())
		}
		return common.NewLoadResponse(req.Key, value, found)
	case common.ReqTStore:
		if err := st.Store(req.Key, req.Data); err != nil {
			return common.NewErrorResponse(req.ReqType, req.Key, err.Error())
		}
		return common.NewStoreResponse(req.Key)
	case common.ReqTErase:
		found, err := st.Erase(req.Key)
		if err != nil {
			return common.NewErrorResponse(req.ReqType, req.Key, err.Error())
		}
		return common.NewEraseResponse(req.Key, found)
	default:
		return common.NewErrorResponse(
			req.ReqType, req.Key,
			fmt.Sprintf("unsupported request type: %s (%d)", req.ReqType, uint8(req.ReqType)),
		)
	}
}
