package serializer

import (
	"encoding/json"

	"github.com/ValentinKolb/cstore/rpc/common"
)

// NewJSONSerializer creates a new serializer using json encoding
func NewJSONSerializer() IRPCSerializer {
	return &jsonSerializerImpl{}
}

// jsonSerializerImpl implements the IRPCSerializer interface using json encoding
type jsonSerializerImpl struct {
}

// --------------------------------------------------------------------------
// Interface Methods (docu see serializer.IRPCSerializer)
// --------------------------------------------------------------------------

func (j jsonSerializerImpl) SerializeRequest(req common.Request) ([]byte, error) {
	return json.Marshal(req)
}

func (j jsonSerializerImpl) DeserializeRequest(b []byte, req *common.Request) error {
	return json.Unmarshal(b, req)
}

func (j jsonSerializerImpl) SerializeResponse(resp common.Response) ([]byte, error) {
	return json.Marshal(resp)
}

func (j jsonSerializerImpl) DeserializeResponse(b []byte, resp *common.Response) error {
	return json.Unmarshal(b, resp)
}
