package serializer

import (
	"bytes"
	"encoding/gob"

	"github.com/ValentinKolb/cstore/rpc/common"
)

// NewGOBSerializer creates a new serializer using Go's binary gob format
func NewGOBSerializer() IRPCSerializer {
	return &gobSerializerImpl{}
}

// gobSerializerImpl implements the IRPCSerializer interface using gob encoding
type gobSerializerImpl struct {
}

// --------------------------------------------------------------------------
// Interface Methods (docu see serializer.IRPCSerializer)
// --------------------------------------------------------------------------

func (g gobSerializerImpl) SerializeRequest(req common.Request) ([]byte, error) {
	return gobEncode(req)
}

func (g gobSerializerImpl) DeserializeRequest(b []byte, req *common.Request) error {
	return gobDecode(b, req)
}

func (g gobSerializerImpl) SerializeResponse(resp common.Response) ([]byte, error) {
	return gobEncode(resp)
}

func (g gobSerializerImpl) DeserializeResponse(b []byte, resp *common.Response) error {
	return gobDecode(b, resp)
}

// --------------------------------------------------------------------------
// Helper Methods
// --------------------------------------------------------------------------

func gobEncode(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func gobDecode(b []byte, v interface{}) error {
	buf := bytes.NewBuffer(b)
	dec := gob.NewDecoder(buf)
	return dec.Decode(v)
}
