package serializer

import (
	"encoding/binary"
	"fmt"

	"github.com/ValentinKolb/cstore/rpc/common"
)

// NewBinarySerializer creates a new serializer using a custom binary format
// optimized for speed and efficiency
func NewBinarySerializer() IRPCSerializer {
	return &binarySerializerImpl{}
}

// binarySerializerImpl implements IRPCSerializer using a custom binary format
type binarySerializerImpl struct {
}

// Bit flags to indicate which optional fields are present.
// The success flag carries the value directly since it needs no payload.
const (
	hasKey     byte = 1 << 0
	hasData    byte = 1 << 1
	hasErr     byte = 1 << 2
	successSet byte = 1 << 3
)

// --------------------------------------------------------------------------
// Interface Methods (docu see serializer.IRPCSerializer)
// --------------------------------------------------------------------------

func (b binarySerializerImpl) SerializeRequest(req common.Request) ([]byte, error) {
	// Calculate total size needed
	totalSize := 2 // ReqType + flags
	if req.Key != "" {
		totalSize += 4 + len(req.Key)
	}
	if req.Data != nil {
		totalSize += 4 + len(req.Data)
	}
	result := make([]byte, totalSize)

	// Write request type
	result[0] = byte(req.ReqType)

	var flags byte
	pos := 2 // Start after ReqType and flags

	// Handle Key
	if req.Key != "" {
		flags |= hasKey
		pos = writeBytesField(result, pos, []byte(req.Key))
	}

	// Handle Data
	if req.Data != nil {
		flags |= hasData
		pos = writeBytesField(result, pos, req.Data)
	}

	// Set flags byte after knowing which fields are present
	result[1] = flags

	return result, nil
}

func (b binarySerializerImpl) DeserializeRequest(data []byte, req *common.Request) error {
	// Check minimum size (ReqType + flags)
	if len(data) < 2 {
		return fmt.Errorf("data too short for request header")
	}

	// Read request type and flags
	req.ReqType = common.RequestType(data[0])
	flags := data[1]
	pos := 2

	// Read Key if present
	if flags&hasKey != 0 {
		field, newPos, err := readBytesField(data, pos, "key")
		if err != nil {
			return err
		}
		req.Key = string(field)
		pos = newPos
	} else {
		req.Key = ""
	}

	// Read Data if present
	if flags&hasData != 0 {
		field, newPos, err := readBytesField(data, pos, "data")
		if err != nil {
			return err
		}
		req.Data = copyBytes(req.Data, field)
		pos = newPos
	} else {
		req.Data = nil
	}

	return nil
}

func (b binarySerializerImpl) SerializeResponse(resp common.Response) ([]byte, error) {
	// Calculate total size needed
	totalSize := 2 // ReqType + flags
	if resp.Key != "" {
		totalSize += 4 + len(resp.Key)
	}
	if resp.Data != nil {
		totalSize += 4 + len(resp.Data)
	}
	if resp.Err != "" {
		totalSize += 4 + len(resp.Err)
	}
	result := make([]byte, totalSize)

	// Write request type
	result[0] = byte(resp.ReqType)

	var flags byte
	pos := 2

	// Handle Success (flag bit only, no payload)
	if resp.Success {
		flags |= successSet
	}

	// Handle Key
	if resp.Key != "" {
		flags |= hasKey
		pos = writeBytesField(result, pos, []byte(resp.Key))
	}

	// Handle Data
	if resp.Data != nil {
		flags |= hasData
		pos = writeBytesField(result, pos, resp.Data)
	}

	// Handle Err
	if resp.Err != "" {
		flags |= hasErr
		pos = writeBytesField(result, pos, []byte(resp.Err))
	}

	result[1] = flags

	return result, nil
}

func (b binarySerializerImpl) DeserializeResponse(data []byte, resp *common.Response) error {
	// Check minimum size (ReqType + flags)
	if len(data) < 2 {
		return fmt.Errorf("data too short for response header")
	}

	// Read request type and flags
	resp.ReqType = common.RequestType(data[0])
	flags := data[1]
	resp.Success = flags&successSet != 0
	pos := 2

	// Read Key if present
	if flags&hasKey != 0 {
		field, newPos, err := readBytesField(data, pos, "key")
		if err != nil {
			return err
		}
		resp.Key = string(field)
		pos = newPos
	} else {
		resp.Key = ""
	}

	// Read Data if present
	if flags&hasData != 0 {
		field, newPos, err := readBytesField(data, pos, "data")
		if err != nil {
			return err
		}
		resp.Data = copyBytes(resp.Data, field)
		pos = newPos
	} else {
		resp.Data = nil
	}

	// Read Err if present
	if flags&hasErr != 0 {
		field, newPos, err := readBytesField(data, pos, "err")
		if err != nil {
			return err
		}
		resp.Err = string(field)
		pos = newPos
	} else {
		resp.Err = ""
	}

	return nil
}

// --------------------------------------------------------------------------
// Helper Methods
// --------------------------------------------------------------------------

// writeBytesField writes a length-prefixed field at pos and returns the new position
func writeBytesField(dst []byte, pos int, field []byte) int {
	binary.BigEndian.PutUint32(dst[pos:pos+4], uint32(len(field)))
	pos += 4
	copy(dst[pos:pos+len(field)], field)
	return pos + len(field)
}

// readBytesField reads a length-prefixed field at pos.
// The returned slice aliases the input buffer.
func readBytesField(data []byte, pos int, name string) ([]byte, int, error) {
	if pos+4 > len(data) {
		return nil, 0, fmt.Errorf("data too short for %s length", name)
	}
	fieldLen := binary.BigEndian.Uint32(data[pos : pos+4])
	pos += 4

	if pos+int(fieldLen) > len(data) {
		return nil, 0, fmt.Errorf("data too short for %s data", name)
	}
	return data[pos : pos+int(fieldLen)], pos + int(fieldLen), nil
}

// copyBytes copies src into dst, reusing dst's backing array if possible.
// Allocate only if needed.
func copyBytes(dst, src []byte) []byte {
	if dst == nil || cap(dst) < len(src) {
		dst = make([]byte, len(src))
	} else {
		dst = dst[:len(src)]
	}
	copy(dst, src)
	return dst
}
