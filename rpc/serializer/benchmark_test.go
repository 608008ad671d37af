package serializer

import (
	"testing"

	"github.com/ValentinKolb/cstore/rpc/common"
)

// benchmarkRequests returns a set of requests for targeted benchmarking
func benchmarkRequests() map[string]common.Request {
	return map[string]common.Request{
		"SmallKeyOnly": {
			ReqType: common.ReqTLoad,
			Key:     "k",
		},
		"MediumKeyOnly": {
			ReqType: common.ReqTLoad,
			Key:     "medium-length-key-for-testing",
		},
		"SmallValue": {
			ReqType: common.ReqTStore,
			Key:     "key",
			Data:    []byte("v"),
		},
		"MediumValue": {
			ReqType: common.ReqTStore,
			Key:     "key",
			Data:    []byte("medium length value for testing serialization"),
		},
		"LargeValue": {
			ReqType: common.ReqTStore,
			Key:     "key",
			Data:    make([]byte, 1024), // 1KB of data
		},
		"VeryLargeValue": {
			ReqType: common.ReqTStore,
			Key:     "key",
			Data:    make([]byte, 1024*16), // 16KB of data
		},
	}
}

// BenchmarkSerializeRequest benchmarks request serialization for all implementations
func BenchmarkSerializeRequest(b *testing.B) {
	for name, factory := range testSerializers {
		serializer := factory()
		for reqName, req := range benchmarkRequests() {
			b.Run(name+"/"+reqName, func(b *testing.B) {
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					if _, err := serializer.SerializeRequest(req); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

// BenchmarkRequestRoundTrip benchmarks a full serialize/deserialize cycle
func BenchmarkRequestRoundTrip(b *testing.B) {
	for name, factory := range testSerializers {
		serializer := factory()
		for reqName, req := range benchmarkRequests() {
			b.Run(name+"/"+reqName, func(b *testing.B) {
				b.ReportAllocs()
				var result common.Request
				for i := 0; i < b.N; i++ {
					data, err := serializer.SerializeRequest(req)
					if err != nil {
						b.Fatal(err)
					}
					if err := serializer.DeserializeRequest(data, &result); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}
