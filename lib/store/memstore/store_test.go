package memstore

import (
	"bytes"
	"testing"

	"github.com/ValentinKolb/cstore/lib/store"
	storetesting "github.com/ValentinKolb/cstore/lib/store/testing"
)

func Test(t *testing.T) {
	storetesting.RunStoreTests(t, "MemStore", func() store.IStore {
		return NewMemStore()
	})
}

// Mutating the caller's slice after Store must not change the stored entry
func TestValueIsCopied(t *testing.T) {
	s := NewMemStore()

	value := []byte("original")
	if err := s.Store("key1", value); err != nil {
		t.Fatalf("Store failed: %v", err)
	}

	value[0] = 'X'

	loaded, found, err := s.Load("key1")
	if err != nil || !found {
		t.Fatalf("Load failed: found=%t err=%v", found, err)
	}
	if !bytes.Equal(loaded, []byte("original")) {
		t.Errorf("stored value changed after caller mutation: %q", loaded)
	}
}
