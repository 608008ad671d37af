package testing

import (
	"bytes"
	"fmt"
	"sync"
	"testing"

	"github.com/ValentinKolb/cstore/lib/store"
)

// StoreFactory is a function that creates a new instance of an IStore implementation
type StoreFactory func() store.IStore

// RunStoreTests runs a comprehensive test suite for an IStore implementation.
func RunStoreTests(t *testing.T, name string, factory StoreFactory) {
	t.Run(name, func(t *testing.T) {
		t.Run("LoadMissing", func(t *testing.T) {
			testLoadMissing(t, factory())
		})

		t.Run("Store&Load", func(t *testing.T) {
			testStoreLoad(t, factory())
		})

		t.Run("Overwrite", func(t *testing.T) {
			testOverwrite(t, factory())
		})

		t.Run("Erase", func(t *testing.T) {
			testErase(t, factory())
		})

		t.Run("EraseMissing", func(t *testing.T) {
			testEraseMissing(t, factory())
		})

		t.Run("EmptyKey", func(t *testing.T) {
			testEmptyKey(t, factory())
		})

		t.Run("OpaqueValues", func(t *testing.T) {
			testOpaqueValues(t, factory())
		})

		t.Run("Isolation", func(t *testing.T) {
			testIsolation(t, factory(), factory())
		})

		t.Run("ConcurrentAccess", func(t *testing.T) {
			testConcurrentAccess(t, factory())
		})
	})
}

// --------------------------------------------------------------------------
// Test functions
// --------------------------------------------------------------------------

// For all keys not yet stored, Load reports not-found
func testLoadMissing(t *testing.T, s store.IStore) {
	for _, key := range []string{"key1", "never-stored", "a"} {
		value, found, err := s.Load(key)
		if err != nil {
			t.Fatalf("Load(%q) returned unexpected error: %v", key, err)
		}
		if found {
			t.Errorf("Load(%q) reported found on an empty store", key)
		}
		if value != nil {
			t.Errorf("Load(%q) returned a value on an empty store: %v", key, value)
		}
	}
}

// After Store succeeds, Load returns exactly the stored bytes
func testStoreLoad(t *testing.T, s store.IStore) {
	value := []byte("test-value")
	if err := s.Store("key1", value); err != nil {
		t.Fatalf("Store failed: %v", err)
	}

	loaded, found, err := s.Load("key1")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !found {
		t.Fatal("Load did not find a stored key")
	}
	if !bytes.Equal(loaded, value) {
		t.Errorf("Load returned %v, expected %v", loaded, value)
	}
}

// A later Store with the same key overwrites the entry
func testOverwrite(t *testing.T, s store.IStore) {
	if err := s.Store("key1", []byte("v1")); err != nil {
		t.Fatalf("Store failed: %v", err)
	}
	if err := s.Store("key1", []byte("v2")); err != nil {
		t.Fatalf("Store failed: %v", err)
	}

	loaded, found, err := s.Load("key1")
	if err != nil || !found {
		t.Fatalf("Load failed after overwrite: found=%t err=%v", found, err)
	}
	if !bytes.Equal(loaded, []byte("v2")) {
		t.Errorf("Load returned %q, expected %q", loaded, "v2")
	}
}

// Erase on an existing key reports found and removes the entry
func testErase(t *testing.T, s store.IStore) {
	if err := s.Store("key1", []byte("v")); err != nil {
		t.Fatalf("Store failed: %v", err)
	}

	found, err := s.Erase("key1")
	if err != nil {
		t.Fatalf("Erase failed: %v", err)
	}
	if !found {
		t.Error("Erase did not find an existing key")
	}

	_, found, err = s.Load("key1")
	if err != nil {
		t.Fatalf("Load failed after erase: %v", err)
	}
	if found {
		t.Error("Load found a key after it was erased")
	}
}

// Erase on a missing key reports not-found and has no observable effect
func testEraseMissing(t *testing.T, s store.IStore) {
	if err := s.Store("other", []byte("v")); err != nil {
		t.Fatalf("Store failed: %v", err)
	}

	found, err := s.Erase("key1")
	if err != nil {
		t.Fatalf("Erase failed: %v", err)
	}
	if found {
		t.Error("Erase reported found for a missing key")
	}

	// The unrelated entry must be untouched
	if _, found, _ := s.Load("other"); !found {
		t.Error("Erase of a missing key removed an unrelated entry")
	}
}

// The empty key is rejected with a typed error on all operations
func testEmptyKey(t *testing.T, s store.IStore) {
	if _, _, err := s.Load(""); err == nil {
		t.Error("Load accepted an empty key")
	}
	if err := s.Store("", []byte("v")); err == nil {
		t.Error("Store accepted an empty key")
	}
	if _, err := s.Erase(""); err == nil {
		t.Error("Erase accepted an empty key")
	}
}

// Values are opaque: arbitrary binary data survives byte for byte
func testOpaqueValues(t *testing.T, s store.IStore) {
	values := map[string][]byte{
		"nil-bytes":  {0x00, 0x00, 0x00},
		"high-bytes": {0xff, 0xfe, 0x80},
		"mixed":      {0x00, 'a', 0xff, '\n', 0x00},
		"empty":      {},
	}

	for key, value := range values {
		if err := s.Store(key, value); err != nil {
			t.Fatalf("Store(%q) failed: %v", key, err)
		}
		loaded, found, err := s.Load(key)
		if err != nil || !found {
			t.Fatalf("Load(%q) failed: found=%t err=%v", key, found, err)
		}
		if !bytes.Equal(loaded, value) {
			t.Errorf("Load(%q) returned %v, expected %v", key, loaded, value)
		}
	}
}

// Independent store instances never share state
func testIsolation(t *testing.T, a, b store.IStore) {
	if err := a.Store("key1", []byte("v")); err != nil {
		t.Fatalf("Store failed: %v", err)
	}
	if _, found, _ := b.Load("key1"); found {
		t.Error("entry stored in one instance is visible in another")
	}
}

// Concurrent connections may dispatch into the same engine
func testConcurrentAccess(t *testing.T, s store.IStore) {
	const workers = 8
	const keysPerWorker = 100

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < keysPerWorker; i++ {
				key := fmt.Sprintf("w%d-k%d", w, i)
				if err := s.Store(key, []byte(key)); err != nil {
					t.Errorf("Store(%q) failed: %v", key, err)
					return
				}
			}
		}(w)
	}
	wg.Wait()

	for w := 0; w < workers; w++ {
		for i := 0; i < keysPerWorker; i++ {
			key := fmt.Sprintf("w%d-k%d", w, i)
			value, found, err := s.Load(key)
			if err != nil || !found {
				t.Fatalf("Load(%q) failed: found=%t err=%v", key, found, err)
			}
			if !bytes.Equal(value, []byte(key)) {
				t.Errorf("Load(%q) returned %q", key, value)
			}
		}
	}
}
