package memstore

import (
	"github.com/ValentinKolb/cstore/lib/store"
	"github.com/puzpuzpuz/xsync/v3"
)

// storeImpl implements store.IStore with an in-memory concurrent map.
// Values are stored as given, byte for byte, and never inspected.
type storeImpl struct {
	entries *xsync.MapOf[string, []byte]
}

// NewMemStore creates a new in-memory store instance. The store starts
// empty and loses all entries when the process exits.
//
// Every call returns an independent instance, so multiple stores (e.g. one
// per test) never share state.
func NewMemStore() store.IStore {
	return &storeImpl{
		entries: xsync.NewMapOf[string, []byte](),
	}
}

// --------------------------------------------------------------------------
// Interface Methods (docu see store/interface.go)
// --------------------------------------------------------------------------

func (s *storeImpl) Load(key string) ([]byte, bool, error) {
	if key == "" {
		return nil, false, store.NewError(store.RetCInvalidKey, "key must not be empty")
	}
	value, found := s.entries.Load(key)
	return value, found, nil
}

func (s *storeImpl) Store(key string, value []byte) error {
	if key == "" {
		return store.NewError(store.RetCInvalidKey, "key must not be empty")
	}

	// Copy the value so later mutations of the caller's slice
	// cannot change the stored entry
	held := make([]byte, len(value))
	copy(held, value)

	s.entries.Store(key, held)
	return nil
}

func (s *storeImpl) Erase(key string) (bool, error) {
	if key == "" {
		return false, store.NewError(store.RetCInvalidKey, "key must not be empty")
	}
	_, found := s.entries.LoadAndDelete(key)
	return found, nil
}
