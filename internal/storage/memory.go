package storage

// MemoryStore is an in-memory Store for tests. SaveErr and LoadErr, when
// set, are returned by every Save/Load to simulate a failing substrate.
type MemoryStore struct {
	Blobs   map[string][]byte
	SaveErr error
	LoadErr error

	// Saves counts successful Save calls per key, so tests can assert
	// persistence-after-mutation.
	Saves map[string]int
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		Blobs: map[string][]byte{},
		Saves: map[string]int{},
	}
}

func (s *MemoryStore) Load(key string) ([]byte, bool, error) {
	if s.LoadErr != nil {
		return nil, false, s.LoadErr
	}
	blob, ok := s.Blobs[key]
	return blob, ok, nil
}

func (s *MemoryStore) Save(key string, blob []byte) error {
	if s.SaveErr != nil {
		return s.SaveErr
	}
	cp := make([]byte, len(blob))
	copy(cp, blob)
	s.Blobs[key] = cp
	s.Saves[key]++
	return nil
}

func (s *MemoryStore) Close() error {
	return nil
}
