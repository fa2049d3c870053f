package cart

import (
	"os"
	"path/filepath"
	"sync"
)

// Store is the persistence strategy injected into a Cart. Load returns nil
// data when nothing was persisted yet.
type Store interface {
	Load(key string) ([]byte, error)
	Save(key string, data []byte) error
}

// MemoryStore keeps persisted state in memory. Useful for tests and for
// carts that only live for one session.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

// Load returns the stored bytes for key.
func (s *MemoryStore) Load(key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v := s.data[key]
	out := make([]byte, len(v))
	copy(out, v)

	return out, nil
}

// Save stores data under key.
func (s *MemoryStore) Save(key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := make([]byte, len(data))
	copy(v, data)
	s.data[key] = v

	return nil
}

// FileStore persists state as JSON files in a directory.
type FileStore struct {
	dir string
}

// NewFileStore creates a store writing to the given directory.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// Load reads the file for key. A missing file reads as empty state.
func (s *FileStore) Load(key string) ([]byte, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}

		return nil, err
	}

	return data, nil
}

// Save writes data to the file for key, creating the directory as needed.
func (s *FileStore) Save(key string, data []byte) error {
	if err := os.MkdirAll(s.dir, 0o750); err != nil { //nolint: mnd
		return err
	}

	return os.WriteFile(s.path(key), data, 0o600) //nolint: mnd
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
