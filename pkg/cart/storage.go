// pkg/cart/storage.go
package cart

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
)

// ErrNoSnapshot is returned by Storage.Load when nothing has been saved
// under the requested name yet.
var ErrNoSnapshot = errors.New("no snapshot")

// Storage persists cart snapshots by name. Implementations must be safe
// for concurrent use.
type Storage interface {
	Load(name string) ([]byte, error)
	Save(name string, data []byte) error
}

// FileStorage keeps one JSON file per snapshot name inside a directory.
type FileStorage struct {
	dir string
}

func NewFileStorage(dir string) (*FileStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileStorage{dir: dir}, nil
}

func (s *FileStorage) Load(name string) ([]byte, error) {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoSnapshot
		}
		return nil, err
	}
	return data, nil
}

func (s *FileStorage) Save(name string, data []byte) error {
	// Write-then-rename so a crash mid-save never truncates the snapshot.
	tmp := s.path(name) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path(name))
}

func (s *FileStorage) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

// MemoryStorage holds snapshots in a map. Useful for tests.
type MemoryStorage struct {
	mu        sync.RWMutex
	snapshots map[string][]byte
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{snapshots: make(map[string][]byte)}
}

func (s *MemoryStorage) Load(name string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, ok := s.snapshots[name]
	if !ok {
		return nil, ErrNoSnapshot
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (s *MemoryStorage) Save(name string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	buf := make([]byte, len(data))
	copy(buf, data)
	s.snapshots[name] = buf
	return nil
}
