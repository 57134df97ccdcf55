package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// JSONDirStore keeps each blob as <key>.json inside a directory. Saves are
// atomic: temp file, fsync, rename, so a crash mid-write leaves the
// previous blob intact.
type JSONDirStore struct {
	dir string
}

// OpenJSONDir opens a JSON file store rooted at dir. The directory must
// already exist.
func OpenJSONDir(dir string) (*JSONDirStore, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("open json store: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("open json store: %s is not a directory", dir)
	}
	return &JSONDirStore{dir: dir}, nil
}

// validKey rejects keys that would escape the store directory.
func validKey(key string) error {
	if key == "" || strings.ContainsAny(key, `/\.`) {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return nil
}

func (s *JSONDirStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Load reads the blob stored under key, or ok=false if no file exists.
func (s *JSONDirStore) Load(key string) ([]byte, bool, error) {
	if err := validKey(key); err != nil {
		return nil, false, err
	}
	blob, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("load %q: %w", key, err)
	}
	return blob, true, nil
}

// Save writes the blob under key using the temp-file, fsync, rename
// pattern.
func (s *JSONDirStore) Save(key string, blob []byte) error {
	if err := validKey(key); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, "."+key+"-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(blob); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write blob: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("sync blob: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.path(key)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("rename into place: %w", err)
	}
	return nil
}

// Close is a no-op; files are closed after every operation.
func (s *JSONDirStore) Close() error {
	return nil
}
