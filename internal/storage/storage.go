// Package storage defines the persistence collaborator the tracker core
// talks to: keyed, self-describing blobs behind Load and Save. The core
// uses exactly two keys, one for the taxonomy and one for the observation
// store, persisted independently of each other.
package storage

import (
	"errors"
	"fmt"
	"os"
)

// Logical blob keys used by the tracker.
const (
	KeyTaxonomy     = "taxonomy"
	KeyObservations = "observations"
)

// Supported backend names.
const (
	BackendSQLite = "sqlite"
	BackendJSON   = "json"
)

// Store persists keyed blobs. Load reports ok=false when the key has never
// been saved; that is not an error. Implementations are free to be
// durable however they like as long as a successful Save survives a
// process restart.
type Store interface {
	Load(key string) (blob []byte, ok bool, err error)
	Save(key string, blob []byte) error
	Close() error
}

// Config selects and parameterizes a backend.
type Config struct {
	Backend string `json:"backend" yaml:"backend"`
	DataDir string `json:"data_dir" yaml:"data_dir"`
}

// Config validation errors.
var (
	ErrBackendEmpty   = errors.New("backend must not be empty")
	ErrBackendUnknown = errors.New("unknown backend")
	ErrInvalidKey     = errors.New("invalid blob key")
)

// knownBackends lists the backends that Validate accepts.
var knownBackends = map[string]bool{
	BackendSQLite: true,
	BackendJSON:   true,
}

// Validate checks that the Config is well-formed.
func (c Config) Validate() error {
	if c.Backend == "" {
		return ErrBackendEmpty
	}
	if !knownBackends[c.Backend] {
		return fmt.Errorf("%w: %q", ErrBackendUnknown, c.Backend)
	}
	return nil
}

// Open creates the data directory if needed and opens the configured
// backend in it.
func Open(c Config) (Store, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	dataDir := c.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	switch c.Backend {
	case BackendSQLite:
		return OpenSQLite(dataDir)
	default:
		return OpenJSONDir(dataDir)
	}
}
