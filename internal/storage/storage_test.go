package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{name: "sqlite ok", cfg: Config{Backend: BackendSQLite}},
		{name: "json ok", cfg: Config{Backend: BackendJSON}},
		{name: "empty backend", cfg: Config{}, wantErr: ErrBackendEmpty},
		{name: "unknown backend", cfg: Config{Backend: "redis"}, wantErr: ErrBackendUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

// storeRoundTrip exercises the Store contract shared by every backend.
func storeRoundTrip(t *testing.T, s Store) {
	t.Helper()

	_, ok, err := s.Load(KeyTaxonomy)
	require.NoError(t, err)
	assert.False(t, ok, "unsaved key loads as absent, not as an error")

	blob := []byte(`{"categories":[]}`)
	require.NoError(t, s.Save(KeyTaxonomy, blob))

	got, ok, err := s.Load(KeyTaxonomy)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, blob, got)

	// Overwrite.
	next := []byte(`{"categories":[{"id":"gym"}]}`)
	require.NoError(t, s.Save(KeyTaxonomy, next))
	got, ok, err = s.Load(KeyTaxonomy)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, next, got)

	// The two logical keys are independent.
	_, ok, err = s.Load(KeyObservations)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSQLiteStore(t *testing.T) {
	s, err := OpenSQLite(t.TempDir())
	require.NoError(t, err)
	defer s.Close()

	storeRoundTrip(t, s)
}

func TestSQLiteStoreSurvivesReopen(t *testing.T) {
	dir := t.TempDir()

	s, err := OpenSQLite(dir)
	require.NoError(t, err)
	require.NoError(t, s.Save(KeyTaxonomy, []byte(`{}`)))
	require.NoError(t, s.Close())

	s, err = OpenSQLite(dir)
	require.NoError(t, err)
	defer s.Close()
	got, ok, err := s.Load(KeyTaxonomy)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte(`{}`), got)
}

func TestJSONDirStore(t *testing.T) {
	s, err := OpenJSONDir(t.TempDir())
	require.NoError(t, err)
	defer s.Close()

	storeRoundTrip(t, s)
}

func TestJSONDirStoreRejectsPathKeys(t *testing.T) {
	s, err := OpenJSONDir(t.TempDir())
	require.NoError(t, err)

	for _, key := range []string{"", "../escape", "a/b", `a\b`, "dotted.key"} {
		_, _, err := s.Load(key)
		assert.ErrorIs(t, err, ErrInvalidKey, "key %q", key)
		assert.ErrorIs(t, s.Save(key, nil), ErrInvalidKey, "key %q", key)
	}
}

func TestOpenFactory(t *testing.T) {
	t.Run("creates data dir", func(t *testing.T) {
		dir := t.TempDir() + "/nested/data"
		s, err := Open(Config{Backend: BackendJSON, DataDir: dir})
		require.NoError(t, err)
		defer s.Close()
		require.NoError(t, s.Save(KeyTaxonomy, []byte(`{}`)))
	})

	t.Run("rejects bad config", func(t *testing.T) {
		_, err := Open(Config{Backend: "redis"})
		assert.ErrorIs(t, err, ErrBackendUnknown)
	})
}

func TestMemoryStoreFailureInjection(t *testing.T) {
	s := NewMemoryStore()
	require.NoError(t, s.Save(KeyTaxonomy, []byte(`{}`)))
	assert.Equal(t, 1, s.Saves[KeyTaxonomy])

	s.SaveErr = assert.AnError
	assert.ErrorIs(t, s.Save(KeyTaxonomy, []byte(`x`)), assert.AnError)
	assert.Equal(t, []byte(`{}`), s.Blobs[KeyTaxonomy], "failed save leaves the blob alone")
}
