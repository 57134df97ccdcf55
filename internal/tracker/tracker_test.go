package tracker

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patrickrbarry/lifetracker/internal/storage"
	"github.com/patrickrbarry/lifetracker/pkg/types"
)

func openTest(t *testing.T, store *storage.MemoryStore) *Tracker {
	t.Helper()
	tr, err := Open(store, nil)
	require.NoError(t, err)
	return tr
}

func TestOpenSeedsBaselineOnFirstRun(t *testing.T) {
	store := storage.NewMemoryStore()
	tr := openTest(t, store)

	_, ok := tr.Taxonomy().Category("gym")
	assert.True(t, ok)
	assert.Equal(t, 1, store.Saves[storage.KeyTaxonomy], "baseline persisted immediately")
	assert.Zero(t, store.Saves[storage.KeyObservations], "observations not re-persisted by load")

	t.Run("second open is a no-op", func(t *testing.T) {
		openTest(t, store)
		assert.Equal(t, 1, store.Saves[storage.KeyTaxonomy], "no change, no save")
	})
}

func TestOpenCorruptBlobsFallBack(t *testing.T) {
	store := storage.NewMemoryStore()
	store.Blobs[storage.KeyTaxonomy] = []byte(`{{not json`)
	store.Blobs[storage.KeyObservations] = []byte(`also broken`)

	tr := openTest(t, store)
	_, ok := tr.Taxonomy().Category("gym")
	assert.True(t, ok, "corrupt taxonomy falls back to baseline")
	assert.True(t, tr.Observations().IsEmpty(), "corrupt observations fall back to empty")
}

func TestMutationsPersist(t *testing.T) {
	store := storage.NewMemoryStore()
	tr := openTest(t, store)
	saves := store.Saves[storage.KeyTaxonomy]

	require.NoError(t, tr.AddCategory("Sleep"))
	assert.Equal(t, saves+1, store.Saves[storage.KeyTaxonomy])

	require.NoError(t, tr.AddActivity("sleep", "Nap", types.KindBoolean, types.Params{}))
	assert.Equal(t, saves+2, store.Saves[storage.KeyTaxonomy])

	day := types.DateKey("2024-03-10")
	require.NoError(t, tr.Record(day, "sleep", "nap", types.Bool(true)))
	assert.Equal(t, 1, store.Saves[storage.KeyObservations])
	assert.Equal(t, saves+2, store.Saves[storage.KeyTaxonomy],
		"recording does not re-persist the taxonomy")

	// The persisted blob reflects the mutation.
	var tax types.Taxonomy
	require.NoError(t, json.Unmarshal(store.Blobs[storage.KeyTaxonomy], &tax))
	_, ok := tax.Category("sleep")
	assert.True(t, ok)
}

func TestRejectedMutationDoesNotPersist(t *testing.T) {
	store := storage.NewMemoryStore()
	tr := openTest(t, store)
	saves := store.Saves[storage.KeyTaxonomy]

	assert.ErrorIs(t, tr.AddCategory("Gym"), types.ErrDuplicateID)
	assert.ErrorIs(t, tr.AddCategory("  "), types.ErrEmptyName)
	assert.ErrorIs(t, tr.Record(types.DateKey("2024-01-01"), "nope", "x", types.Bool(true)), types.ErrUnknownCategory)
	assert.ErrorIs(t, tr.Record(types.DateKey("2024-01-01"), "gym", "x", types.Bool(true)), types.ErrUnknownActivity)

	assert.Equal(t, saves, store.Saves[storage.KeyTaxonomy])
	assert.Zero(t, store.Saves[storage.KeyObservations])
}

func TestSaveFailureKeepsLastKnownGood(t *testing.T) {
	store := storage.NewMemoryStore()
	tr := openTest(t, store)

	store.SaveErr = assert.AnError

	err := tr.AddCategory("Sleep")
	assert.ErrorIs(t, err, assert.AnError)
	_, ok := tr.Taxonomy().Category("sleep")
	assert.False(t, ok, "in-memory taxonomy stays at last-known-good")

	day := types.DateKey("2024-03-10")
	err = tr.Record(day, "gym", "pushups", types.Int(2))
	assert.ErrorIs(t, err, assert.AnError)
	assert.True(t, tr.Observation(day, "gym", "pushups").IsAbsent(),
		"in-memory observations stay at last-known-good")

	store.SaveErr = nil
	require.NoError(t, tr.AddCategory("Sleep"))
	_, ok = tr.Taxonomy().Category("sleep")
	assert.True(t, ok)
}

func TestExtendedOptionRoundTrip(t *testing.T) {
	store := storage.NewMemoryStore()
	tr := openTest(t, store)
	day := types.DateKey("2024-03-10")

	require.NoError(t, tr.ExtendOptions("reading", "content", "Book: New"))
	require.NoError(t, tr.Record(day, "reading", "content", types.String("Book: New")))

	assert.Equal(t, types.String("Book: New"), tr.Observation(day, "reading", "content"))

	// Survives a full persistence cycle.
	again := openTest(t, store)
	assert.Equal(t, types.String("Book: New"), again.Observation(day, "reading", "content"))
	act, ok := again.Taxonomy().Activity("reading", "content")
	require.True(t, ok)
	assert.Contains(t, act.Params.Options, "Book: New")
	assert.Contains(t, act.Params.Options, "Book: Example Title",
		"existing options survive extension")
}

func TestObservationRoundTripAllKinds(t *testing.T) {
	store := storage.NewMemoryStore()
	tr := openTest(t, store)
	day := types.DateKey("2024-03-10")

	require.NoError(t, tr.Record(day, "gym", "pushups", types.Int(3)))
	require.NoError(t, tr.Record(day, "intake", "meds", types.Bool(false)))
	require.NoError(t, tr.Record(day, "walks", "walks", types.String("dish")))

	again := openTest(t, store)
	assert.Equal(t, types.Int(3), again.Observation(day, "gym", "pushups"))
	assert.Equal(t, types.Bool(false), again.Observation(day, "intake", "meds"))
	assert.Equal(t, types.String("dish"), again.Observation(day, "walks", "walks"))
	assert.True(t, again.Observation(day, "games", "bird").IsAbsent())
}

func TestHistoryAndExportThroughTracker(t *testing.T) {
	store := storage.NewMemoryStore()
	tr := openTest(t, store)

	assert.Empty(t, tr.History(7), "empty store yields the empty aggregation")

	day := types.DateKey("2024-03-10")
	require.NoError(t, tr.Record(day, "gym", "pushups", types.Int(2)))

	hist := tr.History(7)
	require.NotEmpty(t, hist)
	assert.Equal(t, "gym", hist[0].CategoryID)

	unified := tr.Unified(7)
	require.NotEmpty(t, unified)
	assert.Equal(t, "Gym: Pushups", unified[0].FullName)

	var buf bytes.Buffer
	require.NoError(t, tr.ExportCSV(&buf))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "Date,"))
	assert.True(t, strings.HasPrefix(lines[1], "2024-03-10,"))
}
