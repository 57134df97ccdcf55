// Package tracker is the service layer over the pure core: it owns the
// in-memory taxonomy and observation store, runs the baseline migration at
// load time, and persists after every mutation. A mutation whose save
// fails is not committed; the in-memory state stays at the last
// successfully persisted value.
package tracker

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/patrickrbarry/lifetracker/internal/baseline"
	"github.com/patrickrbarry/lifetracker/internal/export"
	"github.com/patrickrbarry/lifetracker/internal/log"
	"github.com/patrickrbarry/lifetracker/internal/series"
	"github.com/patrickrbarry/lifetracker/internal/storage"
	"github.com/patrickrbarry/lifetracker/pkg/types"
)

// Tracker holds the active taxonomy and observation store for one user.
// It assumes a single active editor; concurrent mutation is out of scope.
type Tracker struct {
	store        storage.Store
	log          *log.Logger
	taxonomy     types.Taxonomy
	observations types.ObservationStore
}

// Open loads both persisted blobs from store, migrates the taxonomy
// against the current baseline, and persists the migration result when it
// changed anything. A corrupt or unreadable blob is logged and treated the
// same as no persisted data: the taxonomy falls back to the baseline, the
// observations to an empty store. Only a failing save aborts Open.
func Open(store storage.Store, logger *log.Logger) (*Tracker, error) {
	if logger == nil {
		logger = log.Discard()
	}
	t := &Tracker{
		store: store,
		log:   logger.WithComponent("tracker"),
	}

	persisted := t.loadTaxonomy()
	migrated, changed := baseline.Migrate(persisted, baseline.Current())
	t.taxonomy = migrated
	if changed {
		if err := t.persistTaxonomy(); err != nil {
			return nil, fmt.Errorf("persist migrated taxonomy: %w", err)
		}
		t.log.Info("taxonomy migrated",
			"categories", len(migrated.Categories),
			"first_run", len(persisted.Categories) == 0)
	}

	t.observations = t.loadObservations()
	return t, nil
}

// loadTaxonomy reads the persisted taxonomy, returning the zero taxonomy
// on any failure so Migrate treats it as a first run.
func (t *Tracker) loadTaxonomy() types.Taxonomy {
	var tax types.Taxonomy
	blob, ok, err := t.store.Load(storage.KeyTaxonomy)
	if err != nil {
		t.log.Warn("taxonomy unreadable, falling back to baseline", "error", err)
		return tax
	}
	if !ok {
		return tax
	}
	if err := json.Unmarshal(blob, &tax); err != nil {
		t.log.Warn("taxonomy blob corrupt, falling back to baseline", "error", err)
		return types.Taxonomy{}
	}
	return tax
}

// loadObservations reads the persisted observation store, returning an
// empty store on any failure.
func (t *Tracker) loadObservations() types.ObservationStore {
	obs := types.NewObservationStore()
	blob, ok, err := t.store.Load(storage.KeyObservations)
	if err != nil {
		t.log.Warn("observations unreadable, starting empty", "error", err)
		return obs
	}
	if !ok {
		return obs
	}
	if err := json.Unmarshal(blob, &obs); err != nil {
		t.log.Warn("observations blob corrupt, starting empty", "error", err)
		return types.NewObservationStore()
	}
	if obs.Days == nil {
		obs.Days = map[types.DateKey]map[string]types.Value{}
	}
	return obs
}

func (t *Tracker) persistTaxonomy() error {
	blob, err := json.Marshal(t.taxonomy)
	if err != nil {
		return fmt.Errorf("encode taxonomy: %w", err)
	}
	return t.store.Save(storage.KeyTaxonomy, blob)
}

func (t *Tracker) persistObservations() error {
	blob, err := json.Marshal(t.observations)
	if err != nil {
		return fmt.Errorf("encode observations: %w", err)
	}
	return t.store.Save(storage.KeyObservations, blob)
}

// commitTaxonomy persists next and only then replaces the in-memory
// taxonomy.
func (t *Tracker) commitTaxonomy(next types.Taxonomy) error {
	prev := t.taxonomy
	t.taxonomy = next
	if err := t.persistTaxonomy(); err != nil {
		t.taxonomy = prev
		return err
	}
	return nil
}

// Taxonomy returns the active taxonomy.
func (t *Tracker) Taxonomy() types.Taxonomy {
	return t.taxonomy
}

// Observations returns the active observation store.
func (t *Tracker) Observations() types.ObservationStore {
	return t.observations
}

// AddCategory creates a new category and persists the taxonomy.
func (t *Tracker) AddCategory(name string) error {
	next, err := t.taxonomy.AddCategory(name)
	if err != nil {
		return err
	}
	return t.commitTaxonomy(next)
}

// AddActivity creates a new activity under categoryID and persists the
// taxonomy.
func (t *Tracker) AddActivity(categoryID, name string, kind types.InputKind, params types.Params) error {
	next, err := t.taxonomy.AddActivity(categoryID, name, kind, params)
	if err != nil {
		return err
	}
	return t.commitTaxonomy(next)
}

// ExtendOptions appends an option to a choice activity and persists the
// taxonomy.
func (t *Tracker) ExtendOptions(categoryID, activityID, option string) error {
	next, err := t.taxonomy.ExtendChoiceOptions(categoryID, activityID, option)
	if err != nil {
		return err
	}
	return t.commitTaxonomy(next)
}

// Record stores an observation for one activity on one day and persists
// the store. The addressed activity must exist; the value shape is only
// checked advisorily (a mismatch is logged, not rejected — the schema may
// have changed kinds since the value was entered elsewhere).
func (t *Tracker) Record(date types.DateKey, categoryID, activityID string, v types.Value) error {
	if _, ok := t.taxonomy.Category(categoryID); !ok {
		return types.ErrUnknownCategory
	}
	act, ok := t.taxonomy.Activity(categoryID, activityID)
	if !ok {
		return types.ErrUnknownActivity
	}
	if !valueFitsKind(act.Kind, v) {
		t.log.Warn("observation shape does not match activity kind",
			"category", categoryID, "activity", activityID,
			"kind", string(act.Kind), "value_kind", string(v.Kind()))
	}

	prev := t.observations
	t.observations = t.observations.Set(date, categoryID, activityID, v)
	if err := t.persistObservations(); err != nil {
		t.observations = prev
		return err
	}
	return nil
}

// Observation returns the value recorded for an activity on a day, absent
// when unrecorded.
func (t *Tracker) Observation(date types.DateKey, categoryID, activityID string) types.Value {
	return t.observations.Get(date, categoryID, activityID)
}

// History returns the per-category aggregation over the given window.
func (t *Tracker) History(window int) []series.CategoryHistory {
	return series.History(t.taxonomy, t.observations, window)
}

// Unified returns the flattened dashboard series over the given window.
func (t *Tracker) Unified(window int) []series.Series {
	return series.Unified(t.taxonomy, t.observations, window)
}

// ExportCSV writes the full export table to w.
func (t *Tracker) ExportCSV(w io.Writer) error {
	return export.Write(w, t.taxonomy, t.observations)
}

// valueFitsKind reports whether the stored value shape matches what the
// activity's input kind produces. Absent always fits: it is how an entry
// looks before anything was recorded.
func valueFitsKind(kind types.InputKind, v types.Value) bool {
	switch v.Kind() {
	case types.ValueAbsent:
		return true
	case types.ValueBool:
		return kind == types.KindBoolean
	case types.ValueInt:
		return kind == types.KindBoundedCounter
	case types.ValueString:
		return kind == types.KindSingleChoice ||
			kind == types.KindFreeChoice ||
			kind == types.KindExtensibleChoice
	case types.ValueFlagText:
		return kind == types.KindMultiChoiceText
	}
	return false
}
