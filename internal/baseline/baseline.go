// Package baseline holds the built-in taxonomy shipped with each release
// and the migration that reconciles a persisted taxonomy with it.
package baseline

import (
	"strings"

	"github.com/patrickrbarry/lifetracker/pkg/types"
)

// Removal identifies a category deprecated as of the current release.
// A persisted category matches when its id equals ID or its name equals
// Name case-insensitively. The name match can collide with a user-renamed
// category; see DESIGN.md before changing it.
type Removal struct {
	ID   string
	Name string
}

// Baseline is the built-in taxonomy of one release plus the deltas against
// earlier releases that Migrate applies.
type Baseline struct {
	Categories []types.Category

	// Introduced lists category ids added in the current release. Migrate
	// appends these (with their full baseline activity set) to persisted
	// taxonomies that predate them. Ids present since the first release are
	// deliberately not listed: a user who removed one keeps it removed.
	Introduced []string

	// Removed lists categories deprecated as of the current release.
	Removed []Removal
}

// Taxonomy returns a deep copy of the built-in categories, detached from
// the package-level definition.
func (b Baseline) Taxonomy() types.Taxonomy {
	t := types.Taxonomy{Categories: make([]types.Category, len(b.Categories))}
	for i, c := range b.Categories {
		cp := c
		cp.Activities = make([]types.Activity, len(c.Activities))
		for j, a := range c.Activities {
			ap := a
			ap.Params.Options = append([]string(nil), a.Params.Options...)
			cp.Activities[j] = ap
		}
		t.Categories[i] = cp
	}
	return t
}

// category returns the baseline category with the given id.
func (b Baseline) category(id string) (types.Category, bool) {
	for _, c := range b.Categories {
		if c.ID == id {
			return c, true
		}
	}
	return types.Category{}, false
}

// Migrate reconciles a persisted taxonomy with the baseline and reports
// whether anything changed; the caller persists the result only when it
// did. An absent or empty persisted taxonomy is a first run and yields the
// full baseline. Otherwise deprecated baseline categories are dropped,
// newly introduced ones are appended at the end in baseline order, and
// everything else — user-added categories and activities in particular —
// is left exactly as persisted. Migrate is idempotent.
func Migrate(persisted types.Taxonomy, b Baseline) (types.Taxonomy, bool) {
	if len(persisted.Categories) == 0 {
		return b.Taxonomy(), true
	}

	changed := false
	kept := make([]types.Category, 0, len(persisted.Categories))
	for _, c := range persisted.Categories {
		if b.isRemoved(c) {
			changed = true
			continue
		}
		kept = append(kept, c)
	}

	out := types.Taxonomy{Categories: kept}
	for _, id := range b.Introduced {
		if _, ok := out.Category(id); ok {
			continue
		}
		bc, ok := b.category(id)
		if !ok {
			continue
		}
		single := Baseline{Categories: []types.Category{bc}}
		out.Categories = append(out.Categories, single.Taxonomy().Categories...)
		changed = true
	}

	return out, changed
}

// isRemoved reports whether c matches an entry of the removal list.
func (b Baseline) isRemoved(c types.Category) bool {
	for _, r := range b.Removed {
		if r.ID != "" && c.ID == r.ID {
			return true
		}
		if r.Name != "" && strings.EqualFold(c.Name, r.Name) {
			return true
		}
	}
	return false
}
