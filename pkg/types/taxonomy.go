package types

import "strings"

// Category groups related activities under a display name. IDs are slugs,
// unique across the whole taxonomy, and immutable once created.
type Category struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	IconRef    string     `json:"icon,omitempty"`
	Activities []Activity `json:"activities"`
}

// clone returns a deep copy of the category.
func (c Category) clone() Category {
	cp := c
	cp.Activities = make([]Activity, len(c.Activities))
	for i, a := range c.Activities {
		cp.Activities[i] = a.clone()
	}
	return cp
}

// Taxonomy is the ordered set of categories the user tracks. It is a pure
// value: every mutation returns a new Taxonomy and leaves the receiver
// intact, so "current" and "persisted" snapshots never alias.
type Taxonomy struct {
	Categories []Category `json:"categories"`
}

// Slugify derives a stable identifier from a display name: lowercased, with
// every run of whitespace collapsed to a single underscore. Deterministic
// and side-effect free; names differing only in case or whitespace map to
// the same slug.
func Slugify(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "_")
}

// Category returns the category with the given id.
func (t Taxonomy) Category(id string) (Category, bool) {
	for _, c := range t.Categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// Activity returns the activity with the given id within the given category.
func (t Taxonomy) Activity(categoryID, activityID string) (Activity, bool) {
	c, ok := t.Category(categoryID)
	if !ok {
		return Activity{}, false
	}
	for _, a := range c.Activities {
		if a.ID == activityID {
			return a, true
		}
	}
	return Activity{}, false
}

// AddCategory appends a new empty category named name. The id is the slug of
// name. Returns ErrEmptyName if the name slugs to nothing and ErrDuplicateID
// if a category with that id already exists; in both cases the returned
// taxonomy is the receiver, unchanged.
func (t Taxonomy) AddCategory(name string) (Taxonomy, error) {
	id := Slugify(name)
	if id == "" {
		return t, ErrEmptyName
	}
	if _, ok := t.Category(id); ok {
		return t, ErrDuplicateID
	}

	out := t.clone()
	out.Categories = append(out.Categories, Category{
		ID:         id,
		Name:       strings.TrimSpace(name),
		Activities: []Activity{},
	})
	return out, nil
}

// AddActivity appends a new activity to the category with categoryID.
// Returns ErrUnknownCategory if the category does not exist, ErrDuplicateID
// if the slug of name collides within that category, and the construction
// errors of NewActivity for bad names, kinds or params. On error the
// returned taxonomy is the receiver, unchanged.
func (t Taxonomy) AddActivity(categoryID, name string, kind InputKind, params Params) (Taxonomy, error) {
	idx := t.categoryIndex(categoryID)
	if idx < 0 {
		return t, ErrUnknownCategory
	}

	act, err := NewActivity(name, kind, params)
	if err != nil {
		return t, err
	}
	for _, a := range t.Categories[idx].Activities {
		if a.ID == act.ID {
			return t, ErrDuplicateID
		}
	}

	out := t.clone()
	out.Categories[idx].Activities = append(out.Categories[idx].Activities, act)
	return out, nil
}

// ExtendChoiceOptions appends option to the option list of the addressed
// activity. Options are append-only: previously stored observation strings
// stay valid after extension. Blank options are rejected with ErrBlankOption
// and an option already in the list is rejected with ErrDuplicateOption;
// both leave the taxonomy unchanged. Only single-choice and
// extensible-choice activities carry options; other kinds return
// ErrKindMismatch.
func (t Taxonomy) ExtendChoiceOptions(categoryID, activityID, option string) (Taxonomy, error) {
	option = strings.TrimSpace(option)
	if option == "" {
		return t, ErrBlankOption
	}

	ci := t.categoryIndex(categoryID)
	if ci < 0 {
		return t, ErrUnknownCategory
	}
	ai := -1
	for i, a := range t.Categories[ci].Activities {
		if a.ID == activityID {
			ai = i
			break
		}
	}
	if ai < 0 {
		return t, ErrUnknownActivity
	}

	act := t.Categories[ci].Activities[ai]
	if act.Kind != KindSingleChoice && act.Kind != KindExtensibleChoice {
		return t, ErrKindMismatch
	}
	if act.HasOption(option) {
		return t, ErrDuplicateOption
	}

	out := t.clone()
	target := &out.Categories[ci].Activities[ai]
	target.Params.Options = append(target.Params.Options, option)
	return out, nil
}

// clone returns a deep copy of the taxonomy.
func (t Taxonomy) clone() Taxonomy {
	out := Taxonomy{Categories: make([]Category, len(t.Categories))}
	for i, c := range t.Categories {
		out.Categories[i] = c.clone()
	}
	return out
}

func (t Taxonomy) categoryIndex(id string) int {
	for i, c := range t.Categories {
		if c.ID == id {
			return i
		}
	}
	return -1
}
