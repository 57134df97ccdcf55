package types

import "strings"

// Input kinds determine how an activity is entered and which observation
// value shape it stores.
const (
	// KindBoolean is a done/not-done checkbox. Stores a bool.
	KindBoolean InputKind = "boolean"
	// KindBoundedCounter is an integer in [Min, Max], e.g. sets at the gym.
	// Stores an int.
	KindBoundedCounter InputKind = "bounded_counter"
	// KindSingleChoice picks one of a fixed option list. Stores a string.
	KindSingleChoice InputKind = "single_choice"
	// KindMultiChoiceText is a toggle with an attached free-text note.
	// Stores an {enabled, text} record.
	KindMultiChoiceText InputKind = "multi_choice_text"
	// KindFreeChoice is unconstrained text entry. Stores a string.
	KindFreeChoice InputKind = "free_choice"
	// KindExtensibleChoice picks from an option list that grows over time
	// (append-only). Stores a string.
	KindExtensibleChoice InputKind = "extensible_choice"
)

// InputKind identifies the input semantics of an activity.
type InputKind string

// validInputKinds is the set of recognized input kinds.
var validInputKinds = map[InputKind]bool{
	KindBoolean:          true,
	KindBoundedCounter:   true,
	KindSingleChoice:     true,
	KindMultiChoiceText:  true,
	KindFreeChoice:       true,
	KindExtensibleChoice: true,
}

// IsValidInputKind reports whether the given kind is recognized.
func IsValidInputKind(k InputKind) bool {
	return validInputKinds[k]
}

// Params carries the per-kind activity parameters. Which fields are
// meaningful depends on the input kind; NewActivity zeroes the rest so that
// two activities with equivalent parameters compare equal.
type Params struct {
	Min      int      `json:"min,omitempty"`       // bounded counter lower bound
	Max      int      `json:"max,omitempty"`       // bounded counter upper bound
	Options  []string `json:"options,omitempty"`   // single/extensible choice options, ordered
	AllowNew bool     `json:"allow_new,omitempty"` // extensible choice: user may append options
}

// clone returns a deep copy of the params.
func (p Params) clone() Params {
	cp := p
	if p.Options != nil {
		cp.Options = append([]string(nil), p.Options...)
	}
	return cp
}

// Activity is one trackable item within a category. The ID is a slug derived
// from the name at creation time and never changes afterwards; edits replace
// Name and Params only.
type Activity struct {
	ID     string    `json:"id"`
	Name   string    `json:"name"`
	Kind   InputKind `json:"kind"`
	Params Params    `json:"params"`
}

// NewActivity validates and constructs an activity. The ID is derived from
// name via Slugify. Params are checked against the kind and normalized:
// fields that do not apply to the kind are zeroed.
func NewActivity(name string, kind InputKind, params Params) (Activity, error) {
	id := Slugify(name)
	if id == "" {
		return Activity{}, ErrEmptyName
	}
	if !validInputKinds[kind] {
		return Activity{}, ErrInvalidKind
	}

	norm := Params{}
	switch kind {
	case KindBoundedCounter:
		if params.Max < params.Min {
			return Activity{}, ErrInvalidParams
		}
		norm.Min = params.Min
		norm.Max = params.Max
	case KindSingleChoice:
		if len(params.Options) == 0 {
			return Activity{}, ErrInvalidParams
		}
		norm.Options = append([]string(nil), params.Options...)
	case KindExtensibleChoice:
		norm.Options = append([]string(nil), params.Options...)
		norm.AllowNew = params.AllowNew
	default:
		// Boolean, multi-choice-text and free-choice carry no parameters.
	}

	return Activity{
		ID:     id,
		Name:   strings.TrimSpace(name),
		Kind:   kind,
		Params: norm,
	}, nil
}

// clone returns a deep copy of the activity.
func (a Activity) clone() Activity {
	cp := a
	cp.Params = a.Params.clone()
	return cp
}

// HasOption reports whether the activity's option list contains option.
// Always false for kinds without options.
func (a Activity) HasOption(option string) bool {
	for _, o := range a.Params.Options {
		if o == option {
			return true
		}
	}
	return false
}
