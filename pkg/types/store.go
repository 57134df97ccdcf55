package types

import (
	"fmt"
	"sort"
	"time"
)

// DateKey identifies one calendar day as "YYYY-MM-DD". Keys are derived from
// the (year, month, day) triple only, never from an instant, so the same
// calendar day selected under any timezone offset resolves to the same key.
type DateKey string

// dateKeyLayout is the wire and sort format of a DateKey. Lexicographic
// order on keys equals calendar order.
const dateKeyLayout = "2006-01-02"

// DateKeyOf builds the key for a calendar date.
func DateKeyOf(year int, month time.Month, day int) DateKey {
	return DateKey(fmt.Sprintf("%04d-%02d-%02d", year, int(month), day))
}

// DateKeyFor builds the key for the wall-clock calendar date of t, in t's
// own location. Converting t to another zone first would shift the day; use
// the time the user actually saw.
func DateKeyFor(t time.Time) DateKey {
	y, m, d := t.Date()
	return DateKeyOf(y, m, d)
}

// ParseDateKey validates s as a "YYYY-MM-DD" key.
func ParseDateKey(s string) (DateKey, error) {
	t, err := time.Parse(dateKeyLayout, s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDateKey, s)
	}
	return DateKeyFor(t), nil
}

// Time returns midnight UTC of the key's calendar day, for formatting.
// Invalid keys return the zero time.
func (k DateKey) Time() time.Time {
	t, err := time.Parse(dateKeyLayout, string(k))
	if err != nil {
		return time.Time{}
	}
	return t
}

// EntryKey is the composite per-day key for one activity's observation.
func EntryKey(categoryID, activityID string) string {
	return categoryID + ":" + activityID
}

// ObservationStore maps calendar days to the observations recorded on them.
// Entries are keyed by EntryKey within each day. The store is a pure value:
// Set returns a new store sharing all untouched days with the receiver.
// Entries are never deleted implicitly; absence means "not recorded", which
// is distinct from a recorded falsy value.
type ObservationStore struct {
	Days map[DateKey]map[string]Value `json:"days"`
}

// NewObservationStore returns an empty store.
func NewObservationStore() ObservationStore {
	return ObservationStore{Days: map[DateKey]map[string]Value{}}
}

// Get returns the observation recorded for the activity on the given day,
// or the absent sentinel when nothing was recorded. Unknown days, categories
// and activities are not errors.
func (s ObservationStore) Get(date DateKey, categoryID, activityID string) Value {
	day, ok := s.Days[date]
	if !ok {
		return Absent()
	}
	return day[EntryKey(categoryID, activityID)]
}

// Set returns a new store with the single (date, category, activity) entry
// replaced. The receiver is unchanged; untouched days are shared
// structurally between old and new store.
func (s ObservationStore) Set(date DateKey, categoryID, activityID string, v Value) ObservationStore {
	out := ObservationStore{Days: make(map[DateKey]map[string]Value, len(s.Days)+1)}
	for d, entries := range s.Days {
		out.Days[d] = entries
	}

	day := make(map[string]Value, len(s.Days[date])+1)
	for k, val := range s.Days[date] {
		day[k] = val
	}
	day[EntryKey(categoryID, activityID)] = v
	out.Days[date] = day
	return out
}

// Dates returns every day with at least one recorded entry, in ascending
// calendar order.
func (s ObservationStore) Dates() []DateKey {
	out := make([]DateKey, 0, len(s.Days))
	for d := range s.Days {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// IsEmpty reports whether no day holds any entry.
func (s ObservationStore) IsEmpty() bool {
	return len(s.Days) == 0
}
