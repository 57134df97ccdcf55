// Package series turns the sparse, heterogeneous observation store into
// normalized numeric time series for charting.
package series

import (
	"github.com/patrickrbarry/lifetracker/pkg/types"
)

// WindowAll selects every recorded date. Any non-positive window does.
const WindowAll = 0

// Point is one charted sample of a single activity.
type Point struct {
	Label string        `json:"label"`
	Date  types.DateKey `json:"date"`
	Value float64       `json:"value"`
}

// ActivitySeries is the per-activity history over the selected window.
type ActivitySeries struct {
	CategoryID string  `json:"category_id"`
	ActivityID string  `json:"activity_id"`
	Name       string  `json:"name"`
	Points     []Point `json:"points"`
}

// CategoryHistory groups the activity series of one category.
type CategoryHistory struct {
	CategoryID string           `json:"category_id"`
	Name       string           `json:"name"`
	Activities []ActivitySeries `json:"activities"`
}

// Series is one line of the unified dashboard chart: a single activity,
// labeled with its category, carrying a deterministic color.
type Series struct {
	FullName string         `json:"full_name"`
	Color    string         `json:"color"`
	Points   []UnifiedPoint `json:"points"`
}

// UnifiedPoint is one charted sample of a unified series.
type UnifiedPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Numericize maps any observation value onto the chart axis. Total: it
// never fails, whatever shape the store held. Booleans chart as 0/1, a
// non-empty string as 1, an empty string or absent value as 0, integers as
// themselves, and an {enabled, text} record as its enabled flag (the text
// is informational only here).
func Numericize(v types.Value) float64 {
	switch v.Kind() {
	case types.ValueBool:
		if v.AsBool() {
			return 1
		}
		return 0
	case types.ValueInt:
		return float64(v.AsInt())
	case types.ValueString:
		if v.AsString() != "" {
			return 1
		}
		return 0
	case types.ValueFlagText:
		if enabled, _ := v.AsFlagText(); enabled {
			return 1
		}
		return 0
	default:
		return 0
	}
}

// windowDates selects the most recent window recorded dates, ascending.
// Dates come from the store, not from a fixed calendar range: a day with no
// entry at all is skipped, not charted as zero.
func windowDates(store types.ObservationStore, window int) []types.DateKey {
	dates := store.Dates()
	if window > 0 && len(dates) > window {
		dates = dates[len(dates)-window:]
	}
	return dates
}

// pointLabel is the short axis label for a charted day.
func pointLabel(d types.DateKey) string {
	return d.Time().Format("1/2")
}

// History produces the per-category, per-activity series over the most
// recent window recorded dates (WindowAll for every date), in ascending
// calendar order. An empty store yields an empty result: the caller renders
// an empty state, not an error.
func History(tax types.Taxonomy, store types.ObservationStore, window int) []CategoryHistory {
	dates := windowDates(store, window)
	if len(dates) == 0 {
		return nil
	}

	out := make([]CategoryHistory, 0, len(tax.Categories))
	for _, cat := range tax.Categories {
		ch := CategoryHistory{
			CategoryID: cat.ID,
			Name:       cat.Name,
			Activities: make([]ActivitySeries, 0, len(cat.Activities)),
		}
		for _, act := range cat.Activities {
			as := ActivitySeries{
				CategoryID: cat.ID,
				ActivityID: act.ID,
				Name:       act.Name,
				Points:     make([]Point, 0, len(dates)),
			}
			for _, d := range dates {
				as.Points = append(as.Points, Point{
					Label: pointLabel(d),
					Date:  d,
					Value: Numericize(store.Get(d, cat.ID, act.ID)),
				})
			}
			ch.Activities = append(ch.Activities, as)
		}
		out = append(out, ch)
	}
	return out
}

// Unified flattens every activity of every category into one series list
// over the same date selection as History, each line carrying its
// deterministic color. Same taxonomy and store always yield the same
// colors.
func Unified(tax types.Taxonomy, store types.ObservationStore, window int) []Series {
	dates := windowDates(store, window)
	if len(dates) == 0 {
		return nil
	}

	var out []Series
	for _, cat := range tax.Categories {
		for i, act := range cat.Activities {
			s := Series{
				FullName: cat.Name + ": " + act.Name,
				Color:    activityColor(cat.ID, act.ID, i),
				Points:   make([]UnifiedPoint, 0, len(dates)),
			}
			for _, d := range dates {
				s.Points = append(s.Points, UnifiedPoint{
					Label: pointLabel(d),
					Value: Numericize(store.Get(d, cat.ID, act.ID)),
				})
			}
			out = append(out, s)
		}
	}
	return out
}

// Scale returns the y-axis divisor for rendering: the largest point value
// across all series, floored at 1 so an all-zero chart never divides by
// zero.
func Scale(series []Series) float64 {
	max := 1.0
	for _, s := range series {
		for _, p := range s.Points {
			if p.Value > max {
				max = p.Value
			}
		}
	}
	return max
}
