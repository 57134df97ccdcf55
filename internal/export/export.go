// Package export flattens the taxonomy and observation store into the
// tabular form handed to the file-writing collaborator.
package export

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/patrickrbarry/lifetracker/pkg/types"
)

// Table builds the export rows: a header of "Date" plus one
// "<Category name>: <Activity name>" column per activity in taxonomy order,
// then one row per recorded date in ascending calendar order. Cells are
// fully formatted; Write only joins them.
func Table(tax types.Taxonomy, store types.ObservationStore) [][]string {
	header := []string{"Date"}
	for _, cat := range tax.Categories {
		for _, act := range cat.Activities {
			header = append(header, quoteIfNeeded(cat.Name+": "+act.Name))
		}
	}

	rows := [][]string{header}
	for _, date := range store.Dates() {
		row := make([]string, 0, len(header))
		row = append(row, string(date))
		for _, cat := range tax.Categories {
			for _, act := range cat.Activities {
				row = append(row, Cell(store.Get(date, cat.ID, act.ID)))
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// Cell formats one observation value for export. Absent is the empty cell;
// booleans and the enabled flag of a record become Yes/No, with the
// record's text appended only when enabled and quoted if it carries a
// comma or quote; strings are quoted with internal quotes doubled;
// integers print literally. The output reads well in a spreadsheet but is
// not meant to be re-parsed by this system.
func Cell(v types.Value) string {
	switch v.Kind() {
	case types.ValueBool:
		return yesNo(v.AsBool())
	case types.ValueInt:
		return strconv.FormatInt(v.AsInt(), 10)
	case types.ValueString:
		return `"` + strings.ReplaceAll(v.AsString(), `"`, `""`) + `"`
	case types.ValueFlagText:
		enabled, text := v.AsFlagText()
		if !enabled {
			return "No"
		}
		return quoteIfNeeded("Yes: " + text)
	default:
		return ""
	}
}

// quoteIfNeeded wraps a cell in quotes, doubling internal quotes, when the
// bare cell would break the comma-joined row. String cells are always
// quoted by Cell and never pass through here.
func quoteIfNeeded(s string) string {
	if !strings.ContainsAny(s, ",\"\n") {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

// Write renders the table as UTF-8 comma-separated rows with LF line ends.
func Write(w io.Writer, tax types.Taxonomy, store types.ObservationStore) error {
	for _, row := range Table(tax, store) {
		if _, err := fmt.Fprintln(w, strings.Join(row, ",")); err != nil {
			return fmt.Errorf("write export row: %w", err)
		}
	}
	return nil
}

// Filename is the conventional export file name for the given day,
// "lifetracker-data-<ISO date>.csv".
func Filename(now time.Time) string {
	return "lifetracker-data-" + string(types.DateKeyFor(now)) + ".csv"
}
