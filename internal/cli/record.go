package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/patrickrbarry/lifetracker/pkg/types"
)

func newRecordCmd() *cobra.Command {
	var dateFlag string

	cmd := &cobra.Command{
		Use:   "record CATEGORY ACTIVITY VALUE",
		Short: "Record an observation for one activity",
		Long: "Record VALUE for the activity on the given day (default today).\n" +
			"The value is parsed according to the activity's input kind:\n" +
			"yes/no for booleans, an integer for counters, the option text for\n" +
			"choices, free text otherwise. For note activities use \"yes:TEXT\"\n" +
			"or \"no\".",
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			date, err := resolveDate(dateFlag)
			if err != nil {
				return err
			}

			tr, closer, err := openTracker(cmd)
			if err != nil {
				return sysErr(err)
			}
			defer closer()

			act, ok := tr.Taxonomy().Activity(args[0], args[1])
			if !ok {
				return types.ErrUnknownActivity
			}
			value, err := parseValue(act.Kind, args[2])
			if err != nil {
				return err
			}

			if err := tr.Record(date, args[0], args[1], value); err != nil {
				return fmt.Errorf("record: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Recorded %s/%s for %s\n", args[0], args[1], date)
			return nil
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "calendar day to record for (YYYY-MM-DD, default today)")
	return cmd
}

// resolveDate parses the --date flag, defaulting to today's wall-clock
// calendar date.
func resolveDate(flag string) (types.DateKey, error) {
	if flag == "" {
		return types.DateKeyFor(time.Now()), nil
	}
	return types.ParseDateKey(flag)
}

// parseValue turns CLI text into an observation value for the given kind.
func parseValue(kind types.InputKind, raw string) (types.Value, error) {
	switch kind {
	case types.KindBoolean:
		b, err := parseYesNo(raw)
		if err != nil {
			return types.Absent(), err
		}
		return types.Bool(b), nil
	case types.KindBoundedCounter:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return types.Absent(), fmt.Errorf("counter value %q is not an integer", raw)
		}
		return types.Int(n), nil
	case types.KindMultiChoiceText:
		switch {
		case strings.EqualFold(raw, "no"):
			return types.FlagText(false, ""), nil
		case strings.EqualFold(raw, "yes"):
			return types.FlagText(true, ""), nil
		case len(raw) > 4 && strings.EqualFold(raw[:4], "yes:"):
			return types.FlagText(true, strings.TrimSpace(raw[4:])), nil
		}
		return types.Absent(), fmt.Errorf("note value %q must be \"yes:TEXT\" or \"no\"", raw)
	default:
		// Single choice, free choice and extensible choice store the text
		// as given.
		return types.String(raw), nil
	}
}

func parseYesNo(raw string) (bool, error) {
	switch strings.ToLower(raw) {
	case "yes", "y", "true", "1":
		return true, nil
	case "no", "n", "false", "0":
		return false, nil
	}
	return false, fmt.Errorf("boolean value %q must be yes or no", raw)
}
