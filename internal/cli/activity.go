package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/patrickrbarry/lifetracker/pkg/types"
)

// kindNames maps the CLI spelling of each input kind.
var kindNames = map[string]types.InputKind{
	"boolean":    types.KindBoolean,
	"counter":    types.KindBoundedCounter,
	"choice":     types.KindSingleChoice,
	"note":       types.KindMultiChoiceText,
	"free":       types.KindFreeChoice,
	"extensible": types.KindExtensibleChoice,
}

func newActivityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "activity",
		Short: "Manage activities",
	}
	cmd.AddCommand(newActivityAddCmd())
	return cmd
}

func newActivityAddCmd() *cobra.Command {
	var (
		kindName string
		min      int
		max      int
		options  []string
		allowNew bool
	)

	cmd := &cobra.Command{
		Use:   "add CATEGORY NAME",
		Short: "Add a new activity to a category",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, ok := kindNames[kindName]
			if !ok {
				return fmt.Errorf("unknown kind %q (one of: boolean, counter, choice, note, free, extensible)", kindName)
			}

			tr, closer, err := openTracker(cmd)
			if err != nil {
				return sysErr(err)
			}
			defer closer()

			params := types.Params{Min: min, Max: max, Options: options, AllowNew: allowNew}
			if err := tr.AddActivity(args[0], args[1], kind, params); err != nil {
				return fmt.Errorf("add activity: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added activity %q to %s (id %s)\n",
				args[1], args[0], types.Slugify(args[1]))
			return nil
		},
	}

	cmd.Flags().StringVar(&kindName, "kind", "boolean", "input kind (boolean, counter, choice, note, free, extensible)")
	cmd.Flags().IntVar(&min, "min", 0, "counter lower bound")
	cmd.Flags().IntVar(&max, "max", 10, "counter upper bound")
	cmd.Flags().StringArrayVar(&options, "option", nil, "choice option (repeatable)")
	cmd.Flags().BoolVar(&allowNew, "allow-new", true, "extensible choice: allow appending new options")
	return cmd
}
