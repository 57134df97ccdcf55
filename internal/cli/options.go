package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/patrickrbarry/lifetracker/pkg/types"
)

func newOptionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "options",
		Short: "Manage choice activity options",
	}
	cmd.AddCommand(newOptionsAddCmd())
	return cmd
}

func newOptionsAddCmd() *cobra.Command {
	var recordDate string

	cmd := &cobra.Command{
		Use:   "add CATEGORY ACTIVITY OPTION",
		Short: "Append an option to a choice activity",
		Long: "Append a new option to a single-choice or extensible-choice activity.\n" +
			"Options are append-only; existing observations stay valid. With\n" +
			"--record the new option is also stored as that day's value.",
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			categoryID, activityID, option := args[0], args[1], args[2]

			var date types.DateKey
			if recordDate != "" {
				var err error
				if date, err = types.ParseDateKey(recordDate); err != nil {
					return err
				}
			}

			tr, closer, err := openTracker(cmd)
			if err != nil {
				return sysErr(err)
			}
			defer closer()

			if err := tr.ExtendOptions(categoryID, activityID, option); err != nil {
				return fmt.Errorf("extend options: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added option %q to %s/%s\n", option, categoryID, activityID)

			if recordDate != "" {
				if err := tr.Record(date, categoryID, activityID, types.String(option)); err != nil {
					return fmt.Errorf("record option: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Recorded %q for %s\n", option, date)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&recordDate, "record", "", "also record the option as the value for DATE (YYYY-MM-DD)")
	return cmd
}
