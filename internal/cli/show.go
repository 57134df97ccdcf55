package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/patrickrbarry/lifetracker/internal/export"
)

func newShowCmd() *cobra.Command {
	var dateFlag string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the recorded entries for one day",
		Args:  cobra.NoArgs,
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

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, date)
			for _, cat := range tr.Taxonomy().Categories {
				fmt.Fprintf(out, "%s\n", cat.Name)
				for _, act := range cat.Activities {
					v := tr.Observation(date, cat.ID, act.ID)
					cell := export.Cell(v)
					if v.IsAbsent() {
						cell = "-"
					}
					fmt.Fprintf(out, "  %-20s %s\n", act.Name, cell)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dateFlag, "date", "", "calendar day to show (YYYY-MM-DD, default today)")
	return cmd
}
