package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/patrickrbarry/lifetracker/internal/series"
)

func newHistoryCmd() *cobra.Command {
	var (
		windowFlag string
		jsonMode   bool
		unified    bool
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show aggregated activity history",
		Long: "Aggregate recorded observations over the most recent recorded days\n" +
			"(--window N, or \"all\") into per-activity numeric series. With\n" +
			"--unified every activity is flattened into one colored series list,\n" +
			"the shape the dashboard chart consumes.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			window, err := parseWindow(windowFlag)
			if err != nil {
				return err
			}

			tr, closer, err := openTracker(cmd)
			if err != nil {
				return sysErr(err)
			}
			defer closer()

			out := cmd.OutOrStdout()
			if unified {
				s := tr.Unified(window)
				if jsonMode {
					return json.NewEncoder(out).Encode(s)
				}
				if len(s) == 0 {
					fmt.Fprintln(out, "No observations recorded yet.")
					return nil
				}
				scale := series.Scale(s)
				for _, line := range s {
					fmt.Fprintf(out, "%s [%s]", line.FullName, line.Color)
					for _, p := range line.Points {
						fmt.Fprintf(out, " %s=%g", p.Label, p.Value)
					}
					fmt.Fprintln(out)
				}
				fmt.Fprintf(out, "scale: %g\n", scale)
				return nil
			}

			hist := tr.History(window)
			if jsonMode {
				return json.NewEncoder(out).Encode(hist)
			}
			if len(hist) == 0 {
				fmt.Fprintln(out, "No observations recorded yet.")
				return nil
			}
			for _, cat := range hist {
				fmt.Fprintln(out, cat.Name)
				for _, act := range cat.Activities {
					fmt.Fprintf(out, "  %s:", act.Name)
					for _, p := range act.Points {
						fmt.Fprintf(out, " %s=%g", p.Label, p.Value)
					}
					fmt.Fprintln(out)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&windowFlag, "window", "7", "number of recorded days to include, or \"all\"")
	cmd.Flags().BoolVar(&jsonMode, "json", false, "output in JSON format")
	cmd.Flags().BoolVar(&unified, "unified", false, "flatten all activities into one dashboard series list")
	return cmd
}

// parseWindow maps the --window flag onto a series window.
func parseWindow(flag string) (int, error) {
	if flag == "all" {
		return series.WindowAll, nil
	}
	n, err := strconv.Atoi(flag)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("window must be a positive integer or \"all\", got %q", flag)
	}
	return n, nil
}
