package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/patrickrbarry/lifetracker/internal/export"
)

func newExportCmd() *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all observations as a CSV table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if outPath == "" {
				outPath = export.Filename(time.Now())
			}

			tr, closer, err := openTracker(cmd)
			if err != nil {
				return sysErr(err)
			}
			defer closer()

			f, err := os.Create(outPath)
			if err != nil {
				return sysErr(fmt.Errorf("create export file: %w", err))
			}
			defer f.Close()

			if err := tr.ExportCSV(f); err != nil {
				return sysErr(fmt.Errorf("write export: %w", err))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", outPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&outPath, "out", "", "output file (default lifetracker-data-<date>.csv)")
	return cmd
}
