package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the lifetracker release version.
const Version = "0.3.0"

const modulePath = "github.com/patrickrbarry/lifetracker"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the lifetracker version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "lifetracker v%s\nmodule: %s\n", Version, modulePath)
			return nil
		},
	}
}
