package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/patrickrbarry/lifetracker/pkg/types"
)

func newCategoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "category",
		Short: "Manage categories",
	}
	cmd.AddCommand(newCategoryAddCmd())
	cmd.AddCommand(newCategoryListCmd())
	return cmd
}

func newCategoryAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add NAME...",
		Short: "Add a new category",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.Join(args, " ")

			tr, closer, err := openTracker(cmd)
			if err != nil {
				return sysErr(err)
			}
			defer closer()

			if err := tr.AddCategory(name); err != nil {
				return fmt.Errorf("add category: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added category %q (id %s)\n",
				strings.TrimSpace(name), types.Slugify(name))
			return nil
		},
	}
}

func newCategoryListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List categories and their activities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tr, closer, err := openTracker(cmd)
			if err != nil {
				return sysErr(err)
			}
			defer closer()

			out := cmd.OutOrStdout()
			for _, cat := range tr.Taxonomy().Categories {
				fmt.Fprintf(out, "%s (%s)\n", cat.Name, cat.ID)
				for _, act := range cat.Activities {
					fmt.Fprintf(out, "  %s (%s, %s)\n", act.Name, act.ID, act.Kind)
				}
			}
			return nil
		},
	}
}
