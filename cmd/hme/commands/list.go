package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func listCmd() *cobra.Command {
	var (
		activeOnly bool
		limit      int
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your forwarding aliases",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := aliases(cmd.Context())
			if err != nil {
				return err
			}
			shown, total, err := svc.List(cmd.Context(), activeOnly, limit)
			if err != nil {
				return err
			}
			if len(shown) == 0 {
				fmt.Println("No aliases found.")
				return nil
			}

			fmt.Println(aliasTable(shown, false))
			if total > len(shown) {
				fmt.Println(dimStyle.Render(fmt.Sprintf("Showing %d of %d aliases. Use --limit to see more.", len(shown), total)))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&activeOnly, "active", "a", false, "show only active aliases")
	cmd.Flags().IntVarP(&limit, "limit", "n", 50, "maximum number to display (0 for all)")
	return cmd
}
