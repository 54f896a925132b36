package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func searchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search aliases by label, address, or note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := args[0]

			svc, err := aliases(cmd.Context())
			if err != nil {
				return err
			}
			results, err := svc.Search(cmd.Context(), query)
			if err != nil {
				return err
			}
			if len(results) == 0 {
				fmt.Printf("No aliases matching %q\n", query)
				return nil
			}

			fmt.Println(aliasTable(results, true))
			fmt.Println(dimStyle.Render(fmt.Sprintf("%d result(s) for %q", len(results), query)))
			return nil
		},
	}
}
