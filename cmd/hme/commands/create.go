package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func createCmd() *cobra.Command {
	var note string

	cmd := &cobra.Command{
		Use:   "create <label>",
		Short: "Reserve a new forwarding alias",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := aliases(cmd.Context())
			if err != nil {
				return err
			}
			a, err := svc.Create(cmd.Context(), args[0], note)
			if err != nil {
				return err
			}

			fmt.Printf("%s Created new alias:\n", okMark)
			fmt.Printf("  Email: %s\n", a.Address)
			fmt.Printf("  Label: %s\n", a.Label)
			if a.Note != "" {
				fmt.Printf("  Note:  %s\n", a.Note)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&note, "note", "n", "", "optional note")
	return cmd
}
