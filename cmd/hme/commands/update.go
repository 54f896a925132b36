package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func updateCmd() *cobra.Command {
	var (
		label string
		note  string
	)

	cmd := &cobra.Command{
		Use:   "update <email-or-id>",
		Short: "Change an alias label and/or note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Distinguish "flag not given" from "set to empty": only
			// supplied fields are changed.
			var labelPtr, notePtr *string
			if cmd.Flags().Changed("label") {
				labelPtr = &label
			}
			if cmd.Flags().Changed("note") {
				notePtr = &note
			}

			svc, err := aliases(cmd.Context())
			if err != nil {
				return err
			}
			a, err := svc.Update(cmd.Context(), args[0], labelPtr, notePtr)
			if err != nil {
				return err
			}

			fmt.Printf("%s Updated %s\n", okMark, a.Address)
			if labelPtr != nil {
				fmt.Printf("  Label: %s\n", a.Label)
			}
			if notePtr != nil {
				fmt.Printf("  Note:  %s\n", a.Note)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&label, "label", "l", "", "new label")
	cmd.Flags().StringVarP(&note, "note", "n", "", "new note")
	return cmd
}
