package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func deleteCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete <email-or-id>",
		Short: "Permanently delete an alias",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := aliases(cmd.Context())
			if err != nil {
				return err
			}
			a, err := svc.Resolve(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			if !force {
				if !stdinIsTerminal() {
					return fmt.Errorf("refusing to delete without confirmation; use --force")
				}
				fmt.Fprintf(os.Stderr, "%s This permanently deletes the alias.\n", inactiveStyle.Render("Warning:"))
				fmt.Fprintf(os.Stderr, "  Email: %s\n  Label: %s\n", a.Address, a.Label)
				if !confirm(os.Stdin, os.Stderr, "Are you sure?") {
					return fmt.Errorf("aborted")
				}
			}

			if _, err := svc.Delete(cmd.Context(), a.Address); err != nil {
				return err
			}
			fmt.Printf("%s Deleted %s\n", okMark, a.Address)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "skip confirmation")
	return cmd
}
