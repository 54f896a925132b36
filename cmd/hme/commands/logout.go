package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"hme/internal/domain"
)

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove stored credentials and session data",
		RunE: func(cmd *cobra.Command, args []string) error {
			account, removed, err := appCtx.Auth.Logout()
			if errors.Is(err, domain.ErrNotConfigured) {
				fmt.Println("No account configured; nothing to remove.")
				return nil
			}
			if err != nil {
				return err
			}
			if removed {
				fmt.Printf("%s Removed credentials for %s\n", okMark, account)
			} else {
				fmt.Printf("No stored credentials for %s\n", account)
			}
			fmt.Printf("%s Cleared session data\n", okMark)
			return nil
		},
	}
}
