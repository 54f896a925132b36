package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show authentication status",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := appCtx.Auth.Report(cmd.Context())
			if err != nil {
				return err
			}

			if !st.Configured {
				fmt.Println("Not configured. Run 'hme setup' to store your account.")
				return nil
			}

			yes := activeStyle.Render("yes")
			no := inactiveStyle.Render("no")
			onOff := func(b bool) string {
				if b {
					return yes
				}
				return no
			}

			fmt.Printf("Account:      %s\n", st.Account)
			fmt.Printf("Credentials:  %s\n", onOff(st.HasSecret))
			fmt.Printf("Session:      %s\n", onOff(st.SessionValid))
			fmt.Printf("Biometrics:   %s\n", onOff(st.PresenceAvailable))
			return nil
		},
	}
}
