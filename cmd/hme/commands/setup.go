package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"hme/internal/domain"
)

func setupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "setup",
		Short: "Store account credentials and verify them",
		Long: `Interactive setup: stores your account password in secure storage
(macOS Keychain, or an encrypted vault elsewhere) and verifies it with a
full login, including the second factor if your account requires one.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if appCtx.Presence.Available() {
				fmt.Fprintf(os.Stderr, "%s biometric check available; it will gate access to the stored password\n", okMark)
			} else {
				fmt.Fprintln(os.Stderr, "! no biometric check on this host; you will be prompted for the password instead")
			}

			prompt := terminalPrompter{}
			account, err := prompt.Line("Account (email)")
			if err != nil {
				return err
			}
			if !strings.Contains(account, "@") {
				return fmt.Errorf("%w: account must be an email address", domain.ErrValidation)
			}
			password, err := prompt.Password("Password")
			if err != nil {
				return err
			}

			fmt.Fprintln(os.Stderr, "Verifying credentials...")
			if _, err := appCtx.Auth.Enroll(cmd.Context(), account, password); err != nil {
				return err
			}

			fmt.Printf("%s Credentials stored for %s\n", okMark, account)
			fmt.Printf("%s Setup complete. Run 'hme list' to see your aliases.\n", okMark)
			return nil
		},
	}
}
