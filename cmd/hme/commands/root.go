package commands

import (
	"context"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"hme/internal/app"
	aliassvc "hme/internal/services/alias"
)

var (
	home   string
	appCtx *app.Wire
)

func Execute() error {
	root := &cobra.Command{
		Use:           "hme",
		Short:         "Manage Hide My Email forwarding aliases",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".hidemyemail")
			}
			if err := os.MkdirAll(home, 0o700); err != nil {
				return err
			}

			wire, err := app.NewWire(app.Config{
				Home:   home,
				Prompt: terminalPrompter{},
			})
			if err != nil {
				return err
			}
			appCtx = wire
			return nil
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "config dir (default ~/.hidemyemail)")

	root.AddCommand(
		setupCmd(), logoutCmd(), statusCmd(),
		listCmd(), searchCmd(), createCmd(), updateCmd(),
		deactivateCmd(), reactivateCmd(), deleteCmd(),
	)
	return root.Execute()
}

// aliases authenticates and returns the alias service for this invocation.
func aliases(ctx context.Context) (*aliassvc.Service, error) {
	sess, err := appCtx.Auth.Authenticate(ctx)
	if err != nil {
		return nil, err
	}
	return aliassvc.New(appCtx.Client, sess), nil
}
