package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func deactivateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deactivate <email-or-id>",
		Short: "Stop forwarding for an alias (reversible)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return setActive(cmd.Context(), args[0], false)
		},
	}
}

func reactivateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reactivate <email-or-id>",
		Short: "Resume forwarding for a deactivated alias",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return setActive(cmd.Context(), args[0], true)
		},
	}
}

func setActive(ctx context.Context, target string, active bool) error {
	svc, err := aliases(ctx)
	if err != nil {
		return err
	}
	a, changed, err := svc.SetActive(ctx, target, active)
	if err != nil {
		return err
	}

	verb := "Deactivated"
	state := "inactive"
	if active {
		verb = "Reactivated"
		state = "active"
	}
	if !changed {
		fmt.Printf("Alias is already %s: %s\n", state, a.Address)
		return nil
	}
	fmt.Printf("%s %s %s\n", okMark, verb, a.Address)
	return nil
}
