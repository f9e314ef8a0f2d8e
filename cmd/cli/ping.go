package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPingCmd(newUC useCaseFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Check the ClickUp credential by listing teams",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc, err := newUC()
			if err != nil {
				return err
			}

			teams, err := uc.Ping(cmd.Context())
			if err != nil {
				return fmt.Errorf("ping clickup: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Connected. %d team(s):\n", len(teams))
			for _, t := range teams {
				fmt.Fprintf(out, "  %s\t%s\n", t.ID, t.Name)
			}
			return nil
		},
	}
}
