package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// newCmdHistory returns a command that lists journaled reconciliation runs.
func newCmdHistory() *cobra.Command {
	return &cobra.Command{
		Use:                "history",
		Short:              "List journaled reconciliation runs",
		Args:               cobra.NoArgs,
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			journal, err := buildJournal(cmd, cfg)
			if err != nil {
				return err
			}
			if journal == nil {
				return fmt.Errorf("no journal configured: set journal.db_url or --db-url")
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
			defer cancel()

			runs, err := journal.List(ctx)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, run := range runs {
				check := ""
				if run.CheckMode {
					check = " (check)"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\tchanged=%t%s\t%s\n",
					run.CreatedAt.Format(time.RFC3339), run.Kind, run.Resource, run.Action, run.Changed, check, run.Message)
			}
			return nil
		},
	}
}
