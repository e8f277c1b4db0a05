package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

// newCmdSetup returns the one-time credential bootstrap command. It requests
// a consumer key scoped to the API paths this tool uses and prints the
// validation URL the operator must visit.
func newCmdSetup() *cobra.Command {
	return &cobra.Command{
		Use:                "setup",
		Short:              "Request a new consumer key from the provider",
		Args:               cobra.NoArgs,
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			drv, err := buildDriver(cfg)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
			defer cancel()

			ck, err := drv.RequestConsumerKey(ctx)
			if err != nil {
				return fmt.Errorf("request consumer key: %w", err)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "consumer key: %s\n", ck.ConsumerKey)
			fmt.Fprintf(w, "validate it at: %s\n", ck.ValidationURL)
			fmt.Fprintf(w, "then set provider.consumer_key in the config file or OVH_CONSUMER_KEY\n")
			return nil
		},
	}
}
