package main

import (
	"context"
	"os"

	"log/slog"

	_ "github.com/ovhops/ovhops/adapters/drivers/dns/ovh"
	"github.com/ovhops/ovhops/internal/logging"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "ovhops",
		Short:   "OvhOps CLI",
		Long:    "OvhOps CLI - declarative reconciliation of OVH DNS records, load balancer backends, and reverse DNS",
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Show help by default when no subcommand is provided.
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	defaultConfig := os.Getenv("OVHOPS_CONFIG")
	if defaultConfig == "" {
		defaultConfig = "ovhops.yml"
	}
	cmd.PersistentFlags().StringP("config", "f", defaultConfig, "Config file path (env OVHOPS_CONFIG)")

	cmd.PersistentFlags().String("db-url", os.Getenv("OVHOPS_DB_URL"), "Run journal URL (env OVHOPS_DB_URL) (sqlite:/path/to.db | inmem: | empty to disable)")

	cmd.PersistentFlags().String("log-format", "text", "Log format (text|json) (env OVHOPS_LOG_FORMAT)")

	cmd.PersistentPreRunE = func(c *cobra.Command, _ []string) error {
		format, _ := c.Flags().GetString("log-format")
		if env := os.Getenv("OVHOPS_LOG_FORMAT"); env != "" { // env overrides flag
			format = env
		}
		l, err := logging.New(format, slog.LevelInfo)
		if err != nil {
			return err
		}
		ctx := logging.WithLogger(c.Context(), l)
		c.SetContext(ctx)
		return nil
	}

	cmd.AddCommand(newCmdVersion())
	cmd.AddCommand(newCmdRecord())
	cmd.AddCommand(newCmdBackend())
	cmd.AddCommand(newCmdReverse())
	cmd.AddCommand(newCmdSetup())
	cmd.AddCommand(newCmdHistory())
	return cmd
}

func main() {
	root := newRootCmd()
	root.SetContext(context.Background())
	executed, err := root.ExecuteC()
	if err != nil {
		ctx := root.Context()
		if executed != nil {
			ctx = executed.Context()
		}
		logging.FromContext(ctx).Errorf(ctx, "Failed: %s", err)
		os.Exit(1)
	}
}
