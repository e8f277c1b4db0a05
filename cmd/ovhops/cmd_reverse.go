package main

import (
	"context"
	"fmt"
	"time"

	"github.com/ovhops/ovhops/domain/model"
	"github.com/ovhops/ovhops/internal/logging"
	"github.com/ovhops/ovhops/usecase/reverse"
	"github.com/spf13/cobra"
)

func newCmdReverse() *cobra.Command {
	cmd := &cobra.Command{
		Use:                "reverse",
		Short:              "Manage reverse DNS (PTR) records",
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE:               func(cmd *cobra.Command, args []string) error { return fmt.Errorf("invalid command") },
	}
	cmd.AddCommand(newCmdReversePresent(), newCmdReverseAbsent())
	return cmd
}

func runReverseApply(cmd *cobra.Command, state model.Intent, ip, value string, check bool) (err error) {
	uc, err := buildReverseUseCase(cmd)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Minute)
	defer cancel()

	ctx, cleanup := withCmdRunLogger(ctx, "reverse."+string(state), ip)
	defer func() { cleanup(err) }()

	out, err := uc.Apply(ctx, &reverse.ApplyInput{
		IP:        ip,
		State:     state,
		Value:     value,
		CheckMode: check,
	})
	if err != nil {
		return err
	}
	logging.FromContext(ctx).Info(ctx, out.Message, "changed", out.Changed, "action", out.Action)
	return nil
}

func newCmdReversePresent() *cobra.Command {
	var ip, value string
	var check bool
	cmd := &cobra.Command{
		Use:                "present",
		Short:              "Set the reverse of an IP, or assert one exists",
		Args:               cobra.NoArgs,
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReverseApply(cmd, model.IntentPresent, ip, value, check)
		},
	}
	cmd.Flags().StringVarP(&ip, "ip", "i", "", "IP address")
	cmd.Flags().StringVarP(&value, "value", "v", "", "Reverse hostname; empty only asserts a reverse exists")
	cmd.Flags().BoolVar(&check, "check", false, "Report what would change without applying")
	return cmd
}

func newCmdReverseAbsent() *cobra.Command {
	var ip string
	var check bool
	cmd := &cobra.Command{
		Use:                "absent",
		Short:              "Remove the reverse of an IP",
		Args:               cobra.NoArgs,
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReverseApply(cmd, model.IntentAbsent, ip, "", check)
		},
	}
	cmd.Flags().StringVarP(&ip, "ip", "i", "", "IP address")
	cmd.Flags().BoolVar(&check, "check", false, "Report what would change without applying")
	return cmd
}
