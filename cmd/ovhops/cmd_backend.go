package main

import (
	"fmt"

	"github.com/ovhops/ovhops/domain/model"
	"github.com/ovhops/ovhops/internal/logging"
	"github.com/ovhops/ovhops/usecase/backend"
	"github.com/spf13/cobra"
)

func newCmdBackend() *cobra.Command {
	cmd := &cobra.Command{
		Use:                "backend",
		Short:              "Manage legacy IP load balancer backends",
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE:               func(cmd *cobra.Command, args []string) error { return fmt.Errorf("invalid command") },
	}
	cmd.AddCommand(newCmdBackendPresent(), newCmdBackendAbsent())
	return cmd
}

type backendApplyFlags struct {
	name   string
	ip     string
	probe  string
	weight int64
	check  bool
}

func (f *backendApplyFlags) addCommon(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.name, "name", "n", "", "Load balancer service name (e.g. ip-203.0.113.9)")
	cmd.Flags().StringVarP(&f.ip, "ip", "i", "", "Backend IP address")
	cmd.Flags().BoolVar(&f.check, "check", false, "Report what would change without applying")
}

func runBackendApply(cmd *cobra.Command, state model.Intent, f *backendApplyFlags) (err error) {
	uc, err := buildBackendUseCase(cmd)
	if err != nil {
		return err
	}

	// No timeout here: the task barrier bound comes from the config.
	ctx, cleanup := withCmdRunLogger(cmd.Context(), "backend."+string(state), f.name+"/"+f.ip)
	defer func() { cleanup(err) }()

	out, err := uc.Apply(ctx, &backend.ApplyInput{
		Name:      f.name,
		IP:        f.ip,
		State:     state,
		Probe:     model.BackendProbe(f.probe),
		Weight:    f.weight,
		CheckMode: f.check,
	})
	if err != nil {
		return err
	}
	logging.FromContext(ctx).Info(ctx, out.Message, "changed", out.Changed, "action", out.Action)
	return nil
}

func newCmdBackendPresent() *cobra.Command {
	var f backendApplyFlags
	cmd := &cobra.Command{
		Use:                "present",
		Short:              "Attach a backend and converge its weight and probe",
		Args:               cobra.NoArgs,
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBackendApply(cmd, model.IntentPresent, &f)
		},
	}
	f.addCommon(cmd)
	cmd.Flags().StringVar(&f.probe, "probe", "", "Health probe (none|http|icmp|oco; default none)")
	cmd.Flags().Int64Var(&f.weight, "weight", 0, "Backend weight (default 8)")
	return cmd
}

func newCmdBackendAbsent() *cobra.Command {
	var f backendApplyFlags
	cmd := &cobra.Command{
		Use:                "absent",
		Short:              "Detach a backend",
		Args:               cobra.NoArgs,
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBackendApply(cmd, model.IntentAbsent, &f)
		},
	}
	f.addCommon(cmd)
	return cmd
}
