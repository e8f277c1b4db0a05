package main

import (
	"context"
	"fmt"
	"time"

	"github.com/ovhops/ovhops/domain/model"
	"github.com/ovhops/ovhops/internal/logging"
	"github.com/ovhops/ovhops/usecase/record"
	"github.com/spf13/cobra"
)

func newCmdRecord() *cobra.Command {
	cmd := &cobra.Command{
		Use:                "record",
		Short:              "Manage DNS zone records",
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE:               func(cmd *cobra.Command, args []string) error { return fmt.Errorf("invalid command") },
	}
	cmd.AddCommand(newCmdRecordPresent(), newCmdRecordAppend(), newCmdRecordAbsent(), newCmdRecordList())
	return cmd
}

// recordApplyFlags holds the flag values shared by the apply subcommands.
type recordApplyFlags struct {
	zone           string
	name           string
	typ            string
	value          string
	ttl            int64
	nameIsPattern  bool
	oldValue       string
	oldIsPattern   bool
	selectPattern  string
	allowDuplicate bool
	check          bool
}

func (f *recordApplyFlags) addCommon(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.zone, "zone", "z", "", "Zone name (e.g. example.com)")
	cmd.Flags().StringVarP(&f.name, "name", "n", "", "Record subdomain; empty for the zone apex")
	cmd.Flags().StringVarP(&f.typ, "type", "t", "", "Record type (A, AAAA, CNAME, TXT, ...)")
	cmd.Flags().BoolVar(&f.check, "check", false, "Report what would change without applying")
}

func runRecordApply(cmd *cobra.Command, state model.Intent, f *recordApplyFlags) (err error) {
	uc, cfg, err := buildRecordUseCase(cmd)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Minute)
	defer cancel()

	ctx, cleanup := withCmdRunLogger(ctx, "record."+string(state), f.zone+"/"+f.name)
	defer func() { cleanup(err) }()

	ttl := f.ttl
	if ttl == 0 {
		ttl = cfg.Defaults.TTL
	}

	out, err := uc.Apply(ctx, &record.ApplyInput{
		Zone:              f.zone,
		Name:              f.name,
		Type:              model.RecordType(f.typ),
		State:             state,
		Value:             f.value,
		TTL:               ttl,
		NameIsPattern:     f.nameIsPattern,
		OldValue:          f.oldValue,
		OldValueIsPattern: f.oldIsPattern,
		SelectPattern:     f.selectPattern,
		AllowDuplicate:    f.allowDuplicate,
		CheckMode:         f.check,
	})
	if err != nil {
		return err
	}

	logger := logging.FromContext(ctx)
	for _, line := range out.Diff.Before {
		logger.Info(ctx, "record removed", "record", line)
	}
	for _, line := range out.Diff.After {
		logger.Info(ctx, "record added", "record", line)
	}
	logger.Info(ctx, out.Message, "changed", out.Changed, "action", out.Action)
	return nil
}

func newCmdRecordPresent() *cobra.Command {
	var f recordApplyFlags
	cmd := &cobra.Command{
		Use:                "present",
		Short:              "Converge a record to a single desired value",
		Args:               cobra.NoArgs,
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRecordApply(cmd, model.IntentPresent, &f)
		},
	}
	f.addCommon(cmd)
	cmd.Flags().StringVarP(&f.value, "value", "v", "", "Record target value")
	cmd.Flags().Int64Var(&f.ttl, "ttl", 0, "Record TTL in seconds (default from config, then 3600)")
	cmd.Flags().StringVar(&f.oldValue, "old-value", "", "Existing value to replace when multiple records match")
	cmd.Flags().BoolVar(&f.oldIsPattern, "old-value-is-pattern", false, "Treat --old-value as a regular expression")
	cmd.Flags().BoolVar(&f.allowDuplicate, "allow-duplicate", false, "Add the value alongside non-matching records instead of failing")
	return cmd
}

func newCmdRecordAppend() *cobra.Command {
	var f recordApplyFlags
	cmd := &cobra.Command{
		Use:                "append",
		Short:              "Add a record value without touching existing records",
		Args:               cobra.NoArgs,
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRecordApply(cmd, model.IntentAppend, &f)
		},
	}
	f.addCommon(cmd)
	cmd.Flags().StringVarP(&f.value, "value", "v", "", "Record target value")
	cmd.Flags().Int64Var(&f.ttl, "ttl", 0, "Record TTL in seconds (default from config, then 3600)")
	return cmd
}

func newCmdRecordAbsent() *cobra.Command {
	var f recordApplyFlags
	cmd := &cobra.Command{
		Use:                "absent",
		Short:              "Delete the records matching the selection",
		Args:               cobra.NoArgs,
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRecordApply(cmd, model.IntentAbsent, &f)
		},
	}
	f.addCommon(cmd)
	cmd.Flags().StringVarP(&f.value, "value", "v", "", "Only delete records with this target value")
	cmd.Flags().BoolVar(&f.nameIsPattern, "name-is-pattern", false, "Treat --name as a regular expression")
	cmd.Flags().StringVar(&f.selectPattern, "select-pattern", "", "Only delete records whose target matches this regular expression")
	return cmd
}

func newCmdRecordList() *cobra.Command {
	var zone, typ, name string
	cmd := &cobra.Command{
		Use:                "list",
		Short:              "List zone records",
		Args:               cobra.NoArgs,
		SilenceUsage:       true,
		SilenceErrors:      true,
		DisableSuggestions: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, _, err := buildRecordUseCase(cmd)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), 5*time.Minute)
			defer cancel()

			out, err := uc.List(ctx, &record.ListInput{
				Zone: zone,
				Type: model.RecordType(typ),
				Name: name,
			})
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for _, rec := range out.Records {
				sub := rec.SubDomain
				if sub == "" {
					sub = "@"
				}
				fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\n", rec.ID, sub, rec.FieldType, rec.TTL, rec.Target)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&zone, "zone", "z", "", "Zone name (e.g. example.com)")
	cmd.Flags().StringVarP(&typ, "type", "t", "", "Only list records of this type")
	cmd.Flags().StringVarP(&name, "name", "n", "", "Only list records with this exact subdomain")
	return cmd
}
