package main

import (
	"fmt"

	dnsdrv "github.com/ovhops/ovhops/adapters/drivers/dns"
	"github.com/ovhops/ovhops/config/ovhopscfg"
	"github.com/ovhops/ovhops/usecase/backend"
	"github.com/ovhops/ovhops/usecase/record"
	"github.com/ovhops/ovhops/usecase/reverse"
	"github.com/spf13/cobra"
)

// buildDriver creates the provider driver selected by the configuration.
func buildDriver(cfg *ovhopscfg.Root) (dnsdrv.Driver, error) {
	factory, ok := dnsdrv.GetDriverFactory(cfg.Provider.Driver)
	if !ok {
		return nil, fmt.Errorf("unknown provider driver: %s", cfg.Provider.Driver)
	}
	return factory(cfg.Provider.Settings())
}

// buildRecordUseCase creates the record use case with driver and journal.
func buildRecordUseCase(cmd *cobra.Command) (*record.UseCase, *ovhopscfg.Root, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	drv, err := buildDriver(cfg)
	if err != nil {
		return nil, nil, err
	}
	journal, err := buildJournal(cmd, cfg)
	if err != nil {
		return nil, nil, err
	}
	return &record.UseCase{Port: drv.Zone(), Journal: journal}, cfg, nil
}

// buildBackendUseCase creates the backend use case with the task barrier
// tuned from the config.
func buildBackendUseCase(cmd *cobra.Command) (*backend.UseCase, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	drv, err := buildDriver(cfg)
	if err != nil {
		return nil, err
	}
	journal, err := buildJournal(cmd, cfg)
	if err != nil {
		return nil, err
	}
	interval, err := cfg.Task.PollIntervalDuration()
	if err != nil {
		return nil, err
	}
	timeout, err := cfg.Task.TimeoutDuration()
	if err != nil {
		return nil, err
	}
	return &backend.UseCase{
		Port:         drv.LoadBalancing(),
		Journal:      journal,
		WaitInterval: interval,
		WaitTimeout:  timeout,
	}, nil
}

// buildReverseUseCase creates the reverse DNS use case.
func buildReverseUseCase(cmd *cobra.Command) (*reverse.UseCase, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	drv, err := buildDriver(cfg)
	if err != nil {
		return nil, err
	}
	journal, err := buildJournal(cmd, cfg)
	if err != nil {
		return nil, err
	}
	return &reverse.UseCase{Port: drv.Reverse(), Journal: journal}, nil
}
