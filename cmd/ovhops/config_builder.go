package main

import (
	"fmt"
	"os"

	"github.com/ovhops/ovhops/config/ovhopscfg"
	"github.com/spf13/cobra"
)

// loadConfig resolves the configuration for a command. A missing default
// config file falls back to the environment; an explicitly given path must
// exist.
func loadConfig(cmd *cobra.Command) (*ovhopscfg.Root, error) {
	path, _ := cmd.Flags().GetString("config")

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) && !cmd.Flags().Changed("config") {
			cfg := ovhopscfg.Default()
			if err := cfg.Validate(); err != nil {
				return nil, fmt.Errorf("no config file %s and environment incomplete: %w", path, err)
			}
			return cfg, nil
		}
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}

	cfg, err := ovhopscfg.Load(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}
