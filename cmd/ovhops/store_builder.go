package main

import (
	"fmt"
	"strings"

	"github.com/ovhops/ovhops/adapters/store/inmem"
	"github.com/ovhops/ovhops/adapters/store/rdb"
	"github.com/ovhops/ovhops/config/ovhopscfg"
	"github.com/ovhops/ovhops/domain"
	"github.com/spf13/cobra"
)

// getDBURL resolves the run-journal URL: the db-url flag wins over the
// journal section of the config file.
func getDBURL(cmd *cobra.Command, cfg *ovhopscfg.Root) string {
	if f := cmd.Flags().Lookup("db-url"); f != nil && f.Value.String() != "" {
		return f.Value.String()
	}
	return cfg.Journal.DBURL
}

// buildJournal creates the run-journal repository based on db-url.
// An empty URL disables journaling and returns nil.
func buildJournal(cmd *cobra.Command, cfg *ovhopscfg.Root) (domain.RunRepository, error) {
	dbURL := getDBURL(cmd, cfg)

	switch {
	case dbURL == "":
		return nil, nil

	case dbURL == "inmem:":
		return inmem.NewStore().RunRepo, nil

	case strings.HasPrefix(dbURL, "sqlite:") || strings.HasPrefix(dbURL, "sqlite3:"):
		db, err := rdb.OpenFromURL(dbURL)
		if err != nil {
			return nil, err
		}
		if err := rdb.AutoMigrate(db); err != nil {
			return nil, err
		}
		return rdb.NewRunRepository(db), nil

	default:
		return nil, fmt.Errorf("unsupported db scheme: %s", dbURL)
	}
}
