// Package ovhopscfg defines the configuration schema (structs) for
// ovhops.yml. This package is intended for YAML -> struct deserialization.
// Loading helpers and validations are implemented separately.
package ovhopscfg

// Root is the root structure of ovhops.yml.
type Root struct {
	Version  string   `yaml:"version"`
	Provider Provider `yaml:"provider"`
	Defaults Defaults `yaml:"defaults"`
	Task     Task     `yaml:"task"`
	Journal  Journal  `yaml:"journal"`
}

// Provider holds the API endpoint and credentials.
type Provider struct {
	Driver            string `yaml:"driver"`   // e.g., "ovh"
	Endpoint          string `yaml:"endpoint"` // alias (ovh-eu) or base URL
	ApplicationKey    string `yaml:"application_key"`
	ApplicationSecret string `yaml:"application_secret"`
	ConsumerKey       string `yaml:"consumer_key"`
}

// Defaults holds fallback values applied when a command omits them.
type Defaults struct {
	TTL int64 `yaml:"ttl"` // 0 = provider default
}

// Task controls the load-balancer task barrier.
type Task struct {
	PollInterval string `yaml:"poll_interval"` // Go duration, e.g. "1s"
	Timeout      string `yaml:"timeout"`       // Go duration; "" or "0" = no bound
}

// Journal selects the run-journal store.
type Journal struct {
	DBURL string `yaml:"db_url"` // e.g. "sqlite:ovhops.db"; "" disables the journal
}

// Settings flattens the provider block into the map the driver registry
// consumes.
func (p *Provider) Settings() map[string]string {
	return map[string]string{
		"endpoint":           p.Endpoint,
		"application_key":    p.ApplicationKey,
		"application_secret": p.ApplicationSecret,
		"consumer_key":       p.ConsumerKey,
	}
}
