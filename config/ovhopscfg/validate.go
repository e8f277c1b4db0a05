package ovhopscfg

import (
	"fmt"
	"time"
)

// Validate performs semantic validation on the configuration tree.
func (r *Root) Validate() error {
	if r.Version != "" && r.Version != "v1" {
		return fmt.Errorf("version: unsupported %q, must be v1", r.Version)
	}
	if err := r.Provider.validate(); err != nil {
		return fmt.Errorf("provider: %w", err)
	}
	if r.Defaults.TTL < 0 {
		return fmt.Errorf("defaults.ttl: must not be negative")
	}
	if err := r.Task.validate(); err != nil {
		return fmt.Errorf("task: %w", err)
	}
	return nil
}

func (p *Provider) validate() error {
	if p.Driver == "" {
		return fmt.Errorf("driver is required")
	}
	if p.Endpoint == "" {
		return fmt.Errorf("endpoint is required")
	}
	if p.ApplicationKey == "" {
		return fmt.Errorf("application_key is required")
	}
	if p.ApplicationSecret == "" {
		return fmt.Errorf("application_secret is required")
	}
	return nil
}

func (t *Task) validate() error {
	if _, err := t.PollIntervalDuration(); err != nil {
		return fmt.Errorf("poll_interval: %w", err)
	}
	if _, err := t.TimeoutDuration(); err != nil {
		return fmt.Errorf("timeout: %w", err)
	}
	return nil
}

// PollIntervalDuration parses the poll interval; empty means 0 and lets the
// caller apply its default.
func (t *Task) PollIntervalDuration() (time.Duration, error) {
	return parseDuration(t.PollInterval, false)
}

// TimeoutDuration parses the barrier timeout; empty or "0" means no bound.
func (t *Task) TimeoutDuration() (time.Duration, error) {
	return parseDuration(t.Timeout, true)
}

func parseDuration(s string, allowZero bool) (time.Duration, error) {
	if s == "" || s == "0" {
		return 0, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, err
	}
	if d < 0 || (!allowZero && d == 0) {
		return 0, fmt.Errorf("must be a positive duration, got %q", s)
	}
	return d, nil
}
