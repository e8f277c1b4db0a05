package ovhopscfg

import (
	"testing"
	"time"
)

func validConfig() *Root {
	return &Root{
		Version: "v1",
		Provider: Provider{
			Driver:            "ovh",
			Endpoint:          "ovh-eu",
			ApplicationKey:    "ak",
			ApplicationSecret: "as",
			ConsumerKey:       "ck",
		},
		Task: Task{PollInterval: "1s", Timeout: "5m"},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Root)
		wantErr bool
	}{
		{"valid", func(r *Root) {}, false},
		{"empty version allowed", func(r *Root) { r.Version = "" }, false},
		{"missing consumer key allowed", func(r *Root) { r.Provider.ConsumerKey = "" }, false},
		{"empty task allowed", func(r *Root) { r.Task = Task{} }, false},
		{"unknown version", func(r *Root) { r.Version = "v2" }, true},
		{"missing driver", func(r *Root) { r.Provider.Driver = "" }, true},
		{"missing endpoint", func(r *Root) { r.Provider.Endpoint = "" }, true},
		{"missing application key", func(r *Root) { r.Provider.ApplicationKey = "" }, true},
		{"missing application secret", func(r *Root) { r.Provider.ApplicationSecret = "" }, true},
		{"negative ttl", func(r *Root) { r.Defaults.TTL = -1 }, true},
		{"bad poll interval", func(r *Root) { r.Task.PollInterval = "soon" }, true},
		{"negative timeout", func(r *Root) { r.Task.Timeout = "-1s" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestTaskDurations(t *testing.T) {
	task := Task{PollInterval: "2s", Timeout: ""}
	d, err := task.PollIntervalDuration()
	if err != nil || d != 2*time.Second {
		t.Errorf("poll interval = %v, %v", d, err)
	}
	d, err = task.TimeoutDuration()
	if err != nil || d != 0 {
		t.Errorf("timeout = %v, %v; want 0 (unbounded)", d, err)
	}
}
