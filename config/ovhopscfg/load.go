package ovhopscfg

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads a YAML file from the given path and returns a deserialized
// Root. Credentials left empty in the file are filled from the OVH_*
// environment variables. It performs no validation beyond YAML decoding;
// validation is handled elsewhere.
func Load(path string) (*Root, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	var cfg Root
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal YAML: %w", err)
	}
	cfg.applyEnv()

	return &cfg, nil
}

// Default returns a configuration built purely from the environment, for
// running without a config file.
func Default() *Root {
	cfg := &Root{Version: "v1", Provider: Provider{Driver: "ovh"}}
	cfg.applyEnv()
	return cfg
}

func (r *Root) applyEnv() {
	envDefault(&r.Provider.Endpoint, "OVH_ENDPOINT")
	envDefault(&r.Provider.ApplicationKey, "OVH_APPLICATION_KEY")
	envDefault(&r.Provider.ApplicationSecret, "OVH_APPLICATION_SECRET")
	envDefault(&r.Provider.ConsumerKey, "OVH_CONSUMER_KEY")
}

func envDefault(dst *string, key string) {
	if *dst == "" {
		*dst = os.Getenv(key)
	}
}
