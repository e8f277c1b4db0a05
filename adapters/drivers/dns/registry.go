// Package dnsdrv defines the provider driver abstraction and registry.
// Implementations live under adapters/drivers/dns/<name> and register
// themselves from their init() function.
package dnsdrv

import (
	"context"

	"github.com/ovhops/ovhops/domain/model"
)

// ConsumerKeyValidation is the result of a one-shot credential bootstrap:
// the operator must visit the validation URL to activate the key.
type ConsumerKeyValidation struct {
	ConsumerKey   string `json:"consumerKey"`
	ValidationURL string `json:"validationUrl"`
}

// Driver abstracts one remote infrastructure provider. It exposes the
// domain ports backed by the provider's REST API.
type Driver interface {
	// ID returns the provider identifier (e.g., "ovh").
	ID() string

	// Zone returns the DNS zone port.
	Zone() model.ZonePort

	// LoadBalancing returns the IP load-balancing port.
	LoadBalancing() model.LoadBalancingPort

	// Reverse returns the IP reverse port.
	Reverse() model.ReversePort

	// RequestConsumerKey asks the provider for a new consumer key covering
	// the API paths this tool uses. Process-wide one-time setup; not part
	// of reconciliation.
	RequestConsumerKey(ctx context.Context) (*ConsumerKeyValidation, error)
}

// driverFactory is a constructor function for a provider driver.
type driverFactory func(settings map[string]string) (Driver, error)

// registry holds registered drivers by name.
var registry = map[string]driverFactory{}

// Register makes a driver available by the given name. Drivers should call
// this from their init() function.
func Register(name string, factory driverFactory) {
	registry[name] = factory
}

// GetDriverFactory returns the driver factory function for the given name.
func GetDriverFactory(name string) (driverFactory, bool) {
	factory, exists := registry[name]
	return factory, exists
}
