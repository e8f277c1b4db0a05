package model

import "context"

// BackendProbe enumerates the health probes the load balancer supports.
type BackendProbe string

const (
	BackendProbeNone BackendProbe = "none"
	BackendProbeHTTP BackendProbe = "http"
	BackendProbeICMP BackendProbe = "icmp"
	BackendProbeOCO  BackendProbe = "oco"
)

// ValidBackendProbe reports whether p is an accepted probe type.
func ValidBackendProbe(p BackendProbe) bool {
	switch p {
	case BackendProbeNone, BackendProbeHTTP, BackendProbeICMP, BackendProbeOCO:
		return true
	}
	return false
}

// DefaultBackendWeight is applied when a desired backend does not specify a
// weight.
const DefaultBackendWeight int64 = 8

// Backend is one load-balancer backend entry, keyed by its IP address
// within the load balancer.
type Backend struct {
	IP     string       `json:"ipBackend"`
	Probe  BackendProbe `json:"probe"`
	Weight int64        `json:"weight"`
}

// LoadBalancingPort is the domain port to the provider's legacy IP
// load-balancing API. Mutations run as background tasks on the provider;
// callers must hold the task barrier around every mutating call.
type LoadBalancingPort interface {
	// ListLoadBalancers returns the load balancer service names
	// (ip-X.X.X.X) owned by the credentials.
	ListLoadBalancers(ctx context.Context) ([]string, error)

	// ListPendingTasks returns the IDs of background tasks still running
	// against the named load balancer.
	ListPendingTasks(ctx context.Context, name string) ([]int64, error)

	// ListBackends returns the backend IPs attached to the load balancer.
	ListBackends(ctx context.Context, name string) ([]string, error)

	// GetBackend fetches one backend's properties.
	GetBackend(ctx context.Context, name, ip string) (*Backend, error)

	// CreateBackend attaches a backend.
	CreateBackend(ctx context.Context, name string, backend *Backend) error

	// SetBackendWeight changes the weight of an existing backend.
	SetBackendWeight(ctx context.Context, name, ip string, weight int64) error

	// UpdateBackendProbe changes the probe of an existing backend.
	UpdateBackendProbe(ctx context.Context, name, ip string, probe BackendProbe) error

	// DeleteBackend detaches a backend.
	DeleteBackend(ctx context.Context, name, ip string) error
}
