package backend

import (
	"time"

	"github.com/ovhops/ovhops/domain"
	"github.com/ovhops/ovhops/domain/model"
)

// Default task-barrier polling parameters. A zero WaitTimeout means the
// barrier waits indefinitely, matching the provider's own task semantics.
const (
	DefaultWaitInterval = time.Second
)

// UseCase provides application logic for load-balancer backend
// reconciliation.
type UseCase struct {
	Port    model.LoadBalancingPort
	Journal domain.RunRepository // optional; nil disables the journal

	// WaitInterval is the delay between task polls; 0 means
	// DefaultWaitInterval.
	WaitInterval time.Duration

	// WaitTimeout bounds a single barrier wait; 0 means no bound.
	WaitTimeout time.Duration
}

// ApplyInput holds the declared desired state for one backend.
type ApplyInput struct {
	Name      string             `json:"name"`  // required: load balancer service name (ip-X.X.X.X)
	IP        string             `json:"ip"`    // required: backend IP address
	State     model.Intent       `json:"state"` // present or absent
	Probe     model.BackendProbe `json:"probe,omitempty"`
	Weight    int64              `json:"weight,omitempty"` // 0 = provider default (8)
	CheckMode bool               `json:"check_mode,omitempty"`
}

// ApplyOutput reports the outcome of one invocation.
type ApplyOutput struct {
	Changed bool   `json:"changed"`
	Action  string `json:"action"`
	Message string `json:"message"`
}
