package reverse

import (
	"github.com/ovhops/ovhops/domain"
	"github.com/ovhops/ovhops/domain/model"
)

// UseCase provides application logic for reverse DNS (PTR) reconciliation.
type UseCase struct {
	Port    model.ReversePort
	Journal domain.RunRepository // optional; nil disables the journal
}

// ApplyInput holds the declared desired state for one IP's reverse record.
type ApplyInput struct {
	IP    string       `json:"ip"`    // required: IP address
	State model.Intent `json:"state"` // present or absent

	// Value is the reverse hostname. With state present and an empty Value
	// the invocation only asserts that a reverse exists.
	Value     string `json:"value,omitempty"`
	CheckMode bool   `json:"check_mode,omitempty"`
}

// Diff shows the reverse value before and after the invocation.
type Diff struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

// ApplyOutput reports the outcome of one invocation.
type ApplyOutput struct {
	Changed bool   `json:"changed"`
	Action  string `json:"action"`
	Diff    Diff   `json:"diff"`
	Message string `json:"message"`
}
