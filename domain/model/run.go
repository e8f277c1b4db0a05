package model

import "time"

// RunKind classifies journal entries by the resource reconciled.
type RunKind string

const (
	RunKindRecord  RunKind = "record"
	RunKindBackend RunKind = "backend"
	RunKindReverse RunKind = "reverse"
)

// RunRecord is one journal entry: the outcome of a single reconciliation
// invocation. The journal is append-only history for operators; the
// reconciliation engine itself never reads it.
type RunRecord struct {
	ID        string    `json:"id"`
	Kind      RunKind   `json:"kind"`
	Resource  string    `json:"resource"` // zone, load balancer name, or IP
	Name      string    `json:"name,omitempty"`
	Type      string    `json:"type,omitempty"`
	Action    string    `json:"action"` // decision action applied
	Changed   bool      `json:"changed"`
	CheckMode bool      `json:"check_mode"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
