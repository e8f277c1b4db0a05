package record

import (
	"github.com/ovhops/ovhops/domain"
	"github.com/ovhops/ovhops/domain/model"
)

// UseCase provides application logic for DNS record reconciliation.
type UseCase struct {
	Port    model.ZonePort
	Journal domain.RunRepository // optional; nil disables the journal
}

// ApplyInput holds the declared desired state for one invocation.
type ApplyInput struct {
	Zone  string           `json:"zone"`            // required: zone name
	Name  string           `json:"name"`            // subdomain; "" = apex, "*" = all (absent only)
	Type  model.RecordType `json:"type"`            // required: record type
	State model.Intent     `json:"state"`           // present, append, or absent
	Value string           `json:"value,omitempty"` // target value; required for present/append
	TTL   int64            `json:"ttl,omitempty"`   // 0 = provider default (3600)

	// NameIsPattern treats Name as a regular expression for bulk
	// selection. Unanchored patterns match substrings.
	NameIsPattern bool `json:"name_is_pattern,omitempty"`

	// OldValue narrows replacement candidates for present.
	OldValue          string `json:"old_value,omitempty"`
	OldValueIsPattern bool   `json:"old_value_is_pattern,omitempty"`

	// SelectPattern constrains absent deletion candidates by target value.
	SelectPattern string `json:"select_pattern,omitempty"`

	AllowDuplicate bool `json:"allow_duplicate,omitempty"`
	CheckMode      bool `json:"check_mode,omitempty"`
}

// Diff shows the record lines removed and added by the invocation.
type Diff struct {
	Before []string `json:"before"`
	After  []string `json:"after"`
}

// ApplyOutput reports the outcome of one invocation. The caller renders it;
// the use case never prints or exits.
type ApplyOutput struct {
	Changed bool       `json:"changed"`
	Action  string     `json:"action"`
	Diff    Diff       `json:"diff"`
	Message string     `json:"message"`
	Ops     []model.Op `json:"ops,omitempty"`
}

// ListInput selects records for the read-only listing.
type ListInput struct {
	Zone string           `json:"zone"`
	Type model.RecordType `json:"type,omitempty"`
	Name string           `json:"name,omitempty"`
}

// ListOutput holds the matching records.
type ListOutput struct {
	Records []model.Record `json:"records"`
}
