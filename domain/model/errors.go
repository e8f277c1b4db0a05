package model

import (
	"errors"
	"fmt"
)

var (
	// ErrZoneNotFound means the desired zone is absent from the provider's
	// zone list. Fatal; no mutation is attempted.
	ErrZoneNotFound = errors.New("zone not found")

	// ErrLoadBalancerNotFound means the named load balancer is not owned by
	// the authenticated account.
	ErrLoadBalancerNotFound = errors.New("load balancer not found")

	// ErrRefusedWildcard guards against unconstrained destructive wildcard
	// deletes ("*" with no target or pattern constraint).
	ErrRefusedWildcard = errors.New("refusing unconstrained wildcard delete")

	// ErrOldTargetNotFound means an old target was given but no candidate
	// record carries it.
	ErrOldTargetNotFound = errors.New("old record not found")

	// ErrReverseNotSet means an existence check on a reverse record found
	// none.
	ErrReverseNotSet = errors.New("no reverse record set")
)

// ValidationError reports a missing or malformed caller-supplied value.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// AmbiguousMatchError means multiple candidate records match without a
// disambiguating old target.
type AmbiguousMatchError struct {
	Zone string
	Name string
	Type RecordType
	IDs  []int64
}

func (e *AmbiguousMatchError) Error() string {
	return fmt.Sprintf("ambiguous: %d %s records match %q in zone %s, specify an old value to select one", len(e.IDs), e.Type, e.Name, e.Zone)
}

// ProviderError wraps a transport, auth, or validation failure returned by
// the provider API. Callers only distinguish succeeded from failed; the
// status code is carried for diagnostics.
type ProviderError struct {
	Status  int
	Message string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider error (status %d): %s", e.Status, e.Message)
}

// PartialApplyError reports a multi-step mutation that failed after some
// provider calls already succeeded. The remote resource is left partially
// converged; Applied lists the calls that went through.
type PartialApplyError struct {
	Zone    string
	Applied []Op
	Err     error
}

func (e *PartialApplyError) Error() string {
	return fmt.Sprintf("partial apply on zone %s: %d operation(s) applied before failure: %v", e.Zone, len(e.Applied), e.Err)
}

func (e *PartialApplyError) Unwrap() error { return e.Err }
