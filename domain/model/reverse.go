package model

import "context"

// Reverse is the PTR mapping the provider holds for one IP address.
type Reverse struct {
	IP      string `json:"ipReverse"`
	Reverse string `json:"reverse"`
}

// ReversePort is the domain port to the provider's IP reverse API.
type ReversePort interface {
	// GetReverse returns the reverse record for the IP, or nil when the IP
	// is manageable but has no reverse set. An IP outside the account's
	// blocks yields a *ProviderError.
	GetReverse(ctx context.Context, ip string) (*Reverse, error)

	// SetReverse creates or replaces the reverse record for the IP.
	SetReverse(ctx context.Context, ip, reverse string) error

	// DeleteReverse removes the reverse record for the IP.
	DeleteReverse(ctx context.Context, ip, ipReverse string) error
}
