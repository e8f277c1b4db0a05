package model

import "context"

// RecordFilter narrows a zone record listing on the provider side. Empty
// fields mean no filtering.
type RecordFilter struct {
	Type RecordType
	Name string // exact subdomain; "" filters nothing, apex needs no filter
}

// ZonePort is the domain port to the provider's DNS zone API. Every call is
// a single HTTP round trip; failures surface as *ProviderError.
type ZonePort interface {
	// ListZones returns the zone names manageable by the credentials.
	ListZones(ctx context.Context) ([]string, error)

	// ListRecordIDs returns the IDs of records in the zone matching the
	// filter.
	ListRecordIDs(ctx context.Context, zone string, filter RecordFilter) ([]int64, error)

	// GetRecord fetches one record by ID.
	GetRecord(ctx context.Context, zone string, id int64) (*Record, error)

	// CreateRecord adds a record and returns it as stored.
	CreateRecord(ctx context.Context, zone string, payload *RecordPayload) (*Record, error)

	// UpdateRecord modifies the target and TTL of an existing record.
	UpdateRecord(ctx context.Context, zone string, id int64, target string, ttl int64) error

	// DeleteRecord removes a record by ID.
	DeleteRecord(ctx context.Context, zone string, id int64) error

	// RefreshZone commits pending zone changes so the DNS servers pick
	// them up. Issued once per mutation batch.
	RefreshZone(ctx context.Context, zone string) error
}
