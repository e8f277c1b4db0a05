package model

// RecordType represents DNS record types accepted by the provider zone API.
type RecordType string

const (
	RecordTypeA     RecordType = "A"
	RecordTypeAAAA  RecordType = "AAAA"
	RecordTypeCNAME RecordType = "CNAME"
	RecordTypeDKIM  RecordType = "DKIM"
	RecordTypeLOC   RecordType = "LOC"
	RecordTypeMX    RecordType = "MX"
	RecordTypeNAPTR RecordType = "NAPTR"
	RecordTypeNS    RecordType = "NS"
	RecordTypePTR   RecordType = "PTR"
	RecordTypeSPF   RecordType = "SPF"
	RecordTypeSRV   RecordType = "SRV"
	RecordTypeSSHFP RecordType = "SSHFP"
	RecordTypeTXT   RecordType = "TXT"
)

// RecordTypes lists all accepted record types in a stable order.
var RecordTypes = []RecordType{
	RecordTypeA, RecordTypeAAAA, RecordTypeCNAME, RecordTypeDKIM,
	RecordTypeLOC, RecordTypeMX, RecordTypeNAPTR, RecordTypeNS,
	RecordTypePTR, RecordTypeSPF, RecordTypeSRV, RecordTypeSSHFP,
	RecordTypeTXT,
}

// ValidRecordType reports whether t is one of the accepted record types.
// Type names are case-sensitive; "a" is not a valid type.
func ValidRecordType(t RecordType) bool {
	for _, v := range RecordTypes {
		if v == t {
			return true
		}
	}
	return false
}

// singletonTypes are record types for which multiple records under the same
// name usually indicate an operator mistake rather than a record set.
// Convergence over more than one of these requires an explicit old target.
var singletonTypes = map[RecordType]bool{
	RecordTypeA:     true,
	RecordTypeAAAA:  true,
	RecordTypeCNAME: true,
}

// DefaultTTL is applied when a desired record does not specify a TTL.
const DefaultTTL int64 = 3600

// Record is a point-in-time snapshot of one zone record held by the
// provider. The ID is opaque and unique within the zone.
type Record struct {
	ID        int64      `json:"id"`
	Zone      string     `json:"zone"`
	SubDomain string     `json:"subDomain"` // "" means the zone apex
	FieldType RecordType `json:"fieldType"`
	Target    string     `json:"target"`
	TTL       int64      `json:"ttl"`
}

// RecordPayload is the body of a record create call.
type RecordPayload struct {
	SubDomain string     `json:"subDomain,omitempty"`
	FieldType RecordType `json:"fieldType"`
	Target    string     `json:"target"`
	TTL       int64      `json:"ttl"`
}

// Intent declares what the caller wants done with the desired record.
type Intent string

const (
	// IntentPresent converges the zone toward a single record with the
	// desired target, replacing existing candidates when necessary.
	IntentPresent Intent = "present"
	// IntentAppend adds the desired record unless an identical one exists.
	// It never deletes.
	IntentAppend Intent = "append"
	// IntentAbsent removes matching records.
	IntentAbsent Intent = "absent"
)

// DesiredRecord is the declared state for one reconciliation invocation.
// It is built from caller input once and never modified afterwards.
type DesiredRecord struct {
	Zone   string
	Name   string // subdomain; "" = apex, "*" = all records (absent only)
	Type   RecordType
	Intent Intent

	Target string
	TTL    int64 // 0 means DefaultTTL

	// OldTarget narrows replacement candidates to records whose target
	// matches it, literally or as a pattern.
	OldTarget          string
	OldTargetIsPattern bool

	// AllowDuplicate permits transient (and, with append, permanent)
	// duplicate values under the same name.
	AllowDuplicate bool

	// SelectPattern is a regular expression constraining deletion
	// candidates by target value. Unanchored patterns match substrings.
	SelectPattern string
}

// EffectiveTTL returns the TTL to write, applying the default.
func (d DesiredRecord) EffectiveTTL() int64 {
	if d.TTL > 0 {
		return d.TTL
	}
	return DefaultTTL
}

// Payload builds the create payload for the desired record.
func (d DesiredRecord) Payload() *RecordPayload {
	sub := d.Name
	if sub == "*" {
		sub = ""
	}
	return &RecordPayload{
		SubDomain: sub,
		FieldType: d.Type,
		Target:    d.Target,
		TTL:       d.EffectiveTTL(),
	}
}
