package record

import (
	"context"
	"fmt"
	"slices"

	"github.com/ovhops/ovhops/domain/model"
)

// List returns the zone records matching the optional type and name
// filters. Read-only; no refresh, no journal entry.
func (u *UseCase) List(ctx context.Context, in *ListInput) (*ListOutput, error) {
	if in == nil {
		return nil, fmt.Errorf("input is nil")
	}
	if in.Zone == "" {
		return nil, &model.ValidationError{Field: "zone", Reason: "required"}
	}
	if in.Type != "" && !model.ValidRecordType(in.Type) {
		return nil, &model.ValidationError{Field: "type", Reason: fmt.Sprintf("unknown record type %q", in.Type)}
	}

	if err := u.checkZone(ctx, in.Zone); err != nil {
		return nil, err
	}

	ids, err := u.Port.ListRecordIDs(ctx, in.Zone, model.RecordFilter{Type: in.Type, Name: in.Name})
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}
	records := make([]model.Record, 0, len(ids))
	for _, id := range ids {
		rec, err := u.Port.GetRecord(ctx, in.Zone, id)
		if err != nil {
			return nil, fmt.Errorf("get record %d: %w", id, err)
		}
		records = append(records, *rec)
	}
	slices.SortFunc(records, func(a, b model.Record) int {
		if a.SubDomain != b.SubDomain {
			if a.SubDomain < b.SubDomain {
				return -1
			}
			return 1
		}
		if a.ID < b.ID {
			return -1
		}
		if a.ID > b.ID {
			return 1
		}
		return 0
	})
	return &ListOutput{Records: records}, nil
}
