package model

import (
	"errors"
	"testing"
)

func TestDecidePresent(t *testing.T) {
	twoARecords := []Record{
		{ID: 1, SubDomain: "db1", FieldType: RecordTypeA, Target: "10.10.10.10", TTL: 3600},
		{ID: 2, SubDomain: "db1", FieldType: RecordTypeA, Target: "10.10.10.11", TTL: 3600},
	}

	tests := []struct {
		name       string
		candidates []Record
		desired    DesiredRecord
		wantAction DecisionAction
		wantIDs    []int64
		wantErr    error
	}{
		{
			name:       "empty zone creates",
			candidates: nil,
			desired:    DesiredRecord{Zone: "example.com", Name: "db1", Type: RecordTypeA, Intent: IntentPresent, Target: "10.10.10.10"},
			wantAction: DecisionCreate,
		},
		{
			name: "converged target is a no-op",
			candidates: []Record{
				{ID: 1, SubDomain: "db1", FieldType: RecordTypeA, Target: "10.10.10.10", TTL: 3600},
			},
			desired:    DesiredRecord{Zone: "example.com", Name: "db1", Type: RecordTypeA, Intent: IntentPresent, Target: "10.10.10.10"},
			wantAction: DecisionNoOp,
		},
		{
			name: "target comparison is case-insensitive",
			candidates: []Record{
				{ID: 3, SubDomain: "dbprod", FieldType: RecordTypeCNAME, Target: "db1", TTL: 3600},
			},
			desired:    DesiredRecord{Zone: "example.com", Name: "dbprod", Type: RecordTypeCNAME, Intent: IntentPresent, Target: "DB1"},
			wantAction: DecisionNoOp,
		},
		{
			name: "ttl mismatch forces replace",
			candidates: []Record{
				{ID: 1, SubDomain: "db1", FieldType: RecordTypeA, Target: "10.10.10.10", TTL: 600},
			},
			desired:    DesiredRecord{Zone: "example.com", Name: "db1", Type: RecordTypeA, Intent: IntentPresent, Target: "10.10.10.10", TTL: 3600},
			wantAction: DecisionReplace,
			wantIDs:    []int64{1},
		},
		{
			name: "unspecified ttl ignores existing ttl",
			candidates: []Record{
				{ID: 1, SubDomain: "db1", FieldType: RecordTypeA, Target: "10.10.10.10", TTL: 600},
			},
			desired:    DesiredRecord{Zone: "example.com", Name: "db1", Type: RecordTypeA, Intent: IntentPresent, Target: "10.10.10.10"},
			wantAction: DecisionNoOp,
		},
		{
			name: "single stale candidate replaced",
			candidates: []Record{
				{ID: 1, SubDomain: "db1", FieldType: RecordTypeA, Target: "10.10.10.99", TTL: 3600},
			},
			desired:    DesiredRecord{Zone: "example.com", Name: "db1", Type: RecordTypeA, Intent: IntentPresent, Target: "10.10.10.10"},
			wantAction: DecisionReplace,
			wantIDs:    []int64{1},
		},
		{
			name:       "two A records without old value is ambiguous",
			candidates: twoARecords,
			desired:    DesiredRecord{Zone: "example.com", Name: "db1", Type: RecordTypeA, Intent: IntentPresent, Target: "10.10.10.12"},
			wantAction: DecisionReject,
			wantErr:    &AmbiguousMatchError{},
		},
		{
			name:       "old value disambiguates to a single replace",
			candidates: twoARecords,
			desired: DesiredRecord{
				Zone: "example.com", Name: "db1", Type: RecordTypeA, Intent: IntentPresent,
				Target: "10.10.10.12", OldTarget: "10.10.10.11",
			},
			wantAction: DecisionReplace,
			wantIDs:    []int64{2},
		},
		{
			name:       "old value not found is rejected",
			candidates: twoARecords,
			desired: DesiredRecord{
				Zone: "example.com", Name: "db1", Type: RecordTypeA, Intent: IntentPresent,
				Target: "10.10.10.12", OldTarget: "10.10.10.99",
			},
			wantAction: DecisionReject,
			wantErr:    ErrOldTargetNotFound,
		},
		{
			name:       "old value not found with allow-duplicate creates",
			candidates: twoARecords,
			desired: DesiredRecord{
				Zone: "example.com", Name: "db1", Type: RecordTypeA, Intent: IntentPresent,
				Target: "10.10.10.12", OldTarget: "10.10.10.99", AllowDuplicate: true,
			},
			wantAction: DecisionCreate,
		},
		{
			name:       "old value pattern replaces all matches under allow-duplicate",
			candidates: twoARecords,
			desired: DesiredRecord{
				Zone: "example.com", Name: "db1", Type: RecordTypeA, Intent: IntentPresent,
				Target: "10.10.10.12", OldTarget: `^10\.10\.10\.1[01]$`, OldTargetIsPattern: true,
				AllowDuplicate: true,
			},
			wantAction: DecisionReplace,
			wantIDs:    []int64{1, 2},
		},
		{
			name:       "old value pattern matching several without allow-duplicate is ambiguous",
			candidates: twoARecords,
			desired: DesiredRecord{
				Zone: "example.com", Name: "db1", Type: RecordTypeA, Intent: IntentPresent,
				Target: "10.10.10.12", OldTarget: `^10\.10\.10\.`, OldTargetIsPattern: true,
			},
			wantAction: DecisionReject,
			wantErr:    &AmbiguousMatchError{},
		},
		{
			name:       "invalid old value pattern is rejected",
			candidates: twoARecords,
			desired: DesiredRecord{
				Zone: "example.com", Name: "db1", Type: RecordTypeA, Intent: IntentPresent,
				Target: "10.10.10.12", OldTarget: `([`, OldTargetIsPattern: true,
			},
			wantAction: DecisionReject,
			wantErr:    &ValidationError{},
		},
		{
			name: "multiple TXT records converge without old value",
			candidates: []Record{
				{ID: 6, SubDomain: "spf", FieldType: RecordTypeTXT, Target: "v=spf1 -all", TTL: 3600},
				{ID: 7, SubDomain: "spf", FieldType: RecordTypeTXT, Target: "v=spf1 ~all", TTL: 3600},
			},
			desired:    DesiredRecord{Zone: "example.com", Name: "spf", Type: RecordTypeTXT, Intent: IntentPresent, Target: "v=spf1 mx -all"},
			wantAction: DecisionReplace,
			wantIDs:    []int64{6, 7},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decide(tt.candidates, tt.desired)
			assertDecision(t, got, tt.wantAction, tt.wantIDs, tt.wantErr)
		})
	}
}

func TestDecideAppend(t *testing.T) {
	existing := []Record{
		{ID: 1, SubDomain: "mail", FieldType: RecordTypeMX, Target: "mx1.example.com.", TTL: 3600},
	}

	tests := []struct {
		name       string
		candidates []Record
		desired    DesiredRecord
		wantAction DecisionAction
	}{
		{
			name:       "identical record is a no-op",
			candidates: existing,
			desired:    DesiredRecord{Name: "mail", Type: RecordTypeMX, Intent: IntentAppend, Target: "MX1.example.com."},
			wantAction: DecisionNoOp,
		},
		{
			name:       "different target always creates",
			candidates: existing,
			desired:    DesiredRecord{Name: "mail", Type: RecordTypeMX, Intent: IntentAppend, Target: "mx2.example.com."},
			wantAction: DecisionCreate,
		},
		{
			name:       "same target different ttl creates",
			candidates: existing,
			desired:    DesiredRecord{Name: "mail", Type: RecordTypeMX, Intent: IntentAppend, Target: "mx1.example.com.", TTL: 600},
			wantAction: DecisionCreate,
		},
		{
			name:       "empty zone creates",
			candidates: nil,
			desired:    DesiredRecord{Name: "mail", Type: RecordTypeMX, Intent: IntentAppend, Target: "mx1.example.com."},
			wantAction: DecisionCreate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decide(tt.candidates, tt.desired)
			if got.Action != tt.wantAction {
				t.Errorf("action = %s, want %s", got.Action, tt.wantAction)
			}
			if len(got.DeleteIDs) != 0 {
				t.Errorf("append must never delete, got delete ids %v", got.DeleteIDs)
			}
		})
	}
}

func TestDecideAbsent(t *testing.T) {
	tests := []struct {
		name       string
		candidates []Record
		desired    DesiredRecord
		wantAction DecisionAction
		wantIDs    []int64
		wantErr    error
	}{
		{
			name:       "already absent is a no-op",
			candidates: nil,
			desired:    DesiredRecord{Name: "dbprod", Type: RecordTypeCNAME, Intent: IntentAbsent, Target: "db1"},
			wantAction: DecisionNoOp,
		},
		{
			name: "matching records are deleted",
			candidates: []Record{
				{ID: 3, SubDomain: "dbprod", FieldType: RecordTypeCNAME, Target: "db1", TTL: 3600},
			},
			desired:    DesiredRecord{Name: "dbprod", Type: RecordTypeCNAME, Intent: IntentAbsent, Target: "db1"},
			wantAction: DecisionDelete,
			wantIDs:    []int64{3},
		},
		{
			name: "unconstrained wildcard is refused",
			candidates: []Record{
				{ID: 1, SubDomain: "db1", FieldType: RecordTypeA, Target: "10.10.10.10", TTL: 3600},
			},
			desired:    DesiredRecord{Name: "*", Type: RecordTypeA, Intent: IntentAbsent},
			wantAction: DecisionReject,
			wantErr:    ErrRefusedWildcard,
		},
		{
			name: "wildcard with target constraint deletes",
			candidates: []Record{
				{ID: 6, SubDomain: "_acme-challenge.www", FieldType: RecordTypeTXT, Target: "tok-abc", TTL: 60},
				{ID: 7, SubDomain: "_acme-challenge.api", FieldType: RecordTypeTXT, Target: "tok-abc", TTL: 60},
			},
			desired:    DesiredRecord{Name: "*", Type: RecordTypeTXT, Intent: IntentAbsent, Target: "tok-abc"},
			wantAction: DecisionDelete,
			wantIDs:    []int64{6, 7},
		},
		{
			name: "wildcard with select pattern deletes",
			candidates: []Record{
				{ID: 6, SubDomain: "_acme-challenge.www", FieldType: RecordTypeTXT, Target: "tok-abc", TTL: 60},
			},
			desired:    DesiredRecord{Name: "*", Type: RecordTypeTXT, Intent: IntentAbsent, SelectPattern: "^tok-"},
			wantAction: DecisionDelete,
			wantIDs:    []int64{6},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decide(tt.candidates, tt.desired)
			assertDecision(t, got, tt.wantAction, tt.wantIDs, tt.wantErr)
		})
	}
}

func assertDecision(t *testing.T, got Decision, wantAction DecisionAction, wantIDs []int64, wantErr error) {
	t.Helper()
	if got.Action != wantAction {
		t.Fatalf("action = %s (err %v), want %s", got.Action, got.Err, wantAction)
	}
	if wantIDs != nil && !equalIDs(got.DeleteIDs, wantIDs) {
		t.Errorf("delete ids = %v, want %v", got.DeleteIDs, wantIDs)
	}
	if wantErr == nil {
		return
	}
	switch want := wantErr.(type) {
	case *AmbiguousMatchError:
		var ae *AmbiguousMatchError
		if !errors.As(got.Err, &ae) {
			t.Errorf("err = %v, want AmbiguousMatchError", got.Err)
		}
	case *ValidationError:
		var ve *ValidationError
		if !errors.As(got.Err, &ve) {
			t.Errorf("err = %v, want ValidationError", got.Err)
		}
	default:
		if !errors.Is(got.Err, want) {
			t.Errorf("err = %v, want %v", got.Err, want)
		}
	}
}

func TestDecisionOps(t *testing.T) {
	payload := &RecordPayload{SubDomain: "db1", FieldType: RecordTypeA, Target: "10.10.10.10", TTL: 3600}

	t.Run("replace deletes before create", func(t *testing.T) {
		d := Decision{Action: DecisionReplace, DeleteIDs: []int64{1, 2}, Payload: payload}
		ops := d.Ops(false)
		wantKinds := []OpKind{OpDelete, OpDelete, OpCreate, OpRefresh}
		assertOpKinds(t, ops, wantKinds)
	})

	t.Run("replace with allow-duplicate creates first", func(t *testing.T) {
		d := Decision{Action: DecisionReplace, DeleteIDs: []int64{1}, Payload: payload}
		ops := d.Ops(true)
		wantKinds := []OpKind{OpCreate, OpDelete, OpRefresh}
		assertOpKinds(t, ops, wantKinds)
	})

	t.Run("bulk delete refreshes once", func(t *testing.T) {
		d := Decision{Action: DecisionDelete, DeleteIDs: []int64{1, 2, 3}}
		ops := d.Ops(false)
		wantKinds := []OpKind{OpDelete, OpDelete, OpDelete, OpRefresh}
		assertOpKinds(t, ops, wantKinds)
	})

	t.Run("no-op issues nothing", func(t *testing.T) {
		if ops := (Decision{Action: DecisionNoOp}).Ops(false); ops != nil {
			t.Errorf("ops = %v, want nil", ops)
		}
	})

	t.Run("reject issues nothing", func(t *testing.T) {
		if ops := (Decision{Action: DecisionReject, Err: ErrRefusedWildcard}).Ops(false); ops != nil {
			t.Errorf("ops = %v, want nil", ops)
		}
	})
}

func assertOpKinds(t *testing.T, ops []Op, want []OpKind) {
	t.Helper()
	if len(ops) != len(want) {
		t.Fatalf("got %d ops, want %d", len(ops), len(want))
	}
	for i, op := range ops {
		if op.Kind != want[i] {
			t.Errorf("ops[%d].Kind = %s, want %s", i, op.Kind, want[i])
		}
	}
}
