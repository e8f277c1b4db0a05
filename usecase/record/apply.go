package record

import (
	"context"
	"fmt"
	"regexp"
	"slices"
	"time"

	"github.com/ovhops/ovhops/domain/model"
	"github.com/ovhops/ovhops/internal/logging"
)

// Apply reconciles one desired record against the zone and converges it
// with the minimum number of provider calls. The zone snapshot is read once
// and never refreshed mid-decision.
func (u *UseCase) Apply(ctx context.Context, in *ApplyInput) (*ApplyOutput, error) {
	if in == nil {
		return nil, fmt.Errorf("input is nil")
	}
	desired, sel, err := u.validate(in)
	if err != nil {
		return nil, err
	}

	if err := u.checkZone(ctx, in.Zone); err != nil {
		return nil, err
	}

	snapshot, err := u.snapshot(ctx, in, sel)
	if err != nil {
		return nil, err
	}

	candidates := model.Match(snapshot, sel)
	decision := model.Decide(candidates, *desired)
	if decision.Action == model.DecisionReject {
		return nil, decision.Err
	}

	out := &ApplyOutput{
		Changed: decision.Changed(),
		Action:  string(decision.Action),
		Diff:    buildDiff(candidates, decision),
		Ops:     decision.Ops(in.AllowDuplicate),
	}
	out.Message = message(in, decision)

	if !in.CheckMode && decision.Changed() {
		if err := u.execute(ctx, in.Zone, out.Ops); err != nil {
			return nil, err
		}
	}

	u.journal(ctx, in, out)
	return out, nil
}

func (u *UseCase) validate(in *ApplyInput) (*model.DesiredRecord, model.Selector, error) {
	var sel model.Selector
	if in.Zone == "" {
		return nil, sel, &model.ValidationError{Field: "zone", Reason: "required"}
	}
	if !model.ValidRecordType(in.Type) {
		return nil, sel, &model.ValidationError{Field: "type", Reason: fmt.Sprintf("unknown record type %q", in.Type)}
	}
	switch in.State {
	case model.IntentPresent, model.IntentAppend:
		if in.Value == "" {
			return nil, sel, &model.ValidationError{Field: "value", Reason: "required when state is " + string(in.State)}
		}
		if in.Name == "*" || in.NameIsPattern {
			return nil, sel, &model.ValidationError{Field: "name", Reason: "wildcard and pattern selection only apply to state absent"}
		}
	case model.IntentAbsent:
	default:
		return nil, sel, &model.ValidationError{Field: "state", Reason: "must be present, append, or absent"}
	}

	sel = model.Selector{Name: in.Name, Type: in.Type}
	if in.NameIsPattern {
		re, err := regexp.Compile(in.Name)
		if err != nil {
			return nil, sel, &model.ValidationError{Field: "name", Reason: err.Error()}
		}
		sel.NameRE = re
	}
	if in.State == model.IntentAbsent {
		// Deletion candidates may be constrained by value or pattern.
		sel.Target = in.Value
		if in.SelectPattern != "" {
			re, err := regexp.Compile(in.SelectPattern)
			if err != nil {
				return nil, sel, &model.ValidationError{Field: "select-pattern", Reason: err.Error()}
			}
			sel.TargetRE = re
		}
	}

	desired := &model.DesiredRecord{
		Zone:               in.Zone,
		Name:               in.Name,
		Type:               in.Type,
		Intent:             in.State,
		Target:             in.Value,
		TTL:                in.TTL,
		OldTarget:          in.OldValue,
		OldTargetIsPattern: in.OldValueIsPattern,
		AllowDuplicate:     in.AllowDuplicate,
		SelectPattern:      in.SelectPattern,
	}
	return desired, sel, nil
}

func (u *UseCase) checkZone(ctx context.Context, zone string) error {
	zones, err := u.Port.ListZones(ctx)
	if err != nil {
		return fmt.Errorf("list zones: %w", err)
	}
	if !slices.Contains(zones, zone) {
		return fmt.Errorf("%w: %s", model.ErrZoneNotFound, zone)
	}
	return nil
}

// snapshot fetches the point-in-time record set relevant to the request.
// Exact-name requests filter server-side; wildcard and pattern requests
// fetch the whole type slice and let the matcher narrow it.
func (u *UseCase) snapshot(ctx context.Context, in *ApplyInput, sel model.Selector) ([]model.Record, error) {
	filter := model.RecordFilter{Type: in.Type}
	if in.Name != "" && in.Name != "*" && !in.NameIsPattern {
		filter.Name = in.Name
	}
	ids, err := u.Port.ListRecordIDs(ctx, in.Zone, filter)
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
	return records, nil
}

// execute issues the provider calls strictly in order. There is no rollback;
// a mid-sequence failure surfaces the already-applied operations.
func (u *UseCase) execute(ctx context.Context, zone string, ops []model.Op) error {
	applied := make([]model.Op, 0, len(ops))
	for _, op := range ops {
		var err error
		switch op.Kind {
		case model.OpCreate:
			_, err = u.Port.CreateRecord(ctx, zone, op.Payload)
		case model.OpDelete:
			err = u.Port.DeleteRecord(ctx, zone, op.RecordID)
		case model.OpRefresh:
			err = u.Port.RefreshZone(ctx, zone)
		}
		if err != nil {
			if len(applied) > 0 {
				return &model.PartialApplyError{Zone: zone, Applied: applied, Err: err}
			}
			return fmt.Errorf("apply %s: %w", op.Kind, err)
		}
		applied = append(applied, op)
	}
	return nil
}

func buildDiff(candidates []model.Record, decision model.Decision) Diff {
	diff := Diff{Before: []string{}, After: []string{}}
	switch decision.Action {
	case model.DecisionCreate:
		diff.After = append(diff.After, formatPayload(decision.Payload))
	case model.DecisionReplace:
		for _, rec := range candidates {
			if slices.Contains(decision.DeleteIDs, rec.ID) {
				diff.Before = append(diff.Before, formatRecord(rec))
			}
		}
		diff.After = append(diff.After, formatPayload(decision.Payload))
	case model.DecisionDelete:
		for _, rec := range candidates {
			if slices.Contains(decision.DeleteIDs, rec.ID) {
				diff.Before = append(diff.Before, formatRecord(rec))
			}
		}
	}
	return diff
}

func message(in *ApplyInput, decision model.Decision) string {
	subject := fmt.Sprintf("%s record %s in zone %s", in.Type, displayName(in.Name), in.Zone)
	verb := map[model.DecisionAction]string{
		model.DecisionCreate:  "created",
		model.DecisionReplace: "replaced",
		model.DecisionDelete:  "deleted",
	}[decision.Action]

	switch {
	case decision.Action == model.DecisionNoOp && in.State == model.IntentAbsent:
		return subject + " is already absent"
	case decision.Action == model.DecisionNoOp:
		return subject + " is already as requested"
	case in.CheckMode:
		return fmt.Sprintf("%s would be %s", subject, verb)
	case decision.Action == model.DecisionDelete:
		return fmt.Sprintf("%s %s (%d record(s))", subject, verb, len(decision.DeleteIDs))
	default:
		return fmt.Sprintf("%s %s", subject, verb)
	}
}

func displayName(name string) string {
	if name == "" {
		return "@"
	}
	return name
}

func formatRecord(rec model.Record) string {
	return fmt.Sprintf("%s %s %s %d", displayName(rec.SubDomain), rec.FieldType, rec.Target, rec.TTL)
}

func formatPayload(p *model.RecordPayload) string {
	return fmt.Sprintf("%s %s %s %d", displayName(p.SubDomain), p.FieldType, p.Target, p.TTL)
}

// journal records the invocation outcome. Best effort: a journal failure is
// logged, never fatal to a converged reconciliation.
func (u *UseCase) journal(ctx context.Context, in *ApplyInput, out *ApplyOutput) {
	if u.Journal == nil {
		return
	}
	rec := &model.RunRecord{
		Kind:      model.RunKindRecord,
		Resource:  in.Zone,
		Name:      in.Name,
		Type:      string(in.Type),
		Action:    out.Action,
		Changed:   out.Changed,
		CheckMode: in.CheckMode,
		Message:   out.Message,
		CreatedAt: time.Now(),
	}
	if err := u.Journal.Create(ctx, rec); err != nil {
		logging.FromContext(ctx).Warn(ctx, "journal write failed", "error", err.Error())
	}
}
