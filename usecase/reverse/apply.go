package reverse

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ovhops/ovhops/domain/model"
	"github.com/ovhops/ovhops/internal/logging"
)

// Apply reconciles the reverse record of one IP address. With state present
// and a value, the reverse is created or replaced; with state present and no
// value, the invocation is a pure existence assertion and fails when no
// reverse is set. State absent removes the reverse if present.
func (u *UseCase) Apply(ctx context.Context, in *ApplyInput) (*ApplyOutput, error) {
	if in == nil {
		return nil, fmt.Errorf("input is nil")
	}
	if err := validate(in); err != nil {
		return nil, err
	}

	current, err := u.Port.GetReverse(ctx, in.IP)
	if err != nil {
		return nil, fmt.Errorf("get reverse for %s: %w", in.IP, err)
	}

	var out *ApplyOutput
	switch in.State {
	case model.IntentPresent:
		out, err = u.applyPresent(ctx, in, current)
	case model.IntentAbsent:
		out, err = u.applyAbsent(ctx, in, current)
	}
	if err != nil {
		return nil, err
	}

	u.journal(ctx, in, out)
	return out, nil
}

func validate(in *ApplyInput) error {
	if in.IP == "" {
		return &model.ValidationError{Field: "ip", Reason: "required"}
	}
	switch in.State {
	case model.IntentPresent, model.IntentAbsent:
		return nil
	}
	return &model.ValidationError{Field: "state", Reason: "must be present or absent"}
}

func (u *UseCase) applyPresent(ctx context.Context, in *ApplyInput, current *model.Reverse) (*ApplyOutput, error) {
	// Existence assertion only.
	if in.Value == "" {
		if current == nil {
			return nil, fmt.Errorf("%w: %s", model.ErrReverseNotSet, in.IP)
		}
		return &ApplyOutput{
			Action:  "noop",
			Diff:    Diff{Before: current.Reverse, After: current.Reverse},
			Message: fmt.Sprintf("reverse for %s is %s", in.IP, current.Reverse),
		}, nil
	}

	if current != nil && strings.EqualFold(current.Reverse, in.Value) {
		return &ApplyOutput{
			Action:  "noop",
			Diff:    Diff{Before: current.Reverse, After: current.Reverse},
			Message: fmt.Sprintf("reverse for %s is already %s", in.IP, current.Reverse),
		}, nil
	}

	out := &ApplyOutput{Changed: true, Action: "set", Diff: Diff{After: in.Value}}
	if current != nil {
		out.Diff.Before = current.Reverse
	}
	if in.CheckMode {
		out.Message = fmt.Sprintf("reverse for %s would be set to %s", in.IP, in.Value)
		return out, nil
	}
	if err := u.Port.SetReverse(ctx, in.IP, in.Value); err != nil {
		return nil, fmt.Errorf("set reverse for %s: %w", in.IP, err)
	}
	out.Message = fmt.Sprintf("reverse for %s set to %s", in.IP, in.Value)
	return out, nil
}

func (u *UseCase) applyAbsent(ctx context.Context, in *ApplyInput, current *model.Reverse) (*ApplyOutput, error) {
	if current == nil {
		return &ApplyOutput{
			Action:  "noop",
			Message: fmt.Sprintf("reverse for %s is already absent", in.IP),
		}, nil
	}
	out := &ApplyOutput{Changed: true, Action: "delete", Diff: Diff{Before: current.Reverse}}
	if in.CheckMode {
		out.Message = fmt.Sprintf("reverse for %s would be removed", in.IP)
		return out, nil
	}
	if err := u.Port.DeleteReverse(ctx, in.IP, current.IP); err != nil {
		return nil, fmt.Errorf("delete reverse for %s: %w", in.IP, err)
	}
	out.Message = fmt.Sprintf("reverse for %s removed", in.IP)
	return out, nil
}

func (u *UseCase) journal(ctx context.Context, in *ApplyInput, out *ApplyOutput) {
	if u.Journal == nil {
		return
	}
	rec := &model.RunRecord{
		Kind:      model.RunKindReverse,
		Resource:  in.IP,
		Name:      in.Value,
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
