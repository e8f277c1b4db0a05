package backend

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/ovhops/ovhops/domain/model"
	"github.com/ovhops/ovhops/internal/logging"
)

// Apply reconciles one backend of a legacy IP load balancer. The provider
// executes every mutation as a background task, so the task barrier is held
// before the state is read and re-acquired after each mutating call.
func (u *UseCase) Apply(ctx context.Context, in *ApplyInput) (*ApplyOutput, error) {
	if in == nil {
		return nil, fmt.Errorf("input is nil")
	}
	if err := validate(in); err != nil {
		return nil, err
	}

	if err := u.checkLoadBalancer(ctx, in.Name); err != nil {
		return nil, err
	}
	if err := u.AwaitQuiescent(ctx, in.Name); err != nil {
		return nil, err
	}

	backends, err := u.Port.ListBackends(ctx, in.Name)
	if err != nil {
		return nil, fmt.Errorf("list backends: %w", err)
	}
	exists := slices.Contains(backends, in.IP)

	var out *ApplyOutput
	switch in.State {
	case model.IntentPresent:
		out, err = u.applyPresent(ctx, in, exists)
	case model.IntentAbsent:
		out, err = u.applyAbsent(ctx, in, exists)
	}
	if err != nil {
		return nil, err
	}

	u.journal(ctx, in, out)
	return out, nil
}

func validate(in *ApplyInput) error {
	if in.Name == "" {
		return &model.ValidationError{Field: "name", Reason: "required"}
	}
	if in.IP == "" {
		return &model.ValidationError{Field: "ip", Reason: "required"}
	}
	switch in.State {
	case model.IntentPresent, model.IntentAbsent:
	default:
		return &model.ValidationError{Field: "state", Reason: "must be present or absent"}
	}
	if in.Probe != "" && !model.ValidBackendProbe(in.Probe) {
		return &model.ValidationError{Field: "probe", Reason: fmt.Sprintf("unknown probe %q", in.Probe)}
	}
	if in.Weight < 0 {
		return &model.ValidationError{Field: "weight", Reason: "must not be negative"}
	}
	return nil
}

func (u *UseCase) checkLoadBalancer(ctx context.Context, name string) error {
	names, err := u.Port.ListLoadBalancers(ctx)
	if err != nil {
		return fmt.Errorf("list load balancers: %w", err)
	}
	if !slices.Contains(names, name) {
		return fmt.Errorf("%w: %s", model.ErrLoadBalancerNotFound, name)
	}
	return nil
}

func (u *UseCase) applyPresent(ctx context.Context, in *ApplyInput, exists bool) (*ApplyOutput, error) {
	desired := desiredBackend(in)

	if !exists {
		out := &ApplyOutput{Changed: true, Action: "create"}
		if in.CheckMode {
			out.Message = fmt.Sprintf("backend %s would be attached to %s", in.IP, in.Name)
			return out, nil
		}
		if err := u.Port.CreateBackend(ctx, in.Name, desired); err != nil {
			return nil, fmt.Errorf("create backend %s: %w", in.IP, err)
		}
		if err := u.AwaitQuiescent(ctx, in.Name); err != nil {
			return nil, err
		}
		out.Message = fmt.Sprintf("backend %s attached to %s", in.IP, in.Name)
		return out, nil
	}

	current, err := u.Port.GetBackend(ctx, in.Name, in.IP)
	if err != nil {
		return nil, fmt.Errorf("get backend %s: %w", in.IP, err)
	}

	var updates []string
	if current.Weight != desired.Weight {
		updates = append(updates, fmt.Sprintf("weight %d -> %d", current.Weight, desired.Weight))
		if !in.CheckMode {
			if err := u.Port.SetBackendWeight(ctx, in.Name, in.IP, desired.Weight); err != nil {
				return nil, fmt.Errorf("set backend weight: %w", err)
			}
			if err := u.AwaitQuiescent(ctx, in.Name); err != nil {
				return nil, err
			}
		}
	}
	if current.Probe != desired.Probe {
		updates = append(updates, fmt.Sprintf("probe %s -> %s", current.Probe, desired.Probe))
		if !in.CheckMode {
			if err := u.Port.UpdateBackendProbe(ctx, in.Name, in.IP, desired.Probe); err != nil {
				return nil, fmt.Errorf("update backend probe: %w", err)
			}
			if err := u.AwaitQuiescent(ctx, in.Name); err != nil {
				return nil, err
			}
		}
	}

	if len(updates) == 0 {
		return &ApplyOutput{
			Action:  "noop",
			Message: fmt.Sprintf("backend %s on %s is already as requested", in.IP, in.Name),
		}, nil
	}
	verb := "updated"
	if in.CheckMode {
		verb = "would be updated"
	}
	return &ApplyOutput{
		Changed: true,
		Action:  "update",
		Message: fmt.Sprintf("backend %s on %s %s (%s)", in.IP, in.Name, verb, strings.Join(updates, ", ")),
	}, nil
}

func (u *UseCase) applyAbsent(ctx context.Context, in *ApplyInput, exists bool) (*ApplyOutput, error) {
	if !exists {
		return &ApplyOutput{
			Action:  "noop",
			Message: fmt.Sprintf("backend %s is already absent from %s", in.IP, in.Name),
		}, nil
	}
	out := &ApplyOutput{Changed: true, Action: "delete"}
	if in.CheckMode {
		out.Message = fmt.Sprintf("backend %s would be detached from %s", in.IP, in.Name)
		return out, nil
	}
	if err := u.Port.DeleteBackend(ctx, in.Name, in.IP); err != nil {
		return nil, fmt.Errorf("delete backend %s: %w", in.IP, err)
	}
	if err := u.AwaitQuiescent(ctx, in.Name); err != nil {
		return nil, err
	}
	out.Message = fmt.Sprintf("backend %s detached from %s", in.IP, in.Name)
	return out, nil
}

func desiredBackend(in *ApplyInput) *model.Backend {
	b := &model.Backend{IP: in.IP, Probe: in.Probe, Weight: in.Weight}
	if b.Probe == "" {
		b.Probe = model.BackendProbeNone
	}
	if b.Weight == 0 {
		b.Weight = model.DefaultBackendWeight
	}
	return b
}

func (u *UseCase) journal(ctx context.Context, in *ApplyInput, out *ApplyOutput) {
	if u.Journal == nil {
		return
	}
	rec := &model.RunRecord{
		Kind:      model.RunKindBackend,
		Resource:  in.Name,
		Name:      in.IP,
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
