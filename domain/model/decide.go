package model

import (
	"regexp"
	"strings"
)

// Decide consumes the candidate subset plus the desired record and produces
// the one decision for this invocation. It is deterministic and idempotent:
// the same snapshot and desired state always yield the same decision, and a
// converged zone always yields a no-op.
func Decide(candidates []Record, desired DesiredRecord) Decision {
	switch desired.Intent {
	case IntentPresent:
		return decidePresent(candidates, desired)
	case IntentAppend:
		return decideAppend(candidates, desired)
	case IntentAbsent:
		return decideAbsent(candidates, desired)
	}
	return reject(&ValidationError{Field: "state", Reason: "must be present, append, or absent"})
}

// converged reports whether rec already carries the desired value. The TTL
// only participates when the caller specified one.
func converged(rec Record, desired DesiredRecord) bool {
	if !strings.EqualFold(rec.Target, desired.Target) {
		return false
	}
	return desired.TTL == 0 || rec.TTL == desired.TTL
}

func decidePresent(candidates []Record, desired DesiredRecord) Decision {
	for _, rec := range candidates {
		if converged(rec, desired) {
			return noOp()
		}
	}

	if desired.OldTarget != "" {
		matched, err := narrowByOldTarget(candidates, desired)
		if err != nil {
			return reject(err)
		}
		if len(matched) == 0 {
			if !desired.AllowDuplicate {
				return reject(ErrOldTargetNotFound)
			}
			// Nothing to replace and duplicates are permitted.
			return create(desired.Payload())
		}
		if len(matched) > 1 && !desired.AllowDuplicate {
			return reject(&AmbiguousMatchError{
				Zone: desired.Zone,
				Name: desired.Name,
				Type: desired.Type,
				IDs:  recordIDs(matched),
			})
		}
		return replace(recordIDs(matched), desired.Payload())
	}

	if len(candidates) > 1 && singletonTypes[desired.Type] {
		return reject(&AmbiguousMatchError{
			Zone: desired.Zone,
			Name: desired.Name,
			Type: desired.Type,
			IDs:  recordIDs(candidates),
		})
	}

	if len(candidates) > 0 {
		return replace(recordIDs(candidates), desired.Payload())
	}

	return create(desired.Payload())
}

func decideAppend(candidates []Record, desired DesiredRecord) Decision {
	ttl := desired.EffectiveTTL()
	for _, rec := range candidates {
		if strings.EqualFold(rec.Target, desired.Target) && rec.TTL == ttl {
			return noOp()
		}
	}
	return create(desired.Payload())
}

func decideAbsent(candidates []Record, desired DesiredRecord) Decision {
	if desired.Name == "*" && desired.Target == "" && desired.SelectPattern == "" {
		return reject(ErrRefusedWildcard)
	}
	if len(candidates) == 0 {
		// Already absent; idempotent no-op, never an error.
		return noOp()
	}
	return remove(recordIDs(candidates))
}

func narrowByOldTarget(candidates []Record, desired DesiredRecord) ([]Record, error) {
	if !desired.OldTargetIsPattern {
		var out []Record
		for _, rec := range candidates {
			if strings.EqualFold(rec.Target, desired.OldTarget) {
				out = append(out, rec)
			}
		}
		return out, nil
	}
	re, err := regexp.Compile(desired.OldTarget)
	if err != nil {
		return nil, &ValidationError{Field: "old-value", Reason: err.Error()}
	}
	var out []Record
	for _, rec := range candidates {
		if re.MatchString(rec.Target) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func recordIDs(records []Record) []int64 {
	ids := make([]int64, 0, len(records))
	for _, rec := range records {
		ids = append(ids, rec.ID)
	}
	return ids
}
