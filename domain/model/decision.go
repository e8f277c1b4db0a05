package model

// DecisionAction enumerates the outcomes of the decision engine.
type DecisionAction string

const (
	DecisionNoOp    DecisionAction = "noop"
	DecisionCreate  DecisionAction = "create"
	DecisionReplace DecisionAction = "replace"
	DecisionDelete  DecisionAction = "delete"
	DecisionReject  DecisionAction = "reject"
)

// Decision is the single outcome of one reconciliation invocation. It is
// produced once by Decide and consumed exactly once by the executor.
//
// DeleteIDs is a set: the order of deletions never affects the converged
// state, only atomicity relative to the provider's call sequencing.
type Decision struct {
	Action    DecisionAction
	DeleteIDs []int64
	Payload   *RecordPayload
	Err       error // set when Action is DecisionReject
}

func noOp() Decision { return Decision{Action: DecisionNoOp} }

func create(p *RecordPayload) Decision {
	return Decision{Action: DecisionCreate, Payload: p}
}

func replace(ids []int64, p *RecordPayload) Decision {
	return Decision{Action: DecisionReplace, DeleteIDs: ids, Payload: p}
}

func remove(ids []int64) Decision {
	return Decision{Action: DecisionDelete, DeleteIDs: ids}
}

func reject(err error) Decision {
	return Decision{Action: DecisionReject, Err: err}
}

// Changed reports whether applying the decision mutates provider state.
func (d Decision) Changed() bool {
	switch d.Action {
	case DecisionCreate, DecisionReplace, DecisionDelete:
		return true
	}
	return false
}

// OpKind enumerates provider calls issued by the executor.
type OpKind string

const (
	OpCreate  OpKind = "create"
	OpDelete  OpKind = "delete"
	OpRefresh OpKind = "refresh"
)

// Op describes one provider mutation, in the order it was (or would be)
// issued.
type Op struct {
	Kind     OpKind         `json:"kind"`
	RecordID int64          `json:"record_id,omitempty"`
	Payload  *RecordPayload `json:"payload,omitempty"`
}

// Ops expands the decision into the ordered provider call sequence.
// Replacements delete before creating so no duplicate value is ever visible;
// when the caller explicitly allows duplicates the create is issued first,
// accepting the transient duplicate in exchange for no gap in resolution.
// Any mutation batch ends with a single zone refresh.
func (d Decision) Ops(allowDuplicate bool) []Op {
	var ops []Op
	switch d.Action {
	case DecisionCreate:
		ops = append(ops, Op{Kind: OpCreate, Payload: d.Payload})
	case DecisionReplace:
		if allowDuplicate {
			ops = append(ops, Op{Kind: OpCreate, Payload: d.Payload})
			for _, id := range d.DeleteIDs {
				ops = append(ops, Op{Kind: OpDelete, RecordID: id})
			}
		} else {
			for _, id := range d.DeleteIDs {
				ops = append(ops, Op{Kind: OpDelete, RecordID: id})
			}
			ops = append(ops, Op{Kind: OpCreate, Payload: d.Payload})
		}
	case DecisionDelete:
		for _, id := range d.DeleteIDs {
			ops = append(ops, Op{Kind: OpDelete, RecordID: id})
		}
	default:
		return nil
	}
	ops = append(ops, Op{Kind: OpRefresh})
	return ops
}
