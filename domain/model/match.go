package model

import (
	"regexp"
	"strings"
)

// Selector picks the candidate subset of a zone snapshot relevant to one
// desired-state request.
//
// Name matching is case-sensitive and exact unless NameRE is set. Target
// matching is case-insensitive when literal (DNS values are compared
// normalized) and regexp-based when TargetRE is set. Patterns are used as
// given: an unanchored pattern matches substrings, so callers wanting an
// exact match must anchor it themselves.
type Selector struct {
	Name   string
	NameRE *regexp.Regexp

	Type RecordType

	Target   string
	TargetRE *regexp.Regexp
}

// Wildcard reports whether the selector addresses all records of the type
// filter rather than one name.
func (s Selector) Wildcard() bool {
	return s.Name == "*" && s.NameRE == nil
}

// Constrained reports whether a wildcard selection is narrowed by a target
// value or pattern. Unconstrained wildcard deletes are refused upstream.
func (s Selector) Constrained() bool {
	return s.Target != "" || s.TargetRE != nil
}

// Match filters records down to the candidate set. It never errors and
// never mutates its input; an empty result is an empty slice.
//
// Wildcard selections always exclude NS records so a bulk delete cannot
// break zone delegation.
func Match(records []Record, sel Selector) []Record {
	out := []Record{}
	for _, rec := range records {
		if sel.Type != "" && rec.FieldType != sel.Type {
			continue
		}
		switch {
		case sel.NameRE != nil:
			if !sel.NameRE.MatchString(rec.SubDomain) {
				continue
			}
		case sel.Wildcard():
			if rec.FieldType == RecordTypeNS {
				continue
			}
		default:
			if rec.SubDomain != sel.Name {
				continue
			}
		}
		switch {
		case sel.TargetRE != nil:
			if !sel.TargetRE.MatchString(rec.Target) {
				continue
			}
		case sel.Target != "":
			if !strings.EqualFold(rec.Target, sel.Target) {
				continue
			}
		}
		out = append(out, rec)
	}
	return out
}
