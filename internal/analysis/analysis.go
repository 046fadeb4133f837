// Package analysis contains the contract analysis pipeline: the analyzer
// strategies, the registry that maps analysis types to strategies, and the
// runner that dispatches a batch of requested types against contract text.
package analysis

import (
	"context"

	"contractchecker/internal/model"
)

// Type identifies a supported analysis. TypeUnknown is a valid, expected
// value: clients may request identifiers that do not exist, and those
// resolve to an unsupported outcome rather than an error.
type Type int

const (
	TypeUnknown Type = iota
	TypeToxicity
	TypeHeuristicCompliance
	TypeRuleBasedCompliance
)

// Wire identifiers accepted in analyze requests. These are the exact
// strings the public API has always used.
const (
	NameToxicity            = "Toxicity Analysis"
	NameHeuristicCompliance = "Legal Compliance"
	NameRuleBasedCompliance = "Rule Based Legal Compliance"
)

// ParseType maps a requested analysis-type identifier to its Type.
// Unrecognized identifiers map to TypeUnknown.
func ParseType(s string) Type {
	switch s {
	case NameToxicity:
		return TypeToxicity
	case NameHeuristicCompliance:
		return TypeHeuristicCompliance
	case NameRuleBasedCompliance:
		return TypeRuleBasedCompliance
	default:
		return TypeUnknown
	}
}

// String returns the wire identifier for t, or "Unknown" for TypeUnknown.
func (t Type) String() string {
	switch t {
	case TypeToxicity:
		return NameToxicity
	case TypeHeuristicCompliance:
		return NameHeuristicCompliance
	case TypeRuleBasedCompliance:
		return NameRuleBasedCompliance
	default:
		return "Unknown"
	}
}

// Outcome is the result of one requested analysis entry. Exactly one of
// the result fields is populated on success; Err is set when the strategy
// failed; neither is set for an unsupported type.
type Outcome struct {
	// Requested is the identifier exactly as the client sent it.
	Requested string
	Type      Type

	Toxic     *bool
	Compliant *bool
	Findings  []model.ComplianceFinding

	Err error
}

// Unsupported reports whether the requested identifier did not resolve to
// any known analysis type.
func (o Outcome) Unsupported() bool { return o.Type == TypeUnknown }

// Failed reports whether the strategy ran and failed.
func (o Outcome) Failed() bool { return o.Err != nil }

// Strategy evaluates contract text for a single analysis type, recording
// its verdict on out. A returned error is captured per-entry by the
// runner; it never aborts sibling analyses.
type Strategy interface {
	Evaluate(ctx context.Context, text string, out *Outcome) error
}

// Registry is a fixed mapping from analysis types to the strategies that
// implement them. It is built once at startup and never mutated.
type Registry struct {
	strategies map[Type]Strategy
}

// NewRegistry builds the registry over the three concrete strategies.
func NewRegistry(toxicity, heuristic, ruleBased Strategy) *Registry {
	return &Registry{strategies: map[Type]Strategy{
		TypeToxicity:            toxicity,
		TypeHeuristicCompliance: heuristic,
		TypeRuleBasedCompliance: ruleBased,
	}}
}

// Resolve looks up the strategy for t. The second return value is false
// for TypeUnknown or for a type with no registered strategy. A failed
// lookup is a normal outcome, not an error.
func (r *Registry) Resolve(t Type) (Strategy, bool) {
	s, ok := r.strategies[t]
	if !ok || s == nil {
		return nil, false
	}
	return s, true
}
