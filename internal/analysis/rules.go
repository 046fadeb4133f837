package analysis

import (
	"context"
	"strings"

	"contractchecker/internal/model"
)

// SatisfiedMessage is the finding message for a compliant rule.
const SatisfiedMessage = "Rule Checked! All Good!"

// Rule is one keyword compliance check. Phrase is matched case-insensitively
// as a substring of the whole document text. Required selects the compliant
// condition: presence when true, absence when false. Violation is the
// finding message when the rule is not satisfied.
type Rule struct {
	Phrase    string
	Required  bool
	Violation string
}

// DefaultRules returns the built-in contract compliance rule set.
func DefaultRules() []Rule {
	return []Rule{
		{
			Phrase:    "TERM AND TERMINATION",
			Required:  true,
			Violation: "Document must include a TERM AND TERMINATION terms.",
		},
		{
			Phrase:    "CONFIDENTIALITY",
			Required:  true,
			Violation: "Document must include CONFIDENTIALITY terms.",
		},
	}
}

// RuleBasedAnalyzer is the strategy for the "Rule Based Legal Compliance"
// type. It is pure and total: every input, including empty text, yields
// exactly one finding per rule in declaration order.
type RuleBasedAnalyzer struct {
	rules []Rule
}

// NewRuleBasedAnalyzer builds the strategy over a fixed rule set.
func NewRuleBasedAnalyzer(rules []Rule) *RuleBasedAnalyzer {
	return &RuleBasedAnalyzer{rules: rules}
}

// Analyze checks every rule against text and returns the findings.
func (a *RuleBasedAnalyzer) Analyze(text string) []model.ComplianceFinding {
	lower := strings.ToLower(text)

	findings := make([]model.ComplianceFinding, 0, len(a.rules))
	for _, r := range a.rules {
		present := strings.Contains(lower, strings.ToLower(r.Phrase))

		compliant := present
		if !r.Required {
			compliant = !present
		}

		msg := SatisfiedMessage
		if !compliant {
			msg = r.Violation
		}

		findings = append(findings, model.ComplianceFinding{
			Rule:      r.Phrase,
			Compliant: compliant,
			Message:   msg,
		})
	}
	return findings
}

func (a *RuleBasedAnalyzer) Evaluate(_ context.Context, text string, out *Outcome) error {
	out.Findings = a.Analyze(text)
	return nil
}
