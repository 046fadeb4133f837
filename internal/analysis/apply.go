package analysis

import "contractchecker/internal/model"

// Apply copies a successful outcome onto the matching contract analysis
// field and reports whether a field was written. Failed and unsupported
// outcomes leave the contract untouched, so a prior verdict is never
// erased by a failed re-run of the same type. Persistence is the caller's
// responsibility.
func Apply(c *model.Contract, o Outcome) bool {
	if o.Failed() || o.Unsupported() {
		return false
	}

	switch o.Type {
	case TypeToxicity:
		if o.Toxic == nil {
			return false
		}
		v := *o.Toxic
		c.Toxic = &v
		return true
	case TypeHeuristicCompliance:
		if o.Compliant == nil {
			return false
		}
		v := *o.Compliant
		c.Compliant = &v
		return true
	case TypeRuleBasedCompliance:
		if o.Findings == nil {
			return false
		}
		c.RuleFindings = append([]model.ComplianceFinding(nil), o.Findings...)
		return true
	default:
		return false
	}
}
