package model

import "time"

// Contract is a stored legal contract with its extracted text and the
// results of any analyses run against it. It is a pure domain model with
// no database-specific dependencies or tags; persistence lives in the
// repository layer.
//
// ContentText is set once at upload time and never mutated afterwards.
// Only the three analysis fields (Toxic, Compliant, RuleFindings) change
// after creation. A nil analysis field means "not yet analyzed".
type Contract struct {
	ID           string              `json:"contractId"`
	Title        string              `json:"title"`
	Author       string              `json:"author"`
	PagesNum     int                 `json:"pagesNum"`
	ContentText  string              `json:"contentText"`
	StoragePath  string              `json:"storagePath"`
	Size         int64               `json:"size"`
	Toxic        *bool               `json:"toxicityAnalysis"`
	Compliant    *bool               `json:"isCompliant"`
	RuleFindings []ComplianceFinding `json:"ruleBasedLegalCompliance,omitempty"`
	CreatedAt    time.Time           `json:"createdAt"`
}

// ComplianceFinding is the verdict for a single compliance rule. Findings
// are only ever embedded in a Contract's RuleFindings sequence, one per
// configured rule, in rule declaration order.
type ComplianceFinding struct {
	Rule      string `json:"rule"`
	Compliant bool   `json:"isCompliant"`
	Message   string `json:"message"`
}
