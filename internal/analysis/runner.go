package analysis

import (
	"context"
	"encoding/json"
	"log"
	"time"
)

// Runner dispatches a batch of requested analysis types against contract
// text. Entries are evaluated sequentially, in request order, duplicates
// included; the returned slice always has exactly one outcome per
// requested entry. A failing strategy poisons only its own entry.
type Runner struct {
	registry *Registry
}

// NewRunner builds a runner over a registry.
func NewRunner(registry *Registry) *Runner {
	return &Runner{registry: registry}
}

// Run evaluates every requested type against text.
func (r *Runner) Run(ctx context.Context, text string, requested []string) []Outcome {
	outcomes := make([]Outcome, 0, len(requested))

	for _, raw := range requested {
		out := Outcome{Requested: raw, Type: ParseType(raw)}

		s, ok := r.registry.Resolve(out.Type)
		if !ok {
			outcomes = append(outcomes, out)
			continue
		}

		if err := s.Evaluate(ctx, text, &out); err != nil {
			out.Err = err
			logFailure(raw, err)
		}
		outcomes = append(outcomes, out)
	}
	return outcomes
}

func logFailure(analysisType string, err error) {
	entry := map[string]any{
		"ts":            time.Now().UTC().Format(time.RFC3339Nano),
		"level":         "error",
		"component":     "analysis",
		"event":         "analysis_failed",
		"analysis_type": analysisType,
		"error":         err.Error(),
	}
	if b, err := json.Marshal(entry); err == nil {
		log.SetFlags(0)
		log.Println(string(b))
	}
}
