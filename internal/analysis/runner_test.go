package analysis

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistry(cls Classifier) *Registry {
	if cls == nil {
		cls = ClassifierFunc(func(context.Context, string) (bool, error) {
			return false, nil
		})
	}
	return NewRegistry(
		NewToxicityAnalyzer(cls),
		NewHeuristicAnalyzer(),
		NewRuleBasedAnalyzer(DefaultRules()),
	)
}

func TestRunner_PreservesRequestOrderAndLength(t *testing.T) {
	r := NewRunner(newTestRegistry(nil))

	requested := []string{
		NameRuleBasedCompliance,
		"Sentiment Analysis", // unknown
		NameToxicity,
		NameToxicity, // duplicate, evaluated independently
		NameHeuristicCompliance,
	}

	outcomes := r.Run(context.Background(), "This agreement includes CONFIDENTIALITY terms.", requested)

	require.Len(t, outcomes, len(requested))
	for i, raw := range requested {
		assert.Equal(t, raw, outcomes[i].Requested, "entry %d", i)
	}

	assert.NotNil(t, outcomes[0].Findings)
	assert.True(t, outcomes[1].Unsupported())
	assert.NotNil(t, outcomes[2].Toxic)
	assert.NotNil(t, outcomes[3].Toxic)
	assert.NotNil(t, outcomes[4].Compliant)
}

func TestRunner_UnknownTypeIsUnsupportedNotError(t *testing.T) {
	r := NewRunner(newTestRegistry(nil))

	outcomes := r.Run(context.Background(), "text", []string{"No Such Analysis"})

	require.Len(t, outcomes, 1)
	assert.True(t, outcomes[0].Unsupported())
	assert.False(t, outcomes[0].Failed())
	assert.Nil(t, outcomes[0].Toxic)
	assert.Nil(t, outcomes[0].Compliant)
	assert.Nil(t, outcomes[0].Findings)
}

func TestRunner_FailureIsIsolatedPerEntry(t *testing.T) {
	failing := ClassifierFunc(func(context.Context, string) (bool, error) {
		return false, errors.New("model not loaded")
	})
	r := NewRunner(newTestRegistry(failing))

	requested := []string{NameToxicity, NameHeuristicCompliance, NameRuleBasedCompliance}
	outcomes := r.Run(context.Background(), "This contract has CONFIDENTIALITY terms.", requested)

	require.Len(t, outcomes, 3)

	assert.True(t, outcomes[0].Failed())
	assert.ErrorIs(t, outcomes[0].Err, ErrClassifierUnavailable)

	assert.False(t, outcomes[1].Failed())
	assert.NotNil(t, outcomes[1].Compliant)

	assert.False(t, outcomes[2].Failed())
	require.Len(t, outcomes[2].Findings, 2)
}

func TestRunner_EmptyRequestYieldsEmptyOutcomes(t *testing.T) {
	r := NewRunner(newTestRegistry(nil))

	outcomes := r.Run(context.Background(), "text", nil)

	assert.Empty(t, outcomes)
}

func TestParseType(t *testing.T) {
	tests := []struct {
		in   string
		want Type
	}{
		{NameToxicity, TypeToxicity},
		{NameHeuristicCompliance, TypeHeuristicCompliance},
		{NameRuleBasedCompliance, TypeRuleBasedCompliance},
		{"", TypeUnknown},
		{"toxicity analysis", TypeUnknown}, // identifiers are case-sensitive
		{"anything else", TypeUnknown},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseType(tt.in), "input %q", tt.in)
	}
}
