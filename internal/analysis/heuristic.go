package analysis

import (
	"context"
	"strings"
	"unicode"

	"github.com/kljensen/snowball"
)

// legalTerms is the fixed legal-domain vocabulary the heuristic strategy
// looks for. The terms are stemmed at construction so they compare
// correctly against stemmed document tokens.
var legalTerms = []string{"law", "contract", "agreement", "legal", "compliance"}

// HeuristicAnalyzer is the strategy for the "Legal Compliance" type. It
// combines a legal-term vocabulary check with a lexicon sentiment score.
// Unlike the toxicity strategy it never fails: any internal error degrades
// to a false verdict.
type HeuristicAnalyzer struct {
	legal   map[string]struct{}
	lexicon map[string]int
}

// NewHeuristicAnalyzer builds the strategy with the default legal
// vocabulary and sentiment lexicon, both stemmed.
func NewHeuristicAnalyzer() *HeuristicAnalyzer {
	a := &HeuristicAnalyzer{
		legal:   make(map[string]struct{}, len(legalTerms)),
		lexicon: make(map[string]int, len(sentimentLexicon)),
	}
	for _, term := range legalTerms {
		a.legal[stem(term)] = struct{}{}
	}
	// When two lexicon words share a stem the first declared weight wins,
	// keeping the table deterministic.
	for _, e := range sentimentLexicon {
		k := stem(e.word)
		if _, ok := a.lexicon[k]; !ok {
			a.lexicon[k] = e.weight
		}
	}
	return a
}

// Analyze reports whether text reads as compliant legal content: at least
// one legal-domain term present and a non-negative aggregate sentiment
// score. Empty or whitespace-only text yields false (no legal term).
//
// The contract is that Analyze never raises: a panic anywhere inside is
// recovered and mapped to false.
func (a *HeuristicAnalyzer) Analyze(text string) (compliant bool) {
	defer func() {
		if recover() != nil {
			compliant = false
		}
	}()

	var (
		legalFound bool
		score      int
	)
	for _, tok := range tokenize(text) {
		st := stem(tok)
		if _, ok := a.legal[st]; ok {
			legalFound = true
		}
		score += a.lexicon[st]
	}
	// The score is a raw sum with no normalization by document length.
	return legalFound && score >= 0
}

func (a *HeuristicAnalyzer) Evaluate(_ context.Context, text string, out *Outcome) error {
	v := a.Analyze(text)
	out.Compliant = &v
	return nil
}

// tokenize splits text into lowercase word tokens on anything that is not
// a letter or digit.
func tokenize(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// stem reduces a token to its Snowball (Porter2) stem. Tokens the stemmer
// cannot handle are kept as-is.
func stem(tok string) string {
	st, err := snowball.Stem(tok, "english", false)
	if err != nil || st == "" {
		return tok
	}
	return st
}
