package analysis

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"contractchecker/internal/config"
)

// ErrClassifierUnavailable is returned when the toxicity classifier could
// not be loaded or invoked. The runner captures it per-entry; sibling
// analyses in the same request still run.
var ErrClassifierUnavailable = errors.New("toxicity classifier unavailable")

// Classifier decides whether text contains toxic content.
type Classifier interface {
	Classify(ctx context.Context, text string) (bool, error)
}

// ClassifierFunc adapts a function to the Classifier interface.
type ClassifierFunc func(ctx context.Context, text string) (bool, error)

func (f ClassifierFunc) Classify(ctx context.Context, text string) (bool, error) {
	return f(ctx, text)
}

// LazyClassifier defers classifier construction until first use. Loading a
// model is expensive, so it happens at most once per process; concurrent
// first use is safe and loads exactly once. A failed load is cached and
// every subsequent call reports ErrClassifierUnavailable.
type LazyClassifier struct {
	load func() (Classifier, error)

	once sync.Once
	cls  Classifier
	err  error
}

// NewLazyClassifier wraps a load function in a once-initialized handle.
func NewLazyClassifier(load func() (Classifier, error)) *LazyClassifier {
	return &LazyClassifier{load: load}
}

func (l *LazyClassifier) Classify(ctx context.Context, text string) (bool, error) {
	l.once.Do(func() {
		l.cls, l.err = l.load()
	})
	if l.err != nil {
		return false, fmt.Errorf("%w: load: %v", ErrClassifierUnavailable, l.err)
	}
	return l.cls.Classify(ctx, text)
}

// HTTPClassifier calls a remote inference endpoint that scores text
// toxicity. The endpoint accepts {"text": ...} and answers
// {"score": <0..1>}; text is toxic when score >= threshold.
type HTTPClassifier struct {
	endpoint  string
	threshold float64
	client    *http.Client
}

// NewHTTPClassifier builds a classifier for the configured endpoint.
func NewHTTPClassifier(cfg config.ToxicityConfig) (*HTTPClassifier, error) {
	if cfg.Endpoint == "" {
		return nil, errors.New("toxicity endpoint is required")
	}
	timeout := time.Duration(cfg.TimeoutSec) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &HTTPClassifier{
		endpoint:  cfg.Endpoint,
		threshold: cfg.Threshold,
		client:    &http.Client{Timeout: timeout},
	}, nil
}

func (h *HTTPClassifier) Classify(ctx context.Context, text string) (bool, error) {
	body, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return false, fmt.Errorf("%w: encode request: %v", ErrClassifierUnavailable, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.endpoint, bytes.NewReader(body))
	if err != nil {
		return false, fmt.Errorf("%w: build request: %v", ErrClassifierUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrClassifierUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, fmt.Errorf("%w: endpoint returned %d", ErrClassifierUnavailable, resp.StatusCode)
	}

	var out struct {
		Score float64 `json:"score"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return false, fmt.Errorf("%w: decode response: %v", ErrClassifierUnavailable, err)
	}
	return out.Score >= h.threshold, nil
}

// ToxicityAnalyzer is the strategy for the "Toxicity Analysis" type. It is
// fail-loud: a classifier error propagates to the runner as a captured
// per-entry failure.
type ToxicityAnalyzer struct {
	cls Classifier
}

// NewToxicityAnalyzer builds the strategy around an injected classifier,
// typically a LazyClassifier in production and a fake in tests.
func NewToxicityAnalyzer(cls Classifier) *ToxicityAnalyzer {
	return &ToxicityAnalyzer{cls: cls}
}

// Analyze reports whether text is classified as toxic.
func (a *ToxicityAnalyzer) Analyze(ctx context.Context, text string) (bool, error) {
	toxic, err := a.cls.Classify(ctx, text)
	if err != nil {
		if errors.Is(err, ErrClassifierUnavailable) {
			return false, err
		}
		return false, fmt.Errorf("%w: %v", ErrClassifierUnavailable, err)
	}
	return toxic, nil
}

func (a *ToxicityAnalyzer) Evaluate(ctx context.Context, text string, out *Outcome) error {
	toxic, err := a.Analyze(ctx, text)
	if err != nil {
		return err
	}
	out.Toxic = &toxic
	return nil
}
