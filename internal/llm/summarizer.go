package llm

import (
	"context"
	"fmt"

	"github.com/verdipratama/indra/internal/model"
)

// Summarizer wraps a Provider and produces report-level summaries
type Summarizer struct {
	provider Provider
	config   Config
}

// NewSummarizer creates a summarizer from configuration. Returns a
// disabled summarizer when no provider is configured.
func NewSummarizer(config Config) (*Summarizer, error) {
	provider, err := NewProvider(config)
	if err != nil {
		return nil, err
	}
	return &Summarizer{
		provider: provider,
		config:   config,
	}, nil
}

// IsEnabled reports whether a provider is configured
func (s *Summarizer) IsEnabled() bool {
	return s != nil && s.provider != nil
}

// GenerateSummary produces an LLM summary of the report. The summary is
// attached to the report by the caller and never alters its numbers.
func (s *Summarizer) GenerateSummary(ctx context.Context, report model.EncodeReport) (*model.LLMSummary, error) {
	if !s.IsEnabled() {
		return nil, nil
	}

	resp, err := s.provider.Summarize(ctx, SummarizeRequest{
		Report:         report,
		AllowedSources: report.Sources,
		Model:          s.config.Model,
		MaxTokens:      s.config.MaxTokens,
	})
	if err != nil {
		return nil, fmt.Errorf("summarize report: %w", err)
	}

	return &model.LLMSummary{
		Enabled:      true,
		Provider:     s.provider.Name(),
		Model:        resp.Model,
		StrictSource: s.config.StrictSource,
		SummaryMD:    resp.Summary,
	}, nil
}
