// Package llm generates optional natural-language summaries of encode
// reports. Summaries are descriptive only and never feed back into
// encoding or prediction.
package llm

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/verdipratama/indra/internal/model"
)

// Provider defines the interface for LLM providers
type Provider interface {
	// Name returns the provider name
	Name() string

	// Summarize generates a summary of the encode report
	Summarize(ctx context.Context, req SummarizeRequest) (*SummarizeResponse, error)

	// IsAvailable checks if the provider is properly configured and accessible
	IsAvailable(ctx context.Context) bool
}

// SummarizeRequest contains the input for report summarization
type SummarizeRequest struct {
	// Report is the encode report to summarize
	Report model.EncodeReport

	// AllowedSources is the strict allowlist of evidence source
	// identifiers the summary may mention. Prevents the model from
	// describing sources that are not in the corpus.
	AllowedSources []string

	// Prompt is an optional custom prompt (if empty, use default)
	Prompt string

	// Model is the specific model to use (provider-specific)
	Model string

	// MaxTokens limits the response length
	MaxTokens int
}

// SummarizeResponse contains the LLM's summary output
type SummarizeResponse struct {
	// Summary is the generated summary text
	Summary string

	// MentionedSources are the source identifiers the model actually
	// mentioned (for verification)
	MentionedSources []string

	// Model is the model that generated the response
	Model string

	// TokensUsed tracks token consumption
	TokensUsed int
}

// Config holds LLM provider configuration
type Config struct {
	// Provider name: "openai" or "" (disabled)
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for the provider
	APIKey string

	// BaseURL for custom endpoints
	BaseURL string

	// Timeout for API requests, in seconds
	Timeout int

	// StrictSource enforces the source allowlist (should always be true)
	StrictSource bool

	// MaxTokens for response generation
	MaxTokens int

	// Rate limiting for outbound API calls
	RequestsPerSecond float64
	Burst             int
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Provider:          "", // Disabled by default
		Timeout:           30,
		StrictSource:      true,
		MaxTokens:         1000,
		RequestsPerSecond: 1,
		Burst:             2,
	}
}

// ConfigFromModel converts the application-level LLM settings
func ConfigFromModel(cfg model.LLMConfig) Config {
	return Config{
		Provider:          cfg.Provider,
		Model:             cfg.Model,
		APIKey:            cfg.APIKey,
		BaseURL:           cfg.BaseURL,
		Timeout:           cfg.Timeout,
		StrictSource:      cfg.StrictSource,
		MaxTokens:         cfg.MaxTokens,
		RequestsPerSecond: cfg.RequestsPerSecond,
		Burst:             cfg.Burst,
	}
}

// BuildPrompt constructs the default summarization prompt with the strict
// source allowlist spelled out
func BuildPrompt(report model.EncodeReport, allowedSources []string) string {
	var sb strings.Builder

	sb.WriteString("You are summarizing a statement-corpus encoding report. ")
	sb.WriteString("The report describes feature extraction only - it asserts nothing about the truth of any statement.\n\n")
	sb.WriteString("CRITICAL RULES:\n")
	sb.WriteString("1. Only mention evidence sources from the ALLOWED SOURCES list below.\n")
	sb.WriteString("2. Do not speculate about classifier performance or belief scores.\n")
	sb.WriteString("3. Keep the summary under 200 words, in Markdown.\n\n")

	sb.WriteString(fmt.Sprintf("Corpus: %s\n", report.CorpusPath))
	sb.WriteString(fmt.Sprintf("Statements: %d, feature columns: %d (type column: %v)\n\n", report.Statements, report.Columns, report.UseType))

	sb.WriteString("Evidence totals per source:\n")
	for _, src := range report.Sources {
		sb.WriteString(fmt.Sprintf("- %s: %d\n", src, report.SourceCounts[src]))
	}

	sb.WriteString("\nStatements per category:\n")
	for _, typ := range model.AllStatementTypes() {
		if n := report.TypeCounts[typ]; n > 0 {
			sb.WriteString(fmt.Sprintf("- %s: %d\n", typ, n))
		}
	}

	sb.WriteString("\nALLOWED SOURCES:\n")
	for _, src := range allowedSources {
		sb.WriteString(fmt.Sprintf("- %s\n", src))
	}

	return sb.String()
}

// extractSources returns the identifiers from universe that appear as
// whole words in the text, deduplicated, in universe order. Word
// boundaries matter: short identifiers like "isi" occur inside ordinary
// prose.
func extractSources(text string, universe []string) []string {
	var mentioned []string
	for _, src := range universe {
		pattern := regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(src) + `\b`)
		if pattern.MatchString(text) {
			mentioned = append(mentioned, src)
		}
	}
	return mentioned
}

// contains checks if a slice contains a string
func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
