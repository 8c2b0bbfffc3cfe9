package model

import "time"

// EncodeReport describes one encoded corpus: the matrix shape, the
// vocabulary that defined the columns, and per-source and per-type totals
type EncodeReport struct {
	CorpusPath string    `json:"corpus_path"`        // File the statements were loaded from
	EncodedAt  time.Time `json:"encoded_at"`         // When the encoding ran
	Statements int       `json:"statements"`         // Rows in the matrix
	Columns    int       `json:"columns"`            // Total feature columns
	Sources    []string  `json:"sources"`            // Source vocabulary, in column order
	UseType    bool      `json:"use_type"`           // Whether the type column was appended
	UseMembers bool      `json:"use_num_members"`    // Accepted but inert (no column)

	SourceCounts map[string]int        `json:"source_counts"` // Total evidence items per source
	TypeCounts   map[StatementType]int `json:"type_counts"`   // Statements per category

	LLM *LLMSummary `json:"llm,omitempty"` // Optional LLM summary (never affects the matrix)
}

// LLMSummary contains an optional LLM-generated description of a report.
// It is descriptive only and never feeds back into encoding or prediction.
type LLMSummary struct {
	Enabled      bool     `json:"enabled"`
	Provider     string   `json:"provider,omitempty"`
	Model        string   `json:"model,omitempty"`
	StrictSource bool     `json:"strict_source"`        // Whether source-mention enforcement was enabled
	SummaryMD    string   `json:"summary_md,omitempty"` // Markdown summary
	Warnings     []string `json:"warnings,omitempty"`
}
