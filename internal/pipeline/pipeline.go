// Package pipeline orchestrates the load, encode, report and summarize
// steps for a statement corpus.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/verdipratama/indra/internal/cache"
	"github.com/verdipratama/indra/internal/corpus"
	"github.com/verdipratama/indra/internal/encode"
	"github.com/verdipratama/indra/internal/llm"
	"github.com/verdipratama/indra/internal/model"
)

// Pipeline wires the corpus loader, the counts encoder and the optional
// LLM summarizer together
type Pipeline struct {
	loader     *corpus.Loader
	encoder    *encode.CountsEncoder
	renderer   *Renderer
	summarizer *llm.Summarizer // Optional (nil if disabled)
	config     *model.Config
}

// NewPipeline creates a new pipeline from the given configuration
func NewPipeline(cfg *model.Config) *Pipeline {
	var c cache.Cache
	ttl := time.Duration(cfg.Cache.TTLMinutes) * time.Minute
	if cfg.Cache.Enabled {
		c = cache.NewMemoryCache(ttl, 2*ttl)
	}

	var summarizer *llm.Summarizer
	if cfg.LLM.Provider != "" {
		s, err := llm.NewSummarizer(llm.ConfigFromModel(cfg.LLM))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to initialize LLM provider: %v\n", err)
		} else {
			summarizer = s
		}
	}

	return &Pipeline{
		loader: corpus.NewLoader(c, ttl),
		encoder: encode.NewCountsEncoder(cfg.Encoder.Sources, encode.Options{
			UseStmtType:   cfg.Encoder.UseType,
			UseNumMembers: cfg.Encoder.UseNumMembers,
		}),
		renderer:   NewRenderer(cfg.Output.IncludeFooter),
		summarizer: summarizer,
		config:     cfg,
	}
}

// Encoder exposes the pipeline's counts encoder, for callers that want to
// wrap it in a belief model directly
func (p *Pipeline) Encoder() *encode.CountsEncoder {
	return p.encoder
}

// EncodeCorpus loads one corpus file, encodes it and builds the report.
// The optional LLM summary runs after the report numbers are final and
// never alters them.
func (p *Pipeline) EncodeCorpus(ctx context.Context, path string) (*model.EncodeReport, *mat.Dense, error) {
	stmts, err := p.loader.Load(path)
	if err != nil {
		return nil, nil, fmt.Errorf("load corpus: %w", err)
	}

	x, err := p.encoder.StmtsToMatrix(stmts)
	if err != nil {
		return nil, nil, fmt.Errorf("encode corpus: %w", err)
	}

	report := p.buildReport(path, stmts)

	if p.summarizer.IsEnabled() {
		summary, err := p.summarizer.GenerateSummary(ctx, *report)
		if err != nil {
			// A failed summary never fails the encode
			fmt.Fprintf(os.Stderr, "Warning: LLM summary generation failed: %v\n", err)
		} else if summary != nil {
			report.LLM = summary
		}
	}

	return report, x, nil
}

func (p *Pipeline) buildReport(path string, stmts []model.Statement) *model.EncodeReport {
	sourceCounts := make(map[string]int)
	typeCounts := make(map[model.StatementType]int)
	for _, stmt := range stmts {
		typeCounts[stmt.Type]++
		for _, ev := range stmt.Evidence {
			sourceCounts[ev.SourceAPI]++
		}
	}

	return &model.EncodeReport{
		CorpusPath:   path,
		EncodedAt:    time.Now().UTC(),
		Statements:   len(stmts),
		Columns:      p.encoder.NumColumns(),
		Sources:      p.encoder.Sources(),
		UseType:      p.config.Encoder.UseType,
		UseMembers:   p.config.Encoder.UseNumMembers,
		SourceCounts: sourceCounts,
		TypeCounts:   typeCounts,
	}
}
