package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/verdipratama/indra/internal/pipeline"
	"github.com/verdipratama/indra/internal/worker"
)

var (
	concurrency  int
	outputDir    string
	batchTimeout time.Duration
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <file>",
	Short: "Encode multiple corpora from a list file in parallel",
	Long: `Batch encodes multiple statement corpora concurrently:
- Read corpus paths from the input file (one per line)
- Encode corpora in parallel with a configurable worker count
- Write a report and matrix per corpus; one bad corpus never aborts the rest

Example:
  beliefctl batch corpora.txt
  beliefctl batch corpora.txt --concurrency 8 --output-dir ./encoded
  beliefctl batch corpora.txt --sources reach,sparser --use-type`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&concurrency, "concurrency", runtime.NumCPU(), "number of concurrent workers")
	batchCmd.Flags().StringVar(&outputDir, "output-dir", "./belief-reports", "output directory for reports and matrices")
	batchCmd.Flags().DurationVar(&batchTimeout, "timeout", 10*time.Minute, "total timeout for batch processing")

	// Shared encoder flags (variables defined in encode.go)
	batchCmd.Flags().StringSliceVar(&sources, "sources", nil, "source vocabulary in column order (default: all known sources)")
	batchCmd.Flags().BoolVar(&useType, "use-type", false, "append statement-type feature column")
	batchCmd.Flags().BoolVar(&useNumMembers, "use-num-members", false, "accept the member-count flag (currently contributes no column)")
	batchCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable corpus cache (force fresh parse)")
	batchCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")

	// LLM flags
	batchCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable LLM report summaries")
	batchCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai)")
	batchCmd.Flags().StringVar(&llmModel, "llm-model", "gpt-4o-mini", "LLM model name")
}

func runBatch(cmd *cobra.Command, args []string) error {
	file := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), batchTimeout)
	defer cancel()

	cfg, err := buildConfig()
	if err != nil {
		return err
	}
	cfg.Concurrency.EncodeWorkers = concurrency

	fmt.Fprintf(os.Stderr, "Input file:  %s\n", file)
	fmt.Fprintf(os.Stderr, "Workers:     %d\n", concurrency)
	fmt.Fprintf(os.Stderr, "Output dir:  %s\n\n", outputDir)

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	p := pipeline.NewPipeline(cfg)
	processor := worker.NewBatchProcessor(p, concurrency)

	results, err := processor.ProcessFile(ctx, file)
	if err != nil {
		return fmt.Errorf("process file: %w", err)
	}

	renderer := pipeline.NewRenderer(cfg.Output.IncludeFooter)

	successCount := 0
	failureCount := 0
	for _, result := range results {
		if result.Error != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", result.Path, result.Error)
			continue
		}

		slug := corpusSlug(result.Path)
		jsonPath := filepath.Join(outputDir, slug+".json")
		csvPath := filepath.Join(outputDir, slug+".csv")

		if err := renderer.WriteJSON(result.Report, jsonPath); err != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "✗ %s: write report: %v\n", result.Path, err)
			continue
		}
		if err := renderer.WriteCSV(result.Matrix, result.Report.Sources, result.Report.UseType, csvPath); err != nil {
			failureCount++
			fmt.Fprintf(os.Stderr, "✗ %s: write matrix: %v\n", result.Path, err)
			continue
		}

		successCount++
		fmt.Fprintf(os.Stderr, "✓ %s (%d statements, %d columns)\n", result.Path, result.Report.Statements, result.Report.Columns)
	}

	fmt.Fprintf(os.Stderr, "\nTotal: %d  Success: %d  Failures: %d  Output: %s\n",
		len(results), successCount, failureCount, outputDir)

	if failureCount > 0 {
		return fmt.Errorf("%d of %d corpora failed", failureCount, len(results))
	}
	return nil
}

// corpusSlug derives an output file stem from a corpus path
func corpusSlug(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|', ' ':
			return '-'
		}
		return r
	}, base)
	if len(base) > 100 {
		base = base[:100]
	}
	if base == "" {
		base = "corpus"
	}
	return base
}
