package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/verdipratama/indra/internal/model"
	"github.com/verdipratama/indra/internal/pipeline"
)

var (
	outJSON       string
	outCSV        string
	outMD         string
	sources       []string
	useType       bool
	useNumMembers bool
	encodeTimeout time.Duration
	noCache       bool
	noFooter      bool
	llmEnabled    bool
	llmProvider   string
	llmModel      string
)

// encodeCmd represents the encode command
var encodeCmd = &cobra.Command{
	Use:   "encode <corpus.json>",
	Short: "Encode a statement corpus into a feature matrix",
	Long: `Encode reads a JSON corpus of statements and produces:
- A feature matrix (CSV): one row per statement, one count column per
  vocabulary source, optionally a statement-type column
- An encoding report (JSON): matrix shape, vocabulary, per-source and
  per-category totals

Any evidence source outside the configured vocabulary fails the encode;
nothing is silently dropped.

Example:
  beliefctl encode stmts.json --csv matrix.csv
  beliefctl encode stmts.json --sources reach,sparser --use-type
  beliefctl encode stmts.json --llm --llm-model gpt-4o-mini --md report.md`,
	Args: cobra.ExactArgs(1),
	RunE: runEncode,
}

func init() {
	rootCmd.AddCommand(encodeCmd)

	// Output flags
	encodeCmd.Flags().StringVar(&outJSON, "json", "report.json", "output JSON report path")
	encodeCmd.Flags().StringVar(&outCSV, "csv", "", "output feature matrix CSV path (optional)")
	encodeCmd.Flags().StringVar(&outMD, "md", "", "output Markdown report path (optional)")

	// Encoder flags
	encodeCmd.Flags().StringSliceVar(&sources, "sources", nil, "source vocabulary in column order (default: all known sources)")
	encodeCmd.Flags().BoolVar(&useType, "use-type", false, "append statement-type feature column")
	encodeCmd.Flags().BoolVar(&useNumMembers, "use-num-members", false, "accept the member-count flag (currently contributes no column)")

	// Misc flags
	encodeCmd.Flags().DurationVar(&encodeTimeout, "timeout", time.Minute, "overall encode timeout")
	encodeCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable corpus cache (force fresh parse)")
	encodeCmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")

	// LLM flags
	encodeCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable LLM report summary")
	encodeCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai)")
	encodeCmd.Flags().StringVar(&llmModel, "llm-model", "gpt-4o-mini", "LLM model name")
}

func runEncode(cmd *cobra.Command, args []string) error {
	corpusPath := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), encodeTimeout)
	defer cancel()

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Encoding: %s\n", corpusPath)
		fmt.Fprintf(os.Stderr, "Vocabulary: %d sources\n", len(cfg.Encoder.Sources))
		fmt.Fprintf(os.Stderr, "Type column: %v\n\n", cfg.Encoder.UseType)
	}

	p := pipeline.NewPipeline(cfg)
	report, matrix, err := p.EncodeCorpus(ctx, corpusPath)
	if err != nil {
		return err
	}

	renderer := pipeline.NewRenderer(cfg.Output.IncludeFooter)

	if err := renderer.WriteJSON(report, outJSON); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "✓ Report: %s\n", outJSON)

	if outCSV != "" {
		if err := renderer.WriteCSV(matrix, report.Sources, report.UseType, outCSV); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "✓ Matrix: %s\n", outCSV)
	}

	if outMD != "" {
		if err := os.WriteFile(outMD, []byte(renderer.RenderMarkdown(report)), 0644); err != nil {
			return fmt.Errorf("write markdown: %w", err)
		}
		fmt.Fprintf(os.Stderr, "✓ Markdown: %s\n", outMD)
	}

	fmt.Fprintf(os.Stderr, "\nEncoded %d statements into a %dx%d matrix\n", report.Statements, report.Statements, report.Columns)
	return nil
}

// buildConfig assembles the configuration from defaults and flags
func buildConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()

	if len(sources) > 0 {
		cfg.Encoder.Sources = sources
	}
	cfg.Encoder.UseType = useType
	cfg.Encoder.UseNumMembers = useNumMembers
	cfg.Cache.Enabled = !noCache
	cfg.Output.IncludeFooter = !noFooter

	if llmEnabled {
		cfg.LLM.Provider = llmProvider
		cfg.LLM.Model = llmModel
		cfg.LLM.StrictSource = true // Always enforce

		switch llmProvider {
		case "openai":
			cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
			if cfg.LLM.APIKey == "" {
				return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
			}
		}
	}

	return cfg, nil
}
