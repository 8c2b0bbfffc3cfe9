package pipeline

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/verdipratama/indra/internal/model"
)

// Renderer writes reports and matrices to disk
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a new renderer
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// WriteJSON writes the report as indented JSON
func (r *Renderer) WriteJSON(report *model.EncodeReport, path string) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// WriteCSV writes the feature matrix with a header row naming each column:
// one column per vocabulary source, then "stmt_type" if enabled
func (r *Renderer) WriteCSV(x *mat.Dense, sources []string, useType bool, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close csv: %w", closeErr)
		}
	}()

	w := csv.NewWriter(f)

	header := append([]string{}, sources...)
	if useType {
		header = append(header, "stmt_type")
	}
	if err := w.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	rows, cols := x.Dims()
	record := make([]string, cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			record[j] = strconv.FormatFloat(x.At(i, j), 'g', -1, 64)
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("write csv row %d: %w", i, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

// RenderMarkdown renders the report as a human-readable Markdown summary
func (r *Renderer) RenderMarkdown(report *model.EncodeReport) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("# Encoding Report: %s\n\n", report.CorpusPath))
	sb.WriteString(fmt.Sprintf("- Statements: %d\n", report.Statements))
	sb.WriteString(fmt.Sprintf("- Feature columns: %d\n", report.Columns))
	sb.WriteString(fmt.Sprintf("- Type column: %v\n\n", report.UseType))

	sb.WriteString("## Evidence by source\n\n")
	sb.WriteString("| Source | Evidence items |\n")
	sb.WriteString("|--------|---------------|\n")
	for _, src := range report.Sources {
		sb.WriteString(fmt.Sprintf("| %s | %d |\n", src, report.SourceCounts[src]))
	}

	sb.WriteString("\n## Statements by category\n\n")
	sb.WriteString("| Category | Statements |\n")
	sb.WriteString("|----------|-----------|\n")
	for _, typ := range model.AllStatementTypes() {
		if n := report.TypeCounts[typ]; n > 0 {
			sb.WriteString(fmt.Sprintf("| %s | %d |\n", typ, n))
		}
	}

	if report.LLM != nil && report.LLM.SummaryMD != "" {
		sb.WriteString("\n## LLM summary (descriptive only)\n\n")
		sb.WriteString(report.LLM.SummaryMD)
		sb.WriteString("\n")
	}

	if r.includeFooter {
		sb.WriteString(fmt.Sprintf("\n---\nGenerated %s\n", report.EncodedAt.Format("2006-01-02 15:04 UTC")))
	}

	return sb.String()
}
