package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/verdipratama/indra/internal/model"
)

// Encoder defines the interface for encoding one corpus file
type Encoder interface {
	EncodeCorpus(ctx context.Context, path string) (*model.EncodeReport, *mat.Dense, error)
}

// EncodeJob encodes a single corpus file
type EncodeJob struct {
	Path    string
	Encoder Encoder
}

// Execute executes the encode job
func (j *EncodeJob) Execute(ctx context.Context) Result {
	report, matrix, err := j.Encoder.EncodeCorpus(ctx, j.Path)
	return &EncodeResult{
		Path:   j.Path,
		Report: report,
		Matrix: matrix,
		Error:  err,
	}
}

// EncodeResult represents the result of encoding one corpus file
type EncodeResult struct {
	Path   string
	Report *model.EncodeReport
	Matrix *mat.Dense
	Error  error
}

// GetError returns the error from the encode result
func (r *EncodeResult) GetError() error {
	return r.Error
}

// BatchProcessor encodes multiple corpus files concurrently. Failures are
// per-file; one bad corpus never aborts the rest of the batch.
type BatchProcessor struct {
	encoder     Encoder
	concurrency int
}

// NewBatchProcessor creates a new batch processor
func NewBatchProcessor(encoder Encoder, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		encoder:     encoder,
		concurrency: concurrency,
	}
}

// ProcessPaths encodes the given corpus files concurrently
func (b *BatchProcessor) ProcessPaths(ctx context.Context, paths []string) []*EncodeResult {
	if len(paths) == 0 {
		return []*EncodeResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start()

	for _, path := range paths {
		pool.Submit(&EncodeJob{
			Path:    path,
			Encoder: b.encoder,
		})
	}

	results := pool.Wait()

	encodeResults := make([]*EncodeResult, len(results))
	for i, result := range results {
		encodeResults[i] = result.(*EncodeResult)
	}
	return encodeResults
}

// ProcessFile reads corpus paths from a list file and encodes them
func (b *BatchProcessor) ProcessFile(ctx context.Context, listPath string) ([]*EncodeResult, error) {
	paths, err := ReadPathsFromFile(listPath)
	if err != nil {
		return nil, fmt.Errorf("read corpus list: %w", err)
	}
	return b.ProcessPaths(ctx, paths), nil
}

// ReadPathsFromFile reads corpus paths from a file (one per line),
// skipping blanks and comments and dropping duplicates
func ReadPathsFromFile(listPath string) ([]string, error) {
	file, err := os.Open(listPath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var paths []string
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !seen[line] {
			seen[line] = true
			paths = append(paths, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}

	return paths, nil
}
