// Package encode converts statement records into fixed-width numeric
// feature matrices for injected classifiers.
package encode

import (
	"fmt"
	"sort"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/verdipratama/indra/internal/model"
)

// Options configures which features a CountsEncoder produces beyond the
// evidence source counts
type Options struct {
	// UseStmtType appends one column holding the dense integer index of
	// the statement's category.
	UseStmtType bool

	// UseNumMembers is accepted for forward compatibility but contributes
	// no column in the current encoding. Intended for stratifying Complex
	// statements by member count; left inert until the feature lands.
	UseNumMembers bool
}

// CountsEncoder encodes statements as per-source evidence counts, with an
// optional categorical statement-type column. Column order is fixed: one
// count column per vocabulary entry in vocabulary order, then the type
// column if enabled. Immutable after construction.
type CountsEncoder struct {
	sources   []string
	colIndex  map[string]int
	typeIndex map[model.StatementType]int
	opts      Options
}

// NewCountsEncoder creates an encoder over the given source vocabulary.
// The vocabulary defines the count-column ordering and is copied, so later
// mutation of the argument does not affect the encoder.
func NewCountsEncoder(sources []string, opts Options) *CountsEncoder {
	vocab := make([]string, len(sources))
	copy(vocab, sources)

	colIndex := make(map[string]int, len(vocab))
	for i, src := range vocab {
		colIndex[src] = i
	}

	e := &CountsEncoder{
		sources:  vocab,
		colIndex: colIndex,
		opts:     opts,
	}
	if opts.UseStmtType {
		e.typeIndex = model.NewTypeIndex()
	}
	return e
}

// Sources returns the source vocabulary in column order
func (e *CountsEncoder) Sources() []string {
	out := make([]string, len(e.sources))
	copy(out, e.sources)
	return out
}

// NumColumns returns the width of the matrices this encoder produces
func (e *CountsEncoder) NumColumns() int {
	n := len(e.sources)
	if e.opts.UseStmtType {
		n++
	}
	return n
}

// StmtsToMatrix encodes the statements into a feature matrix with one row
// per statement, in input order. Encoding either succeeds for all rows or
// fails without producing a matrix; nothing is silently dropped.
func (e *CountsEncoder) StmtsToMatrix(stmts []model.Statement) (*mat.Dense, error) {
	if err := e.checkSources(stmts); err != nil {
		return nil, err
	}

	rows := len(stmts)
	cols := e.NumColumns()
	if rows == 0 || cols == 0 {
		return &mat.Dense{}, nil
	}

	x := mat.NewDense(rows, cols, nil)
	for i, stmt := range stmts {
		counts := make(map[string]int, len(stmt.Evidence))
		for _, ev := range stmt.Evidence {
			counts[ev.SourceAPI]++
		}
		for j, src := range e.sources {
			x.Set(i, j, float64(counts[src]))
		}

		if e.opts.UseStmtType {
			ix, ok := e.typeIndex[stmt.Type]
			if !ok {
				return nil, fmt.Errorf("statement %d: type %q: %w", i, stmt.Type, ErrUnknownStatementType)
			}
			x.Set(i, len(e.sources), float64(ix))
		}
	}

	return x, nil
}

// checkSources verifies that every evidence source in the input is a
// member of the configured vocabulary
func (e *CountsEncoder) checkSources(stmts []model.Statement) error {
	var unknown map[string]struct{}
	for _, stmt := range stmts {
		for _, ev := range stmt.Evidence {
			if _, ok := e.colIndex[ev.SourceAPI]; !ok {
				if unknown == nil {
					unknown = make(map[string]struct{})
				}
				unknown[ev.SourceAPI] = struct{}{}
			}
		}
	}
	if len(unknown) == 0 {
		return nil
	}

	names := make([]string, 0, len(unknown))
	for src := range unknown {
		names = append(names, src)
	}
	sort.Strings(names)

	return fmt.Errorf("%w: %s", ErrSourceNotInVocabulary, strings.Join(names, ", "))
}
