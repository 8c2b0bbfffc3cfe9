// Package belief adapts injected probabilistic classifiers to operate on
// statement records instead of raw numeric matrices. All learning is
// delegated to the wrapped estimator; this package only shapes and
// validates the data on the way in.
package belief

import (
	"gonum.org/v1/gonum/mat"

	"github.com/verdipratama/indra/internal/model"
)

// Estimator is the minimal capability contract a wrapped classifier must
// satisfy. Any conforming implementation may be injected; its internal
// state and concurrency safety are its own concern.
type Estimator interface {
	// Fit trains the estimator on a feature matrix and matching labels
	Fit(x, y mat.Matrix) error

	// PredictProba returns per-class probabilities, one row per input row
	PredictProba(x mat.Matrix) (mat.Matrix, error)
}

// StatementEncoder maps statement records to a feature matrix. The counts
// encoder in internal/encode is the standard implementation; alternatives
// (embedding-based encoders, say) are drop-in replacements.
type StatementEncoder interface {
	StmtsToMatrix(stmts []model.Statement) (*mat.Dense, error)
}

// UnimplementedEncoder is the base encoder. It exists so partial encoder
// implementations have something to embed; invoking it directly is a
// contract violation and fails with ErrNotImplemented.
type UnimplementedEncoder struct{}

// StmtsToMatrix always fails; a concrete encoder must supply the mapping
func (UnimplementedEncoder) StmtsToMatrix([]model.Statement) (*mat.Dense, error) {
	return nil, ErrNotImplemented
}

var _ StatementEncoder = UnimplementedEncoder{}
