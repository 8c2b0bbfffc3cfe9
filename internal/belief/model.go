package belief

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/verdipratama/indra/internal/model"
)

// Model wraps an injected estimator with a statement encoder. Both
// operations are stateless transformations; the only mutable state lives
// inside the wrapped estimator, which is opaque here.
type Model struct {
	estimator Estimator
	encoder   StatementEncoder
}

// NewModel creates a model around the given estimator and encoder
func NewModel(estimator Estimator, encoder StatementEncoder) *Model {
	return &Model{
		estimator: estimator,
		encoder:   encoder,
	}
}

// Fit encodes the statements and forwards the matrix and labels to the
// wrapped estimator. The statement and label counts must match; label
// values themselves are not validated here, that is the estimator's job.
// Returns the model itself so calls can be chained.
func (m *Model) Fit(stmts []model.Statement, labels []float64) (*Model, error) {
	if len(stmts) != len(labels) {
		return nil, fmt.Errorf("%w: %d statements, %d labels", ErrLengthMismatch, len(stmts), len(labels))
	}

	x, err := m.encoder.StmtsToMatrix(stmts)
	if err != nil {
		return nil, fmt.Errorf("encode statements: %w", err)
	}

	if err := m.estimator.Fit(x, labelVector(labels)); err != nil {
		return nil, fmt.Errorf("fit estimator: %w", err)
	}
	return m, nil
}

// PredictProba encodes the statements and returns the wrapped estimator's
// probability matrix unmodified, one row per statement in input order
func (m *Model) PredictProba(stmts []model.Statement) (mat.Matrix, error) {
	x, err := m.encoder.StmtsToMatrix(stmts)
	if err != nil {
		return nil, fmt.Errorf("encode statements: %w", err)
	}

	probs, err := m.estimator.PredictProba(x)
	if err != nil {
		return nil, fmt.Errorf("predict probabilities: %w", err)
	}
	return probs, nil
}

// labelVector builds the label column vector. NewVecDense rejects zero
// length, so empty label sets map to the empty vector.
func labelVector(labels []float64) *mat.VecDense {
	if len(labels) == 0 {
		return &mat.VecDense{}
	}
	return mat.NewVecDense(len(labels), labels)
}
