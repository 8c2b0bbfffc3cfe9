package belief

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/verdipratama/indra/internal/encode"
	"github.com/verdipratama/indra/internal/model"
)

// fakeEstimator records what the adapter forwards to it
type fakeEstimator struct {
	fitX    mat.Matrix
	fitY    mat.Matrix
	fitErr  error
	probas  mat.Matrix
	probErr error
	fits    int
}

func (f *fakeEstimator) Fit(x, y mat.Matrix) error {
	f.fits++
	f.fitX = x
	f.fitY = y
	return f.fitErr
}

func (f *fakeEstimator) PredictProba(x mat.Matrix) (mat.Matrix, error) {
	if f.probErr != nil {
		return nil, f.probErr
	}
	return f.probas, nil
}

func testStatements() []model.Statement {
	return []model.Statement{
		{
			Type: model.TypeActivation,
			Evidence: []model.Evidence{
				{SourceAPI: "reach"},
				{SourceAPI: "reach"},
			},
		},
		{
			Type: model.TypeInhibition,
			Evidence: []model.Evidence{
				{SourceAPI: "sparser"},
			},
		},
	}
}

func TestModel_Fit_ForwardsEncodedMatrix(t *testing.T) {
	est := &fakeEstimator{}
	enc := encode.NewCountsEncoder([]string{"reach", "sparser"}, encode.Options{})
	m := NewModel(est, enc)

	stmts := testStatements()
	fitted, err := m.Fit(stmts, []float64{1, 0})
	if err != nil {
		t.Fatalf("Fit failed: %v", err)
	}
	if fitted != m {
		t.Error("expected Fit to return the model itself for chaining")
	}
	if est.fits != 1 {
		t.Fatalf("expected exactly one estimator fit, got %d", est.fits)
	}

	rows, cols := est.fitX.Dims()
	if rows != 2 || cols != 2 {
		t.Errorf("expected 2x2 feature matrix, got %dx%d", rows, cols)
	}
	if est.fitX.At(0, 0) != 2 || est.fitX.At(1, 1) != 1 {
		t.Errorf("unexpected encoded features: %v", mat.Formatted(est.fitX))
	}

	yRows, yCols := est.fitY.Dims()
	if yRows != 2 || yCols != 1 {
		t.Errorf("expected 2x1 label vector, got %dx%d", yRows, yCols)
	}
	if est.fitY.At(0, 0) != 1 || est.fitY.At(1, 0) != 0 {
		t.Errorf("unexpected labels: %v", mat.Formatted(est.fitY))
	}
}

func TestModel_Fit_LengthMismatch(t *testing.T) {
	est := &fakeEstimator{}
	enc := encode.NewCountsEncoder([]string{"reach", "sparser"}, encode.Options{})
	m := NewModel(est, enc)

	_, err := m.Fit(testStatements(), []float64{1})
	if err == nil {
		t.Fatal("expected error for mismatched statement and label counts")
	}
	if !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("expected ErrLengthMismatch, got %v", err)
	}
	if est.fits != 0 {
		t.Error("estimator must not be touched when validation fails")
	}
}

func TestModel_Fit_EncodingFailureStopsFit(t *testing.T) {
	est := &fakeEstimator{}
	enc := encode.NewCountsEncoder([]string{"reach"}, encode.Options{})
	m := NewModel(est, enc)

	_, err := m.Fit(testStatements(), []float64{1, 0})
	if err == nil {
		t.Fatal("expected encoding error for source outside vocabulary")
	}
	if !errors.Is(err, encode.ErrSourceNotInVocabulary) {
		t.Errorf("expected ErrSourceNotInVocabulary, got %v", err)
	}
	if est.fits != 0 {
		t.Error("estimator must not be touched when encoding fails")
	}
}

func TestModel_Fit_EstimatorErrorPropagates(t *testing.T) {
	estErr := errors.New("singular matrix")
	est := &fakeEstimator{fitErr: estErr}
	enc := encode.NewCountsEncoder([]string{"reach", "sparser"}, encode.Options{})
	m := NewModel(est, enc)

	_, err := m.Fit(testStatements(), []float64{1, 0})
	if !errors.Is(err, estErr) {
		t.Errorf("expected estimator error to propagate, got %v", err)
	}
}

func TestModel_PredictProba_PassesThrough(t *testing.T) {
	probas := mat.NewDense(2, 2, []float64{0.9, 0.1, 0.3, 0.7})
	est := &fakeEstimator{probas: probas}
	enc := encode.NewCountsEncoder([]string{"reach", "sparser"}, encode.Options{})
	m := NewModel(est, enc)

	got, err := m.PredictProba(testStatements())
	if err != nil {
		t.Fatalf("PredictProba failed: %v", err)
	}
	if got != mat.Matrix(probas) {
		t.Error("expected the estimator's probability matrix to be returned unmodified")
	}
}

func TestModel_PredictProba_EncodingFailure(t *testing.T) {
	est := &fakeEstimator{probas: mat.NewDense(1, 2, nil)}
	enc := encode.NewCountsEncoder([]string{"reach"}, encode.Options{})
	m := NewModel(est, enc)

	_, err := m.PredictProba(testStatements())
	if !errors.Is(err, encode.ErrSourceNotInVocabulary) {
		t.Errorf("expected ErrSourceNotInVocabulary, got %v", err)
	}
}

func TestUnimplementedEncoder(t *testing.T) {
	var enc UnimplementedEncoder

	_, err := enc.StmtsToMatrix(testStatements())
	if !errors.Is(err, ErrNotImplemented) {
		t.Errorf("expected ErrNotImplemented, got %v", err)
	}

	// Wiring the base encoder into a model must fail the same way
	m := NewModel(&fakeEstimator{}, enc)
	_, err = m.Fit(testStatements(), []float64{1, 0})
	if !errors.Is(err, ErrNotImplemented) {
		t.Errorf("expected ErrNotImplemented through the model, got %v", err)
	}
}
