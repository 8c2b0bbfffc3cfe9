package encode

import (
	"errors"
	"strings"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/verdipratama/indra/internal/model"
)

func stmtWithSources(typ model.StatementType, sources ...string) model.Statement {
	evidence := make([]model.Evidence, len(sources))
	for i, src := range sources {
		evidence[i] = model.Evidence{SourceAPI: src}
	}
	return model.Statement{Type: typ, Evidence: evidence}
}

func TestCountsEncoder_SourceCounts(t *testing.T) {
	enc := NewCountsEncoder([]string{"reach", "sparser"}, Options{})

	stmts := []model.Statement{
		stmtWithSources(model.TypeActivation, "reach", "reach", "sparser"),
	}

	x, err := enc.StmtsToMatrix(stmts)
	if err != nil {
		t.Fatalf("StmtsToMatrix failed: %v", err)
	}

	rows, cols := x.Dims()
	if rows != 1 || cols != 2 {
		t.Fatalf("expected 1x2 matrix, got %dx%d", rows, cols)
	}
	if x.At(0, 0) != 2 || x.At(0, 1) != 1 {
		t.Errorf("expected row [2 1], got [%v %v]", x.At(0, 0), x.At(0, 1))
	}
}

func TestCountsEncoder_TypeColumn(t *testing.T) {
	enc := NewCountsEncoder([]string{"reach", "sparser"}, Options{UseStmtType: true})

	// Inhibition is the second entry in the type registry
	stmts := []model.Statement{
		stmtWithSources(model.TypeInhibition, "sparser"),
	}

	x, err := enc.StmtsToMatrix(stmts)
	if err != nil {
		t.Fatalf("StmtsToMatrix failed: %v", err)
	}

	rows, cols := x.Dims()
	if rows != 1 || cols != 3 {
		t.Fatalf("expected 1x3 matrix, got %dx%d", rows, cols)
	}
	want := []float64{0, 1, 1}
	for j, w := range want {
		if x.At(0, j) != w {
			t.Errorf("column %d: expected %v, got %v", j, w, x.At(0, j))
		}
	}
}

func TestCountsEncoder_UnknownSource(t *testing.T) {
	enc := NewCountsEncoder([]string{"reach"}, Options{})

	stmts := []model.Statement{
		stmtWithSources(model.TypeActivation, "unknown_source"),
	}

	x, err := enc.StmtsToMatrix(stmts)
	if err == nil {
		t.Fatal("expected error for source outside vocabulary")
	}
	if !errors.Is(err, ErrSourceNotInVocabulary) {
		t.Errorf("expected ErrSourceNotInVocabulary, got %v", err)
	}
	if !strings.Contains(err.Error(), "unknown_source") {
		t.Errorf("expected error to name the offending source, got %v", err)
	}
	if x != nil {
		t.Error("expected no matrix on validation failure")
	}
}

func TestCountsEncoder_UnknownSourcesSortedInError(t *testing.T) {
	enc := NewCountsEncoder([]string{"reach"}, Options{})

	stmts := []model.Statement{
		stmtWithSources(model.TypeActivation, "zeta", "alpha", "reach"),
	}

	_, err := enc.StmtsToMatrix(stmts)
	if err == nil {
		t.Fatal("expected error for sources outside vocabulary")
	}
	if !strings.Contains(err.Error(), "alpha, zeta") {
		t.Errorf("expected offenders listed in sorted order, got %v", err)
	}
}

func TestCountsEncoder_UnknownType(t *testing.T) {
	enc := NewCountsEncoder([]string{"reach"}, Options{UseStmtType: true})

	stmts := []model.Statement{
		stmtWithSources(model.StatementType("NotARealType"), "reach"),
	}

	_, err := enc.StmtsToMatrix(stmts)
	if err == nil {
		t.Fatal("expected error for type outside registry")
	}
	if !errors.Is(err, ErrUnknownStatementType) {
		t.Errorf("expected ErrUnknownStatementType, got %v", err)
	}
}

func TestCountsEncoder_Shape(t *testing.T) {
	vocab := []string{"reach", "sparser", "trips"}

	stmts := []model.Statement{
		stmtWithSources(model.TypeActivation, "reach"),
		stmtWithSources(model.TypeComplex, "sparser", "trips"),
		stmtWithSources(model.TypePhosphorylation),
		stmtWithSources(model.TypeInhibition, "reach", "reach", "reach"),
	}

	plain := NewCountsEncoder(vocab, Options{})
	x, err := plain.StmtsToMatrix(stmts)
	if err != nil {
		t.Fatalf("StmtsToMatrix failed: %v", err)
	}
	rows, cols := x.Dims()
	if rows != len(stmts) || cols != len(vocab) {
		t.Errorf("expected %dx%d, got %dx%d", len(stmts), len(vocab), rows, cols)
	}

	typed := NewCountsEncoder(vocab, Options{UseStmtType: true})
	x, err = typed.StmtsToMatrix(stmts)
	if err != nil {
		t.Fatalf("StmtsToMatrix failed: %v", err)
	}
	rows, cols = x.Dims()
	if rows != len(stmts) || cols != len(vocab)+1 {
		t.Errorf("expected %dx%d, got %dx%d", len(stmts), len(vocab)+1, rows, cols)
	}
}

func TestCountsEncoder_RowSumEqualsEvidenceCount(t *testing.T) {
	enc := NewCountsEncoder([]string{"reach", "sparser", "trips"}, Options{})

	stmts := []model.Statement{
		stmtWithSources(model.TypeActivation, "reach", "sparser", "sparser"),
		stmtWithSources(model.TypeInhibition),
		stmtWithSources(model.TypeComplex, "trips", "trips", "trips", "reach"),
	}

	x, err := enc.StmtsToMatrix(stmts)
	if err != nil {
		t.Fatalf("StmtsToMatrix failed: %v", err)
	}

	_, cols := x.Dims()
	for i, stmt := range stmts {
		sum := 0.0
		for j := 0; j < cols; j++ {
			sum += x.At(i, j)
		}
		if sum != float64(len(stmt.Evidence)) {
			t.Errorf("row %d: expected sum %d, got %v", i, len(stmt.Evidence), sum)
		}
	}
}

func TestCountsEncoder_VocabularyOrderDefinesColumns(t *testing.T) {
	stmts := []model.Statement{
		stmtWithSources(model.TypeActivation, "reach", "reach", "sparser"),
	}

	forward := NewCountsEncoder([]string{"reach", "sparser"}, Options{})
	reversed := NewCountsEncoder([]string{"sparser", "reach"}, Options{})

	xf, err := forward.StmtsToMatrix(stmts)
	if err != nil {
		t.Fatalf("StmtsToMatrix failed: %v", err)
	}
	xr, err := reversed.StmtsToMatrix(stmts)
	if err != nil {
		t.Fatalf("StmtsToMatrix failed: %v", err)
	}

	if xf.At(0, 0) != xr.At(0, 1) || xf.At(0, 1) != xr.At(0, 0) {
		t.Errorf("permuting the vocabulary should permute columns: forward [%v %v], reversed [%v %v]",
			xf.At(0, 0), xf.At(0, 1), xr.At(0, 0), xr.At(0, 1))
	}
}

func TestCountsEncoder_Deterministic(t *testing.T) {
	enc := NewCountsEncoder([]string{"reach", "sparser", "medscan"}, Options{UseStmtType: true})

	stmts := []model.Statement{
		stmtWithSources(model.TypeActivation, "reach", "medscan"),
		stmtWithSources(model.TypeComplex, "sparser"),
	}

	x1, err := enc.StmtsToMatrix(stmts)
	if err != nil {
		t.Fatalf("StmtsToMatrix failed: %v", err)
	}
	x2, err := enc.StmtsToMatrix(stmts)
	if err != nil {
		t.Fatalf("StmtsToMatrix failed: %v", err)
	}

	if !mat.Equal(x1, x2) {
		t.Error("expected identical inputs to produce identical matrices")
	}
}

func TestCountsEncoder_EmptyInput(t *testing.T) {
	enc := NewCountsEncoder([]string{"reach"}, Options{})

	x, err := enc.StmtsToMatrix(nil)
	if err != nil {
		t.Fatalf("StmtsToMatrix failed: %v", err)
	}
	rows, _ := x.Dims()
	if rows != 0 {
		t.Errorf("expected 0 rows for empty input, got %d", rows)
	}
}

func TestCountsEncoder_NumMembersIsInert(t *testing.T) {
	stmts := []model.Statement{
		{
			Type:     model.TypeComplex,
			Members:  []string{"BRAF", "RAF1", "MAP2K1"},
			Evidence: []model.Evidence{{SourceAPI: "reach"}},
		},
	}

	plain := NewCountsEncoder([]string{"reach"}, Options{})
	withMembers := NewCountsEncoder([]string{"reach"}, Options{UseNumMembers: true})

	x1, err := plain.StmtsToMatrix(stmts)
	if err != nil {
		t.Fatalf("StmtsToMatrix failed: %v", err)
	}
	x2, err := withMembers.StmtsToMatrix(stmts)
	if err != nil {
		t.Fatalf("StmtsToMatrix failed: %v", err)
	}

	if !mat.Equal(x1, x2) {
		t.Error("use_num_members must not change the encoding")
	}
}

func TestCountsEncoder_VocabularyCopied(t *testing.T) {
	vocab := []string{"reach", "sparser"}
	enc := NewCountsEncoder(vocab, Options{})
	vocab[0] = "mutated"

	got := enc.Sources()
	if got[0] != "reach" {
		t.Errorf("expected encoder to copy the vocabulary, got %v", got)
	}
}
