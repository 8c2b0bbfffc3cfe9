package model

// Statement represents a mechanistic scientific claim assembled from
// machine-reading and database evidence
type Statement struct {
	Type     StatementType `json:"type"`              // Statement category (e.g., "Activation")
	Evidence []Evidence    `json:"evidence"`          // Supporting evidence items
	Members  []string      `json:"members,omitempty"` // Participants, for Complex-style statements
}

// StatementType categorizes the mechanistic nature of the statement
type StatementType string

const (
	TypeActivation          StatementType = "Activation"
	TypeInhibition          StatementType = "Inhibition"
	TypePhosphorylation     StatementType = "Phosphorylation"
	TypeDephosphorylation   StatementType = "Dephosphorylation"
	TypeAutophosphorylation StatementType = "Autophosphorylation"
	TypeUbiquitination      StatementType = "Ubiquitination"
	TypeDeubiquitination    StatementType = "Deubiquitination"
	TypeAcetylation         StatementType = "Acetylation"
	TypeMethylation         StatementType = "Methylation"
	TypeIncreaseAmount      StatementType = "IncreaseAmount"
	TypeDecreaseAmount      StatementType = "DecreaseAmount"
	TypeComplex             StatementType = "Complex"
	TypeTranslocation       StatementType = "Translocation"
	TypeActiveForm          StatementType = "ActiveForm"
	TypeConversion          StatementType = "Conversion"
	TypeGef                 StatementType = "Gef"
	TypeGap                 StatementType = "Gap"
)

// AllStatementTypes returns the closed registry of statement categories in
// a fixed, versioned order. The encoder's type feature is an index into
// this ordering, so entries must only ever be appended, never reordered.
func AllStatementTypes() []StatementType {
	return []StatementType{
		TypeActivation,
		TypeInhibition,
		TypePhosphorylation,
		TypeDephosphorylation,
		TypeAutophosphorylation,
		TypeUbiquitination,
		TypeDeubiquitination,
		TypeAcetylation,
		TypeMethylation,
		TypeIncreaseAmount,
		TypeDecreaseAmount,
		TypeComplex,
		TypeTranslocation,
		TypeActiveForm,
		TypeConversion,
		TypeGef,
		TypeGap,
	}
}

// NewTypeIndex builds the dense statement-type to integer mapping used for
// the categorical type feature
func NewTypeIndex() map[StatementType]int {
	types := AllStatementTypes()
	index := make(map[StatementType]int, len(types))
	for i, t := range types {
		index[t] = i
	}
	return index
}
