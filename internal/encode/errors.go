package encode

import "errors"

var (
	// ErrSourceNotInVocabulary is returned when the input statements carry
	// evidence from a source the encoder was not configured with. The
	// vocabulary is never auto-extended; the caller must fix the
	// configuration or filter the input.
	ErrSourceNotInVocabulary = errors.New("evidence source not in configured vocabulary")

	// ErrUnknownStatementType is returned when a statement's type is absent
	// from the type registry. The registry is assumed to enumerate the
	// complete closed set of categories, so this indicates drift between
	// the records and the registry version.
	ErrUnknownStatementType = errors.New("statement type not in type registry")
)
