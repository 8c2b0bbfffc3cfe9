package model

// Evidence represents a single piece of support for a statement, tagged
// with the identifier of the extraction source that produced it
type Evidence struct {
	SourceAPI string `json:"source_api"`          // Originating reader or database (e.g., "reach")
	SourceID  string `json:"source_id,omitempty"` // Identifier within the source, if any
	PMID      string `json:"pmid,omitempty"`      // PubMed ID of the supporting publication
	Text      string `json:"text,omitempty"`      // Sentence the evidence was extracted from
}

// KnownSourceAPIs returns the conventional set of evidence source
// identifiers, in the column order used for the default count features.
// Readers first, curated databases after.
func KnownSourceAPIs() []string {
	return []string{
		"reach",
		"sparser",
		"trips",
		"medscan",
		"rlimsp",
		"isi",
		"eidos",
		"signor",
		"biopax",
		"bel",
		"biogrid",
		"hprd",
		"trrust",
		"tas",
	}
}
