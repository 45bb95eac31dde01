package model

// Provenance is the fixed metadata attached to every full-mode output line.
// It describes where the corpus came from, not anything about an individual
// sentence, so one value covers an entire run.
type Provenance struct {
	SourceURL string
	Rationale string
	Domain    string
}

// DefaultProvenance returns the metadata for the Språkbanken newspaper corpus
// this tool was originally built for.
func DefaultProvenance() Provenance {
	return Provenance{
		SourceURL: "https://www.nb.no/sprakbanken/ressurskatalog/oai-nb-no-sbr-80/",
		Rationale: "This is a CC0 licensed corpus cleared from newspaper text. " +
			"The source sentences from a translation corpus is used.  " +
			"It is released by Språkbanken.",
		Domain: "General",
	}
}
