package models

import "errors"

// ManifestEntry binds one named extract to the pair it was identified as.
type ManifestEntry struct {
	// Name is the identifier the extract arrived under (file or archive
	// entry name).
	Name string `json:"name"`
	// Pair is the language pair parsed from Name.
	Pair LanguagePair `json:"pair"`
	// Extract is the decoded extract.
	Extract *BilingualExtract `json:"-"`
}

// MergeManifest is the ordered set of extracts to merge into one original.
type MergeManifest struct {
	Entries []ManifestEntry `json:"entries"`
}

// Add appends an entry to the manifest.
func (m *MergeManifest) Add(name string, ex *BilingualExtract) {
	m.Entries = append(m.Entries, ManifestEntry{Name: name, Pair: ex.Pair, Extract: ex})
}

// CellWrite records one cell changed by a merge.
type CellWrite struct {
	Row int `json:"row"`
	Col int `json:"col"`
	// Value is the value written.
	Value Value `json:"value"`
	// ValueChanged is set when the value differs from the previous one.
	ValueChanged bool `json:"value_changed"`
	// Style is the override style; only meaningful with StyleOverride.
	Style *Style `json:"style,omitempty"`
	// StyleOverride is set when the extract carried a different style.
	StyleOverride bool `json:"style_override"`
}

// PairFailure reports a manifest entry that could not be merged.
type PairFailure struct {
	Name string       `json:"name"`
	Pair LanguagePair `json:"pair"`
	Err  error        `json:"-"`
}

// MergeReport is the outcome of a merge over a whole manifest.
type MergeReport struct {
	// Merged lists the pairs applied successfully, in manifest order.
	Merged []LanguagePair `json:"merged"`
	// Failed lists the entries that were rejected.
	Failed []PairFailure `json:"failed,omitempty"`
	// Writes lists every cell changed, in application order.
	Writes []CellWrite `json:"writes,omitempty"`
}

// OK reports whether every entry merged.
func (r *MergeReport) OK() bool {
	return len(r.Failed) == 0
}

// Err joins the failures into one error, or returns nil.
func (r *MergeReport) Err() error {
	errs := make([]error, 0, len(r.Failed))
	for _, f := range r.Failed {
		errs = append(errs, f.Err)
	}
	return errors.Join(errs...)
}
