package models

import "fmt"

// LanguagePair identifies a bilingual extract.
type LanguagePair struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// String returns the conventional "<source>-<target>" form.
func (p LanguagePair) String() string {
	return fmt.Sprintf("%s-%s", p.Source, p.Target)
}

// ColumnFormat is the column-level formatting carried into an extract.
type ColumnFormat struct {
	// Width is the column width; zero means the application default.
	Width float64 `json:"width,omitempty"`
	// Style is the column default style, if any.
	Style *Style `json:"style,omitempty"`
}

// ExtractRow is one data row of a bilingual extract.
type ExtractRow struct {
	Source Cell `json:"source"`
	Target Cell `json:"target"`
	// Note is reviewer context shown next to the row, if any.
	Note string `json:"note,omitempty"`
	// Absent marks a row the extract carries nothing for. Merging leaves
	// the original row alone.
	Absent bool `json:"absent,omitempty"`
}

// BilingualExtract is a two-column worksheet pairing the source language
// with one target language. Rows[i] corresponds to the original worksheet
// row HeaderRow+1+i.
type BilingualExtract struct {
	// Pair identifies the extract.
	Pair LanguagePair `json:"pair"`
	// Header holds the source and target header cells.
	Header [2]Cell `json:"header"`
	// Rows holds the data rows in original order.
	Rows []ExtractRow `json:"rows"`
	// RowCount is the declared number of data rows.
	RowCount int `json:"row_count"`
	// PaddedRows counts the trailing Rows a parsed extract did not show,
	// filled in as empty to reach RowCount.
	PaddedRows int `json:"padded_rows,omitempty"`
	// Columns holds the source and target column formatting.
	Columns [2]ColumnFormat `json:"columns"`
	// HeaderCodes holds the normalized codes read from the header row of a
	// parsed extract. Empty when the header label was not recognised.
	HeaderCodes [2]string `json:"header_codes,omitempty"`
	// ExtraColumns lists 0-based columns beyond the two data columns that
	// carry content in a parsed extract.
	ExtraColumns []int `json:"extra_columns,omitempty"`
	// TextOnly marks an extract whose values carry text plus inline markup
	// only (see Value.Markup). Values are compared in that form and cell
	// styles are never overridden.
	TextOnly bool `json:"text_only,omitempty"`
}
