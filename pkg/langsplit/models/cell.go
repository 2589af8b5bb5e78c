package models

import "strings"

// Run is a contiguous piece of rich text sharing one font.
type Run struct {
	// Font is the run font. Nil means the cell's default font.
	Font *Font `json:"font,omitempty"`
	// Text is the run text.
	Text string `json:"text"`
}

// Value is a cell value: either plain text or an ordered run sequence.
// The zero Value is empty plain text.
type Value struct {
	// Text holds the plain text. Unused when Runs is non-nil.
	Text string `json:"text,omitempty"`
	// Runs holds the rich text runs. Non-nil marks a rich value.
	Runs []Run `json:"runs,omitempty"`
	// Numeric marks plain text read from a number cell; it is written back
	// as a number. It does not take part in Equal.
	Numeric bool `json:"numeric,omitempty"`
}

// Plain returns a plain text value.
func Plain(s string) Value {
	return Value{Text: s}
}

// Rich returns a rich text value made of runs.
func Rich(runs ...Run) Value {
	if runs == nil {
		runs = []Run{}
	}
	return Value{Runs: runs}
}

// IsRich reports whether the value is a run sequence.
func (v Value) IsRich() bool {
	return v.Runs != nil
}

// String returns the visible text of the value.
func (v Value) String() string {
	if !v.IsRich() {
		return v.Text
	}
	var b strings.Builder
	for _, r := range v.Runs {
		b.WriteString(r.Text)
	}
	return b.String()
}

// IsEmpty reports whether the value has no visible text.
func (v Value) IsEmpty() bool {
	return v.String() == ""
}

// Equal reports whether two values have the same representation, including
// run boundaries and run fonts.
func (v Value) Equal(o Value) bool {
	if v.IsRich() != o.IsRich() {
		return false
	}
	if !v.IsRich() {
		return v.Text == o.Text
	}
	if len(v.Runs) != len(o.Runs) {
		return false
	}
	for i := range v.Runs {
		if v.Runs[i].Text != o.Runs[i].Text || !v.Runs[i].Font.Equal(o.Runs[i].Font) {
			return false
		}
	}
	return true
}

// Cell is one grid cell.
type Cell struct {
	// Value is the cell content.
	Value Value `json:"value"`
	// Style is the resolved cell style. Nil means the workbook default.
	Style *Style `json:"style,omitempty"`
	// StyleID is the style index in the document the cell was read from.
	// Zero is the default style; -1 marks a style that has no index in the
	// owning document yet.
	StyleID int `json:"style_id"`
}
