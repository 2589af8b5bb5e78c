// Package models defines the in-memory document structures shared by the
// detection, split and merge stages.
package models

// Workbook is an ordered sequence of worksheets read from one document.
type Workbook struct {
	// Name is the workbook file name (no path), if known.
	Name string `json:"name,omitempty"`
	// Sheets holds the worksheets in document order.
	Sheets []*Worksheet `json:"sheets"`
}

// Sheet returns the worksheet with the given name, or nil.
func (w *Workbook) Sheet(name string) *Worksheet {
	for _, s := range w.Sheets {
		if s.Name == name {
			return s
		}
	}
	return nil
}
