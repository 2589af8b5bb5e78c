package models

import (
	"fmt"

	"github.com/tiendc/go-deepcopy"
)

// Worksheet is a 2-D grid of cells plus the column formatting recorded
// against it. Rows and columns are 0-based.
type Worksheet struct {
	// Name is the sheet name inside its workbook.
	Name string `json:"name"`
	// Rows holds the cell grid. Rows may have different lengths; a missing
	// cell reads as an empty plain cell.
	Rows [][]Cell `json:"rows"`
	// ColWidths maps column index to its width in character units.
	ColWidths map[int]float64 `json:"col_widths,omitempty"`
	// ColStyles maps column index to the column's default style.
	ColStyles map[int]*Style `json:"col_styles,omitempty"`
}

// NewWorksheet returns an empty worksheet with initialized maps.
func NewWorksheet(name string) *Worksheet {
	return &Worksheet{
		Name:      name,
		ColWidths: make(map[int]float64),
		ColStyles: make(map[int]*Style),
	}
}

// RowCount returns the number of rows in the grid.
func (w *Worksheet) RowCount() int {
	return len(w.Rows)
}

// Width returns the length of the longest row.
func (w *Worksheet) Width() int {
	width := 0
	for _, row := range w.Rows {
		if len(row) > width {
			width = len(row)
		}
	}
	return width
}

// Cell returns the cell at (row, col). Out-of-range coordinates yield an
// empty cell.
func (w *Worksheet) Cell(row, col int) Cell {
	if row < 0 || row >= len(w.Rows) || col < 0 || col >= len(w.Rows[row]) {
		return Cell{}
	}
	return w.Rows[row][col]
}

// SetCell stores c at (row, col), growing the grid as needed.
func (w *Worksheet) SetCell(row, col int, c Cell) error {
	if row < 0 || col < 0 {
		return fmt.Errorf("invalid cell coordinates (%d, %d)", row, col)
	}
	for len(w.Rows) <= row {
		w.Rows = append(w.Rows, nil)
	}
	for len(w.Rows[row]) <= col {
		w.Rows[row] = append(w.Rows[row], Cell{})
	}
	w.Rows[row][col] = c
	return nil
}

// Clone returns a deep copy of the worksheet.
func (w *Worksheet) Clone() (*Worksheet, error) {
	var out Worksheet
	if err := deepcopy.Copy(&out, *w); err != nil {
		return nil, fmt.Errorf("clone worksheet %q: %w", w.Name, err)
	}
	return &out, nil
}

// Layout is the detected header position and column language map of a
// worksheet.
type Layout struct {
	// HeaderRow is the 0-based index of the header row.
	HeaderRow int `json:"header_row"`
	// Columns maps column index to the normalized language code found in
	// its header cell. Columns whose header did not match are absent.
	Columns map[int]string `json:"columns"`
}

// FirstDataRow returns the index of the first row below the header.
func (l *Layout) FirstDataRow() int {
	return l.HeaderRow + 1
}

// DataRows returns the number of rows below the header in ws.
func (l *Layout) DataRows(ws *Worksheet) int {
	n := ws.RowCount() - l.FirstDataRow()
	if n < 0 {
		return 0
	}
	return n
}
