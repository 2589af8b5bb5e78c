package engine

import (
	"github.com/ukaji3/langsplit-go/pkg/langsplit/models"
	"github.com/ukaji3/langsplit-go/pkg/langsplit/registry"
)

// DefaultScanWindow is the number of leading rows searched for the header.
const DefaultScanWindow = 10

// minHeaderCodes is the number of recognised codes that makes a row a header.
const minHeaderCodes = 2

// DetectHeader finds the first row among the first window rows whose cells
// name at least two registry languages, and maps each such column to its
// code. Columns whose header does not match are left out. A window of zero
// or less uses DefaultScanWindow.
func DetectHeader(ws *models.Worksheet, reg *registry.Registry, window int) (*models.Layout, error) {
	if window <= 0 {
		window = DefaultScanWindow
	}

	limit := ws.RowCount()
	if limit > window {
		limit = window
	}

	for r := 0; r < limit; r++ {
		columns := matchRow(ws.Rows[r], reg)
		if len(columns) >= minHeaderCodes {
			return &models.Layout{HeaderRow: r, Columns: columns}, nil
		}
	}

	v := newViolation(ErrHeaderNotFound, "")
	if ws.RowCount() == 0 {
		v.Message = "worksheet is empty"
	} else {
		v.Message = "no language-coded row in the scanned window"
	}
	return nil, v
}

// matchRow returns column -> code for every cell of row naming a language.
func matchRow(row []models.Cell, reg *registry.Registry) map[int]string {
	columns := make(map[int]string)
	for c, cell := range row {
		if code, ok := reg.Lookup(cell.Value.String()); ok {
			columns[c] = code
		}
	}
	return columns
}
