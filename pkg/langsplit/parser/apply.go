package parser

import (
	"fmt"

	"github.com/ukaji3/langsplit-go/pkg/langsplit/models"
	"github.com/xuri/excelize/v2"
)

// ApplyWrites stores merge writes into the sheet of f. Only the listed
// cells are touched; a value write keeps the cell's existing style and a
// style override replaces the cell style only, never the column's.
func ApplyWrites(f *excelize.File, sheetName string, writes []models.CellWrite) error {
	w := newStyleWriter(f)
	for _, wr := range writes {
		cellName, err := excelize.CoordinatesToCellName(wr.Col+1, wr.Row+1)
		if err != nil {
			return err
		}

		if wr.ValueChanged {
			if err := setValue(f, sheetName, cellName, wr.Value); err != nil {
				return fmt.Errorf("cell %s: %w", cellName, err)
			}
		}

		if wr.StyleOverride && wr.Style != nil {
			id, err := w.id(wr.Style)
			if err != nil {
				return fmt.Errorf("cell %s style: %w", cellName, err)
			}
			if err := f.SetCellStyle(sheetName, cellName, cellName, id); err != nil {
				return fmt.Errorf("cell %s style: %w", cellName, err)
			}
		}
	}
	return nil
}

func setValue(f *excelize.File, sheetName, cellName string, v models.Value) error {
	switch {
	case v.IsRich() && len(v.Runs) > 0:
		return f.SetCellRichText(sheetName, cellName, runsFromModel(v.Runs))
	case v.String() == "":
		return f.SetCellValue(sheetName, cellName, nil)
	default:
		return setText(f, sheetName, cellName, v)
	}
}
