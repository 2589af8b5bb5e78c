// Package parser converts between excelize documents and the in-memory
// worksheet model.
package parser

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/ukaji3/langsplit-go/pkg/langsplit/models"
	"github.com/xuri/excelize/v2"
)

// Open parses document bytes.
func Open(data []byte) (*excelize.File, error) {
	return excelize.OpenReader(bytes.NewReader(data))
}

// ReadWorkbook reads every sheet of f in document order.
func ReadWorkbook(f *excelize.File) (*models.Workbook, error) {
	wb := &models.Workbook{Name: f.Path}
	for _, name := range f.GetSheetList() {
		ws, err := ReadWorksheet(f, name)
		if err != nil {
			return nil, err
		}
		wb.Sheets = append(wb.Sheets, ws)
	}
	return wb, nil
}

// ReadWorksheet reads the cells, rich text runs, styles and column
// formatting of one sheet. Raw cell values are used so number formats do not
// alter the text. Reading materializes empty cells in f's in-memory sheet,
// so documents meant to be saved unchanged should be opened separately.
func ReadWorksheet(f *excelize.File, sheetName string) (*models.Worksheet, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}

	r := newStyleReader(f)
	ws := models.NewWorksheet(sheetName)
	ws.Rows = make([][]models.Cell, len(rows))

	// Every row is read to the full grid width so styled empty cells keep
	// their style.
	for rowIdx, row := range rows {
		cells := make([]models.Cell, width)
		for colIdx := range cells {
			var text string
			if colIdx < len(row) {
				text = row[colIdx]
			}
			cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			if err != nil {
				return nil, err
			}
			cell, err := readCell(f, r, sheetName, cellName, text)
			if err != nil {
				return nil, fmt.Errorf("cell %s: %w", cellName, err)
			}
			cells[colIdx] = cell
		}
		ws.Rows[rowIdx] = cells
	}

	for col := 0; col < width; col++ {
		if err := readColumn(f, r, ws, col); err != nil {
			return nil, err
		}
	}
	return ws, nil
}

func readCell(f *excelize.File, r *styleReader, sheetName, cellName, text string) (models.Cell, error) {
	cell := models.Cell{Value: models.Plain(text)}

	if text != "" {
		runs, err := f.GetCellRichText(sheetName, cellName)
		if err != nil {
			return cell, err
		}
		if isRich(runs) {
			cell.Value = models.Rich(runsToModel(runs)...)
		} else if cell.Value.Numeric, err = isNumber(f, sheetName, cellName, text); err != nil {
			return cell, err
		}
	}

	styleID, err := f.GetCellStyle(sheetName, cellName)
	if err != nil {
		return cell, err
	}
	style, err := r.style(styleID)
	if err != nil {
		return cell, err
	}
	cell.StyleID = styleID
	cell.Style = style
	return cell, nil
}

// isNumber reports whether a cell holds a number rather than text.
func isNumber(f *excelize.File, sheetName, cellName, text string) (bool, error) {
	typ, err := f.GetCellType(sheetName, cellName)
	if err != nil {
		return false, err
	}
	if typ != excelize.CellTypeUnset && typ != excelize.CellTypeNumber {
		return false, nil
	}
	return parseNumber(text) != nil, nil
}

// parseNumber converts raw number text to an int64 or float64, or returns
// nil when text is not a number.
func parseNumber(s string) any {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return nil
}

// setText stores a plain value, as a number when it was read as one.
func setText(f *excelize.File, sheetName, cellName string, v models.Value) error {
	if v.Numeric {
		if n := parseNumber(v.Text); n != nil {
			return f.SetCellValue(sheetName, cellName, n)
		}
	}
	return f.SetCellStr(sheetName, cellName, v.Text)
}

// isRich reports whether runs carry formatting. A single unformatted run is
// how plain shared strings come back.
func isRich(runs []excelize.RichTextRun) bool {
	if len(runs) > 1 {
		return true
	}
	return len(runs) == 1 && runs[0].Font != nil
}

func readColumn(f *excelize.File, r *styleReader, ws *models.Worksheet, col int) error {
	name, err := excelize.ColumnNumberToName(col + 1)
	if err != nil {
		return err
	}

	width, err := f.GetColWidth(ws.Name, name)
	if err != nil {
		return fmt.Errorf("column %s width: %w", name, err)
	}
	ws.ColWidths[col] = width

	styleID, err := f.GetColStyle(ws.Name, name)
	if err != nil {
		return fmt.Errorf("column %s style: %w", name, err)
	}
	style, err := r.style(styleID)
	if err != nil {
		return err
	}
	if style != nil {
		ws.ColStyles[col] = style
	}
	return nil
}

// writeCell stores a model cell into f. Empty plain values leave the cell
// value unset.
func writeCell(f *excelize.File, w *styleWriter, sheetName string, row, col int, cell models.Cell) error {
	cellName, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return err
	}

	switch {
	case cell.Value.IsRich() && len(cell.Value.Runs) > 0:
		err = f.SetCellRichText(sheetName, cellName, runsFromModel(cell.Value.Runs))
	case cell.Value.Text != "":
		err = setText(f, sheetName, cellName, cell.Value)
	}
	if err != nil {
		return err
	}

	if cell.Style == nil {
		return nil
	}
	id, err := w.id(cell.Style)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheetName, cellName, cellName, id)
}
