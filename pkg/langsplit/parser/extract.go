package parser

import (
	"fmt"
	"strconv"

	"github.com/ukaji3/langsplit-go/pkg/langsplit/models"
	"github.com/ukaji3/langsplit-go/pkg/langsplit/registry"
	"github.com/xuri/excelize/v2"
)

// RowCountProperty is the custom document property holding an extract's
// declared data-row count. Trailing empty rows are invisible in the sheet
// itself, so the count travels separately.
const RowCountProperty = "langsplit.rows"

// Extract sheet layout: row 1 holds the two language codes, data starts on
// row 2; column A is the source, column B the target.
const (
	extractHeaderRow = 0
	extractFirstRow  = 1
)

// WriteExtract serializes a bilingual extract to a new document.
func WriteExtract(ex *models.BilingualExtract) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := ex.Pair.String()
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return nil, fmt.Errorf("name sheet %s: %w", sheet, err)
	}
	w := newStyleWriter(f)

	for c, col := range ex.Columns {
		name, _ := excelize.ColumnNumberToName(c + 1)
		if col.Width > 0 {
			if err := f.SetColWidth(sheet, name, name, col.Width); err != nil {
				return nil, fmt.Errorf("column %s width: %w", name, err)
			}
		}
		if col.Style != nil {
			id, err := w.id(col.Style)
			if err != nil {
				return nil, err
			}
			if err := f.SetColStyle(sheet, name, id); err != nil {
				return nil, fmt.Errorf("column %s style: %w", name, err)
			}
		}
	}

	codes := [2]string{ex.Pair.Source, ex.Pair.Target}
	for c, h := range ex.Header {
		h.Value = models.Plain(codes[c])
		if err := writeCell(f, w, sheet, extractHeaderRow, c, h); err != nil {
			return nil, fmt.Errorf("header: %w", err)
		}
	}

	for i, row := range ex.Rows {
		r := extractFirstRow + i
		if err := writeCell(f, w, sheet, r, 0, row.Source); err != nil {
			return nil, fmt.Errorf("row %d source: %w", r+1, err)
		}
		if err := writeCell(f, w, sheet, r, 1, row.Target); err != nil {
			return nil, fmt.Errorf("row %d target: %w", r+1, err)
		}
	}

	prop := excelize.CustomProperty{Name: RowCountProperty, Value: strconv.Itoa(ex.RowCount)}
	if err := f.SetCustomProps(prop); err != nil {
		return nil, fmt.Errorf("set row count: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ReadExtract decodes an extract document identified as pair. Header labels
// are resolved through reg; rows are read from the first sheet.
func ReadExtract(data []byte, pair models.LanguagePair, reg *registry.Registry) (*models.BilingualExtract, error) {
	f, err := Open(data)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	ws, err := ReadWorksheet(f, f.GetSheetName(0))
	if err != nil {
		return nil, err
	}

	ex := &models.BilingualExtract{
		Pair:         pair,
		Header:       [2]models.Cell{ws.Cell(extractHeaderRow, 0), ws.Cell(extractHeaderRow, 1)},
		ExtraColumns: contentColumns(ws, 2),
	}
	for c := range ex.Header {
		if code, ok := reg.Lookup(ex.Header[c].Value.String()); ok {
			ex.HeaderCodes[c] = code
		}
		ex.Columns[c] = models.ColumnFormat{Width: ws.ColWidths[c], Style: ws.ColStyles[c]}
	}

	observed := lastContentRow(ws)
	if observed < extractHeaderRow {
		observed = extractHeaderRow
	}
	for r := extractFirstRow; r <= observed; r++ {
		ex.Rows = append(ex.Rows, models.ExtractRow{Source: ws.Cell(r, 0), Target: ws.Cell(r, 1)})
	}

	declared, ok, err := declaredRowCount(f)
	if err != nil {
		return nil, err
	}
	if !ok {
		declared = len(ex.Rows)
	}
	ex.RowCount = declared
	for len(ex.Rows) < declared {
		ex.Rows = append(ex.Rows, models.ExtractRow{})
		ex.PaddedRows++
	}
	return ex, nil
}

func declaredRowCount(f *excelize.File) (int, bool, error) {
	props, err := f.GetCustomProps()
	if err != nil {
		return 0, false, fmt.Errorf("read custom properties: %w", err)
	}
	for _, p := range props {
		if p.Name != RowCountProperty {
			continue
		}
		n, err := strconv.Atoi(fmt.Sprint(p.Value))
		if err != nil || n < 0 {
			return 0, false, fmt.Errorf("invalid %s property %v", RowCountProperty, p.Value)
		}
		return n, true, nil
	}
	return 0, false, nil
}
