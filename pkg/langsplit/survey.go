package langsplit

import (
	"slices"

	"github.com/ukaji3/langsplit-go/pkg/langsplit/engine"
	"github.com/ukaji3/langsplit-go/pkg/langsplit/models"
	"github.com/ukaji3/langsplit-go/pkg/langsplit/parser"
)

// SheetSurvey describes the language header found on one worksheet.
type SheetSurvey struct {
	Name string `json:"name"`
	// HeaderRow is the 1-based header row, or 0 when no header was found.
	HeaderRow int `json:"header_row,omitempty"`
	DataRows  int `json:"data_rows,omitempty"`
	// Codes lists the header's language codes in column order.
	Codes []string `json:"codes,omitempty"`
	// Err is the detection failure, if any.
	Err error `json:"-"`
}

// Survey runs header detection on every worksheet of a workbook so callers
// can tell which sheet to open. With opts.Sheet set only that sheet is
// reported.
func Survey(data []byte, opts Options) ([]SheetSurvey, error) {
	opts = opts.withDefaults()

	f, err := parser.Open(data)
	if err != nil {
		return nil, newDocumentError("open", "", invalidFormat(err))
	}
	defer f.Close()

	wb, err := parser.ReadWorkbook(f)
	if err != nil {
		return nil, newDocumentError("read", "", err)
	}
	sheets := wb.Sheets
	if opts.Sheet != "" {
		ws := wb.Sheet(opts.Sheet)
		if ws == nil {
			return nil, newDocumentError("open", opts.Sheet, ErrSheetNotFound)
		}
		sheets = []*models.Worksheet{ws}
	}

	out := make([]SheetSurvey, len(sheets))
	for i, ws := range sheets {
		out[i].Name = ws.Name
		layout, err := engine.DetectHeader(ws, opts.Registry, opts.ScanWindow)
		if err != nil {
			out[i].Err = err
			continue
		}
		out[i].HeaderRow = layout.HeaderRow + 1
		out[i].DataRows = layout.DataRows(ws)

		cols := make([]int, 0, len(layout.Columns))
		for c := range layout.Columns {
			cols = append(cols, c)
		}
		slices.Sort(cols)
		for _, c := range cols {
			out[i].Codes = append(out[i].Codes, layout.Columns[c])
		}
	}
	return out, nil
}
