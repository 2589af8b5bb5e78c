package engine

import (
	"fmt"

	"github.com/ukaji3/langsplit-go/pkg/langsplit/models"
)

// Split builds one bilingual extract per requested target code, in request
// order. Repeated codes yield a single extract.
func Split(ws *models.Worksheet, layout *models.Layout, align *Alignment, targets []string) ([]*models.BilingualExtract, error) {
	seen := make(map[string]bool, len(targets))
	out := make([]*models.BilingualExtract, 0, len(targets))
	for _, code := range targets {
		if seen[code] {
			continue
		}
		seen[code] = true

		ex, err := SplitPair(ws, layout, align, code)
		if err != nil {
			return nil, err
		}
		out = append(out, ex)
	}
	return out, nil
}

// SplitPair builds the extract pairing the source column with the target
// column of code. Every data row is emitted, empty or not, so extract row i
// stays bound to worksheet row HeaderRow+1+i.
func SplitPair(ws *models.Worksheet, layout *models.Layout, align *Alignment, code string) (*models.BilingualExtract, error) {
	pair := models.LanguagePair{Source: align.Source.Code, Target: code}

	target, ok := align.Target(code)
	if !ok {
		v := newViolation(ErrUnknownTargetLanguage, "no target column for this code")
		v.Pair = pair
		v.Code = code
		return nil, v
	}

	n := layout.DataRows(ws)
	if n == 0 {
		v := newViolation(ErrEmptySourceDocument, fmt.Sprintf("no rows below header row %d", layout.HeaderRow+1))
		v.Pair = pair
		return nil, v
	}

	src := align.Source.Column
	ex := &models.BilingualExtract{
		Pair: pair,
		Header: [2]models.Cell{
			ws.Cell(layout.HeaderRow, src),
			ws.Cell(layout.HeaderRow, target.Column),
		},
		Rows:     make([]models.ExtractRow, n),
		RowCount: n,
		Columns: [2]models.ColumnFormat{
			columnFormat(ws, src),
			columnFormat(ws, target.Column),
		},
		HeaderCodes: [2]string{pair.Source, pair.Target},
	}

	first := layout.FirstDataRow()
	for i := 0; i < n; i++ {
		ex.Rows[i] = models.ExtractRow{
			Source: ws.Cell(first+i, src),
			Target: ws.Cell(first+i, target.Column),
		}
	}
	return ex, nil
}

func columnFormat(ws *models.Worksheet, col int) models.ColumnFormat {
	return models.ColumnFormat{
		Width: ws.ColWidths[col],
		Style: ws.ColStyles[col],
	}
}
