package engine

import (
	"fmt"
	"strconv"

	"github.com/ukaji3/langsplit-go/pkg/langsplit/models"
)

// Merge applies every manifest entry to ws in manifest order. Entries are
// independent: a failing entry is reported and skipped, entries already
// applied stay applied. A second entry for an already merged column fails.
func Merge(ws *models.Worksheet, layout *models.Layout, align *Alignment, manifest *models.MergeManifest) *models.MergeReport {
	report := &models.MergeReport{}
	merged := make(map[int]string)

	for _, entry := range manifest.Entries {
		if t, ok := align.Target(entry.Pair.Target); ok {
			if prev, dup := merged[t.Column]; dup {
				v := newViolation(ErrStructuralViolation, fmt.Sprintf("column already merged from %s", prev))
				v.Name = entry.Name
				v.Pair = entry.Pair
				v.Col = t.Column
				report.Failed = append(report.Failed, models.PairFailure{Name: entry.Name, Pair: entry.Pair, Err: v})
				continue
			}
		}

		writes, err := MergePair(ws, layout, align, entry)
		if err != nil {
			report.Failed = append(report.Failed, models.PairFailure{Name: entry.Name, Pair: entry.Pair, Err: err})
			continue
		}

		t, _ := align.Target(entry.Pair.Target)
		merged[t.Column] = entry.Name
		report.Merged = append(report.Merged, entry.Pair)
		report.Writes = append(report.Writes, writes...)
	}
	return report
}

// MergePair writes one extract's target column into ws. All checks run
// before the first write, so a rejected extract leaves ws untouched. Only
// cell values change, plus the style of cells whose extract counterpart
// carries a different style; column formatting is never modified.
func MergePair(ws *models.Worksheet, layout *models.Layout, align *Alignment, entry models.ManifestEntry) ([]models.CellWrite, error) {
	fail := func(kind error, msg string) *Violation {
		v := newViolation(kind, msg)
		v.Name = entry.Name
		v.Pair = entry.Pair
		return v
	}

	ex := entry.Extract
	if ex == nil {
		return nil, fail(ErrStructuralViolation, "entry has no extract")
	}
	if entry.Pair.Source != align.Source.Code {
		v := fail(ErrStructuralViolation,
			fmt.Sprintf("extract source %s differs from document source %s", entry.Pair.Source, align.Source.Code))
		v.Code = entry.Pair.Source
		return nil, v
	}

	target, ok := align.Target(entry.Pair.Target)
	if !ok {
		v := fail(ErrUnknownTargetLanguage, "original has no column for this language")
		v.Code = entry.Pair.Target
		return nil, v
	}

	n := layout.DataRows(ws)
	if ex.RowCount != n {
		return nil, fail(ErrRowCountMismatch,
			fmt.Sprintf("extract has %d data rows, original has %d", ex.RowCount, n))
	}
	if len(ex.Rows) > ex.RowCount {
		return nil, fail(ErrStructuralViolation,
			fmt.Sprintf("extract holds %d rows but declares %d", len(ex.Rows), ex.RowCount))
	}
	if v := truncation(ws, layout, align, ex); v != nil {
		v.Name = entry.Name
		v.Pair = entry.Pair
		return nil, v
	}

	first := layout.FirstDataRow()
	var writes []models.CellWrite
	for i := 0; i < n; i++ {
		var src models.Cell
		if i < len(ex.Rows) {
			if ex.Rows[i].Absent {
				continue
			}
			src = ex.Rows[i].Target
		}

		row := first + i
		cell := ws.Cell(row, target.Column)
		changed := !cell.Value.Equal(src.Value)
		if ex.TextOnly {
			changed = cell.Value.Markup() != src.Value.Markup()
			src.Style = nil
			if cell.Value.Numeric && !src.Value.IsRich() {
				_, err := strconv.ParseFloat(src.Value.Text, 64)
				src.Value.Numeric = err == nil
			}
		}
		w := models.CellWrite{
			Row:           row,
			Col:           target.Column,
			Value:         src.Value,
			ValueChanged:  changed,
			StyleOverride: src.Style != nil && !src.Style.Equal(cell.Style),
		}
		if !w.ValueChanged && !w.StyleOverride {
			continue
		}

		cell.Value = src.Value
		if w.StyleOverride {
			w.Style = src.Style
			cell.Style = src.Style
			cell.StyleID = -1
		}
		if err := ws.SetCell(row, target.Column, cell); err != nil {
			return writes, err
		}
		writes = append(writes, w)
	}
	return writes, nil
}
