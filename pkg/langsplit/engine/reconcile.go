package engine

import (
	"fmt"
	"strings"

	"github.com/ukaji3/langsplit-go/pkg/langsplit/models"
)

// ReconcileOptions tunes the reconciliation pass.
type ReconcileOptions struct {
	// VerifySource additionally requires every extract's source column to
	// carry the same text as the original's source column, row by row.
	VerifySource bool
}

// Reconcile checks a whole manifest against the original before anything is
// written. It returns every violation found, in manifest order; an empty
// result means the manifest is safe to merge.
func Reconcile(ws *models.Worksheet, layout *models.Layout, align *Alignment, manifest *models.MergeManifest, opts ReconcileOptions) []*Violation {
	var out []*Violation
	claimed := make(map[int]int)
	dataRows := layout.DataRows(ws)

	for i, entry := range manifest.Entries {
		add := func(v *Violation) {
			v.Entry = i
			v.Name = entry.Name
			v.Pair = entry.Pair
			out = append(out, v)
		}

		ex := entry.Extract
		if ex == nil {
			add(newViolation(ErrStructuralViolation, "entry has no extract"))
			continue
		}

		for _, v := range shapeViolations(entry, align) {
			add(v)
		}

		target, known := align.Target(entry.Pair.Target)
		if !known {
			v := newViolation(ErrUnknownTargetLanguage, "original has no column for this language")
			v.Code = entry.Pair.Target
			add(v)
		} else if prev, dup := claimed[target.Column]; dup {
			v := newViolation(ErrStructuralViolation,
				fmt.Sprintf("targets the same column as %s", manifest.Entries[prev].Name))
			v.Code = target.Code
			v.Col = target.Column
			add(v)
		} else {
			claimed[target.Column] = i
		}

		if ex.RowCount != dataRows {
			v := newViolation(ErrRowCountMismatch,
				fmt.Sprintf("extract has %d data rows, original has %d", ex.RowCount, dataRows))
			add(v)
		} else if v := truncation(ws, layout, align, ex); v != nil {
			add(v)
		} else if opts.VerifySource {
			for _, v := range sourceDrift(ws, layout, align, ex) {
				add(v)
			}
		}
	}
	return out
}

// shapeViolations reports defects of the extract itself that are
// independent of the original's rows.
func shapeViolations(entry models.ManifestEntry, align *Alignment) []*Violation {
	var out []*Violation
	ex := entry.Extract

	if entry.Pair.Source != align.Source.Code {
		v := newViolation(ErrStructuralViolation,
			fmt.Sprintf("extract source %s differs from document source %s", entry.Pair.Source, align.Source.Code))
		v.Code = entry.Pair.Source
		out = append(out, v)
	}
	if ex.Pair != entry.Pair {
		out = append(out, newViolation(ErrStructuralViolation,
			fmt.Sprintf("extract is for %s", ex.Pair)))
	}

	want := [2]string{entry.Pair.Source, entry.Pair.Target}
	for c, code := range ex.HeaderCodes {
		if code != "" && code != want[c] {
			v := newViolation(ErrStructuralViolation,
				fmt.Sprintf("header of extract column %d names %s, expected %s", c+1, code, want[c]))
			v.Code = code
			out = append(out, v)
		}
	}

	if len(ex.ExtraColumns) > 0 {
		cols := make([]string, len(ex.ExtraColumns))
		for i, c := range ex.ExtraColumns {
			cols[i] = fmt.Sprint(c + 1)
		}
		out = append(out, newViolation(ErrStructuralViolation,
			fmt.Sprintf("extract has content outside its two columns (columns %s)", strings.Join(cols, ", "))))
	}

	if len(ex.Rows) > ex.RowCount {
		out = append(out, newViolation(ErrStructuralViolation,
			fmt.Sprintf("extract holds %d rows but declares %d", len(ex.Rows), ex.RowCount)))
	}
	return out
}

// truncation reports an extract that declares the right row count but shows
// fewer rows, when a row it does not show holds source text in the original.
// Rows deleted from an extract leave exactly that trace.
func truncation(ws *models.Worksheet, layout *models.Layout, align *Alignment, ex *models.BilingualExtract) *Violation {
	shown := ex.RowCount - ex.PaddedRows
	first := layout.FirstDataRow()
	for i := max(shown, 0); i < ex.RowCount; i++ {
		if ws.Cell(first+i, align.Source.Column).Value.IsEmpty() {
			continue
		}
		v := newViolation(ErrRowCountMismatch,
			fmt.Sprintf("extract shows %d data rows, declares %d", shown, ex.RowCount))
		v.Row = first + i
		v.Col = align.Source.Column
		return v
	}
	return nil
}

// sourceDrift reports rows whose extract source text no longer matches the
// original source text.
func sourceDrift(ws *models.Worksheet, layout *models.Layout, align *Alignment, ex *models.BilingualExtract) []*Violation {
	var out []*Violation
	first := layout.FirstDataRow()
	for i := 0; i < ex.RowCount; i++ {
		var got string
		if i < len(ex.Rows) {
			if ex.Rows[i].Absent {
				continue
			}
			got = ex.Rows[i].Source.Value.String()
		}
		want := ws.Cell(first+i, align.Source.Column).Value.String()
		if got != want {
			v := newViolation(ErrStructuralViolation,
				fmt.Sprintf("source text %q does not match original %q", got, want))
			v.Row = first + i
			v.Col = align.Source.Column
			out = append(out, v)
		}
	}
	return out
}

// GroupByEntry indexes violations by manifest entry.
func GroupByEntry(vs []*Violation) map[int][]*Violation {
	out := make(map[int][]*Violation)
	for _, v := range vs {
		out[v.Entry] = append(out[v.Entry], v)
	}
	return out
}
