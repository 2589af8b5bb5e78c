package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/langsplit-go/pkg/langsplit/models"
)

func kinds(vs []*Violation) []error {
	out := make([]error, len(vs))
	for i, v := range vs {
		out[i] = v.Kind
	}
	return out
}

func TestReconcile_Clean(t *testing.T) {
	ws := scenarioSheet()
	layout, align := prepare(t, ws)

	exs, err := Split(ws, layout, align, []string{"FRFR", "DEDE"})
	require.NoError(t, err)

	vs := Reconcile(ws, layout, align, manifestOf(exs...), ReconcileOptions{VerifySource: true})
	assert.Empty(t, vs)
}

func TestReconcile_CollectsEverything(t *testing.T) {
	ws := scenarioSheet()
	layout, align := prepare(t, ws)

	fr, err := SplitPair(ws, layout, align, "FRFR")
	require.NoError(t, err)
	frAgain, err := SplitPair(ws, layout, align, "FRFR")
	require.NoError(t, err)
	de, err := SplitPair(ws, layout, align, "DEDE")
	require.NoError(t, err)
	de.Rows = de.Rows[:1]
	de.RowCount = 1
	it := &models.BilingualExtract{Pair: models.LanguagePair{Source: "ENGB", Target: "ITIT"}, RowCount: 3}

	m := manifestOf(fr, de, it, frAgain)
	m.Entries = append(m.Entries, models.ManifestEntry{Name: "broken.xlsx"})

	vs := Reconcile(ws, layout, align, m, ReconcileOptions{})
	assert.Equal(t, []error{
		ErrRowCountMismatch,
		ErrUnknownTargetLanguage,
		ErrStructuralViolation,
		ErrStructuralViolation,
	}, kinds(vs))

	byEntry := GroupByEntry(vs)
	assert.Len(t, byEntry[1], 1)
	assert.Len(t, byEntry[2], 1)
	assert.Len(t, byEntry[3], 1)
	assert.Equal(t, 2, byEntry[3][0].Col)
	assert.Equal(t, "broken.xlsx", byEntry[4][0].Name)
	assert.NotContains(t, byEntry, 0)
}

func TestReconcile_Shape(t *testing.T) {
	ws := scenarioSheet()
	layout, align := prepare(t, ws)

	ex, err := SplitPair(ws, layout, align, "FRFR")
	require.NoError(t, err)
	ex.HeaderCodes = [2]string{"ENGB", "DEDE"}
	ex.ExtraColumns = []int{2, 4}

	vs := Reconcile(ws, layout, align, manifestOf(ex), ReconcileOptions{})
	require.Len(t, vs, 2)
	assert.Contains(t, vs[0].Error(), "expected FRFR")
	assert.Contains(t, vs[1].Error(), "columns 3, 5")

	ex.HeaderCodes = [2]string{}
	ex.ExtraColumns = nil
	ex.Rows = append(ex.Rows, models.ExtractRow{})
	vs = Reconcile(ws, layout, align, manifestOf(ex), ReconcileOptions{})
	require.Len(t, vs, 1)
	assert.ErrorIs(t, vs[0], ErrStructuralViolation)
}

func TestReconcile_WrongSource(t *testing.T) {
	ws := scenarioSheet()
	layout, align := prepare(t, ws)

	ex, err := SplitPair(ws, layout, align, "FRFR")
	require.NoError(t, err)
	m := &models.MergeManifest{}
	m.Entries = append(m.Entries, models.ManifestEntry{
		Name:    "DEDE-FRFR.xlsx",
		Pair:    models.LanguagePair{Source: "DEDE", Target: "FRFR"},
		Extract: ex,
	})

	vs := Reconcile(ws, layout, align, m, ReconcileOptions{})
	require.NotEmpty(t, vs)
	assert.ErrorIs(t, vs[0], ErrStructuralViolation)
	assert.Equal(t, "DEDE", vs[0].Code)
}

func TestReconcile_VerifySource(t *testing.T) {
	ws := scenarioSheet()
	layout, align := prepare(t, ws)

	ex, err := SplitPair(ws, layout, align, "FRFR")
	require.NoError(t, err)
	ex.Rows[2].Source.Value = models.Plain("edited by mistake")

	assert.Empty(t, Reconcile(ws, layout, align, manifestOf(ex), ReconcileOptions{}))

	vs := Reconcile(ws, layout, align, manifestOf(ex), ReconcileOptions{VerifySource: true})
	require.Len(t, vs, 1)
	assert.Equal(t, 5, vs[0].Row)
	assert.Equal(t, 1, vs[0].Col)
	assert.Contains(t, vs[0].Error(), "[row 6]")
}

func TestReconcile_Truncated(t *testing.T) {
	ws := scenarioSheet()
	layout, align := prepare(t, ws)

	ex, err := SplitPair(ws, layout, align, "DEDE")
	require.NoError(t, err)
	ex.Rows = append(ex.Rows[1:2], models.ExtractRow{}, models.ExtractRow{})
	ex.PaddedRows = 2

	vs := Reconcile(ws, layout, align, manifestOf(ex), ReconcileOptions{})
	require.Len(t, vs, 1)
	assert.ErrorIs(t, vs[0], ErrRowCountMismatch)
	assert.Equal(t, 4, vs[0].Row, "first hidden row that holds source text")
	assert.Contains(t, vs[0].Message, "shows 1 data rows, declares 3")
}
