package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/ukaji3/langsplit-go/pkg/langsplit/models"
	"github.com/ukaji3/langsplit-go/pkg/langsplit/registry"
)

var (
	boldRed = &models.Font{Bold: true, Color: "FF0000"}
	yellow  = &models.Style{Fill: models.Fill{Type: "pattern", Pattern: 1, Color: []string{"FFFF00"}}}
	wrapped = &models.Style{Alignment: &models.Alignment{WrapText: true}, Font: &models.Font{Family: "Arial", Size: 10}}
)

// sheetFromStrings builds a worksheet of plain cells.
func sheetFromStrings(rows [][]string) *models.Worksheet {
	ws := models.NewWorksheet("Sheet1")
	for _, row := range rows {
		cells := make([]models.Cell, len(row))
		for c, s := range row {
			cells[c] = models.Cell{Value: models.Plain(s)}
		}
		ws.Rows = append(ws.Rows, cells)
	}
	return ws
}

// scenarioSheet is a worksheet with the header on row index 2, three data
// rows and a mix of plain, rich and styled cells.
func scenarioSheet() *models.Worksheet {
	ws := sheetFromStrings([][]string{
		{"Product catalogue"},
		{},
		{"", "ENGB", "FRFR", "DEDE"},
		{"k1", "Hello", "Bonjour", "Hallo"},
		{"k2", "World", "Monde", "Welt"},
		{"k3", "", "", ""},
	})

	ws.Rows[3][1].Style = yellow
	ws.Rows[3][1].StyleID = 3
	ws.Rows[4][1] = models.Cell{
		Value:   models.Rich(models.Run{Text: "Big "}, models.Run{Font: boldRed, Text: "World"}),
		Style:   wrapped,
		StyleID: 4,
	}
	ws.Rows[4][3].Style = yellow
	ws.Rows[4][3].StyleID = 3

	ws.ColWidths = map[int]float64{0: 8, 1: 40, 2: 35, 3: 30}
	ws.ColStyles = map[int]*models.Style{1: wrapped}
	return ws
}

// prepare runs detection and alignment on ws with the default registry.
func prepare(t *testing.T, ws *models.Worksheet) (*models.Layout, *Alignment) {
	t.Helper()
	layout, err := DetectHeader(ws, registry.Default(), DefaultScanWindow)
	require.NoError(t, err)
	align, err := Align(layout, registry.DefaultSource)
	require.NoError(t, err)
	return layout, align
}

func manifestOf(exs ...*models.BilingualExtract) *models.MergeManifest {
	m := &models.MergeManifest{}
	for _, ex := range exs {
		m.Add(ex.Pair.String()+".xlsx", ex)
	}
	return m
}
