package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/langsplit-go/pkg/langsplit/models"
	"github.com/ukaji3/langsplit-go/pkg/langsplit/registry"
	"github.com/xuri/excelize/v2"
)

var frPair = models.LanguagePair{Source: "ENGB", Target: "FRFR"}

func sampleExtract() *models.BilingualExtract {
	bold := &models.Style{Font: &models.Font{Bold: true}}
	return &models.BilingualExtract{
		Pair:   frPair,
		Header: [2]models.Cell{{Value: models.Plain("en-gb"), Style: bold}, {Value: models.Plain("FRFR")}},
		Rows: []models.ExtractRow{
			{Source: models.Cell{Value: models.Plain("Hello")}, Target: models.Cell{Value: models.Plain("Bonjour")}},
			{
				Source: models.Cell{Value: models.Rich(models.Run{Text: "Big "}, models.Run{Font: &models.Font{Bold: true}, Text: "World"})},
				Target: models.Cell{Value: models.Plain("Monde")},
			},
			{},
			{},
		},
		RowCount: 4,
		Columns:  [2]models.ColumnFormat{{Width: 40}, {Width: 35}},
	}
}

func TestWriteReadExtract(t *testing.T) {
	data, err := WriteExtract(sampleExtract())
	require.NoError(t, err)

	ex, err := ReadExtract(data, frPair, registry.Default())
	require.NoError(t, err)

	assert.Equal(t, frPair, ex.Pair)
	assert.Equal(t, [2]string{"ENGB", "FRFR"}, ex.HeaderCodes)
	assert.Equal(t, "ENGB", ex.Header[0].Value.String(), "header holds the normalized code")
	require.NotNil(t, ex.Header[0].Style)
	require.NotNil(t, ex.Header[0].Style.Font)
	assert.True(t, ex.Header[0].Style.Font.Bold)

	assert.Equal(t, 4, ex.RowCount, "trailing empty rows survive through the declared count")
	require.Len(t, ex.Rows, 4)
	assert.Equal(t, 2, ex.PaddedRows)
	assert.Equal(t, "Bonjour", ex.Rows[0].Target.Value.String())
	assert.True(t, ex.Rows[1].Source.Value.IsRich())
	assert.Equal(t, "Big World", ex.Rows[1].Source.Value.String())
	assert.True(t, ex.Rows[3].Target.Value.IsEmpty())
	assert.Empty(t, ex.ExtraColumns)
	assert.InDelta(t, 40, ex.Columns[0].Width, 0.01)
	assert.InDelta(t, 35, ex.Columns[1].Width, 0.01)

	f, err := Open(data)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{"ENGB-FRFR"}, f.GetSheetList())
}

func TestReadExtract_Foreign(t *testing.T) {
	// An extract written by another tool: no declared count, an extra
	// column and an unrecognised header.
	f := excelize.NewFile()
	defer f.Close()
	for cell, v := range map[string]string{
		"A1": "Source", "B1": "Target",
		"A2": "Hello", "B2": "Bonjour",
		"A3": "World", "B3": "Monde", "D3": "note",
	} {
		require.NoError(t, f.SetCellStr("Sheet1", cell, v))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	ex, err := ReadExtract(buf.Bytes(), frPair, registry.Default())
	require.NoError(t, err)
	assert.Equal(t, [2]string{}, ex.HeaderCodes)
	assert.Equal(t, 2, ex.RowCount)
	assert.Len(t, ex.Rows, 2)
	assert.Equal(t, []int{3}, ex.ExtraColumns)
}

func TestReadExtract_InsertedRow(t *testing.T) {
	data, err := WriteExtract(sampleExtract())
	require.NoError(t, err)

	f, err := Open(data)
	require.NoError(t, err)
	require.NoError(t, f.SetCellStr("ENGB-FRFR", "A7", "added"))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	require.NoError(t, f.Close())

	ex, err := ReadExtract(buf.Bytes(), frPair, registry.Default())
	require.NoError(t, err)
	assert.Equal(t, 4, ex.RowCount)
	assert.Len(t, ex.Rows, 6, "observed rows beyond the declared count are kept for reconciliation")
}

func TestReadExtract_RemovedRow(t *testing.T) {
	data, err := WriteExtract(sampleExtract())
	require.NoError(t, err)

	f, err := Open(data)
	require.NoError(t, err)
	require.NoError(t, f.RemoveRow("ENGB-FRFR", 2))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	require.NoError(t, f.Close())

	ex, err := ReadExtract(buf.Bytes(), frPair, registry.Default())
	require.NoError(t, err)
	assert.Equal(t, 4, ex.RowCount, "the declared count survives the deletion")
	require.Len(t, ex.Rows, 4)
	assert.Equal(t, 3, ex.PaddedRows)
	assert.Equal(t, "Big World", ex.Rows[0].Source.Value.String())
}
