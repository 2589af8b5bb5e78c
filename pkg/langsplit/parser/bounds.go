package parser

import "github.com/ukaji3/langsplit-go/pkg/langsplit/models"

// contentColumns returns, in ascending order, the columns at or beyond from
// that hold a non-empty value in any row.
func contentColumns(ws *models.Worksheet, from int) []int {
	seen := make(map[int]bool)
	maxCol := -1
	for _, row := range ws.Rows {
		for colIdx := from; colIdx < len(row); colIdx++ {
			if !row[colIdx].Value.IsEmpty() {
				seen[colIdx] = true
				if colIdx > maxCol {
					maxCol = colIdx
				}
			}
		}
	}

	var cols []int
	for c := from; c <= maxCol; c++ {
		if seen[c] {
			cols = append(cols, c)
		}
	}
	return cols
}

// lastContentRow returns the index of the last row holding any non-empty
// value, or -1.
func lastContentRow(ws *models.Worksheet) int {
	for r := len(ws.Rows) - 1; r >= 0; r-- {
		for _, c := range ws.Rows[r] {
			if !c.Value.IsEmpty() {
				return r
			}
		}
	}
	return -1
}
