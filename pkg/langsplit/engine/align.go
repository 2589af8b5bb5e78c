package engine

import (
	"fmt"
	"sort"

	"github.com/ukaji3/langsplit-go/pkg/langsplit/models"
)

// LanguageColumn is a language code bound to its worksheet column.
type LanguageColumn struct {
	Code   string `json:"code"`
	Column int    `json:"column"`
}

// Alignment is a validated column map: the source column and the target
// columns in column order.
type Alignment struct {
	Source  LanguageColumn   `json:"source"`
	Targets []LanguageColumn `json:"targets"`
}

// Candidates returns the available language pairs in column order. The list
// is advisory; callers pick which pairs to split.
func (a *Alignment) Candidates() []models.LanguagePair {
	pairs := make([]models.LanguagePair, 0, len(a.Targets))
	for _, t := range a.Targets {
		pairs = append(pairs, models.LanguagePair{Source: a.Source.Code, Target: t.Code})
	}
	return pairs
}

// Target returns the column bound to a target code.
func (a *Alignment) Target(code string) (LanguageColumn, bool) {
	for _, t := range a.Targets {
		if t.Code == code {
			return t, true
		}
	}
	return LanguageColumn{}, false
}

// Align validates a column map against the source code: the source must
// own exactly one column, no code may label two columns and at least one
// other language must be present. source must already be normalized.
func Align(layout *models.Layout, source string) (*Alignment, error) {
	cols := make([]int, 0, len(layout.Columns))
	for c := range layout.Columns {
		cols = append(cols, c)
	}
	sort.Ints(cols)

	seen := make(map[string]int, len(cols))
	a := &Alignment{Source: LanguageColumn{Column: -1}}

	for _, c := range cols {
		code := layout.Columns[c]
		if first, dup := seen[code]; dup {
			v := newViolation(ErrDuplicateLanguageColumn,
				fmt.Sprintf("also labels column %d", first+1))
			v.Code = code
			v.Row = layout.HeaderRow
			v.Col = c
			return nil, v
		}
		seen[code] = c

		if code == source {
			a.Source = LanguageColumn{Code: code, Column: c}
			continue
		}
		a.Targets = append(a.Targets, LanguageColumn{Code: code, Column: c})
	}

	if a.Source.Column < 0 {
		v := newViolation(ErrSourceLanguageMissing, "no header cell names the source language")
		v.Code = source
		v.Row = layout.HeaderRow
		return nil, v
	}
	if len(a.Targets) == 0 {
		v := newViolation(ErrNoTargetLanguages, "only the source language has a column")
		v.Code = source
		v.Row = layout.HeaderRow
		return nil, v
	}
	return a, nil
}
