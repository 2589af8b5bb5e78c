package parser

import (
	"encoding/xml"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/ukaji3/langsplit-go/pkg/langsplit/models"
	"github.com/ukaji3/langsplit-go/pkg/langsplit/registry"
)

// XLIFF 1.2 extracts hold one trans-unit per data row with source text.
// Unit ids have the form "_msg<row>_<segment>", row being the 0-based extract
// row, so a CAT tool may split a row into several segments.
const (
	xliffNamespace = "urn:oasis:names:tc:xliff:document:1.2"
	xliffRowCount  = "x-langsplit-rows"
	xliffState     = "needs-review-translation"
)

var unitID = regexp.MustCompile(`^_msg(\d+)_(\d+)$`)

type xliffDoc struct {
	XMLName xml.Name  `xml:"xliff"`
	Xmlns   string    `xml:"xmlns,attr,omitempty"`
	Version string    `xml:"version,attr"`
	File    xliffFile `xml:"file"`
}

type xliffFile struct {
	Original       string       `xml:"original,attr"`
	Datatype       string       `xml:"datatype,attr"`
	SourceLanguage string       `xml:"source-language,attr"`
	TargetLanguage string       `xml:"target-language,attr,omitempty"`
	Header         *xliffHeader `xml:"header"`
	Units          []xliffUnit  `xml:"body>trans-unit"`
}

type xliffHeader struct {
	CountGroups []xliffCountGroup `xml:"count-group"`
}

type xliffCountGroup struct {
	Name   string       `xml:"name,attr"`
	Counts []xliffCount `xml:"count"`
}

type xliffCount struct {
	Type  string `xml:"count-type,attr"`
	Unit  string `xml:"unit,attr,omitempty"`
	Value string `xml:",chardata"`
}

type xliffUnit struct {
	ID       string      `xml:"id,attr"`
	Datatype string      `xml:"datatype,attr,omitempty"`
	Source   xliffText   `xml:"source"`
	Target   *xliffText  `xml:"target"`
	Notes    []xliffNote `xml:"note"`
}

type xliffText struct {
	State string `xml:"state,attr,omitempty"`
	Space string `xml:"http://www.w3.org/XML/1998/namespace space,attr,omitempty"`
	Text  string `xml:",chardata"`
}

type xliffNote struct {
	From      string `xml:"from,attr,omitempty"`
	Annotates string `xml:"annotates,attr,omitempty"`
	Priority  int    `xml:"priority,attr,omitempty"`
	Text      string `xml:",chardata"`
}

// WriteXLIFF serializes a bilingual extract as an XLIFF 1.2 document. Rich
// values are written with inline markup (see models.Value.Markup); rows
// without source text are left out. original names the source document.
func WriteXLIFF(ex *models.BilingualExtract, original string, reg *registry.Registry) ([]byte, error) {
	doc := xliffDoc{
		Xmlns:   xliffNamespace,
		Version: "1.2",
		File: xliffFile{
			Original:       original,
			Datatype:       "plaintext",
			SourceLanguage: reg.Tag(ex.Pair.Source),
			TargetLanguage: reg.Tag(ex.Pair.Target),
			Header: &xliffHeader{CountGroups: []xliffCountGroup{{
				Name:   "langsplit",
				Counts: []xliffCount{{Type: xliffRowCount, Unit: "item", Value: strconv.Itoa(ex.RowCount)}},
			}}},
		},
	}

	for i, row := range ex.Rows {
		if row.Source.Value.IsEmpty() {
			continue
		}
		u := xliffUnit{
			ID:       fmt.Sprintf("_msg%d_0", i),
			Datatype: "plaintext",
			Source:   xliffText{Space: "preserve", Text: row.Source.Value.Markup()},
			Target:   &xliffText{State: xliffState, Space: "preserve", Text: row.Target.Value.Markup()},
		}
		if row.Note != "" {
			u.Notes = []xliffNote{{From: "reviewer", Annotates: "general", Priority: 1, Text: row.Note}}
		}
		doc.File.Units = append(doc.File.Units, u)
	}

	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode xliff: %w", err)
	}
	return append([]byte(xml.Header), append(out, '\n')...), nil
}

type segment struct {
	n      int
	source string
	target string
	notes  []string
}

// ReadXLIFF decodes an XLIFF 1.2 extract identified as pair. Rows without a
// trans-unit are marked Absent. Without a declared row count the count is
// taken from the highest row seen.
func ReadXLIFF(data []byte, pair models.LanguagePair, reg *registry.Registry) (*models.BilingualExtract, error) {
	var doc xliffDoc
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode xliff: %w", err)
	}

	ex := &models.BilingualExtract{
		Pair:     pair,
		Header:   [2]models.Cell{{Value: models.Plain(doc.File.SourceLanguage)}, {Value: models.Plain(doc.File.TargetLanguage)}},
		TextOnly: true,
	}
	for c, h := range ex.Header {
		if code, ok := reg.Lookup(h.Value.String()); ok {
			ex.HeaderCodes[c] = code
		}
	}

	rows := make(map[int][]segment)
	last := -1
	for _, u := range doc.File.Units {
		m := unitID.FindStringSubmatch(u.ID)
		if m == nil {
			return nil, fmt.Errorf("trans-unit id %q does not name a row", u.ID)
		}
		row, err := strconv.Atoi(m[1])
		if err != nil {
			return nil, fmt.Errorf("trans-unit id %q: %w", u.ID, err)
		}
		n, err := strconv.Atoi(m[2])
		if err != nil {
			return nil, fmt.Errorf("trans-unit id %q: %w", u.ID, err)
		}

		seg := segment{n: n, source: u.Source.Text}
		if u.Target != nil {
			seg.target = u.Target.Text
		}
		for _, note := range u.Notes {
			if note.Text != "" {
				seg.notes = append(seg.notes, note.Text)
			}
		}
		rows[row] = append(rows[row], seg)
		last = max(last, row)
	}

	declared, ok, err := doc.File.rowCount()
	if err != nil {
		return nil, err
	}
	if !ok {
		declared = last + 1
	}
	ex.RowCount = declared

	ex.Rows = make([]models.ExtractRow, max(declared, last+1))
	for i := range ex.Rows {
		segs, ok := rows[i]
		if !ok {
			ex.Rows[i].Absent = true
			continue
		}
		slices.SortStableFunc(segs, func(a, b segment) int { return a.n - b.n })

		var source, target []string
		var notes []string
		for _, s := range segs {
			source = append(source, s.source)
			target = append(target, s.target)
			notes = append(notes, s.notes...)
		}
		ex.Rows[i] = models.ExtractRow{
			Source: models.Cell{Value: models.ParseMarkup(joinSegments(source))},
			Target: models.Cell{Value: models.ParseMarkup(joinSegments(target))},
			Note:   strings.Join(slices.Compact(notes), "\n"),
		}
	}
	return ex, nil
}

func (f xliffFile) rowCount() (int, bool, error) {
	if f.Header == nil {
		return 0, false, nil
	}
	for _, g := range f.Header.CountGroups {
		for _, c := range g.Counts {
			if c.Type != xliffRowCount {
				continue
			}
			n, err := strconv.Atoi(strings.TrimSpace(c.Value))
			if err != nil || n < 0 {
				return 0, false, fmt.Errorf("invalid %s count %q", xliffRowCount, c.Value)
			}
			return n, true, nil
		}
	}
	return 0, false, nil
}

// joinSegments rebuilds a row's text from its segments, separating them
// with a space except before closing punctuation.
func joinSegments(parts []string) string {
	var b strings.Builder
	for i, p := range parts {
		if i > 0 && p != "" && !strings.ContainsRune(".!?。！？", []rune(p)[0]) {
			b.WriteByte(' ')
		}
		b.WriteString(p)
	}
	return b.String()
}
