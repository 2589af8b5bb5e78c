package parser

import (
	"strings"

	"github.com/ukaji3/langsplit-go/pkg/langsplit/models"
	"github.com/xuri/excelize/v2"
)

// styleReader resolves style indexes of one document, once per index.
type styleReader struct {
	f     *excelize.File
	cache map[int]*models.Style
}

func newStyleReader(f *excelize.File) *styleReader {
	return &styleReader{f: f, cache: make(map[int]*models.Style)}
}

// style returns the model of style index id; index 0 is the default style
// and yields nil.
func (r *styleReader) style(id int) (*models.Style, error) {
	if id == 0 {
		return nil, nil
	}
	if s, ok := r.cache[id]; ok {
		return s, nil
	}
	xs, err := r.f.GetStyle(id)
	if err != nil {
		return nil, err
	}
	s := styleToModel(xs)
	r.cache[id] = s
	return s, nil
}

// styleWriter registers model styles in one document, once per style value.
type styleWriter struct {
	f   *excelize.File
	ids []styleID
}

type styleID struct {
	style *models.Style
	id    int
}

func newStyleWriter(f *excelize.File) *styleWriter {
	return &styleWriter{f: f}
}

func (w *styleWriter) id(s *models.Style) (int, error) {
	for _, known := range w.ids {
		if known.style.Equal(s) {
			return known.id, nil
		}
	}
	id, err := w.f.NewStyle(styleFromModel(s))
	if err != nil {
		return 0, err
	}
	w.ids = append(w.ids, styleID{style: s, id: id})
	return id, nil
}

// canonColor reduces ARGB and "#RRGGBB" forms to upper-case RRGGBB so that
// styles compare equal across a write/read cycle.
func canonColor(c string) string {
	c = strings.ToUpper(strings.TrimPrefix(c, "#"))
	if len(c) == 8 {
		c = c[2:]
	}
	return c
}

func fontToModel(f *excelize.Font) *models.Font {
	if f == nil {
		return nil
	}
	return &models.Font{
		Bold:         f.Bold,
		Italic:       f.Italic,
		Underline:    f.Underline,
		Strike:       f.Strike,
		Family:       f.Family,
		Size:         f.Size,
		Color:        canonColor(f.Color),
		ColorIndexed: f.ColorIndexed,
		ColorTheme:   copyInt(f.ColorTheme),
		ColorTint:    f.ColorTint,
		VertAlign:    f.VertAlign,
		Charset:      copyInt(f.Charset),
	}
}

func fontFromModel(f *models.Font) *excelize.Font {
	if f == nil {
		return nil
	}
	return &excelize.Font{
		Bold:         f.Bold,
		Italic:       f.Italic,
		Underline:    f.Underline,
		Strike:       f.Strike,
		Family:       f.Family,
		Size:         f.Size,
		Color:        f.Color,
		ColorIndexed: f.ColorIndexed,
		ColorTheme:   copyInt(f.ColorTheme),
		ColorTint:    f.ColorTint,
		VertAlign:    f.VertAlign,
		Charset:      copyInt(f.Charset),
	}
}

func copyInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func styleToModel(xs *excelize.Style) *models.Style {
	if xs == nil {
		return nil
	}
	s := &models.Style{
		Font:   fontToModel(xs.Font),
		NumFmt: xs.NumFmt,
		Fill: models.Fill{
			Type:         xs.Fill.Type,
			Pattern:      xs.Fill.Pattern,
			Shading:      xs.Fill.Shading,
			Transparency: xs.Fill.Transparency,
		},
		DecimalPlaces: copyInt(xs.DecimalPlaces),
		NegRed:        xs.NegRed,
	}
	if p := xs.Protection; p != nil {
		s.Protection = &models.Protection{Hidden: p.Hidden, Locked: p.Locked}
	}
	for _, c := range xs.Fill.Color {
		s.Fill.Color = append(s.Fill.Color, canonColor(c))
	}
	for _, b := range xs.Border {
		s.Border = append(s.Border, models.Border{Type: b.Type, Color: canonColor(b.Color), Style: b.Style})
	}
	if a := xs.Alignment; a != nil {
		s.Alignment = &models.Alignment{
			Horizontal:      a.Horizontal,
			Vertical:        a.Vertical,
			WrapText:        a.WrapText,
			Indent:          a.Indent,
			TextRotation:    a.TextRotation,
			ShrinkToFit:     a.ShrinkToFit,
			JustifyLastLine: a.JustifyLastLine,
			ReadingOrder:    a.ReadingOrder,
			RelativeIndent:  a.RelativeIndent,
		}
	}
	if xs.CustomNumFmt != nil {
		s.CustomFmt = *xs.CustomNumFmt
	}
	return s
}

func styleFromModel(s *models.Style) *excelize.Style {
	xs := &excelize.Style{
		Font:   fontFromModel(s.Font),
		NumFmt: s.NumFmt,
		Fill: excelize.Fill{
			Type:         s.Fill.Type,
			Pattern:      s.Fill.Pattern,
			Color:        append([]string(nil), s.Fill.Color...),
			Shading:      s.Fill.Shading,
			Transparency: s.Fill.Transparency,
		},
		DecimalPlaces: copyInt(s.DecimalPlaces),
		NegRed:        s.NegRed,
	}
	if p := s.Protection; p != nil {
		xs.Protection = &excelize.Protection{Hidden: p.Hidden, Locked: p.Locked}
	}
	for _, b := range s.Border {
		xs.Border = append(xs.Border, excelize.Border{Type: b.Type, Color: b.Color, Style: b.Style})
	}
	if a := s.Alignment; a != nil {
		xs.Alignment = &excelize.Alignment{
			Horizontal:      a.Horizontal,
			Vertical:        a.Vertical,
			WrapText:        a.WrapText,
			Indent:          a.Indent,
			TextRotation:    a.TextRotation,
			ShrinkToFit:     a.ShrinkToFit,
			JustifyLastLine: a.JustifyLastLine,
			ReadingOrder:    a.ReadingOrder,
			RelativeIndent:  a.RelativeIndent,
		}
	}
	if s.CustomFmt != "" {
		fmtCode := s.CustomFmt
		xs.CustomNumFmt = &fmtCode
	}
	return xs
}

func runsToModel(runs []excelize.RichTextRun) []models.Run {
	out := make([]models.Run, len(runs))
	for i, r := range runs {
		out[i] = models.Run{Font: fontToModel(r.Font), Text: r.Text}
	}
	return out
}

func runsFromModel(runs []models.Run) []excelize.RichTextRun {
	out := make([]excelize.RichTextRun, len(runs))
	for i, r := range runs {
		out[i] = excelize.RichTextRun{Font: fontFromModel(r.Font), Text: r.Text}
	}
	return out
}
