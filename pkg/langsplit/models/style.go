package models

import "reflect"

// Font describes a cell or run font.
type Font struct {
	Bold      bool    `json:"bold,omitempty"`
	Italic    bool    `json:"italic,omitempty"`
	Underline string  `json:"underline,omitempty"`
	Strike    bool    `json:"strike,omitempty"`
	Family    string  `json:"family,omitempty"`
	Size      float64 `json:"size,omitempty"`
	// Color is an RGB hex string, e.g. "FF0000".
	Color string `json:"color,omitempty"`
	// ColorIndexed, ColorTheme and ColorTint select palette and theme
	// colours, which Excel uses by default.
	ColorIndexed int     `json:"color_indexed,omitempty"`
	ColorTheme   *int    `json:"color_theme,omitempty"`
	ColorTint    float64 `json:"color_tint,omitempty"`
	VertAlign    string  `json:"vert_align,omitempty"`
	Charset      *int    `json:"charset,omitempty"`
}

// Equal reports whether two fonts are identical. Two nil fonts are equal.
func (f *Font) Equal(o *Font) bool {
	if f == nil || o == nil {
		return f == o
	}
	return reflect.DeepEqual(*f, *o)
}

// Fill describes a cell background.
type Fill struct {
	Type    string   `json:"type,omitempty"`
	Pattern int      `json:"pattern,omitempty"`
	Color   []string `json:"color,omitempty"`
	Shading int      `json:"shading,omitempty"`
	// Transparency is the gradient transparency in percent.
	Transparency int `json:"transparency,omitempty"`
}

// Border describes one edge of a cell border.
type Border struct {
	Type  string `json:"type"`
	Color string `json:"color,omitempty"`
	Style int    `json:"style"`
}

// Alignment describes cell text alignment.
type Alignment struct {
	Horizontal   string `json:"horizontal,omitempty"`
	Vertical     string `json:"vertical,omitempty"`
	WrapText     bool   `json:"wrap_text,omitempty"`
	Indent       int    `json:"indent,omitempty"`
	TextRotation int    `json:"text_rotation,omitempty"`
	ShrinkToFit  bool   `json:"shrink_to_fit,omitempty"`

	JustifyLastLine bool   `json:"justify_last_line,omitempty"`
	ReadingOrder    uint64 `json:"reading_order,omitempty"`
	RelativeIndent  int    `json:"relative_indent,omitempty"`
}

// Protection describes cell protection flags.
type Protection struct {
	Hidden bool `json:"hidden,omitempty"`
	Locked bool `json:"locked,omitempty"`
}

// Style is the formatting attached to a cell or column.
type Style struct {
	Font       *Font       `json:"font,omitempty"`
	Fill       Fill        `json:"fill"`
	Border     []Border    `json:"border,omitempty"`
	Alignment  *Alignment  `json:"alignment,omitempty"`
	Protection *Protection `json:"protection,omitempty"`
	NumFmt     int         `json:"num_fmt,omitempty"`
	CustomFmt  string      `json:"custom_fmt,omitempty"`
	// DecimalPlaces and NegRed refine built-in currency formats.
	DecimalPlaces *int `json:"decimal_places,omitempty"`
	NegRed        bool `json:"neg_red,omitempty"`
}

// Equal reports whether two styles are identical. Two nil styles are equal.
func (s *Style) Equal(o *Style) bool {
	if s == nil || o == nil {
		return s == o
	}
	return reflect.DeepEqual(s, o)
}
