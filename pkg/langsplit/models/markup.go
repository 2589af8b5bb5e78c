package models

import (
	"regexp"
	"strings"
)

// Inline markup tags used by text-only exchange formats: <cf> marks bold,
// <cr> red and <cfr> bold red text.
const markupRed = "FF0000"

var markupTag = regexp.MustCompile(`</?(?:cfr|cf|cr)>`)

// Markup returns the value as text with bold and red runs wrapped in
// inline tags. Other run formatting is dropped.
func (v Value) Markup() string {
	if !v.IsRich() {
		return v.Text
	}
	var b strings.Builder
	for _, r := range v.Runs {
		tag := markupTagFor(r.Font)
		if tag == "" || r.Text == "" {
			b.WriteString(r.Text)
			continue
		}
		b.WriteString("<" + tag + ">" + r.Text + "</" + tag + ">")
	}
	return b.String()
}

func markupTagFor(f *Font) string {
	if f == nil {
		return ""
	}
	red := strings.EqualFold(f.Color, markupRed)
	switch {
	case f.Bold && red:
		return "cfr"
	case f.Bold:
		return "cf"
	case red:
		return "cr"
	}
	return ""
}

// ParseMarkup is the inverse of Markup. Text without tags is plain.
func ParseMarkup(s string) Value {
	locs := markupTag.FindAllStringIndex(s, -1)
	if len(locs) == 0 {
		return Plain(s)
	}

	var runs []Run
	var font *Font
	emit := func(text string) {
		if text != "" {
			runs = append(runs, Run{Font: font, Text: text})
		}
	}
	pos := 0
	for _, loc := range locs {
		emit(s[pos:loc[0]])
		tag := s[loc[0]:loc[1]]
		switch {
		case strings.HasPrefix(tag, "</"):
			font = nil
		case tag == "<cf>":
			font = &Font{Bold: true}
		case tag == "<cr>":
			font = &Font{Color: markupRed}
		default:
			font = &Font{Bold: true, Color: markupRed}
		}
		pos = loc[1]
	}
	emit(s[pos:])
	return Rich(runs...)
}
