// Package engine implements language-column detection, bilingual splitting,
// reconciliation and merging over in-memory worksheets. It performs no I/O.
package engine

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ukaji3/langsplit-go/pkg/langsplit/models"
)

// Error kinds. Every error returned by this package matches exactly one of
// them with errors.Is.
var (
	// ErrHeaderNotFound indicates no row in the scan window carries at least
	// two language codes.
	ErrHeaderNotFound = errors.New("header row not found")

	// ErrDuplicateLanguageColumn indicates one language labels two columns.
	ErrDuplicateLanguageColumn = errors.New("duplicate language column")

	// ErrNoTargetLanguages indicates the source is the only language column.
	ErrNoTargetLanguages = errors.New("no target languages")

	// ErrSourceLanguageMissing indicates the source language has no column.
	ErrSourceLanguageMissing = errors.New("source language missing")

	// ErrEmptySourceDocument indicates the worksheet has no rows below the
	// header.
	ErrEmptySourceDocument = errors.New("empty source document")

	// ErrUnknownTargetLanguage indicates a target code without a target
	// column in the original.
	ErrUnknownTargetLanguage = errors.New("unknown target language")

	// ErrRowCountMismatch indicates an extract whose data-row count differs
	// from the original's.
	ErrRowCountMismatch = errors.New("row count mismatch")

	// ErrStructuralViolation covers any other extract or manifest defect.
	ErrStructuralViolation = errors.New("structural violation")
)

// Violation is a located error. Row and Col are 0-based worksheet
// coordinates, or -1 when not applicable; Entry is the manifest index, or -1.
type Violation struct {
	Kind    error
	Entry   int
	Name    string
	Pair    models.LanguagePair
	Code    string
	Row     int
	Col     int
	Message string
}

func newViolation(kind error, msg string) *Violation {
	return &Violation{Kind: kind, Entry: -1, Row: -1, Col: -1, Message: msg}
}

// Error implements the error interface.
func (v *Violation) Error() string {
	var b strings.Builder
	b.WriteString(v.Kind.Error())
	if v.Name != "" {
		fmt.Fprintf(&b, " in %s", v.Name)
	} else if v.Pair != (models.LanguagePair{}) {
		fmt.Fprintf(&b, " in %s", v.Pair)
	}
	if v.Code != "" {
		fmt.Fprintf(&b, " [code %s]", v.Code)
	}
	if v.Row >= 0 {
		fmt.Fprintf(&b, " [row %d]", v.Row+1)
	}
	if v.Col >= 0 {
		fmt.Fprintf(&b, " [column %d]", v.Col+1)
	}
	if v.Message != "" {
		b.WriteString(": ")
		b.WriteString(v.Message)
	}
	return b.String()
}

// Unwrap returns the error kind.
func (v *Violation) Unwrap() error {
	return v.Kind
}
