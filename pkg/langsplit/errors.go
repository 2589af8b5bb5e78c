package langsplit

import (
	"errors"
	"fmt"
)

// ErrInvalidFormat indicates the input is not a valid xlsx document.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrSheetNotFound indicates the requested worksheet does not exist.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrManifestRejected marks entries refused because an atomic merge found
// violations elsewhere in the manifest.
var ErrManifestRejected = errors.New("manifest rejected")

// DocumentError represents a failure while reading or writing a document.
type DocumentError struct {
	Stage string // "open", "read", "detect", "split", "extract", "write"
	Name  string
	Sheet string
	Err   error
}

func (e *DocumentError) Error() string {
	switch {
	case e.Name != "" && e.Sheet != "":
		return fmt.Sprintf("%s error in %s sheet %q: %v", e.Stage, e.Name, e.Sheet, e.Err)
	case e.Name != "":
		return fmt.Sprintf("%s error in %s: %v", e.Stage, e.Name, e.Err)
	case e.Sheet != "":
		return fmt.Sprintf("%s error in sheet %q: %v", e.Stage, e.Sheet, e.Err)
	}
	return fmt.Sprintf("%s error: %v", e.Stage, e.Err)
}

func (e *DocumentError) Unwrap() error {
	return e.Err
}

func newDocumentError(stage, sheet string, err error) *DocumentError {
	return &DocumentError{Stage: stage, Sheet: sheet, Err: err}
}

func invalidFormat(err error) error {
	return fmt.Errorf("%w: %v", ErrInvalidFormat, err)
}
