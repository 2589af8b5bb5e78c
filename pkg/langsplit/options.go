// Package langsplit splits multilingual string tables into bilingual
// extracts and merges translated extracts back into the original.
package langsplit

import (
	"runtime"

	"github.com/rs/zerolog"
	"github.com/ukaji3/langsplit-go/pkg/langsplit/engine"
	"github.com/ukaji3/langsplit-go/pkg/langsplit/registry"
)

// Options configures how a document is opened.
type Options struct {
	// ScanWindow is the number of leading rows searched for the header.
	ScanWindow int
	// Registry resolves header labels. Defaults to the built-in registry.
	Registry *registry.Registry
	// Source is the source language code or alias.
	Source string
	// Sheet names the worksheet to use. Empty selects the first sheet.
	Sheet string
	// NoteColumn is the column letter, e.g. "F", whose text is passed to
	// translators as a per-row note in XLIFF extracts. Empty disables notes.
	NoteColumn string
	// Parallelism bounds concurrent extract serialization during split.
	Parallelism int
	// Logger receives progress events. Nil disables logging.
	Logger *zerolog.Logger
}

// DefaultOptions returns the default open options.
func DefaultOptions() Options {
	return Options{
		ScanWindow:  engine.DefaultScanWindow,
		Registry:    registry.Default(),
		Source:      registry.DefaultSource,
		Parallelism: runtime.NumCPU(),
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.ScanWindow <= 0 {
		o.ScanWindow = d.ScanWindow
	}
	if o.Registry == nil {
		o.Registry = d.Registry
	}
	if o.Source == "" {
		o.Source = d.Source
	}
	if o.Parallelism <= 0 {
		o.Parallelism = d.Parallelism
	}
	return o
}

func (o Options) logger() zerolog.Logger {
	if o.Logger == nil {
		return zerolog.Nop()
	}
	return *o.Logger
}

// MergeOptions configures a merge.
type MergeOptions struct {
	// Atomic rejects the whole manifest when any entry has a violation.
	Atomic bool
	// VerifySource requires each extract's source column to match the
	// original's source column.
	VerifySource bool
}
