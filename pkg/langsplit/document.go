package langsplit

import (
	"context"
	"errors"
	"fmt"
	"path"
	"slices"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"github.com/ukaji3/langsplit-go/pkg/langsplit/bundle"
	"github.com/ukaji3/langsplit-go/pkg/langsplit/engine"
	"github.com/ukaji3/langsplit-go/pkg/langsplit/models"
	"github.com/ukaji3/langsplit-go/pkg/langsplit/parser"
	"github.com/ukaji3/langsplit-go/pkg/langsplit/registry"
	"github.com/xuri/excelize/v2"
	"golang.org/x/sync/errgroup"
)

// Document is an opened original: its worksheet model, detected layout and
// the merge writes accumulated so far. Merges are serialized; Split and the
// read accessors may run concurrently with each other.
type Document struct {
	mu sync.Mutex

	original []byte
	opts     Options
	log      zerolog.Logger

	ws      *models.Worksheet
	layout  *models.Layout
	align   *engine.Alignment
	noteCol int
	writes  []models.CellWrite
}

// SplitResult is one serialized extract.
type SplitResult struct {
	Pair models.LanguagePair
	Name string
	Data []byte
}

// Snapshot is a saved document state for Restore.
type Snapshot struct {
	ws     *models.Worksheet
	writes []models.CellWrite
}

// Open reads a workbook, locates the language header and validates the
// column map.
func Open(data []byte, opts Options) (*Document, error) {
	opts = opts.withDefaults()
	log := opts.logger()

	source, ok := opts.Registry.Lookup(opts.Source)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not a known language", engine.ErrSourceLanguageMissing, opts.Source)
	}
	noteCol := -1
	if opts.NoteColumn != "" {
		n, err := excelize.ColumnNameToNumber(opts.NoteColumn)
		if err != nil {
			return nil, fmt.Errorf("note column: %w", err)
		}
		noteCol = n - 1
	}

	f, err := parser.Open(data)
	if err != nil {
		return nil, newDocumentError("open", "", invalidFormat(err))
	}
	defer f.Close()

	sheet := opts.Sheet
	if sheet == "" {
		sheet = f.GetSheetName(0)
	} else if idx, err := f.GetSheetIndex(sheet); err != nil || idx < 0 {
		return nil, newDocumentError("open", sheet, ErrSheetNotFound)
	}

	ws, err := parser.ReadWorksheet(f, sheet)
	if err != nil {
		return nil, newDocumentError("read", sheet, err)
	}

	layout, err := engine.DetectHeader(ws, opts.Registry, opts.ScanWindow)
	if err != nil {
		return nil, newDocumentError("detect", sheet, err)
	}
	align, err := engine.Align(layout, source)
	if err != nil {
		return nil, newDocumentError("detect", sheet, err)
	}

	log.Debug().
		Str("sheet", sheet).
		Int("header_row", layout.HeaderRow+1).
		Int("data_rows", layout.DataRows(ws)).
		Int("targets", len(align.Targets)).
		Msg("document opened")

	return &Document{
		original: data,
		opts:     opts,
		log:      log,
		ws:       ws,
		layout:   layout,
		align:    align,
		noteCol:  noteCol,
	}, nil
}

// Candidates returns the language pairs the document can be split into.
func (d *Document) Candidates() []models.LanguagePair {
	return d.align.Candidates()
}

// Layout returns the detected header layout.
func (d *Document) Layout() *models.Layout {
	return d.layout
}

// Alignment returns the validated column map.
func (d *Document) Alignment() *engine.Alignment {
	return d.align
}

// Sheet returns a copy of the worksheet model reflecting the merges applied
// so far.
func (d *Document) Sheet() (*models.Worksheet, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.ws.Clone()
}

// SheetName returns the name of the worksheet the document operates on.
func (d *Document) SheetName() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.ws.Name
}

// DataRows returns the number of data rows below the header.
func (d *Document) DataRows() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.layout.DataRows(d.ws)
}

// Split produces one spreadsheet extract per target code. An empty targets
// list selects every candidate. Extracts are serialized concurrently; ctx is
// checked before each one starts.
func (d *Document) Split(ctx context.Context, targets []string) ([]SplitResult, error) {
	return d.SplitAs(ctx, bundle.FormatXLSX, targets)
}

// SplitAs is Split with a choice of extract format.
func (d *Document) SplitAs(ctx context.Context, format bundle.Format, targets []string) ([]SplitResult, error) {
	if len(targets) == 0 {
		for _, t := range d.align.Targets {
			targets = append(targets, t.Code)
		}
	}
	codes := make([]string, len(targets))
	for i, t := range targets {
		code, ok := d.opts.Registry.Lookup(t)
		if !ok {
			code = d.opts.Registry.Normalize(t)
		}
		codes[i] = code
	}

	d.mu.Lock()
	sheet := d.ws.Name
	extracts, err := engine.Split(d.ws, d.layout, d.align, codes)
	if err == nil && d.noteCol >= 0 {
		first := d.layout.FirstDataRow()
		for _, ex := range extracts {
			for i := range ex.Rows {
				ex.Rows[i].Note = d.ws.Cell(first+i, d.noteCol).Value.String()
			}
		}
	}
	d.mu.Unlock()
	if err != nil {
		return nil, newDocumentError("split", sheet, err)
	}

	results := make([]SplitResult, len(extracts))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(d.opts.Parallelism)
	for i, ex := range extracts {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			var data []byte
			var err error
			switch format {
			case bundle.FormatXLIFF:
				data, err = parser.WriteXLIFF(ex, sheet, d.opts.Registry)
			default:
				data, err = parser.WriteExtract(ex)
			}
			if err != nil {
				return newDocumentError("write", ex.Pair.String(), err)
			}
			results[i] = SplitResult{Pair: ex.Pair, Name: format.Name(ex.Pair), Data: data}
			d.log.Debug().
				Str("pair", ex.Pair.String()).
				Int("rows", ex.RowCount).
				Int("bytes", len(data)).
				Msg("extract written")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	d.log.Info().Int("extracts", len(results)).Msg("split complete")
	return results, nil
}

// Validate reports every violation the manifest would raise, without
// merging anything.
func (d *Document) Validate(manifest *models.MergeManifest, opts MergeOptions) []*engine.Violation {
	d.mu.Lock()
	defer d.mu.Unlock()
	return engine.Reconcile(d.ws, d.layout, d.align, manifest, engine.ReconcileOptions{VerifySource: opts.VerifySource})
}

// Merge applies the manifest to the document. Entries with violations are
// rejected and the rest merged; with Atomic set any violation rejects every
// entry. The report is always returned; the error joins the failures.
func (d *Document) Merge(manifest *models.MergeManifest, opts MergeOptions) (*models.MergeReport, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	violations := engine.Reconcile(d.ws, d.layout, d.align, manifest, engine.ReconcileOptions{VerifySource: opts.VerifySource})
	byEntry := engine.GroupByEntry(violations)

	report := &models.MergeReport{}
	accepted := &models.MergeManifest{}
	for i, entry := range manifest.Entries {
		vs, bad := byEntry[i]
		switch {
		case bad:
			report.Failed = append(report.Failed, models.PairFailure{Name: entry.Name, Pair: entry.Pair, Err: joinViolations(vs)})
		case opts.Atomic && len(violations) > 0:
			report.Failed = append(report.Failed, models.PairFailure{Name: entry.Name, Pair: entry.Pair, Err: ErrManifestRejected})
		default:
			accepted.Entries = append(accepted.Entries, entry)
		}
	}

	if !opts.Atomic || len(violations) == 0 {
		applied := engine.Merge(d.ws, d.layout, d.align, accepted)
		report.Merged = applied.Merged
		report.Failed = append(report.Failed, applied.Failed...)
		report.Writes = applied.Writes
		d.writes = append(d.writes, applied.Writes...)
	}

	for _, f := range report.Failed {
		d.log.Warn().Str("extract", f.Name).Str("pair", f.Pair.String()).Err(f.Err).Msg("extract rejected")
	}
	d.log.Info().
		Int("merged", len(report.Merged)).
		Int("failed", len(report.Failed)).
		Int("cells", len(report.Writes)).
		Bool("atomic", opts.Atomic).
		Msg("merge complete")

	return report, report.Err()
}

// Bytes serializes the document with every merge applied. Without merges
// the original bytes are returned unchanged.
func (d *Document) Bytes() ([]byte, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if len(d.writes) == 0 {
		return d.original, nil
	}

	f, err := parser.Open(d.original)
	if err != nil {
		return nil, newDocumentError("write", d.ws.Name, invalidFormat(err))
	}
	defer f.Close()

	if err := parser.ApplyWrites(f, d.ws.Name, d.writes); err != nil {
		return nil, newDocumentError("write", d.ws.Name, err)
	}
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, newDocumentError("write", d.ws.Name, err)
	}
	return buf.Bytes(), nil
}

// Snapshot captures the current state so a later Restore can undo merges.
func (d *Document) Snapshot() (*Snapshot, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	ws, err := d.ws.Clone()
	if err != nil {
		return nil, err
	}
	return &Snapshot{ws: ws, writes: slices.Clone(d.writes)}, nil
}

// Restore returns the document to a snapshot taken from it. Snapshots may be
// restored more than once and in any order.
func (d *Document) Restore(s *Snapshot) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	ws, err := s.ws.Clone()
	if err != nil {
		return err
	}
	d.ws = ws
	d.writes = slices.Clone(s.writes)
	return nil
}

// ReadExtract decodes one extract document. The language pair is taken from
// name, which follows the "<source>-<target>.xlsx" convention; a .xlf or
// .xliff name selects the XLIFF decoder.
func ReadExtract(name string, data []byte, reg *registry.Registry) (*models.BilingualExtract, error) {
	if reg == nil {
		reg = registry.Default()
	}
	pair, err := bundle.ParsePair(name, reg)
	if err != nil {
		return nil, &DocumentError{Stage: "extract", Name: name, Err: err}
	}
	var ex *models.BilingualExtract
	if format, _ := bundle.FormatOf(name); format == bundle.FormatXLIFF {
		ex, err = parser.ReadXLIFF(data, pair, reg)
	} else {
		ex, err = parser.ReadExtract(data, pair, reg)
	}
	if err != nil {
		return nil, &DocumentError{Stage: "extract", Name: name, Err: invalidFormat(err)}
	}
	return ex, nil
}

// BuildManifest decodes extract documents into a merge manifest. Files with
// a .zip name are unpacked and each contained extract added in archive
// order.
func BuildManifest(files []bundle.File, reg *registry.Registry) (*models.MergeManifest, error) {
	manifest := &models.MergeManifest{}
	for _, file := range files {
		members := []bundle.File{file}
		if isZip(file.Name) {
			var err error
			members, err = bundle.ReadZip(file.Data)
			if err != nil {
				return nil, &DocumentError{Stage: "extract", Name: file.Name, Err: err}
			}
		}
		for _, m := range members {
			ex, err := ReadExtract(m.Name, m.Data, reg)
			if err != nil {
				return nil, err
			}
			manifest.Add(m.Name, ex)
		}
	}
	return manifest, nil
}

func isZip(name string) bool {
	return strings.EqualFold(path.Ext(name), ".zip")
}

func joinViolations(vs []*engine.Violation) error {
	if len(vs) == 1 {
		return vs[0]
	}
	errs := make([]error, len(vs))
	for i, v := range vs {
		errs[i] = v
	}
	return errors.Join(errs...)
}
