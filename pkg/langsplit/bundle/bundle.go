// Package bundle names extracts and packs them into ZIP archives.
package bundle

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"path"
	"sort"
	"strings"

	"github.com/ukaji3/langsplit-go/pkg/langsplit/models"
	"github.com/ukaji3/langsplit-go/pkg/langsplit/registry"
)

// Ext is the file extension of spreadsheet extracts.
const Ext = ".xlsx"

// Format is an extract document format.
type Format string

// Supported extract formats.
const (
	FormatXLSX  Format = "xlsx"
	FormatXLIFF Format = "xliff"
)

var (
	// ErrUnrecognizedName indicates a name that does not encode a language pair.
	ErrUnrecognizedName = errors.New("name does not identify a language pair")
	// ErrUnknownFormat indicates an unsupported extract format.
	ErrUnknownFormat = errors.New("unknown extract format")
)

// ParseFormat resolves a format name; the empty name is FormatXLSX.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "xlsx":
		return FormatXLSX, nil
	case "xliff", "xlf":
		return FormatXLIFF, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Ext returns the file extension written for the format.
func (f Format) Ext() string {
	if f == FormatXLIFF {
		return ".xlf"
	}
	return Ext
}

// FormatOf returns the extract format a file name denotes by its extension.
func FormatOf(name string) (Format, bool) {
	switch strings.ToLower(path.Ext(name)) {
	case Ext:
		return FormatXLSX, true
	case ".xlf", ".xliff":
		return FormatXLIFF, true
	}
	return "", false
}

// File is a named document held in memory.
type File struct {
	Name string
	Data []byte
}

// Name returns the conventional file name of an extract in format f,
// "<source>-<target>" plus the format extension.
func (f Format) Name(pair models.LanguagePair) string {
	return pair.String() + f.Ext()
}

// ParsePair recovers the language pair from an extract name. The base name
// without extension is split on separators and the last two tokens forming
// registry codes are taken, so "batch3_ENGB-FRFR.xlsx" and "en-gb_fr-fr.xlsx"
// both resolve.
func ParsePair(name string, reg *registry.Registry) (models.LanguagePair, error) {
	base := path.Base(strings.ReplaceAll(name, "\\", "/"))
	base = strings.TrimSuffix(base, path.Ext(base))

	tokens := strings.FieldsFunc(base, func(r rune) bool {
		return r == '-' || r == '_' || r == ' ' || r == '.'
	})

	// Codes may themselves contain a separator ("en-gb"), so try single
	// tokens and adjacent token pairs, keeping their order.
	var codes []string
	for i := 0; i < len(tokens); i++ {
		if i+1 < len(tokens) {
			joined := tokens[i] + tokens[i+1]
			if _, single := reg.Lookup(tokens[i]); !single {
				if code, ok := reg.Lookup(joined); ok {
					codes = append(codes, code)
					i++
					continue
				}
			}
		}
		if code, ok := reg.Lookup(tokens[i]); ok {
			codes = append(codes, code)
		}
	}

	if len(codes) < 2 {
		return models.LanguagePair{}, fmt.Errorf("%w: %s", ErrUnrecognizedName, name)
	}
	return models.LanguagePair{Source: codes[len(codes)-2], Target: codes[len(codes)-1]}, nil
}

// WriteZip writes files into a ZIP archive in name order.
func WriteZip(w io.Writer, files []File) error {
	sorted := append([]File(nil), files...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	zw := zip.NewWriter(w)
	for _, f := range sorted {
		fw, err := zw.Create(f.Name)
		if err != nil {
			return fmt.Errorf("add %s: %w", f.Name, err)
		}
		if _, err := fw.Write(f.Data); err != nil {
			return fmt.Errorf("write %s: %w", f.Name, err)
		}
	}
	return zw.Close()
}

// ReadZip returns the extract documents in a ZIP archive. Directories and
// entries without an extract extension are skipped, as are macOS resource
// forks.
func ReadZip(data []byte) ([]File, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}

	var files []File
	for _, zf := range zr.File {
		if _, ok := FormatOf(zf.Name); zf.FileInfo().IsDir() || !ok {
			continue
		}
		if strings.HasPrefix(zf.Name, "__MACOSX/") || strings.HasPrefix(path.Base(zf.Name), "._") {
			continue
		}
		content, err := readZipFile(zf)
		if err != nil {
			return nil, err
		}
		files = append(files, File{Name: zf.Name, Data: content})
	}
	return files, nil
}

func readZipFile(zf *zip.File) ([]byte, error) {
	rc, err := zf.Open()
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", zf.Name, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", zf.Name, err)
	}
	return data, nil
}
