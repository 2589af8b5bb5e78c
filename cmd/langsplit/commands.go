package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/ukaji3/langsplit-go/internal/logging"
	"github.com/ukaji3/langsplit-go/pkg/langsplit"
	"github.com/ukaji3/langsplit-go/pkg/langsplit/bundle"
	"github.com/ukaji3/langsplit-go/pkg/langsplit/engine"
	"github.com/ukaji3/langsplit-go/pkg/langsplit/models"
	"github.com/xuri/excelize/v2"
)

func newDetectCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "detect <input.xlsx>",
		Short: "Show the detected header row and language columns",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.open(args[0])
			if err != nil {
				return err
			}

			layout := doc.Layout()
			align := doc.Alignment()
			if asJSON {
				out := struct {
					Sheet     string            `json:"sheet"`
					HeaderRow int               `json:"header_row"`
					DataRows  int               `json:"data_rows"`
					Alignment *engine.Alignment `json:"alignment"`
				}{doc.SheetName(), layout.HeaderRow + 1, doc.DataRows(), align}
				data, err := json.MarshalIndent(out, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(a.stdout, string(data))
				return nil
			}

			fmt.Fprintf(a.stdout, "Sheet:      %s\n", doc.SheetName())
			fmt.Fprintf(a.stdout, "Header row: %d\n", layout.HeaderRow+1)
			fmt.Fprintf(a.stdout, "Data rows:  %d\n\n", doc.DataRows())

			tw := tabwriter.NewWriter(a.stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "COLUMN\tCODE\tLANGUAGE\tROLE")
			fmt.Fprintf(tw, "%s\t%s\t%s\tsource\n", columnName(align.Source.Column), align.Source.Code, a.reg.Name(align.Source.Code))
			for _, t := range align.Targets {
				fmt.Fprintf(tw, "%s\t%s\t%s\ttarget\n", columnName(t.Column), t.Code, a.reg.Name(t.Code))
			}
			return tw.Flush()
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the layout as JSON")
	return cmd
}

func newSheetsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "sheets <input.xlsx>",
		Short: "List worksheets and the language header found on each",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			sheets, err := langsplit.Survey(data, a.options())
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}

			tw := tabwriter.NewWriter(a.stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "SHEET\tHEADER ROW\tDATA ROWS\tLANGUAGES")
			for _, s := range sheets {
				if s.Err != nil {
					fmt.Fprintf(tw, "%s\t-\t-\t%v\n", s.Name, s.Err)
					continue
				}
				fmt.Fprintf(tw, "%s\t%d\t%d\t%s\n", s.Name, s.HeaderRow, s.DataRows, strings.Join(s.Codes, " "))
			}
			return tw.Flush()
		},
	}
}

func newLanguagesCmd(a *app) *cobra.Command {
	var asYAML bool

	cmd := &cobra.Command{
		Use:   "languages [label...]",
		Short: "Print the language registry, or resolve header labels against it",
		RunE: func(cmd *cobra.Command, args []string) error {
			if asYAML {
				data, err := a.reg.Marshal()
				if err != nil {
					return err
				}
				_, err = a.stdout.Write(data)
				return err
			}

			tw := tabwriter.NewWriter(a.stdout, 0, 0, 2, ' ', 0)
			if len(args) == 0 {
				fmt.Fprintln(tw, "CODE\tLANGUAGE")
				for _, code := range a.reg.Codes() {
					fmt.Fprintf(tw, "%s\t%s\n", code, a.reg.Name(code))
				}
				if err := tw.Flush(); err != nil {
					return err
				}
				fmt.Fprintf(a.stdout, "%d languages\n", a.reg.Len())
				return nil
			}

			var unknown int
			fmt.Fprintln(tw, "LABEL\tCODE\tLANGUAGE")
			for _, label := range args {
				code, ok := a.reg.Lookup(label)
				if !ok {
					unknown++
					fmt.Fprintf(tw, "%s\t-\tnot recognised\n", label)
					continue
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\n", label, code, a.reg.Name(code))
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			if unknown > 0 {
				return fmt.Errorf("%d labels not recognised", unknown)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&asYAML, "yaml", false, "print the registry in the registry file format")
	return cmd
}

func newSplitCmd(a *app) *cobra.Command {
	var (
		targets []string
		output  string
		format  string
	)

	cmd := &cobra.Command{
		Use:   "split <input.xlsx>",
		Short: "Write one bilingual extract per target language",
		Long: `Write one "<SOURCE>-<TARGET>.xlsx" extract per target language, or a
"<SOURCE>-<TARGET>.xlf" XLIFF 1.2 file with --format xliff. Without --target
every language column found in the header is split. The output is a
directory, or a single ZIP bundle when --output ends in .zip.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := bundle.ParseFormat(format)
			if err != nil {
				return err
			}
			doc, err := a.open(args[0])
			if err != nil {
				return err
			}

			results, err := doc.SplitAs(cmd.Context(), f, targets)
			if err != nil {
				return err
			}

			files := make([]bundle.File, len(results))
			for i, r := range results {
				files[i] = bundle.File{Name: r.Name, Data: r.Data}
			}
			written, err := writeBundle(output, files)
			if err != nil {
				return err
			}

			logging.FromContext(cmd.Context()).Info().Int("extracts", len(files)).Str("output", output).Msg("split written")
			for _, name := range written {
				fmt.Fprintln(a.stdout, name)
			}
			return nil
		},
	}
	cmd.Flags().StringSliceVarP(&targets, "target", "t", nil, "target language code (repeatable; default: all)")
	cmd.Flags().StringVarP(&output, "output", "o", ".", "output directory or .zip file")
	cmd.Flags().StringVarP(&format, "format", "f", "xlsx", "extract format: xlsx or xliff")
	return cmd
}

func newValidateCmd(a *app) *cobra.Command {
	var verifySource bool

	cmd := &cobra.Command{
		Use:   "validate <input.xlsx> <extract.xlsx|extract.xlf|bundle.zip>...",
		Short: "Check extracts against the original without merging",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := a.open(args[0])
			if err != nil {
				return err
			}
			manifest, err := a.manifest(args[1:])
			if err != nil {
				return err
			}

			violations := doc.Validate(manifest, langsplit.MergeOptions{VerifySource: verifySource})
			if len(violations) == 0 {
				fmt.Fprintf(a.stdout, "%d extracts OK\n", len(manifest.Entries))
				return nil
			}

			tw := tabwriter.NewWriter(a.stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "EXTRACT\tKIND\tROW\tCOLUMN\tDETAIL")
			for _, v := range violations {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", v.Name, v.Kind, position(v.Row), position(v.Col), v.Message)
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			return fmt.Errorf("%d violations", len(violations))
		},
	}
	cmd.Flags().BoolVar(&verifySource, "verify-source", false, "require extract source text to match the original")
	return cmd
}

func newMergeCmd(a *app) *cobra.Command {
	var (
		output string
		opts   langsplit.MergeOptions
	)

	cmd := &cobra.Command{
		Use:   "merge <input.xlsx> <extract.xlsx|extract.xlf|bundle.zip>...",
		Short: "Merge translated extracts into the original",
		Long: `Merge translated extracts into the original and write the result to
--output. Rejected extracts are reported and skipped; with --atomic any
rejection leaves the original untouched and nothing is written.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if output == "" {
				return errors.New("--output is required")
			}

			doc, err := a.open(args[0])
			if err != nil {
				return err
			}
			manifest, err := a.manifest(args[1:])
			if err != nil {
				return err
			}

			report, mergeErr := doc.Merge(manifest, opts)
			printReport(a, report)
			if opts.Atomic && mergeErr != nil {
				return mergeErr
			}

			data, err := doc.Bytes()
			if err != nil {
				return err
			}
			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
			return mergeErr
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "merged workbook path")
	cmd.Flags().BoolVar(&opts.Atomic, "atomic", false, "merge nothing unless every extract is valid")
	cmd.Flags().BoolVar(&opts.VerifySource, "verify-source", false, "require extract source text to match the original")
	return cmd
}

// manifest reads extract files and bundles into a merge manifest.
func (a *app) manifest(paths []string) (*models.MergeManifest, error) {
	files := make([]bundle.File, 0, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, err
		}
		files = append(files, bundle.File{Name: p, Data: data})
	}
	return langsplit.BuildManifest(files, a.reg)
}

func printReport(a *app, report *models.MergeReport) {
	tw := tabwriter.NewWriter(a.stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "PAIR\tSTATUS\tDETAIL")
	for _, p := range report.Merged {
		fmt.Fprintf(tw, "%s\tmerged\t\n", p)
	}
	for _, f := range report.Failed {
		fmt.Fprintf(tw, "%s\trejected\t%v\n", f.Pair, f.Err)
	}
	tw.Flush()
	fmt.Fprintf(a.stdout, "%d cells changed\n", len(report.Writes))
}

// writeBundle stores files in a ZIP archive when output ends in .zip, or
// as separate files in the output directory otherwise. It returns the paths
// written.
func writeBundle(output string, files []bundle.File) ([]string, error) {
	if strings.EqualFold(filepath.Ext(output), ".zip") {
		var buf bytes.Buffer
		if err := bundle.WriteZip(&buf, files); err != nil {
			return nil, err
		}
		if err := os.WriteFile(output, buf.Bytes(), 0o644); err != nil {
			return nil, fmt.Errorf("failed to write output: %w", err)
		}
		return []string{output}, nil
	}

	if err := os.MkdirAll(output, 0o755); err != nil {
		return nil, err
	}
	paths := make([]string, 0, len(files))
	for _, f := range files {
		path := filepath.Join(output, f.Name)
		if err := os.WriteFile(path, f.Data, 0o644); err != nil {
			return nil, fmt.Errorf("failed to write output: %w", err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func columnName(col int) string {
	name, err := excelize.ColumnNumberToName(col + 1)
	if err != nil {
		return fmt.Sprint(col + 1)
	}
	return name
}

func position(i int) string {
	if i < 0 {
		return "-"
	}
	return fmt.Sprint(i + 1)
}
