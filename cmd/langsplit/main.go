// Package main provides the CLI entry point for langsplit-go.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/ukaji3/langsplit-go/internal/config"
	"github.com/ukaji3/langsplit-go/internal/logging"
	"github.com/ukaji3/langsplit-go/pkg/langsplit"
	"github.com/ukaji3/langsplit-go/pkg/langsplit/registry"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// app carries the settings resolved before any subcommand runs.
type app struct {
	stdout io.Writer
	stderr io.Writer

	configFile string
	cfg        *config.Config
	reg        *registry.Registry
	log        zerolog.Logger
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}

	rootCmd := &cobra.Command{
		Use:   "langsplit",
		Short: "Split multilingual string tables into bilingual extracts and merge them back",
		Long: `langsplit-go locates the language header of a multilingual spreadsheet,
writes one source/target extract per language for translators, and merges the
returned extracts into the original without disturbing anything else.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "config file (default is ./.langsplit.yaml or $HOME/.langsplit.yaml)")
	pf.String("source", registry.DefaultSource, "source language code")
	pf.Int("scan-window", 10, "number of leading rows searched for the header")
	pf.String("registry", "", "YAML file with the language code registry")
	pf.String("sheet", "", "worksheet name (default: first sheet)")
	pf.String("note-column", "", "column whose text becomes a reviewer note in XLIFF extracts")
	pf.Int("parallelism", 0, "concurrent extract writers (default: CPU count)")
	pf.String("log-level", "info", "log level: debug, info, warn, error")
	pf.String("log-format", "auto", "log format: auto, console, json")

	rootCmd.AddCommand(
		newDetectCmd(a),
		newSheetsCmd(a),
		newLanguagesCmd(a),
		newSplitCmd(a),
		newValidateCmd(a),
		newMergeCmd(a),
	)
	return rootCmd
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configFile, cmd.Flags())
	if err != nil {
		return err
	}
	reg, err := cfg.LoadRegistry()
	if err != nil {
		return err
	}

	lc := cfg.Logging()
	lc.Writer = a.stderr
	a.cfg = cfg
	a.reg = reg
	a.log = logging.New(lc)
	cmd.SetContext(logging.WithLogger(cmd.Context(), &a.log))
	return nil
}

func (a *app) options() langsplit.Options {
	return a.cfg.Options(a.reg, &a.log)
}

// open reads and opens the original workbook at path.
func (a *app) open(path string) (*langsplit.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := langsplit.Open(data, a.options())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}
