/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package convert provides the convert command for dirugim.
package convert

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync/atomic"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"bennypowers.dev/dirugim/config"
	"bennypowers.dev/dirugim/dass"
	"bennypowers.dev/dirugim/fs"
	"bennypowers.dev/dirugim/internal/logger"
	"bennypowers.dev/dirugim/parser"
	"bennypowers.dev/dirugim/profile"
)

// Cmd is the convert cobra command.
var Cmd = &cobra.Command{
	Use:   "convert [files...]",
	Short: "Convert PrefLib files to canonical JSON documents",
	Long: `Convert PrefLib preference data files into canonical JSON documents.

Ordinal formats (soc, soi, toc, toi) produce ranking documents, cat files
produce categorical documents, and wmd files produce weighted matching
graphs. A stored canonical JSON document is also accepted as input, which
is how an earlier conversion is reprocessed into a DASS decision matrix.

Examples:
  # Convert a single file into the output directory
  dirugim convert skate.toc

  # Convert a batch, four files at a time
  dirugim convert --jobs 4 datasets/*.soi

  # Keep only rankings that place every alternative
  dirugim convert --complete-only skate.toc

  # Emit a DASS decision matrix on stdout
  dirugim convert --dass -o - skate.toc

  # Convert the files listed in .config/dirugim.yaml
  dirugim convert`,
	Args: cobra.ArbitraryArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().StringP("output", "o", "", "Output path for a single input (- for stdout)")
	Cmd.Flags().BoolP("complete-only", "c", false, "Drop rankings that do not place every alternative")
	Cmd.Flags().BoolP("dass", "d", false, "Write a DASS decision matrix instead of a canonical document")
	Cmd.Flags().Int("jobs", runtime.NumCPU(), "Number of files to convert concurrently")
}

func run(cmd *cobra.Command, args []string) error {
	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return fmt.Errorf("error reading output flag: %w", err)
	}
	completeOnly, _ := cmd.Flags().GetBool("complete-only")
	completeOnlySet := cmd.Flags().Changed("complete-only")
	toDASS, _ := cmd.Flags().GetBool("dass")
	jobs, _ := cmd.Flags().GetInt("jobs")
	if jobs < 1 {
		jobs = 1
	}

	filesystem := fs.NewOSFileSystem()
	cfg := config.LoadOrDefault(filesystem, ".")

	files := args
	if len(files) == 0 {
		files, err = cfg.ExpandFiles(filesystem, ".")
		if err != nil {
			return fmt.Errorf("error expanding config files: %w", err)
		}
	}
	if len(files) == 0 {
		return fmt.Errorf("no files specified and no files found in config")
	}
	if output != "" && len(files) > 1 {
		return fmt.Errorf("--output requires a single input file, got %d", len(files))
	}

	outDir := viper.GetString("outdir")
	if outDir == "" {
		outDir = cfg.OutDir
	}
	if outDir == "" {
		outDir = config.DefaultOutDir
	}

	optionsFor := func(file string) parser.Options {
		opts := cfg.OptionsForFile(file)
		if completeOnlySet {
			opts.CompleteOnly = completeOnly
		}
		return opts
	}

	var failures atomic.Int64
	var g errgroup.Group
	g.SetLimit(jobs)
	for _, file := range files {
		g.Go(func() error {
			out := outputPath(file, outDir, output)
			if err := convertFile(filesystem, file, optionsFor(file), toDASS, out); err != nil {
				fmt.Fprintf(os.Stderr, "Error converting %s: %v\n", file, err)
				failures.Add(1)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	if n := failures.Load(); n > 0 {
		return fmt.Errorf("failed to convert %d file(s)", n)
	}
	return nil
}

// convertFile converts one input file and writes the result to outPath.
// An outPath of "-" writes the document to stdout instead.
func convertFile(filesystem fs.FileSystem, file string, opts parser.Options, toDASS bool, outPath string) error {
	doc, err := loadDocument(filesystem, file, opts)
	if err != nil {
		return err
	}

	var payload any = doc
	var matrix *dass.Document
	if toDASS {
		matrix, err = dass.FromDocument(doc)
		if err != nil {
			return err
		}
		payload = matrix
	}

	var buf bytes.Buffer
	if err := profile.EncodeJSON(&buf, payload); err != nil {
		return fmt.Errorf("error encoding %s: %w", file, err)
	}

	if outPath == "-" {
		_, err := os.Stdout.Write(buf.Bytes())
		return err
	}

	if err := ensureDir(filesystem, outPath); err != nil {
		return err
	}
	if err := filesystem.WriteFile(outPath, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("error writing %s: %w", outPath, err)
	}
	report(file, outPath, doc, matrix)
	return nil
}

// loadDocument parses a PrefLib file, or decodes a stored canonical
// document when the input is already JSON.
func loadDocument(filesystem fs.FileSystem, path string, opts parser.Options) (profile.Document, error) {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return profile.Load(filesystem, path)
	}
	return parser.ParseFile(filesystem, path, opts)
}

// outputPath picks the destination for a converted file: the --output
// flag when given, otherwise the file's stem under outDir.
func outputPath(file, outDir, output string) string {
	if output != "" {
		return output
	}
	stem := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
	return filepath.Join(outDir, stem+".json")
}

// ensureDir creates the parent directory for path when needed.
func ensureDir(filesystem fs.FileSystem, path string) error {
	dir := filepath.Dir(path)
	if dir == "" || dir == "." {
		return nil
	}
	return filesystem.MkdirAll(dir, 0755)
}

// report logs a short conversion summary.
func report(file, outPath string, doc profile.Document, matrix *dass.Document) {
	logger.Info("Converted %s", file)
	switch d := doc.(type) {
	case *profile.Ordinal:
		logger.Info("  %s: %d alternatives, %d rankings, %d voters",
			d.Meta.DataType, d.Meta.NumAlternatives, len(d.Rankings), d.Meta.TotalVoters)
	case *profile.Categorical:
		logger.Info("  %s: %d alternatives, %d categories, %d voters",
			d.Meta.DataType, d.Meta.NumAlternatives, d.Meta.NumCategories, d.Meta.TotalVoters)
	case *profile.Matching:
		logger.Info("  %s: %d alternatives, %d edges",
			d.Meta.DataType, d.Meta.NumAlternatives, d.Meta.NumEdges)
	}
	if matrix != nil {
		logger.Info("  decision matrix: %d decision makers, %d criteria",
			len(matrix.DMs), len(matrix.Criteria))
	}
	logger.Info("Wrote %s", outPath)
}
