/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package generate provides the generate command for dirugim.
package generate

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/dirugim/config"
	"bennypowers.dev/dirugim/fs"
	"bennypowers.dev/dirugim/generator"
	"bennypowers.dev/dirugim/internal/logger"
	"bennypowers.dev/dirugim/profile"
)

// Cmd is the generate cobra command.
var Cmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a synthetic ranking dataset",
	Long: `Generate a synthetic expert ranking dataset with a controlled level of
agreement. Experts are split into opinion clusters, each cluster perturbs
a shared center ranking, and identical results are grouped with their
multiplicity. The output uses the same document shape as converted
ordinal PrefLib files.

Examples:
  # Twenty experts ranking ten alternatives, moderate agreement
  dirugim generate

  # A reproducible polarized scenario
  dirugim generate --preset polarized --seed 42

  # Custom names, written to a chosen path
  dirugim generate -a 3 --names gold,silver,bronze -o podium.json`,
	Args: cobra.NoArgs,
	RunE: run,
}

func init() {
	Cmd.Flags().IntP("alternatives", "a", 10, "Number of alternatives to rank")
	Cmd.Flags().IntP("experts", "e", 20, "Number of expert rankings")
	Cmd.Flags().Float64P("consensus", "c", 0.5, "Agreement level between 0 and 1")
	Cmd.Flags().String("position", generator.PositionUniform, "Where agreement concentrates (uniform, top, bottom)")
	Cmd.Flags().Int("clusters", 1, "Number of opinion clusters")
	Cmd.Flags().Float64("balance", 0.5, "Population share of the first cluster")
	Cmd.Flags().Int64("seed", 0, "Random seed for reproducible output")
	Cmd.Flags().String("preset", "", "Named scenario ("+strings.Join(generator.PresetNames(), ", ")+")")
	Cmd.Flags().StringSlice("names", nil, "Alternative names (comma separated)")
	Cmd.Flags().StringP("output", "o", "", "Output path (- for stdout)")
}

func run(cmd *cobra.Command, args []string) error {
	cfg := generator.DefaultConfig()

	presetName, err := cmd.Flags().GetString("preset")
	if err != nil {
		return fmt.Errorf("error reading preset flag: %w", err)
	}
	if presetName != "" {
		preset, ok := generator.Presets[presetName]
		if !ok {
			return fmt.Errorf("unknown preset %q (available: %s)",
				presetName, strings.Join(generator.PresetNames(), ", "))
		}
		cfg = preset.Apply(cfg)
	}

	// Explicit flags override preset values.
	if cmd.Flags().Changed("alternatives") {
		cfg.Alternatives, _ = cmd.Flags().GetInt("alternatives")
	}
	if cmd.Flags().Changed("experts") {
		cfg.Experts, _ = cmd.Flags().GetInt("experts")
	}
	if cmd.Flags().Changed("consensus") {
		cfg.Consensus, _ = cmd.Flags().GetFloat64("consensus")
	}
	if cmd.Flags().Changed("position") {
		cfg.Position, _ = cmd.Flags().GetString("position")
	}
	if cmd.Flags().Changed("clusters") {
		cfg.Clusters, _ = cmd.Flags().GetInt("clusters")
	}
	if cmd.Flags().Changed("balance") {
		cfg.Balance, _ = cmd.Flags().GetFloat64("balance")
	}
	if cmd.Flags().Changed("names") {
		cfg.Names, _ = cmd.Flags().GetStringSlice("names")
	}
	if cmd.Flags().Changed("seed") {
		seed, _ := cmd.Flags().GetInt64("seed")
		cfg.Seed = &seed
	}

	gen, err := generator.New(cfg)
	if err != nil {
		return err
	}
	dataset := gen.Generate()

	var buf bytes.Buffer
	if err := profile.EncodeJSON(&buf, dataset); err != nil {
		return fmt.Errorf("error encoding dataset: %w", err)
	}

	output, _ := cmd.Flags().GetString("output")
	if output == "-" {
		_, err := os.Stdout.Write(buf.Bytes())
		return err
	}

	filesystem := fs.NewOSFileSystem()
	if output == "" {
		output = defaultOutput(filesystem, presetName)
	}

	if err := ensureDir(filesystem, output); err != nil {
		return err
	}
	if err := filesystem.WriteFile(output, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("error writing %s: %w", output, err)
	}

	logger.Info("Generated %d rankings of %d alternatives (%d distinct)",
		cfg.Experts, cfg.Alternatives, len(dataset.Rankings))
	logger.Info("Wrote %s", output)
	return nil
}

// defaultOutput places the dataset under the configured output
// directory, named after the preset when one was used.
func defaultOutput(filesystem fs.FileSystem, presetName string) string {
	projectCfg := config.LoadOrDefault(filesystem, ".")
	outDir := viper.GetString("outdir")
	if outDir == "" {
		outDir = projectCfg.OutDir
	}
	if outDir == "" {
		outDir = config.DefaultOutDir
	}
	name := "generated_custom.json"
	if presetName != "" {
		name = "generated_" + presetName + ".json"
	}
	return filepath.Join(outDir, name)
}

// ensureDir creates the parent directory for path when needed.
func ensureDir(filesystem fs.FileSystem, path string) error {
	dir := filepath.Dir(path)
	if dir == "" || dir == "." {
		return nil
	}
	return filesystem.MkdirAll(dir, 0755)
}
