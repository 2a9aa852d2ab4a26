/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package info provides the info command for dirugim.
package info

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"bennypowers.dev/dirugim/format"
	"bennypowers.dev/dirugim/fs"
	"bennypowers.dev/dirugim/parser"
	"bennypowers.dev/dirugim/profile"
)

// Cmd is the info cobra command.
var Cmd = &cobra.Command{
	Use:   "info [files...]",
	Short: "Summarize PrefLib files and canonical documents",
	Long: `Summarize PrefLib preference data files without converting them.

Each file is parsed and reported with its format, title, and size, plus
whether the parsed rankings actually contain ties and whether every
ranking places every alternative. Stored canonical JSON documents are
summarized the same way.`,
	Args: cobra.MinimumNArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().String("format", "table", "Output format: table, json")
}

// fileInfo is one row of the summary.
type fileInfo struct {
	File         string `json:"file"`
	Format       string `json:"format"`
	Kind         string `json:"kind"`
	Title        string `json:"title"`
	Alternatives int    `json:"alternatives"`
	Rankings     int    `json:"rankings,omitempty"`
	Preferences  int    `json:"preferences,omitempty"`
	Edges        int    `json:"edges,omitempty"`
	Voters       int    `json:"voters,omitempty"`
	HasTies      bool   `json:"has_ties,omitempty"`
	IsComplete   bool   `json:"is_complete,omitempty"`

	family format.Family
}

func run(cmd *cobra.Command, args []string) error {
	outputFormat, _ := cmd.Flags().GetString("format")

	filesystem := fs.NewOSFileSystem()

	infos := make([]fileInfo, 0, len(args))
	for _, file := range args {
		fi, err := collect(filesystem, file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading %s: %v\n", file, err)
			continue
		}
		infos = append(infos, fi)
	}

	switch outputFormat {
	case "json":
		return outputJSON(infos)
	default:
		return outputTable(infos)
	}
}

// collect parses one file and extracts its summary row.
func collect(filesystem fs.FileSystem, file string) (fileInfo, error) {
	var doc profile.Document
	var err error
	if strings.EqualFold(filepath.Ext(file), ".json") {
		doc, err = profile.Load(filesystem, file)
	} else {
		doc, err = parser.ParseFile(filesystem, file, parser.Options{})
	}
	if err != nil {
		return fileInfo{}, err
	}

	fi := fileInfo{
		File:   file,
		Kind:   toTitleCase(doc.Family().String()),
		Title:  doc.Title(),
		family: doc.Family(),
	}
	switch d := doc.(type) {
	case *profile.Ordinal:
		fi.Format = d.Meta.DataType
		fi.Alternatives = d.Meta.NumAlternatives
		fi.Rankings = len(d.Rankings)
		fi.Voters = d.Meta.TotalVoters
		fi.HasTies = d.Meta.HasTies
		fi.IsComplete = d.Meta.IsComplete
	case *profile.Categorical:
		fi.Format = d.Meta.DataType
		fi.Alternatives = d.Meta.NumAlternatives
		fi.Preferences = len(d.Preferences)
		fi.Voters = d.Meta.TotalVoters
	case *profile.Matching:
		fi.Format = d.Meta.DataType
		fi.Alternatives = d.Meta.NumAlternatives
		fi.Edges = d.Meta.NumEdges
	}
	return fi, nil
}

func outputTable(infos []fileInfo) error {
	for _, fi := range infos {
		voters := "-"
		if fi.Voters > 0 {
			voters = strconv.Itoa(fi.Voters)
		}
		fmt.Printf("%-28s %-4s %-12s %-24s %5d %6d %7s  %s\n",
			fi.File, fi.Format, fi.Kind, fi.Title,
			fi.Alternatives, fi.rows(), voters, fi.flags())
	}
	return nil
}

func outputJSON(infos []fileInfo) error {
	return profile.EncodeJSON(os.Stdout, infos)
}

// rows is the body line count, whichever family the file belongs to.
func (fi fileInfo) rows() int {
	return fi.Rankings + fi.Preferences + fi.Edges
}

// flags renders the derived ordinal properties for the table.
func (fi fileInfo) flags() string {
	if fi.family != format.FamilyOrdinal {
		return "-"
	}
	var parts []string
	if fi.HasTies {
		parts = append(parts, "ties")
	}
	if fi.IsComplete {
		parts = append(parts, "complete")
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, ",")
}

// toTitleCase converts a string to Title Case.
func toTitleCase(s string) string {
	caser := cases.Title(language.English)
	return caser.String(s)
}
