/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides configuration loading for preference data tooling.
package config

import (
	"encoding/json"

	"gopkg.in/yaml.v3"

	"bennypowers.dev/dirugim/parser"
)

// DefaultOutDir is where converted documents land when neither the
// command line nor the config file names a directory.
const DefaultOutDir = "data"

// Config represents the dirugim project configuration.
type Config struct {
	// OutDir is the directory converted documents are written to.
	OutDir string `yaml:"outDir" json:"outDir"`

	// CompleteOnly drops incomplete rankings from every ordinal file.
	CompleteOnly bool `yaml:"completeOnly" json:"completeOnly"`

	// Files specifies input files to convert (paths or specs).
	Files []FileSpec `yaml:"files" json:"files"`
}

// FileSpec represents an input file specification.
// It can be specified as a simple string path or as an object with overrides.
type FileSpec struct {
	// Path is the file path (supports globs).
	Path string `yaml:"path" json:"path"`

	// CompleteOnly overrides the global complete-only setting for this file.
	CompleteOnly *bool `yaml:"completeOnly" json:"completeOnly"`
}

// UnmarshalYAML handles both string and object forms for FileSpec.
func (f *FileSpec) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		f.Path = node.Value
		return nil
	}

	type rawFileSpec FileSpec
	return node.Decode((*rawFileSpec)(f))
}

// UnmarshalJSON handles both string and object forms for FileSpec.
func (f *FileSpec) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		f.Path = s
		return nil
	}

	type rawFileSpec FileSpec
	return json.Unmarshal(data, (*rawFileSpec)(f))
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{
		OutDir:       "",
		CompleteOnly: false,
		Files:        nil,
	}
}

// OptionsForFile returns parser.Options with configuration applied.
// File-level overrides take precedence over global config.
func (c *Config) OptionsForFile(path string) parser.Options {
	opts := parser.Options{
		CompleteOnly: c.CompleteOnly,
	}

	// Find matching file spec and apply overrides
	for _, spec := range c.Files {
		if spec.Path == path {
			if spec.CompleteOnly != nil {
				opts.CompleteOnly = *spec.CompleteOnly
			}
			break
		}
	}

	return opts
}

// FilePaths returns the list of file paths from all FileSpecs.
func (c *Config) FilePaths() []string {
	paths := make([]string, 0, len(c.Files))
	for _, spec := range c.Files {
		paths = append(paths, spec.Path)
	}
	return paths
}
