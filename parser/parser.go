/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package parser provides PrefLib preference file parsing.
package parser

import (
	"fmt"

	"bennypowers.dev/dirugim/format"
	"bennypowers.dev/dirugim/fs"
	"bennypowers.dev/dirugim/profile"
)

// Options configures PrefLib parsing.
type Options struct {
	// CompleteOnly drops rankings that place fewer alternatives than
	// the file declares. It applies to the ordinal formats only.
	CompleteOnly bool
}

// ParseFile parses one PrefLib file into its canonical document. The
// format comes from the file extension alone; unsupported extensions
// fail before the file is read.
func ParseFile(filesystem fs.FileSystem, path string, opts Options) (profile.Document, error) {
	f, err := format.FromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	return parse(data, path, f, opts)
}

// Parse parses PrefLib data as the format named by path's extension.
// The path supplies the default title and the source label; no file
// access occurs.
func Parse(data []byte, path string, opts Options) (profile.Document, error) {
	f, err := format.FromPath(path)
	if err != nil {
		return nil, err
	}
	return parse(data, path, f, opts)
}

func parse(data []byte, path string, f format.Format, opts Options) (profile.Document, error) {
	switch f.Family() {
	case format.FamilyOrdinal:
		return readOrdinal(data, path, f, opts), nil
	case format.FamilyCategorical:
		return readCategorical(data, path), nil
	case format.FamilyMatching:
		return readMatching(data, path), nil
	default:
		return nil, fmt.Errorf("%s: %w", path, format.ErrUnsupportedFormat)
	}
}
