/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package profile

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/jsonc"

	"bennypowers.dev/dirugim/fs"
)

// Decode recognizes a stored canonical document by its discriminating
// field (rankings, preferences or edges) and unmarshals it. Comments in
// the JSON are tolerated.
func Decode(data []byte) (Document, error) {
	clean := jsonc.ToJSON(data)

	var probe struct {
		Rankings    json.RawMessage `json:"rankings"`
		Preferences json.RawMessage `json:"preferences"`
		Edges       json.RawMessage `json:"edges"`
	}
	if err := json.Unmarshal(clean, &probe); err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}

	switch {
	case probe.Rankings != nil:
		var d Ordinal
		if err := json.Unmarshal(clean, &d); err != nil {
			return nil, fmt.Errorf("failed to parse ordinal document: %w", err)
		}
		return &d, nil
	case probe.Preferences != nil:
		var d Categorical
		if err := json.Unmarshal(clean, &d); err != nil {
			return nil, fmt.Errorf("failed to parse categorical document: %w", err)
		}
		return &d, nil
	case probe.Edges != nil:
		var d Matching
		if err := json.Unmarshal(clean, &d); err != nil {
			return nil, fmt.Errorf("failed to parse matching document: %w", err)
		}
		return &d, nil
	default:
		return nil, ErrUnknownDocument
	}
}

// Load reads a stored canonical document from a JSON file.
func Load(filesystem fs.FileSystem, path string) (Document, error) {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}
	doc, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}
