/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser

import (
	"strconv"
	"strings"

	"bennypowers.dev/dirugim/profile"
)

// readMatching parses one WMD file. Body rows are source,target,weight
// triples; rows with any other field count or a malformed field are
// skipped. The metadata edge count reflects what actually parsed, not
// the header declaration.
func readMatching(data []byte, path string) *profile.Matching {
	meta := profile.MatchingMeta{DataType: "wmd"}
	names := newNameTable("Alt")
	edges := []profile.Edge{}
	numAlternatives := 0

	sc := newLineScanner(data)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#") {
			h, ok := parseHeader(line)
			if !ok {
				continue
			}
			switch {
			case h.key == "title":
				meta.Title = h.value
			case h.key == "file_name":
				meta.SourceFile = h.value
			case h.key == "number_alternatives":
				if n, err := strconv.Atoi(h.value); err == nil {
					numAlternatives = n
				}
			case strings.HasPrefix(h.key, "alternative_name_"):
				if id, err := strconv.Atoi(strings.TrimPrefix(h.key, "alternative_name_")); err == nil {
					names.set(id, h.value)
				}
			}
			continue
		}

		parts := strings.Split(line, ",")
		if len(parts) != 3 {
			continue
		}
		source, err := strconv.Atoi(strings.TrimSpace(parts[0]))
		if err != nil {
			continue
		}
		target, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			continue
		}
		weight, err := strconv.ParseFloat(strings.TrimSpace(parts[2]), 64)
		if err != nil {
			continue
		}
		edges = append(edges, profile.Edge{
			Source: names.name(source),
			Target: names.name(target),
			Weight: weight,
		})
	}

	meta.NumAlternatives = numAlternatives
	meta.NumEdges = len(edges)
	if meta.Title == "" {
		meta.Title = stem(path)
	}
	meta.Source = sourceLabel(path)

	return &profile.Matching{
		Meta:         meta,
		Alternatives: names.list(numAlternatives),
		Edges:        edges,
	}
}
