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

// readCategorical parses one CAT file. Each body line becomes an
// assignment whose map always carries every declared category name, so
// downstream consumers never probe for missing keys.
func readCategorical(data []byte, path string) *profile.Categorical {
	meta := profile.CategoricalMeta{DataType: "cat"}
	alts := newNameTable("Alt")
	cats := newNameTable("Category")
	preferences := []profile.Assignment{}
	numAlternatives := 0
	numCategories := 0
	declaredVoters := 0
	votersDeclared := false

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
			case h.key == "data_type":
				meta.DataType = strings.ToLower(h.value)
			case h.key == "number_alternatives":
				if n, err := strconv.Atoi(h.value); err == nil {
					numAlternatives = n
				}
			case h.key == "number_voters":
				if n, err := strconv.Atoi(h.value); err == nil {
					declaredVoters = n
					votersDeclared = true
				}
			case h.key == "number_categories":
				if n, err := strconv.Atoi(h.value); err == nil {
					numCategories = n
				}
			case strings.HasPrefix(h.key, "category_name_"):
				if id, err := strconv.Atoi(strings.TrimPrefix(h.key, "category_name_")); err == nil {
					cats.set(id, h.value)
				}
			case strings.HasPrefix(h.key, "alternative_name_"):
				if id, err := strconv.Atoi(strings.TrimPrefix(h.key, "alternative_name_")); err == nil {
					alts.set(id, h.value)
				}
			}
			continue
		}

		countStr, catStr, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		voters, err := strconv.Atoi(strings.TrimSpace(countStr))
		if err != nil {
			continue
		}
		groups, err := ParseCategories(strings.TrimSpace(catStr))
		if err != nil {
			continue
		}

		assigned := make(map[string][]string, max(numCategories, len(groups)))
		for id := 1; id <= numCategories; id++ {
			assigned[cats.name(id)] = []string{}
		}
		for i, group := range groups {
			members := make([]string, len(group))
			for j, id := range group {
				members[j] = alts.name(id)
			}
			assigned[cats.name(i+1)] = members
		}
		preferences = append(preferences, profile.Assignment{
			Categories: assigned,
			Voters:     voters,
		})
	}

	meta.NumAlternatives = numAlternatives
	meta.NumCategories = numCategories
	meta.TotalVoters = declaredVoters
	if !votersDeclared {
		for _, p := range preferences {
			meta.TotalVoters += p.Voters
		}
	}
	if meta.Title == "" {
		meta.Title = stem(path)
	}
	meta.Source = sourceLabel(path)

	return &profile.Categorical{
		Meta:         meta,
		Alternatives: alts.list(numAlternatives),
		Categories:   cats.list(numCategories),
		Preferences:  preferences,
	}
}
