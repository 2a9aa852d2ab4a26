/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser

import (
	"strconv"
	"strings"

	"bennypowers.dev/dirugim/format"
	"bennypowers.dev/dirugim/profile"
)

// readOrdinal parses one SOC, SOI, TOC or TOI file. Lines that fail to
// parse are skipped; a single bad line never fails the file. The
// complete-only filter runs on parsed ids, before name resolution.
func readOrdinal(data []byte, path string, f format.Format, opts Options) *profile.Ordinal {
	meta := profile.OrdinalMeta{DataType: f.String()}
	names := newNameTable("Alt")
	rankings := []profile.Ranking{}
	numAlternatives := 0
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
			case strings.HasPrefix(h.key, "alternative_name_"):
				if id, err := strconv.Atoi(strings.TrimPrefix(h.key, "alternative_name_")); err == nil {
					names.set(id, h.value)
				}
			}
			continue
		}

		countStr, orderStr, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		voters, err := strconv.Atoi(strings.TrimSpace(countStr))
		if err != nil {
			continue
		}
		entries, err := ParseOrder(strings.TrimSpace(orderStr))
		if err != nil {
			continue
		}
		if opts.CompleteOnly && entryWidth(entries) < numAlternatives {
			continue
		}
		rankings = append(rankings, profile.Ranking{
			Order:  resolveEntries(entries, names),
			Voters: voters,
		})
	}

	meta.NumAlternatives = numAlternatives
	meta.IsComplete = true
	for _, r := range rankings {
		if r.HasTie() {
			meta.HasTies = true
		}
		if r.Members() != numAlternatives {
			meta.IsComplete = false
		}
	}
	meta.TotalVoters = declaredVoters
	if !votersDeclared {
		for _, r := range rankings {
			meta.TotalVoters += r.Voters
		}
	}
	if meta.Title == "" {
		meta.Title = stem(path)
	}
	meta.Source = sourceLabel(path)

	return &profile.Ordinal{
		Meta:         meta,
		Alternatives: names.list(numAlternatives),
		Rankings:     rankings,
	}
}

// entryWidth sums the alternatives placed by every entry.
func entryWidth(entries []Entry) int {
	n := 0
	for _, e := range entries {
		n += e.Width()
	}
	return n
}

// resolveEntries maps parsed ids onto display names.
func resolveEntries(entries []Entry, names nameTable) []profile.Element {
	order := make([]profile.Element, len(entries))
	for i, e := range entries {
		if e.grouped {
			members := make([]string, len(e.ids))
			for j, id := range e.ids {
				members[j] = names.name(id)
			}
			order[i] = profile.Tie(members...)
		} else {
			order[i] = profile.Single(names.name(e.id))
		}
	}
	return order
}
