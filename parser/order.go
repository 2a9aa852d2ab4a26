/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser

import (
	"fmt"
	"strconv"
	"strings"
)

// Entry is one parsed slot of an order string: a bare alternative id or
// a brace-delimited tie group of ids. Single-member groups collapse to
// bare entries at parse time; empty groups are legal and place nothing.
type Entry struct {
	id      int
	ids     []int
	grouped bool
}

func single(id int) Entry {
	return Entry{id: id}
}

func group(ids []int) Entry {
	return Entry{ids: ids, grouped: true}
}

// IsTie reports whether the entry ties two or more alternatives.
func (e Entry) IsTie() bool {
	return e.grouped && len(e.ids) >= 2
}

// Width returns the number of alternatives the entry places.
func (e Entry) Width() int {
	if e.grouped {
		return len(e.ids)
	}
	return 1
}

// IDs returns the alternative ids the entry places, in source order.
func (e Entry) IDs() []int {
	if e.grouped {
		return e.ids
	}
	return []int{e.id}
}

// String renders the entry back in order notation: "7" or "{2,3}".
func (e Entry) String() string {
	if !e.grouped {
		return strconv.Itoa(e.id)
	}
	parts := make([]string, len(e.ids))
	for i, id := range e.ids {
		parts[i] = strconv.Itoa(id)
	}
	return "{" + strings.Join(parts, ",") + "}"
}

// OrderString renders entries back to order notation, one slot per
// comma-separated token. Reparsing the result yields the same entries.
func OrderString(entries []Entry) string {
	parts := make([]string, len(entries))
	for i, e := range entries {
		parts[i] = e.String()
	}
	return strings.Join(parts, ",")
}

// ParseOrder parses an order string such as "30,21,{2,3},4" into its
// entries. Braces match the nearest following close brace; a bare run
// of digits (a leading - is tolerated, so ids from damaged files stay
// addressable) forms one integer token. Anything else separates tokens
// and is skipped. An unterminated group or a malformed integer fails
// the whole string, which callers treat as a skippable line.
func ParseOrder(s string) ([]Entry, error) {
	var entries []Entry
	i := 0
	for i < len(s) {
		switch c := s[i]; {
		case c == '{':
			j := strings.IndexByte(s[i:], '}')
			if j < 0 {
				return nil, fmt.Errorf("unterminated tie group at offset %d", i)
			}
			j += i
			e, err := parseTie(s[i+1 : j])
			if err != nil {
				return nil, err
			}
			entries = append(entries, e)
			i = j + 1
			if i < len(s) && s[i] == ',' {
				i++
			}
		case c >= '0' && c <= '9' || c == '-':
			j := i
			for j < len(s) && (s[j] >= '0' && s[j] <= '9' || s[j] == '-') {
				j++
			}
			id, err := strconv.Atoi(s[i:j])
			if err != nil {
				return nil, fmt.Errorf("malformed alternative id %q", s[i:j])
			}
			entries = append(entries, single(id))
			i = j
			if i < len(s) && s[i] == ',' {
				i++
			}
		default:
			i++
		}
	}
	return entries, nil
}

// parseTie parses the content between tie braces. Blank members vanish;
// a single survivor collapses to a bare entry.
func parseTie(content string) (Entry, error) {
	ids := []int{}
	for _, part := range strings.Split(content, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.Atoi(part)
		if err != nil {
			return Entry{}, fmt.Errorf("malformed tie member %q", part)
		}
		ids = append(ids, id)
	}
	if len(ids) == 1 {
		return single(ids[0]), nil
	}
	return group(ids), nil
}
