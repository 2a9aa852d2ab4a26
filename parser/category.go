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

// ParseCategories parses a category string such as "6,{1,2,3,4,5}" into
// one id group per category slot. Unlike order entries, groups never
// collapse: a bare id yields a one-member group and {} yields an empty
// one, so slot positions stay aligned with the category table. Bare
// tokens here are digit runs only. An unterminated group or a malformed
// member fails the whole string, which callers treat as a skippable
// line.
func ParseCategories(s string) ([][]int, error) {
	var groups [][]int
	i := 0
	for i < len(s) {
		switch c := s[i]; {
		case c == '{':
			j := strings.IndexByte(s[i:], '}')
			if j < 0 {
				return nil, fmt.Errorf("unterminated category group at offset %d", i)
			}
			j += i
			ids := []int{}
			for _, part := range strings.Split(s[i+1:j], ",") {
				part = strings.TrimSpace(part)
				if part == "" {
					continue
				}
				id, err := strconv.Atoi(part)
				if err != nil {
					return nil, fmt.Errorf("malformed category member %q", part)
				}
				ids = append(ids, id)
			}
			groups = append(groups, ids)
			i = j + 1
			if i < len(s) && s[i] == ',' {
				i++
			}
		case c >= '0' && c <= '9':
			j := i
			for j < len(s) && s[j] >= '0' && s[j] <= '9' {
				j++
			}
			id, err := strconv.Atoi(s[i:j])
			if err != nil {
				return nil, fmt.Errorf("malformed category id %q", s[i:j])
			}
			groups = append(groups, []int{id})
			i = j
			if i < len(s) && s[i] == ',' {
				i++
			}
		default:
			i++
		}
	}
	return groups, nil
}
