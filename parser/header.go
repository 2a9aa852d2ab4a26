/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser

import (
	"bufio"
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
)

// header is one parsed "# key: value" line. Keys are lowered with
// spaces collapsed to underscores, so "# NUMBER ALTERNATIVES" and
// "# number alternatives" read the same.
type header struct {
	key   string
	value string
}

// parseHeader splits a comment line into a normalized key and value.
// Comment lines without the ": " delimiter are not headers.
func parseHeader(line string) (header, bool) {
	rest := strings.TrimSpace(strings.TrimPrefix(line, "#"))
	key, value, ok := strings.Cut(rest, ": ")
	if !ok {
		return header{}, false
	}
	return header{
		key:   strings.ReplaceAll(strings.ToLower(strings.TrimSpace(key)), " ", "_"),
		value: strings.TrimSpace(value),
	}, true
}

// newLineScanner returns a line scanner sized so no data line can
// overflow the token limit.
func newLineScanner(data []byte) *bufio.Scanner {
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(nil, max(len(data), bufio.MaxScanTokenSize))
	return sc
}

// nameTable resolves ids to declared display names, falling back to a
// prefixed placeholder for ids the file never names.
type nameTable struct {
	prefix string
	byID   map[int]string
}

func newNameTable(prefix string) nameTable {
	return nameTable{prefix: prefix, byID: map[int]string{}}
}

func (t nameTable) set(id int, name string) {
	t.byID[id] = name
}

func (t nameTable) name(id int) string {
	if name, ok := t.byID[id]; ok {
		return name
	}
	return fmt.Sprintf("%s_%d", t.prefix, id)
}

// list materializes names for ids 1 through count, in id order.
func (t nameTable) list(count int) []string {
	if count < 0 {
		count = 0
	}
	names := make([]string, count)
	for id := 1; id <= count; id++ {
		names[id-1] = t.name(id)
	}
	return names
}

// stem returns the base name of path without its extension.
func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// sourceLabel renders the canonical source string for a dataset path.
func sourceLabel(path string) string {
	return fmt.Sprintf("PrefLib (%s)", filepath.Base(path))
}
