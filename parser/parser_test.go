/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package parser_test

import (
	"bytes"
	"errors"
	"reflect"
	"strings"
	"testing"

	"bennypowers.dev/dirugim/format"
	"bennypowers.dev/dirugim/internal/mapfs"
	"bennypowers.dev/dirugim/parser"
	"bennypowers.dev/dirugim/profile"
	"bennypowers.dev/dirugim/testutil"
)

func TestParseFile_Ordinal(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/data/skate.toc", `# FILE NAME: skate.toc
# TITLE: Skating Championship
# DATA TYPE: toc
# NUMBER ALTERNATIVES: 4
# NUMBER VOTERS: 9
# ALTERNATIVE NAME 1: Alice
# ALTERNATIVE NAME 2: Bob
# ALTERNATIVE NAME 3: Carol
# ALTERNATIVE NAME 4: Dan
5: 1,{2,3},4
4: 4,3,2,1
`, 0644)

	doc, err := parser.ParseFile(mfs, "/data/skate.toc", parser.Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ord, ok := doc.(*profile.Ordinal)
	if !ok {
		t.Fatalf("expected *profile.Ordinal, got %T", doc)
	}

	if ord.Family() != format.FamilyOrdinal {
		t.Errorf("expected ordinal family, got %v", ord.Family())
	}
	if ord.Meta.Title != "Skating Championship" {
		t.Errorf("expected title 'Skating Championship', got %q", ord.Meta.Title)
	}
	if ord.Meta.Source != "PrefLib (skate.toc)" {
		t.Errorf("expected source 'PrefLib (skate.toc)', got %q", ord.Meta.Source)
	}
	if ord.Meta.SourceFile != "skate.toc" {
		t.Errorf("expected source file 'skate.toc', got %q", ord.Meta.SourceFile)
	}
	if ord.Meta.DataType != "toc" {
		t.Errorf("expected data type 'toc', got %q", ord.Meta.DataType)
	}
	if !ord.Meta.HasTies {
		t.Error("expected has_ties")
	}
	if !ord.Meta.IsComplete {
		t.Error("expected is_complete")
	}
	if ord.Meta.TotalVoters != 9 {
		t.Errorf("expected 9 voters, got %d", ord.Meta.TotalVoters)
	}
	if ord.Meta.NumAlternatives != 4 {
		t.Errorf("expected 4 alternatives, got %d", ord.Meta.NumAlternatives)
	}

	expected := []string{"Alice", "Bob", "Carol", "Dan"}
	if !reflect.DeepEqual(ord.Alternatives, expected) {
		t.Errorf("expected alternatives %v, got %v", expected, ord.Alternatives)
	}

	if len(ord.Rankings) != 2 {
		t.Fatalf("expected 2 rankings, got %d", len(ord.Rankings))
	}
	first := ord.Rankings[0]
	if first.Voters != 5 {
		t.Errorf("expected 5 voters, got %d", first.Voters)
	}
	if len(first.Order) != 3 {
		t.Fatalf("expected 3 order elements, got %d", len(first.Order))
	}
	if got := first.Order[0].Members(); !reflect.DeepEqual(got, []string{"Alice"}) {
		t.Errorf("expected [Alice], got %v", got)
	}
	if !first.Order[1].IsTie() {
		t.Error("expected tie at second position")
	}
	if got := first.Order[1].Members(); !reflect.DeepEqual(got, []string{"Bob", "Carol"}) {
		t.Errorf("expected [Bob Carol], got %v", got)
	}
}

func TestParseFile_OrdinalDefaults(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/data/votes.soc", `# NUMBER ALTERNATIVES: 3
2: 1,2,3
1: 3,1,2
`, 0644)

	doc, err := parser.ParseFile(mfs, "/data/votes.soc", parser.Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ord := doc.(*profile.Ordinal)

	if ord.Meta.Title != "votes" {
		t.Errorf("expected title 'votes' from the file stem, got %q", ord.Meta.Title)
	}
	if ord.Meta.SourceFile != "" {
		t.Errorf("expected no source file, got %q", ord.Meta.SourceFile)
	}
	if ord.Meta.DataType != "soc" {
		t.Errorf("expected data type 'soc' from the extension, got %q", ord.Meta.DataType)
	}
	if ord.Meta.TotalVoters != 3 {
		t.Errorf("expected 3 voters summed from rankings, got %d", ord.Meta.TotalVoters)
	}
	if ord.Meta.HasTies {
		t.Error("expected no ties")
	}
	if !ord.Meta.IsComplete {
		t.Error("expected is_complete")
	}

	expected := []string{"Alt_1", "Alt_2", "Alt_3"}
	if !reflect.DeepEqual(ord.Alternatives, expected) {
		t.Errorf("expected placeholder names %v, got %v", expected, ord.Alternatives)
	}
}

func TestParseFile_CompleteOnly(t *testing.T) {
	content := `# NUMBER ALTERNATIVES: 4
# NUMBER VOTERS: 10
3: 1,2,3,4
2: 1,2
5: {1,2,3,4}
`
	mfs := mapfs.New()
	mfs.AddFile("/data/partial.toi", content, 0644)

	t.Run("unfiltered", func(t *testing.T) {
		doc, err := parser.ParseFile(mfs, "/data/partial.toi", parser.Options{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		ord := doc.(*profile.Ordinal)
		if len(ord.Rankings) != 3 {
			t.Fatalf("expected 3 rankings, got %d", len(ord.Rankings))
		}
		if ord.Meta.IsComplete {
			t.Error("expected incomplete document")
		}
		if ord.Meta.TotalVoters != 10 {
			t.Errorf("expected declared 10 voters, got %d", ord.Meta.TotalVoters)
		}
	})

	t.Run("complete only", func(t *testing.T) {
		doc, err := parser.ParseFile(mfs, "/data/partial.toi", parser.Options{CompleteOnly: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		ord := doc.(*profile.Ordinal)
		if len(ord.Rankings) != 2 {
			t.Fatalf("expected 2 complete rankings, got %d", len(ord.Rankings))
		}
		if !ord.Meta.IsComplete {
			t.Error("expected complete document after filtering")
		}
		if !ord.Meta.HasTies {
			t.Error("expected surviving tie group")
		}
		if ord.Meta.TotalVoters != 10 {
			t.Errorf("expected declared 10 voters, got %d", ord.Meta.TotalVoters)
		}
	})
}

func TestParseFile_OrdinalSkipsBadLines(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/data/messy.soi", `# NUMBER ALTERNATIVES: 2
# NUMBER VOTERS: abc
# just a comment without delimiter
x: 1,2
3: 1,{2
2: 1,2
`, 0644)

	doc, err := parser.ParseFile(mfs, "/data/messy.soi", parser.Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ord := doc.(*profile.Ordinal)

	if len(ord.Rankings) != 1 {
		t.Fatalf("expected 1 surviving ranking, got %d", len(ord.Rankings))
	}
	if ord.Rankings[0].Voters != 2 {
		t.Errorf("expected 2 voters, got %d", ord.Rankings[0].Voters)
	}
	// The malformed voter header is ignored, so the count comes from
	// the surviving ranking.
	if ord.Meta.TotalVoters != 2 {
		t.Errorf("expected 2 voters summed, got %d", ord.Meta.TotalVoters)
	}
}

func TestParseFile_UnsupportedExtension(t *testing.T) {
	mfs := mapfs.New()

	_, err := parser.ParseFile(mfs, "/data/file.xyz", parser.Options{})
	if !errors.Is(err, format.ErrUnsupportedFormat) {
		t.Errorf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestParseFile_MissingFile(t *testing.T) {
	mfs := mapfs.New()

	_, err := parser.ParseFile(mfs, "/data/absent.soc", parser.Options{})
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !strings.Contains(err.Error(), "failed to read file") {
		t.Errorf("expected read failure, got %v", err)
	}
}

func TestParseFile_Categorical(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/data/courses.cat", `# FILE NAME: courses.cat
# TITLE: Course Choice
# DATA TYPE: cat
# NUMBER ALTERNATIVES: 5
# NUMBER VOTERS: 4
# NUMBER CATEGORIES: 2
# CATEGORY NAME 1: Yes
# CATEGORY NAME 2: No
# ALTERNATIVE NAME 1: Math
# ALTERNATIVE NAME 2: Physics
# ALTERNATIVE NAME 3: Chemistry
# ALTERNATIVE NAME 4: Biology
# ALTERNATIVE NAME 5: Art
3: 1,{2,3,4,5}
1: {},{1,2,3,4,5}
`, 0644)

	doc, err := parser.ParseFile(mfs, "/data/courses.cat", parser.Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cat, ok := doc.(*profile.Categorical)
	if !ok {
		t.Fatalf("expected *profile.Categorical, got %T", doc)
	}

	if cat.Meta.DataType != "cat" {
		t.Errorf("expected data type 'cat', got %q", cat.Meta.DataType)
	}
	if cat.Meta.NumCategories != 2 {
		t.Errorf("expected 2 categories, got %d", cat.Meta.NumCategories)
	}
	if cat.Meta.TotalVoters != 4 {
		t.Errorf("expected 4 voters, got %d", cat.Meta.TotalVoters)
	}
	if !reflect.DeepEqual(cat.Categories, []string{"Yes", "No"}) {
		t.Errorf("expected categories [Yes No], got %v", cat.Categories)
	}

	if len(cat.Preferences) != 2 {
		t.Fatalf("expected 2 preferences, got %d", len(cat.Preferences))
	}

	first := cat.Preferences[0]
	if first.Voters != 3 {
		t.Errorf("expected 3 voters, got %d", first.Voters)
	}
	if got := first.Categories["Yes"]; !reflect.DeepEqual(got, []string{"Math"}) {
		t.Errorf("expected Yes=[Math], got %v", got)
	}
	want := []string{"Physics", "Chemistry", "Biology", "Art"}
	if got := first.Categories["No"]; !reflect.DeepEqual(got, want) {
		t.Errorf("expected No=%v, got %v", want, got)
	}

	second := cat.Preferences[1]
	if got := second.Categories["Yes"]; got == nil || len(got) != 0 {
		t.Errorf("expected empty Yes assignment, got %v", got)
	}
}

func TestParseFile_CategoricalExtraSlots(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/data/overflow.cat", `# NUMBER ALTERNATIVES: 3
# NUMBER CATEGORIES: 1
# CATEGORY NAME 1: Accept
2: 1,2,3
`, 0644)

	doc, err := parser.ParseFile(mfs, "/data/overflow.cat", parser.Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cat := doc.(*profile.Categorical)

	if len(cat.Preferences) != 1 {
		t.Fatalf("expected 1 preference, got %d", len(cat.Preferences))
	}
	assigned := cat.Preferences[0].Categories
	if got := assigned["Accept"]; !reflect.DeepEqual(got, []string{"Alt_1"}) {
		t.Errorf("expected Accept=[Alt_1], got %v", got)
	}
	// Slots past the declared category count get placeholder names.
	if got := assigned["Category_2"]; !reflect.DeepEqual(got, []string{"Alt_2"}) {
		t.Errorf("expected Category_2=[Alt_2], got %v", got)
	}
	if got := assigned["Category_3"]; !reflect.DeepEqual(got, []string{"Alt_3"}) {
		t.Errorf("expected Category_3=[Alt_3], got %v", got)
	}
}

func TestParseFile_Matching(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/data/pairs.wmd", `# FILE NAME: pairs.wmd
# TITLE: Kidney Pairs
# NUMBER ALTERNATIVES: 3
# NUMBER EDGES: 99
# ALTERNATIVE NAME 1: P1
# ALTERNATIVE NAME 2: P2
# ALTERNATIVE NAME 3: P3
1,2,1.5
2,3,0.75
1,2
1,2,heavy
3,1,2
`, 0644)

	doc, err := parser.ParseFile(mfs, "/data/pairs.wmd", parser.Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	m, ok := doc.(*profile.Matching)
	if !ok {
		t.Fatalf("expected *profile.Matching, got %T", doc)
	}

	if m.Meta.Title != "Kidney Pairs" {
		t.Errorf("expected title 'Kidney Pairs', got %q", m.Meta.Title)
	}
	// The declared edge count is informational; the metadata reflects
	// what actually parsed.
	if m.Meta.NumEdges != 3 {
		t.Errorf("expected 3 edges, got %d", m.Meta.NumEdges)
	}
	if len(m.Edges) != 3 {
		t.Fatalf("expected 3 edges, got %d", len(m.Edges))
	}

	first := m.Edges[0]
	if first.Source != "P1" || first.Target != "P2" || first.Weight != 1.5 {
		t.Errorf("unexpected first edge %+v", first)
	}
	last := m.Edges[2]
	if last.Source != "P3" || last.Target != "P1" || last.Weight != 2 {
		t.Errorf("unexpected last edge %+v", last)
	}
}

func TestParseFile_MatchingPlaceholderNames(t *testing.T) {
	mfs := mapfs.New()
	mfs.AddFile("/data/anon.wmd", `# NUMBER ALTERNATIVES: 5
1,5,1.0
`, 0644)

	doc, err := parser.ParseFile(mfs, "/data/anon.wmd", parser.Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m := doc.(*profile.Matching)

	if len(m.Edges) != 1 {
		t.Fatalf("expected 1 edge, got %d", len(m.Edges))
	}
	edge := m.Edges[0]
	if edge.Source != "Alt_1" || edge.Target != "Alt_5" || edge.Weight != 1.0 {
		t.Errorf("unexpected edge %+v", edge)
	}
}

func TestParse_NoFileAccess(t *testing.T) {
	data := []byte(`# NUMBER ALTERNATIVES: 2
1: 1,2
`)
	doc, err := parser.Parse(data, "memo.soc", parser.Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ord := doc.(*profile.Ordinal)
	if ord.Meta.Title != "memo" {
		t.Errorf("expected title 'memo', got %q", ord.Meta.Title)
	}
	if ord.Meta.Source != "PrefLib (memo.soc)" {
		t.Errorf("expected source 'PrefLib (memo.soc)', got %q", ord.Meta.Source)
	}
}

func TestParseFile_Golden(t *testing.T) {
	mfs := testutil.NewFixtureFS(t, "fixtures/preflib", "/data")

	doc, err := parser.ParseFile(mfs, "/data/skate.toc", parser.Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var buf bytes.Buffer
	if err := profile.EncodeJSON(&buf, doc); err != nil {
		t.Fatalf("encode error: %v", err)
	}

	testutil.UpdateGoldenFile(t, "golden/skate.json", buf.Bytes())
	expected := testutil.LoadFixtureFile(t, "golden/skate.json")
	if buf.String() != string(expected) {
		t.Errorf("golden mismatch:\ngot:\n%s\nwant:\n%s", buf.String(), expected)
	}
}
