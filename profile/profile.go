/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package profile provides canonical preference document types.
package profile

import "bennypowers.dev/dirugim/format"

// Document is a canonical preference dataset produced by one of the
// format readers.
type Document interface {
	// Family reports which reader family produced the document.
	Family() format.Family

	// Title returns the dataset title.
	Title() string
}

// OrdinalMeta describes the source dataset of an ordinal document.
type OrdinalMeta struct {
	// Title is the dataset title, defaulting to the file stem.
	Title string `json:"title"`

	// Source labels the dataset origin (e.g., "PrefLib (skate.toc)").
	Source string `json:"source"`

	// SourceFile is the file name the header declares, when it does.
	SourceFile string `json:"source_file,omitempty"`

	// DataType is the effective format extension (soc, soi, toc, toi).
	DataType string `json:"data_type"`

	// HasTies is true when at least one ranking ties two or more
	// alternatives at a position.
	HasTies bool `json:"has_ties"`

	// IsComplete is true when every ranking places every alternative.
	IsComplete bool `json:"is_complete"`

	// TotalVoters is the declared voter count, or the sum of ranking
	// multiplicities when the header does not declare one.
	TotalVoters int `json:"total_voters"`

	// NumAlternatives is the number of alternatives in the name table.
	NumAlternatives int `json:"num_alternatives"`
}

// Ranking is one body line of an ordinal file: an ordered ballot and the
// number of voters who cast it.
type Ranking struct {
	Order  []Element `json:"order"`
	Voters int       `json:"voters"`
}

// Members returns the total number of alternatives the ranking places,
// counting every member of each tie group.
func (r Ranking) Members() int {
	n := 0
	for _, e := range r.Order {
		n += e.Width()
	}
	return n
}

// HasTie reports whether any position holds two or more alternatives.
func (r Ranking) HasTie() bool {
	for _, e := range r.Order {
		if e.IsTie() {
			return true
		}
	}
	return false
}

// Ordinal is the canonical document for the SOC, SOI, TOC and TOI
// formats. One Ranking per body line, in file order, duplicates kept.
type Ordinal struct {
	Meta         OrdinalMeta `json:"metadata"`
	Alternatives []string    `json:"alternatives"`
	Rankings     []Ranking   `json:"rankings"`
}

// Family reports the ordinal reader family.
func (d *Ordinal) Family() format.Family { return format.FamilyOrdinal }

// Title returns the dataset title.
func (d *Ordinal) Title() string { return d.Meta.Title }

// CategoricalMeta describes the source dataset of a categorical document.
type CategoricalMeta struct {
	Title           string `json:"title"`
	Source          string `json:"source"`
	SourceFile      string `json:"source_file,omitempty"`
	DataType        string `json:"data_type"`
	TotalVoters     int    `json:"total_voters"`
	NumAlternatives int    `json:"num_alternatives"`
	NumCategories   int    `json:"num_categories"`
}

// Assignment is one body line of a categorical file: the alternatives
// each category received and the number of voters who cast it. Every
// declared category name appears as a key, empty when unfilled.
type Assignment struct {
	Categories map[string][]string `json:"categories"`
	Voters     int                 `json:"voters"`
}

// Categorical is the canonical document for the CAT format.
type Categorical struct {
	Meta         CategoricalMeta `json:"metadata"`
	Alternatives []string        `json:"alternatives"`
	Categories   []string        `json:"categories"`
	Preferences  []Assignment    `json:"preferences"`
}

// Family reports the categorical reader family.
func (d *Categorical) Family() format.Family { return format.FamilyCategorical }

// Title returns the dataset title.
func (d *Categorical) Title() string { return d.Meta.Title }

// MatchingMeta describes the source dataset of a matching document.
// NumEdges counts successfully parsed edges, not the header declaration.
type MatchingMeta struct {
	Title           string `json:"title"`
	Source          string `json:"source"`
	SourceFile      string `json:"source_file,omitempty"`
	DataType        string `json:"data_type"`
	NumAlternatives int    `json:"num_alternatives"`
	NumEdges        int    `json:"num_edges"`
}

// Edge is one weighted edge of a matching graph, endpoints resolved to
// alternative names.
type Edge struct {
	Source string  `json:"source"`
	Target string  `json:"target"`
	Weight float64 `json:"weight"`
}

// Matching is the canonical document for the WMD format. Edges keep
// file order, duplicates and all.
type Matching struct {
	Meta         MatchingMeta `json:"metadata"`
	Alternatives []string     `json:"alternatives"`
	Edges        []Edge       `json:"edges"`
}

// Family reports the matching reader family.
func (d *Matching) Family() format.Family { return format.FamilyMatching }

// Title returns the dataset title.
func (d *Matching) Title() string { return d.Meta.Title }
